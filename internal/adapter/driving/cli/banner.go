package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/greenledger/carbon-report-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
          /$$$$$$                      /$$
         /$$__  $$                    | $$
        | $$  \__/  /$$$$$$   /$$$$$$ | $$$$$$$   /$$$$$$  /$$$$$$$
        | $$       |____  $$ /$$__  $$| $$__  $$ /$$__  $$| $$__  $$
        | $$        /$$$$$$$| $$  \__/| $$  \ $$| $$  \ $$| $$  \ $$
        | $$    $$ /$$__  $$| $$      | $$  | $$| $$  | $$| $$  | $$
        |  $$$$$$/|  $$$$$$$| $$      | $$$$$$$/|  $$$$$$/| $$  | $$
         \______/  \_______/|__/      |_______/  \______/ |__/  |__/

               /$$$$$$$                                              /$$
              | $$__  $$                                            | $$
              | $$  \ $$  /$$$$$$   /$$$$$$   /$$$$$$   /$$$$$$    /$$$$$$
              | $$$$$$$/ /$$__  $$ /$$__  $$ /$$__  $$ /$$__  $$  |_  $$_/
              | $$__  $$| $$$$$$$$| $$  \ $$| $$  \ $$| $$  \__/    | $$
              | $$  \ $$| $$_____/| $$  | $$| $$  | $$| $$          | $$ /$$
              | $$  | $$|  $$$$$$$| $$$$$$$/|  $$$$$$/| $$          |  $$$$/
              |__/  |__/ \_______/| $$____/  \______/ |__/           \___/
                                  | $$
                                  | $$
                                  |__/
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Carbon Emissions Report CLI (v%s)", formattedVersion)))
}
