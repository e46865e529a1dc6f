package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/greenledger/carbon-report-go/pkg/version"

	"github.com/greenledger/carbon-report-go/internal/application/usecase"
	"github.com/greenledger/carbon-report-go/internal/domain/repository"
	"github.com/greenledger/carbon-report-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	configRepo    repository.ConfigRepository
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "carbon-report",
		Short:   "Carbon Emissions Report CLI",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Carbon Emissions Report version: %s\n" .Version}}`)

	// Flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("input", "i", "", "Path to the report input file (TOML, YAML, or JSON)")
	rootCmd.PersistentFlags().StringP("project-id", "P", "", "Project ID used in the report identifier (default: NEW)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for the exported files (default: Carbon_Emissions_Report_<org>_<date>)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"pdf"}, "Report types to export: pdf, csv, json")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().String("charts-dir", "", "Directory holding pre-rendered chart PNGs to embed in the PDF")
	rootCmd.PersistentFlags().String("email", "", "Email the generated PDF to this recipient")
	rootCmd.PersistentFlags().String("smtp-host", "", "SMTP host for --email (default: localhost)")
	rootCmd.PersistentFlags().Int("smtp-port", 0, "SMTP port for --email (default: 25)")
	rootCmd.PersistentFlags().String("smtp-from", "", "Sender address for --email")
	rootCmd.PersistentFlags().Bool("save", false, "Persist the assembled report snapshot keyed by report ID")
	rootCmd.PersistentFlags().String("store-dir", "", "Directory for report snapshots (default: ~/.carbon-report/reports)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	inputFile, _ := app.rootCmd.Flags().GetString("input")
	projectID, _ := app.rootCmd.Flags().GetString("project-id")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	chartsDir, _ := app.rootCmd.Flags().GetString("charts-dir")
	email, _ := app.rootCmd.Flags().GetString("email")
	smtpHost, _ := app.rootCmd.Flags().GetString("smtp-host")
	smtpPort, _ := app.rootCmd.Flags().GetInt("smtp-port")
	smtpFrom, _ := app.rootCmd.Flags().GetString("smtp-from")
	save, _ := app.rootCmd.Flags().GetBool("save")
	storeDir, _ := app.rootCmd.Flags().GetString("store-dir")

	args := &types.CLIArgs{
		ConfigFile: configFile,
		InputFile:  inputFile,
		ProjectID:  projectID,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		ChartsDir:  chartsDir,
		Email:      email,
		SMTPHost:   smtpHost,
		SMTPPort:   smtpPort,
		SMTPFrom:   smtpFrom,
		Save:       save,
		StoreDir:   storeDir,
	}

	// Mescla a configuração do arquivo: flags explícitas vencem.
	if !app.rootCmd.Flags().Changed("report-type") {
		args.ReportType = nil
	}
	if configFile != "" && app.configRepo != nil {
		config, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return nil, err
		}
		mergeConfig(args, config)
	}
	if len(args.ReportType) == 0 {
		args.ReportType = []string{"pdf"}
	}

	// Default directory to current working directory if not specified
	if args.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		args.Dir = cwd
	} else {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return nil, err
		}
		args.Dir = absDir
	}

	return args, nil
}

// mergeConfig aplica valores do arquivo de configuração nos campos que não
// vieram por flag.
func mergeConfig(args *types.CLIArgs, config *types.Config) {
	if args.InputFile == "" {
		args.InputFile = config.InputFile
	}
	if args.ProjectID == "" {
		args.ProjectID = config.ProjectID
	}
	if args.ReportName == "" {
		args.ReportName = config.ReportName
	}
	if len(config.ReportType) > 0 && len(args.ReportType) == 0 {
		args.ReportType = config.ReportType
	}
	if args.Dir == "" {
		args.Dir = config.Dir
	}
	if args.ChartsDir == "" {
		args.ChartsDir = config.ChartsDir
	}
	if args.Email == "" {
		args.Email = config.Email
	}
	if args.SMTPHost == "" {
		args.SMTPHost = config.SMTPHost
	}
	if args.SMTPPort == 0 {
		args.SMTPPort = config.SMTPPort
	}
	if args.SMTPFrom == "" {
		args.SMTPFrom = config.SMTPFrom
	}
	if !args.Save {
		args.Save = config.Save
	}
	if args.StoreDir == "" {
		args.StoreDir = config.StoreDir
	}
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.reportUseCase.RunReport(ctx, cliArgs)
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}

// SetConfigRepository sets the configuration repository used for --config-file.
func (app *CLIApp) SetConfigRepository(repo repository.ConfigRepository) {
	app.configRepo = repo
}
