package main

import (
	"fmt"
	"os"

	"github.com/greenledger/carbon-report-go/internal/adapter/driven/config"
	"github.com/greenledger/carbon-report-go/internal/adapter/driven/export"
	"github.com/greenledger/carbon-report-go/internal/adapter/driven/mail"
	"github.com/greenledger/carbon-report-go/internal/adapter/driven/store"
	"github.com/greenledger/carbon-report-go/internal/adapter/driving/cli"
	"github.com/greenledger/carbon-report-go/internal/application/usecase"
	"github.com/greenledger/carbon-report-go/internal/domain/calculation"
	"github.com/greenledger/carbon-report-go/pkg/console"
	"github.com/greenledger/carbon-report-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Tabela de fatores: construída uma vez, somente leitura daí em diante.
	factors := calculation.DefaultFactorTable()

	// Inicializa os repositórios
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Store e mail dependem de flags por execução, então entram como
	// construtores e são instanciados dentro do caso de uso.
	reportUseCase := usecase.NewReportUseCase(
		exportRepo,
		configRepo,
		store.NewStoreRepository,
		mail.NewMailRepository,
		consoleImpl,
		factors,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetReportUseCase(reportUseCase)
	app.SetConfigRepository(configRepo)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
