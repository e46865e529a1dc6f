package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"github.com/greenledger/carbon-report-go/internal/adapter/driven/export"
	"github.com/greenledger/carbon-report-go/internal/domain/calculation"
	"github.com/greenledger/carbon-report-go/internal/domain/entity"
	"github.com/greenledger/carbon-report-go/internal/domain/repository"
	"github.com/greenledger/carbon-report-go/internal/shared/types"
)

// ReportUseCase handles the emissions report pipeline: load inputs, derive
// the inventory, assemble the canonical record and drive the exports.
//
// O store e o mail dependem de flags por execução (diretório, servidor SMTP),
// então o caso de uso recebe os construtores e instancia os repositórios no
// momento do RunReport.
type ReportUseCase struct {
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	newStore   func(dir string) repository.StoreRepository
	newMail    func(host string, port int, from string) repository.MailRepository
	console    types.ConsoleInterface
	factors    entity.FactorTable
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	newStore func(dir string) repository.StoreRepository,
	newMail func(host string, port int, from string) repository.MailRepository,
	console types.ConsoleInterface,
	factors entity.FactorTable,
) *ReportUseCase {
	return &ReportUseCase{
		exportRepo: exportRepo,
		configRepo: configRepo,
		newStore:   newStore,
		newMail:    newMail,
		console:    console,
		factors:    factors,
	}
}

// RunReport executa o pipeline completo para um arquivo de entrada.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs) error {
	if args.InputFile == "" {
		return types.ErrNoInputFile
	}

	status := uc.console.Status("Loading report input...")
	progress := uc.console.ProgressWithTotal(4)

	// Etapa 1: carregar o arquivo de entrada
	input, err := uc.configRepo.LoadReportInput(args.InputFile)
	if err != nil {
		progress.Stop()
		status.Stop()
		return err
	}
	progress.Increment() // 1/4

	// Etapa 2: montar o relatório canônico. A camada de cálculo nunca
	// falha: entradas degradadas produzem um relatório best-effort.
	status.Update("Computing emissions inventory...")
	report := uc.BuildReport(*input, args.ProjectID)
	progress.Increment() // 2/4

	// Etapa 3: resumo no terminal
	status.Update("Rendering summary...")
	uc.displaySummary(report)
	progress.Increment() // 3/4

	// Etapa 4: exportações e ações
	status.Update("Exporting report artifacts...")
	pdfPath := uc.exportArtifacts(report, args)
	progress.Increment() // 4/4

	progress.Stop()
	status.Stop()

	if args.Save {
		storeRepo := uc.newStore(args.StoreDir)
		if path, err := storeRepo.SaveReport(report); err != nil {
			uc.console.LogError("Failed to save report snapshot: %s", err)
		} else {
			uc.console.LogSuccess("Report snapshot saved: %s", path)
		}
	}

	if args.Email != "" {
		if err := uc.emailReport(report, pdfPath, args); err != nil {
			// Os artefatos já gerados permanecem válidos; só o envio falha.
			uc.console.LogError("Failed to email report: %s", err)
			return err
		}
		uc.console.LogSuccess("Report emailed to %s", args.Email)
	}

	return nil
}

// BuildReport monta o ReportRecord canônico a partir da entrada normalizada.
func (uc *ReportUseCase) BuildReport(input entity.ReportInput, projectID string) entity.ReportRecord {
	if projectID == "" {
		projectID = input.ProjectID
	}
	return calculation.AssembleReport(
		uc.factors,
		input.EmissionsData,
		input.ReductionStrategies,
		input.OrganizationInfo,
		input.Scenarios,
		input.CurrentUser,
		calculation.ReportingContext{ProjectID: projectID},
	)
}

// displaySummary imprime as tabelas de resumo e a trajetória projetada.
func (uc *ReportUseCase) displaySummary(report entity.ReportRecord) {
	uc.console.Println()

	// Tabela de emissões por escopo
	table := uc.console.CreateTable()
	table.AddColumn("Scope")
	table.AddColumn("Emissions (tCO2e)")
	table.AddColumn("Reduction potential")

	addScopeRow := func(label string, emissions float64, scope entity.Scope) {
		table.AddRow(
			label,
			pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprintf("%.2f", emissions),
			pterm.FgGreen.Sprintf("%.2f t (%.1f%%)",
				report.Reductions.ReductionByScope[scope],
				report.Reductions.PercentageByScope[scope]),
		)
	}
	addScopeRow("Scope 1 - Direct", report.Emissions.Scope1, entity.Scope1)
	addScopeRow("Scope 2 - Purchased energy", report.Emissions.Scope2, entity.Scope2)
	addScopeRow("Scope 3 - Value chain", report.Emissions.Scope3, entity.Scope3)
	table.AddRow(
		pterm.NewStyle(pterm.Bold).Sprint("Total"),
		pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprintf("%.2f", report.Emissions.Total),
		pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprintf("%.2f t (%.1f%%)",
			report.Reductions.TotalReduction, report.Reductions.TotalPercentage),
	)
	uc.console.Print(table.Render())

	// Estratégias
	if len(report.Reductions.Strategies) > 0 {
		strategyTable := uc.console.CreateTable()
		strategyTable.AddColumn("Strategy")
		strategyTable.AddColumn("Scope")
		strategyTable.AddColumn("Timeframe")
		strategyTable.AddColumn("Reduction (tCO2e)")
		strategyTable.AddColumn("Share")

		for _, s := range report.Reductions.Strategies {
			strategyTable.AddRow(
				pterm.FgMagenta.Sprint(s.Name),
				scopeDisplay(s.Scope),
				s.Timeframe,
				fmt.Sprintf("%.2f", s.AbsoluteReduction),
				fmt.Sprintf("%.1f%%", s.PercentageReduction),
			)
		}
		uc.console.Print(strategyTable.Render())
	}

	// Trajetória de cinco anos
	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprint("Five-year emissions trajectory:"))
	bars := make([]types.ProjectionBar, len(report.FiveYearProjection))
	for i, p := range report.FiveYearProjection {
		bars[i] = types.ProjectionBar{Year: p.Year, Emissions: p.Emissions, Target: p.Target}
	}
	uc.console.DisplayProjectionBars(bars)

	uc.console.LogInfo("Report ID: %s | Regulatory group: %d | Standards: %s",
		report.ReportID, report.RegulatoryGroup, strings.Join(report.ApplicableStandards, ", "))
}

// exportArtifacts roda as exportações pedidas e devolve o caminho do PDF,
// quando houver um.
func (uc *ReportUseCase) exportArtifacts(report entity.ReportRecord, args *types.CLIArgs) string {
	var pdfPath string

	for _, reportType := range args.ReportType {
		switch reportType {
		case "pdf":
			pdfPath = uc.exportPDF(report, args)
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' (expected pdf, csv, or json)", reportType)
		}
	}

	return pdfPath
}

// exportPDF tenta o documento completo e cai para o mínimo quando a
// renderização falha — um artefato de compliance degradado vale mais do que
// nenhum.
func (uc *ReportUseCase) exportPDF(report entity.ReportRecord, args *types.CLIArgs) string {
	charts := uc.loadCharts(args.ChartsDir)

	pdfPath, err := uc.exportRepo.ExportToPDF(report, uc.factors, charts, args.ReportName, args.Dir)
	if err == nil {
		uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
		return pdfPath
	}

	uc.console.LogWarning("Full document rendering failed (%s); producing summary-only document", err)
	fallbackPath, fallbackErr := uc.exportRepo.RenderFallbackPDF(report, args.ReportName, args.Dir)
	if fallbackErr != nil {
		uc.console.LogError("Failed to render fallback PDF: %s", fallbackErr)
		return ""
	}
	uc.console.LogSuccess("Summary-only PDF exported: %s", fallbackPath)
	return fallbackPath
}

// loadCharts lê os gráficos pré-rasterizados do diretório informado.
// Arquivos ausentes são ignorados: o documento sai sem o gráfico.
func (uc *ReportUseCase) loadCharts(dir string) map[string][]byte {
	if dir == "" {
		return nil
	}

	charts := map[string][]byte{}
	for _, chartID := range []string{
		export.ChartEmissionsByScope,
		export.ChartCategoryBreakdown,
		export.ChartProjection,
	} {
		data, err := os.ReadFile(filepath.Join(dir, chartID+".png"))
		if err != nil {
			continue
		}
		charts[chartID] = data
	}
	return charts
}

// emailReport garante que existe um PDF e o envia ao destinatário.
func (uc *ReportUseCase) emailReport(report entity.ReportRecord, pdfPath string, args *types.CLIArgs) error {
	if pdfPath == "" {
		// O e-mail exige o documento; gera sob demanda se o tipo pdf não
		// estava entre as exportações pedidas.
		pdfPath = uc.exportPDF(report, args)
		if pdfPath == "" {
			return types.ErrNoDocumentToMail
		}
	}
	mailRepo := uc.newMail(args.SMTPHost, args.SMTPPort, args.SMTPFrom)
	return mailRepo.SendReport(report, pdfPath, args.Email)
}

func scopeDisplay(scope entity.Scope) string {
	switch scope {
	case entity.Scope1:
		return "Scope 1"
	case entity.Scope2:
		return "Scope 2"
	default:
		return "Scope 3"
	}
}
