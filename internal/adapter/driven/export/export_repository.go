package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/greenledger/carbon-report-go/internal/domain/entity"
	"github.com/greenledger/carbon-report-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV exporta o relatório montado como uma tabela plana de CSV:
// totais por escopo, estratégias e projeção.
func (r *ExportRepositoryImpl) ExportToCSV(report entity.ReportRecord, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(report, filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Report ID", "Organization", "Reporting Year",
		"Scope 1 (tCO2e)", "Scope 2 (tCO2e)", "Scope 3 (tCO2e)", "Total (tCO2e)",
		"Reduction Potential (%)", "Regulatory Group", "Applicable Standards",
		"Strategies", "Projection",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	var strategyLines []string
	for _, s := range report.Reductions.Strategies {
		strategyLines = append(strategyLines, fmt.Sprintf("%s | %s | %s tCO2e | %s",
			s.Name, scopeLabel(s.Scope), formatTonnes(s.AbsoluteReduction), formatPercent(s.PercentageReduction)))
	}

	var projectionLines []string
	for _, p := range report.FiveYearProjection {
		projectionLines = append(projectionLines, fmt.Sprintf("%d: %s (target %s)",
			p.Year, formatTonnes(p.Emissions), formatTonnes(p.Target)))
	}

	record := []string{
		report.ReportID,
		report.Organization.CompanyName,
		fmt.Sprintf("%d", report.ReportingYear),
		formatTonnes(report.Emissions.Scope1),
		formatTonnes(report.Emissions.Scope2),
		formatTonnes(report.Emissions.Scope3),
		formatTonnes(report.Emissions.Total),
		formatPercent(report.Reductions.TotalPercentage),
		fmt.Sprintf("%d", report.RegulatoryGroup),
		strings.Join(report.ApplicableStandards, "; "),
		strings.Join(strategyLines, "\n"),
		strings.Join(projectionLines, "\n"),
	}
	if err := writer.Write(record); err != nil {
		return "", fmt.Errorf("error writing CSV record: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON exporta o ReportRecord completo como JSON indentado.
func (r *ExportRepositoryImpl) ExportToJSON(report entity.ReportRecord, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(report, filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename monta o caminho de saída e garante que o diretório exista.
// Sem um nome explícito, o stem segue o contrato de nome do documento:
// Carbon_Emissions_Report_<org>_<data ISO>.
func generateFilename(report entity.ReportRecord, base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	if base == "" {
		base = DocumentStem(report)
	}
	return filepath.Join(dir, fmt.Sprintf("%s.%s", base, ext)), nil
}

// DocumentStem devolve o stem canônico do arquivo exportado.
func DocumentStem(report entity.ReportRecord) string {
	date := report.GeneratedAt
	if t, err := time.Parse(time.RFC3339, report.GeneratedAt); err == nil {
		date = t.Format("2006-01-02")
	}
	return fmt.Sprintf("Carbon_Emissions_Report_%s_%s", sanitizeName(report.Organization.CompanyName), date)
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// sanitizeName troca espaços por underscore e remove o que não for seguro em
// nome de arquivo.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Unknown_Organization"
	}
	name = strings.ReplaceAll(name, " ", "_")
	return unsafeNameChars.ReplaceAllString(name, "")
}

// formatTonnes formata toneladas de CO2e com duas casas e separador de milhar.
// Contrato de apresentação: não mudar sem mudar também o documento.
func formatTonnes(v float64) string {
	return groupThousands(fmt.Sprintf("%.2f", v))
}

// formatCurrency formata moeda com separador de milhar e sem casas decimais.
func formatCurrency(v float64) string {
	return "$" + groupThousands(fmt.Sprintf("%.0f", v))
}

// formatPercent formata percentuais com uma casa decimal.
func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// groupThousands insere separadores de milhar na parte inteira de um número
// já formatado.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// scopeLabel devolve o rótulo de exibição de um escopo.
func scopeLabel(scope entity.Scope) string {
	switch scope {
	case entity.Scope1:
		return "Scope 1"
	case entity.Scope2:
		return "Scope 2"
	default:
		return "Scope 3"
	}
}

// sortedCategories devolve as categorias ordenadas por emissão decrescente.
func sortedCategories(perCategory map[string]float64) []string {
	keys := make([]string, 0, len(perCategory))
	for k := range perCategory {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if perCategory[keys[i]] == perCategory[keys[j]] {
			return keys[i] < keys[j]
		}
		return perCategory[keys[i]] > perCategory[keys[j]]
	})
	return keys
}
