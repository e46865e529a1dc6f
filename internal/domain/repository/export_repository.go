package repository

import (
	"github.com/greenledger/carbon-report-go/internal/domain/entity"
)

// ExportRepository renders and exports the assembled report. The PDF renderer
// owns the full paginated document; RenderFallbackPDF produces the minimal
// title+summary document used when full rendering fails.
type ExportRepository interface {
	ExportToPDF(report entity.ReportRecord, factors entity.FactorTable, charts map[string][]byte, filename, outputDir string) (string, error)
	ExportToCSV(report entity.ReportRecord, filename, outputDir string) (string, error)
	ExportToJSON(report entity.ReportRecord, filename, outputDir string) (string, error)

	RenderFallbackPDF(report entity.ReportRecord, filename, outputDir string) (string, error)
}
