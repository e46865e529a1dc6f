package repository

import (
	"github.com/greenledger/carbon-report-go/internal/domain/entity"
)

// StoreRepository persists assembled reports as opaque snapshots keyed by
// report ID. Writes are last-write-wins upserts.
type StoreRepository interface {
	SaveReport(report entity.ReportRecord) (string, error)
	LoadReport(reportID string) (*entity.ReportRecord, error)
	ListReports() ([]string, error)
}
