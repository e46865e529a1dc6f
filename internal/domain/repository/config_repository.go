package repository

import (
	"github.com/greenledger/carbon-report-go/internal/domain/entity"
	"github.com/greenledger/carbon-report-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration and report
// input files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	LoadReportInput(filePath string) (*entity.ReportInput, error)
}
