package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/greenledger/carbon-report-go/internal/domain/entity"
	"github.com/greenledger/carbon-report-go/internal/domain/repository"
	"github.com/greenledger/carbon-report-go/internal/shared/types"
)

// StoreRepositoryImpl implementa o StoreRepository: um snapshot JSON por
// relatório, chaveado pelo report ID. Escrita é upsert last-write-wins — não
// há read-modify-write nem locking além disso.
type StoreRepositoryImpl struct {
	dir string
}

// NewStoreRepository cria o repositório de snapshots no diretório informado.
// Vazio usa ~/.carbon-report/reports.
func NewStoreRepository(dir string) repository.StoreRepository {
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".carbon-report", "reports")
		} else {
			dir = "reports"
		}
	}
	return &StoreRepositoryImpl{dir: dir}
}

// SaveReport grava o snapshot do relatório, sobrescrevendo qualquer versão
// anterior com o mesmo report ID.
func (r *StoreRepositoryImpl) SaveReport(report entity.ReportRecord) (string, error) {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return "", fmt.Errorf("error creating store directory '%s': %w", r.dir, err)
	}

	path := r.pathFor(report.ReportID)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating report snapshot: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding report snapshot: %w", err)
	}

	return filepath.Abs(path)
}

// LoadReport lê um snapshot pelo report ID.
func (r *StoreRepositoryImpl) LoadReport(reportID string) (*entity.ReportRecord, error) {
	data, err := os.ReadFile(r.pathFor(reportID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, types.ErrReportNotFound
		}
		return nil, fmt.Errorf("error reading report snapshot: %w", err)
	}

	var report entity.ReportRecord
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("error decoding report snapshot: %w", err)
	}
	return &report, nil
}

// ListReports devolve os report IDs armazenados, em ordem estável.
func (r *StoreRepositoryImpl) ListReports() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error listing store directory: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *StoreRepositoryImpl) pathFor(reportID string) string {
	return filepath.Join(r.dir, reportID+".json")
}
