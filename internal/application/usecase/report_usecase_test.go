package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/greenledger/carbon-report-go/internal/domain/calculation"
	"github.com/greenledger/carbon-report-go/internal/domain/entity"
	"github.com/greenledger/carbon-report-go/internal/domain/repository"
	"github.com/greenledger/carbon-report-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fakes ---

type fakeExportRepo struct {
	pdfErr      error
	pdfCalls    int
	csvCalls    int
	jsonCalls   int
	fallbackErr error
	fallbacks   int
}

func (f *fakeExportRepo) ExportToPDF(report entity.ReportRecord, factors entity.FactorTable, charts map[string][]byte, filename, outputDir string) (string, error) {
	f.pdfCalls++
	if f.pdfErr != nil {
		return "", f.pdfErr
	}
	return "/tmp/out/report.pdf", nil
}

func (f *fakeExportRepo) ExportToCSV(report entity.ReportRecord, filename, outputDir string) (string, error) {
	f.csvCalls++
	return "/tmp/out/report.csv", nil
}

func (f *fakeExportRepo) ExportToJSON(report entity.ReportRecord, filename, outputDir string) (string, error) {
	f.jsonCalls++
	return "/tmp/out/report.json", nil
}

func (f *fakeExportRepo) RenderFallbackPDF(report entity.ReportRecord, filename, outputDir string) (string, error) {
	f.fallbacks++
	if f.fallbackErr != nil {
		return "", f.fallbackErr
	}
	return "/tmp/out/fallback.pdf", nil
}

type fakeConfigRepo struct {
	input *entity.ReportInput
	err   error
}

func (f *fakeConfigRepo) LoadConfigFile(filePath string) (*types.Config, error) {
	return &types.Config{}, nil
}

func (f *fakeConfigRepo) LoadReportInput(filePath string) (*entity.ReportInput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.input, nil
}

type fakeStoreRepo struct {
	saved []entity.ReportRecord
	dir   string
}

func (f *fakeStoreRepo) SaveReport(report entity.ReportRecord) (string, error) {
	f.saved = append(f.saved, report)
	return "/tmp/store/" + report.ReportID + ".json", nil
}

func (f *fakeStoreRepo) LoadReport(reportID string) (*entity.ReportRecord, error) {
	return nil, types.ErrReportNotFound
}

func (f *fakeStoreRepo) ListReports() ([]string, error) { return nil, nil }

type fakeMailRepo struct {
	sentTo   string
	sentPath string
	err      error
	host     string
	port     int
	from     string
}

func (f *fakeMailRepo) SendReport(report entity.ReportRecord, attachmentPath, recipient string) error {
	if f.err != nil {
		return f.err
	}
	f.sentTo = recipient
	f.sentPath = attachmentPath
	return nil
}

type noopStatus struct{}

func (noopStatus) Update(string) {}
func (noopStatus) Stop()         {}

type noopProgress struct{}

func (noopProgress) Increment() {}
func (noopProgress) Stop()      {}

type noopTable struct{}

func (noopTable) AddColumn(string, ...interface{}) {}
func (noopTable) AddRow(...interface{})            {}
func (noopTable) Render() string                   { return "" }

type noopConsole struct{}

func (noopConsole) Print(...interface{})                        {}
func (noopConsole) Printf(string, ...interface{})               {}
func (noopConsole) Println(...interface{})                      {}
func (noopConsole) LogInfo(string, ...interface{})              {}
func (noopConsole) LogWarning(string, ...interface{})           {}
func (noopConsole) LogError(string, ...interface{})             {}
func (noopConsole) LogSuccess(string, ...interface{})           {}
func (noopConsole) Status(string) types.StatusHandle            { return noopStatus{} }
func (noopConsole) ProgressWithTotal(int) types.ProgressHandle  { return noopProgress{} }
func (noopConsole) CreateTable() types.TableInterface           { return noopTable{} }
func (noopConsole) DisplayProjectionBars([]types.ProjectionBar) {}

// --- Fixtures ---

func sampleInput() *entity.ReportInput {
	reduction := 25.0
	return &entity.ReportInput{
		ProjectID: "PRJ42",
		EmissionsData: entity.EmissionsData{
			RawInputs:     entity.ActivityInputs{"electricity": 120000.0, "diesel": 15000.0},
			ReportingYear: 2025,
		},
		ReductionStrategies: []entity.ReductionStrategy{{
			Name:               "Solar PV installation",
			ReductionType:      "percentage",
			ReductionPotential: &reduction,
			Scope:              "scope2",
		}},
		OrganizationInfo: entity.OrganizationInfo{
			CompanyName:   "Acme Widgets Pty Ltd",
			AnnualRevenue: 250_000_000,
			EmployeeCount: 320,
			Location:      "Australia",
		},
	}
}

func newTestUseCase(exportRepo *fakeExportRepo, configRepo *fakeConfigRepo, storeRepo *fakeStoreRepo, mailRepo *fakeMailRepo) *ReportUseCase {
	return NewReportUseCase(
		exportRepo,
		configRepo,
		func(dir string) repository.StoreRepository {
			storeRepo.dir = dir
			return storeRepo
		},
		func(host string, port int, from string) repository.MailRepository {
			mailRepo.host, mailRepo.port, mailRepo.from = host, port, from
			return mailRepo
		},
		noopConsole{},
		calculation.DefaultFactorTable(),
	)
}

// --- Tests ---

func TestRunReportRequiresInputFile(t *testing.T) {
	uc := newTestUseCase(&fakeExportRepo{}, &fakeConfigRepo{}, &fakeStoreRepo{}, &fakeMailRepo{})

	err := uc.RunReport(context.Background(), &types.CLIArgs{})

	assert.ErrorIs(t, err, types.ErrNoInputFile)
}

func TestRunReportExportsRequestedTypes(t *testing.T) {
	exportRepo := &fakeExportRepo{}
	uc := newTestUseCase(exportRepo, &fakeConfigRepo{input: sampleInput()}, &fakeStoreRepo{}, &fakeMailRepo{})

	err := uc.RunReport(context.Background(), &types.CLIArgs{
		InputFile:  "input.yaml",
		ReportType: []string{"pdf", "csv", "json"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, exportRepo.pdfCalls)
	assert.Equal(t, 1, exportRepo.csvCalls)
	assert.Equal(t, 1, exportRepo.jsonCalls)
	assert.Equal(t, 0, exportRepo.fallbacks)
}

func TestRunReportFallsBackWhenPDFRenderingFails(t *testing.T) {
	exportRepo := &fakeExportRepo{pdfErr: errors.New("layout blew up")}
	uc := newTestUseCase(exportRepo, &fakeConfigRepo{input: sampleInput()}, &fakeStoreRepo{}, &fakeMailRepo{})

	err := uc.RunReport(context.Background(), &types.CLIArgs{
		InputFile:  "input.yaml",
		ReportType: []string{"pdf"},
	})

	require.NoError(t, err, "a failed full render degrades, it does not abort the run")
	assert.Equal(t, 1, exportRepo.fallbacks)
}

func TestRunReportSavesSnapshotWhenRequested(t *testing.T) {
	storeRepo := &fakeStoreRepo{}
	uc := newTestUseCase(&fakeExportRepo{}, &fakeConfigRepo{input: sampleInput()}, storeRepo, &fakeMailRepo{})

	err := uc.RunReport(context.Background(), &types.CLIArgs{
		InputFile:  "input.yaml",
		ReportType: []string{"json"},
		Save:       true,
		StoreDir:   "/tmp/snapshots",
	})

	require.NoError(t, err)
	require.Len(t, storeRepo.saved, 1)
	assert.Contains(t, storeRepo.saved[0].ReportID, "REP-PRJ42-")
	assert.Equal(t, "/tmp/snapshots", storeRepo.dir, "the store-dir flag must reach the repository")
}

func TestRunReportEmailsGeneratedDocument(t *testing.T) {
	mailRepo := &fakeMailRepo{}
	uc := newTestUseCase(&fakeExportRepo{}, &fakeConfigRepo{input: sampleInput()}, &fakeStoreRepo{}, mailRepo)

	err := uc.RunReport(context.Background(), &types.CLIArgs{
		InputFile:  "input.yaml",
		ReportType: []string{"pdf"},
		Email:      "dana@acme.example",
		SMTPHost:   "mail.acme.example",
		SMTPPort:   587,
	})

	require.NoError(t, err)
	assert.Equal(t, "dana@acme.example", mailRepo.sentTo)
	assert.Equal(t, "/tmp/out/report.pdf", mailRepo.sentPath)
	assert.Equal(t, "mail.acme.example", mailRepo.host, "the smtp-host flag must reach the repository")
	assert.Equal(t, 587, mailRepo.port)
}

func TestRunReportEmailGeneratesPDFOnDemand(t *testing.T) {
	// When only csv was requested, emailing still needs a document.
	exportRepo := &fakeExportRepo{}
	mailRepo := &fakeMailRepo{}
	uc := newTestUseCase(exportRepo, &fakeConfigRepo{input: sampleInput()}, &fakeStoreRepo{}, mailRepo)

	err := uc.RunReport(context.Background(), &types.CLIArgs{
		InputFile:  "input.yaml",
		ReportType: []string{"csv"},
		Email:      "dana@acme.example",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, exportRepo.pdfCalls, "email without a pdf export renders one on demand")
	assert.Equal(t, "/tmp/out/report.pdf", mailRepo.sentPath)
}

func TestRunReportReportsMailFailure(t *testing.T) {
	mailRepo := &fakeMailRepo{err: types.ErrInvalidRecipient}
	uc := newTestUseCase(&fakeExportRepo{}, &fakeConfigRepo{input: sampleInput()}, &fakeStoreRepo{}, mailRepo)

	err := uc.RunReport(context.Background(), &types.CLIArgs{
		InputFile:  "input.yaml",
		ReportType: []string{"pdf"},
		Email:      "not-an-email",
	})

	assert.ErrorIs(t, err, types.ErrInvalidRecipient,
		"the artifacts stay on disk but the run surfaces the send failure")
}

func TestRunReportPropagatesLoadError(t *testing.T) {
	loadErr := errors.New("error parsing YAML file")
	uc := newTestUseCase(&fakeExportRepo{}, &fakeConfigRepo{err: loadErr}, &fakeStoreRepo{}, &fakeMailRepo{})

	err := uc.RunReport(context.Background(), &types.CLIArgs{InputFile: "broken.yaml"})

	assert.ErrorIs(t, err, loadErr)
}

func TestBuildReport(t *testing.T) {
	uc := newTestUseCase(&fakeExportRepo{}, &fakeConfigRepo{}, &fakeStoreRepo{}, &fakeMailRepo{})
	input := sampleInput()

	t.Run("explicit project id wins over the input's", func(t *testing.T) {
		report := uc.BuildReport(*input, "OVERRIDE")
		assert.Contains(t, report.ReportID, "REP-OVERRIDE-")
	})

	t.Run("input project id is the fallback", func(t *testing.T) {
		report := uc.BuildReport(*input, "")
		assert.Contains(t, report.ReportID, "REP-PRJ42-")
	})

	t.Run("assembles the full record", func(t *testing.T) {
		report := uc.BuildReport(*input, "")

		assert.Positive(t, report.Emissions.Total)
		require.Len(t, report.Reductions.Strategies, 1)
		assert.Equal(t, "Solar PV installation", report.Reductions.Strategies[0].Name)
		assert.Len(t, report.FiveYearProjection, 5)
		assert.Equal(t, 2, report.RegulatoryGroup)
		assert.Contains(t, report.ApplicableStandards, "NGER Act")
	})
}
