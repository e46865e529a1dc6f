package calculation

import (
	"testing"
	"time"

	"github.com/greenledger/carbon-report-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func sampleData() entity.EmissionsData {
	return entity.EmissionsData{
		RawInputs: entity.ActivityInputs{
			"electricity": 100000.0,
			"diesel":      20000.0,
		},
		ReportingYear: 2025,
	}
}

func sampleOrg() entity.OrganizationInfo {
	return entity.OrganizationInfo{
		CompanyName:   "Acme Widgets Pty Ltd",
		AnnualRevenue: 75_000_000,
		EmployeeCount: 320,
		Location:      "Australia",
		BaselineYear:  2022,
	}
}

func TestAssembleReport(t *testing.T) {
	table := DefaultFactorTable()
	today := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	t.Run("report identifier carries project and date", func(t *testing.T) {
		report := AssembleReport(table, sampleData(), nil, sampleOrg(), nil, entity.UserInfo{},
			ReportingContext{ProjectID: "PRJ42", Today: today})

		assert.Equal(t, "REP-PRJ42-20260829", report.ReportID)
		assert.Equal(t, "29 August 2026", report.FormattedDate)
	})

	t.Run("missing project id falls back to NEW", func(t *testing.T) {
		report := AssembleReport(table, sampleData(), nil, sampleOrg(), nil, entity.UserInfo{},
			ReportingContext{Today: today})

		assert.Equal(t, "REP-NEW-20260829", report.ReportID)
	})

	t.Run("assembly is deterministic for a fixed clock", func(t *testing.T) {
		ctx := ReportingContext{ProjectID: "PRJ42", Today: today}
		strategies := []entity.ReductionStrategy{{
			Name: "Solar", ReductionType: "percentage", ReductionPotential: floatPtr(25), Scope: "scope2",
		}}

		first := AssembleReport(table, sampleData(), strategies, sampleOrg(), nil, entity.UserInfo{}, ctx)
		second := AssembleReport(table, sampleData(), strategies, sampleOrg(), nil, entity.UserInfo{}, ctx)

		assert.Equal(t, first, second, "same inputs and clock must produce identical records")
	})

	t.Run("empty input still produces a complete record", func(t *testing.T) {
		report := AssembleReport(table, entity.EmissionsData{}, nil, entity.OrganizationInfo{}, nil,
			entity.UserInfo{}, ReportingContext{Today: today})

		assert.Equal(t, "Unknown Organization", report.Organization.CompanyName)
		assert.Equal(t, "N/A", report.ReportPreparer)
		assert.Equal(t, 0.0, report.Emissions.Total)
		assert.Len(t, report.FiveYearProjection, 5)
		assert.Equal(t, 2026, report.ReportingYear, "reporting year defaults to the current year")
		assert.Equal(t, report.ReportingYear, report.BaselineYear)
		assert.NotEmpty(t, report.ApplicableStandards)
		assert.Equal(t, 0.0, report.Intensity.PerEmployee, "no head count means no intensity")
	})

	t.Run("reduction target defaults to thirty percent", func(t *testing.T) {
		report := AssembleReport(table, sampleData(), nil, sampleOrg(), nil, entity.UserInfo{},
			ReportingContext{Today: today})
		assert.Equal(t, 0.30, report.ReductionTarget)

		data := sampleData()
		data.ReductionTarget = 0.45
		report = AssembleReport(table, data, nil, sampleOrg(), nil, entity.UserInfo{},
			ReportingContext{Today: today})
		assert.Equal(t, 0.45, report.ReductionTarget)
	})

	t.Run("preparer comes from the current user", func(t *testing.T) {
		user := entity.UserInfo{FirstName: "Dana", LastName: "Reyes", Email: "dana@acme.example", Title: "Sustainability Lead"}

		report := AssembleReport(table, sampleData(), nil, sampleOrg(), nil, user,
			ReportingContext{Today: today})

		assert.Equal(t, "Dana Reyes", report.ReportPreparer)
		assert.Equal(t, "Sustainability Lead", report.PreparerTitle)
		assert.Equal(t, "dana@acme.example", report.ContactEmail)
	})

	t.Run("intensity metrics guard against zero denominators", func(t *testing.T) {
		org := sampleOrg()
		report := AssembleReport(table, sampleData(), nil, org, nil, entity.UserInfo{},
			ReportingContext{Today: today})

		assert.InDelta(t, report.Emissions.Total/org.EmployeeCount, report.Intensity.PerEmployee, 1e-9)
		assert.InDelta(t, report.Emissions.Total/(org.AnnualRevenue/1e6), report.Intensity.PerRevenueMillion, 1e-9)
	})

	t.Run("explicit schemes override the location lookup", func(t *testing.T) {
		data := sampleData()
		data.ApplicableSchemes = []string{"Internal Carbon Framework"}

		report := AssembleReport(table, data, nil, sampleOrg(), nil, entity.UserInfo{},
			ReportingContext{Today: today})

		assert.Equal(t, []string{"Internal Carbon Framework"}, report.ApplicableStandards)
	})
}

func TestRegulatoryGroup(t *testing.T) {
	tests := []struct {
		name      string
		revenue   float64
		employees float64
		want      int
	}{
		{"small organization is unclassified", 10_000_000, 30, 0},
		{"mid revenue reaches group 3", 50_000_000, 30, 3},
		{"mid head count reaches group 3", 10_000_000, 100, 3},
		{"large revenue reaches group 2", 200_000_000, 30, 2},
		{"large head count reaches group 2", 10_000_000, 250, 2},
		{"top revenue reaches group 1", 500_000_000, 30, 1},
		{"top head count reaches group 1", 10_000_000, 500, 1},
		{"either threshold suffices", 600_000_000, 5, 1},
		{"zero everything", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RegulatoryGroup(tt.revenue, tt.employees))
		})
	}
}

func TestRegulatoryGroupMonotonicity(t *testing.T) {
	// Group numbers run opposite to size (1 is the most stringent tier), so
	// monotonicity is checked over the stringency rank, not the raw number.
	rank := map[int]int{0: 0, 3: 1, 2: 2, 1: 3}

	revenues := []float64{0, 10_000_000, 50_000_000, 200_000_000, 500_000_000, 1_000_000_000}
	previous := 0
	for _, revenue := range revenues {
		current := rank[RegulatoryGroup(revenue, 0)]
		assert.GreaterOrEqual(t, current, previous,
			"stringency must never decrease as revenue grows (revenue %.0f)", revenue)
		previous = current
	}

	headCounts := []float64{0, 50, 100, 250, 500, 10000}
	previous = 0
	for _, employees := range headCounts {
		current := rank[RegulatoryGroup(0, employees)]
		assert.GreaterOrEqual(t, current, previous,
			"stringency must never decrease as head count grows (%v employees)", employees)
		previous = current
	}
}

func TestApplicableStandards(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     []string
	}{
		{"australia", "Australia", []string{"NGER Act", "Climate Active", "TCFD"}},
		{"spaces and case are normalized", "  new zealand ", []string{"Climate Standards NZ CS1", "TCFD"}},
		{"uk alias", "UK", []string{"SECR", "ESOS", "TCFD"}},
		{"eu", "European Union", []string{"CSRD", "EU ETS", "SFDR"}},
		{"unknown location gets defaults", "Atlantis", []string{"GHG Protocol", "ISO 14064", "TCFD"}},
		{"empty location gets defaults", "", []string{"GHG Protocol", "ISO 14064", "TCFD"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplicableStandards(nil, tt.location))
		})
	}

	t.Run("explicit list wins verbatim", func(t *testing.T) {
		explicit := []string{"Custom Scheme"}
		assert.Equal(t, explicit, ApplicableStandards(explicit, "Australia"))
	})
}
