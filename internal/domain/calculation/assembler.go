package calculation

import (
	"fmt"
	"time"

	"github.com/greenledger/carbon-report-go/internal/domain/entity"
)

// ReportingContext carries the per-request identity inputs for assembly.
// Today is injected so two builds with the same clock produce identical
// records.
type ReportingContext struct {
	ProjectID string
	Today     time.Time
	// Standards, when non-empty, overrides the location lookup verbatim.
	Standards []string
}

// Default reduction target for the projection pathway when the input carries
// none: 30% over the 5-year window.
const defaultReductionTarget = 0.30

// AssembleReport merges the calculator output, normalized strategies,
// projections and organizational metadata into the canonical ReportRecord.
// It never fails: missing identity fields get placeholders, every numeric
// passes through the safe-number guard, and degraded inputs still produce a
// complete record.
func AssembleReport(
	table entity.FactorTable,
	data entity.EmissionsData,
	rawStrategies []entity.ReductionStrategy,
	org entity.OrganizationInfo,
	scenarios []entity.Scenario,
	user entity.UserInfo,
	ctx ReportingContext,
) entity.ReportRecord {
	breakdown := BreakdownFromData(table, data)
	totals := breakdown.Totals

	strategies := NormalizeStrategies(rawStrategies, totals.Total)
	reductions := SummarizeReductions(strategies, totals)

	target := SafeFloat(data.ReductionTarget)
	if target <= 0 {
		target = defaultReductionTarget
	}

	today := ctx.Today
	if today.IsZero() {
		today = time.Now()
	}

	projectID := ctx.ProjectID
	if projectID == "" {
		projectID = "NEW"
	}

	companyName := org.CompanyName
	if companyName == "" {
		companyName = "Unknown Organization"
	}
	org.CompanyName = companyName
	org.AnnualRevenue = SafeFloat(org.AnnualRevenue)
	org.EmployeeCount = SafeFloat(org.EmployeeCount)
	org.FacilityCount = SafeFloat(org.FacilityCount)
	org.FleetSize = SafeFloat(org.FleetSize)
	if org.Location == "" {
		org.Location = data.Location
	}

	reportingYear := data.ReportingYear
	if reportingYear == 0 {
		reportingYear = org.ReportingYear
	}
	if reportingYear == 0 {
		reportingYear = today.Year()
	}
	baselineYear := org.BaselineYear
	if baselineYear == 0 {
		baselineYear = reportingYear
	}

	preparer := user.FullName()
	if preparer == "" {
		preparer = "N/A"
	}

	explicit := ctx.Standards
	if len(explicit) == 0 {
		explicit = data.ApplicableSchemes
	}

	return entity.ReportRecord{
		ReportID:      fmt.Sprintf("REP-%s-%s", projectID, today.Format("20060102")),
		FormattedDate: today.Format("2 January 2006"),
		GeneratedAt:   today.Format(time.RFC3339),

		Organization: org,

		Emissions:   totals,
		PerCategory: breakdown.PerCategory,

		Reductions: reductions,

		FiveYearProjection: ProjectFiveYears(totals.Total, reductions.TotalPercentage, target, today.Year()),
		ReductionTarget:    target,

		RegulatoryGroup:       RegulatoryGroup(org.AnnualRevenue, org.EmployeeCount),
		ApplicableStandards:   ApplicableStandards(explicit, org.Location),
		ReportingRequirements: data.ReportingRequirements,
		OffsetRequirements:    data.OffsetRequirements,

		Intensity: intensityMetrics(totals.Total, org),

		Scenarios: scenarios,

		ReportingYear:      reportingYear,
		BaselineYear:       baselineYear,
		VerificationStatus: "Unverified (self-reported)",
		ReportPreparer:     preparer,
		PreparerTitle:      user.Title,
		ContactEmail:       user.Email,
	}
}

// RegulatoryGroup classifies the organization into a mandatory-reporting tier
// by revenue (in dollars) and head count. Highest group wins; 0 means below
// every threshold.
func RegulatoryGroup(annualRevenue, employeeCount float64) int {
	revenueM := SafeFloat(annualRevenue) / 1e6
	employees := SafeFloat(employeeCount)

	switch {
	case revenueM >= 500 || employees >= 500:
		return 1
	case revenueM >= 200 || employees >= 250:
		return 2
	case revenueM >= 50 || employees >= 100:
		return 3
	default:
		return 0
	}
}

func intensityMetrics(total float64, org entity.OrganizationInfo) entity.IntensityMetrics {
	var m entity.IntensityMetrics
	if org.EmployeeCount > 0 {
		m.PerEmployee = total / org.EmployeeCount
	}
	if org.AnnualRevenue > 0 {
		m.PerRevenueMillion = total / (org.AnnualRevenue / 1e6)
	}
	return m
}
