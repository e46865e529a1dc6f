package entity

// IntensityMetrics are the derived per-employee / per-revenue figures.
type IntensityMetrics struct {
	PerEmployee       float64 `json:"per_employee"`
	PerRevenueMillion float64 `json:"per_revenue_million"`
}

// ReportRecord is the canonical assembled report. The assembler is the only
// writer; every consumer (renderer, store, mailer) treats it as read-only.
type ReportRecord struct {
	ReportID      string `json:"report_id"`
	FormattedDate string `json:"formatted_date"`
	GeneratedAt   string `json:"generated_at"`

	Organization OrganizationInfo `json:"organization"`

	Emissions   EmissionsTotals    `json:"emissions"`
	PerCategory map[string]float64 `json:"per_category,omitempty"`

	Reductions ReductionSummary `json:"reductions"`

	FiveYearProjection []ProjectionPoint `json:"five_year_projection"`
	ReductionTarget    float64           `json:"reduction_target"`

	RegulatoryGroup       int      `json:"regulatory_group"`
	ApplicableStandards   []string `json:"applicable_standards"`
	ReportingRequirements []string `json:"reporting_requirements,omitempty"`
	OffsetRequirements    []string `json:"offset_requirements,omitempty"`

	Intensity IntensityMetrics `json:"intensity"`

	Scenarios []Scenario `json:"scenarios,omitempty"`

	ReportingYear      int    `json:"reporting_year"`
	BaselineYear       int    `json:"baseline_year"`
	VerificationStatus string `json:"verification_status"`
	ReportPreparer     string `json:"report_preparer"`
	PreparerTitle      string `json:"preparer_title,omitempty"`
	ContactEmail       string `json:"contact_email,omitempty"`
}
