package entity

// ActivityInputs maps an activity key to a raw quantity (liters, kWh,
// head-count, currency amount). Values arrive loosely typed from the upstream
// collectors, so anything non-numeric is coerced to zero downstream.
type ActivityInputs map[string]interface{}

// EmissionsTotals holds the scope subtotals and grand total in tonnes CO2e.
// Total is always the signed sum of the three scopes; subtotals may go
// negative when avoided-emission factors (recycling, composting) are present.
type EmissionsTotals struct {
	Scope1 float64 `json:"scope1" yaml:"scope1" toml:"scope1"`
	Scope2 float64 `json:"scope2" yaml:"scope2" toml:"scope2"`
	Scope3 float64 `json:"scope3" yaml:"scope3" toml:"scope3"`
	Total  float64 `json:"total" yaml:"total" toml:"total"`
}

// EmissionsData is the normalized emissions object handed to the core by the
// upstream collectors. Any section may be absent. EmissionFactors, when
// present, overlays the process factor table for this build only.
type EmissionsData struct {
	Emissions             *EmissionsTotals          `json:"emissions,omitempty" yaml:"emissions" toml:"emissions"`
	DetailedEmissions     map[string]float64        `json:"detailed_emissions,omitempty" yaml:"detailed_emissions" toml:"detailed_emissions"`
	RawInputs             ActivityInputs            `json:"raw_inputs,omitempty" yaml:"raw_inputs" toml:"raw_inputs"`
	EmissionFactors       map[string]EmissionFactor `json:"emission_factors,omitempty" yaml:"emission_factors" toml:"emission_factors"`
	ReportingYear         int                       `json:"reporting_year,omitempty" yaml:"reporting_year" toml:"reporting_year"`
	ReductionTarget       float64                   `json:"reduction_target,omitempty" yaml:"reduction_target" toml:"reduction_target"`
	ApplicableSchemes     []string                  `json:"applicable_schemes,omitempty" yaml:"applicable_schemes" toml:"applicable_schemes"`
	ReportingRequirements []string                  `json:"reporting_requirements,omitempty" yaml:"reporting_requirements" toml:"reporting_requirements"`
	OffsetRequirements    []string                  `json:"offset_requirements,omitempty" yaml:"offset_requirements" toml:"offset_requirements"`
	Location              string                    `json:"location,omitempty" yaml:"location" toml:"location"`
}

// EmissionsBreakdown is the calculator output: tonnes per activity category
// plus the aggregated scope totals.
type EmissionsBreakdown struct {
	PerCategory map[string]float64 `json:"per_category"`
	Totals      EmissionsTotals    `json:"totals"`
}
