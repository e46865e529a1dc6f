package entity

// ScenarioEmissions carries a scenario's pre-computed total. The core never
// recomputes scenarios; they appear only in the comparison appendix.
type ScenarioEmissions struct {
	Total float64 `json:"total" yaml:"total" toml:"total"`
}

// Scenario is a what-if record supplied by the scenario modeler.
type Scenario struct {
	Name       string            `json:"name" yaml:"name" toml:"name"`
	Emissions  ScenarioEmissions `json:"emissions" yaml:"emissions" toml:"emissions"`
	Strategies []string          `json:"strategies" yaml:"strategies" toml:"strategies"`
}
