package entity

// Scope identifies a GHG Protocol emission scope.
type Scope string

const (
	Scope1 Scope = "scope1"
	Scope2 Scope = "scope2"
	Scope3 Scope = "scope3"
)

// EmissionFactor converts an activity quantity into kg CO2e.
// Factors are expressed per-kg-equivalent unless the unit says otherwise;
// the calculator divides by 1000 to land on tonnes.
type EmissionFactor struct {
	Key       string  `json:"key" yaml:"key" toml:"key"`
	Factor    float64 `json:"factor" yaml:"factor" toml:"factor"`
	Unit      string  `json:"unit" yaml:"unit" toml:"unit"`
	Reference string  `json:"reference" yaml:"reference" toml:"reference"`
	Scope     Scope   `json:"scope" yaml:"scope" toml:"scope"`
}

// FactorTable maps an activity key to its emission factor. It is built once at
// process start and treated as read-only everywhere it is injected.
type FactorTable map[string]EmissionFactor
