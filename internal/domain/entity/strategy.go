package entity

// StrategyKind tags how a raw strategy record declares its reduction. The tag
// is decided once at ingestion; downstream code pattern-matches on it instead
// of re-inspecting the raw fields.
type StrategyKind string

const (
	StrategyAbsolute   StrategyKind = "absolute"
	StrategyPercentage StrategyKind = "percentage"
	// StrategyLegacy marks records that never declared a reduction type;
	// classification falls back to a magnitude heuristic.
	StrategyLegacy StrategyKind = "legacy"
)

// ReductionStrategy is a raw strategy record as supplied by the upstream
// project catalog. Legacy records carry their reduction value under any of
// three field names and omit ReductionType entirely.
type ReductionStrategy struct {
	Name               string   `json:"name,omitempty" yaml:"name" toml:"name"`
	Strategy           string   `json:"strategy,omitempty" yaml:"strategy" toml:"strategy"`
	ReductionType      string   `json:"reduction_type,omitempty" yaml:"reduction_type" toml:"reduction_type"`
	ReductionTonnes    *float64 `json:"reduction_tonnes,omitempty" yaml:"reduction_tonnes" toml:"reduction_tonnes"`
	ReductionPotential *float64 `json:"reduction_potential,omitempty" yaml:"reduction_potential" toml:"reduction_potential"`
	PotentialReduction *float64 `json:"potential_reduction,omitempty" yaml:"potential_reduction" toml:"potential_reduction"`
	Scope              string   `json:"scope,omitempty" yaml:"scope" toml:"scope"`
	Timeframe          string   `json:"timeframe,omitempty" yaml:"timeframe" toml:"timeframe"`
	Capex              *float64 `json:"capex,omitempty" yaml:"capex" toml:"capex"`
	OpexSavings        *float64 `json:"opex_savings,omitempty" yaml:"opex_savings" toml:"opex_savings"`
}

// DisplayName returns the record's name, falling back to the legacy
// "strategy" field. Records without either are dropped by the normalizer.
func (s ReductionStrategy) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Strategy
}

// NormalizedStrategy is the canonical reconciliation of a raw record: both an
// absolute tonnage and a percentage of total emissions, always consistent with
// each other when total emissions are positive.
type NormalizedStrategy struct {
	Name                string       `json:"name"`
	Scope               Scope        `json:"scope"`
	Timeframe           string       `json:"timeframe"`
	Capex               float64      `json:"capex"`
	OpexSavings         float64      `json:"opex_savings"`
	AbsoluteReduction   float64      `json:"absolute_reduction"`
	PercentageReduction float64      `json:"percentage_reduction"`
	Kind                StrategyKind `json:"kind"`
}

// ReductionSummary aggregates normalized strategies by scope.
type ReductionSummary struct {
	Strategies       []NormalizedStrategy `json:"strategies"`
	ReductionByScope map[Scope]float64    `json:"reduction_by_scope"`
	TotalReduction   float64              `json:"total_reduction"`
	// Percentages are relative to the matching scope subtotal; Total is
	// relative to the grand total.
	PercentageByScope map[Scope]float64 `json:"percentage_by_scope"`
	TotalPercentage   float64           `json:"total_percentage"`
}
