package calculation

import (
	"testing"

	"github.com/greenledger/carbon-report-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestClassifyStrategy(t *testing.T) {
	tests := []struct {
		name string
		raw  entity.ReductionStrategy
		want entity.StrategyKind
	}{
		{"explicit absolute", entity.ReductionStrategy{ReductionType: "absolute"}, entity.StrategyAbsolute},
		{"explicit percentage", entity.ReductionStrategy{ReductionType: "percentage"}, entity.StrategyPercentage},
		{"mixed case with spaces", entity.ReductionStrategy{ReductionType: "  Percentage "}, entity.StrategyPercentage},
		{"missing type is legacy", entity.ReductionStrategy{}, entity.StrategyLegacy},
		{"unrecognized type is legacy", entity.ReductionStrategy{ReductionType: "relative"}, entity.StrategyLegacy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStrategy(tt.raw))
		})
	}
}

func TestNormalizeStrategies(t *testing.T) {
	t.Run("percentage strategy derives absolute from the total", func(t *testing.T) {
		raw := []entity.ReductionStrategy{{
			Name:               "Solar PV installation",
			ReductionType:      "percentage",
			ReductionPotential: floatPtr(25),
			Scope:              "scope2",
			Timeframe:          "2 years",
		}}

		normalized := NormalizeStrategies(raw, 1000)

		assert.Len(t, normalized, 1)
		s := normalized[0]
		assert.Equal(t, "Solar PV installation", s.Name)
		assert.Equal(t, entity.Scope2, s.Scope)
		assert.Equal(t, entity.StrategyPercentage, s.Kind)
		assert.InDelta(t, 250.0, s.AbsoluteReduction, 1e-9)
		assert.InDelta(t, 25.0, s.PercentageReduction, 1e-9)
	})

	t.Run("absolute strategy derives percentage from the total", func(t *testing.T) {
		raw := []entity.ReductionStrategy{{
			Name:            "Fleet electrification",
			ReductionType:   "absolute",
			ReductionTonnes: floatPtr(120),
			Scope:           "Scope 1",
		}}

		normalized := NormalizeStrategies(raw, 600)

		s := normalized[0]
		assert.InDelta(t, 120.0, s.AbsoluteReduction, 1e-9)
		assert.InDelta(t, 20.0, s.PercentageReduction, 1e-9)
		assert.Equal(t, entity.Scope1, s.Scope)
	})

	t.Run("normalized pairs stay mutually consistent", func(t *testing.T) {
		// Round-trip: absolute -> percentage -> absolute recovers the value.
		total := 842.5
		raw := []entity.ReductionStrategy{{
			Name:            "Process heat recovery",
			ReductionType:   "absolute",
			ReductionTonnes: floatPtr(73.2),
		}}

		s := NormalizeStrategies(raw, total)[0]
		assert.InDelta(t, s.AbsoluteReduction, total*s.PercentageReduction/100, 1e-9)
	})

	t.Run("legacy value above threshold reads as absolute tonnes", func(t *testing.T) {
		raw := []entity.ReductionStrategy{{
			Strategy:           "Legacy retrofit",
			PotentialReduction: floatPtr(500),
		}}

		s := NormalizeStrategies(raw, 200)[0]

		// Known quirk of the magnitude heuristic: 500 on a 200 t baseline is
		// read as 500 absolute tonnes, i.e. a 250% reduction.
		assert.Equal(t, entity.StrategyLegacy, s.Kind)
		assert.InDelta(t, 500.0, s.AbsoluteReduction, 1e-9)
		assert.InDelta(t, 250.0, s.PercentageReduction, 1e-9)
	})

	t.Run("legacy value at or below threshold reads as percentage", func(t *testing.T) {
		raw := []entity.ReductionStrategy{{
			Strategy:           "Legacy efficiency",
			PotentialReduction: floatPtr(100),
		}}

		s := NormalizeStrategies(raw, 200)[0]

		assert.InDelta(t, 100.0, s.PercentageReduction, 1e-9)
		assert.InDelta(t, 200.0, s.AbsoluteReduction, 1e-9)
	})

	t.Run("legacy field fallback order", func(t *testing.T) {
		raw := []entity.ReductionStrategy{{
			Name:               "Mixed fields",
			ReductionPotential: floatPtr(30),
			ReductionTonnes:    floatPtr(80),
		}}

		s := NormalizeStrategies(raw, 1000)[0]

		// potential_reduction > reduction_potential > reduction_tonnes; here
		// the first is nil so reduction_potential (30, a percentage) wins.
		assert.InDelta(t, 30.0, s.PercentageReduction, 1e-9)
		assert.InDelta(t, 300.0, s.AbsoluteReduction, 1e-9)
	})

	t.Run("records without a name are dropped", func(t *testing.T) {
		raw := []entity.ReductionStrategy{
			{ReductionType: "percentage", ReductionPotential: floatPtr(10)},
			{Name: "Kept", ReductionType: "percentage", ReductionPotential: floatPtr(5)},
		}

		normalized := NormalizeStrategies(raw, 100)

		assert.Len(t, normalized, 1)
		assert.Equal(t, "Kept", normalized[0].Name)
	})

	t.Run("strategy field stands in for a missing name", func(t *testing.T) {
		raw := []entity.ReductionStrategy{{Strategy: "Old-style record", ReductionPotential: floatPtr(5)}}

		normalized := NormalizeStrategies(raw, 100)

		assert.Len(t, normalized, 1)
		assert.Equal(t, "Old-style record", normalized[0].Name)
	})

	t.Run("zero total emissions never divides", func(t *testing.T) {
		raw := []entity.ReductionStrategy{
			{Name: "Pct on empty baseline", ReductionType: "percentage", ReductionPotential: floatPtr(50)},
			{Name: "Abs on empty baseline", ReductionType: "absolute", ReductionTonnes: floatPtr(40)},
		}

		normalized := NormalizeStrategies(raw, 0)

		// With no baseline both sides are zero for every kind, regardless of
		// the declared magnitude.
		for _, s := range normalized {
			assert.Equal(t, 0.0, s.AbsoluteReduction, "%s", s.Name)
			assert.Equal(t, 0.0, s.PercentageReduction, "%s", s.Name)
		}
	})
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		label string
		want  entity.Scope
	}{
		{"Scope 1", entity.Scope1},
		{"scope1", entity.Scope1},
		{"1", entity.Scope1},
		{"Scope 2", entity.Scope2},
		{"SCOPE2", entity.Scope2},
		{"Scope 3", entity.Scope3},
		{"", entity.Scope3},
		{"value chain", entity.Scope3},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, parseScope(tt.label))
		})
	}
}

func TestSummarizeReductions(t *testing.T) {
	totals := entity.EmissionsTotals{Scope1: 100, Scope2: 200, Scope3: 300, Total: 600}
	strategies := []entity.NormalizedStrategy{
		{Name: "A", Scope: entity.Scope1, AbsoluteReduction: 20},
		{Name: "B", Scope: entity.Scope2, AbsoluteReduction: 50},
		{Name: "C", Scope: entity.Scope2, AbsoluteReduction: 10},
	}

	summary := SummarizeReductions(strategies, totals)

	assert.Equal(t, 20.0, summary.ReductionByScope[entity.Scope1])
	assert.Equal(t, 60.0, summary.ReductionByScope[entity.Scope2])
	assert.Equal(t, 0.0, summary.ReductionByScope[entity.Scope3])
	assert.InDelta(t, 20.0, summary.PercentageByScope[entity.Scope1], 1e-9)
	assert.InDelta(t, 30.0, summary.PercentageByScope[entity.Scope2], 1e-9)
	assert.Equal(t, 80.0, summary.TotalReduction)
	assert.InDelta(t, 80.0/600*100, summary.TotalPercentage, 1e-9)
}

func TestSummarizeReductionsConcreteScenario(t *testing.T) {
	// 200 t total, one 25% strategy on scope 2 (50 t subtotal): the strategy
	// removes 50 t, which is 100% of scope 2 and 25% of the grand total.
	totals := entity.EmissionsTotals{Scope1: 100, Scope2: 50, Scope3: 50, Total: 200}
	raw := []entity.ReductionStrategy{{
		Name:               "Solar",
		ReductionType:      "percentage",
		ReductionPotential: floatPtr(25),
		Scope:              "Scope 2",
	}}

	summary := SummarizeReductions(NormalizeStrategies(raw, totals.Total), totals)

	assert.InDelta(t, 50.0, summary.Strategies[0].AbsoluteReduction, 1e-9)
	assert.InDelta(t, 50.0, summary.ReductionByScope[entity.Scope2], 1e-9)
	assert.InDelta(t, 100.0, summary.PercentageByScope[entity.Scope2], 1e-9)
	assert.InDelta(t, 25.0, summary.TotalPercentage, 1e-9)
}

func TestSummarizeReductionsZeroTotals(t *testing.T) {
	strategies := []entity.NormalizedStrategy{
		{Name: "A", Scope: entity.Scope1, AbsoluteReduction: 20},
	}

	summary := SummarizeReductions(strategies, entity.EmissionsTotals{})

	assert.Equal(t, 20.0, summary.TotalReduction)
	assert.Equal(t, 0.0, summary.TotalPercentage, "no baseline means no percentage")
	assert.Equal(t, 0.0, summary.PercentageByScope[entity.Scope1])
}
