package calculation

import (
	"strings"

	"github.com/greenledger/carbon-report-go/internal/domain/entity"
)

// legacyAbsoluteThreshold splits untyped legacy reduction values: above it the
// value is read as absolute tonnes, at or below as a percentage. The threshold
// is inherited from the original catalog and is a known ambiguity — a value of
// exactly 100, or a small absolute tonnage on a large baseline, misclassifies.
// Kept as-is for compatibility; do not "fix" silently.
const legacyAbsoluteThreshold = 100.0

// ClassifyStrategy decides the strategy's shape once, at ingestion.
func ClassifyStrategy(raw entity.ReductionStrategy) entity.StrategyKind {
	switch strings.ToLower(strings.TrimSpace(raw.ReductionType)) {
	case "absolute":
		return entity.StrategyAbsolute
	case "percentage":
		return entity.StrategyPercentage
	default:
		return entity.StrategyLegacy
	}
}

// NormalizeStrategies reconciles raw strategy records into canonical
// {absolute, percentage} pairs against the given total emissions. Records
// without a name are dropped entirely. When totalEmissions is zero both sides
// of every pair are zero, regardless of the declared magnitude.
func NormalizeStrategies(rawStrategies []entity.ReductionStrategy, totalEmissions float64) []entity.NormalizedStrategy {
	totalEmissions = SafeFloat(totalEmissions)
	normalized := make([]entity.NormalizedStrategy, 0, len(rawStrategies))

	for _, raw := range rawStrategies {
		name := raw.DisplayName()
		if name == "" {
			continue
		}

		kind := ClassifyStrategy(raw)
		var absolute, percentage float64

		switch kind {
		case entity.StrategyAbsolute:
			absolute, percentage = fromAbsolute(coalesce(raw.ReductionTonnes), totalEmissions)
		case entity.StrategyPercentage:
			absolute, percentage = fromPercentage(coalesce(raw.ReductionPotential), totalEmissions)
		default:
			value := coalesce(raw.PotentialReduction, raw.ReductionPotential, raw.ReductionTonnes)
			if value > legacyAbsoluteThreshold {
				absolute, percentage = fromAbsolute(value, totalEmissions)
			} else {
				absolute, percentage = fromPercentage(value, totalEmissions)
			}
		}

		normalized = append(normalized, entity.NormalizedStrategy{
			Name:                name,
			Scope:               parseScope(raw.Scope),
			Timeframe:           raw.Timeframe,
			Capex:               coalesce(raw.Capex),
			OpexSavings:         coalesce(raw.OpexSavings),
			AbsoluteReduction:   absolute,
			PercentageReduction: percentage,
			Kind:                kind,
		})
	}

	return normalized
}

func fromAbsolute(tonnes, totalEmissions float64) (absolute, percentage float64) {
	if totalEmissions <= 0 {
		// Division-by-zero guard: with no baseline both sides are zero.
		return 0, 0
	}
	absolute = tonnes
	percentage = absolute / totalEmissions * 100
	return absolute, percentage
}

func fromPercentage(percent, totalEmissions float64) (absolute, percentage float64) {
	if totalEmissions <= 0 {
		// Division-by-zero guard: with no baseline both sides are zero.
		return 0, 0
	}
	percentage = percent
	absolute = totalEmissions * percentage / 100
	return absolute, percentage
}

// SummarizeReductions aggregates normalized strategies by scope and derives
// the per-scope and overall reduction percentages against the scope subtotals.
func SummarizeReductions(strategies []entity.NormalizedStrategy, totals entity.EmissionsTotals) entity.ReductionSummary {
	summary := entity.ReductionSummary{
		Strategies:        strategies,
		ReductionByScope:  map[entity.Scope]float64{entity.Scope1: 0, entity.Scope2: 0, entity.Scope3: 0},
		PercentageByScope: map[entity.Scope]float64{entity.Scope1: 0, entity.Scope2: 0, entity.Scope3: 0},
	}

	for _, s := range strategies {
		summary.ReductionByScope[s.Scope] += s.AbsoluteReduction
		summary.TotalReduction += s.AbsoluteReduction
	}

	scopeTotals := map[entity.Scope]float64{
		entity.Scope1: totals.Scope1,
		entity.Scope2: totals.Scope2,
		entity.Scope3: totals.Scope3,
	}
	for scope, reduced := range summary.ReductionByScope {
		if scopeTotals[scope] > 0 {
			summary.PercentageByScope[scope] = reduced / scopeTotals[scope] * 100
		}
	}
	if totals.Total > 0 {
		summary.TotalPercentage = summary.TotalReduction / totals.Total * 100
	}

	return summary
}

// parseScope maps the loosely formatted scope labels of the catalog
// ("Scope 2", "scope2", "2") to the canonical scopes. Anything unrecognized
// lands in Scope 3.
func parseScope(label string) entity.Scope {
	s := strings.ToLower(label)
	switch {
	case strings.Contains(s, "1"):
		return entity.Scope1
	case strings.Contains(s, "2"):
		return entity.Scope2
	default:
		return entity.Scope3
	}
}
