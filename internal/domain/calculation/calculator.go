package calculation

import "github.com/greenledger/carbon-report-go/internal/domain/entity"

// ComputeEmissions converts raw activity quantities into tonnes CO2e per
// category and aggregates them into scope totals.
//
// Unknown activity keys are ignored. Missing or non-numeric quantities coerce
// to zero. An entry in overrides is taken as already-computed tonnes for that
// key and wins over recomputation.
func ComputeEmissions(table entity.FactorTable, inputs entity.ActivityInputs, overrides map[string]float64) entity.EmissionsBreakdown {
	perCategory := make(map[string]float64)

	for key, raw := range inputs {
		if tonnes, ok := overrides[key]; ok {
			perCategory[key] = SafeFloat(tonnes)
			continue
		}
		factor, known := table[key]
		if !known {
			continue
		}
		quantity := SafeNumber(raw)
		perCategory[key] = quantity * factor.Factor / kgPerTonne
	}

	// Overrides for keys absent from the raw inputs still count.
	for key, tonnes := range overrides {
		if _, seen := perCategory[key]; !seen {
			perCategory[key] = SafeFloat(tonnes)
		}
	}

	return entity.EmissionsBreakdown{
		PerCategory: perCategory,
		Totals:      aggregateScopes(table, perCategory),
	}
}

// BreakdownFromData derives the emissions breakdown from the upstream data
// object. Caller-supplied scope totals take precedence over recomputation —
// the calculator must not overwrite pre-aggregated totals that disagree with
// its own arithmetic. Caller-supplied emission factors overlay the process
// table for this build only.
func BreakdownFromData(table entity.FactorTable, data entity.EmissionsData) entity.EmissionsBreakdown {
	table = overlayFactors(table, data.EmissionFactors)
	breakdown := ComputeEmissions(table, data.RawInputs, data.DetailedEmissions)

	if data.Emissions != nil {
		supplied := *data.Emissions
		supplied.Scope1 = SafeFloat(supplied.Scope1)
		supplied.Scope2 = SafeFloat(supplied.Scope2)
		supplied.Scope3 = SafeFloat(supplied.Scope3)
		supplied.Total = supplied.Scope1 + supplied.Scope2 + supplied.Scope3
		breakdown.Totals = supplied
	}

	return breakdown
}

// overlayFactors merges caller-supplied factors over the base table without
// mutating it. An override missing its scope keeps the base table's scope for
// that key.
func overlayFactors(table entity.FactorTable, overrides map[string]entity.EmissionFactor) entity.FactorTable {
	if len(overrides) == 0 {
		return table
	}

	merged := make(entity.FactorTable, len(table)+len(overrides))
	for key, factor := range table {
		merged[key] = factor
	}
	for key, factor := range overrides {
		if factor.Key == "" {
			factor.Key = key
		}
		if factor.Scope == "" {
			factor.Scope = ScopeForCategory(table, key)
		}
		merged[key] = factor
	}
	return merged
}

func aggregateScopes(table entity.FactorTable, perCategory map[string]float64) entity.EmissionsTotals {
	var totals entity.EmissionsTotals
	for key, tonnes := range perCategory {
		switch ScopeForCategory(table, key) {
		case entity.Scope1:
			totals.Scope1 += tonnes
		case entity.Scope2:
			totals.Scope2 += tonnes
		default:
			totals.Scope3 += tonnes
		}
	}
	totals.Total = totals.Scope1 + totals.Scope2 + totals.Scope3
	return totals
}
