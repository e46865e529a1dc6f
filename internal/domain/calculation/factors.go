package calculation

import "github.com/greenledger/carbon-report-go/internal/domain/entity"

// Conversion from kg CO2e to tonnes. Factors below are per-kg-equivalent
// unless the unit says otherwise.
const kgPerTonne = 1000.0

// DefaultFactorTable builds the static emission factor table. It is created
// once in main and injected wherever factors are needed; nothing mutates it
// afterwards.
//
// Scope assignment is fixed per category: stationary/mobile combustion,
// refrigerants, industrial processes and agriculture fall under Scope 1,
// purchased energy under Scope 2, everything else under Scope 3.
func DefaultFactorTable() entity.FactorTable {
	factors := []entity.EmissionFactor{
		// Scope 1 — direct emissions
		{Key: "naturalGas", Factor: 2.03, Unit: "kg CO2e/m3", Reference: "NGA Factors 2023", Scope: entity.Scope1},
		{Key: "diesel", Factor: 2.68, Unit: "kg CO2e/L", Reference: "NGA Factors 2023", Scope: entity.Scope1},
		{Key: "petrol", Factor: 2.31, Unit: "kg CO2e/L", Reference: "NGA Factors 2023", Scope: entity.Scope1},
		{Key: "lpg", Factor: 1.51, Unit: "kg CO2e/L", Reference: "NGA Factors 2023", Scope: entity.Scope1},
		{Key: "fleetVehicles", Factor: 2.35, Unit: "kg CO2e/L", Reference: "NGA Factors 2023", Scope: entity.Scope1},
		{Key: "refrigerants", Factor: 1430.0, Unit: "kg CO2e/kg (R-134a GWP)", Reference: "IPCC AR5", Scope: entity.Scope1},
		{Key: "industrialProcesses", Factor: 1.0, Unit: "kg CO2e/kg", Reference: "GHG Protocol", Scope: entity.Scope1},
		{Key: "agriculture", Factor: 25.0, Unit: "kg CO2e/head (CH4 GWP)", Reference: "IPCC AR5", Scope: entity.Scope1},

		// Scope 2 — purchased energy
		{Key: "electricity", Factor: 0.68, Unit: "kg CO2e/kWh", Reference: "NGA Factors 2023", Scope: entity.Scope2},
		{Key: "purchasedHeat", Factor: 0.27, Unit: "kg CO2e/kWh", Reference: "DEFRA 2023", Scope: entity.Scope2},
		{Key: "purchasedSteam", Factor: 0.19, Unit: "kg CO2e/kWh", Reference: "DEFRA 2023", Scope: entity.Scope2},

		// Scope 3 — value chain
		{Key: "businessFlights", Factor: 0.24, Unit: "kg CO2e/km", Reference: "DEFRA 2023", Scope: entity.Scope3},
		{Key: "hotelStays", Factor: 39.0, Unit: "kg CO2e/night", Reference: "DEFRA 2023", Scope: entity.Scope3},
		{Key: "employeeCommuting", Factor: 0.17, Unit: "kg CO2e/km", Reference: "DEFRA 2023", Scope: entity.Scope3},
		{Key: "wasteLandfill", Factor: 467.0, Unit: "kg CO2e/tonne", Reference: "DEFRA 2023", Scope: entity.Scope3},
		// Avoided emissions: negative factors by design.
		{Key: "recycling", Factor: -21.3, Unit: "kg CO2e/tonne", Reference: "DEFRA 2023", Scope: entity.Scope3},
		{Key: "composting", Factor: -8.9, Unit: "kg CO2e/tonne", Reference: "DEFRA 2023", Scope: entity.Scope3},
		{Key: "water", Factor: 0.344, Unit: "kg CO2e/kL", Reference: "DEFRA 2023", Scope: entity.Scope3},
		{Key: "purchasedGoods", Factor: 0.42, Unit: "kg CO2e/$", Reference: "EEIO estimate", Scope: entity.Scope3},
		{Key: "itEquipment", Factor: 350.0, Unit: "kg CO2e/unit", Reference: "DEFRA 2023", Scope: entity.Scope3},
		{Key: "paperUse", Factor: 0.92, Unit: "kg CO2e/kg", Reference: "DEFRA 2023", Scope: entity.Scope3},
	}

	table := make(entity.FactorTable, len(factors))
	for _, f := range factors {
		table[f.Key] = f
	}
	return table
}

// ScopeForCategory resolves the scope of an activity key. Keys outside the
// factor table (pre-computed overrides for custom categories) land in Scope 3,
// the value-chain catch-all.
func ScopeForCategory(table entity.FactorTable, key string) entity.Scope {
	if f, ok := table[key]; ok {
		return f.Scope
	}
	return entity.Scope3
}
