package entities

import "fmt"

// TechnologyVariant describes one printing technology in the cost comparison
type TechnologyVariant struct {
	Name                    string  `json:"name" yaml:"name"`
	SetupCostPerColor       float64 `json:"setup_cost_per_color" yaml:"setup_cost_per_color"`
	WasteKgPerSetup         float64 `json:"waste_kg_per_setup" yaml:"waste_kg_per_setup"`
	ConsumableUnitCost      float64 `json:"consumable_unit_cost" yaml:"consumable_unit_cost"`
	ConsumableLifeMeters    float64 `json:"consumable_life_meters" yaml:"consumable_life_meters"`
	ConsumableUnitsPerColor float64 `json:"consumable_units_per_color" yaml:"consumable_units_per_color"`
	MachineCapitalCost      float64 `json:"machine_capital_cost" yaml:"machine_capital_cost"`
	RatedPowerKW            float64 `json:"rated_power_kw" yaml:"rated_power_kw"`
}

// NewTechnologyVariant creates a validated TechnologyVariant
func NewTechnologyVariant(
	name string,
	setupCostPerColor, wasteKgPerSetup float64,
	consumableUnitCost, consumableLifeMeters, consumableUnitsPerColor float64,
	machineCapitalCost, ratedPowerKW float64,
) (*TechnologyVariant, error) {
	if name == "" {
		return nil, fmt.Errorf("technology name cannot be empty")
	}
	if setupCostPerColor < 0 || wasteKgPerSetup < 0 || consumableUnitCost < 0 {
		return nil, fmt.Errorf("technology %s: setup, waste and consumable costs cannot be negative", name)
	}
	if consumableLifeMeters <= 0 {
		return nil, fmt.Errorf("technology %s: consumable life must be positive, got %g", name, consumableLifeMeters)
	}
	if consumableUnitsPerColor <= 0 {
		return nil, fmt.Errorf("technology %s: consumable units per color must be positive, got %g", name, consumableUnitsPerColor)
	}
	if machineCapitalCost < 0 || ratedPowerKW < 0 {
		return nil, fmt.Errorf("technology %s: machine cost and power cannot be negative", name)
	}

	return &TechnologyVariant{
		Name:                    name,
		SetupCostPerColor:       setupCostPerColor,
		WasteKgPerSetup:         wasteKgPerSetup,
		ConsumableUnitCost:      consumableUnitCost,
		ConsumableLifeMeters:    consumableLifeMeters,
		ConsumableUnitsPerColor: consumableUnitsPerColor,
		MachineCapitalCost:      machineCapitalCost,
		RatedPowerKW:            ratedPowerKW,
	}, nil
}
