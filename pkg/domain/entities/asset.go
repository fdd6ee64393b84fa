package entities

import "fmt"

// Asset is a capital item that depreciates and draws electrical power
type Asset struct {
	Name            string  `json:"name" yaml:"name"`
	CapitalCost     float64 `json:"capital_cost" yaml:"capital_cost"`
	UsefulLifeYears float64 `json:"useful_life_years" yaml:"useful_life_years"`
	RatedPowerKW    float64 `json:"rated_power_kw" yaml:"rated_power_kw"`
}

// NewAsset creates a validated Asset
func NewAsset(name string, capitalCost, usefulLifeYears, ratedPowerKW float64) (*Asset, error) {
	if name == "" {
		return nil, fmt.Errorf("asset name cannot be empty")
	}
	if capitalCost < 0 {
		return nil, fmt.Errorf("capital cost cannot be negative, got %g", capitalCost)
	}
	if usefulLifeYears <= 0 {
		return nil, fmt.Errorf("useful life must be positive, got %g", usefulLifeYears)
	}
	if ratedPowerKW < 0 {
		return nil, fmt.Errorf("rated power cannot be negative, got %g", ratedPowerKW)
	}

	return &Asset{
		Name:            name,
		CapitalCost:     capitalCost,
		UsefulLifeYears: usefulLifeYears,
		RatedPowerKW:    ratedPowerKW,
	}, nil
}
