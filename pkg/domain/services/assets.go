package services

import "github.com/vsinha/filmplant/pkg/domain/entities"

// UtilityParameters holds the electricity tariff and running hours
type UtilityParameters struct {
	ElectricityRate      float64 `json:"electricity_rate" yaml:"electricity_rate"` // currency per kWh
	WorkingHoursPerMonth float64 `json:"working_hours_per_month" yaml:"working_hours_per_month"`
}

// HoursPerMonth returns the configured running hours, falling back to the
// press shift time when none are set.
func (u UtilityParameters) HoursPerMonth(process entities.ProcessParameters) float64 {
	if u.WorkingHoursPerMonth > 0 {
		return u.WorkingHoursPerMonth
	}
	return process.ShiftMinutesPerMonth / 60
}

// AssetLine is the monthly charge of one asset
type AssetLine struct {
	Name                string           `json:"name"`
	CapitalCost         float64          `json:"capital_cost"`
	MonthlyDepreciation entities.Guarded `json:"monthly_depreciation"`
	MonthlyPowerCost    float64          `json:"monthly_power_cost"`
	CapitalSharePercent entities.Guarded `json:"capital_share_percent"`
}

// AssetsResult aggregates depreciation and power across the asset list
type AssetsResult struct {
	Lines             []AssetLine `json:"lines"`
	TotalCapital      float64     `json:"total_capital"`
	TotalDepreciation float64     `json:"total_depreciation"`
	TotalPowerCost    float64     `json:"total_power_cost"`
}

// MonthlyDepreciation spreads capital cost straight-line over the useful life
func MonthlyDepreciation(capitalCost, usefulLifeYears float64) entities.Guarded {
	return entities.Divide(capitalCost, usefulLifeYears*12, "useful life must be positive")
}

// MonthlyPowerCost prices the energy drawn by a machine running at its rated load
func MonthlyPowerCost(ratedPowerKW, hoursPerMonth, efficiency, electricityRate float64) float64 {
	return ratedPowerKW * hoursPerMonth * efficiency * electricityRate
}

// CalculateAssets totals depreciation and power over an arbitrary-length
// asset list, in the order given.
func CalculateAssets(
	assets []entities.Asset,
	utilities UtilityParameters,
	process entities.ProcessParameters,
) (AssetsResult, []entities.Issue) {
	var issues []entities.Issue
	hours := utilities.HoursPerMonth(process)

	result := AssetsResult{Lines: make([]AssetLine, 0, len(assets))}
	for _, asset := range assets {
		result.TotalCapital += asset.CapitalCost
	}

	for _, asset := range assets {
		line := AssetLine{
			Name:                asset.Name,
			CapitalCost:         asset.CapitalCost,
			MonthlyDepreciation: MonthlyDepreciation(asset.CapitalCost, asset.UsefulLifeYears),
			MonthlyPowerCost:    MonthlyPowerCost(asset.RatedPowerKW, hours, process.EfficiencyFactor, utilities.ElectricityRate),
			CapitalSharePercent: entities.Divide(asset.CapitalCost*100, result.TotalCapital, "no capital invested"),
		}
		if !line.MonthlyDepreciation.Defined {
			issues = append(issues, entities.NewIssue(entities.InvalidInput, "assets."+asset.Name,
				"useful life must be positive, got %g", asset.UsefulLifeYears))
		}

		result.TotalDepreciation += line.MonthlyDepreciation.Value
		result.TotalPowerCost += line.MonthlyPowerCost
		result.Lines = append(result.Lines, line)
	}

	return result, issues
}
