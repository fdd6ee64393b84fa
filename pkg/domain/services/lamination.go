package services

import "github.com/vsinha/filmplant/pkg/domain/entities"

// LaminationParameters describes the laminator
type LaminationParameters struct {
	SpeedMPerMin float64 `json:"speed_m_per_min" yaml:"speed_m_per_min"`
}

// LaminationResult reports how heavily the product loads the laminator
type LaminationResult struct {
	Status             entities.LaminationStatus `json:"status"`
	PassCount          int                       `json:"pass_count"`
	CapacityMeters     float64                   `json:"capacity_meters"`
	RequiredMeters     float64                   `json:"required_meters"`
	UtilizationPercent float64                   `json:"utilization_percent"`
}

// CalculateLamination compares the metres the product must run through the
// laminator against the machine's monthly capacity. Single-layer products
// never touch the laminator. Utilization above 100% is a valid result
// flagged as a bottleneck, not an error.
func CalculateLamination(
	passCount int,
	linearMeters float64,
	lam LaminationParameters,
	process entities.ProcessParameters,
) (LaminationResult, []entities.Issue) {
	if passCount <= 0 {
		return LaminationResult{Status: entities.LaminationNotRequired}, nil
	}

	capacity := lam.SpeedMPerMin * process.ShiftMinutesPerMonth * process.EfficiencyFactor
	required := linearMeters * float64(passCount)

	result := LaminationResult{
		Status:         entities.WithinCapacity,
		PassCount:      passCount,
		CapacityMeters: capacity,
		RequiredMeters: required,
	}

	if capacity <= 0 {
		if required <= 0 {
			return result, nil
		}
		result.Status = entities.CapacityBlocked
		return result, []entities.Issue{entities.NewIssue(entities.Bottleneck, "lamination",
			"laminator has no capacity but %.0f m require %d pass(es)", required, passCount)}
	}

	result.UtilizationPercent = required / capacity * 100
	if result.UtilizationPercent > 100 {
		result.Status = entities.OverCapacity
		return result, []entities.Issue{entities.NewIssue(entities.Bottleneck, "lamination",
			"laminator loaded to %.1f%% of capacity", result.UtilizationPercent)}
	}

	return result, nil
}
