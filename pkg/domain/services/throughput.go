package services

import "github.com/vsinha/filmplant/pkg/domain/entities"

// ThroughputResult is the net monthly output of the printing press
type ThroughputResult struct {
	LostMinutes      float64 `json:"lost_minutes"`
	AvailableMinutes float64 `json:"available_minutes"`
	NetMinutes       float64 `json:"net_minutes"`
	LinearMeters     float64 `json:"linear_meters"`
	AreaM2           float64 `json:"area_m2"`
	Valid            bool    `json:"valid"`
}

// CalculateThroughput converts press speed, web width and changeover losses
// into net linear and area output for the month.
//
// Changeovers that consume more than the available shift time leave
// NetMinutes negative; the result is then marked invalid and the linear
// and area output are held at zero so no negative tonnage flows downstream.
// Output that overflows to a non-finite number is treated the same way.
func CalculateThroughput(p entities.ProcessParameters) (ThroughputResult, []entities.Issue) {
	var issues []entities.Issue
	if !p.EfficiencyInRange() {
		issues = append(issues, entities.NewIssue(entities.InvalidInput, "efficiency_factor",
			"efficiency factor must lie in (0, 1], got %g", p.EfficiencyFactor))
	}

	lost := p.JobsPerMonth * p.ChangeoverMinutesPerJob
	available := p.ShiftMinutesPerMonth * p.EfficiencyFactor
	net := available - lost

	result := ThroughputResult{
		LostMinutes:      lost,
		AvailableMinutes: available,
		NetMinutes:       net,
		Valid:            true,
	}

	if net < 0 {
		result.Valid = false
		issues = append(issues, entities.NewIssue(entities.InvalidInput, "net_minutes",
			"changeovers (%.0f min) exceed available running time (%.0f min)", lost, available))
		return result, issues
	}

	linear := p.MachineSpeedMPerMin * net
	area := linear * (p.WebWidthMM / 1000)
	if !entities.Finite(linear) || !entities.Finite(area) {
		result.Valid = false
		issues = append(issues, entities.NewIssue(entities.InvalidInput, "throughput",
			"press output is not a finite number (speed %g m/min, width %g mm)", p.MachineSpeedMPerMin, p.WebWidthMM))
		return result, issues
	}

	result.LinearMeters = linear
	result.AreaM2 = area
	return result, issues
}
