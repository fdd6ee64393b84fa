package entities

// ProcessParameters describes how the printing press is run over a month
type ProcessParameters struct {
	MachineSpeedMPerMin     float64 `json:"machine_speed_m_per_min" yaml:"machine_speed_m_per_min"`
	WebWidthMM              float64 `json:"web_width_mm" yaml:"web_width_mm"`
	InkCoverageGSM          float64 `json:"ink_coverage_gsm" yaml:"ink_coverage_gsm"`
	JobsPerMonth            float64 `json:"jobs_per_month" yaml:"jobs_per_month"`
	ChangeoverMinutesPerJob float64 `json:"changeover_minutes_per_job" yaml:"changeover_minutes_per_job"`
	ShiftMinutesPerMonth    float64 `json:"shift_minutes_per_month" yaml:"shift_minutes_per_month"`
	EfficiencyFactor        float64 `json:"efficiency_factor" yaml:"efficiency_factor"`
}

// ShiftMinutes returns the staffed minutes per month for the given shift pattern
func ShiftMinutes(shiftsPerDay, hoursPerShift, daysPerMonth float64) float64 {
	return shiftsPerDay * hoursPerShift * daysPerMonth * 60
}

// EfficiencyInRange reports whether the efficiency factor lies in (0, 1]
func (p ProcessParameters) EfficiencyInRange() bool {
	return p.EfficiencyFactor > 0 && p.EfficiencyFactor <= 1
}
