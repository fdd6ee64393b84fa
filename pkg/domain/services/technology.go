package services

import (
	"math"

	"github.com/vsinha/filmplant/pkg/domain/entities"
)

const (
	DefaultSweepMaxTons  = 100
	DefaultSweepStepTons = 1

	// MaxSweepPoints bounds the number of order sizes on each curve
	MaxSweepPoints = 10_000
)

// TechnologyParameters configures the technology cost comparison
type TechnologyParameters struct {
	Colors             int                          `json:"colors" yaml:"colors"`
	MaterialCostPerTon float64                      `json:"material_cost_per_ton" yaml:"material_cost_per_ton"`
	MetersPerTon       float64                      `json:"meters_per_ton" yaml:"meters_per_ton"`
	AverageMonthlyTons float64                      `json:"average_monthly_tons" yaml:"average_monthly_tons"`
	LifeYears          float64                      `json:"life_years" yaml:"life_years"`
	SweepMaxTons       float64                      `json:"sweep_max_tons" yaml:"sweep_max_tons"`
	SweepStepTons      float64                      `json:"sweep_step_tons" yaml:"sweep_step_tons"`
	Variants           []entities.TechnologyVariant `json:"variants" yaml:"-"`
}

// Sweep returns the order sizes the curves are evaluated at. Non-finite
// bounds fall back to the defaults. A sweep that would exceed MaxSweepPoints
// keeps its upper bound and widens the step to fit.
func (p TechnologyParameters) Sweep() ([]float64, []entities.Issue) {
	var issues []entities.Issue
	maxTons, step := p.SweepMaxTons, p.SweepStepTons

	if math.IsNaN(maxTons) || math.IsInf(maxTons, 0) {
		issues = append(issues, entities.NewIssue(entities.InvalidInput, "technology.sweep_max_tons",
			"sweep upper bound must be finite, got %g; using %d", maxTons, DefaultSweepMaxTons))
		maxTons = DefaultSweepMaxTons
	}
	if math.IsNaN(step) || math.IsInf(step, 0) {
		issues = append(issues, entities.NewIssue(entities.InvalidInput, "technology.sweep_step_tons",
			"sweep step must be finite, got %g; using %d", step, DefaultSweepStepTons))
		step = DefaultSweepStepTons
	}
	if maxTons <= 0 {
		maxTons = DefaultSweepMaxTons
	}
	if step <= 0 {
		step = DefaultSweepStepTons
	}

	if ratio := maxTons / step; ratio > MaxSweepPoints || math.IsInf(ratio, 0) {
		issues = append(issues, entities.NewIssue(entities.InvalidInput, "technology.sweep_step_tons",
			"sweep of %g t in steps of %g t exceeds %d points; step widened to %g t",
			maxTons, step, MaxSweepPoints, maxTons/MaxSweepPoints))
		tons := make([]float64, 0, MaxSweepPoints)
		for i := 1; i <= MaxSweepPoints; i++ {
			tons = append(tons, maxTons*(float64(i)/MaxSweepPoints))
		}
		return tons, issues
	}

	n := int(math.Floor(maxTons/step + 1e-9))
	tons := make([]float64, 0, n)
	for i := 1; i <= n; i++ {
		tons = append(tons, float64(i)*step)
	}
	return tons, issues
}

// CostPoint is the per-ton cost of one variant at one order size
type CostPoint struct {
	Tons                 float64 `json:"tons"`
	FixedCostPerTon      float64 `json:"fixed_cost_per_ton"`
	ConsumableCostPerTon float64 `json:"consumable_cost_per_ton"`
	MachineCostPerTon    float64 `json:"machine_cost_per_ton"`
	TotalCostPerTon      float64 `json:"total_cost_per_ton"`
}

// CostCurve is one variant's per-ton cost across the order-size sweep
type CostCurve struct {
	Variant                string      `json:"variant"`
	SetupCost              float64     `json:"setup_cost"`
	WasteCost              float64     `json:"waste_cost"`
	ConsumableCostPerMeter float64     `json:"consumable_cost_per_meter"`
	ConsumableCostPerTon   float64     `json:"consumable_cost_per_ton"`
	MachineCostPerTon      float64     `json:"machine_cost_per_ton"`
	MaterialCostPerTon     float64     `json:"material_cost_per_ton"`
	Points                 []CostPoint `json:"points"`
}

// OneOffCost is the setup and waste cost charged once per job
func (c CostCurve) OneOffCost() float64 {
	return c.SetupCost + c.WasteCost
}

// RunningCostPerTon is the part of the per-ton cost that does not depend on order size
func (c CostCurve) RunningCostPerTon() float64 {
	return c.MaterialCostPerTon + c.ConsumableCostPerTon + c.MachineCostPerTon
}

// FixedCostPerTon amortises the one-off job cost over the order tonnage
func (c CostCurve) FixedCostPerTon(tons float64) float64 {
	if tons <= 0 {
		return 0
	}
	return c.OneOffCost() / tons
}

// CostAt returns the total per-ton cost for an order of the given size
func (c CostCurve) CostAt(tons float64) float64 {
	return c.RunningCostPerTon() + c.FixedCostPerTon(tons)
}

// Crossover is the order size at which two variants cost the same per ton
type Crossover struct {
	VariantA     string  `json:"variant_a"`
	VariantB     string  `json:"variant_b"`
	Exists       bool    `json:"exists"`
	Tons         float64 `json:"tons"`
	CheaperBelow string  `json:"cheaper_below,omitempty"`
	CheaperAbove string  `json:"cheaper_above,omitempty"`
}

// TechnologyResult holds every variant's curve and the pairwise break-even points
type TechnologyResult struct {
	Colors       int         `json:"colors"`
	MetersPerTon float64     `json:"meters_per_ton"`
	Curves       []CostCurve `json:"curves"`
	Crossovers   []Crossover `json:"crossovers"`
}

// CompareTechnologies builds a cost-versus-order-size curve for every
// variant and locates where each pair of curves cross.
func CompareTechnologies(
	params TechnologyParameters,
	utilities UtilityParameters,
	process entities.ProcessParameters,
) (TechnologyResult, []entities.Issue) {
	colors := float64(params.Colors)
	hours := utilities.HoursPerMonth(process)
	sweep, issues := params.Sweep()

	if params.MetersPerTon <= 0 && len(params.Variants) > 0 {
		issues = append(issues, entities.NewIssue(entities.UndefinedMetric, "technology.meters_per_ton",
			"meters per ton is not positive; consumable cost is excluded from the curves"))
	}

	result := TechnologyResult{
		Colors:       params.Colors,
		MetersPerTon: params.MetersPerTon,
		Curves:       make([]CostCurve, 0, len(params.Variants)),
	}

	for _, variant := range params.Variants {
		curve := CostCurve{
			Variant:            variant.Name,
			SetupCost:          colors * variant.SetupCostPerColor,
			WasteCost:          variant.WasteKgPerSetup * (params.MaterialCostPerTon / 1000),
			MaterialCostPerTon: params.MaterialCostPerTon,
		}

		perMeter := entities.Divide(variant.ConsumableUnitCost, variant.ConsumableLifeMeters, "consumable life must be positive")
		if !perMeter.Defined {
			issues = append(issues, entities.NewIssue(entities.InvalidInput, "technology."+variant.Name,
				"consumable life must be positive, got %g", variant.ConsumableLifeMeters))
		}
		curve.ConsumableCostPerMeter = perMeter.Value * variant.ConsumableUnitsPerColor * colors
		if params.MetersPerTon > 0 {
			curve.ConsumableCostPerTon = curve.ConsumableCostPerMeter * params.MetersPerTon
		}

		depreciation := MonthlyDepreciation(variant.MachineCapitalCost, params.LifeYears)
		if !depreciation.Defined {
			issues = append(issues, entities.NewIssue(entities.InvalidInput, "technology.life_years",
				"machine life must be positive, got %g", params.LifeYears))
		}
		power := MonthlyPowerCost(variant.RatedPowerKW, hours, process.EfficiencyFactor, utilities.ElectricityRate)
		machine := entities.Divide(depreciation.Value+power, params.AverageMonthlyTons, "no average monthly tonnage")
		if !machine.Defined {
			issues = append(issues, entities.NewIssue(entities.UndefinedMetric, "technology."+variant.Name,
				"machine cost per ton is undefined: %s", machine.Reason))
		}
		curve.MachineCostPerTon = machine.Value

		curve.Points = make([]CostPoint, 0, len(sweep))
		for _, t := range sweep {
			curve.Points = append(curve.Points, CostPoint{
				Tons:                 t,
				FixedCostPerTon:      curve.FixedCostPerTon(t),
				ConsumableCostPerTon: curve.ConsumableCostPerTon,
				MachineCostPerTon:    curve.MachineCostPerTon,
				TotalCostPerTon:      curve.CostAt(t),
			})
		}
		result.Curves = append(result.Curves, curve)
	}

	for i := 0; i < len(result.Curves); i++ {
		for j := i + 1; j < len(result.Curves); j++ {
			result.Crossovers = append(result.Crossovers, FindCrossover(result.Curves[i], result.Curves[j]))
		}
	}

	return result, issues
}

// FindCrossover solves for the order size where two curves meet.
//
// The per-ton gap between the curves is D(t) = ΔRunning + ΔOneOff/t, so it
// has at most one positive root t* = -ΔOneOff/ΔRunning. Below t* the variant
// with the smaller one-off cost is cheaper; above it the variant with the
// smaller running cost wins.
func FindCrossover(a, b CostCurve) Crossover {
	c := Crossover{VariantA: a.Variant, VariantB: b.Variant}

	deltaRunning := a.RunningCostPerTon() - b.RunningCostPerTon()
	deltaOneOff := a.OneOffCost() - b.OneOffCost()
	if deltaRunning == 0 {
		return c
	}

	t := -deltaOneOff / deltaRunning
	if t <= 0 {
		return c
	}

	c.Exists = true
	c.Tons = t
	if deltaOneOff < 0 {
		c.CheaperBelow, c.CheaperAbove = a.Variant, b.Variant
	} else {
		c.CheaperBelow, c.CheaperAbove = b.Variant, a.Variant
	}
	return c
}

// CrossoverFromCurves locates the break-even point using only the sampled
// curve points: it finds the first interval where the cheaper variant flips
// and interpolates linearly inside it. Both curves must share the same sweep.
func CrossoverFromCurves(a, b CostCurve) Crossover {
	c := Crossover{VariantA: a.Variant, VariantB: b.Variant}
	n := len(a.Points)
	if len(b.Points) < n {
		n = len(b.Points)
	}

	for i := 0; i+1 < n; i++ {
		d0 := a.Points[i].TotalCostPerTon - b.Points[i].TotalCostPerTon
		d1 := a.Points[i+1].TotalCostPerTon - b.Points[i+1].TotalCostPerTon
		if d0 == 0 || d0*d1 > 0 {
			continue
		}

		t0, t1 := a.Points[i].Tons, a.Points[i+1].Tons
		c.Exists = true
		c.Tons = t0 + (t1-t0)*d0/(d0-d1)
		if d0 < 0 {
			c.CheaperBelow, c.CheaperAbove = a.Variant, b.Variant
		} else {
			c.CheaperBelow, c.CheaperAbove = b.Variant, a.Variant
		}
		return c
	}

	return c
}
