package services

import "github.com/vsinha/filmplant/pkg/domain/entities"

// DefaultWorkingCapitalMonths is the operating-cost reserve used when none is configured
const DefaultWorkingCapitalMonths = 3

// CommercialParameters holds the selling price and investment sizing terms
type CommercialParameters struct {
	SellingPricePerTon   float64 `json:"selling_price_per_ton" yaml:"selling_price_per_ton"`
	WorkingCapitalMonths float64 `json:"working_capital_months" yaml:"working_capital_months"`
}

func (c CommercialParameters) workingCapitalMonths() float64 {
	if c.WorkingCapitalMonths > 0 {
		return c.WorkingCapitalMonths
	}
	return DefaultWorkingCapitalMonths
}

// CostComponents are the monthly cost lines that make up total operating cost
type CostComponents struct {
	RawMaterial  float64 `json:"raw_material"`
	Ink          float64 `json:"ink"`
	Solvent      float64 `json:"solvent"`
	Adhesive     float64 `json:"adhesive"`
	Power        float64 `json:"power"`
	Depreciation float64 `json:"depreciation"`
	Overhead     float64 `json:"overhead"`
}

// Total returns the total monthly operating cost
func (c CostComponents) Total() float64 {
	return c.RawMaterial + c.Ink + c.Solvent + c.Adhesive + c.Power + c.Depreciation + c.Overhead
}

type costLine struct {
	name  string
	value float64
}

func (c CostComponents) lines() []costLine {
	return []costLine{
		{"raw_material", c.RawMaterial},
		{"ink", c.Ink},
		{"solvent", c.Solvent},
		{"adhesive", c.Adhesive},
		{"power", c.Power},
		{"depreciation", c.Depreciation},
		{"overhead", c.Overhead},
	}
}

// ProfitabilityResult is the monthly margin and investment return
type ProfitabilityResult struct {
	TotalMonthlyCost float64          `json:"total_monthly_cost"`
	Revenue          float64          `json:"revenue"`
	Profit           float64          `json:"profit"`
	MarginPercent    entities.Guarded `json:"margin_percent"`
	CostPerTon       entities.Guarded `json:"cost_per_ton"`
	WorkingCapital   float64          `json:"working_capital"`
	TotalInvestment  float64          `json:"total_investment"`
	AnnualProfit     float64          `json:"annual_profit"`
	ROIPercent       entities.Guarded `json:"roi_percent"`
	PaybackYears     entities.Guarded `json:"payback_years"`
}

// CalculateProfitability sets operating cost against revenue and sizes the
// investment as capital plus a working-capital reserve.
func CalculateProfitability(
	costs CostComponents,
	finalTons float64,
	totalCapital float64,
	commercial CommercialParameters,
) (ProfitabilityResult, []entities.Issue) {
	var issues []entities.Issue

	total := costs.Total()
	revenue := finalTons * commercial.SellingPricePerTon
	profit := revenue - total

	result := ProfitabilityResult{
		TotalMonthlyCost: total,
		Revenue:          revenue,
		Profit:           profit,
		MarginPercent:    entities.Divide(profit*100, revenue, "no revenue"),
		CostPerTon:       entities.Divide(total, finalTons, "no finished tonnage"),
		WorkingCapital:   total * commercial.workingCapitalMonths(),
		AnnualProfit:     profit * 12,
	}
	result.TotalInvestment = totalCapital + result.WorkingCapital
	result.ROIPercent = entities.Divide(result.AnnualProfit*100, result.TotalInvestment, "no investment")

	if result.AnnualProfit > 0 {
		result.PaybackYears = entities.DefinedValue(result.TotalInvestment / result.AnnualProfit)
	} else {
		result.PaybackYears = entities.Undefined("annual profit is not positive")
	}

	if !result.CostPerTon.Defined {
		issues = append(issues, entities.NewIssue(entities.UndefinedMetric, "cost_per_ton", "%s", result.CostPerTon.Reason))
	}
	if !result.PaybackYears.Defined {
		issues = append(issues, entities.NewIssue(entities.UndefinedMetric, "payback_years", "%s", result.PaybackYears.Reason))
	}
	if !result.ROIPercent.Defined {
		issues = append(issues, entities.NewIssue(entities.UndefinedMetric, "roi_percent", "%s", result.ROIPercent.Reason))
	}

	return result, issues
}

// CostShare is one cost line expressed per ton and as a share of the total
type CostShare struct {
	Component    string           `json:"component"`
	Monthly      float64          `json:"monthly"`
	PerTon       entities.Guarded `json:"per_ton"`
	SharePercent entities.Guarded `json:"share_percent"`
}

// BreakDownCosts expresses each cost line per finished ton and as a share
// of total monthly cost.
func BreakDownCosts(costs CostComponents, finalTons float64) []CostShare {
	total := costs.Total()
	lines := costs.lines()
	shares := make([]CostShare, 0, len(lines))
	for _, line := range lines {
		shares = append(shares, CostShare{
			Component:    line.name,
			Monthly:      line.value,
			PerTon:       entities.Divide(line.value, finalTons, "no finished tonnage"),
			SharePercent: entities.Divide(line.value*100, total, "no operating cost"),
		})
	}
	return shares
}
