package dto

import (
	"github.com/vsinha/filmplant/pkg/domain/entities"
	"github.com/vsinha/filmplant/pkg/domain/services"
)

// CapexShare is one asset's share of the total capital outlay
type CapexShare struct {
	Asset        string           `json:"asset"`
	CapitalCost  float64          `json:"capital_cost"`
	SharePercent entities.Guarded `json:"share_percent"`
}

// EvaluationResult contains the complete output of one scenario evaluation
type EvaluationResult struct {
	Throughput     services.ThroughputResult    `json:"throughput"`
	Consumables    services.ConsumablesResult   `json:"consumables"`
	Structure      services.StructureResult     `json:"structure"`
	Lamination     services.LaminationResult    `json:"lamination"`
	Assets         services.AssetsResult        `json:"assets"`
	Overhead       services.OverheadResult      `json:"overhead"`
	Costs          services.CostComponents      `json:"costs"`
	Profitability  services.ProfitabilityResult `json:"profitability"`
	CostBreakdown  []services.CostShare         `json:"cost_breakdown"`
	CapexBreakdown []CapexShare                 `json:"capex_breakdown"`
	Technology     services.TechnologyResult    `json:"technology"`
	Mix            services.MixResult           `json:"mix"`
	Issues         []entities.Issue             `json:"issues"`
	Stages         []string                     `json:"stages"`
}

// IssuesOfKind returns the issues of one kind in the order they were raised
func (r *EvaluationResult) IssuesOfKind(kind entities.IssueKind) []entities.Issue {
	var out []entities.Issue
	for _, issue := range r.Issues {
		if issue.Kind == kind {
			out = append(out, issue)
		}
	}
	return out
}

// HasBottleneck reports whether any stage flagged a capacity bottleneck
func (r *EvaluationResult) HasBottleneck() bool {
	return len(r.IssuesOfKind(entities.Bottleneck)) > 0
}
