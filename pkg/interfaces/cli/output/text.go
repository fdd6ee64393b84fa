package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/vsinha/filmplant/pkg/application/dto"
	"github.com/vsinha/filmplant/pkg/domain/entities"
)

// WriteText renders the evaluation as a plain-text report
func WriteText(w io.Writer, result *dto.EvaluationResult, config Config) {
	fmt.Fprintf(w, "📊 Plant Evaluation Summary\n")
	fmt.Fprintf(w, "===========================\n\n")
	if config.ScenarioDir != "" {
		fmt.Fprintf(w, "Scenario: %s\n", config.ScenarioDir)
	}
	fmt.Fprintf(w, "Structure: %s (%d layers, %d lamination passes)\n",
		result.Structure.Label, len(result.Structure.Layers), result.Structure.PassCount)
	fmt.Fprintf(w, "Stages: %s\n", strings.Join(result.Stages, " → "))
	if config.EvaluationTime > 0 {
		fmt.Fprintf(w, "Evaluation Time: %v\n", config.EvaluationTime)
	}
	fmt.Fprintln(w)

	writeThroughput(w, result)
	writeStructure(w, result)
	writeAssets(w, result)
	writeProfitability(w, result)
	writeTechnology(w, result)
	writeMix(w, result)
	writeIssues(w, result.Issues)
}

func writeThroughput(w io.Writer, r *dto.EvaluationResult) {
	t := r.Throughput
	fmt.Fprintf(w, "🖨️  Printing Throughput:\n")
	fmt.Fprintf(w, "  Lost to changeovers: %s min\n", quantity(t.LostMinutes, 0))
	fmt.Fprintf(w, "  Net running time:    %s min\n", quantity(t.NetMinutes, 0))
	fmt.Fprintf(w, "  Linear output:       %s m\n", quantity(t.LinearMeters, 0))
	fmt.Fprintf(w, "  Printed area:        %s m²\n", quantity(t.AreaM2, 0))
	if !t.Valid {
		fmt.Fprintf(w, "  ⚠️  Changeovers exceed the available running time; output held at zero\n")
	}
	fmt.Fprintf(w, "  Ink:     %s kg  (%s)\n", quantity(r.Consumables.InkKg, 1), money(r.Consumables.InkCost))
	fmt.Fprintf(w, "  Solvent: %s kg  (%s)\n", quantity(r.Consumables.SolventKg, 1), money(r.Consumables.SolventCost))
	fmt.Fprintln(w)
}

func writeStructure(w io.Writer, r *dto.EvaluationResult) {
	s := r.Structure
	fmt.Fprintf(w, "🧱 Structure %s:\n", s.Label)
	fmt.Fprintf(w, "%-10s %-10s %-10s %-12s %-15s\n", "Material", "Microns", "GSM", "Tons", "Cost")
	fmt.Fprintf(w, "%-10s %-10s %-10s %-12s %-15s\n", "----------", "----------", "----------", "------------", "---------------")
	for _, layer := range s.Layers {
		fmt.Fprintf(w, "%-10s %-10s %-10s %-12s %-15s\n",
			layer.Material,
			quantity(layer.ThicknessMicrons, 1),
			quantity(layer.GSM, 2),
			quantity(layer.Tons, 3),
			money(layer.Cost))
	}
	fmt.Fprintf(w, "Adhesive: %s gsm, %s kg (%s)\n", quantity(s.AdhesiveGSM, 2), quantity(s.AdhesiveKg, 1), money(s.AdhesiveCost))
	fmt.Fprintf(w, "Final: %s gsm, %s tons\n", quantity(s.FinalGSM, 2), quantity(s.FinalTons, 3))

	l := r.Lamination
	fmt.Fprintf(w, "Lamination: %s", l.Status)
	if l.Status != entities.LaminationNotRequired {
		fmt.Fprintf(w, " (%s of %s m capacity used)", percent(l.UtilizationPercent), quantity(l.CapacityMeters, 0))
	}
	fmt.Fprintf(w, "\n\n")
}

func writeAssets(w io.Writer, r *dto.EvaluationResult) {
	if len(r.Assets.Lines) > 0 {
		fmt.Fprintf(w, "🏭 Assets:\n")
		fmt.Fprintf(w, "%-30s %-15s %-15s %-12s %-8s\n", "Asset", "Capital", "Depreciation", "Power", "Share")
		fmt.Fprintf(w, "%-30s %-15s %-15s %-12s %-8s\n",
			"------------------------------", "---------------", "---------------", "------------", "--------")
		for _, line := range r.Assets.Lines {
			fmt.Fprintf(w, "%-30s %-15s %-15s %-12s %-8s\n",
				line.Name,
				money(line.CapitalCost),
				guardedMoney(line.MonthlyDepreciation),
				money(line.MonthlyPowerCost),
				guardedPercent(line.CapitalSharePercent))
		}
		fmt.Fprintf(w, "Total capital: %s\n\n", money(r.Assets.TotalCapital))
	}

	o := r.Overhead
	fmt.Fprintf(w, "👷 Overhead:\n")
	fmt.Fprintf(w, "  Headcount: %d\n", o.TotalHeadcount)
	fmt.Fprintf(w, "  Payroll:   %s\n", money(o.PayrollTotal))
	fmt.Fprintf(w, "  Logistics: %s\n", money(o.Logistics))
	fmt.Fprintf(w, "  Admin:     %s\n", money(o.Admin))
	fmt.Fprintf(w, "  Total:     %s\n\n", money(o.Total))
}

func writeProfitability(w io.Writer, r *dto.EvaluationResult) {
	p := r.Profitability
	fmt.Fprintf(w, "💰 Profitability (monthly):\n")
	fmt.Fprintf(w, "  Revenue:          %s\n", money(p.Revenue))
	fmt.Fprintf(w, "  Total cost:       %s\n", money(p.TotalMonthlyCost))
	fmt.Fprintf(w, "  Profit:           %s\n", money(p.Profit))
	fmt.Fprintf(w, "  Margin:           %s\n", guardedPercent(p.MarginPercent))
	fmt.Fprintf(w, "  Cost per ton:     %s\n", guardedMoney(p.CostPerTon))
	fmt.Fprintf(w, "  Working capital:  %s\n", money(p.WorkingCapital))
	fmt.Fprintf(w, "  Total investment: %s\n", money(p.TotalInvestment))
	fmt.Fprintf(w, "  ROI:              %s\n", guardedPercent(p.ROIPercent))
	fmt.Fprintf(w, "  Payback:          %s years\n", guardedQuantity(p.PaybackYears, 2))
	fmt.Fprintln(w)

	if len(r.CostBreakdown) > 0 {
		fmt.Fprintf(w, "%-15s %-15s %-12s %-8s\n", "Component", "Monthly", "Per Ton", "Share")
		fmt.Fprintf(w, "%-15s %-15s %-12s %-8s\n", "---------------", "---------------", "------------", "--------")
		for _, c := range r.CostBreakdown {
			fmt.Fprintf(w, "%-15s %-15s %-12s %-8s\n", c.Component, money(c.Monthly), guardedMoney(c.PerTon), guardedPercent(c.SharePercent))
		}
		fmt.Fprintln(w)
	}
}

func writeTechnology(w io.Writer, r *dto.EvaluationResult) {
	t := r.Technology
	if len(t.Curves) == 0 {
		return
	}

	fmt.Fprintf(w, "⚖️  Technology Comparison (%d colors, %s m/ton):\n", t.Colors, quantity(t.MetersPerTon, 0))
	fmt.Fprintf(w, "%-15s %-12s %-15s %-15s\n", "Variant", "Job Cost", "Running/Ton", "Cost/Ton @max")
	fmt.Fprintf(w, "%-15s %-12s %-15s %-15s\n", "---------------", "------------", "---------------", "---------------")
	for _, c := range t.Curves {
		atMax := notAvailable
		if len(c.Points) > 0 {
			atMax = money(c.Points[len(c.Points)-1].TotalCostPerTon)
		}
		fmt.Fprintf(w, "%-15s %-12s %-15s %-15s\n", c.Variant, money(c.OneOffCost()), money(c.RunningCostPerTon()), atMax)
	}
	for _, x := range t.Crossovers {
		if x.Exists {
			fmt.Fprintf(w, "  %s vs %s: break-even at %s tons (%s below, %s above)\n",
				x.VariantA, x.VariantB, quantity(x.Tons, 2), x.CheaperBelow, x.CheaperAbove)
		} else {
			fmt.Fprintf(w, "  %s vs %s: no break-even\n", x.VariantA, x.VariantB)
		}
	}
	fmt.Fprintln(w)
}

func writeMix(w io.Writer, r *dto.EvaluationResult) {
	m := r.Mix
	if len(m.Segments) == 0 {
		return
	}

	fmt.Fprintf(w, "📈 Revenue Mix (%s tons/year):\n", quantity(m.TotalVolumeTons, 0))
	fmt.Fprintf(w, "%-30s %-8s %-12s %-15s\n", "Segment", "Share", "Tons", "Revenue")
	fmt.Fprintf(w, "%-30s %-8s %-12s %-15s\n", "------------------------------", "--------", "------------", "---------------")
	for _, s := range m.Segments {
		fmt.Fprintf(w, "%-30s %-8s %-12s %-15s\n", s.StructureLabel, percent(s.VolumeSharePercent), quantity(s.VolumeTons, 1), money(s.Revenue))
	}
	fmt.Fprintf(w, "Total revenue: %s, weighted price: %s/kg\n\n", money(m.TotalRevenue), guardedMoney(m.WeightedAvgPrice))
}

func writeIssues(w io.Writer, issues []entities.Issue) {
	if len(issues) == 0 {
		fmt.Fprintf(w, "✅ No issues\n")
		return
	}

	fmt.Fprintf(w, "⚠️  Issues:\n")
	for _, issue := range issues {
		fmt.Fprintf(w, "  %s\n", issue)
	}
}
