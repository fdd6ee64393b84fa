package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vsinha/filmplant/pkg/application/dto"
	"github.com/vsinha/filmplant/pkg/domain/entities"
)

type csvTable struct {
	name   string
	header []string
	rows   [][]string
}

func writeCSVTables(result *dto.EvaluationResult, dir string) ([]string, error) {
	tables := []csvTable{
		summaryTable(result),
		costBreakdownTable(result),
		assetsTable(result),
		curvesTable(result),
		crossoversTable(result),
		mixTable(result),
		issuesTable(result.Issues),
	}

	files := make([]string, 0, len(tables))
	for _, table := range tables {
		filename := filepath.Join(dir, table.name)
		if err := writeCSV(filename, table.header, table.rows); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", table.name, err)
		}
		files = append(files, filename)
	}
	return files, nil
}

func summaryTable(r *dto.EvaluationResult) csvTable {
	p := r.Profitability
	rows := [][]string{
		{"net_minutes", quantity(r.Throughput.NetMinutes, 2)},
		{"linear_meters", quantity(r.Throughput.LinearMeters, 2)},
		{"area_m2", quantity(r.Throughput.AreaM2, 2)},
		{"final_gsm", quantity(r.Structure.FinalGSM, 4)},
		{"final_tons", quantity(r.Structure.FinalTons, 4)},
		{"lamination_status", r.Lamination.Status.String()},
		{"lamination_utilization_percent", quantity(r.Lamination.UtilizationPercent, 2)},
		{"total_capital", money(r.Assets.TotalCapital)},
		{"total_monthly_cost", money(p.TotalMonthlyCost)},
		{"revenue", money(p.Revenue)},
		{"profit", money(p.Profit)},
		{"margin_percent", guardedCell(p.MarginPercent, 2)},
		{"cost_per_ton", guardedCell(p.CostPerTon, 2)},
		{"working_capital", money(p.WorkingCapital)},
		{"total_investment", money(p.TotalInvestment)},
		{"roi_percent", guardedCell(p.ROIPercent, 2)},
		{"payback_years", guardedCell(p.PaybackYears, 4)},
		{"mix_total_revenue", money(r.Mix.TotalRevenue)},
		{"mix_weighted_avg_price", guardedCell(r.Mix.WeightedAvgPrice, 4)},
	}
	return csvTable{name: "summary.csv", header: []string{"metric", "value"}, rows: rows}
}

func costBreakdownTable(r *dto.EvaluationResult) csvTable {
	rows := make([][]string, 0, len(r.CostBreakdown))
	for _, c := range r.CostBreakdown {
		rows = append(rows, []string{c.Component, money(c.Monthly), guardedCell(c.PerTon, 2), guardedCell(c.SharePercent, 2)})
	}
	return csvTable{
		name:   "cost_breakdown.csv",
		header: []string{"component", "monthly", "per_ton", "share_percent"},
		rows:   rows,
	}
}

func assetsTable(r *dto.EvaluationResult) csvTable {
	rows := make([][]string, 0, len(r.Assets.Lines))
	for _, line := range r.Assets.Lines {
		rows = append(rows, []string{
			line.Name,
			money(line.CapitalCost),
			guardedCell(line.MonthlyDepreciation, 2),
			money(line.MonthlyPowerCost),
			guardedCell(line.CapitalSharePercent, 2),
		})
	}
	return csvTable{
		name:   "assets.csv",
		header: []string{"asset", "capital_cost", "monthly_depreciation", "monthly_power_cost", "capital_share_percent"},
		rows:   rows,
	}
}

func curvesTable(r *dto.EvaluationResult) csvTable {
	var rows [][]string
	for _, curve := range r.Technology.Curves {
		for _, p := range curve.Points {
			rows = append(rows, []string{
				curve.Variant,
				quantity(p.Tons, 2),
				money(p.FixedCostPerTon),
				money(p.ConsumableCostPerTon),
				money(p.MachineCostPerTon),
				money(p.TotalCostPerTon),
			})
		}
	}
	return csvTable{
		name:   "technology_curves.csv",
		header: []string{"variant", "tons", "fixed_cost_per_ton", "consumable_cost_per_ton", "machine_cost_per_ton", "total_cost_per_ton"},
		rows:   rows,
	}
}

func crossoversTable(r *dto.EvaluationResult) csvTable {
	rows := make([][]string, 0, len(r.Technology.Crossovers))
	for _, x := range r.Technology.Crossovers {
		tons := ""
		if x.Exists {
			tons = quantity(x.Tons, 4)
		}
		rows = append(rows, []string{x.VariantA, x.VariantB, strconv.FormatBool(x.Exists), tons, x.CheaperBelow, x.CheaperAbove})
	}
	return csvTable{
		name:   "crossovers.csv",
		header: []string{"variant_a", "variant_b", "exists", "tons", "cheaper_below", "cheaper_above"},
		rows:   rows,
	}
}

func mixTable(r *dto.EvaluationResult) csvTable {
	rows := make([][]string, 0, len(r.Mix.Segments))
	for _, s := range r.Mix.Segments {
		rows = append(rows, []string{
			s.StructureLabel,
			quantity(s.VolumeSharePercent, 2),
			quantity(s.VolumeTons, 4),
			quantity(s.UnitPrice, 4),
			money(s.Revenue),
		})
	}
	return csvTable{
		name:   "mix.csv",
		header: []string{"structure_label", "volume_share_percent", "volume_tons", "unit_price", "revenue"},
		rows:   rows,
	}
}

func issuesTable(issues []entities.Issue) csvTable {
	rows := make([][]string, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, []string{issue.Kind.String(), issue.Field, issue.Message})
	}
	return csvTable{name: "issues.csv", header: []string{"kind", "field", "message"}, rows: rows}
}

// guardedCell leaves undefined metrics empty so spreadsheets treat them as blank
func guardedCell(g entities.Guarded, places int32) string {
	if !g.Defined {
		return ""
	}
	return quantity(g.Value, places)
}

func writeCSV(filename string, header []string, rows [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return err
	}
	return writer.WriteAll(rows)
}
