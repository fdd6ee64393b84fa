package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/vsinha/filmplant/pkg/domain/entities"
)

// Writer saves scenario tables as CSV files the Loader can read back
type Writer struct{}

// NewWriter creates a new CSV writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteMaterials writes the material catalog
func (w *Writer) WriteMaterials(filename string, materials []entities.Material) error {
	rows := make([][]string, 0, len(materials))
	for _, m := range materials {
		rows = append(rows, []string{string(m.Name), formatFloat(m.Density), formatFloat(m.UnitPrice)})
	}
	return writeTable(filename, MaterialsHeader, rows)
}

// WriteAssets writes the capital asset list
func (w *Writer) WriteAssets(filename string, assets []entities.Asset) error {
	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, []string{
			a.Name, formatFloat(a.CapitalCost), formatFloat(a.UsefulLifeYears), formatFloat(a.RatedPowerKW),
		})
	}
	return writeTable(filename, AssetsHeader, rows)
}

// WriteWorkforce writes the payroll roles
func (w *Writer) WriteWorkforce(filename string, roles []entities.WorkforceRole) error {
	rows := make([][]string, 0, len(roles))
	for _, r := range roles {
		rows = append(rows, []string{r.Title, strconv.Itoa(r.Headcount), formatFloat(r.BasicSalary)})
	}
	return writeTable(filename, WorkforceHeader, rows)
}

// WriteAdminCosts writes the administrative line items
func (w *Writer) WriteAdminCosts(filename string, costs []entities.AdminCost) error {
	rows := make([][]string, 0, len(costs))
	for _, c := range costs {
		rows = append(rows, []string{c.Label, formatFloat(c.MonthlyAmount)})
	}
	return writeTable(filename, AdminCostsHeader, rows)
}

// WriteTechnologies writes the printing technology variants
func (w *Writer) WriteTechnologies(filename string, variants []entities.TechnologyVariant) error {
	rows := make([][]string, 0, len(variants))
	for _, v := range variants {
		rows = append(rows, []string{
			v.Name,
			formatFloat(v.SetupCostPerColor),
			formatFloat(v.WasteKgPerSetup),
			formatFloat(v.ConsumableUnitCost),
			formatFloat(v.ConsumableLifeMeters),
			formatFloat(v.ConsumableUnitsPerColor),
			formatFloat(v.MachineCapitalCost),
			formatFloat(v.RatedPowerKW),
		})
	}
	return writeTable(filename, TechnologiesHeader, rows)
}

// WriteMix writes the customer revenue mix
func (w *Writer) WriteMix(filename string, segments []entities.MixSegment) error {
	rows := make([][]string, 0, len(segments))
	for _, s := range segments {
		rows = append(rows, []string{s.StructureLabel, formatFloat(s.VolumeSharePercent), formatFloat(s.UnitPrice)})
	}
	return writeTable(filename, MixHeader, rows)
}

func writeTable(filename string, header []string, rows [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", filename, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
