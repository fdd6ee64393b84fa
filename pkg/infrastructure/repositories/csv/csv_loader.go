package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vsinha/filmplant/pkg/domain/entities"
)

// Table headers, shared by the loader and the writer
var (
	MaterialsHeader    = []string{"name", "density", "unit_price"}
	AssetsHeader       = []string{"name", "capital_cost", "useful_life_years", "rated_power_kw"}
	WorkforceHeader    = []string{"title", "headcount", "basic_salary"}
	AdminCostsHeader   = []string{"label", "monthly_amount"}
	TechnologiesHeader = []string{
		"name", "setup_cost_per_color", "waste_kg_per_setup", "consumable_unit_cost",
		"consumable_life_meters", "consumable_units_per_color", "machine_capital_cost", "rated_power_kw",
	}
	MixHeader = []string{"structure_label", "volume_share_percent", "unit_price"}
)

// Loader handles loading scenario tables from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadMaterials loads the material catalog from a CSV file
func (l *Loader) LoadMaterials(filename string) ([]entities.Material, error) {
	rows, err := readTable(filename, "materials", MaterialsHeader)
	if err != nil {
		return nil, err
	}

	materials := make([]entities.Material, 0, len(rows))
	for i, record := range rows {
		values, err := parseFloats(record[1:], MaterialsHeader[1:])
		if err != nil {
			return nil, fmt.Errorf("materials CSV row %d: %w", i+2, err)
		}

		material, err := entities.NewMaterial(entities.MaterialName(strings.TrimSpace(record[0])), values[0], values[1])
		if err != nil {
			return nil, fmt.Errorf("materials CSV row %d: %w", i+2, err)
		}
		materials = append(materials, *material)
	}

	return materials, nil
}

// LoadAssets loads the capital asset list from a CSV file
func (l *Loader) LoadAssets(filename string) ([]entities.Asset, error) {
	rows, err := readTable(filename, "assets", AssetsHeader)
	if err != nil {
		return nil, err
	}

	assets := make([]entities.Asset, 0, len(rows))
	for i, record := range rows {
		values, err := parseFloats(record[1:], AssetsHeader[1:])
		if err != nil {
			return nil, fmt.Errorf("assets CSV row %d: %w", i+2, err)
		}

		asset, err := entities.NewAsset(strings.TrimSpace(record[0]), values[0], values[1], values[2])
		if err != nil {
			return nil, fmt.Errorf("assets CSV row %d: %w", i+2, err)
		}
		assets = append(assets, *asset)
	}

	return assets, nil
}

// LoadWorkforce loads the payroll roles from a CSV file
func (l *Loader) LoadWorkforce(filename string) ([]entities.WorkforceRole, error) {
	rows, err := readTable(filename, "workforce", WorkforceHeader)
	if err != nil {
		return nil, err
	}

	roles := make([]entities.WorkforceRole, 0, len(rows))
	for i, record := range rows {
		headcount, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("workforce CSV row %d: invalid headcount: %s", i+2, record[1])
		}
		salary, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("workforce CSV row %d: invalid basic_salary: %s", i+2, record[2])
		}

		role, err := entities.NewWorkforceRole(strings.TrimSpace(record[0]), headcount, salary)
		if err != nil {
			return nil, fmt.Errorf("workforce CSV row %d: %w", i+2, err)
		}
		roles = append(roles, *role)
	}

	return roles, nil
}

// LoadAdminCosts loads the monthly administrative line items from a CSV file
func (l *Loader) LoadAdminCosts(filename string) ([]entities.AdminCost, error) {
	rows, err := readTable(filename, "admin costs", AdminCostsHeader)
	if err != nil {
		return nil, err
	}

	costs := make([]entities.AdminCost, 0, len(rows))
	for i, record := range rows {
		amount, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("admin costs CSV row %d: invalid monthly_amount: %s", i+2, record[1])
		}

		cost, err := entities.NewAdminCost(strings.TrimSpace(record[0]), amount)
		if err != nil {
			return nil, fmt.Errorf("admin costs CSV row %d: %w", i+2, err)
		}
		costs = append(costs, *cost)
	}

	return costs, nil
}

// LoadTechnologies loads the printing technology variants from a CSV file
func (l *Loader) LoadTechnologies(filename string) ([]entities.TechnologyVariant, error) {
	rows, err := readTable(filename, "technologies", TechnologiesHeader)
	if err != nil {
		return nil, err
	}

	variants := make([]entities.TechnologyVariant, 0, len(rows))
	for i, record := range rows {
		v, err := parseFloats(record[1:], TechnologiesHeader[1:])
		if err != nil {
			return nil, fmt.Errorf("technologies CSV row %d: %w", i+2, err)
		}

		variant, err := entities.NewTechnologyVariant(strings.TrimSpace(record[0]), v[0], v[1], v[2], v[3], v[4], v[5], v[6])
		if err != nil {
			return nil, fmt.Errorf("technologies CSV row %d: %w", i+2, err)
		}
		variants = append(variants, *variant)
	}

	return variants, nil
}

// LoadMix loads the customer revenue mix from a CSV file
func (l *Loader) LoadMix(filename string) ([]entities.MixSegment, error) {
	rows, err := readTable(filename, "mix", MixHeader)
	if err != nil {
		return nil, err
	}

	segments := make([]entities.MixSegment, 0, len(rows))
	for i, record := range rows {
		values, err := parseFloats(record[1:], MixHeader[1:])
		if err != nil {
			return nil, fmt.Errorf("mix CSV row %d: %w", i+2, err)
		}

		segment, err := entities.NewMixSegment(strings.TrimSpace(record[0]), values[0], values[1])
		if err != nil {
			return nil, fmt.Errorf("mix CSV row %d: %w", i+2, err)
		}
		segments = append(segments, *segment)
	}

	return segments, nil
}

// Helper functions for parsing CSV records

// readTable returns the data rows of a CSV file after checking its header.
// A table with a header and no rows is valid; every list in a scenario may be empty.
func readTable(filename, table string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", table, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", table, err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("%s CSV must have a header row", table)
	}

	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("%s CSV header mismatch. Expected: %v, Got: %v", table, expectedHeader, header)
	}

	rows := records[1:]
	for i, record := range rows {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("%s CSV row %d: expected %d columns, got %d", table, i+2, len(expectedHeader), len(record))
		}
	}

	return rows, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseFloats(fields, columns []string) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %s", columns[i], field)
		}
		values[i] = v
	}
	return values, nil
}
