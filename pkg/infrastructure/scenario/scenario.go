// Package scenario reads and writes a scenario directory: scalar parameters
// in parameters.yaml and each editable table in its own CSV file.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vsinha/filmplant/pkg/application/dto"
	"github.com/vsinha/filmplant/pkg/domain/entities"
	"github.com/vsinha/filmplant/pkg/domain/services"
	"github.com/vsinha/filmplant/pkg/infrastructure/repositories/csv"
)

// File names inside a scenario directory
const (
	ParametersFile   = "parameters.yaml"
	MaterialsFile    = "materials.csv"
	AssetsFile       = "assets.csv"
	WorkforceFile    = "workforce.csv"
	AdminCostsFile   = "admin_costs.csv"
	TechnologiesFile = "technologies.csv"
	MixFile          = "mix.csv"
)

// ShiftPattern derives the monthly shift minutes when they are not given directly
type ShiftPattern struct {
	ShiftsPerDay  float64 `yaml:"shifts_per_day"`
	HoursPerShift float64 `yaml:"hours_per_shift"`
	DaysPerMonth  float64 `yaml:"days_per_month"`
}

// Parameters is the layout of parameters.yaml
type Parameters struct {
	Process     entities.ProcessParameters    `yaml:"process"`
	Shift       *ShiftPattern                 `yaml:"shift,omitempty"`
	Structure   entities.ProductStructure     `yaml:"structure"`
	Consumables services.ConsumablePrices     `yaml:"consumables"`
	Lamination  services.LaminationParameters `yaml:"lamination"`
	Utilities   services.UtilityParameters    `yaml:"utilities"`
	Workforce   services.WorkforcePolicy      `yaml:"workforce"`
	Commercial  services.CommercialParameters `yaml:"commercial"`
	Technology  services.TechnologyParameters `yaml:"technology"`
	Mix         services.MixParameters        `yaml:"mix"`
}

// Load reads a scenario directory. parameters.yaml is required; a missing
// table file leaves that list empty.
func Load(dir string) (dto.Scenario, error) {
	params, err := LoadParameters(filepath.Join(dir, ParametersFile))
	if err != nil {
		return dto.Scenario{}, err
	}

	s := dto.Scenario{
		Process:     params.Process,
		Structure:   params.Structure,
		Consumables: params.Consumables,
		Lamination:  params.Lamination,
		Utilities:   params.Utilities,
		Workforce:   params.Workforce,
		Commercial:  params.Commercial,
		Technology:  params.Technology,
		Mix:         params.Mix,
	}
	if s.Process.ShiftMinutesPerMonth == 0 && params.Shift != nil {
		s.Process.ShiftMinutesPerMonth = entities.ShiftMinutes(
			params.Shift.ShiftsPerDay, params.Shift.HoursPerShift, params.Shift.DaysPerMonth)
	}

	loader := csv.NewLoader()
	if s.Materials, err = loadOptional(dir, MaterialsFile, loader.LoadMaterials); err != nil {
		return dto.Scenario{}, err
	}
	if s.Assets, err = loadOptional(dir, AssetsFile, loader.LoadAssets); err != nil {
		return dto.Scenario{}, err
	}
	if s.Workforce.Roles, err = loadOptional(dir, WorkforceFile, loader.LoadWorkforce); err != nil {
		return dto.Scenario{}, err
	}
	if s.Workforce.Admin, err = loadOptional(dir, AdminCostsFile, loader.LoadAdminCosts); err != nil {
		return dto.Scenario{}, err
	}
	if s.Technology.Variants, err = loadOptional(dir, TechnologiesFile, loader.LoadTechnologies); err != nil {
		return dto.Scenario{}, err
	}
	if s.Mix.Segments, err = loadOptional(dir, MixFile, loader.LoadMix); err != nil {
		return dto.Scenario{}, err
	}

	return s, nil
}

// LoadParameters decodes parameters.yaml, rejecting unknown keys
func LoadParameters(filename string) (*Parameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameters file %s: %w", filename, err)
	}

	var params Parameters
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&params); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	return &params, nil
}

// Save writes the scenario as a directory that Load reads back
func Save(dir string, s dto.Scenario) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create scenario directory %s: %w", dir, err)
	}

	params := Parameters{
		Process:     s.Process,
		Structure:   s.Structure,
		Consumables: s.Consumables,
		Lamination:  s.Lamination,
		Utilities:   s.Utilities,
		Workforce:   s.Workforce,
		Commercial:  s.Commercial,
		Technology:  s.Technology,
		Mix:         s.Mix,
	}
	data, err := yaml.Marshal(&params)
	if err != nil {
		return fmt.Errorf("failed to encode parameters: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ParametersFile), data, 0o644); err != nil {
		return fmt.Errorf("failed to write parameters: %w", err)
	}

	writer := csv.NewWriter()
	writes := []func() error{
		func() error { return writer.WriteMaterials(filepath.Join(dir, MaterialsFile), s.Materials) },
		func() error { return writer.WriteAssets(filepath.Join(dir, AssetsFile), s.Assets) },
		func() error { return writer.WriteWorkforce(filepath.Join(dir, WorkforceFile), s.Workforce.Roles) },
		func() error { return writer.WriteAdminCosts(filepath.Join(dir, AdminCostsFile), s.Workforce.Admin) },
		func() error {
			return writer.WriteTechnologies(filepath.Join(dir, TechnologiesFile), s.Technology.Variants)
		},
		func() error { return writer.WriteMix(filepath.Join(dir, MixFile), s.Mix.Segments) },
	}
	for _, write := range writes {
		if err := write(); err != nil {
			return err
		}
	}

	return nil
}

func loadOptional[T any](dir, name string, load func(string) ([]T, error)) ([]T, error) {
	rows, err := load(filepath.Join(dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return rows, err
}
