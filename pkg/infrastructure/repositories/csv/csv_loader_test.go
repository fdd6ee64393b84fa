package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/filmplant/pkg/domain/entities"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_LoadMaterials(t *testing.T) {
	path := writeFile(t, t.TempDir(), "materials.csv",
		"name,density,unit_price\nPET,1.4,9000\nPE, 0.92, 5000\n")

	materials, err := NewLoader().LoadMaterials(path)

	require.NoError(t, err)
	assert.Equal(t, []entities.Material{
		{Name: "PET", Density: 1.4, UnitPrice: 9000},
		{Name: "PE", Density: 0.92, UnitPrice: 5000},
	}, materials)
}

func TestLoader_HeaderOnlyTableIsEmpty(t *testing.T) {
	path := writeFile(t, t.TempDir(), "assets.csv", "name,capital_cost,useful_life_years,rated_power_kw\n")

	assets, err := NewLoader().LoadAssets(path)

	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestLoader_Errors(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader()

	testCases := []struct {
		name        string
		content     string
		load        func(string) error
		expectError string
	}{
		{
			name:    "header mismatch",
			content: "name,price\nPET,9000\n",
			load: func(p string) error {
				_, err := loader.LoadMaterials(p)
				return err
			},
			expectError: "materials CSV header mismatch. Expected: [name density unit_price], Got: [name price]",
		},
		{
			name:    "bad number",
			content: "name,density,unit_price\nPET,heavy,9000\n",
			load: func(p string) error {
				_, err := loader.LoadMaterials(p)
				return err
			},
			expectError: "materials CSV row 2: invalid density: heavy",
		},
		{
			name:    "constructor rejects row",
			content: "name,capital_cost,useful_life_years,rated_power_kw\nSlitter,800000,0,40\n",
			load: func(p string) error {
				_, err := loader.LoadAssets(p)
				return err
			},
			expectError: "assets CSV row 2: useful life must be positive, got 0",
		},
		{
			name:    "fractional headcount",
			content: "title,headcount,basic_salary\nOperator,2.5,900\n",
			load: func(p string) error {
				_, err := loader.LoadWorkforce(p)
				return err
			},
			expectError: "workforce CSV row 2: invalid headcount: 2.5",
		},
		{
			name:    "empty file",
			content: "",
			load: func(p string) error {
				_, err := loader.LoadMix(p)
				return err
			},
			expectError: "mix CSV must have a header row",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.name+".csv", tc.content)
			err := tc.load(path)
			require.Error(t, err)
			assert.Equal(t, tc.expectError, err.Error())
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadTechnologies(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriter_TablesLoadBack(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter()
	loader := NewLoader()

	variants := []entities.TechnologyVariant{{
		Name: "Flexo", SetupCostPerColor: 400, WasteKgPerSetup: 50, ConsumableUnitCost: 1000,
		ConsumableLifeMeters: 500000, ConsumableUnitsPerColor: 2, MachineCapitalCost: 6e6, RatedPowerKW: 150,
	}}
	roles := []entities.WorkforceRole{{Title: "Operator, press", Headcount: 12, BasicSalary: 900.5}}

	techPath := filepath.Join(dir, "technologies.csv")
	rolesPath := filepath.Join(dir, "workforce.csv")
	require.NoError(t, writer.WriteTechnologies(techPath, variants))
	require.NoError(t, writer.WriteWorkforce(rolesPath, roles))

	loadedVariants, err := loader.LoadTechnologies(techPath)
	require.NoError(t, err)
	assert.Equal(t, variants, loadedVariants)

	loadedRoles, err := loader.LoadWorkforce(rolesPath)
	require.NoError(t, err)
	assert.Equal(t, roles, loadedRoles)
}
