package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/filmplant/pkg/application/reference"
	"github.com/vsinha/filmplant/pkg/domain/entities"
	"github.com/vsinha/filmplant/pkg/domain/services"
	"github.com/vsinha/filmplant/pkg/infrastructure/scenario"
)

func initScenario(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "royan")
	var out bytes.Buffer
	require.NoError(t, NewInitCommand(InitConfig{OutputDir: dir, Stdout: &out}).Execute(context.Background()))
	return dir
}

func TestInitCommand_WritesReferenceScenario(t *testing.T) {
	dir := initScenario(t)

	loaded, err := scenario.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, reference.Scenario(), loaded)
}

func TestInitCommand_RefusesToOverwrite(t *testing.T) {
	dir := initScenario(t)
	var out bytes.Buffer

	err := NewInitCommand(InitConfig{OutputDir: dir, Stdout: &out}).Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use -force")

	err = NewInitCommand(InitConfig{OutputDir: dir, Force: true, Verbose: true, Stdout: &out}).Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Assets: 9")
}

func TestInitCommand_RequiresOutput(t *testing.T) {
	err := NewInitCommand(InitConfig{Stdout: &bytes.Buffer{}}).Execute(context.Background())
	assert.Error(t, err)
}

func TestEvaluateCommand_Text(t *testing.T) {
	dir := initScenario(t)
	var out bytes.Buffer

	cmd := NewEvaluateCommand(Config{ScenarioDir: dir, Format: "text", Verbose: true, Stdout: &out})
	require.NoError(t, cmd.Execute(context.Background()))

	report := out.String()
	assert.Contains(t, report, "🚀 Film Plant Evaluation CLI")
	assert.Contains(t, report, "✅ Scenario consistency validation passed")
	assert.Contains(t, report, "Structure: PET12/PE50")
	assert.Contains(t, report, "🏁 Evaluation complete!")
}

func TestEvaluateCommand_JSONWithSweepOverride(t *testing.T) {
	dir := initScenario(t)
	outputDir := t.TempDir()
	var out bytes.Buffer

	cmd := NewEvaluateCommand(Config{
		ScenarioDir:  dir,
		OutputDir:    outputDir,
		Format:       "json",
		SweepMaxTons: 20,
		Stdout:       &out,
	})
	require.NoError(t, cmd.Execute(context.Background()))

	assert.InDelta(t, 20, lastSweepPoint(t, outputDir), 1e-9)
}

func TestEvaluateCommand_SweepBoundPrecedence(t *testing.T) {
	tests := []struct {
		name          string
		scenarioTons  float64
		flagTons      float64
		defaultTons   float64
		wantLastPoint float64
	}{
		{"configured default fills unset bound", 0, 0, 20, 20},
		{"scenario bound beats configured default", 30, 0, 20, 30},
		{"flag beats scenario bound", 30, 25, 20, 25},
		{"nothing set uses engine default", 0, 0, 0, services.DefaultSweepMaxTons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := reference.Scenario()
			s.Technology.SweepMaxTons = tt.scenarioTons
			dir := filepath.Join(t.TempDir(), "scenario")
			require.NoError(t, scenario.Save(dir, s))
			outputDir := t.TempDir()

			cmd := NewEvaluateCommand(Config{
				ScenarioDir:         dir,
				OutputDir:           outputDir,
				Format:              "json",
				SweepMaxTons:        tt.flagTons,
				DefaultSweepMaxTons: tt.defaultTons,
				Stdout:              &bytes.Buffer{},
			})
			require.NoError(t, cmd.Execute(context.Background()))
			assert.InDelta(t, tt.wantLastPoint, lastSweepPoint(t, outputDir), 1e-9)
		})
	}
}

func lastSweepPoint(t *testing.T, outputDir string) float64 {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(outputDir, "evaluation.json"))
	require.NoError(t, err)

	var decoded struct {
		Technology struct {
			Curves []struct {
				Points []struct {
					Tons float64 `json:"tons"`
				} `json:"points"`
			} `json:"curves"`
		} `json:"technology"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotEmpty(t, decoded.Technology.Curves)
	points := decoded.Technology.Curves[0].Points
	require.NotEmpty(t, points)
	return points[len(points)-1].Tons
}

func TestEvaluateCommand_ReportsInconsistentScenario(t *testing.T) {
	dir := t.TempDir()
	s := reference.Scenario()
	s.Structure.Layers = append(s.Structure.Layers, entities.Layer{Material: "NYLON", ThicknessMicrons: 15})
	s.Mix.Segments = s.Mix.Segments[:2]
	require.NoError(t, scenario.Save(dir, s))
	var out bytes.Buffer

	cmd := NewEvaluateCommand(Config{ScenarioDir: dir, Format: "text", Verbose: true, Stdout: &out})
	require.NoError(t, cmd.Execute(context.Background()))

	assert.Contains(t, out.String(), "layer 3 references unknown material NYLON")
	assert.Contains(t, out.String(), "mix volume shares add to 65%")
}

func TestEvaluateCommand_InputErrors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "parameters.yaml")
	require.NoError(t, os.WriteFile(file, []byte("process: {}\n"), 0o644))

	tests := []struct {
		name   string
		config Config
	}{
		{"no scenario", Config{Format: "text"}},
		{"missing directory", Config{ScenarioDir: filepath.Join(t.TempDir(), "absent"), Format: "text"}},
		{"not a directory", Config{ScenarioDir: file, Format: "text"}},
		{"bad format", Config{ScenarioDir: t.TempDir(), Format: "html"}},
		{"no parameters", Config{ScenarioDir: t.TempDir(), Format: "text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.Stdout = &bytes.Buffer{}
			assert.Error(t, NewEvaluateCommand(tt.config).Execute(context.Background()))
		})
	}
}

func TestEvaluateCommand_Help(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, NewEvaluateCommand(Config{Help: true, Stdout: &out}).Execute(context.Background()))

	assert.Contains(t, out.String(), "filmplant init -output DIR")
}
