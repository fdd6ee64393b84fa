package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vsinha/filmplant/pkg/application/dto"
	"github.com/vsinha/filmplant/pkg/application/reference"
	"github.com/vsinha/filmplant/pkg/application/services"
	"github.com/vsinha/filmplant/pkg/domain/entities"
	calc "github.com/vsinha/filmplant/pkg/domain/services"
	"github.com/vsinha/filmplant/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/filmplant/pkg/infrastructure/scenario"
	"github.com/vsinha/filmplant/pkg/interfaces/cli/output"
)

// Config holds configuration for the evaluate command
type Config struct {
	ScenarioDir  string
	OutputDir    string
	Format       string
	SweepMaxTons float64 // overrides the scenario's sweep bound
	// DefaultSweepMaxTons fills the sweep bound only when the scenario leaves it unset
	DefaultSweepMaxTons float64
	Verbose             bool
	Help                bool
	Stdout              io.Writer
}

// EvaluateCommand loads a scenario directory and reports its evaluation
type EvaluateCommand struct {
	config Config
	out    io.Writer
}

// NewEvaluateCommand creates a new evaluate command with the given configuration
func NewEvaluateCommand(config Config) *EvaluateCommand {
	out := config.Stdout
	if out == nil {
		out = os.Stdout
	}
	return &EvaluateCommand{config: config, out: out}
}

// Execute runs the evaluate command
func (c *EvaluateCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.Verbose {
		c.printHeader()
		fmt.Fprintln(c.out, "📂 Loading scenario...")
	}

	s, err := scenario.Load(c.config.ScenarioDir)
	if err != nil {
		return fmt.Errorf("error loading scenario: %w", err)
	}
	switch {
	case c.config.SweepMaxTons > 0:
		s.Technology.SweepMaxTons = c.config.SweepMaxTons
	case c.config.DefaultSweepMaxTons > 0 && s.Technology.SweepMaxTons == 0:
		s.Technology.SweepMaxTons = c.config.DefaultSweepMaxTons
	}

	if c.config.Verbose {
		fmt.Fprintf(c.out, "✅ Scenario loaded successfully:\n")
		fmt.Fprintf(c.out, "  Structure: %s (%d layers)\n", s.Structure.Label, len(s.Structure.Layers))
		fmt.Fprintf(c.out, "  Materials: %d\n", len(s.Materials))
		fmt.Fprintf(c.out, "  Assets: %d\n", len(s.Assets))
		fmt.Fprintf(c.out, "  Roles: %d\n", len(s.Workforce.Roles))
		fmt.Fprintf(c.out, "  Technologies: %d\n", len(s.Technology.Variants))
		fmt.Fprintf(c.out, "  Mix Segments: %d\n", len(s.Mix.Segments))
		fmt.Fprintln(c.out)
	}

	// Built-in film library; scenario materials take precedence
	catalog, err := memory.NewMaterialRepositoryFrom(reference.Materials())
	if err != nil {
		return fmt.Errorf("failed to load material catalog: %w", err)
	}

	if c.config.Verbose {
		c.checkScenario(s, catalog)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Fprintln(c.out, "🔄 Running evaluation...")
	}

	evaluationService := services.NewEvaluationService(catalog)
	startTime := time.Now()
	result := evaluationService.Evaluate(s)
	evaluationTime := time.Since(startTime)

	if c.config.Verbose {
		fmt.Fprintf(c.out, "✅ Evaluation completed in %v (%d issues)\n\n", evaluationTime, len(result.Issues))
	}

	outputConfig := output.Config{
		Format:         c.config.Format,
		OutputDir:      c.config.OutputDir,
		Verbose:        c.config.Verbose,
		EvaluationTime: evaluationTime,
		ScenarioDir:    c.config.ScenarioDir,
		Stdout:         c.out,
	}
	if err := output.Generate(result, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Verbose {
		fmt.Fprintln(c.out, "🏁 Evaluation complete!")
	}

	return nil
}

// checkScenario prints consistency findings ahead of the evaluation. They are
// informational; the evaluation reports the same problems as issues.
func (c *EvaluateCommand) checkScenario(s dto.Scenario, catalog *memory.MaterialRepository) {
	fmt.Fprintln(c.out, "🔍 Validating scenario consistency...")

	known := append([]entities.Material(nil), s.Materials...)
	if all, err := catalog.GetAllMaterials(); err == nil {
		for _, material := range all {
			known = append(known, *material)
		}
	}

	findings := 0
	for _, check := range []*calc.ValidationResult{
		calc.ValidateStructureMaterials(s.Structure, known),
		calc.ValidateMixShares(s.Mix.Segments),
	} {
		for _, msg := range check.Errors {
			fmt.Fprintf(c.out, "  ❌ %s\n", msg)
			findings++
		}
		for _, msg := range check.Warnings {
			fmt.Fprintf(c.out, "  ⚠️  %s\n", msg)
			findings++
		}
	}

	if findings == 0 {
		fmt.Fprintln(c.out, "✅ Scenario consistency validation passed")
	}
	fmt.Fprintln(c.out)
}

// validateInputs validates the command configuration
func (c *EvaluateCommand) validateInputs() error {
	if c.config.ScenarioDir == "" {
		return fmt.Errorf("must specify a -scenario directory")
	}
	info, err := os.Stat(c.config.ScenarioDir)
	if err != nil {
		return fmt.Errorf("scenario directory not found: %s", c.config.ScenarioDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("scenario path is not a directory: %s", c.config.ScenarioDir)
	}
	switch c.config.Format {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("unsupported output format: %s", c.config.Format)
	}
	return nil
}

// printHeader prints the command header information
func (c *EvaluateCommand) printHeader() {
	fmt.Fprintf(c.out, "🚀 Film Plant Evaluation CLI\n")
	fmt.Fprintf(c.out, "Scenario: %s\n", c.config.ScenarioDir)
	fmt.Fprintf(c.out, "Output format: %s\n", c.config.Format)
	if c.config.OutputDir != "" {
		fmt.Fprintf(c.out, "Output directory: %s\n", c.config.OutputDir)
	}
	fmt.Fprintln(c.out)
}

// showHelp displays usage information
func (c *EvaluateCommand) showHelp() {
	fmt.Fprint(c.out, `Film Plant Evaluation CLI

Evaluates a flexible-packaging converting plant scenario: press throughput,
consumables, lamination capacity, CAPEX and depreciation, overhead,
profitability, the Flexo/Rotogravure crossover and the revenue mix.

USAGE:
    filmplant [options]
    filmplant init -output DIR
    filmplant serve [-port PORT]

OPTIONS:
    -scenario DIR     Scenario directory (parameters.yaml plus optional CSV tables)
    -format FORMAT    Output format: text, json, csv (default: text)
    -output DIR       Output directory for results (optional)
    -sweep-max TONS   Upper bound of the technology cost sweep, overriding the
                      scenario (optional; SWEEP_MAX_TONS only fills an unset bound)
    -verbose          Enable verbose output
    -help             Show this help message

SCENARIO FILES:
    parameters.yaml   Process, structure, prices and commercial parameters (required)
    materials.csv     name,density,unit_price
    assets.csv        name,capital_cost,useful_life_years,rated_power_kw
    workforce.csv     title,headcount,basic_salary
    admin_costs.csv   label,monthly_amount
    technologies.csv  name,setup_cost_per_color,waste_kg_per_setup,consumable_unit_cost,
                      consumable_life_meters,consumable_units_per_color,
                      machine_capital_cost,rated_power_kw
    mix.csv           structure_label,volume_share_percent,unit_price

EXAMPLES:
    # Write the reference PET12/PE50 scenario and evaluate it
    filmplant init -output scenarios/royan
    filmplant -scenario scenarios/royan

    # Generate CSV tables for spreadsheet review
    filmplant -scenario scenarios/royan -format csv -output results/

    # Run with verbose output
    filmplant -scenario scenarios/royan -verbose
`)
}
