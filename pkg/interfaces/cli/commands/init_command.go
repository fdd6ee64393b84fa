package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vsinha/filmplant/pkg/application/reference"
	"github.com/vsinha/filmplant/pkg/infrastructure/scenario"
)

// InitConfig holds configuration for writing a starter scenario
type InitConfig struct {
	OutputDir string
	Force     bool
	Help      bool
	Verbose   bool
	Stdout    io.Writer
}

// InitCommand writes the reference plant scenario to a directory
type InitCommand struct {
	config InitConfig
	out    io.Writer
}

// NewInitCommand creates a new init command
func NewInitCommand(config InitConfig) *InitCommand {
	out := config.Stdout
	if out == nil {
		out = os.Stdout
	}
	return &InitCommand{config: config, out: out}
}

// Execute runs the init command
func (cmd *InitCommand) Execute(ctx context.Context) error {
	if cmd.config.Help {
		cmd.printHelp()
		return nil
	}

	if cmd.config.OutputDir == "" {
		return fmt.Errorf("validation error: must specify an -output directory")
	}

	if !cmd.config.Force {
		existing := filepath.Join(cmd.config.OutputDir, scenario.ParametersFile)
		if _, err := os.Stat(existing); err == nil {
			return fmt.Errorf("%s already exists (use -force to overwrite)", existing)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if cmd.config.Verbose {
		fmt.Fprintf(cmd.out, "🔧 Writing reference scenario %s\n", reference.Label)
		fmt.Fprintf(cmd.out, "📁 Output directory: %s\n", cmd.config.OutputDir)
	}

	s := reference.Scenario()
	if err := scenario.Save(cmd.config.OutputDir, s); err != nil {
		return fmt.Errorf("failed to write scenario: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Fprintf(cmd.out, "✅ Scenario written:\n")
		fmt.Fprintf(cmd.out, "  Materials: %d\n", len(s.Materials))
		fmt.Fprintf(cmd.out, "  Assets: %d\n", len(s.Assets))
		fmt.Fprintf(cmd.out, "  Roles: %d\n", len(s.Workforce.Roles))
		fmt.Fprintf(cmd.out, "  Admin Costs: %d\n", len(s.Workforce.Admin))
		fmt.Fprintf(cmd.out, "  Technologies: %d\n", len(s.Technology.Variants))
		fmt.Fprintf(cmd.out, "  Mix Segments: %d\n", len(s.Mix.Segments))
	}

	fmt.Fprintf(cmd.out, "Scenario written to %s\n", cmd.config.OutputDir)
	return nil
}

func (cmd *InitCommand) printHelp() {
	fmt.Fprint(cmd.out, `Write the reference scenario

Creates parameters.yaml and the CSV tables for the PET12/PE50 laminate plant
so it can be edited and evaluated.

USAGE:
    filmplant init -output DIR [options]

OPTIONS:
    -output DIR   Directory to write the scenario into (required)
    -force        Overwrite an existing scenario
    -verbose      Enable verbose output
    -help         Show this help message
`)
}
