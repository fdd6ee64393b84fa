package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vsinha/filmplant/pkg/infrastructure/config"
	"github.com/vsinha/filmplant/pkg/interfaces/cli/commands"
)

type command interface {
	Execute(ctx context.Context) error
}

func main() {
	cfg := config.Load()

	var cmd command
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "init":
			cmd = initCommand(os.Args[2:])
		case "serve":
			cmd = serveCommand(cfg, os.Args[2:])
		}
	}
	if cmd == nil {
		cmd = evaluateCommand(cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func evaluateCommand(cfg config.Config) command {
	// Command line flags
	var (
		scenarioDir = flag.String(
			"scenario",
			cfg.ScenarioDir,
			"Path to scenario directory containing parameters.yaml and CSV tables",
		)
		outputDir = flag.String("output", "", "Output directory for results (optional)")
		format    = flag.String("format", "text", "Output format: text, json, csv")
		sweepMax  = flag.Float64("sweep-max", 0, "Upper bound in tons of the technology cost sweep, overriding the scenario")
		verbose   = flag.Bool("verbose", cfg.Verbose, "Enable verbose output")
		help      = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	return commands.NewEvaluateCommand(commands.Config{
		ScenarioDir:         *scenarioDir,
		OutputDir:           *outputDir,
		Format:              *format,
		SweepMaxTons:        *sweepMax,
		DefaultSweepMaxTons: cfg.SweepMaxTons,
		Verbose:             *verbose,
		Help:                *help,
	})
}

func initCommand(args []string) command {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	outputDir := fs.String("output", "", "Directory to write the scenario into")
	force := fs.Bool("force", false, "Overwrite an existing scenario")
	verbose := fs.Bool("verbose", false, "Enable verbose output")
	help := fs.Bool("help", false, "Show help message")
	_ = fs.Parse(args)

	return commands.NewInitCommand(commands.InitConfig{
		OutputDir: *outputDir,
		Force:     *force,
		Verbose:   *verbose,
		Help:      *help,
	})
}

func serveCommand(cfg config.Config, args []string) command {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.String("port", cfg.Port, "Port to listen on")
	_ = fs.Parse(args)

	cfg.Port = *port
	return commands.NewServeCommand(cfg)
}
