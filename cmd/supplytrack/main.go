package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hmoraes/supplytrack/pkg/infrastructure/config"
	"github.com/hmoraes/supplytrack/pkg/interfaces/cli/commands"
	"github.com/hmoraes/supplytrack/pkg/logger"
)

func main() {
	var (
		days    = flag.Int("days", 0, "Number of simulated days of consumption (overrides SUPPLYTRACK_DAYS)")
		seed    = flag.Int64("seed", 0, "Random seed for reproducible simulation (0 = derive from clock)")
		format  = flag.String("format", "", "Output format: text, json (overrides SUPPLYTRACK_FORMAT)")
		envFile = flag.String("env", "", "Path to an optional .env file")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
		help    = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *days != 0 {
		cfg.Days = *days
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *format != "" {
		cfg.Format = *format
	}

	baseLogger := logger.Must(logger.New(*verbose))
	defer func() { _ = baseLogger.Sync() }()

	cmd := commands.NewDemoCommand(commands.Config{
		Days:    cfg.Days,
		Seed:    cfg.Seed,
		Format:  cfg.Format,
		Verbose: *verbose,
		Help:    *help,
	}, logger.Named(baseLogger, "demo"), os.Stdout)

	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
