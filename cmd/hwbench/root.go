package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hwbench/internal/config"
	"hwbench/internal/logging"
)

// app carries what every subcommand needs after flags are parsed.
type app struct {
	cfgFile  string
	logLevel string

	cfg    config.Config
	logger *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "hwbench",
		Short: "Detect hardware and size benchmark workloads",
		Long: `hwbench identifies the CPU and GPU of this machine, estimates their
benchmark scores, classifies them into low/medium/high tiers and picks
workload parameters that fit.

Examples:
  hwbench detect                 # Print the detected profile
  hwbench detect --json          # Same, as JSON
  hwbench sysinfo                # Platform, cores and memory
  hwbench report results.json    # Score results and write a report
  hwbench tui                    # Interactive viewer
  hwbench config test            # Validate configuration
  hwbench diag                   # Bundle logs and a detection trace`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// version needs no config; config test reports load failures itself
			if cmd.Name() == "test" || cmd.Name() == "version" {
				return nil
			}
			return a.init()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: system + user merge)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	root.AddCommand(
		newDetectCmd(a),
		newSysinfoCmd(a),
		newReportCmd(a),
		newTUICmd(a),
		newConfigCmd(a),
		newDiagCmd(a),
		newGPUCmd(a),
		newVersionCmd(),
	)

	return root
}

// init loads configuration and builds the logger.
func (a *app) init() error {
	cfg, err := a.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.NewLoggerWithFormat(level, logging.Format(cfg.Logging.Format), os.Stderr)
	return nil
}

func (a *app) loadConfig() (config.Config, error) {
	if a.cfgFile != "" {
		return config.LoadFrom(a.cfgFile)
	}
	return config.Load()
}
