package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hwbench/internal/diag"
	"hwbench/internal/hardware"
	"hwbench/internal/logging"
	"hwbench/internal/sysinfo"
)

func newDiagCmd(a *app) *cobra.Command {
	var (
		outputPath  string
		noLogs      bool
		noDetection bool
	)

	cmd := &cobra.Command{
		Use:   "diag",
		Short: "Create a diagnostic bundle for detection problems",
		Long: `Collect configuration, logs and a traced detection pass into a ZIP.
Home directories and the hostname are masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := diag.NewConfig(version, tuiStateDir())
			if a.cfgFile != "" {
				cfg.ConfigFiles = map[string]string{"config.yaml": a.cfgFile}
			}
			if outputPath != "" {
				cfg.OutputPath = outputPath
			}
			cfg.IncludeLogs = !noLogs
			cfg.IncludeDetection = !noDetection

			detection := a.cfg.Detection
			sources := func(trace *logging.Logger) (diag.ProfileSource, diag.InfoSource) {
				return hardware.NewDetector(detection, trace), sysinfo.NewCollector(trace)
			}

			path, err := diag.NewPackager(cfg, sources, a.logger).CreatePackage(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Diagnostic package written to %s\n", okStyle.Render("✓"), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "bundle path (default hwbench-diag-<timestamp>.zip)")
	cmd.Flags().BoolVar(&noLogs, "no-logs", false, "skip log files")
	cmd.Flags().BoolVar(&noDetection, "no-detect", false, "skip the traced detection pass")

	return cmd
}
