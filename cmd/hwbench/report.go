package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"hwbench/internal/hardware"
	"hwbench/internal/report"
	"hwbench/internal/score"
	"hwbench/internal/sysinfo"
)

func newReportCmd(a *app) *cobra.Command {
	var (
		outputPath string
		noDetect   bool
		show       bool
	)

	cmd := &cobra.Command{
		Use:   "report <results.json>",
		Short: "Score benchmark results and write a report",
		Long: `Read a benchmark results file, score it against the reference baselines
and write a report that embeds system info and the detected hardware profile.

With --show the argument is an existing report, which is printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if show {
				return showReport(cmd, args[0])
			}

			results, err := report.LoadResults(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			sys := sysinfo.NewCollector(a.logger).Collect(ctx)

			var profile *hardware.Profile
			if !noDetect {
				p := hardware.NewDetector(a.cfg.Detection, a.logger).DetectAndConfigure(ctx)
				profile = &p
			}

			if outputPath == "" {
				outputPath = a.cfg.Report.OutputPath
			}

			rep := report.Build(sys, profile, results, time.Now().UTC())
			if err := rep.Save(outputPath, a.logger); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printScores(out, rep.Scores)
			fmt.Fprintf(out, "\n%s Report written to %s\n", okStyle.Render("✓"), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "report path (default from config)")
	cmd.Flags().BoolVar(&noDetect, "no-detect", false, "skip hardware detection")
	cmd.Flags().BoolVar(&show, "show", false, "print an existing report instead of writing one")
	cmd.MarkFlagsMutuallyExclusive("show", "output")
	cmd.MarkFlagsMutuallyExclusive("show", "no-detect")

	return cmd
}

// showReport prints a report previously written by the report command.
func showReport(cmd *cobra.Command, path string) error {
	rep, err := report.Load(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Report generated %s\n\n", rep.GeneratedAt.Format(time.RFC3339))

	if rep.HardwareInfo != nil && rep.TestParameters != nil {
		printProfile(out, hardware.Profile{
			HardwareInfo:   *rep.HardwareInfo,
			TestParameters: *rep.TestParameters,
		})
	} else {
		fmt.Fprintln(out, mutedStyle.Render("No hardware profile (detection was skipped)."))
	}
	fmt.Fprintln(out)

	printScores(out, rep.Scores)
	return nil
}

func printScores(out io.Writer, s score.Scores) {
	printHeader(out, "Scores")
	fmt.Fprintf(out, "  CPU single:  %8.2f\n", s.CPUSingleThread)
	fmt.Fprintf(out, "  CPU multi:   %8.2f\n", s.CPUMultiThread)
	fmt.Fprintf(out, "  Memory:      %8.2f\n", s.Memory)
	fmt.Fprintf(out, "  Disk write:  %8.2f\n", s.DiskWrite)
	fmt.Fprintf(out, "  Disk read:   %8.2f\n", s.DiskRead)
	fmt.Fprintf(out, "  GPU:         %8.2f\n", s.GPU)
	fmt.Fprintf(out, "  Total:       %8.2f\n", s.Total)
}
