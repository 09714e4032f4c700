package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hwbench/internal/sysinfo"
)

func newSysinfoCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sysinfo",
		Short: "Show platform, core counts and memory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := sysinfo.NewCollector(a.logger).Collect(cmd.Context())

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, info)
			}

			printHeader(out, "System")
			fmt.Fprintf(out, "  Platform:     %s\n", info.Platform)
			fmt.Fprintf(out, "  Processor:    %s\n", info.Processor)
			fmt.Fprintf(out, "  Architecture: %s (%s)\n", info.Architecture, info.Machine)
			fmt.Fprintf(out, "  Cores:        %d physical, %d logical\n", info.CPUCount, info.LogicalCPUCount)
			fmt.Fprintf(out, "  Memory:       %s total, %s available\n", info.TotalMemoryHuman(), info.AvailableMemoryHuman())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output JSON")

	return cmd
}
