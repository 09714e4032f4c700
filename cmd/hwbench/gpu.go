package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"hwbench/internal/gpu"
)

func newGPUCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "gpu",
		Short: "List NVIDIA GPUs through NVML",
		Long: `Enumerate NVIDIA GPUs through NVML. Binaries built without the cuda
build tag report NVML as unavailable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv := gpu.NewLister(a.logger).Inventory()

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, inv)
			}

			printHeader(out, "GPU Detection Report")
			if !inv.NVMLOk {
				fmt.Fprintf(out, "%s NVML Status: FAILED\n", failStyle.Render("❌"))
				fmt.Fprintf(out, "   Error: %s\n", inv.ErrorMessage)
				fmt.Fprintln(out, mutedStyle.Render("   Detection falls back to OS probes for the GPU name."))
				return nil
			}

			fmt.Fprintf(out, "%s NVML Status: OK\n", okStyle.Render("✓"))
			fmt.Fprintf(out, "  Driver Version: %s\n", inv.DriverVersion)
			fmt.Fprintf(out, "  CUDA Version:   %d\n", inv.CUDAVersion)
			fmt.Fprintf(out, "  GPU Count:      %d\n", len(inv.Devices))
			for _, d := range inv.Devices {
				fmt.Fprintf(out, "\n  GPU %d:\n", d.Index)
				fmt.Fprintf(out, "    Name:   %s\n", d.Name)
				fmt.Fprintf(out, "    UUID:   %s\n", d.UUID)
				fmt.Fprintf(out, "    Memory: %s\n", humanize.IBytes(d.MemoryMB<<20))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output JSON")

	return cmd
}
