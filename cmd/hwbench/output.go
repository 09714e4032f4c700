package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"hwbench/internal/hardware"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00d7ff"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd75f")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w, headerStyle.Render("=== "+title+" ==="))
}

func printProfile(w io.Writer, p hardware.Profile) {
	hw := p.HardwareInfo
	params := p.TestParameters

	printHeader(w, "Hardware")
	fmt.Fprintf(w, "  CPU:        %s\n", hw.CPU.Name)
	if hw.CPU.FullName != hw.CPU.Name {
		fmt.Fprintf(w, "              %s\n", mutedStyle.Render(hw.CPU.FullName))
	}
	fmt.Fprintf(w, "  Cores:      %d (%d threads)\n", hw.CPU.Cores, hw.CPU.Threads)
	fmt.Fprintf(w, "  CPU score:  %s (%s)\n", humanize.Comma(int64(hw.CPUScore)), hw.CPUTier)
	fmt.Fprintf(w, "  GPU:        %s\n", hw.GPU.Name)
	fmt.Fprintf(w, "  GPU score:  %s (%s)\n", humanize.Comma(int64(hw.GPUScore)), hw.GPUTier)
	fmt.Fprintln(w)

	threads := fmt.Sprintf("%d", params.CPU.MaxThreads)
	if params.CPU.MaxThreads == 0 {
		threads = fmt.Sprintf("all (%d)", params.EffectiveThreads(hw.CPU.Threads))
	}

	printHeader(w, "Workload Parameters")
	fmt.Fprintf(w, "  CPU single: %ds\n", params.CPU.SingleDurationSeconds)
	fmt.Fprintf(w, "  CPU multi:  %ds on %s threads\n", params.CPU.MultiDurationSeconds, threads)
	fmt.Fprintf(w, "  CPU calcs:  %s\n", humanize.Comma(int64(params.CPU.CalculationCount)))
	fmt.Fprintf(w, "  GPU load:   %.0f%%\n", params.GPU.MaxLoad*100)
	fmt.Fprintf(w, "  Memory:     %d MB in blocks of %d MB\n", params.Memory.SizeMB, params.Memory.MaxBlockMB)
	fmt.Fprintf(w, "  Disk file:  %d MB\n", params.Disk.FileSizeMB)
}
