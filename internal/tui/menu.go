package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"hwbench/internal/hardware"
)

var (
	titleStyle            = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00d7ff")).MarginBottom(1)
	sectionStyle          = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd700")).MarginTop(1)
	labelStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("#87d7af")).Width(20)
	valueStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))
	menuItemStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))
	menuItemSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#00d7ff")).Bold(true)
	descStyle             = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")).PaddingLeft(2)
	keyStyle              = lipgloss.NewStyle().Foreground(lipgloss.Color("#87d7af")).Bold(true)
	hintStyle             = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fafff")).MarginTop(1)
	errorStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true).MarginTop(1)
	mutedStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))

	tierStyles = map[hardware.Tier]lipgloss.Style{
		hardware.TierHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd75f")).Bold(true),
		hardware.TierMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd700")).Bold(true),
		hardware.TierLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff875f")).Bold(true),
	}
)

func renderTier(t hardware.Tier) string {
	return tierStyles[t].Render(t.String())
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}

// renderMenu renders the main menu screen
func (m Model) renderMenu() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("hwbench: Main Menu"))
	b.WriteString("\n\n")

	for i, item := range DefaultMenuItems() {
		label := fmt.Sprintf("[%s] %s", item.Key, item.Label)
		if i == m.selection {
			b.WriteString(menuItemSelectedStyle.Render(label))
		} else {
			b.WriteString(menuItemStyle.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(descStyle.Render(item.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderDetectionStatus())
	b.WriteString(hintStyle.Render("Navigate: ↑/↓ or numbers | Select: Enter/Space | Re-detect: r | Back: Esc | Quit: q"))
	b.WriteString("\n")

	if m.lastError != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("⚠ " + m.lastError))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderDetectionStatus() string {
	switch {
	case m.detecting:
		return mutedStyle.Render("Detecting hardware...") + "\n"
	case m.hasProfile:
		return mutedStyle.Render("Detected "+humanize.Time(m.detectedAt)) + "\n"
	default:
		return ""
	}
}

// renderHardwareScreen renders the detected devices with scores and tiers
func (m Model) renderHardwareScreen() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Hardware"))
	b.WriteString("\n\n")

	if !m.hasProfile {
		b.WriteString(m.renderPending())
		return b.String()
	}

	hw := m.detected.HardwareInfo

	b.WriteString(sectionStyle.Render("CPU"))
	b.WriteString("\n")
	writeRow(&b, "Model", hw.CPU.Name)
	writeRow(&b, "Reported as", hw.CPU.FullName)
	writeRow(&b, "Cores / Threads", fmt.Sprintf("%d / %d", hw.CPU.Cores, hw.CPU.Threads))
	writeRow(&b, "Score", humanize.Comma(int64(hw.CPUScore)))
	b.WriteString(labelStyle.Render("Tier"))
	b.WriteString(renderTier(hw.CPUTier))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("GPU"))
	b.WriteString("\n")
	writeRow(&b, "Model", hw.GPU.Name)
	writeRow(&b, "Score", humanize.Comma(int64(hw.GPUScore)))
	b.WriteString(labelStyle.Render("Tier"))
	b.WriteString(renderTier(hw.GPUTier))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Overall"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Tier"))
	b.WriteString(renderTier(hardware.MinTier(hw.CPUTier, hw.GPUTier)))
	b.WriteString("\n")

	b.WriteString(hintStyle.Render("Press 'r' to re-detect, Esc to return to menu, 'q' to quit"))
	b.WriteString("\n")

	return b.String()
}

// renderParametersScreen renders the workload parameters for the detected tiers
func (m Model) renderParametersScreen() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Workload Parameters"))
	b.WriteString("\n\n")

	if !m.hasProfile {
		b.WriteString(m.renderPending())
		return b.String()
	}

	p := m.detected.TestParameters
	hw := m.detected.HardwareInfo

	threads := fmt.Sprintf("%d", p.CPU.MaxThreads)
	if p.CPU.MaxThreads == 0 {
		threads = fmt.Sprintf("all (%d)", p.EffectiveThreads(hw.CPU.Threads))
	}

	b.WriteString(sectionStyle.Render("CPU (" + hw.CPUTier.String() + ")"))
	b.WriteString("\n")
	writeRow(&b, "Single-thread run", fmt.Sprintf("%ds", p.CPU.SingleDurationSeconds))
	writeRow(&b, "Multi-thread run", fmt.Sprintf("%ds", p.CPU.MultiDurationSeconds))
	writeRow(&b, "Max threads", threads)
	writeRow(&b, "Calculations", humanize.Comma(int64(p.CPU.CalculationCount)))

	b.WriteString(sectionStyle.Render("GPU (" + hw.GPUTier.String() + ")"))
	b.WriteString("\n")
	writeRow(&b, "Max load", fmt.Sprintf("%.0f%%", p.GPU.MaxLoad*100))

	overall := hardware.MinTier(hw.CPUTier, hw.GPUTier)
	b.WriteString(sectionStyle.Render("Memory & Disk (" + overall.String() + ")"))
	b.WriteString("\n")
	writeRow(&b, "Memory total", fmt.Sprintf("%d MB", p.Memory.SizeMB))
	writeRow(&b, "Memory block", fmt.Sprintf("%d MB", p.Memory.MaxBlockMB))
	writeRow(&b, "Disk file", fmt.Sprintf("%d MB", p.Disk.FileSizeMB))

	b.WriteString(hintStyle.Render("Press 'r' to re-detect, Esc to return to menu, 'q' to quit"))
	b.WriteString("\n")

	return b.String()
}

// renderSystemScreen renders host facts
func (m Model) renderSystemScreen() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("System"))
	b.WriteString("\n\n")

	if !m.hasProfile {
		b.WriteString(m.renderPending())
		return b.String()
	}

	s := m.system
	writeRow(&b, "Platform", s.Platform)
	writeRow(&b, "Processor", s.Processor)
	writeRow(&b, "Architecture", strings.TrimSpace(s.Architecture+" "+s.Machine))
	writeRow(&b, "Cores / Threads", fmt.Sprintf("%d / %d", s.CPUCount, s.LogicalCPUCount))
	writeRow(&b, "Memory", fmt.Sprintf("%s total, %s available", s.TotalMemoryHuman(), s.AvailableMemoryHuman()))

	b.WriteString(hintStyle.Render("Press Esc to return to menu, 'q' to quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderPending() string {
	if m.detecting {
		return mutedStyle.Render("Detecting hardware...") + "\n"
	}
	return mutedStyle.Render("No detection result. Press 'r' to detect.") + "\n"
}

// renderHelpScreen renders the help screen
func (m Model) renderHelpScreen() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Help: Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	for _, row := range [][2]string{
		{"1-3, ?      ", "Quick menu selection by number/key"},
		{"↑ / ↓, k / j", "Navigate menu items"},
		{"Enter/Space ", "Select highlighted item"},
		{"Esc         ", "Return to main menu"},
		{"q / Ctrl+C  ", "Quit hwbench"},
	} {
		b.WriteString(keyStyle.Render(row[0] + " "))
		b.WriteString(valueStyle.Render(row[1]))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Detection"))
	b.WriteString("\n")
	b.WriteString(keyStyle.Render("r            "))
	b.WriteString(valueStyle.Render("Re-run hardware detection"))
	b.WriteString("\n")

	b.WriteString(hintStyle.Render("Press Esc to return to menu"))
	b.WriteString("\n")

	return b.String()
}
