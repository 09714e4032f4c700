package hardware

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var discreteGPUKeywords = []string{"NVIDIA", "AMD", "RADEON", "GTX", "RTX", "RX"}

// gpuProbes lists GPU strategies for the target platform, best first.
func (p *Prober) gpuProbes() []Probe {
	var probes []Probe

	switch p.goos {
	case "windows":
		probes = append(probes,
			Probe{Name: "wmic", Timeout: p.gpuQueryTimeout, Run: p.probeGPUWMIC},
			Probe{Name: "powershell", Timeout: p.gpuQueryTimeout, Run: p.probeGPUPowerShell},
			Probe{Name: "dxdiag", Timeout: p.diagnosticsTimeout, Run: p.probeGPUDxDiag},
		)
	case "darwin":
		probes = append(probes,
			Probe{Name: "system_profiler", Timeout: p.gpuQueryTimeout, Run: p.probeGPUSystemProfiler},
		)
	default:
		probes = append(probes,
			Probe{Name: "lspci", Timeout: p.commandTimeout, Run: p.probeGPULspci},
		)
	}

	if p.gpuLister != nil {
		probes = append(probes, Probe{Name: "nvml", Timeout: p.gpuQueryTimeout, Run: p.probeGPUNVML})
	}

	return probes
}

// preferDiscrete picks the first candidate naming a discrete GPU vendor or
// series, falling back to the first candidate.
func preferDiscrete(candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", errNoResult
	}
	for _, c := range candidates {
		upper := strings.ToUpper(c)
		for _, kw := range discreteGPUKeywords {
			if strings.Contains(upper, kw) {
				return c, nil
			}
		}
	}
	return candidates[0], nil
}

func (p *Prober) probeGPUWMIC(ctx context.Context) (string, error) {
	out, err := p.runner.Run(ctx, "wmic", "path", "win32_VideoController", "get", "name")
	if err != nil {
		return "", err
	}

	lines := outputLines(out)
	if len(lines) > 0 && strings.EqualFold(lines[0], "Name") {
		lines = lines[1:]
	}
	return preferDiscrete(lines)
}

func (p *Prober) probeGPUPowerShell(ctx context.Context) (string, error) {
	out, err := p.runner.Run(ctx, "powershell", "-Command",
		"Get-WmiObject -Class Win32_VideoController | Select-Object Name")
	if err != nil {
		return "", err
	}

	var candidates []string
	for _, line := range outputLines(out) {
		if strings.EqualFold(line, "Name") || strings.Trim(line, "-") == "" {
			continue
		}
		candidates = append(candidates, line)
	}
	return preferDiscrete(candidates)
}

// probeGPUDxDiag dumps dxdiag output into a private scratch directory that is
// removed on every return path.
func (p *Prober) probeGPUDxDiag(ctx context.Context) (string, error) {
	dir, err := os.MkdirTemp(p.tempDir, "hwbench-dxdiag-*")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			p.logger.Warn("hardware.dxdiag.cleanup.failed", "Failed to remove dxdiag scratch directory", map[string]interface{}{
				"path":  dir,
				"error": rmErr.Error(),
			})
		}
	}()

	dumpPath := filepath.Join(dir, "dxdiag.txt")
	if _, err := p.runner.Run(ctx, "dxdiag", "/t", dumpPath); err != nil {
		return "", err
	}

	data, err := p.readFile(dumpPath)
	if err != nil {
		return "", fmt.Errorf("failed to read dxdiag output: %w", err)
	}

	lines := outputLines(data)
	if names := fieldValue(lines, "Card name"); len(names) > 0 {
		return preferDiscrete(names)
	}
	return preferDiscrete(fieldValue(lines, "Chip type"))
}

func (p *Prober) probeGPULspci(ctx context.Context) (string, error) {
	out, err := p.runner.Run(ctx, "lspci")
	if err != nil {
		return "", err
	}

	var candidates []string
	for _, line := range outputLines(out) {
		if !strings.Contains(line, "VGA") && !strings.Contains(line, "Display") && !strings.Contains(line, "3D") {
			continue
		}
		// "01:00.0 VGA compatible controller: NVIDIA Corporation ..."
		if idx := strings.Index(line, ": "); idx >= 0 {
			candidates = append(candidates, strings.TrimSpace(line[idx+2:]))
		}
	}
	return preferDiscrete(candidates)
}

func (p *Prober) probeGPUSystemProfiler(ctx context.Context) (string, error) {
	out, err := p.runner.Run(ctx, "system_profiler", "SPDisplaysDataType")
	if err != nil {
		return "", err
	}
	return preferDiscrete(fieldValue(outputLines(out), "Chipset Model"))
}

func (p *Prober) probeGPUNVML(ctx context.Context) (string, error) {
	names, err := p.gpuLister.DeviceNames(ctx)
	if err != nil {
		return "", err
	}
	return preferDiscrete(names)
}
