package hardware

import (
	"context"
	"fmt"
	"strings"
)

const (
	cpuRegistryKey   = `HKEY_LOCAL_MACHINE\HARDWARE\DESCRIPTION\System\CentralProcessor\0`
	cpuRegistryValue = "ProcessorNameString"
	procCPUInfoPath  = "/proc/cpuinfo"
)

// cpuProbes lists CPU strategies for the target platform, best first.
func (p *Prober) cpuProbes() []Probe {
	probes := []Probe{
		{Name: "cpuid", Timeout: p.commandTimeout, Run: p.probeCPUID},
	}

	switch p.goos {
	case "windows":
		probes = append(probes,
			Probe{Name: "wmic", Timeout: p.commandTimeout, Run: p.probeCPUWMIC},
			Probe{Name: "registry", Timeout: p.commandTimeout, Run: p.probeCPURegistry},
		)
	case "darwin":
		probes = append(probes,
			Probe{Name: "sysctl", Timeout: p.commandTimeout, Run: p.probeCPUSysctl},
		)
	case "linux":
		probes = append(probes,
			Probe{Name: "cpuinfo", Timeout: p.commandTimeout, Run: p.probeCPUInfo},
		)
	}

	return probes
}

func (p *Prober) probeCPUID(_ context.Context) (string, error) {
	if p.brandName == nil {
		return "", errNoResult
	}
	return strings.TrimSpace(p.brandName()), nil
}

func (p *Prober) probeCPUWMIC(ctx context.Context) (string, error) {
	out, err := p.runner.Run(ctx, "wmic", "cpu", "get", "name")
	if err != nil {
		return "", err
	}

	lines := outputLines(out)
	// First line is the "Name" column header.
	if len(lines) < 2 {
		return "", errNoResult
	}
	return lines[1], nil
}

func (p *Prober) probeCPURegistry(ctx context.Context) (string, error) {
	out, err := p.runner.Run(ctx, "reg", "query", cpuRegistryKey, "/v", cpuRegistryValue)
	if err != nil {
		return "", err
	}

	for _, line := range outputLines(out) {
		if _, value, ok := strings.Cut(line, "REG_SZ"); ok {
			return strings.TrimSpace(value), nil
		}
	}
	return "", errNoResult
}

func (p *Prober) probeCPUSysctl(ctx context.Context) (string, error) {
	out, err := p.runner.Run(ctx, "sysctl", "-n", "machdep.cpu.brand_string")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func (p *Prober) probeCPUInfo(_ context.Context) (string, error) {
	data, err := p.readFile(procCPUInfoPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", procCPUInfoPath, err)
	}

	if names := fieldValue(outputLines(data), "model name"); len(names) > 0 {
		return names[0], nil
	}
	return "", errNoResult
}
