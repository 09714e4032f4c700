package sysinfo

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"hwbench/internal/logging"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Info is the system_info section of a benchmark report.
type Info struct {
	Platform        string `json:"platform"`
	Processor       string `json:"processor"`
	Architecture    string `json:"architecture"`
	Machine         string `json:"machine,omitempty"`
	CPUCount        int    `json:"cpu_count"`
	LogicalCPUCount int    `json:"logical_cpu_count"`
	TotalMemory     uint64 `json:"total_memory"`
	AvailableMemory uint64 `json:"available_memory"`
}

// TotalMemoryHuman renders TotalMemory with IEC units, e.g. "32 GiB".
func (i Info) TotalMemoryHuman() string {
	return humanize.IBytes(i.TotalMemory)
}

// AvailableMemoryHuman renders AvailableMemory with IEC units.
func (i Info) AvailableMemoryHuman() string {
	return humanize.IBytes(i.AvailableMemory)
}

// Collector gathers host facts through gopsutil. The source functions are
// fields so tests can substitute them.
type Collector struct {
	hostInfo  func(ctx context.Context) (*host.InfoStat, error)
	cpuInfo   func(ctx context.Context) ([]cpu.InfoStat, error)
	cpuCounts func(ctx context.Context, logical bool) (int, error)
	memory    func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	logger    *logging.Logger
}

// NewCollector creates a collector for the running host.
func NewCollector(logger *logging.Logger) *Collector {
	return &Collector{
		hostInfo:  host.InfoWithContext,
		cpuInfo:   cpu.InfoWithContext,
		cpuCounts: cpu.CountsWithContext,
		memory:    mem.VirtualMemoryWithContext,
		logger:    logger,
	}
}

// Collect returns whatever could be read. Failing sources leave their fields
// at zero values and are logged.
func (c *Collector) Collect(ctx context.Context) Info {
	info := Info{
		Architecture: strconv.Itoa(strconv.IntSize) + "bit",
		Machine:      runtime.GOARCH,
		Platform:     runtime.GOOS,
	}

	if h, err := c.hostInfo(ctx); err != nil {
		c.warn("host", err)
	} else if h != nil {
		info.Platform = platformString(h)
		if h.KernelArch != "" {
			info.Machine = h.KernelArch
		}
	}

	if cpus, err := c.cpuInfo(ctx); err != nil {
		c.warn("cpu", err)
	} else if len(cpus) > 0 {
		info.Processor = strings.TrimSpace(cpus[0].ModelName)
	}

	if n, err := c.cpuCounts(ctx, false); err != nil {
		c.warn("cpu_count", err)
	} else {
		info.CPUCount = n
	}

	if n, err := c.cpuCounts(ctx, true); err != nil {
		c.warn("logical_cpu_count", err)
	} else {
		info.LogicalCPUCount = n
	}

	if vm, err := c.memory(ctx); err != nil {
		c.warn("memory", err)
	} else if vm != nil {
		info.TotalMemory = vm.Total
		info.AvailableMemory = vm.Available
	}

	c.logger.Debug("sysinfo.collected", "System information collected", map[string]interface{}{
		"platform":     info.Platform,
		"processor":    info.Processor,
		"total_memory": info.TotalMemoryHuman(),
	})

	return info
}

func (c *Collector) warn(source string, err error) {
	c.logger.Warn("sysinfo.source.failed", "Failed to read system information", map[string]interface{}{
		"source": source,
		"error":  err.Error(),
	})
}

// platformString joins OS, distribution and kernel, e.g.
// "linux-ubuntu-22.04-6.5.0-41-generic".
func platformString(h *host.InfoStat) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{h.OS, h.Platform, h.PlatformVersion, h.KernelVersion} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return runtime.GOOS
	}
	return strings.Join(parts, "-")
}

// String renders a one-line summary.
func (i Info) String() string {
	return fmt.Sprintf("%s, %s, %d cores / %d threads, %s RAM",
		i.Platform, i.Processor, i.CPUCount, i.LogicalCPUCount, i.TotalMemoryHuman())
}
