package hardware

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"hwbench/internal/config"
	"hwbench/internal/gpu"
	"hwbench/internal/logging"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/cpu"
)

// errNoResult marks a probe that ran cleanly but found nothing usable.
var errNoResult = errors.New("no result")

// CommandRunner executes an external program and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// DeviceLister enumerates GPU adapter names through a vendor API.
type DeviceLister interface {
	DeviceNames(ctx context.Context) ([]string, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", name, err)
	}
	return out, nil
}

// Probe is one named strategy for reading a device name.
type Probe struct {
	Name    string
	Timeout time.Duration
	Run     func(ctx context.Context) (string, error)
}

// Prober reads raw CPU and GPU names from the host. Every collaborator that
// touches the host is injectable so detection can be exercised in tests.
type Prober struct {
	runner    CommandRunner
	readFile  func(path string) ([]byte, error)
	brandName func() string
	cpuCounts func(ctx context.Context, logical bool) (int, error)
	gpuLister DeviceLister
	goos      string
	tempDir   string

	commandTimeout     time.Duration
	gpuQueryTimeout    time.Duration
	diagnosticsTimeout time.Duration

	logger *logging.Logger
}

// ProberOption overrides one host collaborator.
type ProberOption func(*Prober)

// WithRunner replaces the external command runner.
func WithRunner(r CommandRunner) ProberOption {
	return func(p *Prober) { p.runner = r }
}

// WithReadFile replaces the file reader used for /proc and dxdiag output.
func WithReadFile(fn func(path string) ([]byte, error)) ProberOption {
	return func(p *Prober) { p.readFile = fn }
}

// WithBrandName replaces the CPUID brand string source.
func WithBrandName(fn func() string) ProberOption {
	return func(p *Prober) { p.brandName = fn }
}

// WithCPUCounts replaces the core/thread counter.
func WithCPUCounts(fn func(ctx context.Context, logical bool) (int, error)) ProberOption {
	return func(p *Prober) { p.cpuCounts = fn }
}

// WithGPULister sets the vendor API lister. A nil lister disables the probe.
func WithGPULister(l DeviceLister) ProberOption {
	return func(p *Prober) { p.gpuLister = l }
}

// WithGOOS selects which platform's probe chain is used.
func WithGOOS(goos string) ProberOption {
	return func(p *Prober) { p.goos = goos }
}

// WithTempDir sets the parent directory for dxdiag scratch files.
func WithTempDir(dir string) ProberOption {
	return func(p *Prober) { p.tempDir = dir }
}

// NewProber creates a prober for the running host.
func NewProber(cfg config.DetectionConfig, logger *logging.Logger, opts ...ProberOption) *Prober {
	p := &Prober{
		runner:             execRunner{},
		readFile:           os.ReadFile,
		brandName:          func() string { return cpuid.CPU.BrandName },
		cpuCounts:          cpu.CountsWithContext,
		goos:               runtime.GOOS,
		tempDir:            os.TempDir(),
		commandTimeout:     cfg.CommandTimeout(),
		gpuQueryTimeout:    cfg.GPUQueryTimeout(),
		diagnosticsTimeout: cfg.DiagnosticsTimeout(),
		logger:             logger,
	}
	if cfg.NVMLEnabled() && gpu.Available {
		p.gpuLister = gpu.NewLister(logger)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CPUName returns the first usable processor name, or UnknownCPU.
func (p *Prober) CPUName(ctx context.Context) string {
	if name, ok := p.firstSuccess(ctx, "cpu", p.cpuProbes()); ok {
		return name
	}
	return UnknownCPU
}

// GPUName returns the first usable adapter name, or UnknownGPU.
func (p *Prober) GPUName(ctx context.Context) string {
	if name, ok := p.firstSuccess(ctx, "gpu", p.gpuProbes()); ok {
		return name
	}
	return UnknownGPU
}

// CPUCounts returns physical cores and logical threads. Zero means unknown.
func (p *Prober) CPUCounts(ctx context.Context) (cores, threads int) {
	if p.cpuCounts == nil {
		return 0, 0
	}

	cores, err := p.cpuCounts(ctx, false)
	if err != nil {
		p.logger.Warn("hardware.cpu.counts.failed", "Failed to read physical core count", map[string]interface{}{
			"error": err.Error(),
		})
		cores = 0
	}

	threads, err = p.cpuCounts(ctx, true)
	if err != nil {
		p.logger.Warn("hardware.cpu.counts.failed", "Failed to read logical thread count", map[string]interface{}{
			"error": err.Error(),
		})
		threads = 0
	}

	return cores, threads
}

// firstSuccess runs probes in order and returns the first usable value.
// Failures are logged and skipped; nothing is retried.
func (p *Prober) firstSuccess(ctx context.Context, kind string, probes []Probe) (string, bool) {
	for _, probe := range probes {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("hardware.probe.cancelled", "Detection cancelled", map[string]interface{}{
				"kind":  kind,
				"error": err.Error(),
			})
			return "", false
		}

		value, err := p.runProbe(ctx, probe)
		if err == nil && !usableName(value) {
			err = errNoResult
		}
		if err != nil {
			p.logger.Warn("hardware.probe.failed", "Probe failed", map[string]interface{}{
				"kind":  kind,
				"probe": probe.Name,
				"error": err.Error(),
			})
			continue
		}

		value = strings.TrimSpace(value)
		p.logger.Debug("hardware.probe.succeeded", "Probe returned a device name", map[string]interface{}{
			"kind":  kind,
			"probe": probe.Name,
			"value": value,
		})
		return value, true
	}
	return "", false
}

func (p *Prober) runProbe(ctx context.Context, probe Probe) (string, error) {
	if probe.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, probe.Timeout)
		defer cancel()
	}
	return probe.Run(ctx)
}

func usableName(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && !strings.EqualFold(s, "unknown")
}

// outputLines splits command output into trimmed, non-empty lines.
func outputLines(out []byte) []string {
	raw := strings.Split(strings.ReplaceAll(string(out), "\r", ""), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// fieldValue returns the text after the first ':' of lines starting with key.
func fieldValue(lines []string, key string) []string {
	var values []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, key) {
			continue
		}
		if _, value, ok := strings.Cut(trimmed, ":"); ok {
			if value = strings.TrimSpace(value); value != "" {
				values = append(values, value)
			}
		}
	}
	return values
}
