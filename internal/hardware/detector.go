package hardware

import (
	"context"

	"hwbench/internal/config"
	"hwbench/internal/logging"
)

const (
	fallbackCores   = 4
	fallbackThreads = 8
)

// Detector fingerprints the host and derives workload parameters from it.
type Detector struct {
	prober *Prober
	logger *logging.Logger
}

// NewDetector creates a detector that probes the running host.
func NewDetector(cfg config.DetectionConfig, logger *logging.Logger) *Detector {
	return &Detector{
		prober: NewProber(cfg, logger),
		logger: logger,
	}
}

// NewDetectorWithProber creates a detector around a custom prober (for testing)
func NewDetectorWithProber(prober *Prober, logger *logging.Logger) *Detector {
	return &Detector{
		prober: prober,
		logger: logger,
	}
}

// DetectCPU probes and identifies the processor.
func (d *Detector) DetectCPU(ctx context.Context) DeviceIdentity {
	raw := d.prober.CPUName(ctx)
	cores, threads := d.prober.CPUCounts(ctx)
	return IdentifyCPU(raw, cores, threads)
}

// DetectGPU probes and identifies the primary display adapter.
func (d *Detector) DetectGPU(ctx context.Context) DeviceIdentity {
	return IdentifyGPU(d.prober.GPUName(ctx))
}

// DetectAndConfigure runs one detection pass. It never fails: probes that
// error are logged and the sentinel names and default scores take over.
func (d *Detector) DetectAndConfigure(ctx context.Context) Profile {
	d.logger.Info("hardware.detect.start", "Starting hardware detection", nil)

	cpuID := d.DetectCPU(ctx)
	gpuID := d.DetectGPU(ctx)

	profile := BuildProfile(cpuID, gpuID)

	d.logger.Info("hardware.detect.completed", "Hardware detection completed", map[string]interface{}{
		"cpu":       profile.HardwareInfo.CPU.Name,
		"cpu_score": profile.HardwareInfo.CPUScore,
		"cpu_tier":  profile.HardwareInfo.CPUTier.String(),
		"gpu":       profile.HardwareInfo.GPU.Name,
		"gpu_score": profile.HardwareInfo.GPUScore,
		"gpu_tier":  profile.HardwareInfo.GPUTier.String(),
		"overall":   MinTier(profile.HardwareInfo.CPUTier, profile.HardwareInfo.GPUTier).String(),
	})

	return profile
}

// BuildProfile scores and tiers two identities and selects parameters. Missing
// core or thread counts fall back to 4 and 8.
func BuildProfile(cpuID, gpuID DeviceIdentity) Profile {
	cpuScore := EstimateCPUScore(cpuID.CanonicalName)
	gpuScore := EstimateGPUScore(gpuID.CanonicalName)
	cpuTier := ClassifyCPU(cpuScore)
	gpuTier := ClassifyGPU(gpuScore)

	cores, threads := fallbackCores, fallbackThreads
	if cpuID.CoreCount != nil {
		cores = *cpuID.CoreCount
	}
	if cpuID.ThreadCount != nil {
		threads = *cpuID.ThreadCount
	}

	return Profile{
		HardwareInfo: HardwareInfo{
			CPU: CPUInfo{
				Name:     cpuID.CanonicalName,
				FullName: cpuID.RawName,
				Cores:    cores,
				Threads:  threads,
			},
			GPU:      GPUInfo{Name: gpuID.CanonicalName},
			CPUScore: cpuScore,
			GPUScore: gpuScore,
			CPUTier:  cpuTier,
			GPUTier:  gpuTier,
		},
		TestParameters: SelectParameters(cpuTier, gpuTier),
	}
}
