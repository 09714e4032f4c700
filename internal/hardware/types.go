package hardware

import (
	"fmt"
	"strings"
)

const (
	// UnknownCPU is reported when every CPU probe fails.
	UnknownCPU = "Unknown CPU"
	// UnknownGPU is reported when every GPU probe fails.
	UnknownGPU = "Unknown GPU"
)

// Vendor identifies the manufacturer of a CPU or GPU.
type Vendor string

const (
	VendorIntel   Vendor = "Intel"
	VendorAMD     Vendor = "AMD"
	VendorNVIDIA  Vendor = "NVIDIA"
	VendorUnknown Vendor = "Unknown"
)

// DeviceIdentity is the result of fingerprinting one device during a
// detection pass. Core and thread counts are only known for CPUs.
type DeviceIdentity struct {
	RawName       string
	CanonicalName string
	Vendor        Vendor
	CoreCount     *int
	ThreadCount   *int
}

// Tier is a coarse performance bracket. The zero value is TierLow so that an
// uninitialised tier never overstates the hardware.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

// allTiers lists tiers from weakest to strongest.
var allTiers = []Tier{TierLow, TierMedium, TierHigh}

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	default:
		return "low"
	}
}

// ParseTier converts "low", "medium" or "high" into a Tier.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return TierLow, nil
	case "medium":
		return TierMedium, nil
	case "high":
		return TierHigh, nil
	default:
		return TierLow, fmt.Errorf("unknown tier %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MinTier returns the weaker of two tiers.
func MinTier(a, b Tier) Tier {
	if a < b {
		return a
	}
	return b
}

// CPUInfo is the CPU section of the hardware report.
type CPUInfo struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Cores    int    `json:"cores"`
	Threads  int    `json:"threads"`
}

// GPUInfo is the GPU section of the hardware report.
type GPUInfo struct {
	Name string `json:"name"`
}

// HardwareInfo is embedded verbatim in benchmark reports; field names are a
// stable contract.
type HardwareInfo struct {
	CPU      CPUInfo `json:"cpu"`
	GPU      GPUInfo `json:"gpu"`
	CPUScore int     `json:"cpu_score"`
	GPUScore int     `json:"gpu_score"`
	CPUTier  Tier    `json:"cpu_tier"`
	GPUTier  Tier    `json:"gpu_tier"`
}

// CPUParameters sizes the single- and multi-thread CPU runs.
type CPUParameters struct {
	SingleDurationSeconds int `json:"single_duration_s"`
	MultiDurationSeconds  int `json:"multi_duration_s"`
	// MaxThreads of 0 means use every available thread.
	MaxThreads       int `json:"max_threads"`
	CalculationCount int `json:"calculation_count"`
}

// GPUParameters caps the GPU load fraction, in (0, 1].
type GPUParameters struct {
	MaxLoad float64 `json:"max_load"`
}

// MemoryParameters sizes the allocation throughput run.
type MemoryParameters struct {
	SizeMB     int `json:"size_mb"`
	MaxBlockMB int `json:"max_block_mb"`
}

// DiskParameters sizes the sequential I/O run.
type DiskParameters struct {
	FileSizeMB int `json:"file_size_mb"`
}

// WorkloadParameters is the full set of knobs handed to the benchmark runners.
type WorkloadParameters struct {
	CPU    CPUParameters    `json:"cpu"`
	GPU    GPUParameters    `json:"gpu"`
	Memory MemoryParameters `json:"memory"`
	Disk   DiskParameters   `json:"disk"`
}

// EffectiveThreads resolves MaxThreads against the number of logical threads
// the host offers.
func (w WorkloadParameters) EffectiveThreads(logical int) int {
	if logical < 1 {
		logical = 1
	}
	if w.CPU.MaxThreads <= 0 || w.CPU.MaxThreads > logical {
		return logical
	}
	return w.CPU.MaxThreads
}

// Profile is the outcome of a detection pass.
type Profile struct {
	HardwareInfo   HardwareInfo       `json:"hardware_info"`
	TestParameters WorkloadParameters `json:"test_parameters"`
}
