package hardware

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCounts(cores, threads int) ProberOption {
	return WithCPUCounts(func(_ context.Context, logical bool) (int, error) {
		if logical {
			return threads, nil
		}
		return cores, nil
	})
}

func TestDetectAndConfigure_KnownHardware(t *testing.T) {
	lspci := "01:00.0 VGA compatible controller: NVIDIA Corporation GA104 [GeForce RTX 3070 Ti] (rev a1)\n"
	prober := newTestProber("linux", newFakeRunner().output("lspci", lspci),
		WithBrandName(func() string { return "Intel(R) Core(TM) i7-13700K CPU" }),
		fixedCounts(16, 24),
	)

	profile := NewDetectorWithProber(prober, testLogger()).DetectAndConfigure(context.Background())
	hw := profile.HardwareInfo

	assert.Equal(t, CPUInfo{
		Name:     "Intel Core i7-13700K",
		FullName: "Intel(R) Core(TM) i7-13700K CPU",
		Cores:    16,
		Threads:  24,
	}, hw.CPU)
	assert.Equal(t, 2126, hw.CPUScore)
	assert.Equal(t, TierHigh, hw.CPUTier)

	assert.Equal(t, "NVIDIA GeForce RTX 3070 Ti", hw.GPU.Name)
	assert.Equal(t, 14000, hw.GPUScore)
	assert.Equal(t, TierMedium, hw.GPUTier)

	assert.Equal(t, cpuPresets[TierHigh], profile.TestParameters.CPU)
	assert.Equal(t, 0.7, profile.TestParameters.GPU.MaxLoad)
	assert.Equal(t, MemoryParameters{SizeMB: 300, MaxBlockMB: 30}, profile.TestParameters.Memory)
	assert.Equal(t, DiskParameters{FileSizeMB: 100}, profile.TestParameters.Disk)
}

func TestDetectAndConfigure_AllProbesFail(t *testing.T) {
	prober := newTestProber("windows", newFakeRunner())

	profile := NewDetectorWithProber(prober, testLogger()).DetectAndConfigure(context.Background())
	hw := profile.HardwareInfo

	assert.Equal(t, UnknownCPU, hw.CPU.Name)
	assert.Equal(t, UnknownCPU, hw.CPU.FullName)
	assert.Equal(t, fallbackCores, hw.CPU.Cores)
	assert.Equal(t, fallbackThreads, hw.CPU.Threads)
	assert.Equal(t, DefaultCPUScore, hw.CPUScore)
	assert.Equal(t, ClassifyCPU(DefaultCPUScore), hw.CPUTier)

	assert.Equal(t, UnknownGPU, hw.GPU.Name)
	assert.Equal(t, DefaultGPUScore, hw.GPUScore)
	assert.Equal(t, ClassifyGPU(DefaultGPUScore), hw.GPUTier)

	assert.Equal(t, SelectParameters(hw.CPUTier, hw.GPUTier), profile.TestParameters)
}

func TestDetectAndConfigure_Idempotent(t *testing.T) {
	runner := newFakeRunner().
		fail("wmic").
		output("reg", "    ProcessorNameString    REG_SZ    AMD Ryzen 5 5600X 6-Core Processor\r\n").
		output("powershell", "Name\r\n----\r\nAMD Radeon RX 6700 XT\r\n")
	prober := newTestProber("windows", runner, fixedCounts(6, 12))
	detector := NewDetectorWithProber(prober, testLogger())

	first := detector.DetectAndConfigure(context.Background())
	second := detector.DetectAndConfigure(context.Background())

	assert.Equal(t, first, second)
	assert.Equal(t, "AMD Ryzen 5 5600X", first.HardwareInfo.CPU.Name)
	assert.Equal(t, 1600, first.HardwareInfo.CPUScore)
	assert.Equal(t, TierMedium, first.HardwareInfo.CPUTier)
	assert.Equal(t, 12000, first.HardwareInfo.GPUScore)
	assert.Equal(t, TierMedium, first.HardwareInfo.GPUTier)
}

func TestDetectAndConfigure_JSONShape(t *testing.T) {
	prober := newTestProber("linux", newFakeRunner(),
		WithBrandName(func() string { return "AMD Ryzen 9 9950X3D 16-Core Processor" }),
		fixedCounts(16, 32),
	)
	profile := NewDetectorWithProber(prober, testLogger()).DetectAndConfigure(context.Background())

	data, err := json.Marshal(profile)
	require.NoError(t, err)

	expected := `{
		"hardware_info": {
			"cpu": {"name": "AMD Ryzen 9 9950X3D", "full_name": "AMD Ryzen 9 9950X3D 16-Core Processor", "cores": 16, "threads": 32},
			"gpu": {"name": "Unknown GPU"},
			"cpu_score": 2242,
			"gpu_score": 6000,
			"cpu_tier": "high",
			"gpu_tier": "low"
		},
		"test_parameters": {
			"cpu": {"single_duration_s": 10, "multi_duration_s": 10, "max_threads": 0, "calculation_count": 2000000},
			"gpu": {"max_load": 0.5},
			"memory": {"size_mb": 200, "max_block_mb": 20},
			"disk": {"file_size_mb": 50}
		}
	}`
	assert.JSONEq(t, expected, string(data))
}

func TestBuildProfile_GPUScenario(t *testing.T) {
	profile := BuildProfile(IdentifyCPU("", 0, 0), IdentifyGPU("NVIDIA GeForce RTX 3070 Ti"))

	assert.Equal(t, 14000, profile.HardwareInfo.GPUScore)
	assert.Equal(t, TierMedium, profile.HardwareInfo.GPUTier)
	assert.Equal(t, 0.7, profile.TestParameters.GPU.MaxLoad)
}
