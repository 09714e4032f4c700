package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectParameters_HighCPULowGPU(t *testing.T) {
	params := SelectParameters(TierHigh, TierLow)

	assert.Equal(t, CPUParameters{
		SingleDurationSeconds: 10,
		MultiDurationSeconds:  10,
		MaxThreads:            0,
		CalculationCount:      2_000_000,
	}, params.CPU)
	assert.Equal(t, 0.5, params.GPU.MaxLoad)
	assert.Equal(t, MemoryParameters{SizeMB: 200, MaxBlockMB: 20}, params.Memory)
	assert.Equal(t, DiskParameters{FileSizeMB: 50}, params.Disk)
}

func TestSelectParameters_OverallIsWeakerTier(t *testing.T) {
	for _, cpuTier := range allTiers {
		for _, gpuTier := range allTiers {
			params := SelectParameters(cpuTier, gpuTier)
			overall := MinTier(cpuTier, gpuTier)

			assert.Equal(t, cpuPresets[cpuTier], params.CPU, "cpu=%s gpu=%s", cpuTier, gpuTier)
			assert.Equal(t, gpuPresets[gpuTier], params.GPU, "cpu=%s gpu=%s", cpuTier, gpuTier)
			assert.Equal(t, memoryPresets[overall], params.Memory, "cpu=%s gpu=%s", cpuTier, gpuTier)
			assert.Equal(t, diskPresets[overall], params.Disk, "cpu=%s gpu=%s", cpuTier, gpuTier)
		}
	}
}

func TestSelectParameters_Examples(t *testing.T) {
	tests := []struct {
		cpu, gpu   Tier
		memorySize int
		diskSize   int
	}{
		{TierHigh, TierLow, 200, 50},
		{TierHigh, TierMedium, 300, 100},
		{TierHigh, TierHigh, 500, 200},
		{TierLow, TierHigh, 200, 50},
	}

	for _, tt := range tests {
		params := SelectParameters(tt.cpu, tt.gpu)
		assert.Equal(t, tt.memorySize, params.Memory.SizeMB)
		assert.Equal(t, tt.diskSize, params.Disk.FileSizeMB)
	}
}

func TestSelectParameters_HigherTierNeverLighter(t *testing.T) {
	low := SelectParameters(TierLow, TierLow)
	medium := SelectParameters(TierMedium, TierMedium)
	high := SelectParameters(TierHigh, TierHigh)

	assert.Less(t, low.CPU.SingleDurationSeconds, medium.CPU.SingleDurationSeconds)
	assert.Less(t, medium.CPU.SingleDurationSeconds, high.CPU.SingleDurationSeconds)
	assert.Less(t, low.CPU.CalculationCount, medium.CPU.CalculationCount)
	assert.Less(t, medium.CPU.CalculationCount, high.CPU.CalculationCount)
	assert.Less(t, low.GPU.MaxLoad, medium.GPU.MaxLoad)
	assert.Less(t, medium.GPU.MaxLoad, high.GPU.MaxLoad)
	assert.LessOrEqual(t, high.GPU.MaxLoad, 1.0)
}

func TestSelectParameters_OutOfRangeTier(t *testing.T) {
	assert.Equal(t, SelectParameters(TierHigh, TierHigh), SelectParameters(Tier(7), Tier(7)))
	assert.Equal(t, SelectParameters(TierLow, TierHigh), SelectParameters(Tier(-2), TierHigh))
}

func TestWorkloadParameters_EffectiveThreads(t *testing.T) {
	assert.Equal(t, 24, SelectParameters(TierHigh, TierHigh).EffectiveThreads(24))
	assert.Equal(t, 8, SelectParameters(TierMedium, TierHigh).EffectiveThreads(24))
	assert.Equal(t, 2, SelectParameters(TierLow, TierHigh).EffectiveThreads(2))
	assert.Equal(t, 1, SelectParameters(TierHigh, TierHigh).EffectiveThreads(0))
}
