package hardware

var cpuPresets = map[Tier]CPUParameters{
	TierHigh:   {SingleDurationSeconds: 10, MultiDurationSeconds: 10, MaxThreads: 0, CalculationCount: 2_000_000},
	TierMedium: {SingleDurationSeconds: 8, MultiDurationSeconds: 8, MaxThreads: 8, CalculationCount: 1_000_000},
	TierLow:    {SingleDurationSeconds: 5, MultiDurationSeconds: 5, MaxThreads: 4, CalculationCount: 500_000},
}

var gpuPresets = map[Tier]GPUParameters{
	TierHigh:   {MaxLoad: 1.0},
	TierMedium: {MaxLoad: 0.7},
	TierLow:    {MaxLoad: 0.5},
}

var memoryPresets = map[Tier]MemoryParameters{
	TierHigh:   {SizeMB: 500, MaxBlockMB: 50},
	TierMedium: {SizeMB: 300, MaxBlockMB: 30},
	TierLow:    {SizeMB: 200, MaxBlockMB: 20},
}

var diskPresets = map[Tier]DiskParameters{
	TierHigh:   {FileSizeMB: 200},
	TierMedium: {FileSizeMB: 100},
	TierLow:    {FileSizeMB: 50},
}

// SelectParameters builds workload parameters for a CPU/GPU tier pair. Memory
// and disk are shared by both devices and follow the weaker tier.
func SelectParameters(cpuTier, gpuTier Tier) WorkloadParameters {
	overall := MinTier(cpuTier, gpuTier)
	return WorkloadParameters{
		CPU:    cpuPresets[clampTier(cpuTier)],
		GPU:    gpuPresets[clampTier(gpuTier)],
		Memory: memoryPresets[clampTier(overall)],
		Disk:   diskPresets[clampTier(overall)],
	}
}

// clampTier folds out-of-range values onto the nearest defined tier.
func clampTier(t Tier) Tier {
	switch {
	case t > TierHigh:
		return TierHigh
	case t < TierLow:
		return TierLow
	default:
		return t
	}
}
