package hardware

// Thresholds are the inclusive lower bounds of the high and medium tiers.
type Thresholds struct {
	High   int
	Medium int
}

// CPU and GPU scores live on unrelated scales and are calibrated separately.
var (
	CPUThresholds = Thresholds{High: 2000, Medium: 1500}
	GPUThresholds = Thresholds{High: 20000, Medium: 8000}
)

// Classify maps score onto a tier.
func (t Thresholds) Classify(score int) Tier {
	switch {
	case score >= t.High:
		return TierHigh
	case score >= t.Medium:
		return TierMedium
	default:
		return TierLow
	}
}

// ClassifyCPU tiers a CPU single-core score.
func ClassifyCPU(score int) Tier {
	return CPUThresholds.Classify(score)
}

// ClassifyGPU tiers a GPU graphics score.
func ClassifyGPU(score int) Tier {
	return GPUThresholds.Classify(score)
}
