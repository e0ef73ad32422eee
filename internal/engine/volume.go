package engine

const (
	volumeMinSamples = 6
	// gradientStep is how many samples back the discrete gradient reaches.
	gradientStep = 3
	// volume adjustment bounds: base adjustment in [-0.2, 0.2], fatigue
	// penalty of up to 0.15 only ever subtracts
	volumeAdjustmentMin = -0.35
	volumeAdjustmentMax = 0.2
	fatiguePenalty      = 0.15
)

type VolumeResult struct {
	// Adjustment is the recommended fractional volume change,
	// always within [-0.35, 0.2].
	Adjustment     float64 `json:"adjustment"`
	Confidence     float64 `json:"confidence"`
	Gradient       float64 `json:"gradient"`
	FatigueLimited bool    `json:"fatigueLimited"`
	Reason         string  `json:"reason,omitempty"`
}

// VolumeOptimizer estimates volume-vs-progression sensitivity from the
// recent sample history and recommends a bounded load adjustment.
type VolumeOptimizer struct {
	cfg VolumeConfig
}

func NewVolumeOptimizer(cfg VolumeConfig) (*VolumeOptimizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &VolumeOptimizer{cfg: cfg}, nil
}

// Optimize expects samples ordered ascending by timestamp. Fewer than 6
// samples yield a zero adjustment with zero confidence.
func (o *VolumeOptimizer) Optimize(samples []PerformanceSample) VolumeResult {
	if len(samples) < volumeMinSamples {
		return VolumeResult{Reason: reasonInsufficientData}
	}

	latest := samples[len(samples)-1]
	prior := samples[len(samples)-1-gradientStep]

	dVolume := latest.VolumeTolerance - prior.VolumeTolerance
	dProgression := latest.ProgressionRate - prior.ProgressionRate

	// zero volume delta means the gradient is undefined; treat as neutral
	var gradient float64
	if dVolume != 0 {
		gradient = dProgression / dVolume
	}

	var adjustment float64
	switch {
	case gradient > 0.01:
		adjustment = min2(volumeAdjustmentMax, 0.1*gradient)
	case gradient < -0.01:
		adjustment = -min2(volumeAdjustmentMax, 0.1*-gradient)
	}

	var fatigue []float64
	for _, s := range samples[len(samples)-3:] {
		fatigue = append(fatigue, 1-s.RecoveryScore)
	}
	fatigueLimited := mean(fatigue) > o.cfg.FatigueThreshold
	if fatigueLimited {
		adjustment -= fatiguePenalty
	}

	if adjustment < volumeAdjustmentMin {
		adjustment = volumeAdjustmentMin
	}
	if adjustment > volumeAdjustmentMax {
		adjustment = volumeAdjustmentMax
	}

	return VolumeResult{
		Adjustment:     adjustment,
		Confidence:     clamp01(float64(len(samples)) / 10),
		Gradient:       gradient,
		FatigueLimited: fatigueLimited,
	}
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
