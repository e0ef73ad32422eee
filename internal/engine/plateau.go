package engine

// PlateauType classifies a detected plateau so the composer can pick the
// matching response protocol.
type PlateauType string

const (
	PlateauNone      PlateauType = ""
	PlateauVolume    PlateauType = "volume_plateau"
	PlateauIntensity PlateauType = "intensity_plateau"
	PlateauGeneral   PlateauType = "general_plateau"
)

const reasonInsufficientData = "insufficient_data"

type PlateauResult struct {
	Detected   bool        `json:"detected"`
	Type       PlateauType `json:"type,omitempty"`
	Confidence float64     `json:"confidence"`

	// Explainable fields, also used to build recommendation rationales.
	AvgChange      float64 `json:"avgChange"`
	ChangeVariance float64 `json:"changeVariance"`
	StalledSteps   int     `json:"stalledSteps"`
	SamplesUsed    int     `json:"samplesUsed"`
	Reason         string  `json:"reason,omitempty"`
}

// PlateauDetector finds stalled strength progression via rolling-window
// trend and variance analysis. Pure function of its inputs.
type PlateauDetector struct {
	cfg PlateauConfig
}

func NewPlateauDetector(cfg PlateauConfig) (*PlateauDetector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &PlateauDetector{cfg: cfg}, nil
}

// Detect expects samples ordered ascending by timestamp. Histories shorter
// than the window yield a neutral insufficient-data result, never an error.
func (d *PlateauDetector) Detect(samples []PerformanceSample) PlateauResult {
	confidence := clamp01(float64(len(samples)) / float64(d.cfg.WindowSize))
	if len(samples) < d.cfg.WindowSize {
		return PlateauResult{
			Detected:    false,
			Confidence:  confidence,
			SamplesUsed: len(samples),
			Reason:      reasonInsufficientData,
		}
	}

	window := samples[len(samples)-d.cfg.WindowSize:]

	changes := make([]float64, 0, len(window)-1)
	for i := 1; i < len(window); i++ {
		prev := window[i-1].MeanStrengthIndex()
		curr := window[i].MeanStrengthIndex()
		if prev == 0 {
			changes = append(changes, 0)
			continue
		}
		changes = append(changes, (curr-prev)/prev)
	}

	avgChange := mean(changes)
	changeVariance := variance(changes)

	// count how many of the most recent consecutive steps are stalled
	stalled := 0
	for i := len(changes) - 1; i >= 0; i-- {
		if changes[i] >= d.cfg.SignificanceThreshold {
			break
		}
		stalled++
	}

	detected := avgChange < d.cfg.SignificanceThreshold &&
		changeVariance < d.cfg.StrengthVarianceThreshold &&
		stalled >= d.cfg.MinimumPlateauDuration

	result := PlateauResult{
		Detected:       detected,
		Confidence:     confidence,
		AvgChange:      avgChange,
		ChangeVariance: changeVariance,
		StalledSteps:   stalled,
		SamplesUsed:    len(window),
	}
	if !detected {
		return result
	}

	var tolerance []float64
	for _, s := range window {
		tolerance = append(tolerance, s.VolumeTolerance)
	}
	switch avgTolerance := mean(tolerance); {
	case avgTolerance > 0.8:
		result.Type = PlateauVolume
	case avgTolerance < 0.6:
		result.Type = PlateauIntensity
	default:
		result.Type = PlateauGeneral
	}

	return result
}
