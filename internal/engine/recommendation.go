package engine

import (
	"encoding/json"
	"fmt"
)

// AdaptationType is the closed set of program adjustments the composer
// can recommend. Each type has exactly one parameter shape.
type AdaptationType string

const (
	AdaptationIntensityIncrease        AdaptationType = "intensity_increase"
	AdaptationVolumePeriodization      AdaptationType = "volume_periodization"
	AdaptationProgramOverhaul          AdaptationType = "program_overhaul"
	AdaptationAggressiveDeload         AdaptationType = "aggressive_deload"
	AdaptationStandardDeload           AdaptationType = "standard_deload"
	AdaptationLightAdjustment          AdaptationType = "light_adjustment"
	AdaptationExerciseRotation         AdaptationType = "exercise_rotation"
	AdaptationVolumeAdjustment         AdaptationType = "volume_adjustment"
	AdaptationPeriodizationPhaseChange AdaptationType = "periodization_phase_change"
)

// Parameters is the closed union of per-adaptation parameter blocks.
// The shape of a Recommendation's parameters is statically tied to its
// adaptation type; see Recommendation.Validate.
type Parameters interface {
	isParameters()
}

// IntensityParams raise load while trimming volume (intensity plateau).
type IntensityParams struct {
	LoadIncreasePct float64 `json:"loadIncreasePct"`
	VolumeCutPct    float64 `json:"volumeCutPct"`
	SetScheme       string  `json:"setScheme"`
}

// VolumeWaveParams run an undulating weekly volume wave (volume plateau).
type VolumeWaveParams struct {
	// WavePattern holds weekly volume multipliers relative to current.
	WavePattern   []float64 `json:"wavePattern"`
	DurationWeeks int       `json:"durationWeeks"`
}

// OverhaulParams restructure the program (general plateau).
type OverhaulParams struct {
	DurationWeeks       int     `json:"durationWeeks"`
	ExerciseRotationPct float64 `json:"exerciseRotationPct"`
}

// DeloadParams reduce training stress for a bounded period.
type DeloadParams struct {
	VolumeCutPct      float64 `json:"volumeCutPct"`
	DurationWeeks     int     `json:"durationWeeks"`
	MaintainIntensity bool    `json:"maintainIntensity"`
}

// RotationTarget pairs a fatigued exercise with its vetted substitutes.
type RotationTarget struct {
	ExerciseID    string         `json:"exerciseId"`
	FatigueScore  float64        `json:"fatigueScore"`
	Substitutions []Substitution `json:"substitutions"`
}

type RotationParams struct {
	Targets []RotationTarget `json:"targets"`
}

type VolumeAdjustmentParams struct {
	// AdjustmentPct is the fractional weekly volume change, already
	// bounded by the optimizer.
	AdjustmentPct  float64 `json:"adjustmentPct"`
	FatigueLimited bool    `json:"fatigueLimited"`
}

type PhaseChangeParams struct {
	From PeriodizationPhase `json:"from"`
	To   PeriodizationPhase `json:"to"`
}

func (IntensityParams) isParameters()        {}
func (VolumeWaveParams) isParameters()       {}
func (OverhaulParams) isParameters()         {}
func (DeloadParams) isParameters()           {}
func (RotationParams) isParameters()         {}
func (VolumeAdjustmentParams) isParameters() {}
func (PhaseChangeParams) isParameters()      {}

// Recommendation is one structured training-program adjustment.
type Recommendation struct {
	ID              string         `json:"id"`
	Type            AdaptationType `json:"type"`
	Confidence      float64        `json:"confidence"`
	Rationale       string         `json:"rationale"`
	Parameters      Parameters     `json:"parameters"`
	ExpectedOutcome string         `json:"expectedOutcome"`
	Monitoring      []string       `json:"monitoring"`
}

// UnmarshalJSON decodes the parameter block into the concrete shape
// dictated by the adaptation type, so recommendations survive a
// cache or API round trip intact.
func (r *Recommendation) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID              string          `json:"id"`
		Type            AdaptationType  `json:"type"`
		Confidence      float64         `json:"confidence"`
		Rationale       string          `json:"rationale"`
		Parameters      json.RawMessage `json:"parameters"`
		ExpectedOutcome string          `json:"expectedOutcome"`
		Monitoring      []string        `json:"monitoring"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.ID = raw.ID
	r.Type = raw.Type
	r.Confidence = raw.Confidence
	r.Rationale = raw.Rationale
	r.ExpectedOutcome = raw.ExpectedOutcome
	r.Monitoring = raw.Monitoring
	r.Parameters = nil

	if len(raw.Parameters) == 0 || string(raw.Parameters) == "null" {
		return nil
	}

	unmarshalParams := func(params Parameters) error {
		if err := json.Unmarshal(raw.Parameters, params); err != nil {
			return fmt.Errorf("unmarshal %s parameters: %w", raw.Type, err)
		}
		return nil
	}

	switch raw.Type {
	case AdaptationIntensityIncrease:
		var params IntensityParams
		if err := unmarshalParams(&params); err != nil {
			return err
		}
		r.Parameters = params
	case AdaptationVolumePeriodization:
		var params VolumeWaveParams
		if err := unmarshalParams(&params); err != nil {
			return err
		}
		r.Parameters = params
	case AdaptationProgramOverhaul:
		var params OverhaulParams
		if err := unmarshalParams(&params); err != nil {
			return err
		}
		r.Parameters = params
	case AdaptationAggressiveDeload, AdaptationStandardDeload, AdaptationLightAdjustment:
		var params DeloadParams
		if err := unmarshalParams(&params); err != nil {
			return err
		}
		r.Parameters = params
	case AdaptationExerciseRotation:
		var params RotationParams
		if err := unmarshalParams(&params); err != nil {
			return err
		}
		r.Parameters = params
	case AdaptationVolumeAdjustment:
		var params VolumeAdjustmentParams
		if err := unmarshalParams(&params); err != nil {
			return err
		}
		r.Parameters = params
	case AdaptationPeriodizationPhaseChange:
		var params PhaseChangeParams
		if err := unmarshalParams(&params); err != nil {
			return err
		}
		r.Parameters = params
	default:
		return fmt.Errorf("unknown adaptation type: %s", raw.Type)
	}

	return nil
}

// Validate checks that the parameter block matches the adaptation type.
func (r Recommendation) Validate() error {
	ok := false
	switch r.Type {
	case AdaptationIntensityIncrease:
		_, ok = r.Parameters.(IntensityParams)
	case AdaptationVolumePeriodization:
		_, ok = r.Parameters.(VolumeWaveParams)
	case AdaptationProgramOverhaul:
		_, ok = r.Parameters.(OverhaulParams)
	case AdaptationAggressiveDeload, AdaptationStandardDeload, AdaptationLightAdjustment:
		_, ok = r.Parameters.(DeloadParams)
	case AdaptationExerciseRotation:
		_, ok = r.Parameters.(RotationParams)
	case AdaptationVolumeAdjustment:
		_, ok = r.Parameters.(VolumeAdjustmentParams)
	case AdaptationPeriodizationPhaseChange:
		_, ok = r.Parameters.(PhaseChangeParams)
	default:
		return fmt.Errorf("unknown adaptation type: %s", r.Type)
	}
	if !ok {
		return fmt.Errorf("parameters %T do not match adaptation type %s", r.Parameters, r.Type)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("confidence %f outside [0,1]", r.Confidence)
	}
	return nil
}

// monitoringMetrics is the fixed per-type list of metrics to watch after
// applying a recommendation.
func monitoringMetrics(t AdaptationType) []string {
	switch t {
	case AdaptationIntensityIncrease:
		return []string{"bar_speed", "rpe_per_set", "strength_index"}
	case AdaptationVolumePeriodization:
		return []string{"weekly_volume", "volume_tolerance", "strength_index"}
	case AdaptationProgramOverhaul:
		return []string{"strength_index", "motivation_level", "adherence_rate"}
	case AdaptationAggressiveDeload, AdaptationStandardDeload, AdaptationLightAdjustment:
		return []string{"recovery_score", "sleep_quality", "motivation_level"}
	case AdaptationExerciseRotation:
		return []string{"exercise_rpe", "joint_pain_reports", "strength_index"}
	case AdaptationVolumeAdjustment:
		return []string{"weekly_volume", "recovery_score", "progression_rate"}
	case AdaptationPeriodizationPhaseChange:
		return []string{"volume_tolerance", "progression_rate", "recovery_score"}
	default:
		return nil
	}
}
