package engine

// overreachWindow is the size of the recent window compared against the
// preceding baseline window.
const overreachWindow = 4

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// IndicatorDelta is the raw per-indicator change between the recent and
// baseline windows, kept for explainability.
type IndicatorDelta struct {
	Indicator    string  `json:"indicator"`
	Change       float64 `json:"change"`
	Triggered    bool    `json:"triggered"`
	Contribution float64 `json:"contribution"`
}

type OverreachingResult struct {
	RiskLevel  float64          `json:"riskLevel"`
	Urgency    Urgency          `json:"urgency"`
	Confidence float64          `json:"confidence"`
	Factors    []string         `json:"factors"`
	Deltas     []IndicatorDelta `json:"deltas"`
}

// OverreachingAnalyzer scores short-term overtraining risk from four
// weighted indicators comparing a recent window against a baseline.
type OverreachingAnalyzer struct {
	cfg OverreachingConfig
}

func NewOverreachingAnalyzer(cfg OverreachingConfig) (*OverreachingAnalyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &OverreachingAnalyzer{cfg: cfg}, nil
}

// Assess expects samples ordered ascending by timestamp. Fewer than 4
// samples yield risk 0 with no factors - an explicit floor, not an error.
func (a *OverreachingAnalyzer) Assess(samples []PerformanceSample) OverreachingResult {
	if len(samples) < overreachWindow {
		return OverreachingResult{Urgency: UrgencyLow}
	}

	recent := samples[len(samples)-overreachWindow:]
	baseline := samples[:len(samples)-overreachWindow]
	if len(baseline) > overreachWindow {
		baseline = baseline[len(baseline)-overreachWindow:]
	}
	if len(baseline) == 0 {
		// no older data: fall back to the oldest recent sample
		baseline = recent[:1]
	}

	indicators := []struct {
		name     string
		cfg      IndicatorConfig
		field    func(PerformanceSample) float64
		absolute bool // compare absolute drift instead of relative change
	}{
		{
			name:  "performance_decline",
			cfg:   a.cfg.PerformanceDecline,
			field: func(s PerformanceSample) float64 { return s.ProgressionRate },
		},
		{
			name:     "rpe_inflation",
			cfg:      a.cfg.RPEInflation,
			field:    func(s PerformanceSample) float64 { return s.RPEAccuracy },
			absolute: true,
		},
		{
			name:  "recovery_degradation",
			cfg:   a.cfg.RecoveryDegradation,
			field: func(s PerformanceSample) float64 { return s.RecoveryScore },
		},
		{
			name:  "motivation_drop",
			cfg:   a.cfg.MotivationDrop,
			field: func(s PerformanceSample) float64 { return s.MotivationLevel },
		},
	}

	var risk float64
	var factors []string
	deltas := make([]IndicatorDelta, 0, len(indicators))

	for _, ind := range indicators {
		baseMean := meanOf(baseline, ind.field)
		recentMean := meanOf(recent, ind.field)

		var change float64
		if ind.absolute {
			change = recentMean - baseMean
		} else {
			change = relativeChange(baseMean, recentMean)
		}

		// direction-specific: positive thresholds trigger on inflations,
		// negative thresholds on declines
		triggered := false
		if ind.cfg.Threshold >= 0 {
			triggered = change > ind.cfg.Threshold
		} else {
			triggered = change < ind.cfg.Threshold
		}

		delta := IndicatorDelta{
			Indicator: ind.name,
			Change:    change,
			Triggered: triggered,
		}
		if triggered {
			contribution := change
			if contribution < 0 {
				contribution = -contribution
			}
			contribution *= ind.cfg.Weight
			delta.Contribution = contribution
			risk += contribution
			factors = append(factors, ind.name)
		}
		deltas = append(deltas, delta)
	}

	risk = clamp01(risk)

	urgency := UrgencyLow
	switch {
	case risk > 0.7:
		urgency = UrgencyHigh
	case risk > 0.4:
		urgency = UrgencyMedium
	}

	return OverreachingResult{
		RiskLevel:  risk,
		Urgency:    urgency,
		Confidence: clamp01(float64(len(samples)) / float64(2*overreachWindow)),
		Factors:    factors,
		Deltas:     deltas,
	}
}

func meanOf(samples []PerformanceSample, field func(PerformanceSample) float64) float64 {
	values := make([]float64, 0, len(samples))
	for _, s := range samples {
		values = append(values, field(s))
	}
	return mean(values)
}
