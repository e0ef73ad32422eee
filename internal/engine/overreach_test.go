package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strengthlab/trainadapt/internal/engine"
)

func newOverreachingAnalyzer(t *testing.T) *engine.OverreachingAnalyzer {
	t.Helper()
	analyzer, err := engine.NewOverreachingAnalyzer(engine.DefaultOverreachingConfig())
	require.NoError(t, err)
	return analyzer
}

func TestOverreachingAnalyzer_TooFewSamples(t *testing.T) {
	analyzer := newOverreachingAnalyzer(t)

	res := analyzer.Assess(weeklyGains(repeatGain(0.01, 2), nil))

	assert.Equal(t, 0.0, res.RiskLevel)
	assert.Equal(t, engine.UrgencyLow, res.Urgency)
	assert.Empty(t, res.Factors)
}

func TestOverreachingAnalyzer_HealthyTrainingNoRisk(t *testing.T) {
	analyzer := newOverreachingAnalyzer(t)

	res := analyzer.Assess(weeklyGains(repeatGain(0.01, 7), nil))

	assert.Equal(t, 0.0, res.RiskLevel)
	assert.Equal(t, engine.UrgencyLow, res.Urgency)
	assert.Empty(t, res.Factors)
	assert.Len(t, res.Deltas, 4)
	for _, d := range res.Deltas {
		assert.False(t, d.Triggered, d.Indicator)
	}
}

func TestOverreachingAnalyzer_AllIndicatorsFiring(t *testing.T) {
	analyzer := newOverreachingAnalyzer(t)

	// weeks 0-3 healthy baseline, weeks 4-7 everything degrading:
	// progression -10%, RPE drift +2 points, recovery -25%, motivation -35%
	samples := weeklyGains(repeatGain(0.01, 7), func(week int, s *engine.PerformanceSample) {
		if week < 4 {
			s.ProgressionRate = 0.01
			s.RPEAccuracy = 1.0
			s.RecoveryScore = 0.8
			s.MotivationLevel = 0.8
			return
		}
		s.ProgressionRate = 0.009
		s.RPEAccuracy = 3.0
		s.RecoveryScore = 0.6
		s.MotivationLevel = 0.52
	})

	res := analyzer.Assess(samples)

	// 0.1*0.35 + 2.0*0.3 + 0.25*0.25 + 0.35*0.2
	assert.InDelta(t, 0.7675, res.RiskLevel, 1e-9)
	assert.Equal(t, engine.UrgencyHigh, res.Urgency)
	assert.Equal(t, 1.0, res.Confidence)
	assert.ElementsMatch(t, []string{
		"performance_decline", "rpe_inflation", "recovery_degradation", "motivation_drop",
	}, res.Factors)
}

func TestOverreachingAnalyzer_SingleIndicatorMediumUrgency(t *testing.T) {
	analyzer := newOverreachingAnalyzer(t)

	// only RPE drift fires: +1.6 points * 0.3 weight = 0.48
	samples := weeklyGains(repeatGain(0.01, 7), func(week int, s *engine.PerformanceSample) {
		s.RPEAccuracy = 0.5
		if week >= 4 {
			s.RPEAccuracy = 2.1
		}
	})

	res := analyzer.Assess(samples)

	assert.InDelta(t, 0.48, res.RiskLevel, 1e-9)
	assert.Equal(t, engine.UrgencyMedium, res.Urgency)
	assert.Equal(t, []string{"rpe_inflation"}, res.Factors)
}

func TestOverreachingAnalyzer_BaselineFallback(t *testing.T) {
	analyzer := newOverreachingAnalyzer(t)

	// exactly 4 samples: baseline falls back to the oldest recent sample,
	// steady values mean no indicator can fire
	res := analyzer.Assess(weeklyGains(repeatGain(0.01, 3), nil))

	assert.Equal(t, 0.0, res.RiskLevel)
	assert.Equal(t, engine.UrgencyLow, res.Urgency)
	assert.InDelta(t, 0.5, res.Confidence, 1e-9)
}

func TestOverreachingAnalyzer_RiskClamped(t *testing.T) {
	analyzer := newOverreachingAnalyzer(t)

	// absurd degradation should still cap at 1.0
	samples := weeklyGains(repeatGain(0.01, 7), func(week int, s *engine.PerformanceSample) {
		if week >= 4 {
			s.RPEAccuracy = 10
			s.RecoveryScore = 0.01
			s.MotivationLevel = 0.01
			s.ProgressionRate = -0.2
		} else {
			s.RPEAccuracy = 0.5
			s.RecoveryScore = 0.9
			s.MotivationLevel = 0.9
			s.ProgressionRate = 0.02
		}
	})

	res := analyzer.Assess(samples)

	assert.Equal(t, 1.0, res.RiskLevel)
	assert.Equal(t, engine.UrgencyHigh, res.Urgency)
}
