package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strengthlab/trainadapt/internal/catalog"
	"github.com/strengthlab/trainadapt/internal/engine"
)

func newComposer(t *testing.T) *engine.Composer {
	t.Helper()
	cat := catalog.Default()
	cfg := engine.DefaultConfig()

	plateau, err := engine.NewPlateauDetector(cfg.Plateau)
	require.NoError(t, err)
	overreaching, err := engine.NewOverreachingAnalyzer(cfg.Overreaching)
	require.NoError(t, err)
	volume, err := engine.NewVolumeOptimizer(cfg.Volume)
	require.NoError(t, err)
	fatigue, err := engine.NewFatigueAnalyzer(cfg.Fatigue, cat)
	require.NoError(t, err)
	substitution, err := engine.NewSubstitutionAdvisor(cfg.Substitution, cat)
	require.NoError(t, err)
	injury, err := engine.NewInjuryRiskPredictor(cfg.InjuryRisk, cat)
	require.NoError(t, err)

	return engine.NewComposer(plateau, overreaching, volume, fatigue, substitution, injury)
}

func recommendationTypes(recs []engine.Recommendation) []engine.AdaptationType {
	types := make([]engine.AdaptationType, 0, len(recs))
	for _, rec := range recs {
		types = append(types, rec.Type)
	}
	return types
}

func TestComposer_SteadyProgressTogglesPhase(t *testing.T) {
	composer := newComposer(t)

	// nothing is wrong, so the only output is the accumulation ->
	// development rotation of the default periodization cycle
	recs := composer.Compose(
		testUserCtx(),
		weeklyGains(repeatGain(0.01, 7), nil),
		engine.Program{Phase: engine.PhaseAccumulation},
	)

	require.Len(t, recs, 1)
	assert.Equal(t, engine.AdaptationPeriodizationPhaseChange, recs[0].Type)
	params, ok := recs[0].Parameters.(engine.PhaseChangeParams)
	require.True(t, ok)
	assert.Equal(t, engine.PhaseAccumulation, params.From)
	assert.Equal(t, engine.PhaseDevelopment, params.To)
	assert.Equal(t, 1.0, recs[0].Confidence)
	require.NoError(t, recs[0].Validate())
}

func TestComposer_StrongTrendMovesToPeak(t *testing.T) {
	composer := newComposer(t)

	recs := composer.Compose(
		testUserCtx(),
		weeklyGains(repeatGain(0.02, 7), nil),
		engine.Program{Phase: engine.PhaseDevelopment},
	)

	require.Len(t, recs, 1)
	require.Equal(t, engine.AdaptationPeriodizationPhaseChange, recs[0].Type)
	params := recs[0].Parameters.(engine.PhaseChangeParams)
	assert.Equal(t, engine.PhasePeak, params.To)
}

func TestComposer_PlateauDrivesIntensification(t *testing.T) {
	composer := newComposer(t)

	gains := append(repeatGain(0.01, 7), repeatGain(0.002, 4)...)
	history := weeklyGains(gains, nil)

	recs := composer.Compose(
		testUserCtx(),
		history,
		engine.Program{Phase: engine.PhaseAccumulation},
	)

	require.Equal(t, []engine.AdaptationType{
		engine.AdaptationVolumePeriodization,
		engine.AdaptationPeriodizationPhaseChange,
	}, recommendationTypes(recs))

	wave, ok := recs[0].Parameters.(engine.VolumeWaveParams)
	require.True(t, ok)
	assert.Len(t, wave.WavePattern, 4)
	assert.Equal(t, 4, wave.DurationWeeks)
	assert.Contains(t, recs[0].Rationale, "volume plateau")

	phase := recs[1].Parameters.(engine.PhaseChangeParams)
	assert.Equal(t, engine.PhaseIntensification, phase.To)

	for _, rec := range recs {
		assert.NoError(t, rec.Validate())
		assert.NotEmpty(t, rec.ID)
		assert.NotEmpty(t, rec.Monitoring)
	}
}

func TestComposer_OverreachingTriggersStandardDeload(t *testing.T) {
	composer := newComposer(t)

	history := weeklyGains(repeatGain(0.01, 7), func(week int, s *engine.PerformanceSample) {
		if week < 4 {
			s.RPEAccuracy = 1.0
			return
		}
		s.ProgressionRate = 0.009
		s.RPEAccuracy = 3.0
		s.RecoveryScore = 0.6
		s.MotivationLevel = 0.52
	})

	recs := composer.Compose(
		testUserCtx(),
		history,
		engine.Program{Phase: engine.PhaseDevelopment},
	)

	require.Equal(t, []engine.AdaptationType{
		engine.AdaptationStandardDeload,
		engine.AdaptationPeriodizationPhaseChange,
	}, recommendationTypes(recs))

	deload, ok := recs[0].Parameters.(engine.DeloadParams)
	require.True(t, ok)
	assert.Equal(t, 0.3, deload.VolumeCutPct)
	assert.Equal(t, 1, deload.DurationWeeks)
	assert.False(t, deload.MaintainIntensity)
	assert.Contains(t, recs[0].Rationale, "rpe_inflation")

	phase := recs[1].Parameters.(engine.PhaseChangeParams)
	assert.Equal(t, engine.PhaseRecovery, phase.To)
}

func TestComposer_SevereOverreachingTriggersAggressiveDeload(t *testing.T) {
	composer := newComposer(t)

	history := weeklyGains(repeatGain(0.01, 7), func(week int, s *engine.PerformanceSample) {
		if week >= 4 {
			s.ProgressionRate = -0.1
			s.RPEAccuracy = 5.0
			s.RecoveryScore = 0.2
			s.MotivationLevel = 0.2
		} else {
			s.RPEAccuracy = 0.5
		}
	})

	recs := composer.Compose(
		testUserCtx(),
		history,
		engine.Program{Phase: engine.PhaseDevelopment},
	)

	require.NotEmpty(t, recs)
	require.Equal(t, engine.AdaptationAggressiveDeload, recs[0].Type)
	deload := recs[0].Parameters.(engine.DeloadParams)
	assert.Equal(t, 0.5, deload.VolumeCutPct)
	assert.Equal(t, 2, deload.DurationWeeks)
}

func TestComposer_VolumeGradientRecommendsAdjustment(t *testing.T) {
	composer := newComposer(t)

	history := weeklyGains(repeatGain(0.01, 7), func(week int, s *engine.PerformanceSample) {
		s.VolumeTolerance = 0.8 + 0.005*float64(week)
		if week == 7 {
			s.ProgressionRate = 0.04
		}
	})

	recs := composer.Compose(
		testUserCtx(),
		history,
		engine.Program{Phase: engine.PhaseAccumulation},
	)

	require.Equal(t, []engine.AdaptationType{
		engine.AdaptationVolumeAdjustment,
		engine.AdaptationPeriodizationPhaseChange,
	}, recommendationTypes(recs))

	adj, ok := recs[0].Parameters.(engine.VolumeAdjustmentParams)
	require.True(t, ok)
	assert.Equal(t, 0.2, adj.AdjustmentPct)
	assert.False(t, adj.FatigueLimited)

	// accelerating progression on rising tolerance also means peaking time
	phase := recs[1].Parameters.(engine.PhaseChangeParams)
	assert.Equal(t, engine.PhasePeak, phase.To)
}

func TestComposer_FatigueRotationWithSubstitutions(t *testing.T) {
	composer := newComposer(t)

	program := engine.Program{
		Phase: engine.PhaseDevelopment,
		Exercises: []engine.ProgramExercise{
			{
				ExerciseID: "barbell-back-squat",
				WeeklySets: 10,
				Intensity:  0.8,
				History:    exerciseWeeks(8, 1.0, 1.08, 7, 7),
			},
		},
	}

	recs := composer.Compose(
		dumbbellsOnlyCtx(),
		weeklyGains(repeatGain(0.01, 7), nil),
		program,
	)

	require.Equal(t, []engine.AdaptationType{
		engine.AdaptationExerciseRotation,
		engine.AdaptationPeriodizationPhaseChange,
	}, recommendationTypes(recs))

	rotation, ok := recs[0].Parameters.(engine.RotationParams)
	require.True(t, ok)
	require.Len(t, rotation.Targets, 1)

	target := rotation.Targets[0]
	assert.Equal(t, "barbell-back-squat", target.ExerciseID)
	assert.InDelta(t, 0.912, target.FatigueScore, 1e-9)
	require.NotEmpty(t, target.Substitutions)
	assert.Equal(t, "goblet-squat", target.Substitutions[0].ExerciseID)
	assert.Contains(t, recs[0].Rationale, "barbell-back-squat (0.91)")
}
