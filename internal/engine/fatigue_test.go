package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strengthlab/trainadapt/internal/catalog"
	"github.com/strengthlab/trainadapt/internal/engine"
)

func newFatigueAnalyzer(t *testing.T) *engine.FatigueAnalyzer {
	t.Helper()
	analyzer, err := engine.NewFatigueAnalyzer(engine.DefaultFatigueConfig(), catalog.Default())
	require.NoError(t, err)
	return analyzer
}

func TestFatigueAnalyzer_ShortHistorySkipped(t *testing.T) {
	analyzer := newFatigueAnalyzer(t)

	report := analyzer.Analyze([]engine.ProgramExercise{
		{ExerciseID: "barbell-back-squat", History: exerciseWeeks(3, 1.0, 1.03, 7, 7)},
	})

	assert.Empty(t, report.Scores)
	assert.False(t, report.RotationNeeded)
	assert.Equal(t, 0.0, report.Confidence)
}

func TestFatigueAnalyzer_AccumulationOverWeeks(t *testing.T) {
	analyzer := newFatigueAnalyzer(t)

	// an exercise unknown to the catalog falls back to medium complexity:
	// 4 weeks accumulate 0.42, 8 weeks 0.84
	shortRun := analyzer.Analyze([]engine.ProgramExercise{
		{ExerciseID: "banded-good-morning", History: exerciseWeeks(4, 1.0, 1.04, 7, 7)},
	})
	longRun := analyzer.Analyze([]engine.ProgramExercise{
		{ExerciseID: "banded-good-morning", History: exerciseWeeks(8, 1.0, 1.08, 7, 7)},
	})

	require.Len(t, shortRun.Scores, 1)
	assert.InDelta(t, 0.42, shortRun.Scores[0].Total, 1e-9)
	assert.False(t, shortRun.Scores[0].RotationCandidate)
	assert.False(t, shortRun.RotationNeeded)

	require.Len(t, longRun.Scores, 1)
	assert.InDelta(t, 0.84, longRun.Scores[0].Total, 1e-9)
	assert.True(t, longRun.Scores[0].RotationCandidate)
	assert.True(t, longRun.RotationNeeded)
	assert.Equal(t, 1.0, longRun.Confidence)
}

func TestFatigueAnalyzer_ComplexLiftFatiguesFaster(t *testing.T) {
	analyzer := newFatigueAnalyzer(t)

	report := analyzer.Analyze([]engine.ProgramExercise{
		{ExerciseID: "barbell-back-squat", History: exerciseWeeks(8, 1.0, 1.08, 7, 7)},
	})

	require.Len(t, report.Scores, 1)
	score := report.Scores[0]
	assert.InDelta(t, 0.4, score.MovementFatigue, 1e-9)
	assert.InDelta(t, 0.32, score.JointStress, 1e-9)
	// technical complexity 8 scales the neural component up
	assert.InDelta(t, 0.192, score.NeuralFatigue, 1e-9)
	assert.InDelta(t, 0.912, score.Total, 1e-9)
	assert.True(t, score.RotationCandidate)
}

func TestFatigueAnalyzer_StrengthDeclineBonus(t *testing.T) {
	analyzer := newFatigueAnalyzer(t)

	// 6 weeks alone accumulate 0.63, below the rotation threshold; the
	// 5% strength regression pushes it over
	report := analyzer.Analyze([]engine.ProgramExercise{
		{ExerciseID: "banded-good-morning", History: exerciseWeeks(6, 1.0, 0.95, 7, 7)},
	})

	require.Len(t, report.Scores, 1)
	score := report.Scores[0]
	assert.InDelta(t, -0.05, score.StrengthTrend, 1e-9)
	assert.InDelta(t, 0.83, score.Total, 1e-9)
	assert.True(t, score.RotationCandidate)
}

func TestFatigueAnalyzer_RPEDriftBonus(t *testing.T) {
	analyzer := newFatigueAnalyzer(t)

	report := analyzer.Analyze([]engine.ProgramExercise{
		{ExerciseID: "banded-good-morning", History: exerciseWeeks(6, 1.0, 1.06, 7, 8.5)},
	})

	require.Len(t, report.Scores, 1)
	score := report.Scores[0]
	assert.InDelta(t, 1.5, score.RPETrend, 1e-9)
	assert.InDelta(t, 0.78, score.Total, 1e-9)
	assert.True(t, score.RotationCandidate)
}

func TestFatigueAnalyzer_ScoresOrderedByTotal(t *testing.T) {
	analyzer := newFatigueAnalyzer(t)

	report := analyzer.Analyze([]engine.ProgramExercise{
		{ExerciseID: "goblet-squat", History: exerciseWeeks(5, 1.0, 1.05, 7, 7)},
		{ExerciseID: "barbell-back-squat", History: exerciseWeeks(8, 1.0, 1.08, 7, 7)},
		{ExerciseID: "too-new", History: exerciseWeeks(2, 1.0, 1.02, 7, 7)},
	})

	require.Len(t, report.Scores, 2)
	assert.Equal(t, "barbell-back-squat", report.Scores[0].ExerciseID)
	assert.Equal(t, "goblet-squat", report.Scores[1].ExerciseID)
	assert.Greater(t, report.Scores[0].Total, report.Scores[1].Total)
	assert.Equal(t, 1.0, report.Confidence)
}
