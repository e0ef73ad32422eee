package engine

import (
	"sort"
	"time"

	"github.com/strengthlab/trainadapt/internal/catalog"
)

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
	ExperienceElite        ExperienceLevel = "elite"
)

type TrainingGoal string

const (
	GoalStrength       TrainingGoal = "strength"
	GoalHypertrophy    TrainingGoal = "hypertrophy"
	GoalEndurance      TrainingGoal = "endurance"
	GoalPower          TrainingGoal = "power"
	GoalFatLoss        TrainingGoal = "fat_loss"
	GoalGeneralFitness TrainingGoal = "general_fitness"
)

// PerformanceSample is one (typically weekly) snapshot of a user's
// training response. Sequences of samples are append-only and ordered
// ascending by timestamp; the engine only ever reads windows of them.
type PerformanceSample struct {
	Timestamp time.Time `json:"timestamp"`

	// StrengthIndex maps exercise id to a relative strength index
	// (1.0 = baseline at program start).
	StrengthIndex map[string]float64 `json:"strengthIndex"`

	// All of the fields below are in [0,1], except RPEAccuracy
	// (RPE points of drift between reported and estimated effort) and
	// ProgressionRate (fractional weekly strength gain, e.g. 0.01 = 1%).
	VolumeTolerance float64 `json:"volumeTolerance"`
	RecoveryScore   float64 `json:"recoveryScore"`
	MotivationLevel float64 `json:"motivationLevel"`
	AdherenceRate   float64 `json:"adherenceRate"`
	RPEAccuracy     float64 `json:"rpeAccuracy"`
	ProgressionRate float64 `json:"progressionRate"`
}

// MeanStrengthIndex averages the per-exercise strength indices.
func (s PerformanceSample) MeanStrengthIndex() float64 {
	if len(s.StrengthIndex) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.StrengthIndex {
		sum += v
	}
	return sum / float64(len(s.StrengthIndex))
}

// SortedByTime returns a copy of samples ordered ascending by timestamp.
// Detectors assume this ordering; the engine sorts once per call
// instead of trusting the caller.
func SortedByTime(samples []PerformanceSample) []PerformanceSample {
	out := make([]PerformanceSample, len(samples))
	copy(out, samples)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

type RecoveryMetrics struct {
	SleepQuality float64 `json:"sleepQuality"`
	StressLevel  float64 `json:"stressLevel"`
}

// UserTrainingContext describes who is being analyzed. Supplied fresh by
// the caller on every analysis call; the engine keeps no state between calls.
type UserTrainingContext struct {
	UserID             string                      `json:"userId"`
	Experience         ExperienceLevel             `json:"experience"`
	Goals              []TrainingGoal              `json:"goals"`
	AvailableEquipment map[catalog.Equipment]bool  `json:"availableEquipment"`
	InjuryHistory      []catalog.InjuryTag         `json:"injuryHistory"`
	RecoveryMetrics    RecoveryMetrics             `json:"recoveryMetrics"`
}

func (c UserTrainingContext) HasGoal(goal TrainingGoal) bool {
	for _, g := range c.Goals {
		if g == goal {
			return true
		}
	}
	return false
}

// ExerciseWeek is one week of per-exercise history, used by the fatigue
// analyzer. Entries are ordered ascending by week.
type ExerciseWeek struct {
	Strength float64 `json:"strength"`
	AvgRPE   float64 `json:"avgRpe"`
	Volume   float64 `json:"volume"`
}

// ProgramExercise is an exercise in the user's current program, with the
// weekly history the host layer tracked for it.
type ProgramExercise struct {
	ExerciseID string         `json:"exerciseId"`
	WeeklySets int            `json:"weeklySets"`
	Intensity  float64        `json:"intensity"`
	History    []ExerciseWeek `json:"history"`
}

type PeriodizationPhase string

const (
	PhaseAccumulation    PeriodizationPhase = "accumulation"
	PhaseIntensification PeriodizationPhase = "intensification"
	PhasePeak            PeriodizationPhase = "peak"
	PhaseRecovery        PeriodizationPhase = "recovery"
	PhaseDevelopment     PeriodizationPhase = "development"
)

// Program is the user's current training program as seen by the engine.
type Program struct {
	Phase     PeriodizationPhase `json:"phase"`
	Exercises []ProgramExercise  `json:"exercises"`
}

// PlannedExercise is one entry of a planned (future) workout, used for
// injury risk prediction. Volume is total reps (sets x reps), intensity
// is fraction of estimated 1RM in [0,1].
type PlannedExercise struct {
	ExerciseID string  `json:"exerciseId"`
	Volume     float64 `json:"volume"`
	Intensity  float64 `json:"intensity"`
}

type PlannedWorkout struct {
	Exercises []PlannedExercise `json:"exercises"`
}

// Load is the planned workout's total load (sum of volume x intensity).
func (w PlannedWorkout) Load() float64 {
	var load float64
	for _, ex := range w.Exercises {
		load += ex.Volume * ex.Intensity
	}
	return load
}

// LoadRecord is one past workout's total load, with the recovery score
// reported around it. Ordered ascending by timestamp.
type LoadRecord struct {
	Timestamp     time.Time `json:"timestamp"`
	Load          float64   `json:"load"`
	RecoveryScore float64   `json:"recoveryScore"`
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(values))
}

// relativeChange returns (current-baseline)/|baseline|, falling back to
// the absolute difference when the baseline is zero.
func relativeChange(baseline, current float64) float64 {
	if baseline == 0 {
		return current - baseline
	}
	d := baseline
	if d < 0 {
		d = -d
	}
	return (current - baseline) / d
}
