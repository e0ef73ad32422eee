package engine_test

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/strengthlab/trainadapt/internal/catalog"
	"github.com/strengthlab/trainadapt/internal/engine"
)

var weekOne = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func init() {
	gofakeit.Seed(1143)
}

// weeklyGains builds one sample per week; gains[i] is the fractional
// strength change from week i to week i+1, so len(gains)+1 samples come
// back. All readiness fields start from healthy defaults and can be
// tweaked by the mutate callback.
func weeklyGains(gains []float64, mutate func(week int, s *engine.PerformanceSample)) []engine.PerformanceSample {
	strength := 1.0
	samples := make([]engine.PerformanceSample, 0, len(gains)+1)
	for week := 0; week <= len(gains); week++ {
		if week > 0 {
			strength *= 1 + gains[week-1]
		}
		s := engine.PerformanceSample{
			Timestamp:       weekOne.AddDate(0, 0, 7*week),
			StrengthIndex:   map[string]float64{"barbell-back-squat": strength},
			VolumeTolerance: 0.85,
			RecoveryScore:   0.8,
			MotivationLevel: 0.8,
			AdherenceRate:   0.9,
			RPEAccuracy:     0.5,
			ProgressionRate: 0.01,
		}
		if week > 0 {
			s.ProgressionRate = gains[week-1]
		}
		if mutate != nil {
			mutate(week, &s)
		}
		samples = append(samples, s)
	}
	return samples
}

func repeatGain(gain float64, weeks int) []float64 {
	gains := make([]float64, weeks)
	for i := range gains {
		gains[i] = gain
	}
	return gains
}

func testUserCtx() engine.UserTrainingContext {
	return engine.UserTrainingContext{
		UserID:     gofakeit.UUID(),
		Experience: engine.ExperienceIntermediate,
		Goals:      []engine.TrainingGoal{engine.GoalStrength},
		AvailableEquipment: map[catalog.Equipment]bool{
			catalog.EquipmentBarbell:   true,
			catalog.EquipmentSquatRack: true,
			catalog.EquipmentDumbbells: true,
			catalog.EquipmentBench:     true,
		},
		RecoveryMetrics: engine.RecoveryMetrics{
			SleepQuality: 0.8,
			StressLevel:  0.3,
		},
	}
}

// dumbbellsOnlyCtx is a home-gym user: dumbbells and nothing else.
func dumbbellsOnlyCtx() engine.UserTrainingContext {
	userCtx := testUserCtx()
	userCtx.AvailableEquipment = map[catalog.Equipment]bool{
		catalog.EquipmentDumbbells: true,
	}
	return userCtx
}

func exerciseWeeks(weeks int, strengthStart, strengthEnd, rpeStart, rpeEnd float64) []engine.ExerciseWeek {
	out := make([]engine.ExerciseWeek, weeks)
	for i := 0; i < weeks; i++ {
		frac := 0.0
		if weeks > 1 {
			frac = float64(i) / float64(weeks-1)
		}
		out[i] = engine.ExerciseWeek{
			Strength: strengthStart + (strengthEnd-strengthStart)*frac,
			AvgRPE:   rpeStart + (rpeEnd-rpeStart)*frac,
			Volume:   100,
		}
	}
	return out
}
