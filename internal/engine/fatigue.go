package engine

import (
	"sort"

	"github.com/strengthlab/trainadapt/internal/catalog"
)

// fatigueMinWeeks is the minimum tracked weeks before an exercise is
// evaluated at all; anything shorter is silently skipped.
const fatigueMinWeeks = 4

const defaultComplexity = 5

type FatigueScore struct {
	ExerciseID      string  `json:"exerciseId"`
	WeeksTracked    int     `json:"weeksTracked"`
	MovementFatigue float64 `json:"movementFatigue"`
	JointStress     float64 `json:"jointStress"`
	NeuralFatigue   float64 `json:"neuralFatigue"`
	StrengthTrend   float64 `json:"strengthTrend"`
	RPETrend        float64 `json:"rpeTrend"`
	Total           float64 `json:"total"`
	RotationCandidate bool  `json:"rotationCandidate"`
}

type FatigueReport struct {
	// Scores is ordered descending by total accumulated fatigue.
	Scores         []FatigueScore `json:"scores"`
	RotationNeeded bool           `json:"rotationNeeded"`
	Confidence     float64        `json:"confidence"`
}

// FatigueAnalyzer accumulates per-exercise fatigue from weekly history
// and flags rotation candidates.
type FatigueAnalyzer struct {
	cfg     FatigueConfig
	catalog *catalog.Catalog
}

func NewFatigueAnalyzer(cfg FatigueConfig, cat *catalog.Catalog) (*FatigueAnalyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &FatigueAnalyzer{cfg: cfg, catalog: cat}, nil
}

func (a *FatigueAnalyzer) Analyze(exercises []ProgramExercise) FatigueReport {
	var report FatigueReport
	maxWeeks := 0

	for _, ex := range exercises {
		weeks := len(ex.History)
		if weeks < fatigueMinWeeks {
			continue
		}
		if weeks > maxWeeks {
			maxWeeks = weeks
		}

		complexity := float64(defaultComplexity)
		if profile, ok := a.catalog.Get(ex.ExerciseID); ok {
			complexity = profile.TechnicalComplexity
		}

		w := float64(weeks)
		score := FatigueScore{
			ExerciseID:      ex.ExerciseID,
			WeeksTracked:    weeks,
			MovementFatigue: w * a.cfg.MovementPatternFatigue,
			JointStress:     w * a.cfg.JointStressAccumulation,
			NeuralFatigue:   w * a.cfg.NeuralFatigueFactor * (complexity / 10),
		}
		score.Total = score.MovementFatigue + score.JointStress + score.NeuralFatigue

		first, last := ex.History[0], ex.History[weeks-1]
		score.StrengthTrend = relativeChange(first.Strength, last.Strength)
		if score.StrengthTrend < -0.02 {
			score.Total += 0.2
		}
		score.RPETrend = last.AvgRPE - first.AvgRPE
		if score.RPETrend > 1.0 {
			score.Total += 0.15
		}

		score.RotationCandidate = score.Total > a.cfg.RotationThreshold
		if score.RotationCandidate {
			report.RotationNeeded = true
		}
		report.Scores = append(report.Scores, score)
	}

	sort.SliceStable(report.Scores, func(i, j int) bool {
		return report.Scores[i].Total > report.Scores[j].Total
	})
	report.Confidence = clamp01(float64(maxWeeks) / 8)

	return report
}
