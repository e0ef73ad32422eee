package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Trigger thresholds for the composer.
const (
	overreachTrigger   = 0.6
	aggressiveTrigger  = 0.8
	volumeTrigger      = 0.1
	trendPeakThreshold = 0.01
	highToleranceLevel = 0.8
)

// Composer turns detector outputs into ranked Recommendation records.
// Recommendations are emitted in triggering order (plateau, overreaching,
// volume, fatigue, phase); no deduplication across types.
type Composer struct {
	plateau      *PlateauDetector
	overreaching *OverreachingAnalyzer
	volume       *VolumeOptimizer
	fatigue      *FatigueAnalyzer
	substitution *SubstitutionAdvisor
	injury       *InjuryRiskPredictor
}

func NewComposer(
	plateau *PlateauDetector,
	overreaching *OverreachingAnalyzer,
	volume *VolumeOptimizer,
	fatigue *FatigueAnalyzer,
	substitution *SubstitutionAdvisor,
	injury *InjuryRiskPredictor,
) *Composer {
	return &Composer{
		plateau:      plateau,
		overreaching: overreaching,
		volume:       volume,
		fatigue:      fatigue,
		substitution: substitution,
		injury:       injury,
	}
}

// Compose runs every detector independently over the sorted history and
// assembles the triggered recommendations. The injury risk profile feeds
// the deload severity choice and the substitution safety weighting; the
// fatigue report feeds the substitution advisor. No other detector
// depends on another's output.
func (c *Composer) Compose(
	userCtx UserTrainingContext,
	history []PerformanceSample,
	program Program,
) []Recommendation {
	plateauRes := c.plateau.Detect(history)
	overreachRes := c.overreaching.Assess(history)
	volumeRes := c.volume.Optimize(history)
	fatigueRep := c.fatigue.Analyze(program.Exercises)
	injuryProfile := c.injury.Predict(
		userCtx,
		plannedFromProgram(program),
		loadHistoryFromProgram(program, history),
	)

	var recommendations []Recommendation

	if plateauRes.Detected {
		recommendations = append(recommendations, c.plateauRecommendation(plateauRes))
	}

	if overreachRes.RiskLevel > overreachTrigger ||
		(injuryProfile.Level == RiskHigh && overreachRes.RiskLevel > 0.4) {
		recommendations = append(recommendations, c.deloadRecommendation(overreachRes, injuryProfile))
	}

	if abs(volumeRes.Adjustment) > volumeTrigger {
		recommendations = append(recommendations, c.volumeRecommendation(volumeRes))
	}

	if fatigueRep.RotationNeeded {
		recommendations = append(recommendations, c.rotationRecommendation(userCtx, fatigueRep, &injuryProfile))
	}

	if next := c.nextPhase(program.Phase, plateauRes, overreachRes, history); next != program.Phase {
		recommendations = append(recommendations, c.phaseRecommendation(program.Phase, next, history))
	}

	return recommendations
}

// nextPhase implements the periodization state machine: plateau or high
// overreaching risk move towards intensification or recovery, a strong
// positive trend with high volume tolerance moves towards peak, otherwise
// accumulation/development by default.
func (c *Composer) nextPhase(
	current PeriodizationPhase,
	plateauRes PlateauResult,
	overreachRes OverreachingResult,
	history []PerformanceSample,
) PeriodizationPhase {
	if overreachRes.RiskLevel > overreachTrigger {
		return PhaseRecovery
	}
	if plateauRes.Detected {
		return PhaseIntensification
	}

	if len(history) >= overreachWindow {
		recent := history[len(history)-overreachWindow:]
		trend := meanOf(recent, func(s PerformanceSample) float64 { return s.ProgressionRate })
		tolerance := meanOf(recent, func(s PerformanceSample) float64 { return s.VolumeTolerance })
		if trend > trendPeakThreshold && tolerance > highToleranceLevel {
			return PhasePeak
		}
	}

	if current == PhaseAccumulation {
		return PhaseDevelopment
	}
	return PhaseAccumulation
}

func (c *Composer) plateauRecommendation(res PlateauResult) Recommendation {
	rationale := fmt.Sprintf(
		"strength progression stalled: avg change %.2f%% per week over %d samples (variance %.5f, %d stalled steps)",
		res.AvgChange*100, res.SamplesUsed, res.ChangeVariance, res.StalledSteps,
	)

	switch res.Type {
	case PlateauIntensity:
		return newRecommendation(
			AdaptationIntensityIncrease,
			res.Confidence,
			rationale+"; low volume tolerance points at an intensity plateau",
			IntensityParams{
				LoadIncreasePct: 0.05,
				VolumeCutPct:    0.2,
				SetScheme:       "top set with back-off sets",
			},
			"renewed strength progression within 3-4 weeks",
		)
	case PlateauVolume:
		return newRecommendation(
			AdaptationVolumePeriodization,
			res.Confidence,
			rationale+"; high volume tolerance points at a volume plateau",
			VolumeWaveParams{
				WavePattern:   []float64{1.2, 0.8, 1.3, 0.7},
				DurationWeeks: 4,
			},
			"progression resumes through undulating volume stimulus",
		)
	default:
		return newRecommendation(
			AdaptationProgramOverhaul,
			res.Confidence,
			rationale+"; no clear volume or intensity driver",
			OverhaulParams{
				DurationWeeks:       4,
				ExerciseRotationPct: 0.4,
			},
			"novel stimulus breaks the general plateau",
		)
	}
}

func (c *Composer) deloadRecommendation(res OverreachingResult, injury InjuryRiskProfile) Recommendation {
	rationale := fmt.Sprintf(
		"overreaching risk %.2f (%s urgency), triggered by: %s",
		res.RiskLevel, res.Urgency, strings.Join(res.Factors, ", "),
	)
	if injury.Level == RiskHigh {
		rationale += fmt.Sprintf("; injury risk %.2f reinforces deload severity", injury.OverallRisk)
	}

	switch {
	case res.RiskLevel > aggressiveTrigger || injury.Level == RiskHigh:
		return newRecommendation(
			AdaptationAggressiveDeload,
			res.Confidence,
			rationale,
			DeloadParams{VolumeCutPct: 0.5, DurationWeeks: 2},
			"full recovery of readiness markers within 2 weeks",
		)
	case res.RiskLevel > overreachTrigger:
		return newRecommendation(
			AdaptationStandardDeload,
			res.Confidence,
			rationale,
			DeloadParams{VolumeCutPct: 0.3, DurationWeeks: 1},
			"readiness markers recover within a week",
		)
	default:
		return newRecommendation(
			AdaptationLightAdjustment,
			res.Confidence,
			rationale,
			DeloadParams{VolumeCutPct: 0.15, DurationWeeks: 1, MaintainIntensity: true},
			"fatigue dissipates without losing training momentum",
		)
	}
}

func (c *Composer) volumeRecommendation(res VolumeResult) Recommendation {
	direction := "increase"
	if res.Adjustment < 0 {
		direction = "decrease"
	}
	rationale := fmt.Sprintf(
		"volume response gradient %.3f suggests a %.0f%% volume %s",
		res.Gradient, abs(res.Adjustment)*100, direction,
	)
	if res.FatigueLimited {
		rationale += "; accumulated fatigue capped the adjustment"
	}
	return newRecommendation(
		AdaptationVolumeAdjustment,
		res.Confidence,
		rationale,
		VolumeAdjustmentParams{
			AdjustmentPct:  res.Adjustment,
			FatigueLimited: res.FatigueLimited,
		},
		"progression rate improves at the adjusted volume",
	)
}

func (c *Composer) rotationRecommendation(
	userCtx UserTrainingContext,
	report FatigueReport,
	injuryProfile *InjuryRiskProfile,
) Recommendation {
	var targets []RotationTarget
	var names []string
	for _, score := range report.Scores {
		if !score.RotationCandidate {
			continue
		}
		targets = append(targets, RotationTarget{
			ExerciseID:    score.ExerciseID,
			FatigueScore:  score.Total,
			Substitutions: c.substitution.Find(score.ExerciseID, userCtx, injuryProfile),
		})
		names = append(names, fmt.Sprintf("%s (%.2f)", score.ExerciseID, score.Total))
	}

	return newRecommendation(
		AdaptationExerciseRotation,
		report.Confidence,
		"accumulated exercise fatigue above rotation threshold: "+strings.Join(names, ", "),
		RotationParams{Targets: targets},
		"reduced staleness and joint stress after rotating flagged exercises",
	)
}

func (c *Composer) phaseRecommendation(from, to PeriodizationPhase, history []PerformanceSample) Recommendation {
	return newRecommendation(
		AdaptationPeriodizationPhaseChange,
		clamp01(float64(len(history))/6),
		fmt.Sprintf("training response indicates moving from %s to %s", from, to),
		PhaseChangeParams{From: from, To: to},
		fmt.Sprintf("volume/intensity emphasis realigned for the %s phase", to),
	)
}

func newRecommendation(
	t AdaptationType,
	confidence float64,
	rationale string,
	params Parameters,
	expected string,
) Recommendation {
	return Recommendation{
		ID:              uuid.NewString(),
		Type:            t,
		Confidence:      clamp01(confidence),
		Rationale:       rationale,
		Parameters:      params,
		ExpectedOutcome: expected,
		Monitoring:      monitoringMetrics(t),
	}
}

// plannedFromProgram approximates the next planned workout from the
// current program, for the injury risk feed of the deload choice.
func plannedFromProgram(program Program) PlannedWorkout {
	var workout PlannedWorkout
	for _, ex := range program.Exercises {
		workout.Exercises = append(workout.Exercises, PlannedExercise{
			ExerciseID: ex.ExerciseID,
			Volume:     float64(ex.WeeklySets) * 8, // ~8 reps per working set
			Intensity:  ex.Intensity,
		})
	}
	return workout
}

// loadHistoryFromProgram reconstructs weekly load records from the
// per-exercise histories, attaching recovery scores from the matching
// performance samples.
func loadHistoryFromProgram(program Program, history []PerformanceSample) []LoadRecord {
	weeks := 0
	for _, ex := range program.Exercises {
		if len(ex.History) > weeks {
			weeks = len(ex.History)
		}
	}
	if weeks == 0 {
		return nil
	}

	records := make([]LoadRecord, weeks)
	for _, ex := range program.Exercises {
		offset := weeks - len(ex.History)
		for i, week := range ex.History {
			records[offset+i].Load += week.Volume * ex.Intensity
		}
	}

	sampleOffset := len(history) - weeks
	for i := range records {
		j := sampleOffset + i
		if j >= 0 && j < len(history) {
			records[i].Timestamp = history[j].Timestamp
			records[i].RecoveryScore = history[j].RecoveryScore
		} else {
			records[i].RecoveryScore = 0.7 // neutral fallback
		}
	}
	return records
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
