package engine

import (
	"fmt"
	"sort"

	"github.com/strengthlab/trainadapt/internal/catalog"
)

type Substitution struct {
	ExerciseID    string   `json:"exerciseId"`
	Name          string   `json:"name"`
	Effectiveness float64  `json:"effectiveness"`
	Safety        float64  `json:"safety"`
	Reasons       []string `json:"reasons"`
}

// SubstitutionAdvisor finds safe, equipment-compatible alternatives within
// the same movement pattern. All candidate lookups are id-based against
// the immutable catalog.
type SubstitutionAdvisor struct {
	cfg     SubstitutionConfig
	catalog *catalog.Catalog
}

func NewSubstitutionAdvisor(cfg SubstitutionConfig, cat *catalog.Catalog) (*SubstitutionAdvisor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SubstitutionAdvisor{cfg: cfg, catalog: cat}, nil
}

// Find returns at most MaxResults substitutions for the given exercise.
// An unknown exercise id yields an empty list - custom user-entered
// exercises are expected to be missing from the catalog.
// The optional injury profile tilts the safety score towards joints the
// user is currently at risk on.
func (a *SubstitutionAdvisor) Find(
	exerciseID string,
	userCtx UserTrainingContext,
	injuryProfile *InjuryRiskProfile,
) []Substitution {
	original, ok := a.catalog.Get(exerciseID)
	if !ok {
		return nil
	}

	var results []Substitution
	for _, candidate := range a.catalog.SamePattern(original.Pattern) {
		if candidate.ID == original.ID {
			continue
		}
		if !candidate.EquipmentAvailable(userCtx.AvailableEquipment) {
			continue
		}

		effectiveness := a.effectivenessRetention(original, candidate)
		safety, reasons := a.safetyImprovement(original, candidate, userCtx, injuryProfile)

		if effectiveness <= a.cfg.MinEffectiveness && safety <= a.cfg.MinSafetyGain {
			continue
		}

		results = append(results, Substitution{
			ExerciseID:    candidate.ID,
			Name:          candidate.Name,
			Effectiveness: effectiveness,
			Safety:        safety,
			Reasons:       reasons,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		si := results[i].Effectiveness + results[i].Safety
		sj := results[j].Effectiveness + results[j].Safety
		if si != sj {
			return si > sj
		}
		return results[i].ExerciseID < results[j].ExerciseID
	})

	if len(results) > a.cfg.MaxResults {
		results = results[:a.cfg.MaxResults]
	}
	return results
}

// effectivenessRetention blends primary-muscle overlap with how much of
// the original's strength and hypertrophy carryover the candidate keeps.
func (a *SubstitutionAdvisor) effectivenessRetention(original, candidate catalog.Profile) float64 {
	overlap := muscleOverlap(original.PrimaryMuscles, candidate.PrimaryMuscles)
	strengthRet := retention(original.StrengthCarryover, candidate.StrengthCarryover)
	hypertrophyRet := retention(original.HypertrophyCarryover, candidate.HypertrophyCarryover)

	total := a.cfg.MuscleOverlapWeight*overlap +
		a.cfg.StrengthRetentionWeight*strengthRet +
		a.cfg.HypertrophyRetentionWeight*hypertrophyRet
	return clamp01(total)
}

func (a *SubstitutionAdvisor) safetyImprovement(
	original, candidate catalog.Profile,
	userCtx UserTrainingContext,
	injuryProfile *InjuryRiskProfile,
) (float64, []string) {
	safety := original.AvgJointRisk() - candidate.AvgJointRisk()

	var reasons []string
	for _, tag := range userCtx.InjuryHistory {
		if original.HasContraindication(tag) && !candidate.HasContraindication(tag) {
			safety += a.cfg.ContraindicationBonus
			reasons = append(reasons, fmt.Sprintf("avoids %s contraindication", tag))
		}
	}

	// weight joint relief by the user's current per-joint risk
	if injuryProfile != nil {
		for joint, risk := range injuryProfile.JointRisk {
			if risk <= 0.5 {
				continue
			}
			safety += (original.JointRisk[joint] - candidate.JointRisk[joint]) * risk * 0.25
		}
	}

	if candidate.Difficulty < original.Difficulty {
		reasons = append(reasons, "lower technical difficulty")
	} else if candidate.Difficulty > original.Difficulty {
		reasons = append(reasons, "higher technical difficulty")
	}
	if len(candidate.Equipment) < len(original.Equipment) {
		reasons = append(reasons, "needs less equipment")
	}
	if candidate.RecoveryDemand < original.RecoveryDemand {
		reasons = append(reasons, "lower recovery demand")
	}

	return safety, reasons
}

func muscleOverlap(original, candidate []string) float64 {
	if len(original) == 0 {
		return 0
	}
	candidateSet := make(map[string]bool, len(candidate))
	for _, m := range candidate {
		candidateSet[m] = true
	}
	shared := 0
	for _, m := range original {
		if candidateSet[m] {
			shared++
		}
	}
	return float64(shared) / float64(len(original))
}

func retention(original, candidate float64) float64 {
	if original == 0 {
		return 1
	}
	return clamp01(candidate / original)
}
