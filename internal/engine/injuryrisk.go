package engine

import (
	"fmt"

	"github.com/strengthlab/trainadapt/internal/catalog"
)

const injuryHistoryWindow = 4

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// InjuryRiskProfile combines acute-spike, overuse and joint-specific risk.
// Every score is clamped to [0,1].
type InjuryRiskProfile struct {
	AcuteRisk      float64                     `json:"acuteRisk"`
	OveruseRisk    float64                     `json:"overuseRisk"`
	JointRisk      map[catalog.Joint]float64   `json:"jointRisk"`
	OverallRisk    float64                     `json:"overallRisk"`
	Level          RiskLevel                   `json:"level"`
	PrimaryFactors []string                    `json:"primaryFactors"`
}

// InjuryRiskPredictor scores a planned workout against recent training
// load history and the user's injury background.
type InjuryRiskPredictor struct {
	cfg     InjuryRiskConfig
	catalog *catalog.Catalog
}

func NewInjuryRiskPredictor(cfg InjuryRiskConfig, cat *catalog.Catalog) (*InjuryRiskPredictor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &InjuryRiskPredictor{cfg: cfg, catalog: cat}, nil
}

// Predict expects recent load records ordered ascending by timestamp.
// Absent history yields the baseline low-risk profile, never an error.
func (p *InjuryRiskPredictor) Predict(
	userCtx UserTrainingContext,
	workout PlannedWorkout,
	recent []LoadRecord,
) InjuryRiskProfile {
	profile := InjuryRiskProfile{
		JointRisk: make(map[catalog.Joint]float64),
	}

	acute, acuteFactors := p.acuteRisk(userCtx, workout, recent)
	profile.AcuteRisk = acute
	profile.PrimaryFactors = append(profile.PrimaryFactors, acuteFactors...)

	overuse, overuseFactor := p.overuseRisk(recent)
	profile.OveruseRisk = overuse
	if overuseFactor != "" {
		profile.PrimaryFactors = append(profile.PrimaryFactors, overuseFactor)
	}

	profile.JointRisk = p.jointRisk(userCtx, workout)
	var maxJoint float64
	for _, r := range profile.JointRisk {
		if r > maxJoint {
			maxJoint = r
		}
	}

	profile.OverallRisk = clamp01(0.5*profile.AcuteRisk + 0.3*profile.OveruseRisk + 0.2*maxJoint)
	switch {
	case profile.OverallRisk > 0.7:
		profile.Level = RiskHigh
	case profile.OverallRisk > 0.4:
		profile.Level = RiskModerate
	default:
		profile.Level = RiskLow
	}

	return profile
}

func (p *InjuryRiskPredictor) acuteRisk(
	userCtx UserTrainingContext,
	workout PlannedWorkout,
	recent []LoadRecord,
) (float64, []string) {
	risk := p.cfg.Baseline
	var factors []string

	window := recent
	if len(window) > injuryHistoryWindow {
		window = window[len(window)-injuryHistoryWindow:]
	}

	if len(window) > 0 {
		var loads, recoveries []float64
		for _, r := range window {
			loads = append(loads, r.Load)
			recoveries = append(recoveries, r.RecoveryScore)
		}

		meanLoad := mean(loads)
		if meanLoad > 0 {
			spike := workout.Load() / meanLoad
			if spike > p.cfg.SpikeThreshold {
				risk += (spike - 1) * p.cfg.SpikeWeight
				factors = append(factors, fmt.Sprintf("acute load spike %.2fx over recent average", spike))
			}
		}

		fatigue := 1 - mean(recoveries)
		risk += fatigue * p.cfg.FatigueWeight
		if fatigue > 0.4 {
			factors = append(factors, "elevated accumulated fatigue")
		}
	}

	if len(userCtx.InjuryHistory) > 0 {
		risk *= p.cfg.InjuryHistoryMultiplier

		for _, planned := range workout.Exercises {
			profile, ok := p.catalog.Get(planned.ExerciseID)
			if !ok {
				continue
			}
			for _, tag := range userCtx.InjuryHistory {
				if profile.HasContraindication(tag) {
					risk += 0.1
					factors = append(factors, fmt.Sprintf("%s contraindicated by prior %s", planned.ExerciseID, tag))
				}
			}
		}
	}

	return clamp01(risk), factors
}

// overuseRisk uses the acute:chronic workload ratio - latest load against
// the rolling mean of the last 4 records.
func (p *InjuryRiskPredictor) overuseRisk(recent []LoadRecord) (float64, string) {
	if len(recent) == 0 {
		return p.cfg.Baseline, ""
	}

	window := recent
	if len(window) > injuryHistoryWindow {
		window = window[len(window)-injuryHistoryWindow:]
	}
	var loads []float64
	for _, r := range window {
		loads = append(loads, r.Load)
	}
	chronic := mean(loads)
	if chronic == 0 {
		return p.cfg.Baseline, ""
	}

	ratio := recent[len(recent)-1].Load / chronic
	if ratio > p.cfg.ACRatioThreshold {
		return clamp01((ratio - 1) * 0.5), fmt.Sprintf("acute:chronic workload ratio %.2f", ratio)
	}
	return p.cfg.Baseline, ""
}

func (p *InjuryRiskPredictor) jointRisk(
	userCtx UserTrainingContext,
	workout PlannedWorkout,
) map[catalog.Joint]float64 {
	risks := make(map[catalog.Joint]float64)

	totalVolume := 0.0
	for _, planned := range workout.Exercises {
		totalVolume += planned.Volume
	}
	if totalVolume == 0 {
		return risks
	}

	// volume-weighted blend of the catalog's per-joint loading
	for _, planned := range workout.Exercises {
		profile, ok := p.catalog.Get(planned.ExerciseID)
		if !ok {
			continue
		}
		share := planned.Volume / totalVolume
		for joint, r := range profile.JointRisk {
			risks[joint] += r * share * (0.5 + planned.Intensity/2)
		}
	}

	for joint := range risks {
		if userCtx.RecoveryMetrics.StressLevel > 0.7 {
			risks[joint] += 0.05
		}
		if userCtx.Experience == ExperienceBeginner {
			risks[joint] += 0.05
		}
		risks[joint] = clamp01(risks[joint])
	}

	return risks
}
