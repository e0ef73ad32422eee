package engine

// Detector thresholds below mirror the historically used model defaults.
// They are tunable configuration, not derived constants.

type PlateauConfig struct {
	// WindowSize is how many trailing samples the detector looks at.
	WindowSize int `toml:"window_size"`
	// SignificanceThreshold is the per-step fractional strength change
	// under which progression counts as stalled.
	SignificanceThreshold float64 `toml:"significance_threshold"`
	// MinimumPlateauDuration is how many of the most recent changes must
	// individually be below the significance threshold.
	MinimumPlateauDuration int `toml:"minimum_plateau_duration"`
	// StrengthVarianceThreshold bounds the variance of the change series.
	StrengthVarianceThreshold float64 `toml:"strength_variance_threshold"`
}

func DefaultPlateauConfig() PlateauConfig {
	return PlateauConfig{
		WindowSize:                6,
		SignificanceThreshold:     0.01,
		MinimumPlateauDuration:    3,
		StrengthVarianceThreshold: 0.005,
	}
}

func (c PlateauConfig) Validate() error {
	if c.WindowSize < 2 {
		return &InvalidConfigurationError{Field: "plateau.window_size", Reason: "must be at least 2"}
	}
	if c.MinimumPlateauDuration < 1 {
		return &InvalidConfigurationError{Field: "plateau.minimum_plateau_duration", Reason: "must be at least 1"}
	}
	if c.MinimumPlateauDuration >= c.WindowSize {
		return &InvalidConfigurationError{Field: "plateau.minimum_plateau_duration", Reason: "must be smaller than window size"}
	}
	if c.SignificanceThreshold <= 0 {
		return &InvalidConfigurationError{Field: "plateau.significance_threshold", Reason: "must be positive"}
	}
	if c.StrengthVarianceThreshold <= 0 {
		return &InvalidConfigurationError{Field: "plateau.strength_variance_threshold", Reason: "must be positive"}
	}
	return nil
}

// IndicatorConfig weights one overreaching indicator. Threshold direction
// is indicator specific: declines are negative, inflations positive.
type IndicatorConfig struct {
	Weight    float64 `toml:"weight"`
	Threshold float64 `toml:"threshold"`
}

type OverreachingConfig struct {
	PerformanceDecline  IndicatorConfig `toml:"performance_decline"`
	RPEInflation        IndicatorConfig `toml:"rpe_inflation"`
	RecoveryDegradation IndicatorConfig `toml:"recovery_degradation"`
	MotivationDrop      IndicatorConfig `toml:"motivation_drop"`
}

func DefaultOverreachingConfig() OverreachingConfig {
	return OverreachingConfig{
		PerformanceDecline:  IndicatorConfig{Weight: 0.35, Threshold: -0.05},
		RPEInflation:        IndicatorConfig{Weight: 0.3, Threshold: 1.5},
		RecoveryDegradation: IndicatorConfig{Weight: 0.25, Threshold: -0.15},
		MotivationDrop:      IndicatorConfig{Weight: 0.2, Threshold: -0.2},
	}
}

func (c OverreachingConfig) Validate() error {
	for _, ind := range []struct {
		name string
		cfg  IndicatorConfig
	}{
		{"performance_decline", c.PerformanceDecline},
		{"rpe_inflation", c.RPEInflation},
		{"recovery_degradation", c.RecoveryDegradation},
		{"motivation_drop", c.MotivationDrop},
	} {
		if ind.cfg.Weight <= 0 {
			return &InvalidConfigurationError{
				Field:  "overreaching." + ind.name + ".weight",
				Reason: "must be positive",
			}
		}
	}
	return nil
}

type VolumeConfig struct {
	// FatigueThreshold is compared against mean (1 - recovery score)
	// over the last 3 samples.
	FatigueThreshold float64 `toml:"fatigue_threshold"`
}

func DefaultVolumeConfig() VolumeConfig {
	return VolumeConfig{FatigueThreshold: 0.4}
}

func (c VolumeConfig) Validate() error {
	if c.FatigueThreshold <= 0 || c.FatigueThreshold >= 1 {
		return &InvalidConfigurationError{Field: "volume.fatigue_threshold", Reason: "must be in (0,1)"}
	}
	return nil
}

type FatigueConfig struct {
	MovementPatternFatigue  float64 `toml:"movement_pattern_fatigue"`
	JointStressAccumulation float64 `toml:"joint_stress_accumulation"`
	NeuralFatigueFactor     float64 `toml:"neural_fatigue_factor"`
	RotationThreshold       float64 `toml:"rotation_threshold"`
}

func DefaultFatigueConfig() FatigueConfig {
	return FatigueConfig{
		MovementPatternFatigue:  0.05,
		JointStressAccumulation: 0.04,
		NeuralFatigueFactor:     0.03,
		RotationThreshold:       0.7,
	}
}

func (c FatigueConfig) Validate() error {
	if c.MovementPatternFatigue < 0 || c.JointStressAccumulation < 0 || c.NeuralFatigueFactor < 0 {
		return &InvalidConfigurationError{Field: "fatigue.weights", Reason: "must not be negative"}
	}
	if c.RotationThreshold <= 0 {
		return &InvalidConfigurationError{Field: "fatigue.rotation_threshold", Reason: "must be positive"}
	}
	return nil
}

type SubstitutionConfig struct {
	MuscleOverlapWeight       float64 `toml:"muscle_overlap_weight"`
	StrengthRetentionWeight   float64 `toml:"strength_retention_weight"`
	HypertrophyRetentionWeight float64 `toml:"hypertrophy_retention_weight"`
	// ContraindicationBonus is added to safety for every user injury tag
	// contraindicated by the original but not by the candidate.
	ContraindicationBonus float64 `toml:"contraindication_bonus"`
	MinEffectiveness      float64 `toml:"min_effectiveness"`
	MinSafetyGain         float64 `toml:"min_safety_gain"`
	MaxResults            int     `toml:"max_results"`
}

func DefaultSubstitutionConfig() SubstitutionConfig {
	return SubstitutionConfig{
		MuscleOverlapWeight:        0.4,
		StrengthRetentionWeight:    0.3,
		HypertrophyRetentionWeight: 0.3,
		ContraindicationBonus:      0.15,
		MinEffectiveness:           0.6,
		MinSafetyGain:              0.2,
		MaxResults:                 3,
	}
}

func (c SubstitutionConfig) Validate() error {
	if c.MaxResults < 1 {
		return &InvalidConfigurationError{Field: "substitution.max_results", Reason: "must be at least 1"}
	}
	if c.MuscleOverlapWeight < 0 || c.StrengthRetentionWeight < 0 || c.HypertrophyRetentionWeight < 0 {
		return &InvalidConfigurationError{Field: "substitution.weights", Reason: "must not be negative"}
	}
	return nil
}

type InjuryRiskConfig struct {
	Baseline                float64 `toml:"baseline"`
	SpikeThreshold          float64 `toml:"spike_threshold"`
	SpikeWeight             float64 `toml:"spike_weight"`
	FatigueWeight           float64 `toml:"fatigue_weight"`
	InjuryHistoryMultiplier float64 `toml:"injury_history_multiplier"`
	// ACRatioThreshold is the acute:chronic workload ratio over which
	// overuse risk starts accumulating.
	ACRatioThreshold float64 `toml:"ac_ratio_threshold"`
}

func DefaultInjuryRiskConfig() InjuryRiskConfig {
	return InjuryRiskConfig{
		Baseline:                0.05,
		SpikeThreshold:          1.3,
		SpikeWeight:             0.3,
		FatigueWeight:           0.2,
		InjuryHistoryMultiplier: 1.3,
		ACRatioThreshold:        1.3,
	}
}

func (c InjuryRiskConfig) Validate() error {
	if c.Baseline < 0 || c.Baseline > 1 {
		return &InvalidConfigurationError{Field: "injury_risk.baseline", Reason: "must be in [0,1]"}
	}
	if c.SpikeThreshold <= 1 {
		return &InvalidConfigurationError{Field: "injury_risk.spike_threshold", Reason: "must be greater than 1"}
	}
	if c.InjuryHistoryMultiplier < 1 {
		return &InvalidConfigurationError{Field: "injury_risk.injury_history_multiplier", Reason: "must be at least 1"}
	}
	if c.ACRatioThreshold <= 1 {
		return &InvalidConfigurationError{Field: "injury_risk.ac_ratio_threshold", Reason: "must be greater than 1"}
	}
	return nil
}

// Config aggregates all detector configurations. Validated once at engine
// construction, never re-parsed per call.
type Config struct {
	Plateau      PlateauConfig      `toml:"plateau"`
	Overreaching OverreachingConfig `toml:"overreaching"`
	Volume       VolumeConfig       `toml:"volume"`
	Fatigue      FatigueConfig      `toml:"fatigue"`
	Substitution SubstitutionConfig `toml:"substitution"`
	InjuryRisk   InjuryRiskConfig   `toml:"injury_risk"`
}

func DefaultConfig() Config {
	return Config{
		Plateau:      DefaultPlateauConfig(),
		Overreaching: DefaultOverreachingConfig(),
		Volume:       DefaultVolumeConfig(),
		Fatigue:      DefaultFatigueConfig(),
		Substitution: DefaultSubstitutionConfig(),
		InjuryRisk:   DefaultInjuryRiskConfig(),
	}
}

func (c Config) Validate() error {
	if err := c.Plateau.Validate(); err != nil {
		return err
	}
	if err := c.Overreaching.Validate(); err != nil {
		return err
	}
	if err := c.Volume.Validate(); err != nil {
		return err
	}
	if err := c.Fatigue.Validate(); err != nil {
		return err
	}
	if err := c.Substitution.Validate(); err != nil {
		return err
	}
	return c.InjuryRisk.Validate()
}
