package catalog

// defaultProfiles is the compiled-in exercise registry. Values are tuned
// heuristics, not measurements; deployments can extend or override them
// via a TOML catalog file.
var defaultProfiles = []Profile{
	{
		ID:               "barbell-back-squat",
		Name:             "Barbell Back Squat",
		Pattern:          PatternSquat,
		PrimaryMuscles:   []string{"quadriceps", "glutes"},
		SecondaryMuscles: []string{"hamstrings", "core", "lower_back"},
		Equipment:        []Equipment{EquipmentBarbell, EquipmentSquatRack},
		Difficulty:       7, TechnicalComplexity: 8,
		JointRisk:      map[Joint]float64{JointKnee: 0.5, JointLowerBack: 0.5, JointHip: 0.3},
		FatigueCost:    0.9, RecoveryDemand: 0.8, NeuralDemand: 0.9,
		StrengthCarryover: 0.95, HypertrophyCarryover: 0.85,
		Contraindications: []InjuryTag{InjuryKneePain, InjuryLowerBackPain},
		Alternatives:      []string{"goblet-squat", "leg-press", "bulgarian-split-squat"},
	},
	{
		ID:               "goblet-squat",
		Name:             "Goblet Squat",
		Pattern:          PatternSquat,
		PrimaryMuscles:   []string{"quadriceps", "glutes"},
		SecondaryMuscles: []string{"core"},
		Equipment:        []Equipment{EquipmentDumbbells},
		Difficulty:       3, TechnicalComplexity: 3,
		JointRisk:      map[Joint]float64{JointKnee: 0.3, JointLowerBack: 0.2},
		FatigueCost:    0.5, RecoveryDemand: 0.4, NeuralDemand: 0.4,
		StrengthCarryover: 0.6, HypertrophyCarryover: 0.7,
	},
	{
		ID:               "leg-press",
		Name:             "Leg Press",
		Pattern:          PatternSquat,
		PrimaryMuscles:   []string{"quadriceps", "glutes"},
		SecondaryMuscles: []string{"hamstrings"},
		Equipment:        []Equipment{EquipmentMachine},
		Difficulty:       3, TechnicalComplexity: 2,
		JointRisk:      map[Joint]float64{JointKnee: 0.35, JointLowerBack: 0.15, JointHip: 0.2},
		FatigueCost:    0.6, RecoveryDemand: 0.5, NeuralDemand: 0.3,
		StrengthCarryover: 0.7, HypertrophyCarryover: 0.8,
	},
	{
		ID:               "bodyweight-squat",
		Name:             "Bodyweight Squat",
		Pattern:          PatternSquat,
		PrimaryMuscles:   []string{"quadriceps", "glutes"},
		SecondaryMuscles: []string{"core"},
		Equipment:        []Equipment{EquipmentBodyweight},
		Difficulty:       1, TechnicalComplexity: 2,
		JointRisk:      map[Joint]float64{JointKnee: 0.15},
		FatigueCost:    0.2, RecoveryDemand: 0.2, NeuralDemand: 0.2,
		StrengthCarryover: 0.3, HypertrophyCarryover: 0.35,
	},
	{
		ID:               "conventional-deadlift",
		Name:             "Conventional Deadlift",
		Pattern:          PatternHinge,
		PrimaryMuscles:   []string{"hamstrings", "glutes", "lower_back"},
		SecondaryMuscles: []string{"traps", "forearms", "core"},
		Equipment:        []Equipment{EquipmentBarbell},
		Difficulty:       8, TechnicalComplexity: 9,
		JointRisk:      map[Joint]float64{JointLowerBack: 0.65, JointHip: 0.35, JointKnee: 0.2},
		FatigueCost:    1.0, RecoveryDemand: 0.95, NeuralDemand: 1.0,
		StrengthCarryover: 0.95, HypertrophyCarryover: 0.75,
		Contraindications: []InjuryTag{InjuryLowerBackPain, InjuryHipPain},
		Alternatives:      []string{"romanian-deadlift", "kettlebell-swing", "hip-thrust"},
	},
	{
		ID:               "romanian-deadlift",
		Name:             "Romanian Deadlift",
		Pattern:          PatternHinge,
		PrimaryMuscles:   []string{"hamstrings", "glutes"},
		SecondaryMuscles: []string{"lower_back", "forearms"},
		Equipment:        []Equipment{EquipmentBarbell},
		Difficulty:       6, TechnicalComplexity: 6,
		JointRisk:      map[Joint]float64{JointLowerBack: 0.5, JointHip: 0.3},
		FatigueCost:    0.75, RecoveryDemand: 0.7, NeuralDemand: 0.6,
		StrengthCarryover: 0.8, HypertrophyCarryover: 0.8,
		Contraindications: []InjuryTag{InjuryLowerBackPain},
	},
	{
		ID:               "kettlebell-swing",
		Name:             "Kettlebell Swing",
		Pattern:          PatternHinge,
		PrimaryMuscles:   []string{"hamstrings", "glutes"},
		SecondaryMuscles: []string{"core", "shoulders"},
		Equipment:        []Equipment{EquipmentKettlebell},
		Difficulty:       4, TechnicalComplexity: 5,
		JointRisk:      map[Joint]float64{JointLowerBack: 0.3, JointShoulder: 0.15},
		FatigueCost:    0.5, RecoveryDemand: 0.4, NeuralDemand: 0.5,
		StrengthCarryover: 0.5, HypertrophyCarryover: 0.5,
	},
	{
		ID:               "hip-thrust",
		Name:             "Barbell Hip Thrust",
		Pattern:          PatternHinge,
		PrimaryMuscles:   []string{"glutes"},
		SecondaryMuscles: []string{"hamstrings"},
		Equipment:        []Equipment{EquipmentBarbell, EquipmentBench},
		Difficulty:       4, TechnicalComplexity: 4,
		JointRisk:      map[Joint]float64{JointHip: 0.2, JointLowerBack: 0.15},
		FatigueCost:    0.55, RecoveryDemand: 0.5, NeuralDemand: 0.4,
		StrengthCarryover: 0.6, HypertrophyCarryover: 0.85,
	},
	{
		ID:               "barbell-bench-press",
		Name:             "Barbell Bench Press",
		Pattern:          PatternHorizontalPush,
		PrimaryMuscles:   []string{"chest", "triceps"},
		SecondaryMuscles: []string{"front_delts"},
		Equipment:        []Equipment{EquipmentBarbell, EquipmentBench},
		Difficulty:       6, TechnicalComplexity: 6,
		JointRisk:      map[Joint]float64{JointShoulder: 0.5, JointElbow: 0.3, JointWrist: 0.2},
		FatigueCost:    0.7, RecoveryDemand: 0.65, NeuralDemand: 0.7,
		StrengthCarryover: 0.95, HypertrophyCarryover: 0.85,
		Contraindications: []InjuryTag{InjuryShoulderImpingement},
		Alternatives:      []string{"dumbbell-bench-press", "pushup"},
	},
	{
		ID:               "dumbbell-bench-press",
		Name:             "Dumbbell Bench Press",
		Pattern:          PatternHorizontalPush,
		PrimaryMuscles:   []string{"chest", "triceps"},
		SecondaryMuscles: []string{"front_delts"},
		Equipment:        []Equipment{EquipmentDumbbells, EquipmentBench},
		Difficulty:       5, TechnicalComplexity: 5,
		JointRisk:      map[Joint]float64{JointShoulder: 0.35, JointElbow: 0.25},
		FatigueCost:    0.6, RecoveryDemand: 0.55, NeuralDemand: 0.55,
		StrengthCarryover: 0.8, HypertrophyCarryover: 0.85,
	},
	{
		ID:               "dumbbell-floor-press",
		Name:             "Dumbbell Floor Press",
		Pattern:          PatternHorizontalPush,
		PrimaryMuscles:   []string{"chest", "triceps"},
		SecondaryMuscles: []string{"front_delts"},
		Equipment:        []Equipment{EquipmentDumbbells},
		Difficulty:       4, TechnicalComplexity: 3,
		JointRisk:      map[Joint]float64{JointShoulder: 0.2, JointElbow: 0.25},
		FatigueCost:    0.5, RecoveryDemand: 0.45, NeuralDemand: 0.45,
		StrengthCarryover: 0.7, HypertrophyCarryover: 0.7,
	},
	{
		ID:               "pushup",
		Name:             "Push-Up",
		Pattern:          PatternHorizontalPush,
		PrimaryMuscles:   []string{"chest", "triceps"},
		SecondaryMuscles: []string{"core", "front_delts"},
		Equipment:        []Equipment{EquipmentBodyweight},
		Difficulty:       2, TechnicalComplexity: 2,
		JointRisk:      map[Joint]float64{JointShoulder: 0.15, JointWrist: 0.2},
		FatigueCost:    0.3, RecoveryDemand: 0.25, NeuralDemand: 0.25,
		StrengthCarryover: 0.4, HypertrophyCarryover: 0.5,
	},
	{
		ID:               "overhead-press",
		Name:             "Barbell Overhead Press",
		Pattern:          PatternVerticalPush,
		PrimaryMuscles:   []string{"shoulders", "triceps"},
		SecondaryMuscles: []string{"upper_chest", "core"},
		Equipment:        []Equipment{EquipmentBarbell},
		Difficulty:       6, TechnicalComplexity: 7,
		JointRisk:      map[Joint]float64{JointShoulder: 0.55, JointLowerBack: 0.25, JointElbow: 0.2},
		FatigueCost:    0.65, RecoveryDemand: 0.6, NeuralDemand: 0.7,
		StrengthCarryover: 0.9, HypertrophyCarryover: 0.75,
		Contraindications: []InjuryTag{InjuryShoulderImpingement},
		Alternatives:      []string{"dumbbell-shoulder-press"},
	},
	{
		ID:               "dumbbell-shoulder-press",
		Name:             "Dumbbell Shoulder Press",
		Pattern:          PatternVerticalPush,
		PrimaryMuscles:   []string{"shoulders", "triceps"},
		SecondaryMuscles: []string{"upper_chest"},
		Equipment:        []Equipment{EquipmentDumbbells},
		Difficulty:       4, TechnicalComplexity: 4,
		JointRisk:      map[Joint]float64{JointShoulder: 0.35, JointElbow: 0.2},
		FatigueCost:    0.5, RecoveryDemand: 0.45, NeuralDemand: 0.5,
		StrengthCarryover: 0.75, HypertrophyCarryover: 0.75,
	},
	{
		ID:               "pullup",
		Name:             "Pull-Up",
		Pattern:          PatternVerticalPull,
		PrimaryMuscles:   []string{"lats", "biceps"},
		SecondaryMuscles: []string{"rear_delts", "core"},
		Equipment:        []Equipment{EquipmentPullupBar, EquipmentBodyweight},
		Difficulty:       6, TechnicalComplexity: 4,
		JointRisk:      map[Joint]float64{JointShoulder: 0.3, JointElbow: 0.3},
		FatigueCost:    0.55, RecoveryDemand: 0.5, NeuralDemand: 0.5,
		StrengthCarryover: 0.85, HypertrophyCarryover: 0.8,
		Contraindications: []InjuryTag{InjuryElbowTendinitis},
		Alternatives:      []string{"lat-pulldown", "band-pulldown"},
	},
	{
		ID:               "lat-pulldown",
		Name:             "Lat Pulldown",
		Pattern:          PatternVerticalPull,
		PrimaryMuscles:   []string{"lats", "biceps"},
		SecondaryMuscles: []string{"rear_delts"},
		Equipment:        []Equipment{EquipmentCableMachine},
		Difficulty:       3, TechnicalComplexity: 3,
		JointRisk:      map[Joint]float64{JointShoulder: 0.2, JointElbow: 0.2},
		FatigueCost:    0.45, RecoveryDemand: 0.4, NeuralDemand: 0.35,
		StrengthCarryover: 0.7, HypertrophyCarryover: 0.75,
	},
	{
		ID:               "band-pulldown",
		Name:             "Band Pulldown",
		Pattern:          PatternVerticalPull,
		PrimaryMuscles:   []string{"lats"},
		SecondaryMuscles: []string{"biceps"},
		Equipment:        []Equipment{EquipmentBands},
		Difficulty:       2, TechnicalComplexity: 2,
		JointRisk:      map[Joint]float64{JointShoulder: 0.1, JointElbow: 0.15},
		FatigueCost:    0.25, RecoveryDemand: 0.2, NeuralDemand: 0.2,
		StrengthCarryover: 0.4, HypertrophyCarryover: 0.5,
	},
	{
		ID:               "barbell-row",
		Name:             "Barbell Row",
		Pattern:          PatternHorizontalPull,
		PrimaryMuscles:   []string{"lats", "mid_back"},
		SecondaryMuscles: []string{"biceps", "lower_back"},
		Equipment:        []Equipment{EquipmentBarbell},
		Difficulty:       6, TechnicalComplexity: 6,
		JointRisk:      map[Joint]float64{JointLowerBack: 0.45, JointShoulder: 0.2, JointElbow: 0.2},
		FatigueCost:    0.65, RecoveryDemand: 0.6, NeuralDemand: 0.6,
		StrengthCarryover: 0.85, HypertrophyCarryover: 0.8,
		Contraindications: []InjuryTag{InjuryLowerBackPain},
		Alternatives:      []string{"dumbbell-row", "cable-row"},
	},
	{
		ID:               "dumbbell-row",
		Name:             "One-Arm Dumbbell Row",
		Pattern:          PatternHorizontalPull,
		PrimaryMuscles:   []string{"lats", "mid_back"},
		SecondaryMuscles: []string{"biceps"},
		Equipment:        []Equipment{EquipmentDumbbells, EquipmentBench},
		Difficulty:       3, TechnicalComplexity: 3,
		JointRisk:      map[Joint]float64{JointShoulder: 0.15, JointElbow: 0.15, JointLowerBack: 0.1},
		FatigueCost:    0.45, RecoveryDemand: 0.4, NeuralDemand: 0.35,
		StrengthCarryover: 0.7, HypertrophyCarryover: 0.75,
	},
	{
		ID:               "cable-row",
		Name:             "Seated Cable Row",
		Pattern:          PatternHorizontalPull,
		PrimaryMuscles:   []string{"lats", "mid_back"},
		SecondaryMuscles: []string{"biceps"},
		Equipment:        []Equipment{EquipmentCableMachine},
		Difficulty:       3, TechnicalComplexity: 3,
		JointRisk:      map[Joint]float64{JointLowerBack: 0.2, JointShoulder: 0.15},
		FatigueCost:    0.45, RecoveryDemand: 0.4, NeuralDemand: 0.35,
		StrengthCarryover: 0.7, HypertrophyCarryover: 0.75,
	},
	{
		ID:               "bulgarian-split-squat",
		Name:             "Bulgarian Split Squat",
		Pattern:          PatternLunge,
		PrimaryMuscles:   []string{"quadriceps", "glutes"},
		SecondaryMuscles: []string{"hamstrings", "core"},
		Equipment:        []Equipment{EquipmentDumbbells, EquipmentBench},
		Difficulty:       5, TechnicalComplexity: 4,
		JointRisk:      map[Joint]float64{JointKnee: 0.35, JointAnkle: 0.2},
		FatigueCost:    0.6, RecoveryDemand: 0.55, NeuralDemand: 0.45,
		StrengthCarryover: 0.6, HypertrophyCarryover: 0.75,
	},
	{
		ID:               "dumbbell-curl",
		Name:             "Dumbbell Curl",
		Pattern:          PatternIsolation,
		PrimaryMuscles:   []string{"biceps"},
		Equipment:        []Equipment{EquipmentDumbbells},
		Difficulty:       1, TechnicalComplexity: 1,
		JointRisk:      map[Joint]float64{JointElbow: 0.15, JointWrist: 0.1},
		FatigueCost:    0.2, RecoveryDemand: 0.15, NeuralDemand: 0.1,
		StrengthCarryover: 0.3, HypertrophyCarryover: 0.6,
		Contraindications: []InjuryTag{InjuryElbowTendinitis},
	},
}
