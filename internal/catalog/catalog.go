package catalog

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// MovementPattern is the biomechanical category used to group
// interchangeable exercises.
type MovementPattern string

const (
	PatternSquat          MovementPattern = "squat"
	PatternHinge          MovementPattern = "hinge"
	PatternVerticalPush   MovementPattern = "vertical_push"
	PatternHorizontalPush MovementPattern = "horizontal_push"
	PatternVerticalPull   MovementPattern = "vertical_pull"
	PatternHorizontalPull MovementPattern = "horizontal_pull"
	PatternLunge          MovementPattern = "lunge"
	PatternCarry          MovementPattern = "carry"
	PatternIsolation      MovementPattern = "isolation"
)

type Equipment string

const (
	EquipmentBarbell      Equipment = "barbell"
	EquipmentDumbbells    Equipment = "dumbbells"
	EquipmentSquatRack    Equipment = "squat_rack"
	EquipmentBench        Equipment = "bench"
	EquipmentCableMachine Equipment = "cable_machine"
	EquipmentPullupBar    Equipment = "pullup_bar"
	EquipmentMachine      Equipment = "machine"
	EquipmentKettlebell   Equipment = "kettlebell"
	EquipmentBands        Equipment = "bands"
	EquipmentBodyweight   Equipment = "bodyweight"
)

type Joint string

const (
	JointKnee      Joint = "knee"
	JointHip       Joint = "hip"
	JointLowerBack Joint = "lower_back"
	JointShoulder  Joint = "shoulder"
	JointElbow     Joint = "elbow"
	JointWrist     Joint = "wrist"
	JointAnkle     Joint = "ankle"
)

// InjuryTag marks a (past) injury in a user's history. Profiles list the
// tags that make them unsafe via Contraindications.
type InjuryTag string

const (
	InjuryKneePain            InjuryTag = "knee_pain"
	InjuryLowerBackPain       InjuryTag = "lower_back_pain"
	InjuryShoulderImpingement InjuryTag = "shoulder_impingement"
	InjuryElbowTendinitis     InjuryTag = "elbow_tendinitis"
	InjuryWristPain           InjuryTag = "wrist_pain"
	InjuryHipPain             InjuryTag = "hip_pain"
)

// Profile holds the static metadata of one exercise.
type Profile struct {
	ID               string          `toml:"id" json:"id"`
	Name             string          `toml:"name" json:"name"`
	Pattern          MovementPattern `toml:"pattern" json:"pattern"`
	PrimaryMuscles   []string        `toml:"primary_muscles" json:"primaryMuscles"`
	SecondaryMuscles []string        `toml:"secondary_muscles" json:"secondaryMuscles"`
	Equipment        []Equipment     `toml:"equipment" json:"equipment"`

	// Difficulty and TechnicalComplexity are on a 1-10 scale.
	Difficulty          float64 `toml:"difficulty" json:"difficulty"`
	TechnicalComplexity float64 `toml:"technical_complexity" json:"technicalComplexity"`

	// JointRisk values are in [0,1] per tracked joint.
	JointRisk map[Joint]float64 `toml:"joint_risk" json:"jointRisk"`

	FatigueCost    float64 `toml:"fatigue_cost" json:"fatigueCost"`
	RecoveryDemand float64 `toml:"recovery_demand" json:"recoveryDemand"`
	NeuralDemand   float64 `toml:"neural_demand" json:"neuralDemand"`

	// StrengthCarryover / HypertrophyCarryover in [0,1]: how well the
	// exercise correlates with strength / hypertrophy outcomes.
	StrengthCarryover    float64 `toml:"strength_carryover" json:"strengthCarryover"`
	HypertrophyCarryover float64 `toml:"hypertrophy_carryover" json:"hypertrophyCarryover"`

	Contraindications []InjuryTag `toml:"contraindications" json:"contraindications"`
	Alternatives      []string    `toml:"alternatives" json:"alternatives"`
}

// AvgJointRisk returns the mean of all per-joint risk values.
func (p Profile) AvgJointRisk() float64 {
	if len(p.JointRisk) == 0 {
		return 0
	}
	var sum float64
	for _, r := range p.JointRisk {
		sum += r
	}
	return sum / float64(len(p.JointRisk))
}

func (p Profile) HasContraindication(tag InjuryTag) bool {
	for _, c := range p.Contraindications {
		if c == tag {
			return true
		}
	}
	return false
}

// EquipmentAvailable reports whether the profile can be performed with the
// given equipment. Bodyweight-only exercises need nothing.
func (p Profile) EquipmentAvailable(available map[Equipment]bool) bool {
	for _, eq := range p.Equipment {
		if eq == EquipmentBodyweight {
			continue
		}
		if !available[eq] {
			return false
		}
	}
	return true
}

// Catalog is an immutable, id-keyed registry of exercise profiles,
// shared read-only across all analysis calls.
type Catalog struct {
	profiles map[string]Profile
	ids      []string
}

func New(profiles ...Profile) (*Catalog, error) {
	c := &Catalog{
		profiles: make(map[string]Profile, len(profiles)),
	}
	for _, p := range profiles {
		if p.ID == "" {
			return nil, fmt.Errorf("profile [%s] has empty id", p.Name)
		}
		if _, ok := c.profiles[p.ID]; ok {
			return nil, fmt.Errorf("duplicate profile id: %s", p.ID)
		}
		c.profiles[p.ID] = p
		c.ids = append(c.ids, p.ID)
	}
	sort.Strings(c.ids)
	return c, nil
}

type tomlProfiles struct {
	Exercises []Profile `toml:"exercises"`
}

// NewFromTOML builds a catalog from the compiled-in defaults extended with
// the profiles found in the given TOML file. File profiles with an already
// known id override the default one.
func NewFromTOML(path string) (*Catalog, error) {
	var extra tomlProfiles
	if _, err := toml.DecodeFile(path, &extra); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}

	byID := make(map[string]Profile)
	var ordered []string
	for _, p := range defaultProfiles {
		byID[p.ID] = p
		ordered = append(ordered, p.ID)
	}
	for _, p := range extra.Exercises {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog file: profile [%s] has empty id", p.Name)
		}
		if _, known := byID[p.ID]; !known {
			ordered = append(ordered, p.ID)
		}
		byID[p.ID] = p
	}

	all := make([]Profile, 0, len(ordered))
	for _, id := range ordered {
		all = append(all, byID[id])
	}
	return New(all...)
}

// Default returns the catalog built from the compiled-in profiles.
func Default() *Catalog {
	c, err := New(defaultProfiles...)
	if err != nil {
		// defaultProfiles are compile-time data, a failure here is a bug
		panic(err)
	}
	return c
}

func (c *Catalog) Get(id string) (Profile, bool) {
	p, ok := c.profiles[id]
	return p, ok
}

func (c *Catalog) Len() int {
	return len(c.profiles)
}

// SamePattern returns all profiles sharing the given movement pattern,
// ordered by id for deterministic iteration.
func (c *Catalog) SamePattern(pattern MovementPattern) []Profile {
	var out []Profile
	for _, id := range c.ids {
		if p := c.profiles[id]; p.Pattern == pattern {
			out = append(out, p)
		}
	}
	return out
}

// All returns every profile, ordered by id.
func (c *Catalog) All() []Profile {
	out := make([]Profile, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.profiles[id])
	}
	return out
}
