// Package config provides YAML-based gameplay tunables and difficulty
// management for the shooter.
package config

import "fmt"

// ShooterConfig contains every gameplay tunable.
type ShooterConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Power      PowerConfig      `yaml:"power"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Pickup     PickupConfig     `yaml:"pickup"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	World      WorldConfig      `yaml:"world"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines movement, weapon and damage parameters for the ship.
type PlayerConfig struct {
	Lives          int     `yaml:"lives"`
	Friction       float64 `yaml:"friction"`     // velocity multiplier per frame
	Acceleration   float64 `yaml:"acceleration"` // per held direction per frame
	MarginX        float64 `yaml:"margin_x"`     // half-extent kept inside the screen
	MarginY        float64 `yaml:"margin_y"`
	SpawnOffset    float64 `yaml:"spawn_offset"` // distance from the bottom edge
	ShotCooldown   int     `yaml:"shot_cooldown"`
	BulletSpeed    float64 `yaml:"bullet_speed"`
	Invulnerable   int     `yaml:"invulnerable_frames"`
	DeathFrames    int     `yaml:"death_frames"`
	BlinkInterval  int     `yaml:"blink_interval"`
	SideShotSpread float64 `yaml:"side_shot_spread"` // horizontal speed of the outer spread bullets
}

// PowerConfig defines the weapon tiers.
type PowerConfig struct {
	TwinAt   int `yaml:"twin_at"`   // two parallel bullets from this power
	SpreadAt int `yaml:"spread_at"` // three-way spread from this power
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	Hit    int `yaml:"hit"`
	Kill   int `yaml:"kill"`
	Pickup int `yaml:"pickup"`
	// ChaseDivisor controls how fast the drawn score catches up.
	ChaseDivisor float64 `yaml:"chase_divisor"`
}

// PickupConfig defines power pickup motion.
type PickupConfig struct {
	FallSpeed    float64 `yaml:"fall_speed"`
	HomingRange  float64 `yaml:"homing_range"`
	HomingSpeed  float64 `yaml:"homing_speed"`
	CollectRange float64 `yaml:"collect_range"`
}

// EnemyConfig defines enemy fire.
type EnemyConfig struct {
	ShotSpeed          float64 `yaml:"shot_speed"`
	ShotInterval       int     `yaml:"shot_interval"`
	AppearShotSpeed    float64 `yaml:"appear_shot_speed"`
	AppearShotInterval int     `yaml:"appear_shot_interval"`
	WalkShotSpeed      float64 `yaml:"walk_shot_speed"`
	AlignBand          float64 `yaml:"align_band"`
}

// WorldConfig defines ambient timing.
type WorldConfig struct {
	TutorialFrames int `yaml:"tutorial_frames"`
	StarInterval   int `yaml:"star_interval"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ShotSpeedMultiplier float64 `yaml:"shot_speed_multiplier"` // Added to enemy shot speed at max difficulty
	FireRateMultiplier  float64 `yaml:"fire_rate_multiplier"`  // Added to enemy fire rate at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets from easiest to the fixed base values.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. An empty name is DifficultyFixed,
// which keeps the base values.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
