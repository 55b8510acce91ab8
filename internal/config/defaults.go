package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in tunables. The embedded YAML
// carries the same values.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: PlayerConfig{
			Lives:          3,
			Friction:       0.8,
			Acceleration:   1,
			MarginX:        10,
			MarginY:        25,
			SpawnOffset:    100,
			ShotCooldown:   10,
			BulletSpeed:    10,
			Invulnerable:   60,
			DeathFrames:    240,
			BlinkInterval:  4,
			SideShotSpread: 10,
		},
		Power: PowerConfig{
			TwinAt:   10,
			SpreadAt: 25,
		},
		Scoring: ScoringConfig{
			Hit:          10,
			Kill:         100,
			Pickup:       50,
			ChaseDivisor: 20,
		},
		Pickup: PickupConfig{
			FallSpeed:    2,
			HomingRange:  100,
			HomingSpeed:  5,
			CollectRange: 25,
		},
		Enemy: EnemyConfig{
			ShotSpeed:          7,
			ShotInterval:       60,
			AppearShotSpeed:    4,
			AppearShotInterval: 30,
			WalkShotSpeed:      7,
			AlignBand:          25,
		},
		World: WorldConfig{
			TutorialFrames: 120,
			StarInterval:   5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				ShotSpeedMultiplier: 0.75,
				FireRateMultiplier:  0.5,
			},
		},
	}
}
