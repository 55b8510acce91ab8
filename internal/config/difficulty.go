package config

import "math"

// DifficultyManager scales enemy fire by score or elapsed frames.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/frames.
// With progression disabled the level stays at zero so base values apply.
func (d *DifficultyManager) Level(score int, frames int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(frames) / maxAt
	default:
		return d.initialLevel
	}
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// ShotSpeed returns the enemy projectile speed for the current level.
// At the top level it reaches base * (1 + ShotSpeedMultiplier).
func (d *DifficultyManager) ShotSpeed(base float64, score int, frames int) float64 {
	return base * (1 + d.Level(score, frames)*d.cfg.Scaling.ShotSpeedMultiplier)
}

// ShotInterval shortens an enemy fire interval, in frames. At the top level
// enemies fire (1 + FireRateMultiplier) times as often. Never below 1.
func (d *DifficultyManager) ShotInterval(base int, score int, frames int) int {
	rate := 1 + d.Level(score, frames)*d.cfg.Scaling.FireRateMultiplier
	return max(int(math.Round(float64(base)/rate)), 1)
}

func clampF(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
