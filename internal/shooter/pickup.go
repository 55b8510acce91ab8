package shooter

import (
	"github.com/SrKotaka/Space-Shooter/internal/assets"
	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
)

// PowerPickup falls from a destroyed enemy and homes in on the ship once
// it gets close.
type PowerPickup struct {
	engine.Base[*Sim]

	Center core.Vector2
}

func NewPowerPickup(center core.Vector2) *PowerPickup {
	return &PowerPickup{Center: center}
}

func (pp *PowerPickup) Update(s *Sim) {
	cfg := s.Cfg.Pickup
	pp.Center.Y += cfg.FallSpeed
	if pp.Center.Y > s.Size.Y+50 {
		pp.Destroy()
		return
	}

	toShip := s.Player.Position.Sub(pp.Center)
	if d := toShip.Length(); d < cfg.HomingRange && d > 0 {
		pp.Center = pp.Center.Add(toShip.Normalized().Mul(cfg.HomingSpeed))
	}

	if pp.Center.Distance(s.Player.Position) < cfg.CollectRange {
		s.Player.Power++
		s.AddScore(s.Cfg.Scoring.Pickup)
		pp.Destroy()
	}
}

func (pp *PowerPickup) Draw(_ *Sim, r *engine.Renderer) {
	r.DrawImageCentered(assets.Power, pp.Center)
}
