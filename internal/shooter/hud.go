package shooter

import (
	"strconv"

	"github.com/SrKotaka/Space-Shooter/internal/assets"
	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
)

// drawHUD paints one heart per life along the top left and the drawn score
// near the top right.
func (s *Sim) drawHUD(r *engine.Renderer) {
	for i := range s.Player.Lives {
		r.DrawImageCentered(assets.Heart, core.Vec(40+float64(i)*60, 40))
	}
	r.DrawTextCentered(strconv.Itoa(s.DrawnScore), core.Vec(s.Size.X-100, 40), core.White, assets.Monospace60)
}

// Snapshot is a compact summary of a simulation, used to compare runs.
type Snapshot struct {
	Frame       int
	Score       int
	DrawnScore  int
	Lives       int
	Power       int
	Defeated    bool
	PlayerX     int
	PlayerY     int
	Layout      string
	Enemies     int
	Projectiles int
	Objects     int
}

// Snapshot returns the current state summary.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Frame:       s.Frames,
		Score:       s.Score,
		DrawnScore:  s.DrawnScore,
		Lives:       s.Player.Lives,
		Power:       s.Player.Power,
		Defeated:    s.Player.Defeated,
		PlayerX:     int(s.Player.Position.X),
		PlayerY:     int(s.Player.Position.Y),
		Layout:      s.Layout.Name(),
		Enemies:     s.Enemies.Len(),
		Projectiles: s.Projectiles.Len(),
		Objects:     s.Objects.Len(),
	}
}
