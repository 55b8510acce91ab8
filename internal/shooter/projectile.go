package shooter

import (
	"github.com/SrKotaka/Space-Shooter/internal/assets"
	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
)

// Projectile is a bullet. Friendly bullets come from the ship and only
// damage enemies; hostile ones only damage the ship.
type Projectile struct {
	engine.Base[*Sim]

	Center   core.Vector2
	Velocity core.Vector2
	Size     core.Vector2
	Friendly bool
}

// NewPlayerBullet creates a 10x33 friendly bullet.
func NewPlayerBullet(center, velocity core.Vector2) *Projectile {
	return &Projectile{Center: center, Velocity: velocity, Size: core.Vec(10, 33), Friendly: true}
}

// NewEnemyBullet creates a 20x20 hostile bullet.
func NewEnemyBullet(center, velocity core.Vector2) *Projectile {
	return &Projectile{Center: center, Velocity: velocity, Size: core.Vec(20, 20)}
}

func (p *Projectile) Hitbox() core.Rectangle { return core.RectCentered(p.Center, p.Size) }
func (p *Projectile) Heading() core.Vector2  { return p.Velocity }

// Update moves the bullet and removes it once it leaves the screen.
// Friendly bullets only ever leave through the top.
func (p *Projectile) Update(s *Sim) {
	p.Center = p.Center.Add(p.Velocity)

	half := p.Size.Div(2)
	var gone bool
	if p.Friendly {
		gone = p.Center.Y < -half.Y
	} else {
		gone = p.Center.Y > s.Size.Y+half.Y || p.Center.Y < -half.Y ||
			p.Center.X > s.Size.X+half.X || p.Center.X < -half.X
	}
	if gone {
		p.Destroy()
	}
}

func (p *Projectile) Draw(_ *Sim, r *engine.Renderer) {
	if p.Friendly {
		r.DrawImageCentered(assets.Shot, p.Center)
		return
	}
	r.DrawCircle(p.Center, p.Size.X/2, core.EnemyShot)
}
