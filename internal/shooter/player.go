package shooter

import (
	"github.com/SrKotaka/Space-Shooter/internal/config"
	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
)

// Damager is anything that can hurt: a projectile or an enemy body.
type Damager interface {
	Heading() core.Vector2
	Dead() bool
	Destroy()
}

// Player is the ship.
type Player struct {
	engine.Base[*Sim]

	Position core.Vector2
	Velocity core.Vector2
	Lives    int
	Power    int
	Cooldown int
	Immune   int
	// Defeated is set when the last life is lost. The ship stays in the
	// world, frozen, until the death timer runs out.
	Defeated  bool
	DeadTimer int

	cfg config.PlayerConfig
}

// NewPlayer creates a ship at pos.
func NewPlayer(pos core.Vector2, cfg config.PlayerConfig) *Player {
	return &Player{Position: pos, Lives: cfg.Lives, cfg: cfg}
}

// Hitbox is a 20x35 box offset up from the ship's position.
func (p *Player) Hitbox() core.Rectangle {
	return core.Rectangle{Pos: p.Position.Sub(core.Vec(10, 15)), Size: core.Vec(20, 35)}
}

// Visible implements the invulnerability blink.
func (p *Player) Visible() bool {
	if p.Defeated {
		return false
	}
	return p.cfg.BlinkInterval <= 0 || p.Immune%p.cfg.BlinkInterval == 0
}

func (p *Player) Update(s *Sim) {
	if p.Defeated {
		p.DeadTimer++
		if p.DeadTimer >= p.cfg.DeathFrames {
			s.gameOver()
		}
		return
	}

	p.Position = p.Position.Add(p.Velocity)
	p.Velocity = p.Velocity.Mul(p.cfg.Friction)
	if p.Immune > 0 {
		p.Immune--
	}
	if p.Cooldown > 0 {
		p.Cooldown--
	}

	kb := s.Input.Keyboard
	accel := p.cfg.Acceleration
	if kb.IsDown(core.KeyLeft) || kb.IsDown(core.KeyA) {
		p.Velocity.X -= accel
	}
	if kb.IsDown(core.KeyRight) || kb.IsDown(core.KeyD) {
		p.Velocity.X += accel
	}
	if kb.IsDown(core.KeyUp) || kb.IsDown(core.KeyW) {
		p.Velocity.Y -= accel
	}
	if kb.IsDown(core.KeyDown) || kb.IsDown(core.KeyS) {
		p.Velocity.Y += accel
	}

	mx, my := p.cfg.MarginX, p.cfg.MarginY
	p.Position.X = core.ClampF(p.Position.X, mx, s.Size.X-mx)
	p.Position.Y = core.ClampF(p.Position.Y, my, s.Size.Y-my)

	if kb.IsDown(core.KeySpace) && p.Cooldown == 0 {
		p.fire(s)
		p.Cooldown = p.cfg.ShotCooldown
	}
}

// fire spawns one, two or three bullets depending on the power tier.
func (p *Player) fire(s *Sim) {
	muzzle := p.Position.Add(core.Vec(0, -40))
	up := core.Vec(0, -p.cfg.BulletSpeed)
	left, right := muzzle.Add(core.Vec(-10, 0)), muzzle.Add(core.Vec(10, 0))

	switch tiers := s.Cfg.Power; {
	case p.Power < tiers.TwinAt:
		s.spawnProjectile(NewPlayerBullet(muzzle, up))
	case p.Power < tiers.SpreadAt:
		s.spawnProjectile(NewPlayerBullet(left, up))
		s.spawnProjectile(NewPlayerBullet(right, up))
	default:
		spread := p.cfg.SideShotSpread
		s.spawnProjectile(NewPlayerBullet(left, core.Vec(-spread, up.Y)))
		s.spawnProjectile(NewPlayerBullet(right, core.Vec(spread, up.Y)))
		s.spawnProjectile(NewPlayerBullet(muzzle, up))
	}
}

// OnHit takes one life unless the ship is invulnerable or already
// defeated, in which case the damager passes through untouched.
func (p *Player) OnHit(s *Sim, d Damager) {
	if p.Immune > 0 || p.Defeated {
		return
	}

	s.burst(p.Position, d.Heading(), core.PlayerTint)
	p.Immune = p.cfg.Invulnerable
	if !d.Dead() {
		d.Destroy()
	}
	p.Lives--

	if p.Lives <= 0 {
		p.Defeated = true
		p.Velocity = core.Vector2{}
		s.ring(p.Position, core.PlayerTint)
	}
}
