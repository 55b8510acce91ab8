package shooter

import (
	"math"

	"github.com/SrKotaka/Space-Shooter/internal/assets"
	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
)

// EnemyKind selects an enemy's behavior script.
type EnemyKind int

const (
	// EnemyBasic drifts with its velocity and fires at the ship every
	// shot interval.
	EnemyBasic EnemyKind = iota
	// EnemyAppear slides in from the top, holds and fires, backs out and
	// removes itself.
	EnemyAppear
	// EnemyWalk falls down the screen and fires a single shot the first
	// time it lines up with the ship.
	EnemyWalk
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemyAppear:
		return "appear"
	case EnemyWalk:
		return "walk"
	default:
		return "unknown"
	}
}

// AppearShoot phase boundaries, in frames since spawn.
const (
	appearEnterEnd = 50
	appearHoldEnd  = 200
	appearLeaveEnd = 250
	appearDrag     = 0.1
	walkAccelEnd   = 50
	walkAccel      = 0.1
)

// Enemy is one hostile ship. Behavior is chosen by Kind.
type Enemy struct {
	engine.Base[*Sim]

	Kind     EnemyKind
	Center   core.Vector2
	Velocity core.Vector2
	Size     core.Vector2
	Health   int
	// Shots counts projectiles fired since spawn.
	Shots int

	shootTimer  int
	actionTimer int
}

// NewEnemy creates an enemy of the given kind at center.
func NewEnemy(kind EnemyKind, center core.Vector2) *Enemy {
	e := &Enemy{Kind: kind, Center: center, Size: core.Vec(90, 75), Health: 1}
	switch kind {
	case EnemyAppear:
		e.Velocity = core.Vec(0, 5)
		e.Health = 3
	case EnemyWalk:
		e.Health = 2
	}
	return e
}

func (e *Enemy) Hitbox() core.Rectangle { return core.RectCentered(e.Center, e.Size) }
func (e *Enemy) Heading() core.Vector2  { return e.Velocity }

// Fired reports whether a walker has used its single shot.
func (e *Enemy) Fired() bool { return e.shootTimer != 0 }

func (e *Enemy) Update(s *Sim) {
	switch e.Kind {
	case EnemyAppear:
		e.updateAppear(s)
	case EnemyWalk:
		e.updateWalk(s)
	default:
		e.updateBasic(s)
	}
}

func (e *Enemy) updateBasic(s *Sim) {
	e.Center = e.Center.Add(e.Velocity)
	e.shootTimer++
	if e.shootTimer >= s.shotInterval(s.Cfg.Enemy.ShotInterval) {
		e.fireAt(s, s.Player.Position, s.Cfg.Enemy.ShotSpeed)
		e.shootTimer = 0
	}
	if e.belowScreen(s) {
		e.Destroy()
	}
}

func (e *Enemy) updateAppear(s *Sim) {
	e.actionTimer++
	switch {
	case e.actionTimer < appearEnterEnd:
		e.Velocity.Y -= appearDrag
	case e.actionTimer < appearHoldEnd:
		e.shootTimer++
		if e.shootTimer >= s.shotInterval(s.Cfg.Enemy.AppearShotInterval) {
			e.fireAt(s, s.Player.Position, s.Cfg.Enemy.AppearShotSpeed)
			e.shootTimer = 0
		}
	case e.actionTimer < appearLeaveEnd:
		e.Velocity.Y -= appearDrag
	default:
		e.Destroy()
		return
	}
	e.Center = e.Center.Add(e.Velocity)
}

func (e *Enemy) updateWalk(s *Sim) {
	e.actionTimer++
	if e.actionTimer < walkAccelEnd {
		e.Velocity.Y += walkAccel
	}

	target := s.Player.Position
	band := s.Cfg.Enemy.AlignBand
	if e.shootTimer == 0 && math.Abs(e.Center.Y-target.Y) < band {
		dir := core.Vec(-1, 0)
		if target.X > e.Center.X {
			dir = core.Vec(1, 0)
		}
		e.fire(s, dir, s.Cfg.Enemy.WalkShotSpeed)
		e.shootTimer = 1
	}
	if e.shootTimer == 0 && math.Abs(e.Center.X-target.X) < band {
		dir := core.Vec(0, -1)
		if target.Y > e.Center.Y {
			dir = core.Vec(0, 1)
		}
		e.fire(s, dir, s.Cfg.Enemy.WalkShotSpeed)
		e.shootTimer = 1
	}

	e.Center = e.Center.Add(e.Velocity)
	if e.belowScreen(s) {
		e.Destroy()
	}
}

func (e *Enemy) belowScreen(s *Sim) bool {
	return e.Center.Y > s.Size.Y+e.Size.Y/2
}

// fireAt aims at target. A target exactly on the enemy's center gets a
// straight-down shot.
func (e *Enemy) fireAt(s *Sim, target core.Vector2, speed float64) {
	dir := target.Sub(e.Center)
	if dir.IsZero() {
		dir = core.Vec(0, 1)
	}
	e.fire(s, dir.Normalized(), speed)
}

// fire launches a hostile bullet from the enemy's bottom edge.
func (e *Enemy) fire(s *Sim, dir core.Vector2, speed float64) {
	muzzle := e.Center.Add(core.Vec(0, e.Size.Y/2))
	s.spawnProjectile(NewEnemyBullet(muzzle, dir.Mul(s.shotSpeed(speed))))
	e.Shots++
}

// OnHit consumes the projectile and takes one health. A kill drops a power
// pickup where the enemy was and scores more than a hit.
func (e *Enemy) OnHit(s *Sim, p *Projectile) {
	if !p.Dead() {
		p.Destroy()
	}
	e.Health--
	s.burst(e.Center, p.Heading(), core.EnemyTint)

	if e.Health > 0 {
		s.AddScore(s.Cfg.Scoring.Hit)
		return
	}
	e.Destroy()
	s.ring(e.Center, core.EnemyTint)
	s.spawnObject(NewPowerPickup(e.Center))
	s.AddScore(s.Cfg.Scoring.Kill)
}

func (e *Enemy) Draw(_ *Sim, r *engine.Renderer) {
	r.DrawImageCentered(assets.Enemy, e.Center)
}
