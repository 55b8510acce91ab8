// Package shooter implements the space shooter: the menu and settings
// screens, and the gameplay simulation with its ship, enemies, scripted
// enemy layouts, projectiles, particles and pickups.
package shooter

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/SrKotaka/Space-Shooter/internal/assets"
	"github.com/SrKotaka/Space-Shooter/internal/config"
	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
)

// SimOptions configures a simulation.
type SimOptions struct {
	Size    core.Vector2
	Input   *core.Input
	Config  config.ShooterConfig
	Rand    *rand.Rand
	Logger  *log.Logger
	OnError func(error)
	// OnGameOver runs once, when the defeated ship's death timer expires.
	OnGameOver func(s *Sim)
}

// Sim is the gameplay context every gameplay object receives. It owns the
// three object worlds and all run bookkeeping.
type Sim struct {
	Size  core.Vector2
	Input *core.Input
	Cfg   config.ShooterConfig

	// Objects holds the ship, ambient particles and pickups.
	Objects     *engine.World[*Sim]
	Projectiles *engine.World[*Sim]
	Enemies     *engine.World[*Sim]

	Player *Player
	Layout Layout

	Score      int
	DrawnScore int
	// Tutorial counts the remaining tutorial frames.
	Tutorial int
	Frames   int

	rng        *rand.Rand
	diff       *config.DifficultyManager
	logger     *log.Logger
	onGameOver func(*Sim)
	starTimer  int
	over       bool
}

// NewSim builds a simulation with the ship placed near the bottom center
// and the first enemy layout already spawned.
func NewSim(opts SimOptions) *Sim {
	if opts.Input == nil {
		opts.Input = core.NewInput()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Size.IsZero() {
		opts.Size = core.Vec(core.DefaultWidth, core.DefaultHeight)
	}

	s := &Sim{
		Size:       opts.Size,
		Input:      opts.Input,
		Cfg:        opts.Config,
		Tutorial:   opts.Config.World.TutorialFrames,
		rng:        opts.Rand,
		diff:       config.NewDifficultyManager(opts.Config.Difficulty),
		logger:     opts.Logger,
		onGameOver: opts.OnGameOver,
	}
	s.Objects = engine.NewWorld(s, opts.OnError)
	s.Projectiles = engine.NewWorld(s, opts.OnError)
	s.Enemies = engine.NewWorld(s, opts.OnError)

	s.Player = NewPlayer(core.Vec(s.Size.X/2, s.Size.Y-opts.Config.Player.SpawnOffset), opts.Config.Player)
	s.Objects.Spawn(s.Player)
	s.SetLayout(NewLayout1(s))
	return s
}

// Rand returns the simulation's random source.
func (s *Sim) Rand() *rand.Rand { return s.rng }

// SetLayout replaces the current enemy layout.
func (s *Sim) SetLayout(l Layout) {
	if s.Layout != nil {
		s.logger.Debug("enemy layout finished", "layout", s.Layout.Name(), "frame", s.Frames)
	}
	s.Layout = l
}

// Spawn helpers keep each kind in its own world.
func (s *Sim) spawnObject(o engine.Object[*Sim]) { s.Objects.Spawn(o) }

func (s *Sim) spawnProjectile(p *Projectile) { s.Projectiles.Spawn(p) }

func (s *Sim) spawnEnemy(e *Enemy) { s.Enemies.Spawn(e) }

// AddScore adds to the true score; the drawn score follows over the next
// frames.
func (s *Sim) AddScore(n int) { s.Score += n }

// Update runs one simulation frame. During the tutorial only the ambient
// objects move; enemies, projectiles and collisions wait.
func (s *Sim) Update() {
	s.Frames++
	s.spawnStars()
	s.Objects.Update()
	s.chaseScore()

	if s.Tutorial > 0 {
		s.Tutorial--
		return
	}

	s.Layout.Update(s)
	s.updateProjectiles()
	s.updateEnemies()
}

func (s *Sim) spawnStars() {
	s.starTimer++
	if s.starTimer < s.Cfg.World.StarInterval {
		return
	}
	s.starTimer = 0
	s.spawnObject(NewStar(s))
}

// chaseScore moves the drawn score a twentieth of the way to the true
// score, by at least one, never past it.
func (s *Sim) chaseScore() {
	if s.DrawnScore == s.Score {
		return
	}
	step := int(math.RoundToEven(float64(s.Score-s.DrawnScore) / s.Cfg.Scoring.ChaseDivisor))
	s.DrawnScore += max(step, 1)
	if s.DrawnScore > s.Score {
		s.DrawnScore = s.Score
	}
}

// updateProjectiles moves every projectile and resolves its hits.
// Friendly projectiles only test enemies and hostile ones only the ship.
func (s *Sim) updateProjectiles() {
	s.Projectiles.Each(func(o engine.Object[*Sim]) {
		p := o.(*Projectile)
		p.Update(s)
		if p.Dead() {
			return
		}
		if !p.Friendly {
			if p.Hitbox().Intersects(s.Player.Hitbox()) {
				s.Player.OnHit(s, p)
			}
			return
		}
		// The first hit spends the bullet, but every enemy it overlaps
		// this frame still takes the hit.
		s.Enemies.Each(func(eo engine.Object[*Sim]) {
			e := eo.(*Enemy)
			if p.Hitbox().Intersects(e.Hitbox()) {
				e.OnHit(s, p)
			}
		})
	})
	s.Projectiles.Compact()
}

// updateEnemies runs enemy behavior and body collisions with the ship.
// Enemies killed by projectiles this frame are already gone.
func (s *Sim) updateEnemies() {
	s.Enemies.Each(func(o engine.Object[*Sim]) {
		e := o.(*Enemy)
		e.Update(s)
		if !e.Dead() && e.Hitbox().Intersects(s.Player.Hitbox()) {
			s.Player.OnHit(s, e)
		}
	})
	s.Enemies.Compact()
}

// gameOver fires the game-over callback once.
func (s *Sim) gameOver() {
	if s.over {
		return
	}
	s.over = true
	s.logger.Info("run over", "score", s.Score, "power", s.Player.Power, "frames", s.Frames)
	if s.onGameOver != nil {
		s.onGameOver(s)
	}
}

// Over reports whether the run has ended.
func (s *Sim) Over() bool { return s.over }

// shotSpeed scales an enemy fire speed by the difficulty level.
func (s *Sim) shotSpeed(base float64) float64 {
	return s.diff.ShotSpeed(base, s.Score, s.Frames)
}

func (s *Sim) shotInterval(base int) int {
	return s.diff.ShotInterval(base, s.Score, s.Frames)
}

// Draw paints background, world, ship and HUD in that order. While the
// tutorial runs only the tutorial card is shown.
func (s *Sim) Draw(r *engine.Renderer) {
	r.Fill(core.Black)
	center := s.Size.Div(2)
	if s.Tutorial > 0 {
		r.DrawImageCentered(assets.Tutorial, center)
		return
	}

	s.Objects.Draw(r)
	s.Projectiles.Draw(r)
	s.Enemies.Draw(r)

	p := s.Player
	switch {
	case p.Defeated:
		r.DrawTextCentered("Game Over", center, core.White, assets.Monospace60)
	case p.Visible():
		r.DrawImageCentered(assets.Ship, p.Position)
	}
	s.drawHUD(r)
}
