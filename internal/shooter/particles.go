package shooter

import (
	"math"

	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
)

// Star is an ambient background particle falling at half its radius per
// frame.
type Star struct {
	engine.Base[*Sim]

	Center core.Vector2
	Radius float64
	Color  core.RGB
}

// NewStar creates a star at a random column just above the screen.
func NewStar(s *Sim) *Star {
	rng := s.Rand()
	channel := func() uint8 { return uint8(200 + rng.Intn(56)) }
	return &Star{
		Center: core.Vec(float64(rng.Intn(int(s.Size.X)+1)), -10),
		Radius: float64(2 + rng.Intn(3)),
		Color:  core.RGB{R: channel(), G: channel(), B: channel()},
	}
}

func (st *Star) Update(s *Sim) {
	st.Center.Y += st.Radius / 2
	if st.Center.Y > s.Size.Y+st.Radius {
		st.Destroy()
	}
}

func (st *Star) Draw(_ *Sim, r *engine.Renderer) {
	r.DrawCircle(st.Center, st.Radius, st.Color)
}

// Explosion is a shrinking particle moving along Direction.
type Explosion struct {
	engine.Base[*Sim]

	Center    core.Vector2
	Radius    float64
	Color     core.RGB
	Direction core.Vector2
}

const (
	explosionSpeed  = 3
	explosionShrink = 0.5
)

func (x *Explosion) Update(*Sim) {
	x.Center = x.Center.Add(x.Direction.Mul(explosionSpeed))
	x.Radius -= explosionShrink
	if x.Radius <= 0 {
		x.Destroy()
	}
}

func (x *Explosion) Draw(_ *Sim, r *engine.Renderer) {
	r.DrawCircle(x.Center, x.Radius, x.Color)
}

// burst emits 30 particles fanning out within 15 degrees of heading.
func (s *Sim) burst(at, heading core.Vector2, color core.RGB) {
	base := heading.Angle()
	for range 30 {
		jitter := float64(s.rng.Intn(31)-15) * math.Pi / 180
		speed := float64(1 + s.rng.Intn(4))
		s.spawnObject(&Explosion{
			Center:    at,
			Radius:    float64(5 + s.rng.Intn(4)),
			Color:     color,
			Direction: core.FromAngle(base + jitter).Mul(speed),
		})
	}
}

// ring emits two concentric 36-point rings, the inner one twice as fast.
func (s *Sim) ring(at core.Vector2, color core.RGB) {
	for i := range 36 {
		dir := core.FromAngle(float64(i*10) * math.Pi / 180)
		s.spawnObject(&Explosion{Center: at, Radius: 15, Color: color, Direction: dir})
		s.spawnObject(&Explosion{Center: at, Radius: 10, Color: color, Direction: dir.Mul(2)})
	}
}
