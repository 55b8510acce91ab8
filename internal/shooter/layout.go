package shooter

import "github.com/SrKotaka/Space-Shooter/internal/core"

// Layout is a timed enemy spawn script. The current layout is advanced
// once per gameplay frame and may replace itself with the next one.
//
// The sequence is Layout1, Layout2, Layout3. Layout3 never hands over, so
// a long run ends up in its walker stream indefinitely.
type Layout interface {
	Name() string
	Update(s *Sim)
}

// spawnRow spawns n AppearShoot enemies evenly across the screen width,
// just above the top edge.
func spawnRow(s *Sim, n int) {
	step := s.Size.X / float64(n+1)
	for i := 1; i <= n; i++ {
		s.spawnEnemy(NewEnemy(EnemyAppear, core.Vec(step*float64(i), -50)))
	}
}

// Layout1 opens with three AppearShoot enemies, then rows of four and
// five.
type Layout1 struct {
	timer int
}

// NewLayout1 spawns the opening row.
func NewLayout1(s *Sim) *Layout1 {
	spawnRow(s, 3)
	return &Layout1{}
}

func (l *Layout1) Name() string { return "layout1" }

func (l *Layout1) Update(s *Sim) {
	l.timer++
	switch l.timer {
	case 200:
		spawnRow(s, 4)
	case 400:
		spawnRow(s, 5)
	case 600:
		s.SetLayout(NewLayout2())
	}
}

// Layout2 sends a pair of walkers down both edges every 100 frames while
// alternating rows of two and three AppearShoot enemies.
type Layout2 struct {
	timer, walkTimer int
}

func NewLayout2() *Layout2 { return &Layout2{} }

func (l *Layout2) Name() string { return "layout2" }

func (l *Layout2) Update(s *Sim) {
	l.timer++
	l.walkTimer++
	if l.walkTimer == 100 {
		l.walkTimer = 0
		s.spawnEnemy(NewEnemy(EnemyWalk, core.Vec(50, 0)))
		s.spawnEnemy(NewEnemy(EnemyWalk, core.Vec(s.Size.X-50, 0)))
	}

	switch l.timer {
	case 200, 600:
		spawnRow(s, 2)
	case 400, 800:
		spawnRow(s, 3)
	case 1000:
		s.SetLayout(NewLayout3())
	}
}

// Layout3 drops a walker every 75 frames on alternating edges and sweeps
// seven AppearShoot enemies left to right.
type Layout3 struct {
	timer, walkTimer int
	left             bool
}

func NewLayout3() *Layout3 { return &Layout3{left: true} }

func (l *Layout3) Name() string { return "layout3" }

func (l *Layout3) Update(s *Sim) {
	l.timer++
	l.walkTimer++
	if l.walkTimer == 75 {
		l.walkTimer = 0
		x := s.Size.X - 50
		if l.left {
			x = 50
		}
		s.spawnEnemy(NewEnemy(EnemyWalk, core.Vec(x, 0)))
		l.left = !l.left
	}

	// One enemy every 25 frames from t=75 to t=225, at eighths of the width.
	if l.timer >= 75 && l.timer <= 225 && l.timer%25 == 0 {
		k := float64((l.timer - 50) / 25)
		s.spawnEnemy(NewEnemy(EnemyAppear, core.Vec(s.Size.X/8*k, -50)))
	}
}
