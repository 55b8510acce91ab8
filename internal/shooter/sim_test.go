package shooter

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/SrKotaka/Space-Shooter/internal/assets"
	"github.com/SrKotaka/Space-Shooter/internal/config"
	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// newTestSim returns a simulation past its tutorial with Layout1 spawned.
func newTestSim(t *testing.T) *Sim {
	t.Helper()
	cfg := config.DefaultShooterConfig()
	cfg.World.TutorialFrames = 0
	return NewSim(SimOptions{
		Config:  cfg,
		Rand:    rand.New(rand.NewSource(42)),
		Logger:  quietLogger(),
		OnError: func(err error) { t.Errorf("unexpected lifecycle error: %v", err) },
	})
}

type idleLayout struct{}

func (idleLayout) Name() string { return "idle" }
func (idleLayout) Update(*Sim)  {}

// emptySim is a simulation with no scripted enemies.
func emptySim(t *testing.T) *Sim {
	t.Helper()
	s := newTestSim(t)
	s.Enemies.Clear()
	s.Layout = idleLayout{}
	return s
}

func objectsOf[T any](w *engine.World[*Sim]) []T {
	var out []T
	for _, o := range w.Objects() {
		if v, ok := o.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func TestDrawnScoreChase(t *testing.T) {
	s := emptySim(t)
	s.Score = 1000

	s.chaseScore()
	if s.DrawnScore != 50 {
		t.Fatalf("DrawnScore after one step = %d, expected 50", s.DrawnScore)
	}

	for i := 0; i < 500 && s.DrawnScore != s.Score; i++ {
		s.chaseScore()
		if s.DrawnScore > s.Score {
			t.Fatalf("DrawnScore overshot: %d > %d", s.DrawnScore, s.Score)
		}
	}
	if s.DrawnScore != 1000 {
		t.Errorf("DrawnScore = %d, expected exactly 1000", s.DrawnScore)
	}
}

func TestDrawnScoreChaseSmallGaps(t *testing.T) {
	tests := []struct {
		drawn, score, want int
	}{
		{0, 1, 1},  // rounds to zero, minimum step is one
		{0, 10, 1}, // 0.5 rounds to even
		{0, 30, 2}, // 1.5 rounds to even
		{0, 50, 2}, // 2.5 rounds to even
		{90, 100, 91},
		{100, 100, 100},
	}

	for _, tc := range tests {
		s := emptySim(t)
		s.DrawnScore, s.Score = tc.drawn, tc.score
		s.chaseScore()
		if s.DrawnScore != tc.want {
			t.Errorf("chase(%d -> %d) = %d, expected %d", tc.drawn, tc.score, s.DrawnScore, tc.want)
		}
	}
}

func TestPlayerInvulnerabilityWindow(t *testing.T) {
	s := emptySim(t)
	p := s.Player

	hit := func() {
		b := NewEnemyBullet(p.Position, core.Vec(0, 7))
		s.spawnProjectile(b)
		p.OnHit(s, b)
	}

	// Frame 1: first hit.
	hit()
	if p.Lives != 2 {
		t.Fatalf("Lives after first hit = %d, expected 2", p.Lives)
	}

	for frame := 2; frame <= 61; frame++ {
		p.Update(s)
		hit()
		want := 2
		if frame == 61 {
			want = 1
		}
		if p.Lives != want {
			t.Fatalf("frame %d: Lives = %d, expected %d", frame, p.Lives, want)
		}
	}
}

func TestPlayerIgnoredHitLeavesProjectile(t *testing.T) {
	s := emptySim(t)
	s.Player.Immune = 10

	b := NewEnemyBullet(s.Player.Position, core.Vec(0, 7))
	s.spawnProjectile(b)
	s.Player.OnHit(s, b)

	if b.Dead() {
		t.Error("bullet should pass through an invulnerable ship")
	}
	if s.Player.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", s.Player.Lives)
	}
}

func TestPlayerDefeatAndGameOver(t *testing.T) {
	s := emptySim(t)
	calls := 0
	s.onGameOver = func(*Sim) { calls++ }
	s.Player.Lives = 1

	b := NewEnemyBullet(s.Player.Position, core.Vec(0, 7))
	s.spawnProjectile(b)
	s.Player.OnHit(s, b)

	if !s.Player.Defeated {
		t.Fatal("ship should be defeated after its last life")
	}
	// 30 burst particles plus two 36-point rings.
	if got := len(objectsOf[*Explosion](s.Objects)); got != 30+72 {
		t.Errorf("explosion particles = %d, expected 102", got)
	}

	for i := 0; i < 300; i++ {
		s.Player.Update(s)
	}
	if calls != 1 {
		t.Errorf("game over fired %d times, expected 1", calls)
	}
	if s.Player.DeadTimer < s.Cfg.Player.DeathFrames {
		t.Errorf("DeadTimer = %d, expected at least %d", s.Player.DeadTimer, s.Cfg.Player.DeathFrames)
	}
}

func TestEnemyLethalHit(t *testing.T) {
	s := emptySim(t)
	e := NewEnemy(EnemyBasic, core.Vec(200, 200))
	s.spawnEnemy(e)
	b := NewPlayerBullet(core.Vec(200, 260), core.Vec(0, -10))
	s.spawnProjectile(b)

	s.updateProjectiles()

	if !e.Dead() {
		t.Fatal("enemy with health 1 should die from one hit")
	}
	if !b.Dead() {
		t.Error("bullet should be consumed by the hit")
	}
	if s.Score != 100 {
		t.Errorf("Score = %d, expected 100", s.Score)
	}
	pickups := objectsOf[*PowerPickup](s.Objects)
	if len(pickups) != 1 {
		t.Fatalf("pickups = %d, expected 1", len(pickups))
	}
	if pickups[0].Center != e.Center {
		t.Errorf("pickup at %v, expected %v", pickups[0].Center, e.Center)
	}
	if s.Projectiles.Len() != 0 {
		t.Errorf("Projectiles.Len() = %d, expected 0", s.Projectiles.Len())
	}
}

func TestEnemyNonLethalHit(t *testing.T) {
	s := emptySim(t)
	e := NewEnemy(EnemyAppear, core.Vec(200, 200))
	s.spawnEnemy(e)
	s.spawnProjectile(NewPlayerBullet(core.Vec(200, 210), core.Vec(0, -10)))

	s.updateProjectiles()

	if e.Dead() || e.Health != 2 {
		t.Errorf("enemy dead=%v health=%d, expected alive with 2", e.Dead(), e.Health)
	}
	if s.Score != 10 {
		t.Errorf("Score = %d, expected 10", s.Score)
	}
	if n := len(objectsOf[*PowerPickup](s.Objects)); n != 0 {
		t.Errorf("pickups = %d, expected none", n)
	}
}

func TestProjectileHitsEveryOverlappingEnemy(t *testing.T) {
	s := emptySim(t)
	a := NewEnemy(EnemyAppear, core.Vec(200, 200))
	b := NewEnemy(EnemyAppear, core.Vec(200, 200))
	s.spawnEnemy(a)
	s.spawnEnemy(b)
	bullet := NewPlayerBullet(core.Vec(200, 210), core.Vec(0, -10))
	s.spawnProjectile(bullet)

	s.updateProjectiles()

	if a.Health != 2 || b.Health != 2 {
		t.Errorf("healths = (%d, %d), expected (2, 2)", a.Health, b.Health)
	}
	if s.Score != 20 {
		t.Errorf("Score = %d, expected 20", s.Score)
	}
	if !bullet.Dead() {
		t.Error("bullet should be spent by the hit")
	}
	if s.Projectiles.Len() != 0 {
		t.Errorf("Projectiles.Len() = %d, expected 0", s.Projectiles.Len())
	}
}

func TestProjectileKillsEveryOverlappingEnemy(t *testing.T) {
	s := emptySim(t)
	a := NewEnemy(EnemyBasic, core.Vec(200, 200))
	b := NewEnemy(EnemyBasic, core.Vec(200, 200))
	s.spawnEnemy(a)
	s.spawnEnemy(b)
	s.spawnProjectile(NewPlayerBullet(core.Vec(200, 210), core.Vec(0, -10)))

	s.updateProjectiles()

	if !a.Dead() || !b.Dead() {
		t.Errorf("dead = (%v, %v), expected both enemies killed", a.Dead(), b.Dead())
	}
	if s.Score != 200 {
		t.Errorf("Score = %d, expected 200", s.Score)
	}
	if n := len(objectsOf[*PowerPickup](s.Objects)); n != 2 {
		t.Errorf("pickups = %d, expected 2", n)
	}
}

func TestFriendlyFlagSelectsTargets(t *testing.T) {
	s := emptySim(t)
	e := NewEnemy(EnemyAppear, core.Vec(200, 200))
	s.spawnEnemy(e)
	s.spawnProjectile(NewEnemyBullet(core.Vec(200, 200), core.Vec(0, 1)))
	s.spawnProjectile(NewPlayerBullet(s.Player.Position, core.Vec(0, -1)))

	s.updateProjectiles()

	if e.Health != 3 {
		t.Errorf("hostile bullet damaged an enemy: health %d", e.Health)
	}
	if s.Player.Lives != 3 {
		t.Errorf("friendly bullet damaged the ship: lives %d", s.Player.Lives)
	}
	if s.Projectiles.Len() != 2 {
		t.Errorf("Projectiles.Len() = %d, expected 2", s.Projectiles.Len())
	}
}

func TestEnemyBodyCollision(t *testing.T) {
	s := emptySim(t)
	e := NewEnemy(EnemyBasic, s.Player.Position)
	s.spawnEnemy(e)

	s.updateEnemies()

	if s.Player.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", s.Player.Lives)
	}
	if !e.Dead() {
		t.Error("rammed enemy should be destroyed")
	}
	if s.Score != 0 || len(objectsOf[*PowerPickup](s.Objects)) != 0 {
		t.Error("ramming should not score or drop a pickup")
	}
}

func TestKilledEnemyCannotRam(t *testing.T) {
	s := emptySim(t)
	e := NewEnemy(EnemyBasic, s.Player.Position)
	s.spawnEnemy(e)
	s.spawnProjectile(NewPlayerBullet(s.Player.Position.Add(core.Vec(0, 10)), core.Vec(0, -10)))

	s.updateProjectiles()
	s.updateEnemies()

	if !e.Dead() {
		t.Fatal("enemy should be killed by the bullet")
	}
	if s.Player.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", s.Player.Lives)
	}
}

func TestWalkShootFiresAtMostOnce(t *testing.T) {
	s := emptySim(t)
	// Spawned in the ship's column so it lines up immediately.
	e := NewEnemy(EnemyWalk, core.Vec(s.Player.Position.X, 0))
	s.spawnEnemy(e)

	for i := 0; i < 400 && !e.Dead(); i++ {
		e.Update(s)
		// Keep the ship lined up on both axes the whole way down.
		s.Player.Position.Y = e.Center.Y
	}

	if e.Shots != 1 {
		t.Errorf("Shots = %d, expected 1", e.Shots)
	}
	if !e.Fired() {
		t.Error("shot latch should stay set")
	}
	if !e.Dead() {
		t.Error("walker should remove itself below the screen")
	}
	shots := objectsOf[*Projectile](s.Projectiles)
	if len(shots) != 1 || shots[0].Velocity != core.Vec(0, 7) {
		t.Errorf("shots = %+v, expected one straight down at speed 7", shots)
	}
}

func TestWalkShootHorizontalAim(t *testing.T) {
	s := emptySim(t)
	s.Player.Position = core.Vec(100, 300)
	e := NewEnemy(EnemyWalk, core.Vec(700, 300))
	s.spawnEnemy(e)

	e.Update(s)

	shots := objectsOf[*Projectile](s.Projectiles)
	if len(shots) != 1 || shots[0].Velocity != core.Vec(-7, 0) {
		t.Errorf("shots = %+v, expected one to the left", shots)
	}
}

func TestAppearShootLifecycle(t *testing.T) {
	s := emptySim(t)
	e := NewEnemy(EnemyAppear, core.Vec(100, -50))
	s.spawnEnemy(e)

	for frame := 1; frame <= 250; frame++ {
		s.Update()
		if frame < 250 && e.Dead() {
			t.Fatalf("enemy died early at frame %d", frame)
		}
	}

	if !e.Dead() {
		t.Error("AppearShoot enemy should be dead after 250 frames")
	}
	if e.Shots != 5 {
		t.Errorf("Shots = %d, expected 5", e.Shots)
	}
}

func TestBasicEnemyFiresEverySixtyFrames(t *testing.T) {
	s := emptySim(t)
	e := NewEnemy(EnemyBasic, core.Vec(400, 100))
	s.spawnEnemy(e)

	for i := 0; i < 180; i++ {
		e.Update(s)
	}

	if e.Shots != 3 {
		t.Errorf("Shots = %d, expected 3", e.Shots)
	}
	shot := objectsOf[*Projectile](s.Projectiles)[0]
	if shot.Center != core.Vec(400, 137.5) {
		t.Errorf("muzzle = %v, expected the enemy's bottom edge", shot.Center)
	}
	if got := shot.Velocity.Length(); got < 6.999 || got > 7.001 {
		t.Errorf("shot speed = %v, expected 7", got)
	}
}

func TestEnemyAimFallsBackToStraightDown(t *testing.T) {
	s := emptySim(t)
	e := NewEnemy(EnemyBasic, s.Player.Position)
	s.spawnEnemy(e)

	e.fireAt(s, e.Center, 7)

	shot := objectsOf[*Projectile](s.Projectiles)[0]
	if shot.Velocity != core.Vec(0, 7) {
		t.Errorf("Velocity = %v, expected (0, 7)", shot.Velocity)
	}
}

func TestLayoutSequence(t *testing.T) {
	s := newTestSim(t)
	if s.Enemies.Len() != 3 {
		t.Fatalf("Layout1 opening row = %d, expected 3", s.Enemies.Len())
	}

	for i := 0; i < 600; i++ {
		s.Layout.Update(s)
	}
	if s.Layout.Name() != "layout2" {
		t.Fatalf("Layout = %s after 600 frames, expected layout2", s.Layout.Name())
	}
	if s.Enemies.Len() != 3+4+5 {
		t.Errorf("Layout1 spawned %d, expected 12", s.Enemies.Len())
	}

	for i := 0; i < 1000; i++ {
		s.Layout.Update(s)
	}
	if s.Layout.Name() != "layout3" {
		t.Fatalf("Layout = %s, expected layout3", s.Layout.Name())
	}
	walkers := 0
	for _, e := range objectsOf[*Enemy](s.Enemies) {
		if e.Kind == EnemyWalk {
			walkers++
		}
	}
	if walkers != 20 {
		t.Errorf("Layout2 walkers = %d, expected 20 (one pair per 100 frames)", walkers)
	}
	if s.Enemies.Len() != 12+20+10 {
		t.Errorf("enemies after Layout2 = %d, expected 42", s.Enemies.Len())
	}

	before := s.Enemies.Len()
	for i := 0; i < 5000; i++ {
		s.Layout.Update(s)
	}
	if s.Layout.Name() != "layout3" {
		t.Errorf("Layout3 should never hand over, got %s", s.Layout.Name())
	}
	// 7 sweepers and a walker every 75 frames.
	if got, want := s.Enemies.Len()-before, 7+5000/75; got != want {
		t.Errorf("Layout3 spawned %d, expected %d", got, want)
	}
}

func TestLayout3Positions(t *testing.T) {
	s := emptySim(t)
	s.Layout = NewLayout3()
	for i := 0; i < 225; i++ {
		s.Layout.Update(s)
	}

	var xs []float64
	var walkX []float64
	for _, e := range objectsOf[*Enemy](s.Enemies) {
		if e.Kind == EnemyAppear {
			xs = append(xs, e.Center.X)
		} else {
			walkX = append(walkX, e.Center.X)
		}
	}
	if len(xs) != 7 {
		t.Fatalf("appear enemies = %d, expected 7", len(xs))
	}
	for i, x := range xs {
		if want := 100 * float64(i+1); x != want {
			t.Errorf("enemy %d at x=%v, expected %v", i, x, want)
		}
	}
	if len(walkX) != 3 || walkX[0] != 50 || walkX[1] != 750 || walkX[2] != 50 {
		t.Errorf("walker columns = %v, expected [50 750 50]", walkX)
	}
}

func TestTutorialHoldsEnemies(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	s := NewSim(SimOptions{Config: cfg, Rand: rand.New(rand.NewSource(1)), Logger: quietLogger()})
	first := objectsOf[*Enemy](s.Enemies)[0]
	start := first.Center

	for i := 0; i < cfg.World.TutorialFrames; i++ {
		s.Update()
	}
	if first.Center != start {
		t.Errorf("enemy moved during the tutorial: %v -> %v", start, first.Center)
	}
	if s.Tutorial != 0 {
		t.Errorf("Tutorial = %d, expected 0", s.Tutorial)
	}
	if len(objectsOf[*Star](s.Objects)) == 0 {
		t.Error("stars should keep spawning during the tutorial")
	}

	s.Update()
	if first.Center == start {
		t.Error("enemies should move once the tutorial ends")
	}
}

func TestTutorialDrawsOnlyCard(t *testing.T) {
	s := NewSim(SimOptions{Config: config.DefaultShooterConfig(), Logger: quietLogger()})
	rec := engine.NewRecordingSurface(800, 600)
	s.Draw(engine.NewRenderer(rec))

	if len(rec.Calls) != 2 {
		t.Fatalf("calls = %d, expected fill and tutorial card", len(rec.Calls))
	}
	if rec.Calls[0].Op != engine.OpFill || rec.Calls[1].Image != assets.Tutorial {
		t.Errorf("calls = %+v", rec.Calls)
	}
	if rec.Calls[1].X != 150 || rec.Calls[1].Y != 190 {
		t.Errorf("tutorial card at (%d, %d), expected centered (150, 190)", rec.Calls[1].X, rec.Calls[1].Y)
	}
}

func TestDrawOrder(t *testing.T) {
	s := emptySim(t)
	star := &Star{Center: core.Vec(10, 10), Radius: 3, Color: core.RGB{R: 201, G: 202, B: 203}}
	s.spawnObject(star)
	s.spawnEnemy(NewEnemy(EnemyBasic, core.Vec(300, 100)))
	s.spawnProjectile(NewEnemyBullet(core.Vec(300, 300), core.Vec(0, 4)))

	rec := engine.NewRecordingSurface(800, 600)
	s.Draw(engine.NewRenderer(rec))

	idx := func(name string, pred func(engine.DrawCall) bool) int {
		i := rec.Index(pred)
		if i < 0 {
			t.Fatalf("%s not drawn", name)
		}
		return i
	}
	order := []int{
		idx("background", func(c engine.DrawCall) bool { return c.Op == engine.OpFill }),
		idx("star", func(c engine.DrawCall) bool { return c.Op == engine.OpCircle && c.Color == star.Color }),
		idx("bullet", func(c engine.DrawCall) bool { return c.Op == engine.OpCircle && c.Color == core.EnemyShot }),
		idx("enemy", func(c engine.DrawCall) bool { return c.Image == assets.Enemy }),
		idx("ship", func(c engine.DrawCall) bool { return c.Image == assets.Ship }),
		idx("hearts", func(c engine.DrawCall) bool { return c.Image == assets.Heart }),
		idx("score", func(c engine.DrawCall) bool { return c.Op == engine.OpText && c.Text == "0" }),
	}
	for i := 1; i < len(order); i++ {
		if order[i] <= order[i-1] {
			t.Errorf("draw order broken at step %d: %v", i, order)
		}
	}
	if n := rec.Count(engine.OpImage); n != 1+1+3 {
		t.Errorf("images = %d, expected enemy, ship and three hearts", n)
	}
}

func TestDrawBlinkAndGameOver(t *testing.T) {
	tests := []struct {
		name     string
		immune   int
		defeated bool
		wantShip bool
		wantText bool
	}{
		{"visible", 0, false, true, false},
		{"blink off", 3, false, false, false},
		{"blink on", 4, false, true, false},
		{"defeated", 0, true, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := emptySim(t)
			s.Player.Immune = tc.immune
			s.Player.Defeated = tc.defeated
			rec := engine.NewRecordingSurface(800, 600)
			s.Draw(engine.NewRenderer(rec))

			ship := rec.Index(func(c engine.DrawCall) bool { return c.Image == assets.Ship }) >= 0
			over := rec.Index(func(c engine.DrawCall) bool { return c.Text == "Game Over" }) >= 0
			if ship != tc.wantShip || over != tc.wantText {
				t.Errorf("ship=%v gameOver=%v, expected %v %v", ship, over, tc.wantShip, tc.wantText)
			}
		})
	}
}

func TestPlayerWeaponTiers(t *testing.T) {
	tests := []struct {
		power      int
		velocities []core.Vector2
	}{
		{0, []core.Vector2{{X: 0, Y: -10}}},
		{9, []core.Vector2{{X: 0, Y: -10}}},
		{10, []core.Vector2{{X: 0, Y: -10}, {X: 0, Y: -10}}},
		{25, []core.Vector2{{X: -10, Y: -10}, {X: 10, Y: -10}, {X: 0, Y: -10}}},
	}

	for _, tc := range tests {
		s := emptySim(t)
		s.Player.Power = tc.power
		s.Input.Handle(core.KeyPress(core.KeySpace))
		s.Player.Update(s)

		shots := objectsOf[*Projectile](s.Projectiles)
		if len(shots) != len(tc.velocities) {
			t.Errorf("power %d: %d bullets, expected %d", tc.power, len(shots), len(tc.velocities))
			continue
		}
		for i, v := range tc.velocities {
			if shots[i].Velocity != v || !shots[i].Friendly {
				t.Errorf("power %d bullet %d velocity %v, expected %v", tc.power, i, shots[i].Velocity, v)
			}
		}
		if s.Player.Cooldown != 10 {
			t.Errorf("Cooldown = %d, expected 10", s.Player.Cooldown)
		}
	}
}

func TestPlayerCooldownBlocksFire(t *testing.T) {
	s := emptySim(t)
	s.Input.Handle(core.KeyPress(core.KeySpace))

	for i := 0; i < 11; i++ {
		s.Player.Update(s)
	}
	if n := s.Projectiles.Len(); n != 2 {
		t.Errorf("bullets after 11 held frames = %d, expected 2", n)
	}
}

func TestPlayerMovementAndClamp(t *testing.T) {
	s := emptySim(t)
	s.Player.Position = core.Vec(12, 300)
	s.Input.Handle(core.KeyPress(core.KeyA))

	s.Player.Update(s)
	if s.Player.Velocity.X != -1 {
		t.Errorf("Velocity.X = %v, expected -1", s.Player.Velocity.X)
	}
	for i := 0; i < 10; i++ {
		s.Player.Update(s)
	}
	if s.Player.Position.X != 10 {
		t.Errorf("Position.X = %v, expected clamp at 10", s.Player.Position.X)
	}

	s.Input.Keyboard.Reset()
	s.Player.Position = core.Vec(400, 590)
	s.Player.Velocity = core.Vector2{}
	s.Player.Update(s)
	if s.Player.Position.Y != 575 {
		t.Errorf("Position.Y = %v, expected clamp at 575", s.Player.Position.Y)
	}
}

func TestPowerPickup(t *testing.T) {
	t.Run("homes and collects", func(t *testing.T) {
		s := emptySim(t)
		pp := NewPowerPickup(s.Player.Position.Add(core.Vec(0, -60)))
		s.spawnObject(pp)

		for i := 0; i < 30 && !pp.Dead(); i++ {
			pp.Update(s)
		}
		if !pp.Dead() {
			t.Fatal("pickup should be collected")
		}
		if s.Player.Power != 1 || s.Score != 50 {
			t.Errorf("power=%d score=%d, expected 1 and 50", s.Player.Power, s.Score)
		}
	})

	t.Run("falls off screen", func(t *testing.T) {
		s := emptySim(t)
		pp := NewPowerPickup(core.Vec(50, 649))
		s.spawnObject(pp)

		pp.Update(s)
		if !pp.Dead() {
			t.Error("pickup below the screen should be removed")
		}
		if s.Player.Power != 0 || s.Score != 0 {
			t.Error("missed pickup should have no effect")
		}
	})

	t.Run("out of range just falls", func(t *testing.T) {
		s := emptySim(t)
		pp := NewPowerPickup(core.Vec(50, 50))
		s.spawnObject(pp)

		pp.Update(s)
		if pp.Center != core.Vec(50, 52) {
			t.Errorf("Center = %v, expected (50, 52)", pp.Center)
		}
	})
}

func TestParticles(t *testing.T) {
	s := emptySim(t)
	x := &Explosion{Center: core.Vec(0, 0), Radius: 1, Direction: core.Vec(1, 0)}
	s.spawnObject(x)

	x.Update(s)
	if x.Center != core.Vec(3, 0) || x.Radius != 0.5 || x.Dead() {
		t.Errorf("after one frame: %+v", x)
	}
	x.Update(s)
	if !x.Dead() {
		t.Error("explosion should vanish at radius 0")
	}

	star := &Star{Center: core.Vec(5, 603), Radius: 4}
	s.spawnObject(star)
	star.Update(s)
	if !star.Dead() {
		t.Errorf("star at y=%v should be gone", star.Center.Y)
	}
}

func TestStarsSpawnOnCadence(t *testing.T) {
	s := emptySim(t)
	for i := 0; i < 50; i++ {
		s.spawnStars()
	}
	stars := objectsOf[*Star](s.Objects)
	if len(stars) != 10 {
		t.Fatalf("stars = %d, expected 10", len(stars))
	}
	for _, st := range stars {
		if st.Radius < 2 || st.Radius > 4 || st.Center.Y != -10 {
			t.Errorf("star out of range: %+v", st)
		}
		if st.Color.R < 200 || st.Color.G < 200 || st.Color.B < 200 {
			t.Errorf("star too dark: %+v", st.Color)
		}
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() Snapshot {
		s := NewSim(SimOptions{
			Config: config.DefaultShooterConfig(),
			Rand:   rand.New(rand.NewSource(7)),
			Logger: quietLogger(),
		})
		for i := 0; i < 900; i++ {
			s.Update()
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("runs differ:\n%+v\n%+v", a, b)
	}
	if a.Layout != "layout2" {
		t.Errorf("Layout = %s after 900 frames, expected layout2", a.Layout)
	}
}

func TestDifficultyScalesEnemyFire(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.World.TutorialFrames = 0
	cfg.Difficulty = config.DifficultyConfig{
		Enabled:     true,
		Progression: config.ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     config.ScalingConfig{ShotSpeedMultiplier: 1},
	}
	s := NewSim(SimOptions{Config: cfg, Logger: quietLogger()})
	s.Score = 1000
	e := NewEnemy(EnemyBasic, core.Vec(400, 100))
	s.spawnEnemy(e)

	e.fireAt(s, core.Vec(400, 500), 7)

	shots := objectsOf[*Projectile](s.Projectiles)
	if got := shots[len(shots)-1].Velocity; got != core.Vec(0, 14) {
		t.Errorf("Velocity = %v, expected doubled speed (0, 14)", got)
	}
}

func TestDifficultyShortensFireInterval(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.World.TutorialFrames = 0
	cfg.Difficulty = config.DifficultyConfig{
		Enabled:     true,
		Progression: config.ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     config.ScalingConfig{FireRateMultiplier: 1},
	}
	s := NewSim(SimOptions{Config: cfg, Logger: quietLogger()})
	s.Score = 1000
	e := NewEnemy(EnemyBasic, core.Vec(400, 100))
	s.spawnEnemy(e)

	before := s.Projectiles.Len()
	for range 60 {
		e.Update(s)
	}
	if got := s.Projectiles.Len() - before; got != 2 {
		t.Errorf("shots in 60 frames = %d, expected 2 at double fire rate", got)
	}
}
