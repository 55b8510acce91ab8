package shooter

import (
	"github.com/google/uuid"

	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
	"github.com/SrKotaka/Space-Shooter/internal/storage"
)

// Recorder persists finished runs.
type Recorder interface {
	SaveRun(r storage.Run) (int64, error)
}

// Gameplay is the state running one simulation. It ends by recording the
// run and returning to the menu.
type Gameplay struct {
	game  *Game
	RunID string
	Sim   *Sim
}

// NewGameplay creates a fresh run.
func NewGameplay(g *Game) *Gameplay {
	gp := &Gameplay{game: g, RunID: uuid.NewString()}
	gp.Sim = NewSim(SimOptions{
		Size:       g.App.Resolution(),
		Input:      g.App.Input(),
		Config:     g.Config,
		Rand:       g.nextRand(),
		Logger:     g.App.Logger().With("run", gp.RunID[:8]),
		OnError:    g.App.HandleError,
		OnGameOver: gp.finish,
	})
	return gp
}

func (gp *Gameplay) Initialize() {
	gp.game.App.Logger().Info("run started", "run", gp.RunID, "mode", gp.game.Mode)
	gp.Sim.Objects.Initialize()
}

func (gp *Gameplay) HandleEvent(e core.Event) { gp.Sim.Objects.HandleEvent(e) }
func (gp *Gameplay) Update()                  { gp.Sim.Update() }
func (gp *Gameplay) Draw(r *engine.Renderer)  { gp.Sim.Draw(r) }

// CanPause lets P freeze the run.
func (gp *Gameplay) CanPause() bool { return true }

// finish records the run, then hands control back to the menu. Recording
// failures are logged and never block the transition.
func (gp *Gameplay) finish(s *Sim) {
	g := gp.game
	if g.Recorder != nil {
		run := storage.Run{
			RunID:  gp.RunID,
			Mode:   g.Mode,
			Score:  s.Score,
			Power:  s.Player.Power,
			Frames: s.Frames,
		}
		if _, err := g.Recorder.SaveRun(run); err != nil {
			g.App.HandleError(err)
		}
	}
	g.App.SetState(NewMenu(g))
}
