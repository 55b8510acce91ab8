package headless

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
	"github.com/SrKotaka/Space-Shooter/internal/registry"
)

type countingState struct {
	updates int
	events  []core.Event
	quitAt  int
	app     *engine.App
}

func (s *countingState) Initialize()              {}
func (s *countingState) HandleEvent(e core.Event) { s.events = append(s.events, e) }
func (s *countingState) Draw(*engine.Renderer)    {}
func (s *countingState) Update() {
	s.updates++
	if s.quitAt > 0 && s.updates == s.quitAt {
		s.app.Quit()
	}
}

func builder(st *countingState, out **engine.App) registry.Builder {
	return func(display engine.Display) (*engine.App, error) {
		app := engine.NewApp(engine.Options{Display: display, Logger: log.New(io.Discard)})
		st.app = app
		app.SetState(st)
		*out = app
		return app, nil
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("headless") {
		t.Fatal("headless frontend should be registered")
	}
}

func TestRunMaxFrames(t *testing.T) {
	st := &countingState{}
	var app *engine.App
	err := Frontend{}.Run(context.Background(), registry.RunOptions{
		Build:     builder(st, &app),
		MaxFrames: 25,
	})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if st.updates != 25 {
		t.Errorf("updates = %d, expected 25", st.updates)
	}
	if app.Running() {
		t.Error("app should be stopped after the run")
	}
}

func TestRunStopsWhenAppQuits(t *testing.T) {
	st := &countingState{quitAt: 7}
	var app *engine.App
	err := Frontend{}.Run(context.Background(), registry.RunOptions{
		Build:     builder(st, &app),
		MaxFrames: 100,
	})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if st.updates != 7 {
		t.Errorf("updates = %d, expected 7", st.updates)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := &countingState{}
	var app *engine.App
	err := Frontend{}.Run(ctx, registry.RunOptions{
		Build:     builder(st, &app),
		MaxFrames: 10,
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
	if st.updates != 0 {
		t.Errorf("updates = %d, expected 0", st.updates)
	}
}

func TestRunBuildError(t *testing.T) {
	boom := errors.New("boom")
	err := Frontend{}.Run(context.Background(), registry.RunOptions{
		Build: func(engine.Display) (*engine.App, error) { return nil, boom },
	})
	if !errors.Is(err, boom) {
		t.Errorf("Run() = %v, expected %v", err, boom)
	}
}

func TestPilotScript(t *testing.T) {
	start := core.Vec(400, 310)
	p := NewPilot(start, 2)

	first := p.Poll()
	if len(first) != 2 || first[1] != core.ButtonDown(core.ButtonLeft, start) {
		t.Errorf("frame 1 = %+v, expected a press at %v", first, start)
	}
	if got := p.Poll(); len(got) != 1 || got[0] != core.ButtonUp(core.ButtonLeft, start) {
		t.Errorf("frame 2 = %+v, expected a release", got)
	}

	wantDirs := []core.Key{core.KeyLeft, core.KeyLeft, core.KeyRight, core.KeyRight, core.KeyLeft}
	for i, want := range wantDirs {
		got := p.Poll()
		if len(got) != 2 || got[0] != core.KeyPress(core.KeySpace) || got[1] != core.KeyPress(want) {
			t.Errorf("frame %d = %+v, expected space and %v", i+3, got, want)
		}
	}
}

func TestPilotDrivesApp(t *testing.T) {
	st := &countingState{}
	var app *engine.App
	err := Frontend{}.Run(context.Background(), registry.RunOptions{
		Build:     builder(st, &app),
		MaxFrames: 5,
		Input:     NewPilot(core.Vec(1, 1), 10),
	})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	// Pointer move and press, release, then space and a direction for three
	// frames.
	if len(st.events) != 2+1+6 {
		t.Errorf("events = %d, expected 9", len(st.events))
	}
}
