// Package headless runs the app without a window or terminal. It is used
// for simulations, benchmarks and tests.
package headless

import (
	"context"

	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
	"github.com/SrKotaka/Space-Shooter/internal/registry"
)

// Frontend draws nowhere. With a frame limit it steps as fast as it can;
// without one it keeps the app's frame rate.
type Frontend struct{}

func init() {
	registry.Register("headless", func() registry.Frontend { return Frontend{} })
}

func (Frontend) ID() string    { return "headless" }
func (Frontend) Title() string { return "Headless" }

// Run builds the app and steps it until it quits, ctx is cancelled or
// MaxFrames frames have run.
func (Frontend) Run(ctx context.Context, opts registry.RunOptions) error {
	app, err := opts.Build(engine.NopDisplay{})
	if err != nil {
		return err
	}

	src := opts.Input
	if src == nil {
		src = engine.EventSourceFunc(func() []core.Event { return nil })
	}
	cfg := app.Config()
	surface := engine.NopSurface{W: cfg.Width, H: cfg.Height}

	if opts.MaxFrames <= 0 {
		return app.Run(ctx, src, surface, nil)
	}

	defer app.Quit()
	for range opts.MaxFrames {
		if err := ctx.Err(); err != nil {
			return err
		}
		app.Step(src.Poll(), surface)
		if !app.Running() {
			break
		}
	}
	if opts.Logger != nil {
		opts.Logger.Info("headless run finished", "frames", app.Frames())
	}
	return nil
}

// Pilot is scripted input: it clicks start once, then keeps firing while
// sweeping left and right.
type Pilot struct {
	start core.Vector2
	sweep int
	frame int
}

// NewPilot clicks at start and changes direction every sweep frames.
func NewPilot(start core.Vector2, sweep int) *Pilot {
	return &Pilot{start: start, sweep: max(sweep, 1)}
}

// Poll returns the events of the next frame.
func (p *Pilot) Poll() []core.Event {
	p.frame++
	switch p.frame {
	case 1:
		return []core.Event{core.PointerMoved(p.start), core.ButtonDown(core.ButtonLeft, p.start)}
	case 2:
		return []core.Event{core.ButtonUp(core.ButtonLeft, p.start)}
	}

	dir := core.KeyLeft
	if ((p.frame-3)/p.sweep)%2 == 1 {
		dir = core.KeyRight
	}
	return []core.Event{core.KeyPress(core.KeySpace), core.KeyPress(dir)}
}
