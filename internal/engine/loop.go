package engine

import (
	"context"
	"time"

	"github.com/SrKotaka/Space-Shooter/internal/core"
)

// EventSource yields the raw events that arrived since the last poll.
type EventSource interface {
	Poll() []core.Event
}

// EventSourceFunc adapts a function to EventSource.
type EventSourceFunc func() []core.Event

// Poll calls f.
func (f EventSourceFunc) Poll() []core.Event { return f() }

// Presenter shows a finished frame. It may be nil.
type Presenter func(s Surface) error

// Run drives the fixed-rate frame loop until Quit is called, a quit event
// arrives or ctx is cancelled. Settings are flushed before it returns.
func (a *App) Run(ctx context.Context, src EventSource, s Surface, present Presenter) error {
	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	a.logger.Info("frame loop started", "fps", a.cfg.FPS)
	for a.running {
		select {
		case <-ctx.Done():
			a.Quit()
			return ctx.Err()
		case <-ticker.C:
		}

		a.Step(src.Poll(), s)
		if present != nil && a.running {
			if err := present(s); err != nil {
				a.HandleError(err)
			}
		}
	}
	return nil
}
