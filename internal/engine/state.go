package engine

import "github.com/SrKotaka/Space-Shooter/internal/core"

// State is one top-level mode of the application (menu, settings,
// gameplay). Exactly one state is current at a time.
type State interface {
	// Initialize runs right after the state becomes current.
	Initialize()
	HandleEvent(e core.Event)
	Update()
	Draw(r *Renderer)
}

// Pausable is implemented by states that honour the pause key.
type Pausable interface {
	CanPause() bool
}

// Scene is a State backed by a World. States embed it and add their own
// drawing and logic around the forwarded passes.
type Scene[C any] struct {
	App   *App
	World *World[C]
}

// NewScene creates a scene whose world hands ctx to its objects and
// reports lifecycle failures to the application's error handler.
func NewScene[C any](app *App, ctx C) Scene[C] {
	return Scene[C]{
		App:   app,
		World: NewWorld(ctx, app.HandleError),
	}
}

// Spawn registers an object in the scene's world.
func (s *Scene[C]) Spawn(o Object[C]) Object[C] {
	return s.World.Spawn(o)
}

func (s *Scene[C]) Initialize()              { s.World.Initialize() }
func (s *Scene[C]) HandleEvent(e core.Event) { s.World.HandleEvent(e) }
func (s *Scene[C]) Update()                  { s.World.Update() }
func (s *Scene[C]) Draw(r *Renderer)         { s.World.Draw(r) }
