package engine

import (
	"errors"
	"fmt"

	"github.com/SrKotaka/Space-Shooter/internal/core"
)

// Lifecycle errors reported to the world's error handler.
var (
	ErrNotRegistered    = errors.New("engine: object not registered in this world")
	ErrAlreadyDestroyed = errors.New("engine: object already destroyed")
)

// Object is anything living in a World. C is the context the owning state
// hands to every callback (the simulation for gameplay, the widget host
// for menus). Embed Base to get no-op hooks and override only what you need.
type Object[C any] interface {
	Initialize(ctx C)
	HandleEvent(ctx C, e core.Event)
	Update(ctx C)
	Draw(ctx C, r *Renderer)
	// OnDestroy runs once, right after the object is marked dead.
	OnDestroy(ctx C) error

	base() *Base[C]
}

// Base carries the bookkeeping every Object needs.
type Base[C any] struct {
	world *World[C]
	self  Object[C]
	dead  bool
}

func (b *Base[C]) base() *Base[C] { return b }

func (*Base[C]) Initialize(C)              {}
func (*Base[C]) HandleEvent(C, core.Event) {}
func (*Base[C]) Update(C)                  {}
func (*Base[C]) Draw(C, *Renderer)         {}
func (*Base[C]) OnDestroy(C) error         { return nil }

// Dead reports whether the object has been destroyed.
func (b *Base[C]) Dead() bool {
	return b.dead
}

// Destroy removes the object from its world. Calling it on an object that
// was never spawned is a programming error and panics.
func (b *Base[C]) Destroy() {
	if b.world == nil {
		panic("engine: Destroy on an object that was never spawned")
	}
	b.world.Destroy(b.self)
}

// World owns an ordered collection of objects for one state.
//
// Objects live in a slot slice and carry a dead flag. Passes iterate the
// slots that existed when the pass began and skip dead ones, so objects can
// be destroyed or spawned from inside any callback. Dead slots are
// compacted away once per frame, after the update pass.
type World[C any] struct {
	ctx     C
	objects []Object[C]
	dead    int
	onError func(error)
}

// NewWorld creates an empty world. onError receives lifecycle failures;
// nil discards them.
func NewWorld[C any](ctx C, onError func(error)) *World[C] {
	if onError == nil {
		onError = func(error) {}
	}
	return &World[C]{ctx: ctx, onError: onError}
}

// Context returns the context handed to callbacks.
func (w *World[C]) Context() C {
	return w.ctx
}

// Spawn registers o at the end of the collection and returns it.
func (w *World[C]) Spawn(o Object[C]) Object[C] {
	b := o.base()
	if b.world == w && !b.dead {
		return o
	}
	b.world = w
	b.self = o
	b.dead = false
	w.objects = append(w.objects, o)
	return o
}

// Destroy marks o dead and runs its teardown hook. Failures go to the
// error handler and never interrupt the caller.
func (w *World[C]) Destroy(o Object[C]) {
	b := o.base()
	if b.world != w {
		w.onError(fmt.Errorf("destroy %T: %w", o, ErrNotRegistered))
		return
	}
	if b.dead {
		w.onError(fmt.Errorf("destroy %T: %w", o, ErrAlreadyDestroyed))
		return
	}
	b.dead = true
	w.dead++

	if err := w.teardown(o); err != nil {
		w.onError(fmt.Errorf("destroy %T: %w", o, err))
	}
}

// teardown calls OnDestroy, turning a panic into an error.
func (w *World[C]) teardown(o Object[C]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("teardown panicked: %v", r)
		}
	}()
	return o.OnDestroy(w.ctx)
}

// Each calls fn for every object alive at the start of the pass, skipping
// any that die before their turn.
func (w *World[C]) Each(fn func(Object[C])) {
	n := len(w.objects)
	for i := 0; i < n; i++ {
		o := w.objects[i]
		if o.base().dead {
			continue
		}
		fn(o)
	}
}

// Initialize forwards Initialize to every live object.
func (w *World[C]) Initialize() {
	w.Each(func(o Object[C]) { o.Initialize(w.ctx) })
}

// HandleEvent forwards an event to every live object.
func (w *World[C]) HandleEvent(e core.Event) {
	w.Each(func(o Object[C]) { o.HandleEvent(w.ctx, e) })
}

// Update runs one update pass and then compacts dead slots.
func (w *World[C]) Update() {
	w.Each(func(o Object[C]) { o.Update(w.ctx) })
	w.Compact()
}

// Draw forwards Draw to every live object in insertion order.
func (w *World[C]) Draw(r *Renderer) {
	w.Each(func(o Object[C]) { o.Draw(w.ctx, r) })
}

// Compact drops dead objects, keeping the order of the rest.
func (w *World[C]) Compact() {
	if w.dead == 0 {
		return
	}
	kept := w.objects[:0]
	for _, o := range w.objects {
		if !o.base().dead {
			kept = append(kept, o)
		}
	}
	clear(w.objects[len(kept):])
	w.objects = kept
	w.dead = 0
}

// Len returns the number of live objects.
func (w *World[C]) Len() int {
	return len(w.objects) - w.dead
}

// Objects returns the live objects in insertion order.
func (w *World[C]) Objects() []Object[C] {
	out := make([]Object[C], 0, w.Len())
	for _, o := range w.objects {
		if !o.base().dead {
			out = append(out, o)
		}
	}
	return out
}

// Clear destroys every live object.
func (w *World[C]) Clear() {
	w.Each(func(o Object[C]) { w.Destroy(o) })
	w.Compact()
}
