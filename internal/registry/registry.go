// Package registry provides a global registry of frontends.
// Frontends register themselves in init() functions, allowing the CLI to
// discover them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/SrKotaka/Space-Shooter/internal/engine"
)

// Builder assembles a ready-to-run App on top of the frontend's display.
type Builder func(display engine.Display) (*engine.App, error)

// RunOptions is what the CLI hands a frontend.
type RunOptions struct {
	Build  Builder
	Logger *log.Logger
	// MaxFrames stops the loop after this many frames; 0 runs until quit.
	MaxFrames int
	// Input replaces device input on frontends that have none.
	Input engine.EventSource
}

// Frontend owns a display, an event source and a clock, and drives an App.
// Frontends contain no game logic.
type Frontend interface {
	// ID returns a unique identifier used on the command line (e.g. "tui").
	ID() string

	// Title returns a human-readable name for listings.
	Title() string

	// Run blocks until the app quits or ctx is cancelled.
	Run(ctx context.Context, opts RunOptions) error
}

// Info contains metadata about a registered frontend.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new frontend instance.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered frontends, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a frontend by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}
	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
