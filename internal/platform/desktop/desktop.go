// Package desktop plays the shooter in a native window with Ebitengine.
package desktop

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
	"github.com/SrKotaka/Space-Shooter/internal/registry"
)

// Frontend opens a window sized to the app's resolution.
type Frontend struct{}

func init() {
	registry.Register("desktop", func() registry.Frontend { return Frontend{} })
}

func (Frontend) ID() string    { return "desktop" }
func (Frontend) Title() string { return "Desktop window" }

// window forwards display requests to ebiten. They are honoured both
// before and during RunGame.
type window struct{}

func (window) SetTitle(title string) { ebiten.SetWindowTitle(title) }
func (window) SetSize(w, h int)      { ebiten.SetWindowSize(w, h) }
func (window) SetFullscreen(on bool) { ebiten.SetFullscreen(on) }

// Run builds the app and runs the ebiten loop until the app quits, the
// window is closed or ctx is cancelled.
func (Frontend) Run(ctx context.Context, opts registry.RunOptions) error {
	ebiten.SetWindowClosingHandled(true)

	app, err := opts.Build(window{})
	if err != nil {
		return err
	}
	ebiten.SetTPS(app.Config().FPS)

	g := &game{
		ctx:       ctx,
		app:       app,
		frame:     engine.NewRecordingSurface(app.Config().Width, app.Config().Height),
		sprites:   newSpriteCache(),
		maxFrames: opts.MaxFrames,
		src:       opts.Input,
	}
	if opts.Logger != nil {
		opts.Logger.Info("desktop frontend started", "width", app.Config().Width, "height", app.Config().Height)
	}

	err = ebiten.RunGame(g)
	app.Quit()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// game adapts an App to ebiten's Update/Draw split. Update runs a whole
// app frame into a recording; Draw replays the last recording on screen.
type game struct {
	ctx       context.Context
	app       *engine.App
	input     inputState
	src       engine.EventSource
	frame     *engine.RecordingSurface
	sprites   *spriteCache
	frames    int
	maxFrames int
	warmed    bool
}

func (g *game) Update() error {
	events := g.input.poll()
	if g.src != nil {
		events = append(events, g.src.Poll()...)
	}
	if ebiten.IsWindowBeingClosed() || g.ctx.Err() != nil {
		events = append(events, core.Quit())
	}

	cfg := g.app.Config()
	g.frame.Reset()
	g.frame.W, g.frame.H = cfg.Width, cfg.Height
	g.app.Step(events, g.frame)
	g.frames++

	if g.maxFrames > 0 && g.frames >= g.maxFrames {
		g.app.Quit()
	}
	if !g.app.Running() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if !g.warmed {
		g.sprites.warm()
		g.warmed = true
	}
	g.frame.Replay(imageSurface{dst: screen, sprites: g.sprites})
}

// Layout keeps the logical screen at the app's resolution; ebiten scales
// it to the window.
func (g *game) Layout(int, int) (int, int) {
	cfg := g.app.Config()
	return cfg.Width, cfg.Height
}
