package engine

import (
	"github.com/charmbracelet/log"

	"github.com/SrKotaka/Space-Shooter/internal/assets"
	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/settings"
)

// Display is the window a frontend owns. Terminal frontends implement it
// as a no-op.
type Display interface {
	SetTitle(title string)
	SetSize(w, h int)
	SetFullscreen(on bool)
}

// NopDisplay ignores all window requests.
type NopDisplay struct{}

func (NopDisplay) SetTitle(string)    {}
func (NopDisplay) SetSize(int, int)   {}
func (NopDisplay) SetFullscreen(bool) {}

// Options configures a new App.
type Options struct {
	Title    string
	Config   core.RuntimeConfig
	Settings *settings.Store // nil creates an unbound store
	Display  Display         // nil uses NopDisplay
	Logger   *log.Logger     // nil uses log.Default()
}

// App drives the frame loop: it owns the current state, the input
// snapshot, the settings store and the pause flag.
type App struct {
	title    string
	cfg      core.RuntimeConfig
	state    State
	input    *core.Input
	settings *settings.Store
	display  Display
	logger   *log.Logger
	paused   bool
	running  bool
	frames   uint64
}

// NewApp creates an application with no current state.
func NewApp(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Display == nil {
		opts.Display = NopDisplay{}
	}
	if opts.Settings == nil {
		opts.Settings = settings.New(opts.Logger)
	}
	if opts.Config.FPS <= 0 {
		opts.Config.FPS = core.DefaultFPS
	}
	if opts.Config.Width <= 0 || opts.Config.Height <= 0 {
		opts.Config.Width, opts.Config.Height = core.DefaultWidth, core.DefaultHeight
	}

	a := &App{
		title:    opts.Title,
		cfg:      opts.Config,
		input:    core.NewInput(),
		settings: opts.Settings,
		display:  opts.Display,
		logger:   opts.Logger,
		running:  true,
	}
	a.settings.SetErrorHandler(a.HandleError)
	a.display.SetTitle(a.title)
	a.display.SetSize(a.cfg.Width, a.cfg.Height)
	return a
}

// SetState makes s current and initializes it. The previous state gets no
// notification; anything it must persist has to happen before this call.
func (a *App) SetState(s State) {
	a.state = s
	a.paused = false
	a.state.Initialize()
}

// State returns the current state.
func (a *App) State() State { return a.state }

// Input returns the input snapshot.
func (a *App) Input() *core.Input { return a.input }

// Settings returns the settings store.
func (a *App) Settings() *settings.Store { return a.settings }

// Display returns the window collaborator.
func (a *App) Display() Display { return a.display }

// Logger returns the application logger.
func (a *App) Logger() *log.Logger { return a.logger }

// Config returns the runtime configuration.
func (a *App) Config() core.RuntimeConfig { return a.cfg }

// Resolution returns the world size.
func (a *App) Resolution() core.Vector2 { return a.cfg.Size() }

// SetResolution changes the world size and resizes the window.
func (a *App) SetResolution(w, h int) {
	a.cfg.Width, a.cfg.Height = w, h
	a.display.SetSize(w, h)
}

// Frames returns how many unpaused updates have run.
func (a *App) Frames() uint64 { return a.frames }

// Paused reports whether updates are suspended.
func (a *App) Paused() bool { return a.paused }

// SetPaused sets the pause flag.
func (a *App) SetPaused(p bool) { a.paused = p }

// Running reports whether the loop should keep going.
func (a *App) Running() bool { return a.running }

// Quit flushes settings and stops the loop.
func (a *App) Quit() {
	if !a.running {
		return
	}
	a.settings.Save()
	a.running = false
	a.logger.Info("quit requested", "frames", a.frames)
}

// HandleError is the single error sink for recoverable failures. It logs
// and lets the frame loop continue.
func (a *App) HandleError(err error) {
	if err == nil {
		return
	}
	a.logger.Error("recovered error", "error", err)
}

// HandleEvent feeds one raw event to the input snapshot and the state.
func (a *App) HandleEvent(e core.Event) {
	if e.Kind == core.EventQuit {
		a.Quit()
		return
	}
	a.input.Handle(e)

	if e.Kind == core.EventKeyDown && e.Key == core.KeyP {
		if p, ok := a.state.(Pausable); ok && p.CanPause() {
			a.paused = !a.paused
		}
	}

	if a.state != nil {
		a.state.HandleEvent(e)
	}
}

// Update advances the current state by one frame unless paused.
func (a *App) Update() {
	if a.paused || a.state == nil {
		return
	}
	a.frames++
	a.state.Update()
}

// Draw renders the current state and, when paused, the pause overlay.
func (a *App) Draw(s Surface) {
	r := NewRenderer(s)
	if a.state != nil {
		a.state.Draw(r)
	}
	if a.paused {
		a.drawPause(r)
	}
}

func (a *App) drawPause(r *Renderer) {
	size := r.Size()
	r.DrawRect(core.Rectangle{Size: size}, core.White)
	center := size.Div(2)
	r.DrawTextCentered("Paused", center, core.Black, assets.Sans50)
	r.DrawTextCentered("Press P to unpause", center.Add(core.Vec(0, 50)), core.Black, assets.Sans50)
}

// EndFrame clears the keyboard snapshot. Mouse buttons are left alone.
func (a *App) EndFrame() {
	a.input.Keyboard.Reset()
}

// Step runs one whole frame: events, update, draw, keyboard reset.
func (a *App) Step(events []core.Event, s Surface) {
	for _, e := range events {
		a.HandleEvent(e)
		if !a.running {
			return
		}
	}
	a.Update()
	a.Draw(s)
	a.EndFrame()
}
