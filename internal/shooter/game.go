package shooter

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/SrKotaka/Space-Shooter/internal/config"
	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
	"github.com/SrKotaka/Space-Shooter/internal/settings"
)

// Title is the window title.
const Title = "Space Shooters"

// Options configures a shooter application.
type Options struct {
	Runtime  core.RuntimeConfig
	Tunables config.ShooterConfig
	// Mode labels recorded runs, normally the difficulty preset.
	Mode string
	// SettingsPath is loaded at startup and written on quit. Empty keeps
	// settings in memory only.
	SettingsPath string
	Settings     *settings.Store
	Display      engine.Display
	Logger       *log.Logger
	Recorder     Recorder
}

// Game ties the application to what the shooter states share.
type Game struct {
	App      *engine.App
	Config   config.ShooterConfig
	Mode     string
	Recorder Recorder

	rng *rand.Rand
}

// New assembles the application: settings are loaded and applied first,
// then the menu becomes the current state.
func New(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Settings == nil {
		opts.Settings = settings.New(opts.Logger)
	}
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	app := engine.NewApp(engine.Options{
		Title:    Title,
		Config:   opts.Runtime,
		Settings: opts.Settings,
		Display:  opts.Display,
		Logger:   opts.Logger,
	})
	g := &Game{
		App:      app,
		Config:   opts.Tunables,
		Mode:     opts.Mode,
		Recorder: opts.Recorder,
		rng:      rand.New(rand.NewSource(seed)),
	}

	g.applySettings(opts.SettingsPath)
	app.SetState(NewMenu(g))
	return g
}

// applySettings loads the settings file. A first run writes the defaults
// back; otherwise the stored resolution and fullscreen flag are applied.
func (g *Game) applySettings(path string) {
	st := g.App.Settings()
	if path != "" {
		st.Load(path)
	}

	if st.IsEmpty() {
		res := g.App.Config()
		st.SetResolution(res.Width, res.Height)
		st.SetFullscreen(false)
		st.Save()
		return
	}

	if w, h, ok := st.Resolution(); ok {
		g.App.SetResolution(w, h)
	}
	if st.Fullscreen() {
		g.App.Display().SetFullscreen(true)
	}
}

// nextRand derives an independent source for one run.
func (g *Game) nextRand() *rand.Rand {
	return rand.New(rand.NewSource(g.rng.Int63()))
}
