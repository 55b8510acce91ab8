package tui

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
	"github.com/SrKotaka/Space-Shooter/internal/registry"
)

// holdFrames is how long a movement or fire press keeps reading as down.
// Terminals repeat a held key every few frames and never report the
// release, while the app clears the keyboard after every frame.
const holdFrames = 6

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one shooter App.
type Model struct {
	app       *engine.App
	screen    *core.Screen
	surface   *CellSurface
	styles    styleCache
	keys      KeyMap
	help      help.Model
	pending   []core.Event
	held      map[core.Key]int
	frames    int
	maxFrames int
	done      bool
}

// NewModel creates a model drawing app into a width by height terminal.
// The bottom row is kept for the key help. maxFrames stops the app after
// that many frames; zero runs until it quits.
func NewModel(app *engine.App, width, height, maxFrames int) Model {
	cfg := app.Config()
	screen := core.NewScreen(max(width, 1), max(height-1, 1))
	h := help.New()
	h.Width = width
	return Model{
		app:       app,
		screen:    screen,
		surface:   NewCellSurface(screen, cfg.Width, cfg.Height),
		styles:    make(styleCache),
		keys:      DefaultKeyMap(),
		help:      h,
		held:      make(map[core.Key]int),
		maxFrames: maxFrames,
	}
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.app.Config().FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg), nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.WindowSizeMsg:
		m.screen.Resize(max(msg.Width, 1), max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the shooter key for the next frame. Pause is a single
// press; movement and fire are held for a few frames.
func (m Model) handleKey(msg tea.KeyMsg) Model {
	if key.Matches(msg, m.keys.Quit) {
		m.pending = append(m.pending, core.Quit())
		return m
	}
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m
	}

	k, ok := m.keys.Translate(msg)
	switch {
	case !ok:
	case k == core.KeyP:
		m.pending = append(m.pending, core.KeyPress(k))
	default:
		m.held[k] = holdFrames
	}
	return m
}

// handleMouse converts a cell position to world units. Terminals report
// releases without the button, so any release releases the left button.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	pos := m.toWorld(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.pending = append(m.pending, core.ButtonDown(core.ButtonLeft, pos))
		}
	case tea.MouseActionRelease:
		m.pending = append(m.pending, core.ButtonUp(core.ButtonLeft, pos))
	case tea.MouseActionMotion:
		m.pending = append(m.pending, core.PointerMoved(pos))
	}
	return m
}

// toWorld returns the world position of the center of a cell.
func (m Model) toWorld(x, y int) core.Vector2 {
	cfg := m.app.Config()
	return core.Vec(
		(float64(x)+0.5)*float64(cfg.Width)/float64(m.screen.Width()),
		(float64(y)+0.5)*float64(cfg.Height)/float64(m.screen.Height()),
	)
}

// handleTick runs one frame with everything queued since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	events := m.pending
	m.pending = nil
	for k, n := range m.held {
		events = append(events, core.KeyPress(k))
		if n <= 1 {
			delete(m.held, k)
		} else {
			m.held[k] = n - 1
		}
	}

	cfg := m.app.Config()
	m.surface.SetWorldSize(cfg.Width, cfg.Height)
	m.app.Step(events, m.surface)
	m.frames++

	if m.maxFrames > 0 && m.frames >= m.maxFrames {
		m.app.Quit()
	}
	if !m.app.Running() {
		m.done = true
		return m, tea.Quit
	}
	return m, tickCmd(cfg.FPS)
}

// Done reports whether the app has quit.
func (m Model) Done() bool {
	return m.done
}

// View renders the last frame and the key help.
func (m Model) View() string {
	if m.done {
		return ""
	}
	return renderScreen(m.screen, m.styles) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// terminalSize returns the size of stdout, or 80x24 when it is not a
// terminal.
func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// Frontend plays in the local terminal.
type Frontend struct{}

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}

func (Frontend) ID() string    { return "tui" }
func (Frontend) Title() string { return "Terminal" }

// Run builds the app and plays it until it quits or ctx is cancelled.
func (Frontend) Run(ctx context.Context, opts registry.RunOptions) error {
	app, err := opts.Build(engine.NopDisplay{})
	if err != nil {
		return err
	}

	w, h := terminalSize()
	if opts.Logger != nil {
		opts.Logger.Info("terminal frontend started", "cols", w, "rows", h)
	}

	p := tea.NewProgram(
		NewModel(app, w, h, opts.MaxFrames),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	_, err = p.Run()

	// Interrupted runs still write their settings.
	app.Quit()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
