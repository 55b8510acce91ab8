package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/SrKotaka/Space-Shooter/internal/config"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
	"github.com/SrKotaka/Space-Shooter/internal/storage"
)

// SessionBuilder builds the app for one SSH session on the chosen mode.
type SessionBuilder func(mode config.DifficultyPreset) (*engine.App, error)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.spaceshooter/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Store records runs and feeds the scoreboard. May be nil.
	Store *storage.Store

	// Build creates a fresh app for every game a session starts.
	Build SessionBuilder

	// DefaultMode is where the launcher cursor starts.
	DefaultMode config.DifficultyPreset

	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		DefaultMode: config.DifficultyNormal,
	}
}

// SSHServer wraps a Wish SSH server that plays the shooter per session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.Build == nil {
		return nil, errors.New("ssh: no session builder")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "shooter-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".spaceshooter", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	model := NewSessionModel(s.config, pty.Window.Width, pty.Window.Height)
	model.logger = s.logger.With("user", sess.User())

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionScreen int

const (
	screenLauncher sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel runs one SSH session: launcher, game and scoreboard,
// switching between them without leaving the program.
type SessionModel struct {
	cfg      SSHServerConfig
	logger   *log.Logger
	width    int
	height   int
	screen   sessionScreen
	mode     config.DifficultyPreset
	launcher LauncherModel
	scores   ScoreboardModel
	game     Model
	status   string
	quitting bool
}

// NewSessionModel creates a session starting at the launcher.
func NewSessionModel(cfg SSHServerConfig, width, height int) SessionModel {
	mode := cfg.DefaultMode
	if mode == "" {
		mode = config.DifficultyNormal
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return SessionModel{
		cfg:      cfg,
		logger:   logger,
		width:    width,
		height:   height,
		mode:     mode,
		launcher: NewLauncherModel(cfg.Store, width, height, mode),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.launcher.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateLauncher(msg)
	}
}

func (m SessionModel) updateLauncher(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.launcher.Update(msg)
	if l, ok := next.(LauncherModel); ok {
		m.launcher = l
	}

	switch {
	case m.launcher.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.launcher.WantsScoreboard():
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.cfg.Store, m.width, m.height)
		return m, m.scores.Init()
	}

	mode, ok := m.launcher.Selected()
	if !ok {
		return m, cmd
	}

	app, err := m.cfg.Build(mode)
	if err != nil {
		m.logger.Error("cannot build game", "mode", mode, "err", err)
		m.status = "could not start the game"
		m.launcher = NewLauncherModel(m.cfg.Store, m.width, m.height, mode)
		return m, nil
	}

	m.mode = mode
	m.status = ""
	m.screen = screenGame
	m.game = NewModel(app, m.width, m.height, 0)
	m.logger.Info("game started", "mode", mode)
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if g, ok := next.(Model); ok {
		m.game = g
	}

	// The game asks to quit when it is done; the session goes back to the
	// launcher instead.
	if m.game.Done() {
		m.logger.Info("game ended", "mode", m.mode, "frames", m.game.frames)
		return m.backToLauncher()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if s, ok := next.(ScoreboardModel); ok {
		m.scores = s
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.backToLauncher()
	}
	return m, cmd
}

func (m SessionModel) backToLauncher() (tea.Model, tea.Cmd) {
	m.screen = screenLauncher
	m.launcher = NewLauncherModel(m.cfg.Store, m.width, m.height, m.mode)
	return m, m.launcher.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}

	v := m.launcher.View()
	if m.status != "" {
		v += "\n" + centerText(helpStyle.Render(m.status), m.width)
	}
	return v
}
