// spaceshooter is a 2D arcade space shooter that plays in the terminal, a
// desktop window or over SSH.
//
// Usage:
//
//	spaceshooter                  - Play in the terminal
//	spaceshooter play             - Play on the chosen frontend
//	spaceshooter serve            - Start SSH server for remote play
//	spaceshooter scores [mode]    - Show recorded runs
//	spaceshooter frontends        - List available frontends
//	spaceshooter simulate         - Run a scripted game without a display
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.spaceshooter/runs.db)
//	--settings <path>     - Set settings file (default: settings.yaml)
//	--config <path>       - Load gameplay tunables from YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log <path>          - Log file for terminal play
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SrKotaka/Space-Shooter/internal/config"
	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/engine"
	"github.com/SrKotaka/Space-Shooter/internal/shooter"
	"github.com/SrKotaka/Space-Shooter/internal/storage"

	// Import frontends to register them
	_ "github.com/SrKotaka/Space-Shooter/internal/platform/desktop"
	_ "github.com/SrKotaka/Space-Shooter/internal/platform/headless"
	_ "github.com/SrKotaka/Space-Shooter/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagSettings   string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spaceshooter",
	Short: "Space Shooters - a 2D arcade shooter",
	Long: `Space Shooters is a vertical arcade shooter. Dodge the enemy waves,
shoot them down and catch power-ups to widen your fire.

Available commands:
  play       - Play on a frontend (the default command)
  serve      - Start SSH server for remote play
  scores     - View recorded runs
  frontends  - Show all available frontends
  simulate   - Run a scripted game without a display

Examples:
  spaceshooter
  spaceshooter play --frontend desktop
  spaceshooter play --difficulty hard
  spaceshooter serve --ssh :2222
  spaceshooter scores normal`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultFPS, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spaceshooter/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "settings.yaml", "Path to settings file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.spaceshooter/spaceshooter.log", "Log file used while playing in the terminal")

	// play is also the root's own behaviour, so it needs its flags there
	rootCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend to play on (see 'spaceshooter frontends')")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(simulateCmd)
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// openLogFile appends to the log file at path. The returned close func is
// always safe to call.
func openLogFile(path string) (*log.Logger, func(), error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, func() {}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f, "spaceshooter"), func() { f.Close() }, nil
}

// openStore opens the runs database. Failures are reported as a warning and
// the game runs without recording.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("runs database unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig applies the global flags to the default resolution.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if flagFPS > 0 {
		cfg.FPS = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// tunables loads the gameplay config and applies the difficulty preset.
func tunables(mode config.DifficultyPreset) (config.ShooterConfig, error) {
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyShooterPreset(&cfg, mode)
	return cfg, nil
}

// launch holds what every app built by one command shares.
type launch struct {
	mode         config.DifficultyPreset
	settingsPath string
	store        *storage.Store
	recorder     shooter.Recorder
	logger       *log.Logger

	// game is the last game built.
	game *shooter.Game
}

func newLaunch(mode config.DifficultyPreset, store *storage.Store, logger *log.Logger) *launch {
	l := &launch{
		mode:         mode,
		settingsPath: flagSettings,
		store:        store,
		logger:       logger,
	}
	if store != nil {
		l.recorder = store
	}
	return l
}

// build is a registry.Builder for the launch's mode.
func (l *launch) build(display engine.Display) (*engine.App, error) {
	tun, err := tunables(l.mode)
	if err != nil {
		return nil, err
	}
	l.game = shooter.New(shooter.Options{
		Runtime:      runtimeConfig(),
		Tunables:     tun,
		Mode:         string(l.mode),
		SettingsPath: l.settingsPath,
		Display:      display,
		Logger:       l.logger,
		Recorder:     l.recorder,
	})
	return l.game.App, nil
}
