package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/SrKotaka/Space-Shooter/internal/config"
	"github.com/SrKotaka/Space-Shooter/internal/platform/tui"
	"github.com/SrKotaka/Space-Shooter/internal/registry"
	"github.com/SrKotaka/Space-Shooter/internal/storage"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the shooter",
	Long: `Start the shooter on a frontend.

In the terminal without --difficulty a launcher opens first, where the
difficulty is picked and the scoreboard can be viewed. After a game ends
you return to the launcher.

Controls:
  WASD/Arrows  - Move
  Space        - Shoot
  P            - Pause
  Mouse        - Menu buttons
  Q/Ctrl+C     - Quit (terminal)

Difficulty options:
  easy   - 5 lives, enemy fire starts slow
  normal - Enemy fire starts at 30% and speeds up with the score
  hard   - 2 lives, enemy fire starts at 70%
  fixed  - No progression, stays at the config's values

Examples:
  spaceshooter play
  spaceshooter play --frontend desktop
  spaceshooter play --difficulty hard
  spaceshooter play --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend to play on (see 'spaceshooter frontends')")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagFrontend) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", flagFrontend)
		fmt.Fprintln(os.Stderr, "Run 'spaceshooter frontends' to see available frontends.")
		os.Exit(1)
	}

	// The terminal frontend owns the screen, so its log goes to a file
	logger := newLogger(os.Stderr, "spaceshooter")
	if flagFrontend == "tui" {
		fileLogger, closeLog, err := openLogFile(flagLogPath)
		defer closeLog()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			logger = fileLogger
		}
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	if flagFrontend == "tui" && flagDifficulty == "" {
		err = runLauncherLoop(ctx, store, logger)
	} else {
		var mode config.DifficultyPreset
		mode, err = config.ParsePreset(flagDifficulty)
		if err == nil {
			err = playOnce(ctx, flagFrontend, newLaunch(mode, store, logger), logger)
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playOnce runs one app on the frontend until it quits.
func playOnce(ctx context.Context, frontend string, l *launch, logger *log.Logger) error {
	fe, err := registry.Create(frontend)
	if err != nil {
		return err
	}
	logger.Info("game starting", "frontend", frontend, "mode", l.mode)
	return fe.Run(ctx, registry.RunOptions{
		Build:  l.build,
		Logger: logger,
	})
}

// runLauncherLoop alternates between the launcher, the scoreboard and
// terminal games until the player quits.
func runLauncherLoop(ctx context.Context, store *storage.Store, logger *log.Logger) error {
	current := config.DifficultyNormal
	for {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}

		res, err := tui.RunLauncher(store, width, height, current)
		if err != nil {
			return err
		}
		if res.Quit {
			return nil
		}
		current = res.Mode

		if res.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, width, height)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		if err := playOnce(ctx, "tui", newLaunch(res.Mode, store, logger), logger); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
