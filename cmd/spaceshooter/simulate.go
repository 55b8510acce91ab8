package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SrKotaka/Space-Shooter/internal/config"
	"github.com/SrKotaka/Space-Shooter/internal/core"
	"github.com/SrKotaka/Space-Shooter/internal/platform/headless"
	"github.com/SrKotaka/Space-Shooter/internal/registry"
	"github.com/SrKotaka/Space-Shooter/internal/shooter"
	"github.com/SrKotaka/Space-Shooter/internal/storage"
)

var (
	flagFrames int
	flagSweep  int
	flagRecord bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted game without a display",
	Long: `Run the shooter headless with a scripted pilot: it presses Play,
then keeps firing while sweeping left and right. Prints the outcome,
which is reproducible for a given --seed.

Examples:
  spaceshooter simulate --seed 42
  spaceshooter simulate --seed 7 --frames 10000 --difficulty hard
  spaceshooter simulate --record`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to run")
	simulateCmd.Flags().IntVar(&flagSweep, "sweep", 45, "Frames between pilot direction changes")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Save finished runs to the database")
}

// runCapture keeps the last finished run and forwards it when recording.
type runCapture struct {
	last *storage.Run
	next shooter.Recorder
}

func (c *runCapture) SaveRun(r storage.Run) (int64, error) {
	c.last = &r
	if c.next == nil {
		return 0, nil
	}
	return c.next.SaveRun(r)
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "simulate")

	mode, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	capture := &runCapture{}
	if flagRecord {
		if store := openStore(logger); store != nil {
			defer store.Close()
			capture.next = store
		}
	}

	l := newLaunch(mode, nil, logger)
	l.settingsPath = ""
	l.recorder = capture

	fe, err := registry.Create("headless")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rc := runtimeConfig()
	pilot := headless.NewPilot(core.Vec(float64(rc.Width)/2, 310), flagSweep)
	err = fe.Run(ctx, registry.RunOptions{
		Build:     l.build,
		Logger:    logger,
		MaxFrames: flagFrames,
		Input:     pilot,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seed %d, mode %s, %d frames\n", flagSeed, mode, flagFrames)
	if r := capture.last; r != nil {
		fmt.Printf("Game over: score %d, power %d, survived %s\n", r.Score, r.Power, formatFrames(r.Frames))
		if capture.next != nil {
			fmt.Printf("Recorded as run %s\n", r.RunID)
		}
		return
	}
	if gp, ok := l.game.App.State().(*shooter.Gameplay); ok {
		snap := gp.Sim.Snapshot()
		fmt.Printf("Still playing: score %d, power %d, lives %d, played %s\n",
			snap.Score, snap.Power, snap.Lives, formatFrames(snap.Frame))
		fmt.Printf("On %s with %d enemies and %d projectiles\n", snap.Layout, snap.Enemies, snap.Projectiles)
		return
	}
	fmt.Println("No run was started.")
}
