package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SrKotaka/Space-Shooter/internal/config"
	"github.com/SrKotaka/Space-Shooter/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresRun   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs, across all modes or for one
difficulty preset, followed by per-mode statistics.

Examples:
  spaceshooter scores
  spaceshooter scores hard
  spaceshooter scores --limit 25
  spaceshooter scores --run 0b7c61a2-...    # One run by id
  spaceshooter scores hard --clear          # Delete the hard runs`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded runs of the mode (all modes without one)")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by its id")
}

func runScores(_ *cobra.Command, args []string) {
	mode := ""
	if len(args) == 1 {
		if _, err := config.ParsePreset(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			os.Exit(1)
		}
		mode = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresRun != "":
		showRun(store, flagScoresRun)
		return
	case flagScoresClear:
		if err := store.ClearRuns(mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Runs cleared.")
		return
	}

	runs, err := store.TopRuns(mode, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	title := "all modes"
	if mode != "" {
		title = mode
	}
	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'spaceshooter' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-7s  %s\n", "Rank", "Score", "Power", "Time", "Mode", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-7s  %s\n", "----", "-----", "-----", "----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %-6s  %-7s  %s\n",
			i+1, r.Score, r.Power, formatFrames(r.Frames), r.Mode, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.AllStats()
	if err != nil || len(stats) == 0 {
		return
	}
	fmt.Println()
	for _, p := range config.Presets() {
		st, ok := stats[string(p)]
		if !ok || (mode != "" && mode != st.Mode) {
			continue
		}
		fmt.Printf("%-7s %d runs, best %d, avg %.0f, max power %d, played %s\n",
			st.Mode, st.Runs, st.HighScore, st.AvgScore, st.MaxPower, st.TotalTime.Round(time.Second))
	}
}

// showRun prints one stored run.
func showRun(store *storage.Store, runID string) {
	r, err := store.RunByID(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if r == nil {
		fmt.Printf("No run with id %s.\n", runID)
		return
	}
	fmt.Printf("Run %s\n", r.RunID)
	fmt.Printf("  Mode:   %s\n", r.Mode)
	fmt.Printf("  Score:  %d\n", r.Score)
	fmt.Printf("  Power:  %d\n", r.Power)
	fmt.Printf("  Time:   %s\n", formatFrames(r.Frames))
	fmt.Printf("  Played: %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
}

// formatFrames renders a frame count at 60 fps as m:ss.
func formatFrames(frames int) string {
	secs := frames / 60
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
