package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs and overall statistics.

With --tui, opens an interactive scoreboard that can switch between the
best and the most recent runs.

Examples:
  invaders scores
  invaders scores --limit 20
  invaders scores --tui
  invaders scores --clear
  invaders scores --reset`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history (records are kept)")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Reset the high score and best level (runs are kept)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening records database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("error clearing runs: %w", err)
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagScoresReset {
		if err := store.ResetRecords(); err != nil {
			return fmt.Errorf("error resetting records: %w", err)
		}
		fmt.Println("Records reset.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(0); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Println("High Scores - Space Invaders")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-7s  %-16s  %s\n", "Rank", "Score", "Level", "Result", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-7s  %-16s  %s\n", "----", "-----", "-----", "------", "------", "----")

	for i, r := range runs {
		result := "defeat"
		if r.Victory {
			result = "VICTORY"
		}
		player := r.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-7s  %-16s  %s\n",
			i+1, r.Score, r.Level, result, player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d   Victories: %d   Best: %d   Average: %.0f   Furthest level: %d\n",
			stats.Runs, stats.Victories, stats.HighScore, stats.AvgScore, stats.MaxLevel)
	}
	return nil
}
