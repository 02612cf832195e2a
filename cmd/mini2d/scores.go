package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini2d/internal/registry"
	"github.com/vovakirdan/mini2d/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <demo>",
	Short: "Show high scores for a demo",
	Long: `Display the top runs for the specified demo.

Examples:
  mini2d scores balls
  mini2d scores particles --limit 20
  mini2d scores shapes --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs for the demo")
}

func runScores(_ *cobra.Command, args []string) error {
	demoID := args[0]

	var title string
	for _, info := range registry.List() {
		if info.ID == demoID {
			title = info.Title
		}
	}
	if title == "" {
		return fmt.Errorf("unknown demo %q, run 'mini2d list' to see available demos", demoID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(demoID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return nil
	}

	runs, err := store.TopScores(demoID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mini2d play %s' to set the first high score!\n", demoID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %s\n", "Rank", "Score", "Collisions", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %s\n", "----", "-----", "----------", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-10d  %-8s  %s\n",
			i+1, r.Score, r.Collisions, r.Duration.Round(time.Second), r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.DemoStats(demoID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}
	return nil
}
