package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sancho-bros/internal/platform/tui"
	"github.com/vovakirdan/sancho-bros/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs and level progress",
	Long: `Display the best finished runs and per-level progress.

Examples:
  sancho scores
  sancho scores --limit 20
  sancho scores --tui
  sancho scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete all runs and progress (settings are kept)")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresReset {
		if err := store.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Runs and progress deleted.")
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Sancho Bros")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'sancho play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-10s  %s\n", "Rank", "Score", "Level", "Outcome", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-10s  %s\n", "----", "-----", "-----", "-------", "----")
	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %-10s  %s\n", i+1, r.Score, r.LevelReached, r.Outcome, dateStr)
	}

	progress, err := store.Progress()
	if err == nil && len(progress) > 0 {
		fmt.Println()
		fmt.Println("Levels completed:")
		for _, p := range progress {
			fmt.Printf("  Level %d  best %d  (%d clears)\n", p.Level, p.BestScore, p.Completions)
		}
	}

	if stats, err := store.GetStats(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Victories: %d\n", stats.HighScore, stats.Runs, stats.Victories)
	}
}
