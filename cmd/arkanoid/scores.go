package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show your best runs",
	Long: `Display the best recorded runs in an interactive table.

Use --plain to print the table as plain text instead.

Examples:
  arkanoid scores
  arkanoid scores --plain
  arkanoid scores clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded runs",
	Args:  cobra.NoArgs,
	Run:   runScoresClear,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print runs as plain text")
	scoresCmd.AddCommand(scoresClearCmd)
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printRuns(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

func printRuns(store *storage.Store) {
	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Arkanoid")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'arkanoid play' to set the first record!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-7s  %-7s  %-8s  %s\n", "Rank", "Score", "Bricks", "Earned", "Outcome", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %-7s  %-8s  %s\n", "----", "-----", "------", "------", "-------", "----")

	for i, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-7d  $%-6d  %-8s  %s\n",
			i+1, run.Score, run.Bricks, run.MoneyTotal, run.Outcome, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore()
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func runScoresClear(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearRuns(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("All recorded runs deleted.")
}
