// arkanoid is a terminal brick-breaking game with a shop economy and
// falling power-ups.
//
// Usage:
//
//	arkanoid play            - Play the game
//	arkanoid scores          - Show the best runs
//	arkanoid serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arkanoid/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break bricks in your terminal",
	Long: `Arkanoid is a terminal brick-breaking game. Keep the ball in play,
clear the brick wall, and spend earned money on power-ups from the shop.

Available commands:
  play     - Play the game
  scores   - View your best runs
  serve    - Start SSH server for remote play

Examples:
  arkanoid play
  arkanoid play --seed 42
  arkanoid scores
  arkanoid serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arkanoid/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
