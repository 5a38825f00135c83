// gravity is a terminal Barnes-Hut gravity simulator.
//
// Usage:
//
//	gravity list              - List available scenarios
//	gravity run <scenario>    - Run a scenario interactively
//	gravity bench <scenario>  - Run a scenario headless and report timings
//	gravity runs              - Browse recorded runs
//	gravity serve             - Start SSH server for remote viewing
//
// Global flags:
//
//	--fps <rate>    - Set simulation steps per second (default: 30)
//	--seed <value>  - Set RNG seed for reproducible scenarios
//	--db <path>     - Set database path (default: ~/.gravity/runs.db)
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
	Use:   "gravity",
	Short: "Barnes-Hut gravity simulation in your terminal",
	Long: `gravity simulates thousands of gravitating bodies with the Barnes-Hut
tree algorithm and renders them live in the terminal.

Available commands:
  list     - Show all available scenarios
  run      - Run a scenario interactively
  bench    - Run a scenario headless and report step timings
  runs     - Browse recorded runs
  serve    - Start SSH server for remote viewing

Examples:
  gravity list
  gravity run disk
  gravity run binary --bodies 5000 --theta 0.8
  gravity bench disk --steps 1000
  gravity serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Simulation steps per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gravity/runs.db", "Path to run database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}
