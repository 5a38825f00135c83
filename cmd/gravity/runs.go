package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-gravity/internal/platform/tui"
	"github.com/vovakirdan/tui-gravity/internal/scenario"
	"github.com/vovakirdan/tui-gravity/internal/storage"
)

var flagRunsInteractive bool

var runsCmd = &cobra.Command{
	Use:   "runs [scenario]",
	Short: "Show recorded runs",
	Long: `Display recorded simulation runs, newest first. With a scenario
argument only that scenario's runs are shown.

Examples:
  gravity runs
  gravity runs disk
  gravity runs --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVarP(&flagRunsInteractive, "interactive", "i", false, "Browse runs in an interactive table")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunRunLog(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error browsing runs: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.RunEntry
	if len(args) == 1 {
		scenarioID := args[0]
		if !scenario.Exists(scenarioID) {
			fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenarioID)
			fmt.Fprintln(os.Stderr, "Run 'gravity list' to see available scenarios.")
			os.Exit(1)
		}
		runs, err = store.ScenarioRuns(scenarioID, 20)
	} else {
		runs, err = store.RecentRuns(20)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Finish 'gravity run <scenario>' or 'gravity bench <scenario>' to log one.")
		return
	}

	// Print header
	fmt.Printf("  %-12s  %-8s  %-8s  %-10s  %-8s  %s\n", "Scenario", "Bodies", "Steps", "Sim time", "ms/step", "Date")
	fmt.Printf("  %-12s  %-8s  %-8s  %-10s  %-8s  %s\n", "--------", "------", "-----", "--------", "-------", "----")

	for _, r := range runs {
		msPerStep := "-"
		if r.Steps > 0 {
			msPerStep = fmt.Sprintf("%.2f", float64(r.WallMs)/float64(r.Steps))
		}
		fmt.Printf("  %-12s  %-8d  %-8d  %-10.4g  %-8s  %s\n",
			r.Scenario, r.Bodies, r.Steps, r.SimTime, msPerStep,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Aggregate footer for a single scenario
	if len(args) == 1 {
		stats, statsErr := store.GetScenarioStats(args[0])
		if statsErr == nil && stats.RunCount > 0 {
			fmt.Println()
			fmt.Printf("Total: %d runs, %d steps, best %.2f ms/step\n",
				stats.RunCount, stats.TotalSteps, stats.BestStepMs)
		}
	}
}
