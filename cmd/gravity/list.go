package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gravity/internal/scenario"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenarios",
	Long:  `Shows a list of all registered simulation scenarios.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	scenarios := scenario.List()

	if len(scenarios) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Available scenarios:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range scenarios {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, "ID", "Dim", "Title")
	fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, "--", "---", "-----")

	// Print scenarios
	for _, s := range scenarios {
		dim := "2D"
		if s.ThreeD {
			dim = "3D"
		}
		fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, s.ID, dim, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'gravity run <id>' to start a simulation.")
}
