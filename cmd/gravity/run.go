package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-gravity/internal/config"
	"github.com/vovakirdan/tui-gravity/internal/core"
	"github.com/vovakirdan/tui-gravity/internal/platform/tui"
	"github.com/vovakirdan/tui-gravity/internal/scenario"
	"github.com/vovakirdan/tui-gravity/internal/statefile"
	"github.com/vovakirdan/tui-gravity/internal/storage"
)

var (
	flagConfig string
	flagBodies int
	flagTheta  float64
	flagDt     float64
	flagResume string
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario interactively",
	Long: `Start an interactive simulation of the specified scenario.

Controls:
  Space/P    - Pause/resume
  T          - Toggle tree overlay
  +/-        - Speed up / slow down the timestep
  Z/X        - Zoom in / out
  F          - Refit camera to the body cloud
  S          - Save a state snapshot
  R          - Restart with a new seed
  Q/Ctrl+C   - Quit

Examples:
  gravity run disk
  gravity run binary --bodies 5000
  gravity run disk --theta 0.8 --dt 0.05
  gravity run disk --config ./my-disk.yaml
  gravity run disk --resume ~/.gravity/snapshots/disk_20260831_120000.dat`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scenario config YAML")
	runCmd.Flags().IntVar(&flagBodies, "bodies", 0, "Override body count")
	runCmd.Flags().Float64Var(&flagTheta, "theta", 0, "Override opening angle threshold")
	runCmd.Flags().Float64Var(&flagDt, "dt", 0, "Override timestep")
	runCmd.Flags().StringVar(&flagResume, "resume", "", "Resume from a saved state snapshot")
}

func runRun(cmd *cobra.Command, args []string) {
	scenarioID := args[0]

	scen, err := scenario.Get(scenarioID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenarioID)
		fmt.Fprintln(os.Stderr, "Run 'gravity list' to see available scenarios.")
		os.Exit(1)
	}
	if scen.ThreeD {
		fmt.Fprintf(os.Stderr, "Error: %q is a 3D scenario and has no interactive view\n", scenarioID)
		fmt.Fprintln(os.Stderr, "Run 'gravity bench' to simulate it headless.")
		os.Exit(1)
	}

	simCfg, err := config.Load(scenarioID, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	applyOverrides(&simCfg)

	// Get terminal size for the initial screen
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - simulation still works
		store = nil
	}

	model := tui.NewModel(scen, simCfg, runtime, store)

	if flagResume != "" {
		st, readErr := statefile.Read(flagResume)
		if readErr != nil {
			if store != nil {
				store.Close()
			}
			fmt.Fprintf(os.Stderr, "Error reading snapshot: %v\n", readErr)
			os.Exit(1)
		}
		model.ResumeFrom(st)
	}

	runErr := tui.Run(model)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}

// applyOverrides folds command-line overrides into the loaded config.
func applyOverrides(cfg *config.SimConfig) {
	if flagBodies > 0 {
		cfg.Scenario.Bodies = flagBodies
	}
	if flagTheta > 0 {
		cfg.Physics.Theta = flagTheta
	}
	if flagDt > 0 {
		cfg.Physics.Dt = flagDt
	}
}
