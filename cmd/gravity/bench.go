package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gravity/internal/config"
	"github.com/vovakirdan/tui-gravity/internal/physics"
	"github.com/vovakirdan/tui-gravity/internal/scenario"
	"github.com/vovakirdan/tui-gravity/internal/statefile"
	"github.com/vovakirdan/tui-gravity/internal/storage"
)

var (
	flagBenchSteps  int
	flagBenchConfig string
	flagBenchBodies int
	flagBenchTheta  float64
	flagBenchDt     float64
	flagBenchOutput string
)

var benchCmd = &cobra.Command{
	Use:   "bench <scenario>",
	Short: "Run a scenario headless and report step timings",
	Long: `Simulate the specified scenario without rendering and report how
long the steps took. The run is recorded in the run database.

3D scenarios are supported here; they use the octree solver.

Examples:
  gravity bench disk --steps 1000
  gravity bench sphere --steps 200 --bodies 10000
  gravity bench disk --steps 500 --output ./final.dat`,
	Args: cobra.ExactArgs(1),
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchSteps, "steps", 100, "Number of steps to simulate")
	benchCmd.Flags().StringVar(&flagBenchConfig, "config", "", "Path to custom scenario config YAML")
	benchCmd.Flags().IntVar(&flagBenchBodies, "bodies", 0, "Override body count")
	benchCmd.Flags().Float64Var(&flagBenchTheta, "theta", 0, "Override opening angle threshold")
	benchCmd.Flags().Float64Var(&flagBenchDt, "dt", 0, "Override timestep")
	benchCmd.Flags().StringVar(&flagBenchOutput, "output", "", "Write final state to a snapshot file (2D only)")
}

func runBench(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bench",
	})

	scenarioID := args[0]
	scen, err := scenario.Get(scenarioID)
	if err != nil {
		logger.Fatal("unknown scenario", "id", scenarioID)
	}

	simCfg, err := config.Load(scenarioID, flagBenchConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	if flagBenchBodies > 0 {
		simCfg.Scenario.Bodies = flagBenchBodies
	}
	if flagBenchTheta > 0 {
		simCfg.Physics.Theta = flagBenchTheta
	}
	if flagBenchDt > 0 {
		simCfg.Physics.Dt = flagBenchDt
	}
	if flagBenchOutput != "" && scen.ThreeD {
		logger.Fatal("snapshot output is only supported for 2D scenarios")
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	params := scenario.Params{
		Bodies:      simCfg.Scenario.Bodies,
		Mass:        simCfg.Scenario.Mass,
		CentralMass: simCfg.Scenario.CentralMass,
		Spin:        simCfg.Scenario.Spin,
		Radius:      simCfg.Scenario.Radius,
		G:           simCfg.Physics.G,
	}

	logger.Info("starting benchmark",
		"scenario", scenarioID,
		"bodies", params.Bodies,
		"steps", flagBenchSteps,
		"theta", simCfg.Physics.Theta,
		"seed", seed,
	)

	var (
		bodies  int
		elapsed time.Duration
		sim2    *physics.Simulation
	)

	if scen.ThreeD {
		sim := physics.NewSimulation3(
			scen.Build3(params, rng),
			simCfg.Physics.Dt,
			simCfg.Physics.G,
			simCfg.Physics.Softening,
			simCfg.Physics.Theta,
		)
		bodies = sim.Len()
		start := time.Now()
		for i := 0; i < flagBenchSteps; i++ {
			sim.Step()
		}
		elapsed = time.Since(start)
	} else {
		sim2 = physics.NewSimulation(
			scen.Build(params, rng),
			simCfg.Physics.Dt,
			simCfg.Physics.G,
			simCfg.Physics.Softening,
			simCfg.Physics.Theta,
		)
		bodies = sim2.Len()
		start := time.Now()
		for i := 0; i < flagBenchSteps; i++ {
			sim2.Step()
		}
		elapsed = time.Since(start)
	}

	perStep := elapsed / time.Duration(max(flagBenchSteps, 1))
	logger.Info("benchmark finished",
		"elapsed", elapsed.Round(time.Millisecond),
		"per_step", perStep.Round(time.Microsecond),
		"bodies", bodies,
	)

	// Record the run
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
	} else {
		defer store.Close()
		_, saveErr := store.SaveRun(storage.RunEntry{
			Scenario: scenarioID,
			Bodies:   bodies,
			Steps:    flagBenchSteps,
			SimTime:  float64(flagBenchSteps) * simCfg.Physics.Dt,
			WallMs:   elapsed.Milliseconds(),
		})
		if saveErr != nil {
			logger.Warn("could not save run", "error", saveErr)
		}
	}

	if flagBenchOutput != "" && sim2 != nil {
		writeErr := statefile.Write(flagBenchOutput, statefile.State{
			Dt:        sim2.Dt(),
			G:         simCfg.Physics.G,
			Softening: simCfg.Physics.Softening,
			Theta:     sim2.Theta(),
			Bodies:    sim2.Bodies(),
		})
		if writeErr != nil {
			logger.Fatal("cannot write snapshot", "error", writeErr)
		}
		logger.Info("snapshot written", "path", flagBenchOutput)
	}
}
