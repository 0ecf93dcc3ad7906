package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/memgrid/config"
	"github.com/lixenwraith/memgrid/logger"
	"github.com/lixenwraith/memgrid/sim"
)

var (
	roundsFlag   = flag.Int("rounds", 20, "Rounds to play")
	accuracyFlag = flag.Float64("accuracy", 0.95, "Probability each click is correct")
	replayFlag   = flag.Float64("replay", 0.1, "Probability of asking for a replay before a click")
	seedFlag     = flag.Uint64("seed", 1, "Seed for sequences and player")
	gridFlag     = flag.Int("grid", 0, "Grid size, overrides MEMGRID_GRID_SIZE")
	thinkFlag    = flag.Duration("think", 600*time.Millisecond, "Simulated time per click")
	verboseFlag  = flag.Bool("v", false, "Log every round to stderr")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *gridFlag > 0 {
		cfg.GridSize = *gridFlag
	}
	cfg.Seed = *seedFlag
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		os.Exit(1)
	}

	logCfg := logger.Config{Level: "warn", Pretty: true}
	if *verboseFlag {
		logCfg.Level = "debug"
	}
	log := logger.New(logCfg, os.Stderr)

	player, err := sim.NewPlayer(*seedFlag, *accuracyFlag, *replayFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid player: %v\n", err)
		os.Exit(1)
	}

	runner, err := sim.NewRunner(cfg.Game(), player, sim.Options{
		Rounds:     *roundsFlag,
		ThinkTime:  *thinkFlag,
		MaxReplays: 3,
	}, time.Now(), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create simulator: %v\n", err)
		os.Exit(1)
	}

	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(runner.Controller().OnShowPerformanceRequested())
}
