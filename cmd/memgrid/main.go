package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/memgrid/audio"
	"github.com/lixenwraith/memgrid/config"
	"github.com/lixenwraith/memgrid/constants"
	"github.com/lixenwraith/memgrid/engine"
	"github.com/lixenwraith/memgrid/game"
	"github.com/lixenwraith/memgrid/logger"
	"github.com/lixenwraith/memgrid/render"
)

var (
	gridFlag   = flag.Int("grid", 0, "Grid size (cells per side), overrides MEMGRID_GRID_SIZE")
	lengthFlag = flag.Int("length", 0, "Initial sequence length, overrides MEMGRID_INITIAL_LENGTH")
	levelFlag  = flag.Int("level", 0, "Starting level, overrides MEMGRID_INITIAL_LEVEL")
	seedFlag   = flag.Uint64("seed", 0, "Sequence seed, 0 keeps MEMGRID_SEED or a time based seed")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		os.Exit(1)
	}

	log, closeLog, err := logger.Open(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Audio is optional, the game runs silently without a device
	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.AudioEnabled
	audioCfg.MasterVolume = cfg.MasterVolume
	sound := audio.NewSoundManager(audioCfg)
	if cfg.AudioEnabled {
		if err := sound.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
		}
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mMEMGRID CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	gameCfg := cfg.Game()
	board := render.NewScreen(screen, gameCfg.GridSize, sound)
	sched := render.NewScheduler(screen)
	defer sched.Stop()

	ctrl, err := game.NewController(gameCfg, board, sched, engine.NewMonotonicTimeProvider(), log)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		os.Exit(1)
	}
	log.Info().
		Int("grid", gameCfg.GridSize).
		Int("level", gameCfg.InitialLevel).
		Uint64("seed", gameCfg.Seed).
		Msg("session started")

	a := &app{ctrl: ctrl, screen: board, sched: sched, logger: log}
	ctrl.OnNextRoundRequested()
	board.Draw()

	eventChan := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	redraw := time.NewTicker(constants.RedrawInterval)
	defer redraw.Stop()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.handleEvent(ev) {
				log.Info().
					Int("rounds", len(ctrl.Records())).
					Int("longest_streak", ctrl.LongestStreak()).
					Msg("session ended")
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			board.Draw()

		case <-redraw.C:
			board.Draw()
		}
	}
}

// applyFlags overrides environment values with explicitly set flags
func applyFlags(cfg *config.Config) {
	if *gridFlag > 0 {
		cfg.GridSize = *gridFlag
	}
	if *lengthFlag > 0 {
		cfg.InitialSequenceLength = *lengthFlag
	}
	if *levelFlag > 0 {
		cfg.InitialLevel = *levelFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.AudioEnabled = false
	}
}
