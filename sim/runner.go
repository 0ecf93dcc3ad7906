package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/memgrid/engine"
	"github.com/lixenwraith/memgrid/game"
	"github.com/rs/zerolog"
)

// Discard is a presenter that draws nothing
type Discard struct{}

func (Discard) SetCell(game.Position, game.CellState) {}
func (Discard) SetCellsEnabled(bool)                  {}
func (Discard) SetStatus(string)                      {}
func (Discard) SetNextRoundEnabled(bool)              {}
func (Discard) SetReplayEnabled(bool)                 {}

// Options control a simulated session
type Options struct {
	Rounds int
	// ThinkTime is added to the clock before every click
	ThinkTime time.Duration
	// MaxReplays caps replays requested per round
	MaxReplays int
}

// Runner plays rounds on a controller driven by a manual scheduler
type Runner struct {
	ctrl   *game.Controller
	sched  *engine.ManualScheduler
	clock  *engine.MockTimeProvider
	player *Player
	opts   Options
	logger zerolog.Logger
}

// NewRunner builds a controller on a fresh manual clock starting at start
func NewRunner(cfg game.Config, player *Player, opts Options, start time.Time, logger zerolog.Logger) (*Runner, error) {
	if opts.Rounds < 0 {
		return nil, fmt.Errorf("rounds %d must not be negative", opts.Rounds)
	}
	if player == nil {
		return nil, errors.New("runner requires a player")
	}

	clock := engine.NewMockTimeProvider(start)
	sched := engine.NewManualScheduler(clock)
	ctrl, err := game.NewController(cfg, Discard{}, sched, clock, logger)
	if err != nil {
		return nil, err
	}
	return &Runner{
		ctrl:   ctrl,
		sched:  sched,
		clock:  clock,
		player: player,
		opts:   opts,
		logger: logger,
	}, nil
}

// Controller exposes the driven controller
func (r *Runner) Controller() *game.Controller { return r.ctrl }

// Run plays the configured number of rounds to resolution
func (r *Runner) Run() error {
	for i := 0; i < r.opts.Rounds; i++ {
		if err := r.playRound(); err != nil {
			return fmt.Errorf("round %d: %w", i+1, err)
		}
	}
	return nil
}

func (r *Runner) playRound() error {
	if err := r.ctrl.StartNewRound(); err != nil {
		return err
	}
	r.sched.RunAll(0)

	gridSize := r.ctrl.GridSize()
	for {
		snap, ok := r.ctrl.RoundSnapshot()
		if !ok {
			return errors.New("no round in progress")
		}
		if snap.Phase == game.PhaseResolved {
			return nil
		}
		if snap.Phase != game.PhaseAwaitingInput {
			return fmt.Errorf("unexpected phase %s", snap.Phase)
		}

		if snap.Replays < r.opts.MaxReplays && r.player.WantsReplay() {
			r.ctrl.RequestReplay()
			r.sched.RunAll(0)
			continue
		}

		r.clock.Advance(r.opts.ThinkTime)
		choice := r.player.Choose(snap.Sequence[snap.Cursor], gridSize)
		verdict, err := r.ctrl.HandleSelection(choice)
		if err != nil {
			return err
		}
		r.logger.Debug().Stringer("cell", choice).Stringer("verdict", verdict).Msg("simulated click")
	}
}
