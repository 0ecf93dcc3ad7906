package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/memgrid/constants"
	"github.com/rs/zerolog"
)

// Config holds the board and timing parameters of a session
type Config struct {
	GridSize              int
	InitialSequenceLength int
	InitialLevel          int
	HighlightDuration     time.Duration
	GapDuration           time.Duration
	Seed                  uint64
}

// DefaultConfig returns the stock 7x7 board with a 3-cell opening sequence
func DefaultConfig() Config {
	return Config{
		GridSize:              constants.DefaultGridSize,
		InitialSequenceLength: constants.DefaultInitialSequenceLength,
		InitialLevel:          constants.DefaultInitialLevel,
		HighlightDuration:     constants.HighlightDuration,
		GapDuration:           constants.GapDuration,
	}
}

// Validate checks board and timing values
// An initial level below the minimum is clamped rather than rejected
func (c *Config) Validate() error {
	if c.GridSize < 1 {
		return fmt.Errorf("%w: grid size %d", ErrInvalidConfig, c.GridSize)
	}
	if c.InitialSequenceLength < 1 {
		return fmt.Errorf("%w: initial sequence length %d", ErrInvalidConfig, c.InitialSequenceLength)
	}
	if c.HighlightDuration <= 0 || c.GapDuration <= 0 {
		return fmt.Errorf("%w: display durations must be positive", ErrInvalidConfig)
	}
	if c.InitialLevel < constants.MinLevel {
		c.InitialLevel = constants.MinLevel
	}
	return nil
}

// Controller owns level, streak, the round in progress and the performance log
// All methods must be called from one control thread
type Controller struct {
	cfg       Config
	generator *SequenceGenerator
	log       *PerformanceLog
	presenter Presenter
	observer  ResolutionObserver
	scheduler Scheduler
	clock     Clock
	logger    zerolog.Logger
	sessionID uuid.UUID

	level         int
	currentStreak int
	longestStreak int

	round      *Round
	roundStart time.Time

	// Bumped per display pass; stale scheduled steps compare and drop
	displayEpoch uint64
}

// NewController validates cfg and wires the collaborators
func NewController(cfg Config, presenter Presenter, scheduler Scheduler, clock Clock, logger zerolog.Logger) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if presenter == nil || scheduler == nil || clock == nil {
		return nil, errors.New("controller requires presenter, scheduler and clock")
	}

	sessionID := uuid.New()
	c := &Controller{
		cfg:       cfg,
		generator: NewSequenceGenerator(cfg.Seed),
		log:       NewPerformanceLog(),
		presenter: presenter,
		scheduler: scheduler,
		clock:     clock,
		logger:    logger.With().Str("session", sessionID.String()).Logger(),
		sessionID: sessionID,
		level:     cfg.InitialLevel,
	}
	if obs, ok := presenter.(ResolutionObserver); ok {
		c.observer = obs
	}
	return c, nil
}

func (c *Controller) Level() int           { return c.level }
func (c *Controller) CurrentStreak() int   { return c.currentStreak }
func (c *Controller) LongestStreak() int   { return c.longestStreak }
func (c *Controller) SessionID() uuid.UUID { return c.sessionID }
func (c *Controller) GridSize() int        { return c.cfg.GridSize }

// Records returns the performance log contents in round order
func (c *Controller) Records() []RoundRecord {
	return c.log.Records()
}

// RoundSnapshot returns the state of the current round, if any
func (c *Controller) RoundSnapshot() (RoundSnapshot, bool) {
	if c.round == nil {
		return RoundSnapshot{}, false
	}
	return c.round.Snapshot(), true
}

// ReplayCount returns replays requested in the current round
func (c *Controller) ReplayCount() int {
	if c.round == nil {
		return 0
	}
	return c.round.Replays()
}

// StartNewRound generates a sequence for the current level and begins displaying it
func (c *Controller) StartNewRound() error {
	if c.round != nil && c.round.Phase() != PhaseResolved {
		return ErrRoundInProgress
	}

	seq, err := c.generator.Generate(c.cfg.GridSize, c.level, c.cfg.InitialSequenceLength)
	if err != nil {
		return fmt.Errorf("generate sequence: %w", err)
	}
	return c.beginRound(seq)
}

// beginRound resets per-round state and starts the first display pass
func (c *Controller) beginRound(seq Sequence) error {
	round, err := NewRound(seq)
	if err != nil {
		return err
	}

	c.round = round
	c.roundStart = c.clock.Now()

	c.presenter.SetNextRoundEnabled(false)
	c.presenter.SetReplayEnabled(false)
	c.presenter.SetCellsEnabled(false)
	c.resetCells()
	c.presenter.SetStatus(fmt.Sprintf("Level %d: Watch the sequence...", c.level))

	c.logger.Debug().
		Int("round", c.log.Len()+1).
		Int("level", c.level).
		Int("length", round.Len()).
		Msg("round started")

	c.runDisplay()
	return nil
}

// HandleSelection validates p and feeds it to the round when input is accepted
func (c *Controller) HandleSelection(p Position) (Verdict, error) {
	if !p.InBounds(c.cfg.GridSize) {
		return VerdictIgnored, fmt.Errorf("%w: %s", ErrInvalidSelection, p)
	}
	if c.round == nil || c.round.Phase() != PhaseAwaitingInput {
		return VerdictIgnored, nil
	}

	verdict := c.round.Select(p)
	switch verdict {
	case VerdictCorrect:
		c.presenter.SetCell(p, CellCorrect)
	case VerdictComplete:
		c.presenter.SetCell(p, CellCorrect)
		c.finalizeRound()
	case VerdictWrong:
		c.presenter.SetCell(p, CellWrong)
		c.finalizeRound()
	}
	return verdict, nil
}

// RequestReplay redisplays the unchanged sequence while awaiting input
func (c *Controller) RequestReplay() bool {
	if c.round == nil || !c.round.Replay() {
		return false
	}

	c.presenter.SetReplayEnabled(false)
	c.presenter.SetCellsEnabled(false)
	c.resetCells()
	c.presenter.SetStatus("Replaying the sequence. Watch carefully...")

	c.logger.Debug().Int("replays", c.round.Replays()).Int("cursor", c.round.Cursor()).Msg("replay requested")

	c.runDisplay()
	return true
}

// runDisplay renders the lit first cell and schedules the following steps
func (c *Controller) runDisplay() {
	c.displayEpoch++
	epoch := c.displayEpoch

	step := c.round.Current()
	if step.Kind == StepHighlight {
		c.presenter.SetCell(step.Pos, CellHighlighted)
	}
	c.scheduleAdvance(epoch, c.cfg.HighlightDuration)
}

func (c *Controller) scheduleAdvance(epoch uint64, d time.Duration) {
	c.scheduler.After(d, func() { c.advanceDisplay(epoch) })
}

// advanceDisplay is the scheduled callback for one display sub-step
func (c *Controller) advanceDisplay(epoch uint64) {
	if epoch != c.displayEpoch || c.round == nil {
		return
	}

	step := c.round.Advance()
	switch step.Kind {
	case StepUnhighlight:
		c.presenter.SetCell(step.Pos, CellDefault)
		c.scheduleAdvance(epoch, c.cfg.GapDuration)
	case StepHighlight:
		c.presenter.SetCell(step.Pos, CellHighlighted)
		c.scheduleAdvance(epoch, c.cfg.HighlightDuration)
	case StepInputReady:
		c.finishDisplay()
	}
}

// finishDisplay opens the board for input and restores matched cells after a replay
func (c *Controller) finishDisplay() {
	for _, p := range c.round.Matched() {
		c.presenter.SetCell(p, CellCorrect)
	}
	c.presenter.SetCellsEnabled(true)
	c.presenter.SetStatus("Click the blocks in the same order.")
	c.presenter.SetReplayEnabled(true)
}

// finalizeRound records the resolved round, then updates streak and level
func (c *Controller) finalizeRound() {
	outcome := c.round.Outcome()
	now := c.clock.Now()
	elapsed := now.Sub(c.roundStart)
	playedLevel := c.level

	if outcome == OutcomeSuccess {
		c.currentStreak++
		if c.currentStreak > c.longestStreak {
			c.longestStreak = c.currentStreak
		}
		c.level++
	} else {
		c.currentStreak = 0
		c.level = constants.MinLevel
	}

	rec := c.log.Append(RoundRecord{
		Level:          playedLevel,
		Outcome:        outcome,
		Elapsed:        elapsed,
		Replays:        c.round.Replays(),
		Date:           calendarDate(now),
		MonthKey:       now.Format(constants.MonthKeyLayout),
		StreakAfter:    c.currentStreak,
		SequenceLength: c.round.Len(),
		SessionID:      c.sessionID,
	})

	c.presenter.SetCellsEnabled(false)
	c.presenter.SetReplayEnabled(false)
	c.presenter.SetNextRoundEnabled(true)
	if outcome == OutcomeSuccess {
		c.presenter.SetStatus(fmt.Sprintf("Level %d complete! Well done.", playedLevel))
	} else {
		c.presenter.SetStatus(fmt.Sprintf("Wrong block! You reached Level %d. Restarting at Level %d.",
			playedLevel, constants.MinLevel))
	}

	c.logger.Info().
		Int("round", rec.Round).
		Int("level", rec.Level).
		Stringer("outcome", rec.Outcome).
		Dur("elapsed", rec.Elapsed).
		Int("replays", rec.Replays).
		Int("streak", rec.StreakAfter).
		Msg("round resolved")

	if c.observer != nil {
		c.observer.RoundResolved(rec)
	}
}

func (c *Controller) resetCells() {
	for row := 0; row < c.cfg.GridSize; row++ {
		for col := 0; col < c.cfg.GridSize; col++ {
			c.presenter.SetCell(Position{Row: row, Col: col}, CellDefault)
		}
	}
}

// OnCellClicked is the presentation entry point for a cell click
func (c *Controller) OnCellClicked(row, col int) {
	if _, err := c.HandleSelection(Position{Row: row, Col: col}); err != nil {
		c.logger.Warn().Err(err).Msg("selection rejected")
	}
}

// OnNextRoundRequested is the presentation entry point for "next round"
func (c *Controller) OnNextRoundRequested() {
	if err := c.StartNewRound(); err != nil {
		if errors.Is(err, ErrRoundInProgress) {
			c.logger.Debug().Msg("next round ignored while round in progress")
			return
		}
		c.logger.Error().Err(err).Msg("failed to start round")
	}
}

// OnReplayRequested is the presentation entry point for "replay sequence"
func (c *Controller) OnReplayRequested() {
	c.RequestReplay()
}

// OnShowPerformanceRequested renders the read-only performance report
func (c *Controller) OnShowPerformanceRequested() string {
	return FormatReport(c.log.Records(), c.currentStreak, c.longestStreak)
}
