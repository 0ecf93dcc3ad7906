package game

import (
	"testing"
	"time"

	"github.com/lixenwraith/memgrid/engine"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// recordingPresenter captures presenter calls for assertions
type recordingPresenter struct {
	cells        map[Position]CellState
	cellsEnabled bool
	status       string
	nextEnabled  bool
	replayEnable bool
	highlights   []Position
	resolved     []RoundRecord
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{cells: make(map[Position]CellState)}
}

func (p *recordingPresenter) SetCell(pos Position, state CellState) {
	p.cells[pos] = state
	if state == CellHighlighted {
		p.highlights = append(p.highlights, pos)
	}
}
func (p *recordingPresenter) SetCellsEnabled(enabled bool)     { p.cellsEnabled = enabled }
func (p *recordingPresenter) SetStatus(msg string)             { p.status = msg }
func (p *recordingPresenter) SetNextRoundEnabled(enabled bool) { p.nextEnabled = enabled }
func (p *recordingPresenter) SetReplayEnabled(enabled bool)    { p.replayEnable = enabled }
func (p *recordingPresenter) RoundResolved(rec RoundRecord)    { p.resolved = append(p.resolved, rec) }

var testStart = time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC)

type harness struct {
	ctrl      *Controller
	presenter *recordingPresenter
	scheduler *engine.ManualScheduler
	clock     *engine.MockTimeProvider
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()
	clock := engine.NewMockTimeProvider(testStart)
	scheduler := engine.NewManualScheduler(clock)
	presenter := newRecordingPresenter()
	ctrl, err := NewController(cfg, presenter, scheduler, clock, zerolog.Nop())
	require.NoError(t, err)
	return &harness{ctrl: ctrl, presenter: presenter, scheduler: scheduler, clock: clock}
}

// start begins a round and runs the display to completion
func (h *harness) start(t *testing.T) Sequence {
	t.Helper()
	require.NoError(t, h.ctrl.StartNewRound())
	h.scheduler.RunAll(0)
	snap, ok := h.ctrl.RoundSnapshot()
	require.True(t, ok)
	require.Equal(t, PhaseAwaitingInput, snap.Phase)
	return snap.Sequence
}

// playSuccess reproduces the whole sequence
func (h *harness) playSuccess(t *testing.T) {
	t.Helper()
	for _, p := range h.start(t) {
		_, err := h.ctrl.HandleSelection(p)
		require.NoError(t, err)
	}
}

// playFail clicks a wrong cell first
func (h *harness) playFail(t *testing.T) {
	t.Helper()
	seq := h.start(t)
	verdict, err := h.ctrl.HandleSelection(wrongFor(seq[0], h.ctrl.GridSize()))
	require.NoError(t, err)
	require.Equal(t, VerdictWrong, verdict)
}

func wrongFor(p Position, gridSize int) Position {
	q := Position{Row: p.Row, Col: (p.Col + 1) % gridSize}
	if q == p {
		q = Position{Row: (p.Row + 1) % gridSize, Col: p.Col}
	}
	return q
}
