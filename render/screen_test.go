package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/memgrid/audio"
	"github.com/lixenwraith/memgrid/constants"
	"github.com/lixenwraith/memgrid/engine"
	"github.com/lixenwraith/memgrid/game"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSound struct {
	played []audio.SoundType
}

func (r *recordingSound) Play(st audio.SoundType) bool {
	r.played = append(r.played, st)
	return true
}

func (r *recordingSound) count(st audio.SoundType) int {
	n := 0
	for _, p := range r.played {
		if p == st {
			n++
		}
	}
	return n
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 40)
	return screen
}

func backgroundAt(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func rowText(screen tcell.Screen, y int) string {
	width, _ := screen.Size()
	runes := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		runes = append(runes, mainc)
	}
	return string(runes)
}

func TestScreenDrawsCellColors(t *testing.T) {
	sim := newSimScreen(t)
	s := NewScreen(sim, 3, nil)

	s.SetCell(game.Position{Row: 0, Col: 0}, game.CellHighlighted)
	s.SetCell(game.Position{Row: 1, Col: 1}, game.CellCorrect)
	s.SetCell(game.Position{Row: 2, Col: 2}, game.CellWrong)
	s.Draw()

	cases := map[game.Position]tcell.Color{
		{Row: 0, Col: 0}: RgbCellHighlighted,
		{Row: 1, Col: 1}: RgbCellCorrect,
		{Row: 2, Col: 2}: RgbCellWrong,
		{Row: 0, Col: 1}: RgbCellDefault,
	}
	for p, want := range cases {
		x, y := s.Layout().CellOrigin(p)
		assert.Equal(t, want, backgroundAt(sim, x+1, y+1), "cell %s", p)
	}
}

func TestScreenStatusAndHints(t *testing.T) {
	sim := newSimScreen(t)
	s := NewScreen(sim, 2, nil)

	s.SetStatus("Level 4: Watch the sequence...")
	s.SetNextRoundEnabled(true)
	s.Draw()

	assert.Contains(t, rowText(sim, 0), constants.TitleText)
	assert.Contains(t, rowText(sim, s.Layout().StatusY()), "Level 4: Watch the sequence...")

	hints := rowText(sim, s.Layout().HintsY())
	assert.Contains(t, hints, constants.HintNextRound)
	assert.Contains(t, hints, constants.HintReplay)

	nextX := constants.GridOriginX
	replayX := nextX + len(constants.HintNextRound) + 2
	_, _, nextStyle, _ := sim.GetContent(nextX, s.Layout().HintsY())
	_, _, replayStyle, _ := sim.GetContent(replayX, s.Layout().HintsY())
	nextFg, _, _ := nextStyle.Decompose()
	replayFg, _, _ := replayStyle.Decompose()
	assert.Equal(t, RgbHintEnabled, nextFg)
	assert.Equal(t, RgbHintDim, replayFg)
}

func TestScreenReportOverlay(t *testing.T) {
	sim := newSimScreen(t)
	s := NewScreen(sim, 3, nil)
	x, y := s.Layout().CellOrigin(game.Position{})

	s.ShowReport("=== Streak Info ===\nCurrent Streak: 2\n")
	s.Draw()
	assert.True(t, s.ReportVisible())
	assert.Contains(t, rowText(sim, 1), "Current Streak: 2")
	assert.Contains(t, rowText(sim, 39), constants.ReportCloseHint)

	_, ok := s.CellAt(x, y)
	assert.False(t, ok, "grid is not clickable under the report")

	s.CloseReport()
	s.Draw()
	assert.False(t, s.ReportVisible())
	_, ok = s.CellAt(x, y)
	assert.True(t, ok)
}

func TestScreenReportScrollClamps(t *testing.T) {
	sim := newSimScreen(t)
	sim.SetSize(80, 5)
	s := NewScreen(sim, 1, nil)

	s.ShowReport("a\nb\nc\nd\ne\nf\ng")
	s.ScrollReport(100)
	s.Draw()
	assert.Equal(t, 3, s.reportOffset)
	assert.Equal(t, 'd', []rune(rowText(sim, 0))[1])

	s.ScrollReport(-100)
	assert.Equal(t, 0, s.reportOffset)
}

func TestScreenSetCellIgnoresOutOfGrid(t *testing.T) {
	s := NewScreen(newSimScreen(t), 2, nil)
	s.SetCell(game.Position{Row: 5, Col: 0}, game.CellWrong)
	assert.Equal(t, game.CellDefault, s.Cell(game.Position{Row: 5, Col: 0}))
}

// Drives a full controller round against the screen with a manual scheduler
func TestScreenWithControllerCues(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC))
	sched := engine.NewManualScheduler(clock)
	sound := &recordingSound{}
	s := NewScreen(newSimScreen(t), 4, sound)

	cfg := game.DefaultConfig()
	cfg.GridSize = 4
	cfg.Seed = 11
	ctrl, err := game.NewController(cfg, s, sched, clock, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, ctrl.StartNewRound())
	sched.RunAll(0)

	snap, ok := ctrl.RoundSnapshot()
	require.True(t, ok)
	assert.Equal(t, len(snap.Sequence), sound.count(audio.SoundHighlight))
	assert.True(t, s.CellsEnabled())
	assert.True(t, s.ReplayEnabled())

	// First click, then replay: restored cells stay silent
	_, err = ctrl.HandleSelection(snap.Sequence[0])
	require.NoError(t, err)
	assert.Equal(t, 1, sound.count(audio.SoundCorrect))
	require.True(t, ctrl.RequestReplay())
	sched.RunAll(0)
	assert.Equal(t, 1, sound.count(audio.SoundCorrect))
	assert.Equal(t, game.CellCorrect, s.Cell(snap.Sequence[0]))

	for _, p := range snap.Sequence[1:] {
		_, err = ctrl.HandleSelection(p)
		require.NoError(t, err)
	}
	assert.Equal(t, len(snap.Sequence), sound.count(audio.SoundCorrect))
	assert.Equal(t, 1, sound.count(audio.SoundComplete))
	assert.True(t, s.NextRoundEnabled())
	assert.Contains(t, s.Status(), "complete")
}
