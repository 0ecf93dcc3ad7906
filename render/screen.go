package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/memgrid/audio"
	"github.com/lixenwraith/memgrid/constants"
	"github.com/lixenwraith/memgrid/game"
)

// SoundPlayer plays cues; *audio.SoundManager satisfies it
type SoundPlayer interface {
	Play(st audio.SoundType) bool
}

// Screen draws the board on a tcell.Screen and implements game.Presenter
// Setters only record state; Draw paints it
type Screen struct {
	screen tcell.Screen
	layout Layout
	sound  SoundPlayer

	cells         []game.CellState
	cellsEnabled  bool
	nextEnabled   bool
	replayEnabled bool
	status        string

	report       []string
	reportOffset int
}

// NewScreen creates a presenter for a gridSize board, sound may be nil
func NewScreen(screen tcell.Screen, gridSize int, sound SoundPlayer) *Screen {
	return &Screen{
		screen: screen,
		layout: Layout{GridSize: gridSize},
		sound:  sound,
		cells:  make([]game.CellState, gridSize*gridSize),
	}
}

// Layout returns the grid geometry used for hit-testing
func (s *Screen) Layout() Layout { return s.layout }

// CellAt hit-tests terminal coordinates, always misses while the report is open
func (s *Screen) CellAt(x, y int) (game.Position, bool) {
	if s.ReportVisible() {
		return game.Position{}, false
	}
	return s.layout.CellAt(x, y)
}

// Cell returns the recorded state of p
func (s *Screen) Cell(p game.Position) game.CellState {
	if !p.InBounds(s.layout.GridSize) {
		return game.CellDefault
	}
	return s.cells[p.Row*s.layout.GridSize+p.Col]
}

func (s *Screen) Status() string             { return s.status }
func (s *Screen) CellsEnabled() bool         { return s.cellsEnabled }
func (s *Screen) NextRoundEnabled() bool     { return s.nextEnabled }
func (s *Screen) ReplayEnabled() bool        { return s.replayEnabled }
func (s *Screen) ReportVisible() bool        { return s.report != nil }
func (s *Screen) SetStatus(msg string)       { s.status = msg }
func (s *Screen) SetCellsEnabled(e bool)     { s.cellsEnabled = e }
func (s *Screen) SetNextRoundEnabled(e bool) { s.nextEnabled = e }
func (s *Screen) SetReplayEnabled(e bool)    { s.replayEnabled = e }

// SetCell records state for p and plays the matching cue
// Cells restored before input opens stay silent
func (s *Screen) SetCell(p game.Position, state game.CellState) {
	if !p.InBounds(s.layout.GridSize) {
		return
	}
	s.cells[p.Row*s.layout.GridSize+p.Col] = state

	switch state {
	case game.CellHighlighted:
		s.play(audio.SoundHighlight)
	case game.CellCorrect:
		if s.cellsEnabled {
			s.play(audio.SoundCorrect)
		}
	case game.CellWrong:
		s.play(audio.SoundWrong)
	}
}

// RoundResolved plays the completion cue for a won round
func (s *Screen) RoundResolved(rec game.RoundRecord) {
	if rec.Succeeded() {
		s.play(audio.SoundComplete)
	}
}

func (s *Screen) play(st audio.SoundType) {
	if s.sound != nil {
		s.sound.Play(st)
	}
}

// ShowReport opens the overlay with text
func (s *Screen) ShowReport(text string) {
	s.report = strings.Split(strings.TrimRight(text, "\n"), "\n")
	s.reportOffset = 0
}

// CloseReport hides the overlay
func (s *Screen) CloseReport() {
	s.report = nil
	s.reportOffset = 0
}

// ScrollReport moves the overlay by delta lines, clamped to the text
func (s *Screen) ScrollReport(delta int) {
	if s.report == nil {
		return
	}
	_, height := s.screen.Size()
	maxOffset := len(s.report) - (height - 1)
	if maxOffset < 0 {
		maxOffset = 0
	}
	s.reportOffset += delta
	if s.reportOffset > maxOffset {
		s.reportOffset = maxOffset
	}
	if s.reportOffset < 0 {
		s.reportOffset = 0
	}
}

// Draw paints the full frame and shows it
func (s *Screen) Draw() {
	s.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	s.fill(defaultStyle)

	if s.report != nil {
		s.drawReport()
		s.screen.Show()
		return
	}

	s.drawText(constants.GridOriginX, 0, constants.TitleText, defaultStyle.Foreground(RgbTitle).Bold(true))
	s.drawGrid(defaultStyle)
	s.drawText(constants.GridOriginX, s.layout.StatusY(), s.status, defaultStyle.Foreground(RgbStatusBar))
	s.drawHints(defaultStyle)

	s.screen.Show()
}

func (s *Screen) fill(style tcell.Style) {
	width, height := s.screen.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *Screen) drawGrid(defaultStyle tcell.Style) {
	n := s.layout.GridSize
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			p := game.Position{Row: row, Col: col}
			x0, y0 := s.layout.CellOrigin(p)
			style := defaultStyle.Background(CellColor(s.Cell(p)))
			for dy := 0; dy < constants.CellHeight; dy++ {
				for dx := 0; dx < constants.CellWidth; dx++ {
					s.screen.SetContent(x0+dx, y0+dy, ' ', nil, style)
				}
			}
		}
	}
}

func (s *Screen) drawHints(defaultStyle tcell.Style) {
	hints := []struct {
		text    string
		enabled bool
	}{
		{constants.HintNextRound, s.nextEnabled},
		{constants.HintReplay, s.replayEnabled},
		{constants.HintPerformance, true},
		{constants.HintQuit, true},
	}

	x := constants.GridOriginX
	y := s.layout.HintsY()
	for _, h := range hints {
		fg := RgbHintDim
		if h.enabled {
			fg = RgbHintEnabled
		}
		s.drawText(x, y, h.text, defaultStyle.Foreground(fg))
		x += len(h.text) + 2
	}
}

func (s *Screen) drawReport() {
	width, height := s.screen.Size()
	style := tcell.StyleDefault.Background(RgbReportBg).Foreground(RgbReportText)
	s.fill(style)

	visible := height - 1
	for i := 0; i < visible && s.reportOffset+i < len(s.report); i++ {
		s.drawText(1, i, s.report[s.reportOffset+i], style)
	}

	hint := constants.ReportCloseHint
	x := width - len(hint) - 1
	if x < 0 {
		x = 0
	}
	s.drawText(x, height-1, hint, style.Foreground(RgbHintEnabled))
}

func (s *Screen) drawText(x, y int, text string, style tcell.Style) {
	width, height := s.screen.Size()
	if y < 0 || y >= height {
		return
	}
	for _, ch := range text {
		if x >= width {
			return
		}
		if x >= 0 {
			s.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}
