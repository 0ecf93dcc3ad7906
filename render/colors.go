package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/memgrid/game"
)

// RGB color definitions for cell states
var (
	RgbCellDefault     = tcell.NewRGBColor(211, 211, 211) // Light gray
	RgbCellHighlighted = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbCellCorrect     = tcell.NewRGBColor(0, 200, 0)     // Green
	RgbCellWrong       = tcell.NewRGBColor(255, 255, 0)   // Yellow

	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbTitle       = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStatusBar   = tcell.NewRGBColor(255, 255, 255) // White
	RgbHintEnabled = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbHintDim     = tcell.NewRGBColor(70, 70, 80)    // Dim gray
	RgbReportText  = tcell.NewRGBColor(220, 220, 220)
	RgbReportBg    = tcell.NewRGBColor(16, 16, 24)
)

// CellColor returns the fill color for a cell state
func CellColor(state game.CellState) tcell.Color {
	switch state {
	case game.CellHighlighted:
		return RgbCellHighlighted
	case game.CellCorrect:
		return RgbCellCorrect
	case game.CellWrong:
		return RgbCellWrong
	default:
		return RgbCellDefault
	}
}
