package constants

import "time"

// Grid Layout
const (
	// CellWidth is the terminal columns occupied by one cell
	CellWidth = 6

	// CellHeight is the terminal rows occupied by one cell
	CellHeight = 3

	// CellGapX is the horizontal gap between cells
	CellGapX = 2

	// CellGapY is the vertical gap between cells
	CellGapY = 1

	// GridOriginX is the left margin of the grid
	GridOriginX = 2

	// GridOriginY is the top margin of the grid, leaving room for the title row
	GridOriginY = 2
)

// Text
const (
	TitleText = "Block Memory Game"

	HintNextRound   = "[n] next round"
	HintReplay      = "[r] replay"
	HintPerformance = "[p] performance"
	HintQuit        = "[q] quit"

	ReportCloseHint = "press any key to close"

	// ReportBannerFont is the go-figure font used for the report heading
	ReportBannerFont = "small"
)

// Event Loop
const (
	// RedrawInterval bounds how long the loop waits before a forced redraw
	RedrawInterval = 250 * time.Millisecond
)
