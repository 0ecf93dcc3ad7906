package render

import (
	"github.com/lixenwraith/memgrid/constants"
	"github.com/lixenwraith/memgrid/game"
)

// Layout maps grid positions to terminal coordinates
type Layout struct {
	GridSize int
}

const (
	strideX = constants.CellWidth + constants.CellGapX
	strideY = constants.CellHeight + constants.CellGapY
)

// CellOrigin returns the top-left terminal coordinate of p
func (l Layout) CellOrigin(p game.Position) (x, y int) {
	return constants.GridOriginX + p.Col*strideX, constants.GridOriginY + p.Row*strideY
}

// CellAt hit-tests a terminal coordinate, gaps and margins miss
func (l Layout) CellAt(x, y int) (game.Position, bool) {
	dx := x - constants.GridOriginX
	dy := y - constants.GridOriginY
	if dx < 0 || dy < 0 {
		return game.Position{}, false
	}
	if dx%strideX >= constants.CellWidth || dy%strideY >= constants.CellHeight {
		return game.Position{}, false
	}

	p := game.Position{Row: dy / strideY, Col: dx / strideX}
	if !p.InBounds(l.GridSize) {
		return game.Position{}, false
	}
	return p, true
}

// GridWidth returns the terminal columns the grid spans
func (l Layout) GridWidth() int {
	if l.GridSize <= 0 {
		return 0
	}
	return l.GridSize*strideX - constants.CellGapX
}

// StatusY is the row under the grid holding the status message
func (l Layout) StatusY() int {
	return constants.GridOriginY + l.GridSize*strideY
}

// HintsY is the row holding the control hints
func (l Layout) HintsY() int {
	return l.StatusY() + 1
}
