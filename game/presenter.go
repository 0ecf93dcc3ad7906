package game

import "time"

// CellState is the visual state of one grid cell
type CellState uint8

const (
	CellDefault CellState = iota
	CellHighlighted
	CellCorrect
	CellWrong
)

func (s CellState) String() string {
	switch s {
	case CellHighlighted:
		return "highlighted"
	case CellCorrect:
		return "correct"
	case CellWrong:
		return "wrong"
	default:
		return "default"
	}
}

// Presenter is the rendering surface driven by the Controller
type Presenter interface {
	SetCell(p Position, state CellState)
	SetCellsEnabled(enabled bool)
	SetStatus(msg string)
	SetNextRoundEnabled(enabled bool)
	SetReplayEnabled(enabled bool)
}

// ResolutionObserver is optionally implemented by a Presenter to learn about finished rounds
type ResolutionObserver interface {
	RoundResolved(rec RoundRecord)
}

// Scheduler invokes fn once, no earlier than d, on the caller's control thread
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Clock supplies wall-clock time
type Clock interface {
	Now() time.Time
}
