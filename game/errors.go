package game

import "errors"

var (
	// ErrInvalidSelection is returned for a selection outside the grid
	ErrInvalidSelection = errors.New("selection outside grid")

	// ErrInvalidSequenceParams signals a generation precondition violation
	ErrInvalidSequenceParams = errors.New("invalid sequence parameters")

	// ErrEmptySequence is returned when a round is created without positions
	ErrEmptySequence = errors.New("empty sequence")

	// ErrRoundInProgress is returned when a new round is requested before the current one resolves
	ErrRoundInProgress = errors.New("round in progress")

	// ErrInvalidConfig is returned by Config.Validate
	ErrInvalidConfig = errors.New("invalid game config")
)
