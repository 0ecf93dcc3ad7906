package constants

import "time"

// Board Defaults
const (
	// DefaultGridSize is the side length of the square board
	DefaultGridSize = 7

	// DefaultInitialSequenceLength is the sequence length at level 1
	DefaultInitialSequenceLength = 3

	// DefaultInitialLevel is the level of the first round
	DefaultInitialLevel = 1

	// MinLevel is the floor for level and the value a failed round resets to
	MinLevel = 1
)

// Sequence Display Timing
const (
	// HighlightDurationMs is how long a sequence cell stays lit
	HighlightDurationMs = 1000

	// GapDurationMs is the dark pause between two lit cells
	GapDurationMs = 200

	// HighlightDuration is how long a sequence cell stays lit
	HighlightDuration = HighlightDurationMs * time.Millisecond

	// GapDuration is the dark pause between two lit cells
	GapDuration = GapDurationMs * time.Millisecond
)

// Date keys used by the performance log
const (
	DateKeyLayout  = "2006-01-02"
	MonthKeyLayout = "2006-01"
)
