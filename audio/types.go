package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundHighlight SoundType = iota // Sequence cell lit
	SoundCorrect                    // Correct selection
	SoundWrong                      // Wrong selection, round lost
	SoundComplete                   // Whole sequence reproduced
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundHighlight:
		return "highlight"
	case SoundCorrect:
		return "correct"
	case SoundWrong:
		return "wrong"
	case SoundComplete:
		return "complete"
	default:
		return "unknown"
	}
}
