package game

// Phase is the coarse state of a round
type Phase uint8

const (
	PhaseDisplaying Phase = iota
	PhaseAwaitingInput
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseDisplaying:
		return "displaying"
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Outcome is the result of a resolved round
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeFail
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "Success"
	case OutcomeFail:
		return "Fail"
	default:
		return "None"
	}
}

// Verdict classifies one selection
type Verdict uint8

const (
	// VerdictIgnored means the input arrived out of phase
	VerdictIgnored Verdict = iota
	VerdictCorrect
	VerdictComplete
	VerdictWrong
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictComplete:
		return "complete"
	case VerdictWrong:
		return "wrong"
	default:
		return "ignored"
	}
}

// StepKind is the presentation effect of one display advance
type StepKind uint8

const (
	StepNone StepKind = iota
	StepHighlight
	StepUnhighlight
	StepInputReady
)

// DisplayStep describes what changed on an advance
type DisplayStep struct {
	Kind  StepKind
	Index int
	Pos   Position
}

// RoundSnapshot is a read-only view of a round
type RoundSnapshot struct {
	Phase        Phase
	DisplayIndex int
	Lit          bool
	Cursor       int
	Outcome      Outcome
	Replays      int
	Sequence     Sequence
}

// Round drives one attempt through Displaying -> AwaitingInput -> Resolved
// Displaying(i) alternates lit and unlit sub-steps; the sequence never changes
type Round struct {
	sequence Sequence
	phase    Phase
	index    int
	lit      bool
	cursor   int
	outcome  Outcome
	replays  int
}

// NewRound starts in Displaying(0) with the first cell lit
func NewRound(seq Sequence) (*Round, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	return &Round{
		sequence: seq.Clone(),
		phase:    PhaseDisplaying,
		lit:      true,
	}, nil
}

func (r *Round) Phase() Phase       { return r.phase }
func (r *Round) Cursor() int        { return r.cursor }
func (r *Round) Outcome() Outcome   { return r.outcome }
func (r *Round) Replays() int       { return r.replays }
func (r *Round) Len() int           { return len(r.sequence) }
func (r *Round) Sequence() Sequence { return r.sequence.Clone() }

// Matched returns the prefix already reproduced
func (r *Round) Matched() Sequence {
	return r.sequence[:r.cursor].Clone()
}

// Current describes the display state without advancing
func (r *Round) Current() DisplayStep {
	if r.phase != PhaseDisplaying {
		return DisplayStep{Kind: StepNone}
	}
	kind := StepUnhighlight
	if r.lit {
		kind = StepHighlight
	}
	return DisplayStep{Kind: kind, Index: r.index, Pos: r.sequence[r.index]}
}

// Advance moves the display one sub-step: lit -> unlit -> next lit
// Advancing past the last unlit cell enters AwaitingInput
func (r *Round) Advance() DisplayStep {
	if r.phase != PhaseDisplaying {
		return DisplayStep{Kind: StepNone}
	}

	if r.lit {
		r.lit = false
		return DisplayStep{Kind: StepUnhighlight, Index: r.index, Pos: r.sequence[r.index]}
	}

	if r.index+1 < len(r.sequence) {
		r.index++
		r.lit = true
		return DisplayStep{Kind: StepHighlight, Index: r.index, Pos: r.sequence[r.index]}
	}

	r.index = len(r.sequence)
	r.phase = PhaseAwaitingInput
	return DisplayStep{Kind: StepInputReady, Index: r.index}
}

// Select validates p against the next expected position
// The first wrong selection resolves the round as a failure
func (r *Round) Select(p Position) Verdict {
	if r.phase != PhaseAwaitingInput {
		return VerdictIgnored
	}

	if p != r.sequence[r.cursor] {
		r.phase = PhaseResolved
		r.outcome = OutcomeFail
		return VerdictWrong
	}

	r.cursor++
	if r.cursor == len(r.sequence) {
		r.phase = PhaseResolved
		r.outcome = OutcomeSuccess
		return VerdictComplete
	}
	return VerdictCorrect
}

// Replay re-enters Displaying(0) with the same sequence, keeping the cursor
func (r *Round) Replay() bool {
	if r.phase != PhaseAwaitingInput {
		return false
	}
	r.replays++
	r.phase = PhaseDisplaying
	r.index = 0
	r.lit = true
	return true
}

// Snapshot returns a copy of the round state
func (r *Round) Snapshot() RoundSnapshot {
	return RoundSnapshot{
		Phase:        r.phase,
		DisplayIndex: r.index,
		Lit:          r.lit && r.phase == PhaseDisplaying,
		Cursor:       r.cursor,
		Outcome:      r.outcome,
		Replays:      r.replays,
		Sequence:     r.sequence.Clone(),
	}
}
