package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/memgrid/constants"
)

// RoundRecord is the immutable result of one finalized round
type RoundRecord struct {
	Round          int
	Level          int
	Outcome        Outcome
	Elapsed        time.Duration
	Replays        int
	Date           time.Time // midnight of the resolution day, clock location
	MonthKey       string    // YYYY-MM of Date
	StreakAfter    int
	SequenceLength int
	SessionID      uuid.UUID
}

// Seconds returns the elapsed time in seconds
func (r RoundRecord) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// DateKey returns the YYYY-MM-DD grouping key
func (r RoundRecord) DateKey() string {
	return r.Date.Format(constants.DateKeyLayout)
}

// Succeeded reports a successful outcome
func (r RoundRecord) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}

// calendarDate truncates t to midnight in its own location
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// PerformanceLog is the append-only round history of one session
type PerformanceLog struct {
	records []RoundRecord
}

// NewPerformanceLog creates an empty log
func NewPerformanceLog() *PerformanceLog {
	return &PerformanceLog{}
}

// Append numbers rec as the next round and stores it
func (l *PerformanceLog) Append(rec RoundRecord) RoundRecord {
	rec.Round = len(l.records) + 1
	l.records = append(l.records, rec)
	return rec
}

// Len returns the number of recorded rounds
func (l *PerformanceLog) Len() int {
	return len(l.records)
}

// Records returns a copy in chronological order
func (l *PerformanceLog) Records() []RoundRecord {
	out := make([]RoundRecord, len(l.records))
	copy(out, l.records)
	return out
}
