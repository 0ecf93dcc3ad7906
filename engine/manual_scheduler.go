package engine

import (
	"sort"
	"time"
)

// pendingCallback is a callback waiting for its due time
type pendingCallback struct {
	due time.Time
	seq uint64
	fn  func()
}

// ManualScheduler queues delayed callbacks and runs them only when asked
// Time moves by advancing the attached MockTimeProvider to each callback's due time
// Not safe for concurrent use; owned by a single control thread
type ManualScheduler struct {
	clock   *MockTimeProvider
	pending []pendingCallback
	nextSeq uint64
}

// NewManualScheduler creates a scheduler driven by the given mock clock
func NewManualScheduler(clock *MockTimeProvider) *ManualScheduler {
	return &ManualScheduler{clock: clock}
}

// After queues fn to run once no earlier than d from the current mock time
func (s *ManualScheduler) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	s.pending = append(s.pending, pendingCallback{
		due: s.clock.Now().Add(d),
		seq: s.nextSeq,
		fn:  fn,
	})
	s.nextSeq++
}

// Pending returns the number of queued callbacks
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// RunNext advances the clock to the earliest due callback and runs it
// Returns false when nothing is queued
func (s *ManualScheduler) RunNext() bool {
	if len(s.pending) == 0 {
		return false
	}

	// Earliest due first, FIFO among equal due times
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].due.Equal(s.pending[j].due) {
			return s.pending[i].seq < s.pending[j].seq
		}
		return s.pending[i].due.Before(s.pending[j].due)
	})

	next := s.pending[0]
	s.pending = s.pending[1:]

	s.clock.AdvanceTo(next.due)
	next.fn()
	return true
}

// RunAll drains the queue including callbacks scheduled while draining
// limit caps the number of callbacks run; limit <= 0 means no cap
func (s *ManualScheduler) RunAll(limit int) int {
	ran := 0
	for limit <= 0 || ran < limit {
		if !s.RunNext() {
			break
		}
		ran++
	}
	return ran
}
