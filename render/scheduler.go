package render

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
)

// callbackEvent carries a scheduled callback through the tcell event queue
type callbackEvent struct {
	tcell.EventTime
	fn func()
}

// Scheduler implements game.Scheduler on top of the tcell event queue
// Timers fire on their own goroutines, callbacks run wherever Dispatch is called
type Scheduler struct {
	screen  tcell.Screen
	stopped atomic.Bool
}

// NewScheduler creates a scheduler posting to screen
func NewScheduler(screen tcell.Screen) *Scheduler {
	return &Scheduler{screen: screen}
}

// After posts fn to the event queue once d has elapsed
func (s *Scheduler) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	time.AfterFunc(d, func() {
		ev := &callbackEvent{fn: fn}
		ev.SetEventNow()
		// A full queue is transient, the loop drains it
		for !s.stopped.Load() {
			if err := s.screen.PostEvent(ev); err == nil {
				return
			}
			time.Sleep(time.Millisecond)
		}
	})
}

// Dispatch runs ev if it is a scheduled callback, returns false otherwise
func (s *Scheduler) Dispatch(ev tcell.Event) bool {
	cb, ok := ev.(*callbackEvent)
	if !ok {
		return false
	}
	if !s.stopped.Load() {
		cb.fn()
	}
	return true
}

// Stop drops pending and future callbacks
func (s *Scheduler) Stop() {
	s.stopped.Store(true)
}
