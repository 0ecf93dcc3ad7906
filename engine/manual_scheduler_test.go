package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schedStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManualSchedulerOrdersByDueTime(t *testing.T) {
	clock := NewMockTimeProvider(schedStart)
	s := NewManualScheduler(clock)

	var order []string
	s.After(300*time.Millisecond, func() { order = append(order, "c") })
	s.After(100*time.Millisecond, func() { order = append(order, "a") })
	s.After(100*time.Millisecond, func() { order = append(order, "b") })
	require.Equal(t, 3, s.Pending())

	assert.Equal(t, 3, s.RunAll(0))
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 300*time.Millisecond, clock.Now().Sub(schedStart))
}

func TestManualSchedulerChainedCallbacks(t *testing.T) {
	clock := NewMockTimeProvider(schedStart)
	s := NewManualScheduler(clock)

	count := 0
	var step func()
	step = func() {
		count++
		if count < 5 {
			s.After(time.Second, step)
		}
	}
	s.After(time.Second, step)

	assert.Equal(t, 5, s.RunAll(0))
	assert.Equal(t, 5*time.Second, clock.Now().Sub(schedStart))
	assert.False(t, s.RunNext(), "empty queue")
}

func TestManualSchedulerRunAllLimit(t *testing.T) {
	s := NewManualScheduler(NewMockTimeProvider(schedStart))
	for i := 0; i < 4; i++ {
		s.After(time.Duration(i)*time.Millisecond, func() {})
	}

	assert.Equal(t, 2, s.RunAll(2))
	assert.Equal(t, 2, s.Pending())
}

func TestManualSchedulerNegativeDelay(t *testing.T) {
	clock := NewMockTimeProvider(schedStart)
	s := NewManualScheduler(clock)

	ran := false
	s.After(-time.Second, func() { ran = true })
	require.True(t, s.RunNext())

	assert.True(t, ran)
	assert.True(t, clock.Now().Equal(schedStart))
}
