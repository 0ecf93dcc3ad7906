package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceLogNumbersRounds(t *testing.T) {
	l := NewPerformanceLog()
	assert.Equal(t, 0, l.Len())

	for i := 0; i < 5; i++ {
		// Caller-supplied round numbers are overwritten
		rec := l.Append(RoundRecord{Round: 99, Level: i + 1})
		assert.Equal(t, i+1, rec.Round)
	}

	records := l.Records()
	require.Len(t, records, 5)
	for i, rec := range records {
		assert.Equal(t, i+1, rec.Round)
		assert.Equal(t, i+1, rec.Level)
	}
	assert.Equal(t, 5, l.Len())
}

func TestPerformanceLogRecordsAreCopied(t *testing.T) {
	l := NewPerformanceLog()
	l.Append(RoundRecord{Level: 1})

	records := l.Records()
	records[0].Level = 42
	assert.Equal(t, 1, l.Records()[0].Level)
}

func TestRoundRecordKeys(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	at := time.Date(2025, 2, 3, 23, 30, 0, 0, loc)
	rec := RoundRecord{
		Outcome:  OutcomeSuccess,
		Elapsed:  1500 * time.Millisecond,
		Date:     calendarDate(at),
		MonthKey: at.Format("2006-01"),
	}

	assert.Equal(t, "2025-02-03", rec.DateKey())
	assert.Equal(t, "2025-02", rec.MonthKey)
	assert.InDelta(t, 1.5, rec.Seconds(), 1e-9)
	assert.True(t, rec.Succeeded())
	assert.Equal(t, 0, rec.Date.Hour())
}
