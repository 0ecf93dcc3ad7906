package game

import (
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the rounds that share a grouping key
// Times are in seconds
type Summary struct {
	Rounds     int
	Successes  int
	Fails      int
	TotalTime  float64
	AvgTime    float64
	TimeStdDev float64 // sample standard deviation, 0 below two rounds
	BestTime   float64 // fastest successful round, 0 without successes
	Replays    int
	PeakLevel  int
}

// SummaryRow pairs a key with its summary
type SummaryRow struct {
	Key string
	Summary
}

// SummaryTable is a key -> Summary mapping that iterates in first-seen key order
type SummaryTable struct {
	keys []string
	rows map[string]*Summary
}

// Len returns the number of keys
func (t SummaryTable) Len() int {
	return len(t.keys)
}

// Keys returns keys in first-seen order
func (t SummaryTable) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Get returns the summary for key
func (t SummaryTable) Get(key string) (Summary, bool) {
	s, ok := t.rows[key]
	if !ok {
		return Summary{}, false
	}
	return *s, true
}

// Rows returns all rows in first-seen order
func (t SummaryTable) Rows() []SummaryRow {
	out := make([]SummaryRow, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, SummaryRow{Key: k, Summary: *t.rows[k]})
	}
	return out
}

// DailySummary groups records by calendar date
func DailySummary(records []RoundRecord) SummaryTable {
	return summarize(records, RoundRecord.DateKey)
}

// MonthlySummary groups records by year-month key
func MonthlySummary(records []RoundRecord) SummaryTable {
	return summarize(records, func(r RoundRecord) string { return r.MonthKey })
}

// summarize is a pure reducer over records in log order
func summarize(records []RoundRecord, keyOf func(RoundRecord) string) SummaryTable {
	table := SummaryTable{rows: make(map[string]*Summary)}
	times := make(map[string][]float64)

	for _, rec := range records {
		key := keyOf(rec)
		s, ok := table.rows[key]
		if !ok {
			s = &Summary{}
			table.rows[key] = s
			table.keys = append(table.keys, key)
		}

		secs := rec.Seconds()
		s.Rounds++
		s.TotalTime += secs
		s.Replays += rec.Replays
		if rec.Level > s.PeakLevel {
			s.PeakLevel = rec.Level
		}
		if rec.Succeeded() {
			s.Successes++
			if s.Successes == 1 || secs < s.BestTime {
				s.BestTime = secs
			}
		} else {
			s.Fails++
		}
		times[key] = append(times[key], secs)
	}

	for key, s := range table.rows {
		s.AvgTime = s.TotalTime / float64(s.Rounds)
		if len(times[key]) > 1 {
			s.TimeStdDev = stat.StdDev(times[key], nil)
		}
	}

	return table
}

// StreakFigures holds streak values derived from a record history
type StreakFigures struct {
	Current int // trailing run of successes
	Longest int // longest run of successes
}

// Streaks scans records in order for success runs
func Streaks(records []RoundRecord) StreakFigures {
	var f StreakFigures
	for _, rec := range records {
		if rec.Succeeded() {
			f.Current++
			if f.Current > f.Longest {
				f.Longest = f.Current
			}
		} else {
			f.Current = 0
		}
	}
	return f
}
