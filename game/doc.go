// Package game implements the round lifecycle and performance bookkeeping of
// the block memory game.
//
// A Controller owns all mutable session state: the current level, the streak
// counters, the round in progress and the PerformanceLog. Display stepping is
// driven through an injected Scheduler and input arrives through the On*
// handlers, all on a single logical thread. Presentation is reached only
// through the Presenter interface.
//
// Statistics are derived on demand from the log by pure reducers
// (DailySummary, MonthlySummary, Streaks) and rendered by FormatReport.
package game
