package game

import (
	"fmt"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/lixenwraith/memgrid/constants"
)

// ReportBanner renders the ASCII heading of the performance report
func ReportBanner() string {
	fig := figure.NewFigure("memgrid", constants.ReportBannerFont, false)
	return strings.TrimRight(strings.Join(fig.Slicify(), "\n"), "\n ")
}

// FormatReport renders the round table, daily and monthly summaries and streak info
// Pure function of the records and the streak values passed in
func FormatReport(records []RoundRecord, currentStreak, longestStreak int) string {
	var b strings.Builder

	b.WriteString(ReportBanner())
	b.WriteString("\n\n")

	b.WriteString("=== Round-by-Round Details ===\n")
	fmt.Fprintf(&b, "%-6s%-6s%-10s%-10s%-8s%-12s%-8s\n",
		"Round", "Level", "Result", "Time(s)", "Replays", "Date", "Streak")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, rec := range records {
		fmt.Fprintf(&b, "%-6d%-6d%-10s%-10.2f%-8d%-12s%-8d\n",
			rec.Round, rec.Level, rec.Outcome, rec.Seconds(), rec.Replays, rec.DateKey(), rec.StreakAfter)
	}
	b.WriteString("\n")

	b.WriteString("=== Daily Summary ===\n")
	writeSummaryTable(&b, "Date", 12, DailySummary(records))
	b.WriteString("\n")

	b.WriteString("=== Monthly Summary ===\n")
	writeSummaryTable(&b, "Month", 8, MonthlySummary(records))
	b.WriteString("\n")

	b.WriteString("=== Streak Info ===\n")
	fmt.Fprintf(&b, "Current Streak: %d\n", currentStreak)
	fmt.Fprintf(&b, "Longest Streak: %d\n", longestStreak)

	return b.String()
}

func writeSummaryTable(b *strings.Builder, keyHeader string, keyWidth int, table SummaryTable) {
	fmt.Fprintf(b, "%-*s%-8s%-8s%-8s%-10s%-10s\n", keyWidth, keyHeader, "Rounds", "Success", "Fail", "AvgTime", "StdDev")
	b.WriteString(strings.Repeat("-", keyWidth+44) + "\n")
	for _, row := range table.Rows() {
		fmt.Fprintf(b, "%-*s%-8d%-8d%-8d%-10.2f%-10.2f\n",
			keyWidth, row.Key, row.Rounds, row.Successes, row.Fails, row.AvgTime, row.TimeStdDev)
	}
}
