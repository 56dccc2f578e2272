package reports

import (
	"fmt"
	"io"

	"access-analytics/internal/models"
)

// RenderHourlyCounts writes the hour labels and counts, one line per hour
// 0-23 in order.
func RenderHourlyCounts(w io.Writer, counts [24]int64) error {
	if _, err := fmt.Fprintln(w, "Hr: Count"); err != nil {
		return err
	}
	for hour, count := range counts {
		if _, err := fmt.Fprintf(w, "%d: %d\n", hour, count); err != nil {
			return err
		}
	}
	return nil
}

// RenderMonthlyCounts writes the month labels and counts, one line per month
// 1-12 in order.
func RenderMonthlyCounts(w io.Writer, counts [12]int64) error {
	if _, err := fmt.Fprintln(w, "Month: Count"); err != nil {
		return err
	}
	for month, count := range counts {
		if _, err := fmt.Fprintf(w, "%d: %d\n", month+1, count); err != nil {
			return err
		}
	}
	return nil
}

// RenderSummary writes the derived statistics of a report in a readable
// block. The quietest-hour and quietest-month lines spell out their no-data
// sentinels (-1 and 0 respectively) instead of hiding them.
func RenderSummary(w io.Writer, report *models.AccessReport) error {
	lines := []string{
		fmt.Sprintf("Log: %s (%s)", report.LogName, report.Format),
		fmt.Sprintf("Total accesses: %d", report.TotalAccesses),
		fmt.Sprintf("Busiest hour: %d", report.BusiestHour),
		fmt.Sprintf("Quietest hour: %s", formatQuietestHour(report.QuietestHour)),
		fmt.Sprintf("Busiest two-hour span: %d-%d", report.BusiestTwoHourStart, (report.BusiestTwoHourStart+1)%24),
		fmt.Sprintf("Busiest month: %d", report.BusiestMonth),
		fmt.Sprintf("Quietest month: %s", formatQuietestMonth(report.QuietestMonth)),
		fmt.Sprintf("Average accesses per month: %d", report.AverageAccessesPerMonth),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatQuietestHour(hour int) string {
	if hour == -1 {
		return "n/a (no accesses)"
	}
	return fmt.Sprintf("%d", hour)
}

func formatQuietestMonth(month int) string {
	if month == 0 {
		return "n/a (no accesses)"
	}
	return fmt.Sprintf("%d", month)
}
