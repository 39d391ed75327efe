package output

import (
	"fmt"
	"time"

	"github.com/crimson-sun/orgchart/internal/stats"
)

// timestampLayout renders the generation time the way the document shows it.
const timestampLayout = "January 2, 2006 at 3:04 PM MST"

// Timestamp formats a report generation time for display.
func Timestamp(t time.Time) string {
	return "Generated " + t.Format(timestampLayout)
}

// TotalLine formats the statistics total.
func TotalLine(s *stats.Stats) string {
	return fmt.Sprintf("Total Employees: %d", s.Total)
}

// StatLine formats one breakdown entry as the document shows it.
func StatLine(e stats.Entry) string {
	return fmt.Sprintf("  %s: %d", e.Key, e.Count)
}
