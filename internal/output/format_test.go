package output

import (
	"testing"
	"time"

	"github.com/crimson-sun/orgchart/internal/stats"
)

func TestTimestamp(t *testing.T) {
	ts := time.Date(2026, 8, 24, 15, 4, 0, 0, time.UTC)
	got := Timestamp(ts)
	want := "Generated August 24, 2026 at 3:04 PM UTC"
	if got != want {
		t.Fatalf("Timestamp: got %q, want %q", got, want)
	}
}

func TestTotalLine(t *testing.T) {
	if got := TotalLine(&stats.Stats{Total: 7}); got != "Total Employees: 7" {
		t.Fatalf("TotalLine: got %q", got)
	}
	if got := TotalLine(&stats.Stats{}); got != "Total Employees: 0" {
		t.Fatalf("TotalLine zero: got %q", got)
	}
}

func TestStatLine(t *testing.T) {
	if got := StatLine(stats.Entry{Key: "Berlin", Count: 3}); got != "  Berlin: 3" {
		t.Fatalf("StatLine: got %q", got)
	}
}
