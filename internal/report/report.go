// Package report assembles renderer output and statistics into the final
// document content.
package report

import (
	"time"

	"github.com/crimson-sun/orgchart/internal/model"
	"github.com/crimson-sun/orgchart/internal/render"
	"github.com/crimson-sun/orgchart/internal/stats"
)

// Section headings every document backend emits, in this order.
const (
	DefaultTitle        = "Organization Chart"
	SummaryHeading      = "Summary Statistics"
	OrganizationHeading = "By Organization"
	LocationHeading     = "By Location"
	LevelHeading        = "By Title Level"
)

// Report is the complete assembled document: title, timestamp, the ordered
// chart lines, and the statistics. Backends render it without re-deriving
// anything from the forest.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Lines       []model.Line
	Stats       *stats.Stats
}

// Build flattens the forest into a Report. An empty forest yields a report
// with no lines and zero totals; backends still emit both headings.
func Build(forest model.Forest, generatedAt time.Time) Report {
	return Report{
		Title:       DefaultTitle,
		GeneratedAt: generatedAt,
		Lines:       render.Lines(forest),
		Stats:       stats.Collect(forest),
	}
}
