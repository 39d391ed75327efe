package orgchart

import (
	"time"

	"github.com/crimson-sun/orgchart/internal/hierarchy"
	"github.com/crimson-sun/orgchart/internal/model"
	"github.com/crimson-sun/orgchart/internal/report"
	"github.com/crimson-sun/orgchart/internal/title"
)

// Chart is a built organization chart: the reporting forest plus derived
// lines and statistics. Read-only after Build.
type Chart struct {
	rep report.Report
}

// Build resolves manager references over the given employees and returns
// the chart. Order of the input slice does not affect the result except
// for duplicate UserIDs, where the later record wins.
func Build(employees []Employee, opts ...Option) *Chart {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	records := make([]model.EmployeeRecord, len(employees))
	for i, e := range employees {
		records[i] = model.EmployeeRecord{
			Name:          e.Name,
			UserID:        e.UserID,
			JobTitle:      e.JobTitle,
			Organization:  e.Organization,
			Location:      e.Location,
			Email:         e.Email,
			Telephone:     e.Telephone,
			ManagerUserID: e.ManagerUserID,
		}
	}

	forest := hierarchy.Build(records)
	rep := report.Build(forest, o.generatedAt)
	rep.Title = o.title
	return &Chart{rep: rep}
}

// Lines returns the chart lines in depth-first pre-order.
func (c *Chart) Lines() []Line {
	lines := make([]Line, len(c.rep.Lines))
	for i, l := range c.rep.Lines {
		lines[i] = Line{
			Depth:    l.Depth,
			Text:     l.Text,
			NameEnd:  l.NameSpan.End,
			FontSize: l.FontSize,
		}
	}
	return lines
}

// Stats returns the chart's aggregate counts.
func (c *Chart) Stats() Stats {
	return Stats{
		Total:          c.rep.Stats.Total,
		ByOrganization: copyCounts(c.rep.Stats.ByOrganization),
		ByLocation:     copyCounts(c.rep.Stats.ByLocation),
		ByLevel:        copyCounts(c.rep.Stats.ByLevel),
	}
}

// Roots returns the number of top-level employees in the chart.
func (c *Chart) Roots() int {
	n := 0
	for _, l := range c.rep.Lines {
		if l.Depth == 0 {
			n++
		}
	}
	return n
}

// Rank maps a job title to its seniority ordinal, lower = more senior.
// Unrecognized titles rank 8.
func Rank(jobTitle string) int { return title.Rank(jobTitle) }

// Level buckets a job title into a coarse label such as "Director Level"
// or "Individual Contributor".
func Level(jobTitle string) string { return title.Level(jobTitle) }

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type options struct {
	title       string
	generatedAt time.Time
}

// Option configures Build.
type Option func(*options)

// WithTitle overrides the chart document title.
func WithTitle(t string) Option {
	return func(o *options) { o.title = t }
}

// WithGeneratedAt pins the chart's generation timestamp.
// Defaults to time.Now().
func WithGeneratedAt(t time.Time) Option {
	return func(o *options) { o.generatedAt = t }
}

func defaultOptions() options {
	return options{
		title:       report.DefaultTitle,
		generatedAt: time.Now(),
	}
}
