// Package term renders the organization chart document to a terminal with
// lipgloss styling. Font-size hints map to text weight: large renders bold
// and underlined, medium bold, small plain.
package term

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/crimson-sun/orgchart/internal/model"
	"github.com/crimson-sun/orgchart/internal/output"
	"github.com/crimson-sun/orgchart/internal/report"
	"github.com/crimson-sun/orgchart/internal/stats"
)

const defaultWidth = 80

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	timestampStyle = lipgloss.NewStyle().Italic(true).Faint(true)
	nameLarge      = lipgloss.NewStyle().Bold(true).Underline(true)
	nameMedium     = lipgloss.NewStyle().Bold(true)
	nameSmall      = lipgloss.NewStyle().Bold(true).Faint(true)
	headingStyle   = lipgloss.NewStyle().Bold(true)
	ruleStyle      = lipgloss.NewStyle().Faint(true)
)

// Option configures a term Document.
type Option func(*Document)

// WithWriter redirects output away from stdout.
func WithWriter(w io.Writer) Option {
	return func(d *Document) { d.w = w }
}

// WithWidth sets the centering width. Default: 80.
func WithWidth(n int) Option {
	return func(d *Document) { d.width = n }
}

// Document renders one report to a terminal.
type Document struct {
	w     io.Writer
	width int
}

// New creates a terminal document renderer writing to stdout.
func New(opts ...Option) *Document {
	d := &Document{w: os.Stdout, width: defaultWidth}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Document) Write(_ context.Context, r report.Report) error {
	center := lipgloss.NewStyle().Width(d.width).Align(lipgloss.Center)

	title := r.Title
	if title == "" {
		title = report.DefaultTitle
	}
	fmt.Fprintln(d.w, center.Render(titleStyle.Render(title)))
	fmt.Fprintln(d.w, center.Render(timestampStyle.Render(output.Timestamp(r.GeneratedAt))))
	fmt.Fprintln(d.w)

	for _, line := range r.Lines {
		indent := strings.Repeat("  ", line.Depth)
		fmt.Fprintf(d.w, "%s• %s\n", indent, styleLine(line))
	}
	if len(r.Lines) > 0 {
		fmt.Fprintln(d.w)
	}

	// Page break equivalent.
	fmt.Fprintln(d.w, ruleStyle.Render(strings.Repeat("─", d.width)))
	fmt.Fprintln(d.w)

	fmt.Fprintln(d.w, headingStyle.Render(report.SummaryHeading))
	fmt.Fprintln(d.w, output.TotalLine(r.Stats))
	fmt.Fprintln(d.w)

	sections := []struct {
		heading string
		entries []stats.Entry
	}{
		{report.OrganizationHeading, r.Stats.OrganizationBreakdown()},
		{report.LocationHeading, r.Stats.LocationBreakdown()},
		{report.LevelHeading, r.Stats.LevelBreakdown()},
	}
	for _, sec := range sections {
		fmt.Fprintln(d.w, headingStyle.Render(sec.heading))
		for _, e := range sec.entries {
			fmt.Fprintln(d.w, output.StatLine(e))
		}
		fmt.Fprintln(d.w)
	}
	return nil
}

func (d *Document) Close() error { return nil }

// styleLine applies the name emphasis and font-size hint to one chart line.
func styleLine(line model.Line) string {
	span := line.NameSpan
	if span.Empty() || span.End > len(line.Text) {
		return line.Text
	}
	var style lipgloss.Style
	switch line.FontSize {
	case model.FontSizeLarge:
		style = nameLarge
	case model.FontSizeMedium:
		style = nameMedium
	default:
		style = nameSmall
	}
	return line.Text[:span.Start] + style.Render(line.Text[span.Start:span.End]) + line.Text[span.End:]
}
