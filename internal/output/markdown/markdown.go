// Package markdown writes the organization chart document as a Markdown
// file.
package markdown

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/crimson-sun/orgchart/internal/output"
	"github.com/crimson-sun/orgchart/internal/report"
	"github.com/crimson-sun/orgchart/internal/stats"
)

// Option configures a markdown Document.
type Option func(*Document)

// WithFresh forces creation of a brand-new, uniquely named artifact instead
// of overwriting an existing file at the configured path.
func WithFresh() Option {
	return func(d *Document) { d.fresh = true }
}

// Document writes one report as Markdown. The destination is opened lazily on
// the first Write, so an invocation that fails before producing a report
// leaves any existing artifact untouched. If the configured path cannot be
// opened at that point, Write falls back to creating a fresh artifact next to
// it rather than failing the invocation.
type Document struct {
	path  string // configured destination
	fresh bool

	f *os.File
	w *bufio.Writer
}

// New creates a markdown document writer for the given path. The file is not
// touched until the first Write.
func New(path string, opts ...Option) (*Document, error) {
	d := &Document{path: path}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Path returns the path being written: the configured destination before the
// first Write, the actual artifact afterwards (which differs after a
// fresh-artifact fallback).
func (d *Document) Path() string {
	if d.f == nil {
		return d.path
	}
	return d.f.Name()
}

func (d *Document) open() error {
	if d.fresh {
		return d.createFresh()
	}
	f, err := os.OpenFile(d.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		// Unwritable destination: degrade to a new artifact instead of
		// failing the whole invocation.
		slog.Warn("destination not writable, creating a fresh artifact",
			"path", d.path, "error", err)
		return d.createFresh()
	}
	d.f = f
	d.w = bufio.NewWriter(f)
	return nil
}

// createFresh creates a uniquely named sibling of the configured path.
func (d *Document) createFresh() error {
	ext := filepath.Ext(d.path)
	if ext == "" {
		ext = ".md"
	}
	base := strings.TrimSuffix(d.path, filepath.Ext(d.path))
	path := fmt.Sprintf("%s-%s%s", base, uuid.NewString(), ext)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("markdown output: create %s: %w", path, err)
	}
	d.f = f
	d.w = bufio.NewWriter(f)
	return nil
}

// Write renders the full document sequence. An empty report still emits
// both headings and a zero total.
func (d *Document) Write(_ context.Context, r report.Report) error {
	if d.w == nil {
		if err := d.open(); err != nil {
			return err
		}
	}

	title := r.Title
	if title == "" {
		title = report.DefaultTitle
	}
	fmt.Fprintf(d.w, "# %s\n\n", title)
	fmt.Fprintf(d.w, "*%s*\n\n", output.Timestamp(r.GeneratedAt))

	for _, line := range r.Lines {
		indent := strings.Repeat("  ", line.Depth)
		fmt.Fprintf(d.w, "%s- %s\n", indent, boldName(line.Text, line.NameSpan.Start, line.NameSpan.End))
	}
	if len(r.Lines) > 0 {
		fmt.Fprintln(d.w)
	}

	// Page break before the statistics.
	fmt.Fprintf(d.w, "---\n\n")
	fmt.Fprintf(d.w, "## %s\n\n", report.SummaryHeading)
	fmt.Fprintf(d.w, "%s\n\n", output.TotalLine(r.Stats))

	sections := []struct {
		heading string
		entries []stats.Entry
	}{
		{report.OrganizationHeading, r.Stats.OrganizationBreakdown()},
		{report.LocationHeading, r.Stats.LocationBreakdown()},
		{report.LevelHeading, r.Stats.LevelBreakdown()},
	}
	for _, sec := range sections {
		fmt.Fprintf(d.w, "### %s\n\n", sec.heading)
		for _, e := range sec.entries {
			fmt.Fprintln(d.w, output.StatLine(e))
		}
		fmt.Fprintln(d.w)
	}

	if err := d.w.Flush(); err != nil {
		return fmt.Errorf("markdown output: write %s: %w", d.Path(), err)
	}
	return nil
}

// Close flushes the buffer and closes the file. A document that never wrote
// has nothing to close.
func (d *Document) Close() error {
	if d.f == nil {
		return nil
	}
	if err := d.w.Flush(); err != nil {
		d.f.Close()
		return fmt.Errorf("markdown output: flush: %w", err)
	}
	return d.f.Close()
}

// boldName wraps the name span of a chart line in Markdown emphasis.
// start and end are byte offsets into text, matching how the span is
// produced. A degenerate span leaves the text unstyled.
func boldName(text string, start, end int) string {
	if end <= start || end > len(text) {
		return text
	}
	return text[:start] + "**" + text[start:end] + "**" + text[end:]
}
