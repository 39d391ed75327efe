// Package pipeline connects a table source, the chart core, and a document
// backend into one synchronous run.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/crimson-sun/orgchart/internal/hierarchy"
	"github.com/crimson-sun/orgchart/internal/output"
	"github.com/crimson-sun/orgchart/internal/parser"
	"github.com/crimson-sun/orgchart/internal/report"
	"github.com/crimson-sun/orgchart/internal/source"
)

// Pipeline runs one snapshot through parse → build → assemble → write.
// Invocations are independent; the pipeline holds no state between runs.
type Pipeline struct {
	source source.Source
	doc    output.Document
	now    func() time.Time
}

// New creates a Pipeline from the given source and document backend.
func New(src source.Source, doc output.Document) *Pipeline {
	return &Pipeline{
		source: src,
		doc:    doc,
		now:    time.Now,
	}
}

// Run executes the full pipeline once: one read, one write.
// No partial output is produced on error.
func (p *Pipeline) Run(ctx context.Context) error {
	rows, err := p.source.Rows(ctx)
	if err != nil {
		return fmt.Errorf("pipeline read: %w", err)
	}

	records, err := parser.ParseRows(rows)
	if err != nil {
		return fmt.Errorf("pipeline parse: %w", err)
	}

	forest := hierarchy.Build(records)
	rep := report.Build(forest, p.now())

	if err := p.doc.Write(ctx, rep); err != nil {
		return fmt.Errorf("pipeline output: %w", err)
	}
	return nil
}

// Check runs the read and parse stages only and returns the number of
// accepted records. Nothing is written.
func (p *Pipeline) Check(ctx context.Context) (int, error) {
	rows, err := p.source.Rows(ctx)
	if err != nil {
		return 0, fmt.Errorf("pipeline read: %w", err)
	}

	records, err := parser.ParseRows(rows)
	if err != nil {
		return 0, fmt.Errorf("pipeline parse: %w", err)
	}
	return len(records), nil
}

// Close shuts down the document backend. Check-only pipelines may carry no
// backend.
func (p *Pipeline) Close() error {
	if p.doc == nil {
		return nil
	}
	return p.doc.Close()
}
