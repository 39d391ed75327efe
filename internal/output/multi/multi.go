package multi

import (
	"context"
	"errors"

	"github.com/crimson-sun/orgchart/internal/output"
	"github.com/crimson-sun/orgchart/internal/report"
)

// Multi fans one report out to several output.Document implementations,
// e.g. a markdown file and the terminal in the same invocation. If one
// backend fails, the remaining backends still receive the report.
type Multi struct {
	docs []output.Document
}

// New creates a Multi that fans out to the given documents.
func New(docs ...output.Document) *Multi {
	return &Multi{docs: docs}
}

// Write delivers the report to every wrapped document. Errors are collected
// but do not prevent delivery to subsequent documents.
func (m *Multi) Write(ctx context.Context, r report.Report) error {
	var errs []error
	for _, d := range m.docs {
		if err := d.Write(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close calls Close on every wrapped document, collecting errors.
func (m *Multi) Close() error {
	var errs []error
	for _, d := range m.docs {
		if err := d.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
