package output

import (
	"context"

	"github.com/crimson-sun/orgchart/internal/report"
)

// Document is the destination collaborator. A backend consumes exactly one
// assembled report per invocation and renders the document sequence:
// title, timestamp, chart lines, page break, statistics.
type Document interface {
	Write(ctx context.Context, r report.Report) error
	Close() error
}
