// Package source defines the input collaborator: something that hands the
// pipeline one complete snapshot of the employee table.
package source

import "context"

// Source reads one complete snapshot of the source table.
type Source interface {
	// Rows returns every row of the table in order, row 0 being the header.
	// Exactly one read per invocation; no streaming or partial reads.
	Rows(ctx context.Context) ([][]string, error)
}

// Config holds backend-specific source settings.
type Config struct {
	Type  string // "csv", "xlsx", "web"
	Path  string // file path for csv and xlsx backends
	Sheet string // xlsx sheet name; empty means the first sheet
	URL   string // web backend: CSV export URL
	Token string // web backend: optional bearer token
}
