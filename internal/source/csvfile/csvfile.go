// Package csvfile reads the employee table from a local CSV file.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/crimson-sun/orgchart/internal/source"
)

func init() {
	source.Register("csv", func(cfg source.Config) (source.Source, error) {
		if cfg.Path == "" {
			return nil, fmt.Errorf("csv source: path is required")
		}
		return New(cfg.Path), nil
	})
}

// Source reads a whole CSV file as one snapshot.
type Source struct {
	path string
}

// New creates a CSV file source for the given path.
func New(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Rows(_ context.Context) ([][]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("csv source: open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may be shorter than the header
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv source: read %s: %w", s.path, err)
	}
	return rows, nil
}
