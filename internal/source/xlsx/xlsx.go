// Package xlsx reads the employee table from one sheet of an Excel workbook.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/crimson-sun/orgchart/internal/source"
)

func init() {
	source.Register("xlsx", func(cfg source.Config) (source.Source, error) {
		if cfg.Path == "" {
			return nil, fmt.Errorf("xlsx source: path is required")
		}
		return New(cfg.Path, cfg.Sheet), nil
	})
}

// Source reads one sheet of a workbook as one snapshot.
type Source struct {
	path  string
	sheet string // empty = first sheet
}

// New creates an xlsx source for the given workbook path and sheet name.
func New(path, sheet string) *Source {
	return &Source{path: path, sheet: sheet}
}

func (s *Source) Rows(_ context.Context) ([][]string, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("xlsx source: open %s: %w", s.path, err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("xlsx source: read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
