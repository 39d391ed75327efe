// Package parser turns raw source-table rows into employee records.
package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/crimson-sun/orgchart/internal/model"
)

// ErrNoData is returned when the source holds no rows beyond the header.
var ErrNoData = errors.New("parser: source has no data rows")

// statusCurrent is the only status value that survives filtering.
const statusCurrent = "Current Employee"

// requiredColumns must all be present in the header row. Matching is exact:
// case- and whitespace-sensitive.
var requiredColumns = []string{
	"Name",
	"User ID",
	"Job Title",
	"Organization Name",
	"Location",
	"Email",
	"Manager UID",
	"Status",
}

// MissingColumnsError reports every required column absent from the header
// row in a single error.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("parser: missing required columns: %s", strings.Join(e.Columns, ", "))
}

// ParseRows converts a snapshot of rows (row 0 = header) into the working
// set of employee records. Rows whose status is not "Current Employee" or
// whose name is empty are dropped silently. The accepted count is reported
// to the log as a side effect.
func ParseRows(rows [][]string) ([]model.EmployeeRecord, error) {
	if len(rows) < 2 {
		return nil, ErrNoData
	}

	cols := headerIndex(rows[0])
	if missing := missingColumns(cols); len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	var records []model.EmployeeRecord
	dropped := 0
	for _, row := range rows[1:] {
		rec := model.EmployeeRecord{
			Name:          cell(row, cols, "Name"),
			UserID:        cell(row, cols, "User ID"),
			JobTitle:      firstNonEmpty(cell(row, cols, "Job Title"), cell(row, cols, "Business Card Title")),
			Organization:  cell(row, cols, "Organization Name"),
			Location:      cell(row, cols, "Location"),
			Email:         cell(row, cols, "Email"),
			Telephone:     firstNonEmpty(cell(row, cols, "Telephone"), cell(row, cols, "Mobile"), cell(row, cols, "Home Phone")),
			ManagerUserID: cell(row, cols, "Manager UID"),
			Status:        cell(row, cols, "Status"),
			EmployeeType:  cell(row, cols, "Employee Type"),
		}
		if rec.Status != statusCurrent || rec.Name == "" {
			dropped++
			continue
		}
		records = append(records, rec)
	}

	slog.Info("parsed source rows", "accepted", len(records), "dropped", dropped)
	return records, nil
}

// headerIndex maps each header name to its column position.
// First occurrence wins when a header repeats.
func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}
	return cols
}

func missingColumns(cols map[string]int) []string {
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// cell returns the named column's value for a row, or "" when the column is
// absent or the row is short.
func cell(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
