package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.csv")
	content := "Name,User ID,Status\nAnn,a1,Current Employee\nBob,b1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rows, err := New(path).Rows(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "Name" || rows[1][0] != "Ann" {
		t.Fatalf("unexpected rows: %v", rows)
	}
	// Short rows are allowed (FieldsPerRecord disabled).
	if len(rows[2]) != 2 {
		t.Fatalf("expected 2 cells in short row, got %d", len(rows[2]))
	}
}

func TestRowsMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent.csv")).Rows(context.Background())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
