package term

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/crimson-sun/orgchart/internal/model"
	"github.com/crimson-sun/orgchart/internal/report"
)

var t0 = time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC)

func render(t *testing.T, forest model.Forest) string {
	t.Helper()
	var buf bytes.Buffer
	d := New(WithWriter(&buf), WithWidth(40))
	if err := d.Write(context.Background(), report.Build(forest, t0)); err != nil {
		t.Fatal(err)
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestWriteSequence(t *testing.T) {
	forest := model.Forest{
		{
			Record: model.EmployeeRecord{Name: "Ann", JobTitle: "Director"},
			Children: []*model.Node{
				{Record: model.EmployeeRecord{Name: "Bob"}},
			},
		},
	}
	got := render(t, forest)

	wantInOrder := []string{
		"Organization Chart",
		"Generated August 24, 2026 at 9:30 AM UTC",
		"Ann",
		"Bob",
		"Summary Statistics",
		"Total Employees: 2",
		"By Organization",
		"  Unknown: 2",
		"By Location",
		"By Title Level",
	}
	pos := 0
	for _, want := range wantInOrder {
		idx := strings.Index(got[pos:], want)
		if idx < 0 {
			t.Fatalf("missing or out of order: %q in output:\n%s", want, got)
		}
		pos += idx + len(want)
	}
}

func TestWriteIndentsByDepth(t *testing.T) {
	forest := model.Forest{
		{
			Record: model.EmployeeRecord{Name: "Ann"},
			Children: []*model.Node{
				{Record: model.EmployeeRecord{Name: "Bob"}},
			},
		},
	}
	got := render(t, forest)
	foundChild := false
	for _, line := range strings.Split(got, "\n") {
		if strings.Contains(line, "Bob") && strings.HasPrefix(line, "  •") {
			foundChild = true
		}
	}
	if !foundChild {
		t.Fatalf("expected Bob indented one level:\n%s", got)
	}
}

func TestWriteEmptyForest(t *testing.T) {
	got := render(t, nil)
	for _, want := range []string{"Organization Chart", "Summary Statistics", "Total Employees: 0"} {
		if !strings.Contains(got, want) {
			t.Errorf("empty report missing %q:\n%s", want, got)
		}
	}
}
