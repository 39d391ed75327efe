package render

import (
	"strings"
	"testing"

	"github.com/crimson-sun/orgchart/internal/model"
)

func node(rec model.EmployeeRecord, children ...*model.Node) *model.Node {
	return &model.Node{Record: rec, Children: children}
}

func TestLinesPreOrder(t *testing.T) {
	forest := model.Forest{
		node(model.EmployeeRecord{Name: "Ann"},
			node(model.EmployeeRecord{Name: "Bob"},
				node(model.EmployeeRecord{Name: "Cid"})),
			node(model.EmployeeRecord{Name: "Dee"})),
		node(model.EmployeeRecord{Name: "Eve"}),
	}

	lines := Lines(forest)
	wantOrder := []string{"Ann", "Bob", "Cid", "Dee", "Eve"}
	wantDepth := []int{0, 1, 2, 1, 0}
	if len(lines) != len(wantOrder) {
		t.Fatalf("expected %d lines, got %d", len(wantOrder), len(lines))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line.Text, wantOrder[i]) {
			t.Errorf("line %d: expected %q first, got %q", i, wantOrder[i], line.Text)
		}
		if line.Depth != wantDepth[i] {
			t.Errorf("line %d: expected depth %d, got %d", i, wantDepth[i], line.Depth)
		}
	}
}

func TestDisplayTextAllFields(t *testing.T) {
	rec := model.EmployeeRecord{
		Name:         "Ann",
		JobTitle:     "Engineer",
		Organization: "Platform",
		Location:     "Berlin",
		Email:        "ann@example.com",
		Telephone:    "123",
	}
	got := displayText(rec)
	want := "Ann - Title: Engineer | Organization: Platform | Location: Berlin | Email: ann@example.com | Phone: 123"
	if got != want {
		t.Fatalf("displayText:\n got %q\nwant %q", got, want)
	}
}

func TestDisplayTextSkipsEmptyFields(t *testing.T) {
	rec := model.EmployeeRecord{Name: "Ann", JobTitle: "Engineer", Email: "ann@example.com"}
	got := displayText(rec)
	want := "Ann - Title: Engineer | Email: ann@example.com"
	if got != want {
		t.Fatalf("displayText: got %q, want %q", got, want)
	}
}

func TestDisplayTextNameOnly(t *testing.T) {
	if got := displayText(model.EmployeeRecord{Name: "Ann"}); got != "Ann" {
		t.Fatalf("expected bare name, got %q", got)
	}
}

func TestNameSpan(t *testing.T) {
	lines := Lines(model.Forest{node(model.EmployeeRecord{Name: "Ann", JobTitle: "Engineer"})})
	span := lines[0].NameSpan
	if span.Start != 0 || span.End != len("Ann") {
		t.Fatalf("expected span [0,3), got [%d,%d)", span.Start, span.End)
	}
	if lines[0].Text[span.Start:span.End] != "Ann" {
		t.Fatalf("span does not cover the name: %q", lines[0].Text[span.Start:span.End])
	}
}

func TestNameSpanDegenerate(t *testing.T) {
	lines := Lines(model.Forest{node(model.EmployeeRecord{Name: ""})})
	if !lines[0].NameSpan.Empty() {
		t.Fatal("expected degenerate span for empty name")
	}
}

func TestFontSizeByDepth(t *testing.T) {
	forest := model.Forest{
		node(model.EmployeeRecord{Name: "A"},
			node(model.EmployeeRecord{Name: "B"},
				node(model.EmployeeRecord{Name: "C"},
					node(model.EmployeeRecord{Name: "D"})))),
	}
	lines := Lines(forest)
	want := []int{model.FontSizeLarge, model.FontSizeMedium, model.FontSizeSmall, model.FontSizeSmall}
	for i, line := range lines {
		if line.FontSize != want[i] {
			t.Errorf("depth %d: expected font size %d, got %d", line.Depth, want[i], line.FontSize)
		}
	}
}

func TestLinesEmptyForest(t *testing.T) {
	if lines := Lines(nil); len(lines) != 0 {
		t.Fatalf("expected no lines for empty forest, got %d", len(lines))
	}
}
