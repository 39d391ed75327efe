// Package render flattens a forest into ordered, renderer-agnostic line
// descriptors. Document backends consume the descriptors without touching
// the tree.
package render

import (
	"strings"

	"github.com/crimson-sun/orgchart/internal/model"
)

// Lines walks the forest in depth-first pre-order (roots in forest order)
// and emits one descriptor per node.
func Lines(forest model.Forest) []model.Line {
	var lines []model.Line
	forest.Walk(func(n *model.Node, depth int) {
		lines = append(lines, lineFor(n.Record, depth))
	})
	return lines
}

func lineFor(rec model.EmployeeRecord, depth int) model.Line {
	return model.Line{
		Depth:    depth,
		Text:     displayText(rec),
		NameSpan: model.Span{Start: 0, End: len(rec.Name)},
		FontSize: fontSize(depth),
	}
}

// displayText joins the record's non-empty detail fields after the name:
// "<name> - Title: <t> | Organization: <o> | ...". A record with no details
// renders as just the name.
func displayText(rec model.EmployeeRecord) string {
	segments := make([]string, 0, 5)
	for _, f := range []struct {
		label, value string
	}{
		{"Title", rec.JobTitle},
		{"Organization", rec.Organization},
		{"Location", rec.Location},
		{"Email", rec.Email},
		{"Phone", rec.Telephone},
	} {
		if f.value != "" {
			segments = append(segments, f.label+": "+f.value)
		}
	}
	if len(segments) == 0 {
		return rec.Name
	}
	return rec.Name + " - " + strings.Join(segments, " | ")
}

func fontSize(depth int) int {
	switch depth {
	case 0:
		return model.FontSizeLarge
	case 1:
		return model.FontSizeMedium
	default:
		return model.FontSizeSmall
	}
}
