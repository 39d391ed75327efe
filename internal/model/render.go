package model

// Font sizes (points) by nesting depth: roots render large,
// direct reports medium, everyone deeper small.
const (
	FontSizeLarge  = 14
	FontSizeMedium = 12
	FontSizeSmall  = 11
)

// Span is a half-open byte range [Start, End) within a Line's text.
// Offsets are bytes, not runes; slicing Text with them is always valid.
type Span struct {
	Start int
	End   int
}

// Empty reports whether the span covers no characters.
func (s Span) Empty() bool { return s.End <= s.Start }

// Line is one renderer-agnostic output line for a single employee.
// Any document backend can consume a sequence of Lines without
// re-deriving the hierarchy.
type Line struct {
	Depth    int    // nesting level, root = 0
	Text     string // "<name> - Title: ... | Organization: ..." (empty segments omitted)
	NameSpan Span   // range of Text holding the employee name; rendered bold
	FontSize int    // one of FontSizeLarge/Medium/Small
}
