// Package title classifies job-title strings into a seniority rank and a
// coarse level label. Both classifiers are ordered first-match substring
// scans; the two pattern lists are deliberately independent and disagree on
// priority (a "Senior Director" ranks as senior-director but levels as
// Director Level), so they must not be unified.
package title

import "strings"

// DefaultRank is used when no pattern matches — same rank as "lead".
const DefaultRank = 8

// LevelDefault is the level bucket for titles no pattern matches.
const LevelDefault = "Individual Contributor"

// rankPatterns is scanned in order; earlier entries win even when a later
// pattern would also match ("senior director" before "director").
var rankPatterns = []struct {
	substr string
	rank   int
}{
	{"senior director", 1},
	{"director", 2},
	{"senior manager", 3},
	{"manager", 4},
	{"senior principal", 5},
	{"principal", 6},
	{"senior", 7},
	{"lead", 8},
	{"collaborative partner", 9},
	{"intern", 10},
}

// levelPatterns is ordered independently of rankPatterns.
var levelPatterns = []struct {
	substr string
	label  string
}{
	{"director", "Director Level"},
	{"manager", "Manager Level"},
	{"principal", "Principal Level"},
	{"senior", "Senior Level"},
	{"intern", "Intern Level"},
	{"collaborative partner", "Partner Level"},
}

// Rank maps a job title to its seniority ordinal, lower = more senior.
// Case-insensitive, first match wins, DefaultRank when nothing matches.
func Rank(jobTitle string) int {
	t := strings.ToLower(jobTitle)
	for _, p := range rankPatterns {
		if strings.Contains(t, p.substr) {
			return p.rank
		}
	}
	return DefaultRank
}

// Level buckets a job title into a coarse label for statistics grouping.
func Level(jobTitle string) string {
	t := strings.ToLower(jobTitle)
	for _, p := range levelPatterns {
		if strings.Contains(t, p.substr) {
			return p.label
		}
	}
	return LevelDefault
}
