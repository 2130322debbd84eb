// Package classifier routes utterances to catalog patterns and extracts
// their parameters.
package classifier

import (
	"regexp"
	"sort"
	"strings"
)

// ============================================================
// Synonym Table
// ============================================================

// Synonyms fold onto one canonical term before matching. Multi-word
// synonyms ("how many") are folded as a unit; matching is whole-word,
// so "classroom" never folds "class".
var synonymTable = []struct {
	canonical string
	synonyms  []string
}{
	{"count", []string{"how many", "number", "total", "quantity"}},
	{"students", []string{"learners", "pupils", "scholars", "participants"}},
	{"active", []string{"current", "enrolled", "ongoing"}},
	{"cohort", []string{"batch", "group", "class", "year"}},
	{"cgpa", []string{"gpa", "grades", "marks", "score", "performance"}},
	{"dissertation", []string{"thesis", "research", "paper"}},
	{"show", []string{"display", "list", "get", "find", "retrieve"}},
	{"status", []string{"state", "condition", "progress"}},
	{"average", []string{"mean", "avg"}},
	{"professor", []string{"supervisor", "advisor", "chair", "mentor", "faculty"}},
	{"email", []string{"mail"}},
}

type synonymGroup struct {
	canonical string
	re        *regexp.Regexp
}

var synonymGroups = buildSynonymGroups()

func buildSynonymGroups() []synonymGroup {
	groups := make([]synonymGroup, 0, len(synonymTable))
	for _, entry := range synonymTable {
		alts := make([]string, len(entry.synonyms))
		copy(alts, entry.synonyms)
		// Longer alternatives first so they win over their own prefixes.
		sort.Slice(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })
		for i, alt := range alts {
			alts[i] = regexp.QuoteMeta(alt)
		}
		groups = append(groups, synonymGroup{
			canonical: entry.canonical,
			re:        regexp.MustCompile(`\b(?:` + strings.Join(alts, "|") + `)\b`),
		})
	}
	return groups
}

// ============================================================
// Normalizer
// ============================================================

// Normalizer canonicalizes utterances and example phrases before scoring.
// Deterministic and side-effect free.
type Normalizer struct{}

// NewNormalizer returns a Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

var punctRe = regexp.MustCompile(`[?!,;:]+`)

// Normalize lowercases, strips sentence punctuation, folds synonyms onto
// their canonical terms, and collapses whitespace. Dots are preserved so
// email addresses and decimals survive.
func (n *Normalizer) Normalize(s string) string {
	s = strings.ToLower(s)
	s = punctRe.ReplaceAllString(s, " ")
	for _, g := range synonymGroups {
		s = g.re.ReplaceAllString(s, g.canonical)
	}
	return strings.Join(strings.Fields(s), " ")
}
