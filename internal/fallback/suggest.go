package fallback

import (
	"context"
	"fmt"
	"strings"
)

// exampleQueries are shown when everything else comes up empty.
var exampleQueries = []string{
	"show all active students from cohort C3",
	"how many students are active",
	"average cgpa by cohort",
	"students with cgpa less than 3",
	"find learner with email jane@example.com",
	"dissertation supervision status",
}

// Suggestions is the terminal fallback step. It never fails, so the
// chain always produces an answer.
type Suggestions struct{}

// NewSuggestions builds the canned-suggestions step.
func NewSuggestions() *Suggestions {
	return &Suggestions{}
}

// Name implements Step.
func (s *Suggestions) Name() string { return "suggestions" }

// Run echoes the utterance with supported examples.
func (s *Suggestions) Run(_ context.Context, utterance string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "🤔 I couldn't find a match for %q.\n\nHere are some things you can ask me:\n\n", utterance)
	for _, example := range exampleQueries {
		fmt.Fprintf(&b, "• %q\n", example)
	}
	b.WriteString("\nType \"help\" for the full overview.")
	return b.String(), nil
}
