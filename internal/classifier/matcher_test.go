package classifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshit-shetty/eduops-assistant/internal/config"
	"github.com/akshit-shetty/eduops-assistant/internal/registry"
)

var sampleValues = map[string]string{
	"cohort":  "C3",
	"cgpa":    "3.5",
	"limit":   "5",
	"email":   "jane.doe@example.com",
	"query":   "Maria",
	"country": "India",
}

func fillSlots(phrase string) string {
	return registry.SlotRe.ReplaceAllStringFunc(phrase, func(m string) string {
		name := strings.Trim(m, "{}")
		if v, ok := sampleValues[name]; ok {
			return v
		}
		return "x"
	})
}

func newTestMatcher(t *testing.T) (*Matcher, *registry.Registry) {
	t.Helper()
	reg, err := registry.New(registry.Builtin())
	require.NoError(t, err)
	return NewMatcher(reg, NewNormalizer(), config.Default().Matcher), reg
}

func TestMatchOwnPhraseSelectsPattern(t *testing.T) {
	m, reg := newTestMatcher(t)

	for _, p := range reg.Patterns() {
		utterance := fillSlots(p.Phrases[0])
		got, ok := m.Match(utterance)
		require.True(t, ok, "pattern %s: %q did not match anything", p.Name, utterance)
		assert.Equal(t, p.Name, got.Pattern.Name, "utterance %q", utterance)
		assert.GreaterOrEqual(t, got.Confidence, 0.3)
		assert.LessOrEqual(t, got.Confidence, 1.0)
	}
}

func TestMatchOwnPhraseHighConfidence(t *testing.T) {
	m, reg := newTestMatcher(t)

	// Filling a pattern's own first phrase should score near the top of
	// the scale even with slot values substituted in.
	names := []string{
		"active_students_by_cohort",
		"total_enrollment_summary",
		"active_vs_inactive_breakdown",
		"cohort_enrollment_numbers",
		"students_at_academic_risk",
		"dissertation_supervision_status",
		"students_by_cgpa_range",
		"top_performers",
		"average_cgpa_by_cohort",
		"total_live_sessions",
	}
	for _, name := range names {
		p, ok := reg.ByName(name)
		require.True(t, ok)

		got, matched := m.Match(fillSlots(p.Phrases[0]))
		require.True(t, matched, name)
		assert.Equal(t, name, got.Pattern.Name)
		assert.GreaterOrEqual(t, got.Confidence, 0.9, name)
	}
}

func TestMatchRoutesStatusQuestion(t *testing.T) {
	m, _ := newTestMatcher(t)

	got, ok := m.Match("how many students are active")
	require.True(t, ok)
	assert.Equal(t, "active_vs_inactive_breakdown", got.Pattern.Name)
}

func TestMatchRejectsGibberish(t *testing.T) {
	m, _ := newTestMatcher(t)

	_, ok := m.Match("zzz qqq xyzzy blorp")
	assert.False(t, ok)

	_, ok = m.Match("   ")
	assert.False(t, ok)
}

func TestMatchTieBreaksOnLowerID(t *testing.T) {
	mk := func(id int, name string) registry.Pattern {
		return registry.Pattern{
			ID:       id,
			Name:     name,
			Phrases:  []string{"ping the system"},
			Keywords: []string{"ping"},
			Query:    "SELECT 1",
		}
	}
	reg, err := registry.New([]registry.Pattern{mk(9, "high"), mk(4, "low")})
	require.NoError(t, err)

	m := NewMatcher(reg, NewNormalizer(), config.Default().Matcher)
	got, ok := m.Match("ping the system")
	require.True(t, ok)
	assert.Equal(t, "low", got.Pattern.Name)
	assert.Equal(t, 4, got.Pattern.ID)
}

func TestMatchConfidenceBounds(t *testing.T) {
	m, _ := newTestMatcher(t)

	utterances := []string{
		"students",
		"show all active students from cohort C1 please",
		"average cgpa",
		"help",
		"how many international students",
	}
	for _, u := range utterances {
		got, ok := m.Match(u)
		if !ok {
			continue
		}
		assert.GreaterOrEqual(t, got.Confidence, 0.0, u)
		assert.LessOrEqual(t, got.Confidence, 1.0, u)
	}
}

func TestMatchSynonymRouting(t *testing.T) {
	m, _ := newTestMatcher(t)

	// "learners per batch" folds to "students per cohort".
	got, ok := m.Match("learners per batch")
	require.True(t, ok)
	assert.Equal(t, "cohort_enrollment_numbers", got.Pattern.Name)
}
