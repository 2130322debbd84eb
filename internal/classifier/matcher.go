package classifier

import (
	"strings"

	"github.com/akshit-shetty/eduops-assistant/internal/config"
	"github.com/akshit-shetty/eduops-assistant/internal/registry"
)

// ============================================================
// Match Result
// ============================================================

// Match is the outcome of routing an utterance to a catalog pattern.
type Match struct {
	Pattern    *registry.Pattern
	Confidence float64
}

// ============================================================
// Matcher
// ============================================================

// Matcher scores utterances against the pattern catalog. The score blends
// the best phrase similarity with keyword overlap; a match below the
// confidence threshold is rejected. Ties go to the lower pattern ID.
type Matcher struct {
	reg           *registry.Registry
	norm          *Normalizer
	phraseWeight  float64
	keywordWeight float64
	threshold     float64

	// normalized slot-stripped example phrases, indexed like the registry
	phrases [][]string
}

// NewMatcher builds a matcher, precomputing normalized example phrases.
// Slot placeholders are stripped to their bare names so "{cohort}" scores
// as the word "cohort".
func NewMatcher(reg *registry.Registry, norm *Normalizer, cfg config.MatcherConfig) *Matcher {
	patterns := reg.Patterns()
	phrases := make([][]string, len(patterns))
	for i := range patterns {
		prepared := make([]string, len(patterns[i].Phrases))
		for j, phrase := range patterns[i].Phrases {
			stripped := registry.SlotRe.ReplaceAllString(phrase, "$1")
			prepared[j] = norm.Normalize(stripped)
		}
		phrases[i] = prepared
	}
	return &Matcher{
		reg:           reg,
		norm:          norm,
		phraseWeight:  cfg.PhraseWeight,
		keywordWeight: cfg.KeywordWeight,
		threshold:     cfg.ConfidenceThreshold,
		phrases:       phrases,
	}
}

// Match scores the utterance against every pattern and returns the best
// one, or ok=false when nothing clears the threshold.
func (m *Matcher) Match(utterance string) (*Match, bool) {
	normalized := m.norm.Normalize(utterance)
	if normalized == "" {
		return nil, false
	}
	words := wordSet(normalized)

	patterns := m.reg.Patterns()
	var best *Match
	for i := range patterns {
		score := m.score(i, normalized, words)
		// Strict comparison keeps the lower ID on equal scores.
		if best == nil || score > best.Confidence {
			best = &Match{Pattern: &patterns[i], Confidence: score}
		}
	}

	if best == nil || best.Confidence < m.threshold {
		return nil, false
	}
	return best, true
}

func (m *Matcher) score(idx int, normalized string, words map[string]bool) float64 {
	var maxSim float64
	for _, phrase := range m.phrases[idx] {
		if sim := similarity(normalized, phrase); sim > maxSim {
			maxSim = sim
		}
	}

	keywords := m.reg.Patterns()[idx].Keywords
	matched := 0
	for _, kw := range keywords {
		if words[kw] {
			matched++
		}
	}
	overlap := float64(matched) / float64(len(keywords))

	score := m.phraseWeight*maxSim + m.keywordWeight*overlap
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score
}

func wordSet(s string) map[string]bool {
	fields := strings.Fields(s)
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
