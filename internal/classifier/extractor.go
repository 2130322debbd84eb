package classifier

import (
	"regexp"
	"strings"

	"github.com/akshit-shetty/eduops-assistant/internal/registry"
)

// ============================================================
// Parameter Extraction
// ============================================================

var (
	emailRe  = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	cohortRe = regexp.MustCompile(`(?i)\bC\d+\b`)
	userIDRe = regexp.MustCompile(`\b\d{4,7}\b`)
	intRe    = regexp.MustCompile(`\b\d+\b`)
	numberRe = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)
	nameRe   = regexp.MustCompile(`\b([A-Z][a-z]+)\s+([A-Z][a-z]+)\b`)
)

// Leading words dropped when recovering a free-text search term.
var fillerWords = map[string]bool{
	"search": true, "for": true, "find": true, "show": true, "me": true,
	"details": true, "about": true, "lookup": true, "look": true, "up": true,
	"information": true, "of": true, "on": true, "who": true, "is": true,
	"what": true, "the": true,
}

// ExtractParameters pulls slot values for a matched pattern out of the raw
// utterance. A positional match against the pattern's first example phrase
// runs first; type heuristics fill anything still missing. Extraction works
// on the raw utterance so emails and names keep their original form.
func ExtractParameters(p *registry.Pattern, utterance string) map[string]string {
	params := positionalExtract(p, utterance)
	if params == nil {
		params = make(map[string]string)
	}

	for _, name := range p.Params {
		if _, ok := params[name]; ok {
			continue
		}
		if value, ok := heuristicExtract(name, utterance); ok {
			params[name] = value
		}
	}
	return params
}

// MissingParams returns the declared parameters absent from the extracted set.
func MissingParams(p *registry.Pattern, params map[string]string) []string {
	var missing []string
	for _, name := range p.Params {
		if params[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// positionalExtract builds a regex from the first example phrase with each
// {slot} as a capture group and applies it to the utterance. A slot at the
// very end of the phrase captures the rest of the line, so multi-word
// search terms survive.
func positionalExtract(p *registry.Pattern, utterance string) map[string]string {
	phrase := p.Phrases[0]
	slots := registry.SlotRe.FindAllStringSubmatch(phrase, -1)
	if len(slots) == 0 {
		return nil
	}

	expr := regexp.QuoteMeta(phrase)
	for i, slot := range slots {
		capture := `(\S+)`
		if i == len(slots)-1 && strings.HasSuffix(phrase, "{"+slot[1]+"}") {
			capture = `(.+)`
		}
		expr = strings.Replace(expr, regexp.QuoteMeta("{"+slot[1]+"}"), capture, 1)
	}

	re, err := regexp.Compile(`(?i)` + expr)
	if err != nil {
		return nil
	}
	groups := re.FindStringSubmatch(utterance)
	if groups == nil {
		return nil
	}

	params := make(map[string]string, len(slots))
	for i, slot := range slots {
		if value := strings.TrimSpace(groups[i+1]); value != "" {
			params[slot[1]] = value
		}
	}
	return params
}

func heuristicExtract(name, utterance string) (string, bool) {
	switch name {
	case "email":
		if m := emailRe.FindString(utterance); m != "" {
			return m, true
		}
	case "cohort":
		if m := cohortRe.FindString(utterance); m != "" {
			return strings.ToUpper(m), true
		}
	case "user_id":
		if m := userIDRe.FindString(utterance); m != "" {
			return m, true
		}
	case "limit":
		if m := intRe.FindString(utterance); m != "" {
			return m, true
		}
	case "cgpa":
		if m := numberRe.FindString(utterance); m != "" {
			return m, true
		}
	case "country":
		// No reliable shape to sniff; positional extraction only.
	case "name", "query":
		if v := searchTerm(utterance); v != "" {
			return v, true
		}
	case "first_name", "last_name":
		if m := nameRe.FindStringSubmatch(utterance); m != nil {
			if name == "first_name" {
				return m[1], true
			}
			return m[2], true
		}
	}
	return "", false
}

// searchTerm strips leading filler words and returns the remainder.
func searchTerm(utterance string) string {
	words := strings.Fields(utterance)
	i := 0
	for i < len(words) && fillerWords[strings.ToLower(words[i])] {
		i++
	}
	return strings.Join(words[i:], " ")
}
