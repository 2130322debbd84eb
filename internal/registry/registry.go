// Package registry defines the catalog of query intents the assistant supports.
package registry

import (
	"fmt"
	"regexp"
	"sort"
)

// Pattern describes one query intent: the phrases and keywords that select
// it, and the parameterized query template that answers it. Guidance-only
// patterns have an empty Query and resolve to static help text.
type Pattern struct {
	ID          int
	Name        string
	Phrases     []string
	Keywords    []string
	Query       string
	Params      []string
	Description string

	// Search marks intents whose multi-row results become a numbered
	// candidate list awaiting a selection reply.
	Search bool
}

// Guidance reports whether the pattern resolves to help text instead of data.
func (p *Pattern) Guidance() bool {
	return p.Query == ""
}

// SlotRe matches {slot} placeholders in phrases and query templates.
var SlotRe = regexp.MustCompile(`\{([a-z_]+)\}`)

// Registry is an immutable, validated collection of patterns ordered by ID.
type Registry struct {
	patterns []Pattern
	byName   map[string]int
}

// New validates the patterns and builds a registry. Patterns are sorted by
// ID; validation failures abort construction.
func New(patterns []Pattern) (*Registry, error) {
	ordered := make([]Pattern, len(patterns))
	copy(ordered, patterns)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	byName := make(map[string]int, len(ordered))
	seenID := make(map[int]bool, len(ordered))
	for i := range ordered {
		p := &ordered[i]
		if err := validate(p); err != nil {
			return nil, err
		}
		if seenID[p.ID] {
			return nil, fmt.Errorf("registry: duplicate pattern id %d", p.ID)
		}
		if _, dup := byName[p.Name]; dup {
			return nil, fmt.Errorf("registry: duplicate pattern name %q", p.Name)
		}
		seenID[p.ID] = true
		byName[p.Name] = i
	}

	return &Registry{patterns: ordered, byName: byName}, nil
}

func validate(p *Pattern) error {
	if p.ID <= 0 {
		return fmt.Errorf("registry: pattern %q has non-positive id", p.Name)
	}
	if p.Name == "" {
		return fmt.Errorf("registry: pattern %d has empty name", p.ID)
	}
	if len(p.Phrases) == 0 {
		return fmt.Errorf("registry: pattern %q has no example phrases", p.Name)
	}
	if len(p.Keywords) == 0 {
		return fmt.Errorf("registry: pattern %q has no keywords", p.Name)
	}

	if p.Guidance() {
		if len(p.Params) > 0 {
			return fmt.Errorf("registry: guidance pattern %q declares parameters", p.Name)
		}
		if p.Search {
			return fmt.Errorf("registry: guidance pattern %q marked as search", p.Name)
		}
		return nil
	}

	declared := make(map[string]bool, len(p.Params))
	for _, name := range p.Params {
		declared[name] = true
	}
	for _, m := range SlotRe.FindAllStringSubmatch(p.Query, -1) {
		if !declared[m[1]] {
			return fmt.Errorf("registry: pattern %q uses slot {%s} not in params", p.Name, m[1])
		}
	}
	return nil
}

// Patterns returns the patterns in ID order. Callers must not modify it.
func (r *Registry) Patterns() []Pattern {
	return r.patterns
}

// ByName looks up a pattern by its name.
func (r *Registry) ByName(name string) (*Pattern, bool) {
	i, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return &r.patterns[i], true
}

// Len returns the number of patterns.
func (r *Registry) Len() int {
	return len(r.patterns)
}
