package session

import (
	"context"
	"sync"
)

// Memory is an in-process Store. Contexts are copied on both Load and
// Save, so callers never share state through the map.
type Memory struct {
	mu       sync.RWMutex
	contexts map[string]*Context
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{contexts: make(map[string]*Context)}
}

// Load returns the stored context, or an empty one for new conversations.
func (m *Memory) Load(_ context.Context, conversationID string) (*Context, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sc, ok := m.contexts[conversationID]
	if !ok {
		return &Context{}, nil
	}
	return copyContext(sc), nil
}

// Save stores a copy of the context under the conversation id.
func (m *Memory) Save(_ context.Context, conversationID string, sc *Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.contexts[conversationID] = copyContext(sc)
	return nil
}

func copyContext(sc *Context) *Context {
	dup := &Context{DisplayName: sc.DisplayName}
	if len(sc.PendingCandidates) > 0 {
		dup.PendingCandidates = make([]Candidate, len(sc.PendingCandidates))
		copy(dup.PendingCandidates, sc.PendingCandidates)
	}
	return dup
}
