// Package session persists per-conversation context between turns.
package session

import "context"

// Candidate is one learner offered for disambiguation, carrying the
// fields needed to render the numbered list and to re-fetch the full
// profile after a selection.
type Candidate struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	UserID    string `json:"user_id"`
	Cohort    string `json:"cohort"`
	Status    string `json:"status"`
}

// Context is the per-conversation state carried between turns. A
// conversation is either idle or awaiting a selection; pending
// candidates encode the latter.
type Context struct {
	PendingCandidates []Candidate `json:"pending_candidates,omitempty"`
	DisplayName       string      `json:"display_name,omitempty"`
}

// AwaitingSelection reports whether the conversation expects a reply
// to a candidate list.
func (c *Context) AwaitingSelection() bool {
	return len(c.PendingCandidates) > 0
}

// ClearSelection drops the pending candidates, returning to idle.
func (c *Context) ClearSelection() {
	c.PendingCandidates = nil
}

// Store loads and saves conversation contexts. Load returns an empty
// context for unknown conversations.
type Store interface {
	Load(ctx context.Context, conversationID string) (*Context, error)
	Save(ctx context.Context, conversationID string, sc *Context) error
}
