// Package model provides the generative collaborator used by the
// fallback chain when no catalog pattern matches.
package model

import "context"

// Client produces a free-form answer for an utterance the catalog could
// not serve. Implementations receive an aggregate data summary only,
// never per-record data.
type Client interface {
	Complete(ctx context.Context, utterance, dataSummary string) (string, error)
	Available() bool
}
