// Package fallback implements the ordered recovery chain for utterances
// no catalog pattern serves: dynamic aggregate queries, generative
// escalation, then canned suggestions.
package fallback

import (
	"context"

	"go.uber.org/zap"
)

// Step attempts to answer an unmatched utterance.
type Step interface {
	Name() string
	Run(ctx context.Context, utterance string) (string, error)
}

// Chain runs steps in order. The first non-empty answer wins; step
// failures are absorbed and logged, never surfaced to the user.
type Chain struct {
	steps  []Step
	logger *zap.Logger
}

// NewChain builds a chain over the given steps.
func NewChain(logger *zap.Logger, steps ...Step) *Chain {
	return &Chain{steps: steps, logger: logger}
}

// Handle walks the chain and always returns displayable text.
func (c *Chain) Handle(ctx context.Context, utterance string) string {
	for _, step := range c.steps {
		answer, err := step.Run(ctx, utterance)
		if err != nil {
			c.logger.Debug("fallback step failed",
				zap.String("step", step.Name()),
				zap.Error(err))
			continue
		}
		if answer != "" {
			return answer
		}
	}
	return `I couldn't find an answer for that. Type "help" to see what I can do.`
}
