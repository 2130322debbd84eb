package router

import (
	"context"
	"regexp"
	"strconv"

	apperrors "github.com/akshit-shetty/eduops-assistant/internal/errors"
	"github.com/akshit-shetty/eduops-assistant/internal/session"
)

var selectionRe = regexp.MustCompile(`^\d+$`)

// handleSelection consumes a reply to a pending candidate list.
// Numeric in range resolves the candidate and clears the selection;
// numeric out of range reprompts and keeps the candidates pending.
// Non-numeric replies return handled=false so the turn restarts as a
// fresh utterance.
func (r *Router) handleSelection(ctx context.Context, sctx *session.Context, utterance string) (string, bool) {
	if !selectionRe.MatchString(utterance) {
		return "", false
	}

	n, err := strconv.Atoi(utterance)
	if err != nil || n < 1 || n > len(sctx.PendingCandidates) {
		return apperrors.FormatUserMessage(
			apperrors.SelectionOutOfRange(len(sctx.PendingCandidates))), true
	}

	candidate := sctx.PendingCandidates[n-1]
	sctx.ClearSelection()
	return r.learnerDetail(ctx, candidate), true
}
