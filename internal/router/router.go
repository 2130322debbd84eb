// Package router wires the per-turn control flow of the assistant:
// session context, disambiguation, small talk, matching, execution,
// formatting and the fallback chain.
package router

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/akshit-shetty/eduops-assistant/internal/classifier"
	apperrors "github.com/akshit-shetty/eduops-assistant/internal/errors"
	"github.com/akshit-shetty/eduops-assistant/internal/fallback"
	"github.com/akshit-shetty/eduops-assistant/internal/format"
	"github.com/akshit-shetty/eduops-assistant/internal/registry"
	"github.com/akshit-shetty/eduops-assistant/internal/session"
	"github.com/akshit-shetty/eduops-assistant/internal/store"
)

// Config collects the router's collaborators.
type Config struct {
	Registry     *registry.Registry
	Matcher      *classifier.Matcher
	Sessions     session.Store
	Executor     store.Executor
	Formatter    *format.Formatter
	Fallback     *fallback.Chain
	Logger       *zap.Logger
	CandidateCap int
}

// Router turns one utterance into one displayable answer.
type Router struct {
	registry     *registry.Registry
	matcher      *classifier.Matcher
	sessions     session.Store
	exec         store.Executor
	formatter    *format.Formatter
	fallback     *fallback.Chain
	logger       *zap.Logger
	candidateCap int
}

// New builds a router from its collaborators.
func New(cfg *Config) *Router {
	cap := cfg.CandidateCap
	if cap < 1 {
		cap = 10
	}
	return &Router{
		registry:     cfg.Registry,
		matcher:      cfg.Matcher,
		sessions:     cfg.Sessions,
		exec:         cfg.Executor,
		formatter:    cfg.Formatter,
		fallback:     cfg.Fallback,
		logger:       cfg.Logger,
		candidateCap: cap,
	}
}

// HandleTurn processes one utterance for a conversation. It always
// returns displayable text; no error escapes. Session context is loaded
// once at the start and saved once at the end of the turn.
func (r *Router) HandleTurn(ctx context.Context, conversationID, utterance string) string {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return "Please type a question and I'll do my best to help."
	}

	sctx, err := r.sessions.Load(ctx, conversationID)
	if err != nil {
		r.logger.Warn("session load failed",
			zap.String("conversation", conversationID), zap.Error(err))
		sctx = &session.Context{}
	}

	response := r.process(ctx, sctx, utterance)

	if err := r.sessions.Save(ctx, conversationID, sctx); err != nil {
		r.logger.Warn("session save failed",
			zap.String("conversation", conversationID), zap.Error(err))
	}
	return response
}

func (r *Router) process(ctx context.Context, sctx *session.Context, utterance string) string {
	if sctx.AwaitingSelection() {
		if response, handled := r.handleSelection(ctx, sctx, utterance); handled {
			return response
		}
		// A non-numeric reply abandons the selection and starts fresh.
		sctx.ClearSelection()
	}

	if reply, ok := smallTalk(utterance, sctx); ok {
		return reply
	}

	match, ok := r.matcher.Match(utterance)
	if !ok {
		return r.fallback.Handle(ctx, utterance)
	}
	p := match.Pattern
	r.logger.Debug("matched pattern",
		zap.String("pattern", p.Name),
		zap.Float64("confidence", match.Confidence))

	if p.Guidance() {
		return format.Guidance(p.Name)
	}

	params := classifier.ExtractParameters(p, utterance)
	if missing := classifier.MissingParams(p, params); len(missing) > 0 {
		return apperrors.FormatUserMessage(apperrors.MissingParameter(missing))
	}

	res, err := r.exec.Execute(ctx, p.Name, p.Query, params)
	if err != nil {
		if !apperrors.IsUser(err) {
			r.logger.Error("query execution failed",
				zap.String("pattern", p.Name), zap.Error(err))
		}
		return apperrors.FormatUserMessage(err)
	}

	if p.Search {
		return r.handleSearchResult(ctx, sctx, p, params, res)
	}
	return r.formatter.Format(p, res)
}

// handleSearchResult converts search-style results into a direct
// profile, a candidate list, or a no-results message.
func (r *Router) handleSearchResult(ctx context.Context, sctx *session.Context, p *registry.Pattern, params map[string]string, res *store.Result) string {
	switch len(res.Rows) {
	case 0:
		return r.formatter.NoResults(p.Description)
	case 1:
		return r.learnerDetail(ctx, candidateFromRow(res.Rows[0]))
	default:
		candidates := candidatesFromResult(res, r.candidateCap)
		sctx.PendingCandidates = candidates
		return r.formatter.CandidateList(searchTerm(params), candidates, len(res.Rows))
	}
}

// learnerDetail fetches and renders the full profile for a candidate.
func (r *Router) learnerDetail(ctx context.Context, c session.Candidate) string {
	p, ok := r.registry.ByName("learner_detail")
	if !ok {
		return fmt.Sprintf("%s %s (%s), cohort %s, status %s.",
			c.FirstName, c.LastName, c.Email, c.Cohort, c.Status)
	}

	res, err := r.exec.Execute(ctx, p.Name, p.Query,
		map[string]string{"email": c.Email, "cohort": c.Cohort})
	if err != nil {
		r.logger.Error("profile fetch failed",
			zap.String("pattern", p.Name), zap.Error(err))
	}
	if err != nil || len(res.Rows) == 0 {
		return fmt.Sprintf(
			"I couldn't retrieve the full profile for %s %s right now. Please try again.",
			c.FirstName, c.LastName)
	}
	return r.formatter.Format(p, res)
}

func searchTerm(params map[string]string) string {
	if v := params["query"]; v != "" {
		return v
	}
	if v := params["email"]; v != "" {
		return v
	}
	return "your search"
}

func candidatesFromResult(res *store.Result, cap int) []session.Candidate {
	n := len(res.Rows)
	if n > cap {
		n = cap
	}
	out := make([]session.Candidate, 0, n)
	for _, row := range res.Rows[:n] {
		out = append(out, candidateFromRow(row))
	}
	return out
}

func candidateFromRow(row map[string]any) session.Candidate {
	return session.Candidate{
		FirstName: str(row["First Name"]),
		LastName:  str(row["Last Name"]),
		Email:     str(row["Email"]),
		UserID:    str(row["User ID"]),
		Cohort:    str(row["Cohort #"]),
		Status:    str(row["Status"]),
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
