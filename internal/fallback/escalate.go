package fallback

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/akshit-shetty/eduops-assistant/internal/errors"
	"github.com/akshit-shetty/eduops-assistant/internal/format"
	"github.com/akshit-shetty/eduops-assistant/internal/model"
	"github.com/akshit-shetty/eduops-assistant/internal/store"
)

// summaryQuery collects the aggregate counts the collaborator may see.
// Per-record data never leaves the store through this path.
const summaryQuery = `SELECT COUNT(DISTINCT Email) AS Total_Students,
       SUM(CASE WHEN Status IN ('Active', 'Active / Deferred In') THEN 1 ELSE 0 END) AS Active_Students,
       COUNT(DISTINCT Cohort) AS Total_Cohorts
FROM Student_List`

// Escalation asks the generative collaborator for an answer, under a
// hard timeout and with an aggregate-only data summary.
type Escalation struct {
	client  model.Client
	exec    store.Executor
	timeout time.Duration
}

// NewEscalation builds the generative step.
func NewEscalation(client model.Client, exec store.Executor, timeout time.Duration) *Escalation {
	return &Escalation{client: client, exec: exec, timeout: timeout}
}

// Name implements Step.
func (e *Escalation) Name() string { return "escalation" }

// Run completes the utterance against the collaborator. A summary fetch
// failure degrades to an empty summary rather than failing the step.
func (e *Escalation) Run(ctx context.Context, utterance string) (string, error) {
	if e.client == nil || !e.client.Available() {
		return "", apperrors.EscalationFailed(fmt.Errorf("no collaborator configured"))
	}

	summary := e.dataSummary(ctx)

	cctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.client.Complete(cctx, utterance, summary)
}

func (e *Escalation) dataSummary(ctx context.Context) string {
	res, err := e.exec.Execute(ctx, "escalation_summary", summaryQuery, nil)
	if err != nil || len(res.Rows) == 0 {
		return "(no data available)"
	}
	row := res.Rows[0]
	return fmt.Sprintf("Total students: %s\nActive students: %s\nCohorts: %s",
		format.AsString(row["Total_Students"]),
		format.AsString(row["Active_Students"]),
		format.AsString(row["Total_Cohorts"]))
}
