package fallback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akshit-shetty/eduops-assistant/internal/classifier"
	apperrors "github.com/akshit-shetty/eduops-assistant/internal/errors"
	"github.com/akshit-shetty/eduops-assistant/internal/store"
)

// ============================================================
// Fakes
// ============================================================

type fakeStep struct {
	name   string
	answer string
	err    error
	calls  int
}

func (f *fakeStep) Name() string { return f.name }

func (f *fakeStep) Run(context.Context, string) (string, error) {
	f.calls++
	return f.answer, f.err
}

type fakeExecutor struct {
	results map[string]*store.Result
	err     error
	queries []string
}

func (f *fakeExecutor) Execute(_ context.Context, patternName, query string, _ map[string]string) (*store.Result, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	if res, ok := f.results[patternName]; ok {
		return res, nil
	}
	return &store.Result{}, nil
}

type fakeClient struct {
	answer      string
	err         error
	available   bool
	gotSummary  string
	hadDeadline bool
}

func (f *fakeClient) Complete(ctx context.Context, _, summary string) (string, error) {
	f.gotSummary = summary
	_, f.hadDeadline = ctx.Deadline()
	return f.answer, f.err
}

func (f *fakeClient) Available() bool { return f.available }

func scalarResult(col string, v any) *store.Result {
	return &store.Result{Columns: []string{col}, Rows: []map[string]any{{col: v}}}
}

// ============================================================
// Chain
// ============================================================

func TestChainFirstSuccessWins(t *testing.T) {
	first := &fakeStep{name: "first", err: errors.New("boom")}
	second := &fakeStep{name: "second", answer: "from second"}
	third := &fakeStep{name: "third", answer: "from third"}

	c := NewChain(zap.NewNop(), first, second, third)
	got := c.Handle(context.Background(), "anything")

	assert.Equal(t, "from second", got)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 0, third.calls, "later steps must not run after a success")
}

func TestChainAbsorbsAllFailures(t *testing.T) {
	c := NewChain(zap.NewNop(),
		&fakeStep{name: "a", err: apperrors.EscalationTimeout(errors.New("deadline"))},
		&fakeStep{name: "b", err: errors.New("also broken")},
	)
	got := c.Handle(context.Background(), "anything")
	assert.Contains(t, got, "help")
}

// ============================================================
// Dynamic Query
// ============================================================

func TestDynamicCountStudents(t *testing.T) {
	exec := &fakeExecutor{results: map[string]*store.Result{
		"dynamic_student_count": scalarResult("Value", int64(150)),
	}}
	d := NewDynamicQuery(exec, classifier.NewNormalizer())

	got, err := d.Run(context.Background(), "how many learners do we have")
	require.NoError(t, err)
	assert.Equal(t, "There are 150 unique students in total.", got)
}

func TestDynamicAverageCGPA(t *testing.T) {
	exec := &fakeExecutor{results: map[string]*store.Result{
		"dynamic_avg_cgpa": scalarResult("Value", 3.42),
	}}
	d := NewDynamicQuery(exec, classifier.NewNormalizer())

	got, err := d.Run(context.Background(), "what is the mean gpa overall")
	require.NoError(t, err)
	assert.Equal(t, "The average CGPA across all learners is 3.42.", got)
}

func TestDynamicHighestCGPA(t *testing.T) {
	exec := &fakeExecutor{results: map[string]*store.Result{
		"dynamic_max_cgpa": scalarResult("Value", 3.95),
	}}
	d := NewDynamicQuery(exec, classifier.NewNormalizer())

	got, err := d.Run(context.Background(), "highest cgpa anyone has")
	require.NoError(t, err)
	assert.Contains(t, got, "3.95")
}

func TestDynamicNoInterpretation(t *testing.T) {
	d := NewDynamicQuery(&fakeExecutor{}, classifier.NewNormalizer())

	_, err := d.Run(context.Background(), "tell me a story about penguins")
	assert.ErrorIs(t, err, errNoDynamicAnswer)
}

func TestDynamicQueriesTakeNoParameters(t *testing.T) {
	exec := &fakeExecutor{results: map[string]*store.Result{
		"dynamic_student_count": scalarResult("Value", int64(9)),
	}}
	d := NewDynamicQuery(exec, classifier.NewNormalizer())

	_, err := d.Run(context.Background(), "how many students like '; DROP TABLE x; --")
	require.NoError(t, err)
	for _, q := range exec.queries {
		assert.NotContains(t, q, "DROP TABLE")
	}
}

// ============================================================
// Escalation
// ============================================================

func TestEscalationPassesSummaryAndDeadline(t *testing.T) {
	exec := &fakeExecutor{results: map[string]*store.Result{
		"escalation_summary": {
			Columns: []string{"Total_Students", "Active_Students", "Total_Cohorts"},
			Rows: []map[string]any{{
				"Total_Students": int64(150), "Active_Students": int64(120), "Total_Cohorts": int64(6),
			}},
		},
	}}
	client := &fakeClient{answer: "Enrollment is healthy.", available: true}

	e := NewEscalation(client, exec, time.Second)
	got, err := e.Run(context.Background(), "how is enrollment trending")
	require.NoError(t, err)
	assert.Equal(t, "Enrollment is healthy.", got)
	assert.True(t, client.hadDeadline, "collaborator call must carry a deadline")
	assert.Contains(t, client.gotSummary, "Total students: 150")
	assert.Contains(t, client.gotSummary, "Active students: 120")
	assert.Contains(t, client.gotSummary, "Cohorts: 6")
}

func TestEscalationDegradesSummaryOnStoreError(t *testing.T) {
	exec := &fakeExecutor{err: apperrors.StoreUnavailable(errors.New("locked"))}
	client := &fakeClient{answer: "ok", available: true}

	e := NewEscalation(client, exec, time.Second)
	_, err := e.Run(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "(no data available)", client.gotSummary)
}

func TestEscalationUnavailableClient(t *testing.T) {
	e := NewEscalation(&fakeClient{available: false}, &fakeExecutor{}, time.Second)
	_, err := e.Run(context.Background(), "anything")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeEscalationFailed, apperrors.GetCode(err))

	e = NewEscalation(nil, &fakeExecutor{}, time.Second)
	_, err = e.Run(context.Background(), "anything")
	assert.Error(t, err)
}

// ============================================================
// Suggestions
// ============================================================

func TestSuggestionsNeverFail(t *testing.T) {
	s := NewSuggestions()
	got, err := s.Run(context.Background(), "blorp")
	require.NoError(t, err)
	assert.Contains(t, got, `"blorp"`)
	assert.Contains(t, got, "average cgpa by cohort")
}

func TestFullChainFallsThroughToSuggestions(t *testing.T) {
	// Dynamic finds no interpretation, escalation has no client, so the
	// canned suggestions answer.
	exec := &fakeExecutor{}
	c := NewChain(zap.NewNop(),
		NewDynamicQuery(exec, classifier.NewNormalizer()),
		NewEscalation(nil, exec, time.Second),
		NewSuggestions(),
	)

	got := c.Handle(context.Background(), "compose a haiku")
	assert.Contains(t, got, "couldn't find a match")
}
