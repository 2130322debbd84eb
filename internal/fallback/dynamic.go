package fallback

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akshit-shetty/eduops-assistant/internal/classifier"
	"github.com/akshit-shetty/eduops-assistant/internal/format"
	"github.com/akshit-shetty/eduops-assistant/internal/store"
)

// errNoDynamicAnswer signals that the utterance has no aggregate
// interpretation; the chain moves on.
var errNoDynamicAnswer = errors.New("no dynamic interpretation")

// DynamicQuery answers count / average / extreme questions over safe
// aggregate columns. It never touches per-record data and takes no
// parameters from the utterance, so nothing user-controlled reaches
// the query text.
type DynamicQuery struct {
	exec store.Executor
	norm *classifier.Normalizer
}

// NewDynamicQuery builds the heuristic aggregate step.
func NewDynamicQuery(exec store.Executor, norm *classifier.Normalizer) *DynamicQuery {
	return &DynamicQuery{exec: exec, norm: norm}
}

// Name implements Step.
func (d *DynamicQuery) Name() string { return "dynamic_query" }

// Run interprets the normalized utterance against a short list of
// aggregate intents.
func (d *DynamicQuery) Run(ctx context.Context, utterance string) (string, error) {
	normalized := d.norm.Normalize(utterance)
	words := make(map[string]bool)
	for _, w := range strings.Fields(normalized) {
		words[w] = true
	}
	has := func(terms ...string) bool {
		for _, t := range terms {
			if words[t] {
				return true
			}
		}
		return false
	}

	switch {
	case has("count") && has("cohort", "cohorts"):
		return d.scalar(ctx, "dynamic_cohort_count",
			`SELECT COUNT(DISTINCT Cohort) AS Value FROM Student_List`,
			"There are %s cohorts in the program.")
	case has("count") && has("students", "student"):
		return d.scalar(ctx, "dynamic_student_count",
			`SELECT COUNT(DISTINCT Email) AS Value FROM Student_List`,
			"There are %s unique students in total.")
	case has("average") && has("cgpa"):
		return d.scalar(ctx, "dynamic_avg_cgpa",
			`SELECT ROUND(AVG(Overall_CGPA), 2) AS Value FROM Gradesheet`,
			"The average CGPA across all learners is %s.")
	case has("highest", "max", "maximum", "best") && has("cgpa"):
		return d.scalar(ctx, "dynamic_max_cgpa",
			`SELECT MAX(Overall_CGPA) AS Value FROM Gradesheet`,
			"The highest CGPA on record is %s.")
	case has("lowest", "min", "minimum", "worst") && has("cgpa"):
		return d.scalar(ctx, "dynamic_min_cgpa",
			`SELECT MIN(Overall_CGPA) AS Value FROM Gradesheet`,
			"The lowest CGPA on record is %s.")
	}
	return "", errNoDynamicAnswer
}

func (d *DynamicQuery) scalar(ctx context.Context, name, query, template string) (string, error) {
	res, err := d.exec.Execute(ctx, name, query, nil)
	if err != nil {
		return "", err
	}
	if len(res.Rows) == 0 {
		return "", errNoDynamicAnswer
	}
	return fmt.Sprintf(template, format.AsString(res.Rows[0]["Value"])), nil
}
