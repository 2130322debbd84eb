package format

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshit-shetty/eduops-assistant/internal/registry"
	"github.com/akshit-shetty/eduops-assistant/internal/session"
	"github.com/akshit-shetty/eduops-assistant/internal/store"
)

func builtinPattern(t *testing.T, name string) *registry.Pattern {
	t.Helper()
	reg, err := registry.New(registry.Builtin())
	require.NoError(t, err)
	p, ok := reg.ByName(name)
	require.True(t, ok)
	return p
}

func TestFormatScalar(t *testing.T) {
	f := New(10)
	p := builtinPattern(t, "total_live_sessions")
	res := &store.Result{
		Columns: []string{"Total_Live_Sessions"},
		Rows:    []map[string]any{{"Total_Live_Sessions": int64(17)}},
	}

	got := f.Format(p, res)
	assert.Contains(t, got, "Total Live Sessions: 17")
}

func TestFormatNumberedList(t *testing.T) {
	f := New(10)
	p := builtinPattern(t, "students_by_cgpa_range")
	res := &store.Result{
		Columns: []string{"First Name", "Last Name", "Overall CGPA", "Cohort #"},
		Rows: []map[string]any{
			{"First Name": "Bob", "Last Name": "Jones", "Overall CGPA": 2.5, "Cohort #": "C1"},
			{"First Name": "Dan", "Last Name": "Brown", "Overall CGPA": 2.9, "Cohort #": "C2"},
		},
	}

	got := f.Format(p, res)
	assert.Contains(t, got, "(2 records)")
	assert.Contains(t, got, "**1.** First Name: Bob")
	assert.Contains(t, got, "Overall CGPA: 2.5")
	assert.Contains(t, got, "**2.** First Name: Dan")
	assert.NotContains(t, got, "more records")
}

func TestFormatListCapsRecords(t *testing.T) {
	f := New(10)
	p := builtinPattern(t, "students_by_cgpa_range")

	res := &store.Result{Columns: []string{"First Name", "Last Name"}}
	for i := 0; i < 14; i++ {
		res.Rows = append(res.Rows, map[string]any{
			"First Name": fmt.Sprintf("S%02d", i),
			"Last Name":  "X",
		})
	}

	got := f.Format(p, res)
	assert.Contains(t, got, "(14 records)")
	assert.Contains(t, got, "**10.**")
	assert.NotContains(t, got, "**11.**")
	assert.Contains(t, got, "... and 4 more records")
}

func TestFormatNoResults(t *testing.T) {
	f := New(10)
	p := builtinPattern(t, "students_by_country")

	got := f.Format(p, &store.Result{Columns: []string{"First Name"}})
	assert.Contains(t, got, "No results found")
}

func TestFormatStatusBreakdown(t *testing.T) {
	f := New(10)
	p := builtinPattern(t, "active_vs_inactive_breakdown")
	res := &store.Result{
		Columns: []string{"Status", "Student_Count"},
		Rows: []map[string]any{
			{"Status": "Active", "Student_Count": int64(120)},
			{"Status": "Inactive", "Student_Count": int64(30)},
		},
	}

	got := f.Format(p, res)
	assert.Contains(t, got, "Student Status Breakdown")
	assert.Contains(t, got, "• Active: 120 students")
	assert.Contains(t, got, "• Inactive: 30 students")
}

func TestFormatLearnerDetail(t *testing.T) {
	f := New(10)
	p := builtinPattern(t, "learner_detail")
	res := &store.Result{
		Columns: []string{"First Name", "Last Name", "Email", "User ID", "Cohort #", "Status", "Batch", "Overall CGPA", "Courses Completed", "Courses Incomplete", "Chair", "Grading Status"},
		Rows: []map[string]any{{
			"First Name": "Alice", "Last Name": "Smith",
			"Email": "alice@example.com", "User ID": "10001",
			"Cohort #": "C1", "Status": "Active", "Batch": "B1",
			"Overall CGPA": 3.8, "Courses Completed": int64(12), "Courses Incomplete": int64(0),
			"Chair": "Dr. Lee", "Grading Status": "In Review",
		}},
	}

	got := f.Format(p, res)
	assert.Contains(t, got, "**Alice Smith**")
	assert.Contains(t, got, "• Email: alice@example.com")
	assert.Contains(t, got, "• Overall CGPA: 3.8")
	assert.Contains(t, got, "• Courses Incomplete: 0")
	assert.Contains(t, got, "• Chair: Dr. Lee")
	assert.Contains(t, got, "• Grading Status: In Review")
}

func TestFormatLearnerDetailMissingGrades(t *testing.T) {
	f := New(10)
	p := builtinPattern(t, "learner_detail")
	res := &store.Result{
		Columns: []string{"First Name", "Last Name", "Email", "User ID", "Cohort #", "Status", "Batch", "Overall CGPA", "Courses Completed", "Courses Incomplete"},
		Rows: []map[string]any{{
			"First Name": "Eve", "Last Name": "Gray",
			"Email": "eve@example.com", "User ID": "10009",
			"Cohort #": "C4", "Status": "Active", "Batch": "B4",
			"Overall CGPA": nil, "Courses Completed": nil, "Courses Incomplete": nil,
		}},
	}

	got := f.Format(p, res)
	assert.Contains(t, got, "• Overall CGPA: N/A")
	assert.Contains(t, got, "• Chair: N/A")
}

func TestCandidateList(t *testing.T) {
	f := New(10)
	candidates := []session.Candidate{
		{FirstName: "Alice", LastName: "Smith", Email: "alice@example.com", Cohort: "C1", Status: "Active"},
		{FirstName: "Alicia", LastName: "Stone", Email: "alicia@example.com", Cohort: "C2", Status: "Inactive"},
	}

	got := f.CandidateList("ali", candidates, 12)
	assert.Contains(t, got, "found 12 learners")
	assert.Contains(t, got, "**1.** Alice Smith")
	assert.Contains(t, got, "**2.** Alicia Stone")
	assert.Contains(t, got, "first 2 of 12")
	assert.Contains(t, got, "between 1 and 2")
}

func TestGuidanceTexts(t *testing.T) {
	reg, err := registry.New(registry.Builtin())
	require.NoError(t, err)

	for _, p := range reg.Patterns() {
		if !p.Guidance() {
			continue
		}
		text := Guidance(p.Name)
		assert.NotEmpty(t, text, p.Name)
		assert.True(t, strings.Contains(text, "**"), "guidance for %s should be formatted", p.Name)
	}

	// Unknown names fall back to the assistant overview.
	assert.Equal(t, Guidance("assistant_help"), Guidance("never_heard_of_it"))
}

func TestAsString(t *testing.T) {
	assert.Equal(t, "N/A", AsString(nil))
	assert.Equal(t, "N/A", AsString(""))
	assert.Equal(t, "42", AsString(int64(42)))
	assert.Equal(t, "3.8", AsString(3.8))
	assert.Equal(t, "3", AsString(3.0))
	assert.Equal(t, "C1", AsString("C1"))
}
