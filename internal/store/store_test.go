package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/akshit-shetty/eduops-assistant/internal/errors"
)

func TestBindTemplateRewritesSlots(t *testing.T) {
	query := "SELECT * FROM T WHERE a = {cohort} AND b < {cgpa} LIMIT {limit}"
	bound, args, err := bindTemplate(query, map[string]string{
		"cohort": "C2",
		"cgpa":   "3.5",
		"limit":  "5",
	})
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM T WHERE a = ? AND b < ? LIMIT ?", bound)
	assert.Equal(t, []any{"C2", 3.5, 5}, args)

	// Values never appear in the SQL text.
	assert.NotContains(t, bound, "C2")
	assert.NotContains(t, bound, "3.5")
}

func TestBindTemplateRepeatedSlot(t *testing.T) {
	bound, args, err := bindTemplate("WHERE x LIKE {query} OR y LIKE {query}", map[string]string{"query": "ali"})
	require.NoError(t, err)
	assert.Equal(t, "WHERE x LIKE ? OR y LIKE ?", bound)
	assert.Equal(t, []any{"ali", "ali"}, args)
}

func TestBindTemplateMissingParam(t *testing.T) {
	_, _, err := bindTemplate("WHERE a = {cohort}", map[string]string{})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeMissingParameter, apperrors.GetCode(err))
}

func TestBindTemplateRejectsNonNumeric(t *testing.T) {
	_, _, err := bindTemplate("WHERE g < {cgpa}", map[string]string{"cgpa": "three"})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidParameterType, apperrors.GetCode(err))

	_, _, err = bindTemplate("LIMIT {limit}", map[string]string{"limit": "3.5"})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidParameterType, apperrors.GetCode(err))
}

func TestTranslateAliases(t *testing.T) {
	in := "SELECT First_Name, Overall_CGPA FROM Student_List WHERE Cohort = ?"
	want := `SELECT "First Name", "Overall CGPA" FROM "Student List" WHERE "Cohort #" = ?`
	assert.Equal(t, want, translateAliases(in))
}

func TestTranslateAliasesKeepsResultNames(t *testing.T) {
	// Word boundaries: computed aliases that merely contain a symbolic
	// name must survive untouched.
	in := "SELECT COUNT(DISTINCT Cohort) AS Total_Cohorts FROM Student_List"
	got := translateAliases(in)
	assert.Contains(t, got, "Total_Cohorts")
	assert.Contains(t, got, `"Cohort #"`)

	in = "SELECT COUNT(*) AS Total_Live_Sessions FROM Live_Session"
	got = translateAliases(in)
	assert.Contains(t, got, "Total_Live_Sessions")
	assert.Contains(t, got, `"Live Session"`)
}
