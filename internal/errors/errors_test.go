package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsSetCodeAndCategory(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		code     string
		category Category
	}{
		{"missing parameter", MissingParameter([]string{"cohort"}), CodeMissingParameter, CategoryUser},
		{"invalid type", InvalidParameterType("cgpa", "abc"), CodeInvalidParameterType, CategoryUser},
		{"store unavailable", StoreUnavailable(stderrors.New("no such file")), CodeStoreUnavailable, CategoryStore},
		{"query failed", StoreQueryFailed("top_performers", stderrors.New("syntax")), CodeStoreQueryFailed, CategoryStore},
		{"selection out of range", SelectionOutOfRange(5), CodeSelectionOutOfRange, CategoryUser},
		{"escalation timeout", EscalationTimeout(stderrors.New("deadline")), CodeEscalationTimeout, CategoryEscalation},
		{"escalation failed", EscalationFailed(stderrors.New("503")), CodeEscalationFailed, CategoryEscalation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, GetCode(tt.err))
			assert.Equal(t, tt.category, GetCategory(tt.err))
		})
	}
}

func TestUnwrap(t *testing.T) {
	inner := stderrors.New("disk full")
	err := StoreUnavailable(inner)
	assert.ErrorIs(t, err, inner)
}

func TestGetCodeForeignError(t *testing.T) {
	assert.Equal(t, CodeInternal, GetCode(stderrors.New("plain")))
}

func TestGetCodeWrappedDeep(t *testing.T) {
	err := fmt.Errorf("outer: %w", MissingParameter([]string{"email"}))
	assert.Equal(t, CodeMissingParameter, GetCode(err))
	assert.True(t, IsUser(err))
}

func TestFormatUserMessage(t *testing.T) {
	msg := FormatUserMessage(MissingParameter([]string{"cohort", "cgpa"}))
	assert.Contains(t, msg, "cohort, cgpa")

	msg = FormatUserMessage(SelectionOutOfRange(7))
	assert.Contains(t, msg, "between 1 and 7")

	msg = FormatUserMessage(InvalidParameterType("limit", "many"))
	assert.Contains(t, msg, "limit")

	// Store failures never leak internals to the user.
	msg = FormatUserMessage(StoreQueryFailed("x", stderrors.New("SQL logic error near token")))
	require.NotContains(t, msg, "SQL logic error")
}
