// Package errors provides typed error handling for the assistant.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ============================================================
// Categories
// ============================================================

// Category classifies errors by who has to act on them.
type Category int

const (
	// CategoryUser - bad or incomplete input, surfaced as a correction request.
	CategoryUser Category = iota

	// CategoryStore - student database unavailable or a catalog query failed.
	CategoryStore

	// CategoryEscalation - generative collaborator failed or timed out.
	// Always absorbed by the fallback chain, never surfaced raw.
	CategoryEscalation

	// CategoryInternal - bugs and unexpected states.
	CategoryInternal
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryUser:
		return "user"
	case CategoryStore:
		return "store"
	case CategoryEscalation:
		return "escalation"
	case CategoryInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// ============================================================
// Error Codes
// ============================================================

const (
	CodeMissingParameter     = "MISSING_PARAMETER"
	CodeInvalidParameterType = "INVALID_PARAMETER_TYPE"
	CodeStoreUnavailable     = "STORE_UNAVAILABLE"
	CodeStoreQueryFailed     = "STORE_QUERY_FAILED"
	CodeSelectionOutOfRange  = "SELECTION_OUT_OF_RANGE"
	CodeEscalationTimeout    = "ESCALATION_TIMEOUT"
	CodeEscalationFailed     = "ESCALATION_FAILED"
	CodeInternal             = "INTERNAL"
)

// ============================================================
// AppError
// ============================================================

// AppError is the error type used throughout the assistant.
type AppError struct {
	Code     string
	Message  string
	Category Category
	Inner    error

	// Fields holds parameter names involved in user errors
	// (missing parameters, the offending slot for a type error).
	Fields []string

	// Max is the upper bound for selection-range errors.
	Max int
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *AppError) Unwrap() error {
	return e.Inner
}

// ============================================================
// Constructors
// ============================================================

// New creates an AppError with the given code, message and category.
func New(code, message string, category Category) *AppError {
	return &AppError{Code: code, Message: message, Category: category}
}

// Wrap wraps an existing error with assistant context.
func Wrap(err error, code, message string, category Category) *AppError {
	return &AppError{Code: code, Message: message, Category: category, Inner: err}
}

// MissingParameter reports required query parameters absent from the utterance.
func MissingParameter(fields []string) *AppError {
	return &AppError{
		Code:     CodeMissingParameter,
		Message:  "required parameters not found: " + strings.Join(fields, ", "),
		Category: CategoryUser,
		Fields:   fields,
	}
}

// InvalidParameterType reports a parameter that failed numeric validation.
func InvalidParameterType(field, value string) *AppError {
	return &AppError{
		Code:     CodeInvalidParameterType,
		Message:  fmt.Sprintf("parameter %q has invalid value %q", field, value),
		Category: CategoryUser,
		Fields:   []string{field},
	}
}

// StoreUnavailable reports that the student database could not be reached.
func StoreUnavailable(err error) *AppError {
	return &AppError{
		Code:     CodeStoreUnavailable,
		Message:  "student database unavailable",
		Category: CategoryStore,
		Inner:    err,
	}
}

// StoreQueryFailed reports a catalog query that errored during execution.
// The pattern name identifies the query; parameter values are never included.
func StoreQueryFailed(patternName string, err error) *AppError {
	return &AppError{
		Code:     CodeStoreQueryFailed,
		Message:  "query failed for pattern " + patternName,
		Category: CategoryStore,
		Inner:    err,
	}
}

// SelectionOutOfRange reports a numeric disambiguation reply outside 1..max.
func SelectionOutOfRange(max int) *AppError {
	return &AppError{
		Code:     CodeSelectionOutOfRange,
		Message:  fmt.Sprintf("selection must be between 1 and %d", max),
		Category: CategoryUser,
		Max:      max,
	}
}

// EscalationTimeout reports a generative completion that exceeded its deadline.
func EscalationTimeout(err error) *AppError {
	return &AppError{
		Code:     CodeEscalationTimeout,
		Message:  "generative collaborator timed out",
		Category: CategoryEscalation,
		Inner:    err,
	}
}

// EscalationFailed reports a generative completion that errored.
func EscalationFailed(err error) *AppError {
	return &AppError{
		Code:     CodeEscalationFailed,
		Message:  "generative collaborator failed",
		Category: CategoryEscalation,
		Inner:    err,
	}
}

// ============================================================
// Inspection Helpers
// ============================================================

// GetCode extracts the error code, or CodeInternal for foreign errors.
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// GetCategory extracts the error category, or CategoryInternal for foreign errors.
func GetCategory(err error) Category {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Category
	}
	return CategoryInternal
}

// IsUser reports whether the error should be answered with a correction request.
func IsUser(err error) bool {
	return GetCategory(err) == CategoryUser
}

// FormatUserMessage converts an error into text safe to show the user.
func FormatUserMessage(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return "Something went wrong while processing your request. Please try again."
	}

	switch appErr.Code {
	case CodeMissingParameter:
		return fmt.Sprintf(
			"I found a matching query but I need more information. Please provide: %s.",
			strings.Join(appErr.Fields, ", "))
	case CodeInvalidParameterType:
		field := "that value"
		if len(appErr.Fields) > 0 {
			field = appErr.Fields[0]
		}
		return fmt.Sprintf(
			"The value you gave for %s doesn't look like a number. Please rephrase with a numeric value.",
			field)
	case CodeSelectionOutOfRange:
		return fmt.Sprintf(
			"Please reply with a number between 1 and %d, or ask a different question.",
			appErr.Max)
	case CodeStoreUnavailable, CodeStoreQueryFailed:
		return "I couldn't reach the student database right now. Please try again in a moment."
	case CodeEscalationTimeout, CodeEscalationFailed:
		return "I couldn't come up with an answer for that. Try rephrasing your question."
	default:
		return "Something went wrong while processing your request. Please try again."
	}
}
