// Package store executes catalog queries against the student database.
package store

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"

	apperrors "github.com/akshit-shetty/eduops-assistant/internal/errors"
	"github.com/akshit-shetty/eduops-assistant/internal/registry"
)

// Result holds the rows of an executed query. Columns preserves the
// select-list order; row values are scalars with byte slices converted
// to strings.
type Result struct {
	Columns []string
	Rows    []map[string]any
}

// Executor runs a parameterized catalog query. The pattern name is used
// for error identity and logging only; parameter values must be bound,
// never spliced into the query text.
type Executor interface {
	Execute(ctx context.Context, patternName, query string, params map[string]string) (*Result, error)
}

// ============================================================
// Template Binding
// ============================================================

// numericSlots lists parameters validated and converted before binding.
var numericSlots = map[string]string{
	"cgpa":  "float",
	"limit": "int",
}

// bindTemplate rewrites {slot} placeholders to ? in order of appearance
// and collects the bind arguments. Values never enter the SQL text.
func bindTemplate(query string, params map[string]string) (string, []any, error) {
	var args []any
	var bindErr error
	rewritten := registry.SlotRe.ReplaceAllStringFunc(query, func(m string) string {
		if bindErr != nil {
			return m
		}
		name := strings.Trim(m, "{}")
		value := params[name]
		if value == "" {
			bindErr = apperrors.MissingParameter([]string{name})
			return m
		}
		arg, err := convertSlot(name, value)
		if err != nil {
			bindErr = err
			return m
		}
		args = append(args, arg)
		return "?"
	})
	if bindErr != nil {
		return "", nil, bindErr
	}
	return rewritten, args, nil
}

func convertSlot(name, value string) (any, error) {
	switch numericSlots[name] {
	case "float":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, apperrors.InvalidParameterType(name, value)
		}
		return f, nil
	case "int":
		i, err := strconv.Atoi(value)
		if err != nil {
			return nil, apperrors.InvalidParameterType(name, value)
		}
		return i, nil
	}
	return value, nil
}

// ============================================================
// Identifier Aliases
// ============================================================

// aliasTable maps the symbolic identifiers used in catalog templates to
// the quoted table and column names of the dashboard database.
var aliasTable = map[string]string{
	"Student_List":       `"Student List"`,
	"Live_Session":       `"Live Session"`,
	"First_Name":         `"First Name"`,
	"Last_Name":          `"Last Name"`,
	"User_ID":            `"User ID"`,
	"Cohort":             `"Cohort #"`,
	"Overall_CGPA":       `"Overall CGPA"`,
	"Courses_Completed":  `"Courses Completed"`,
	"Courses_Incomplete": `"Courses Incomplete"`,
	"Grading_Status":     `"Grading Status"`,
	"Student_Type":       `"Student Type"`,
}

var aliasRe = buildAliasRe()

func buildAliasRe() *regexp.Regexp {
	keys := make([]string, 0, len(aliasTable))
	for k := range aliasTable {
		keys = append(keys, k)
	}
	// Longest first so no key shadows another at the same position.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return regexp.MustCompile(`\b(?:` + strings.Join(keys, "|") + `)\b`)
}

// translateAliases rewrites symbolic identifiers to quoted names.
// Word boundaries keep result-column aliases like Total_Cohorts intact.
func translateAliases(query string) string {
	return aliasRe.ReplaceAllStringFunc(query, func(m string) string {
		return aliasTable[m]
	})
}
