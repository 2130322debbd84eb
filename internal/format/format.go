// Package format renders query results as display text.
package format

import (
	"fmt"
	"strings"

	"github.com/akshit-shetty/eduops-assistant/internal/registry"
	"github.com/akshit-shetty/eduops-assistant/internal/session"
	"github.com/akshit-shetty/eduops-assistant/internal/store"
)

// fieldCap bounds how many fields a list record shows.
const fieldCap = 6

// Formatter renders executed catalog queries. Custom layouts take
// priority over the generic scalar and numbered-list renderings.
type Formatter struct {
	displayCap int
}

// New returns a Formatter that lists at most displayCap records.
func New(displayCap int) *Formatter {
	if displayCap < 1 {
		displayCap = 10
	}
	return &Formatter{displayCap: displayCap}
}

// Format renders the result for a pattern.
func (f *Formatter) Format(p *registry.Pattern, res *store.Result) string {
	if res == nil || len(res.Rows) == 0 {
		return f.NoResults(p.Description)
	}
	if custom, ok := customFormatters[p.Name]; ok {
		return custom(res)
	}
	if len(res.Rows) == 1 && len(res.Columns) == 1 {
		return f.scalar(p, res)
	}
	return f.list(p, res)
}

// NoResults renders the empty-result message.
func (f *Formatter) NoResults(description string) string {
	return fmt.Sprintf("No results found for: %s.", strings.ToLower(description))
}

func (f *Formatter) scalar(p *registry.Pattern, res *store.Result) string {
	col := res.Columns[0]
	return fmt.Sprintf("**%s**\n\n%s: %s", p.Description, label(col), AsString(res.Rows[0][col]))
}

func (f *Formatter) list(p *registry.Pattern, res *store.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 **%s** (%d records)\n\n", p.Description, len(res.Rows))

	shown := res.Rows
	if len(shown) > f.displayCap {
		shown = shown[:f.displayCap]
	}
	for i, row := range shown {
		fields := make([]string, 0, fieldCap)
		for _, col := range res.Columns {
			if len(fields) == fieldCap {
				break
			}
			fields = append(fields, fmt.Sprintf("%s: %s", label(col), AsString(row[col])))
		}
		fmt.Fprintf(&b, "**%d.** %s\n", i+1, strings.Join(fields, " | "))
	}
	if extra := len(res.Rows) - len(shown); extra > 0 {
		fmt.Fprintf(&b, "\n... and %d more records", extra)
	}
	return strings.TrimRight(b.String(), "\n")
}

// CandidateList renders a numbered selection prompt for search results.
func (f *Formatter) CandidateList(term string, candidates []session.Candidate, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔍 I found %d learners matching %q. Which one would you like details for?\n\n", total, term)
	for i, c := range candidates {
		fmt.Fprintf(&b, "**%d.** %s %s | %s | Cohort %s | %s\n",
			i+1, c.FirstName, c.LastName, c.Email, c.Cohort, c.Status)
	}
	if total > len(candidates) {
		fmt.Fprintf(&b, "\n(showing the first %d of %d matches)\n", len(candidates), total)
	}
	fmt.Fprintf(&b, "\nReply with a number between 1 and %d to see full details.", len(candidates))
	return b.String()
}

// ============================================================
// Custom Layouts
// ============================================================

var customFormatters = map[string]func(*store.Result) string{
	"total_enrollment_summary":     formatEnrollmentTotal,
	"active_vs_inactive_breakdown": formatStatusBreakdown,
	"cohort_enrollment_numbers":    formatCohortEnrollment,
	"average_cgpa_by_cohort":       formatAverageCGPA,
	"learner_detail":               formatLearnerDetail,
}

func formatEnrollmentTotal(res *store.Result) string {
	return fmt.Sprintf("📊 **Enrollment Summary**\n\nTotal unique students: %s",
		AsString(res.Rows[0]["Total_Unique_Students"]))
}

func formatStatusBreakdown(res *store.Result) string {
	var b strings.Builder
	b.WriteString("📊 **Student Status Breakdown**\n\n")
	for _, row := range res.Rows {
		fmt.Fprintf(&b, "• %s: %s students\n", AsString(row["Status"]), AsString(row["Student_Count"]))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatCohortEnrollment(res *store.Result) string {
	var b strings.Builder
	b.WriteString("📊 **Cohort Enrollment Numbers**\n\n")
	for _, row := range res.Rows {
		fmt.Fprintf(&b, "• Cohort %s: %s students (%s active)\n",
			AsString(row["Cohort #"]), AsString(row["Total_Students"]), AsString(row["Active_Count"]))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatAverageCGPA(res *store.Result) string {
	var b strings.Builder
	b.WriteString("📊 **Average CGPA by Cohort**\n\n")
	for _, row := range res.Rows {
		fmt.Fprintf(&b, "• Cohort %s: %s\n", AsString(row["Cohort #"]), AsString(row["Average_CGPA"]))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatLearnerDetail(res *store.Result) string {
	row := res.Rows[0]
	var b strings.Builder
	fmt.Fprintf(&b, "👤 **%s %s**\n\n", AsString(row["First Name"]), AsString(row["Last Name"]))

	b.WriteString("**Personal Information:**\n")
	fmt.Fprintf(&b, "• Email: %s\n", AsString(row["Email"]))
	fmt.Fprintf(&b, "• User ID: %s\n", AsString(row["User ID"]))
	fmt.Fprintf(&b, "• Cohort: %s\n", AsString(row["Cohort #"]))
	fmt.Fprintf(&b, "• Status: %s\n", AsString(row["Status"]))
	fmt.Fprintf(&b, "• Batch: %s\n", AsString(row["Batch"]))

	b.WriteString("\n**Academic Summary:**\n")
	fmt.Fprintf(&b, "• Overall CGPA: %s\n", AsString(row["Overall CGPA"]))
	fmt.Fprintf(&b, "• Courses Completed: %s\n", AsString(row["Courses Completed"]))
	fmt.Fprintf(&b, "• Courses Incomplete: %s\n", AsString(row["Courses Incomplete"]))

	b.WriteString("\n**Dissertation:**\n")
	fmt.Fprintf(&b, "• Chair: %s\n", AsString(row["Chair"]))
	fmt.Fprintf(&b, "• Grading Status: %s", AsString(row["Grading Status"]))
	return b.String()
}
