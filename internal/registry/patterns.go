package registry

// Builtin returns the production query catalog.
//
// Query templates use symbolic table and column names (Student_List,
// First_Name, Cohort, ...) that the store translates to the quoted
// identifiers of the dashboard database. {slot} placeholders are bound
// as parameters at execution time, never spliced into the text.
//
// Keywords are written in canonical (normalized) form so they line up
// with normalized utterances.
func Builtin() []Pattern {
	return []Pattern{
		{
			ID:   1,
			Name: "active_students_by_cohort",
			Phrases: []string{
				"show all active students from cohort {cohort}",
				"active students in cohort {cohort}",
				"list active learners from {cohort}",
			},
			Keywords: []string{"show", "active", "students", "cohort"},
			Query: `SELECT First_Name, Last_Name, Email, User_ID, Status
FROM Student_List
WHERE Status IN ('Active', 'Active / Deferred In') AND Cohort = {cohort}
ORDER BY First_Name`,
			Params:      []string{"cohort"},
			Description: "Active students in a cohort",
		},
		{
			ID:   2,
			Name: "find_learner_by_email",
			Phrases: []string{
				"get student details using email address {email}",
				"find learner with email {email}",
				"student with email {email}",
			},
			Keywords: []string{"show", "student", "email"},
			Query: `SELECT First_Name, Last_Name, Email, User_ID, Cohort, Status
FROM Student_List
WHERE Email = {email} COLLATE NOCASE`,
			Params:      []string{"email"},
			Description: "Find a learner by email address",
			Search:      true,
		},
		{
			ID:   3,
			Name: "search_learners",
			Phrases: []string{
				"search for {query}",
				"find information about {query}",
				"show me details for {query}",
				"lookup {query}",
			},
			Keywords: []string{"search"},
			Query: `SELECT First_Name, Last_Name, Email, User_ID, Cohort, Status
FROM Student_List
WHERE (First_Name || ' ' || Last_Name) LIKE '%' || {query} || '%'
   OR Email LIKE '%' || {query} || '%'
ORDER BY First_Name`,
			Params:      []string{"query"},
			Description: "Search learners by name or email",
			Search:      true,
		},
		{
			ID:   4,
			Name: "total_enrollment_summary",
			Phrases: []string{
				"total unique students count",
				"count enrolled students",
				"give me enrollment numbers",
			},
			Keywords:    []string{"count", "students", "unique"},
			Query:       `SELECT COUNT(DISTINCT Email) AS Total_Unique_Students FROM Student_List`,
			Description: "Total number of unique students",
		},
		{
			ID:   5,
			Name: "active_vs_inactive_breakdown",
			Phrases: []string{
				"how many students are active",
				"active vs inactive student breakdown",
				"student status distribution",
			},
			Keywords: []string{"count", "students", "active"},
			Query: `SELECT Status, COUNT(*) AS Student_Count
FROM Student_List
GROUP BY Status
ORDER BY Student_Count DESC`,
			Description: "Student counts by enrollment status",
		},
		{
			ID:   6,
			Name: "cohort_enrollment_numbers",
			Phrases: []string{
				"students per cohort",
				"cohort enrollment numbers",
				"cohort size breakdown",
				"show cohort statistics",
			},
			Keywords: []string{"students", "cohort"},
			Query: `SELECT Cohort, COUNT(*) AS Total_Students,
       SUM(CASE WHEN Status IN ('Active', 'Active / Deferred In') THEN 1 ELSE 0 END) AS Active_Count
FROM Student_List
GROUP BY Cohort
ORDER BY Cohort`,
			Description: "Enrollment numbers per cohort",
		},
		{
			ID:   7,
			Name: "students_at_academic_risk",
			Phrases: []string{
				"students at academic risk",
				"learners needing intervention",
				"who is struggling academically",
			},
			Keywords: []string{"students", "academic", "risk"},
			Query: `SELECT s.First_Name, s.Last_Name, s.Cohort, g.Overall_CGPA, g.Courses_Incomplete
FROM Student_List s
JOIN Gradesheet g ON s.Email = g.Email
WHERE (g.Overall_CGPA < 3.0 OR g.Courses_Incomplete > 1)
  AND s.Status IN ('Active', 'Active / Deferred In')
ORDER BY g.Overall_CGPA ASC`,
			Description: "Students at academic risk",
		},
		{
			ID:   8,
			Name: "graduation_eligible_students",
			Phrases: []string{
				"students ready for graduation",
				"graduation eligible students",
				"who can graduate",
			},
			Keywords: []string{"students", "graduation"},
			Query: `SELECT s.First_Name, s.Last_Name, s.Cohort, g.Overall_CGPA, g.Courses_Completed
FROM Student_List s
JOIN Gradesheet g ON s.Email = g.Email
WHERE g.Courses_Completed >= 12 AND g.Overall_CGPA >= 3.0
ORDER BY g.Overall_CGPA DESC`,
			Description: "Students eligible for graduation",
		},
		{
			ID:   9,
			Name: "dissertation_supervision_status",
			Phrases: []string{
				"dissertation supervision status",
				"faculty workload distribution",
				"supervisor assignments",
			},
			Keywords: []string{"dissertation", "supervision", "status"},
			Query: `SELECT Chair, COUNT(*) AS Students_Supervised
FROM Dissertation
WHERE Chair IS NOT NULL AND Chair != ''
GROUP BY Chair
ORDER BY Students_Supervised DESC`,
			Description: "Dissertation supervision workload by chair",
		},
		{
			ID:   10,
			Name: "students_without_supervision",
			Phrases: []string{
				"students without dissertation chairs",
				"unassigned supervision",
				"students needing supervisors",
			},
			Keywords: []string{"students", "without", "dissertation"},
			Query: `SELECT First_Name, Last_Name, Email
FROM Dissertation
WHERE Chair IS NULL OR Chair = ''`,
			Description: "Students without an assigned dissertation chair",
		},
		{
			ID:   11,
			Name: "international_vs_domestic",
			Phrases: []string{
				"international vs domestic students",
				"student origin breakdown",
				"how many international students",
			},
			Keywords: []string{"international", "domestic", "students"},
			Query: `SELECT Student_Type, COUNT(*) AS Student_Count
FROM Student_List
WHERE Student_Type IS NOT NULL
GROUP BY Student_Type
ORDER BY Student_Count DESC`,
			Description: "International vs domestic student breakdown",
		},
		{
			ID:   12,
			Name: "course_completion_rates",
			Phrases: []string{
				"course completion rates",
				"completion statistics",
				"academic progress overview",
			},
			Keywords: []string{"course", "completion"},
			Query: `SELECT Courses_Completed, COUNT(*) AS Student_Count
FROM Gradesheet
GROUP BY Courses_Completed
ORDER BY Courses_Completed DESC`,
			Description: "Course completion distribution",
		},
		{
			ID:   13,
			Name: "dissertation_progress_tracking",
			Phrases: []string{
				"dissertation progress tracking",
				"thesis completion status",
				"dissertation grading overview",
			},
			Keywords: []string{"dissertation", "status", "tracking"},
			Query: `SELECT Grading_Status, COUNT(*) AS Dissertation_Count
FROM Dissertation
WHERE Grading_Status IS NOT NULL AND Grading_Status != ''
GROUP BY Grading_Status
ORDER BY Dissertation_Count DESC`,
			Description: "Dissertation progress by grading status",
		},
		{
			ID:   14,
			Name: "students_by_cgpa_range",
			Phrases: []string{
				"students with cgpa less than {cgpa}",
				"students with cgpa below {cgpa}",
				"identify learners with low cgpa under {cgpa}",
			},
			Keywords: []string{"students", "cgpa", "less"},
			Query: `SELECT s.First_Name, s.Last_Name, g.Overall_CGPA, s.Cohort
FROM Student_List s
JOIN Gradesheet g ON s.Email = g.Email
WHERE g.Overall_CGPA < {cgpa}
ORDER BY g.Overall_CGPA ASC`,
			Params:      []string{"cgpa"},
			Description: "Students below a CGPA threshold",
		},
		{
			ID:   15,
			Name: "top_performers",
			Phrases: []string{
				"show the top {limit} students by overall cgpa",
				"top {limit} students by cgpa",
				"best performing students top {limit}",
			},
			Keywords: []string{"top", "students", "cgpa"},
			Query: `SELECT s.First_Name, s.Last_Name, g.Overall_CGPA, s.Cohort
FROM Student_List s
JOIN Gradesheet g ON s.Email = g.Email
ORDER BY g.Overall_CGPA DESC
LIMIT {limit}`,
			Params:      []string{"limit"},
			Description: "Top students by CGPA",
		},
		{
			ID:   16,
			Name: "average_cgpa_by_cohort",
			Phrases: []string{
				"average cgpa by cohort",
				"mean cgpa per cohort",
				"cohort cgpa averages",
			},
			Keywords: []string{"average", "cgpa", "cohort"},
			Query: `SELECT s.Cohort, ROUND(AVG(g.Overall_CGPA), 2) AS Average_CGPA
FROM Student_List s
JOIN Gradesheet g ON s.Email = g.Email
GROUP BY s.Cohort
ORDER BY s.Cohort`,
			Description: "Average CGPA per cohort",
		},
		{
			ID:   17,
			Name: "students_by_country",
			Phrases: []string{
				"show all students coming from country {country}",
				"students from {country}",
			},
			Keywords: []string{"students", "country"},
			Query: `SELECT First_Name, Last_Name, Email, Cohort, Country
FROM Student_List
WHERE Country = {country} COLLATE NOCASE
ORDER BY First_Name`,
			Params:      []string{"country"},
			Description: "Students from a given country",
		},
		{
			ID:   18,
			Name: "learner_detail",
			Phrases: []string{
				"full details for learner with email {email} in cohort {cohort}",
				"complete profile for {email} cohort {cohort}",
			},
			Keywords: []string{"details", "learner", "email", "cohort"},
			Query: `SELECT s.First_Name, s.Last_Name, s.Email, s.User_ID, s.Cohort,
       s.Status, s.Batch, g.Overall_CGPA, g.Courses_Completed, g.Courses_Incomplete,
       d.Chair, d.Grading_Status
FROM Student_List s
LEFT JOIN Gradesheet g ON s.Email = g.Email
LEFT JOIN Dissertation d ON s.Email = d.Email
WHERE s.Email = {email} AND s.Cohort = {cohort}`,
			Params:      []string{"email", "cohort"},
			Description: "Full learner profile",
		},
		{
			ID:   19,
			Name: "total_live_sessions",
			Phrases: []string{
				"total number of live sessions",
				"count of live sessions",
				"live sessions total",
			},
			Keywords:    []string{"count", "live", "sessions"},
			Query:       `SELECT COUNT(*) AS Total_Live_Sessions FROM Live_Session`,
			Description: "Total number of live sessions",
		},
		{
			ID:   20,
			Name: "live_sessions_by_course",
			Phrases: []string{
				"live sessions by course",
				"sessions per course",
				"which courses have live sessions",
			},
			Keywords: []string{"live", "sessions", "course"},
			Query: `SELECT Program, COUNT(*) AS Session_Count
FROM Live_Session
GROUP BY Program
ORDER BY Session_Count DESC`,
			Description: "Live sessions per course",
		},

		// Guidance-only patterns. No query; resolved to static help text.
		{
			ID:   21,
			Name: "webapp_navigation_help",
			Phrases: []string{
				"how to navigate the webapp",
				"webapp navigation guide",
				"where do i find things in the application",
			},
			Keywords:    []string{"webapp", "navigate"},
			Description: "Webapp navigation guide",
		},
		{
			ID:   22,
			Name: "dashboard_help",
			Phrases: []string{
				"how to use the dashboard",
				"dashboard features",
				"dashboard help",
			},
			Keywords:    []string{"dashboard"},
			Description: "Dashboard usage guide",
		},
		{
			ID:   23,
			Name: "learners_page_help",
			Phrases: []string{
				"how to view the learners page",
				"learners page help",
				"student list guide",
			},
			Keywords:    []string{"students", "page"},
			Description: "Learners page guide",
		},
		{
			ID:   24,
			Name: "document_creation_help",
			Phrases: []string{
				"how to create documents",
				"document generation help",
				"bulk document creation",
			},
			Keywords:    []string{"documents", "create"},
			Description: "Document creation guide",
		},
		{
			ID:   25,
			Name: "email_automation_help",
			Phrases: []string{
				"how to send emails",
				"email automation help",
				"bulk email sending",
			},
			Keywords:    []string{"emails", "send"},
			Description: "Email automation guide",
		},
		{
			ID:   26,
			Name: "assistant_help",
			Phrases: []string{
				"help",
				"what can you do",
				"how to use the assistant",
				"chatbot help",
			},
			Keywords:    []string{"help"},
			Description: "What the assistant can do",
		},
	}
}
