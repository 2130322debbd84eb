package format

// Guidance returns the static help text for a guidance-only pattern.
func Guidance(name string) string {
	if text, ok := guidanceTexts[name]; ok {
		return text
	}
	return guidanceTexts["assistant_help"]
}

var guidanceTexts = map[string]string{
	"webapp_navigation_help": `🧭 **Navigating the Webapp**

The sidebar on the left takes you everywhere:

• **Dashboard** - headline metrics and charts
• **Learners** - the searchable student list
• **Documents** - generate letters and certificates
• **Email** - compose and send bulk emails
• **Chatbot** - this assistant

Click any sidebar entry to open that page. Your current page is highlighted.`,

	"dashboard_help": `📊 **Using the Dashboard**

The dashboard shows the headline numbers at a glance:

• Enrollment totals and the active/inactive split
• Cohort sizes and average CGPA trends
• Dissertation progress counts

Cards refresh automatically when the underlying data changes. Click a card
to jump to the detailed view behind it.`,

	"learners_page_help": `👥 **The Learners Page**

The learners page lists every student with filters for cohort, status and
country. Use the search box to find a learner by name, email or user ID.
Clicking a row opens the full profile with grades and dissertation status.

You can also ask me directly, for example "find learner with email
jane@example.com".`,

	"document_creation_help": `📄 **Creating Documents**

From the Documents page you can generate letters and certificates:

1. Pick a template (enrollment letter, completion certificate, ...)
2. Select the learners to generate for
3. Review the preview and click Generate

Generated files land in your downloads as a single zip.`,

	"email_automation_help": `✉️ **Sending Emails**

The Email page supports single and bulk sends:

1. Choose recipients by cohort, status or an explicit list
2. Pick a template or write the message inline
3. Preview, then send

Sent emails are logged per learner so you can trace what went out.`,

	"assistant_help": `🤖 **What I Can Do**

Ask me about the student data in plain English. For example:

• "show all active students from cohort C3"
• "how many students are active"
• "average cgpa by cohort"
• "students with cgpa less than 3"
• "find learner with email jane@example.com"
• "dissertation supervision status"

I can also explain webapp features - try "how to create documents".`,
}
