package telegram

import (
	"fmt"
	"strings"
	"time"

	"jobboard/internal/domain/job"
)

// FormatApprovedMessage renders the public-channel announcement for a job
// that just went live.
func FormatApprovedMessage(j job.Job) string {
	var b strings.Builder

	b.WriteString("🎉 *New Job Posted!*\n\n")
	fmt.Fprintf(&b, "*%s* at *%s*\n\n", j.JobTitle, j.CompanyName)

	writeJobDetails(&b, j)

	b.WriteString("\n")
	b.WriteString(j.CompanyDescription)
	b.WriteString("\n\n")

	writeContactLines(&b, j)

	fmt.Fprintf(&b, "\n#Jobs #%s #%s", j.Department, j.LocationType)
	return b.String()
}

// FormatSubmissionMessage renders the admin-channel alert for a fresh
// submission awaiting review.
func FormatSubmissionMessage(j job.Job, submittedAt time.Time) string {
	var b strings.Builder

	b.WriteString("🔔 *New Job Submission*\n\n")
	fmt.Fprintf(&b, "*%s* at *%s*\n\n", j.JobTitle, j.CompanyName)

	writeJobDetails(&b, j)

	b.WriteString("\n*Company Description:*\n")
	b.WriteString(j.CompanyDescription)
	b.WriteString("\n\n")

	writeContactLines(&b, j)

	fmt.Fprintf(&b, "\n⏰ *Submitted:* %s\n", submittedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	b.WriteString("\n👤 *Status:* PENDING REVIEW\n")
	b.WriteString("\nPlease review and approve/reject in the admin panel.")
	return b.String()
}

func writeJobDetails(b *strings.Builder, j job.Job) {
	fmt.Fprintf(b, "📋 *Department:* %s\n", j.Department)

	loc := string(j.LocationType)
	if j.Location != "" {
		loc += " - " + j.Location
	}
	fmt.Fprintf(b, "📍 *Location:* %s\n", loc)

	fmt.Fprintf(b, "💼 *Type:* %s\n", strings.ReplaceAll(string(j.JobType), "_", " "))

	if j.SalaryRange != "" {
		fmt.Fprintf(b, "💰 *Salary:* %s\n", j.SalaryRange)
	}
}

func writeContactLines(b *strings.Builder, j job.Job) {
	fmt.Fprintf(b, "📞 *Contact:* %s\n", j.CompanyContact)
	if j.CompanyWebsite != "" {
		fmt.Fprintf(b, "🌐 *Website:* %s\n", j.CompanyWebsite)
	}
}
