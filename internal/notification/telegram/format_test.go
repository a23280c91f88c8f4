package telegram

import (
	"strings"
	"testing"
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

func sampleJob() job.Job {
	return job.Job{
		ID:                 uuid.New(),
		Status:             job.StatusApproved,
		CompanyName:        "DeFi Protocol Labs",
		CompanyWebsite:     "https://defiprotocol.com",
		CompanyContact:     "careers@defiprotocol.com",
		CompanyDescription: "Next generation DeFi protocols.",
		JobTitle:           "Senior Frontend Developer",
		Department:         job.DepartmentFrontend,
		LocationType:       job.LocationRemote,
		Location:           "Worldwide",
		JobType:            job.TypeFullTime,
		SalaryRange:        "$120k - $180k",
		JobDescription:     "Build the future of decentralized finance.",
	}
}

func TestFormatApprovedMessage(t *testing.T) {
	msg := FormatApprovedMessage(sampleJob())

	for _, want := range []string{
		"*New Job Posted!*",
		"*Senior Frontend Developer* at *DeFi Protocol Labs*",
		"*Department:* FRONTEND",
		"*Location:* REMOTE - Worldwide",
		"*Type:* FULL TIME",
		"*Salary:* $120k - $180k",
		"*Contact:* careers@defiprotocol.com",
		"*Website:* https://defiprotocol.com",
		"#Jobs #FRONTEND #REMOTE",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("approved message missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatApprovedMessage_OmitsEmptyOptionalFields(t *testing.T) {
	j := sampleJob()
	j.CompanyWebsite = ""
	j.SalaryRange = ""
	j.Location = ""

	msg := FormatApprovedMessage(j)

	if strings.Contains(msg, "Website") {
		t.Fatalf("expected website line omitted:\n%s", msg)
	}
	if strings.Contains(msg, "Salary") {
		t.Fatalf("expected salary line omitted:\n%s", msg)
	}
	if !strings.Contains(msg, "*Location:* REMOTE\n") {
		t.Fatalf("expected bare location type:\n%s", msg)
	}
}

func TestFormatSubmissionMessage(t *testing.T) {
	submitted := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	msg := FormatSubmissionMessage(sampleJob(), submitted)

	for _, want := range []string{
		"*New Job Submission*",
		"*Company Description:*",
		"*Submitted:* 2025-03-14 09:26:53 UTC",
		"*Status:* PENDING REVIEW",
		"Please review and approve/reject in the admin panel.",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("submission message missing %q:\n%s", want, msg)
		}
	}

	if strings.Contains(msg, "#Jobs") {
		t.Fatalf("submission alert must not carry public hashtags:\n%s", msg)
	}
}
