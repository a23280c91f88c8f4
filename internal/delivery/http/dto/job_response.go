package dto

import (
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

// JobResponse is the wire shape of a job record. Field names follow the
// submission form; optional fields serialize as empty strings when absent.
type JobResponse struct {
	ID                 uuid.UUID `json:"id"`
	CreatedAt          string    `json:"createdAt"`
	UpdatedAt          string    `json:"updatedAt"`
	Status             string    `json:"status"`
	CompanyName        string    `json:"companyName"`
	CompanyWebsite     string    `json:"companyWebsite,omitempty"`
	CompanyContact     string    `json:"companyContact"`
	CompanyDescription string    `json:"companyDescription"`
	JobTitle           string    `json:"jobTitle"`
	Department         string    `json:"department"`
	LocationType       string    `json:"locationType"`
	Location           string    `json:"location,omitempty"`
	JobType            string    `json:"jobType"`
	SalaryRange        string    `json:"salaryRange,omitempty"`
	JobDescription     string    `json:"jobDescription"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:                 j.ID,
		CreatedAt:          j.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          j.UpdatedAt.UTC().Format(time.RFC3339),
		Status:             string(j.Status),
		CompanyName:        j.CompanyName,
		CompanyWebsite:     j.CompanyWebsite,
		CompanyContact:     j.CompanyContact,
		CompanyDescription: j.CompanyDescription,
		JobTitle:           j.JobTitle,
		Department:         string(j.Department),
		LocationType:       string(j.LocationType),
		Location:           j.Location,
		JobType:            string(j.JobType),
		SalaryRange:        j.SalaryRange,
		JobDescription:     j.JobDescription,
	}
}

func NewJobResponseList(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}
