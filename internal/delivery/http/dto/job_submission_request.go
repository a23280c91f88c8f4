package dto

import "jobboard/internal/domain/job"

// JobSubmissionRequest accepts the caller-supplied fields of a new posting.
// A status or timestamp in the payload is ignored: every submission starts
// out PENDING.
type JobSubmissionRequest struct {
	CompanyName        string `json:"companyName"`
	CompanyWebsite     string `json:"companyWebsite"`
	CompanyContact     string `json:"companyContact"`
	CompanyDescription string `json:"companyDescription"`
	JobTitle           string `json:"jobTitle"`
	Department         string `json:"department"`
	LocationType       string `json:"locationType"`
	Location           string `json:"location"`
	JobType            string `json:"jobType"`
	SalaryRange        string `json:"salaryRange"`
	JobDescription     string `json:"jobDescription"`
}

func (r JobSubmissionRequest) ToSubmissionData() job.SubmissionData {
	return job.SubmissionData{
		CompanyName:        r.CompanyName,
		CompanyWebsite:     r.CompanyWebsite,
		CompanyContact:     r.CompanyContact,
		CompanyDescription: r.CompanyDescription,
		JobTitle:           r.JobTitle,
		Department:         job.Department(r.Department),
		LocationType:       job.LocationType(r.LocationType),
		JobType:            job.JobType(r.JobType),
		Location:           r.Location,
		SalaryRange:        r.SalaryRange,
		JobDescription:     r.JobDescription,
	}
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}
