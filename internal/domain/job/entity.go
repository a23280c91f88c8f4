package job

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Department string

const (
	DepartmentBD            Department = "BD"
	DepartmentBackend       Department = "BACKEND"
	DepartmentFrontend      Department = "FRONTEND"
	DepartmentSmartContract Department = "SMART_CONTRACT"
)

func (d Department) Valid() bool {
	switch d {
	case DepartmentBD, DepartmentBackend, DepartmentFrontend, DepartmentSmartContract:
		return true
	}
	return false
}

type LocationType string

const (
	LocationRemote LocationType = "REMOTE"
	LocationOnsite LocationType = "ONSITE"
	LocationHybrid LocationType = "HYBRID"
)

func (l LocationType) Valid() bool {
	switch l {
	case LocationRemote, LocationOnsite, LocationHybrid:
		return true
	}
	return false
}

type JobType string

const (
	TypeFullTime JobType = "FULL_TIME"
	TypePartTime JobType = "PART_TIME"
	TypeContract JobType = "CONTRACT"
)

func (t JobType) Valid() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract:
		return true
	}
	return false
}

// Job is the single persisted entity: one posting and its review status.
type Job struct {
	ID                 uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Status             Status
	CompanyName        string
	CompanyWebsite     string
	CompanyContact     string
	CompanyDescription string
	JobTitle           string
	Department         Department
	LocationType       LocationType
	Location           string
	JobType            JobType
	SalaryRange        string
	JobDescription     string
}

// SubmissionData carries the caller-supplied fields of a new posting.
// Status and timestamps are never accepted from the caller.
type SubmissionData struct {
	CompanyName        string
	CompanyWebsite     string
	CompanyContact     string
	CompanyDescription string
	JobTitle           string
	Department         Department
	LocationType       LocationType
	Location           string
	JobType            JobType
	SalaryRange        string
	JobDescription     string
}

// Filter holds the optional exact-match filters of the public listing.
// Zero values mean "not filtered".
type Filter struct {
	Department   Department
	LocationType LocationType
	JobType      JobType
}
