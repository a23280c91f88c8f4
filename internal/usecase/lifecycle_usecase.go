package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

const notifyTimeout = 5 * time.Second

type LifecycleUsecase interface {
	Submit(ctx context.Context, data job.SubmissionData) (job.Job, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, target job.Status) (job.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Lifecycle owns validation and the state-transition rules for job records.
// It is the only layer that decides whether an error is fatal to the caller;
// notification failures are advisory and stay here.
type Lifecycle struct {
	jobs     job.Repository
	notifier Notifier
	events   EventPublisher
	cache    ListingCache
	logger   *log.Logger

	// reannounceApproved re-fires the public announcement when an already
	// approved job is approved again. Historical behavior, kept behind a
	// toggle pending a product decision.
	reannounceApproved bool

	now func() time.Time
}

func NewLifecycleUsecase(jobs job.Repository, notifier Notifier, events EventPublisher, cache ListingCache, logger *log.Logger, reannounceApproved bool) *Lifecycle {
	return &Lifecycle{
		jobs:               jobs,
		notifier:           notifier,
		events:             events,
		cache:              cache,
		logger:             logger,
		reannounceApproved: reannounceApproved,
		now:                time.Now,
	}
}

func (u *Lifecycle) Submit(ctx context.Context, data job.SubmissionData) (job.Job, error) {
	if err := validateSubmission(data); err != nil {
		return job.Job{}, err
	}

	now := u.now().UTC()
	j := job.Job{
		ID:                 uuid.New(),
		CreatedAt:          now,
		UpdatedAt:          now,
		Status:             job.StatusPending,
		CompanyName:        strings.TrimSpace(data.CompanyName),
		CompanyWebsite:     strings.TrimSpace(data.CompanyWebsite),
		CompanyContact:     strings.TrimSpace(data.CompanyContact),
		CompanyDescription: strings.TrimSpace(data.CompanyDescription),
		JobTitle:           strings.TrimSpace(data.JobTitle),
		Department:         data.Department,
		LocationType:       data.LocationType,
		Location:           strings.TrimSpace(data.Location),
		JobType:            data.JobType,
		SalaryRange:        strings.TrimSpace(data.SalaryRange),
		JobDescription:     strings.TrimSpace(data.JobDescription),
	}

	if err := u.jobs.Insert(ctx, j); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Lifecycle] Submit insert failed: %v", err)
		}
		return job.Job{}, ErrInternal
	}

	u.notifyBestEffort(ctx, "submission", func(nctx context.Context) error {
		return u.notifier.NotifyJobSubmitted(nctx, j)
	})

	if u.events != nil {
		u.events.PublishJobSubmitted(j)
	}

	return j, nil
}

func (u *Lifecycle) ChangeStatus(ctx context.Context, id uuid.UUID, target job.Status) (job.Job, error) {
	if !target.Valid() {
		return job.Job{}, ErrInvalidStatus
	}

	existing, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	updated, err := u.jobs.UpdateStatus(ctx, id, target)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		if u.logger != nil {
			u.logger.Printf("[Lifecycle] ChangeStatus update failed: id=%s err=%v", id, err)
		}
		return job.Job{}, ErrInternal
	}

	// The write above is the durability boundary. Everything below is
	// advisory and must not affect the returned outcome.
	if target == job.StatusApproved && (u.reannounceApproved || existing.Status != job.StatusApproved) {
		u.notifyBestEffort(ctx, "approval", func(nctx context.Context) error {
			return u.notifier.NotifyJobApproved(nctx, updated)
		})
	}

	u.invalidatePublicListing(ctx)

	if u.events != nil {
		u.events.PublishJobStatusChanged(updated, existing.Status)
	}

	return updated, nil
}

func (u *Lifecycle) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrNotFound
		}
		if u.logger != nil {
			u.logger.Printf("[Lifecycle] Delete failed: id=%s err=%v", id, err)
		}
		return ErrInternal
	}

	u.invalidatePublicListing(ctx)

	if u.events != nil {
		u.events.PublishJobDeleted(id.String())
	}

	return nil
}

// notifyBestEffort runs one notification attempt under its own deadline,
// detached from the request cancellation: the triggering write is already
// committed and a slow sink must not undo or outlive it unboundedly.
func (u *Lifecycle) notifyBestEffort(ctx context.Context, kind string, fn func(context.Context) error) {
	if u.notifier == nil {
		return
	}
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if err := fn(nctx); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Lifecycle] %s notification failed: %v", kind, err)
		}
	}
}

func (u *Lifecycle) invalidatePublicListing(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if _, err := u.cache.Incr(ctx, publicListingVersionKey); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Lifecycle] listing cache bump failed: %v", err)
		}
	}
}

// validateSubmission enforces the required-field contract. Fields are checked
// in the order the submission form presents them so the first offender is the
// one reported.
func validateSubmission(data job.SubmissionData) error {
	checks := []struct {
		field string
		empty bool
	}{
		{"companyName", strings.TrimSpace(data.CompanyName) == ""},
		{"companyContact", strings.TrimSpace(data.CompanyContact) == ""},
		{"companyDescription", strings.TrimSpace(data.CompanyDescription) == ""},
		{"jobTitle", strings.TrimSpace(data.JobTitle) == ""},
		{"department", data.Department == ""},
		{"locationType", data.LocationType == ""},
		{"jobType", data.JobType == ""},
		{"jobDescription", strings.TrimSpace(data.JobDescription) == ""},
	}
	for _, c := range checks {
		if c.empty {
			return &ValidationError{Field: c.field}
		}
	}

	if !data.Department.Valid() {
		return &ValidationError{Field: "department"}
	}
	if !data.LocationType.Valid() {
		return &ValidationError{Field: "locationType"}
	}
	if !data.JobType.Valid() {
		return &ValidationError{Field: "jobType"}
	}
	return nil
}
