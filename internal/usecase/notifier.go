package usecase

import (
	"context"

	"jobboard/internal/domain/job"
)

// Notifier is the external messaging sink. Every call is best-effort: the
// lifecycle logs failures and never lets them change an operation outcome.
type Notifier interface {
	NotifyJobSubmitted(ctx context.Context, j job.Job) error
	NotifyJobApproved(ctx context.Context, j job.Job) error
}

// EventPublisher pushes lifecycle events to connected admin dashboards.
// Implementations must never block the caller.
type EventPublisher interface {
	PublishJobSubmitted(j job.Job)
	PublishJobStatusChanged(j job.Job, previous job.Status)
	PublishJobDeleted(id string)
}
