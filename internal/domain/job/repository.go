package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Insert(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	ListByStatus(ctx context.Context, status Status) ([]Job, error)
	ListAll(ctx context.Context) ([]Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
