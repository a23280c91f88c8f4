package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

type ListingUsecase interface {
	ListPublic(ctx context.Context, search string, filter job.Filter) ([]job.Job, error)
	ListAdmin(ctx context.Context) ([]job.Job, error)
	Get(ctx context.Context, id uuid.UUID) (job.Job, error)
}

// Listing builds the public (approved-only) and administrative (all-status)
// views of the board. It never performs state transitions.
type Listing struct {
	jobs   job.Repository
	cache  ListingCache
	logger *log.Logger
	ttl    time.Duration
}

func NewListingUsecase(jobs job.Repository, cache ListingCache, logger *log.Logger, cacheTTL time.Duration) *Listing {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &Listing{jobs: jobs, cache: cache, logger: logger, ttl: cacheTTL}
}

func (u *Listing) ListPublic(ctx context.Context, search string, filter job.Filter) ([]job.Job, error) {
	key := ""
	if u.cache != nil {
		ver, _, err := u.cache.GetInt64(ctx, publicListingVersionKey)
		if err == nil {
			key = publicListingCacheKey(ver, search, filter)
			var cached []job.Job
			hit, err := u.cache.GetJSON(ctx, key, &cached)
			if err == nil && hit {
				return cached, nil
			}
		}
	}

	approved, err := u.jobs.ListByStatus(ctx, job.StatusApproved)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Listing] public scan failed: %v", err)
		}
		return nil, ErrInternal
	}

	out := make([]job.Job, 0, len(approved))
	for _, j := range approved {
		if !matchesFilter(j, filter) {
			continue
		}
		if !matchesSearch(j, search) {
			continue
		}
		out = append(out, j)
	}

	if u.cache != nil && key != "" {
		_ = u.cache.SetJSON(ctx, key, out, u.ttl)
	}

	return out, nil
}

func (u *Listing) ListAdmin(ctx context.Context) ([]job.Job, error) {
	all, err := u.jobs.ListAll(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Listing] admin scan failed: %v", err)
		}
		return nil, ErrInternal
	}

	sortForReview(all)
	return all, nil
}

func (u *Listing) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}
