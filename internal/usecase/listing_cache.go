package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobboard/internal/domain/job"
)

// ListingCache is the optional read-side cache for public listings. A nil or
// unavailable cache degrades every caller to uncached reads.
type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	GetInt64(ctx context.Context, key string) (int64, bool, error)
	Incr(ctx context.Context, key string) (int64, error)
}

// publicListingVersionKey is bumped on every lifecycle mutation; listing
// cache keys embed the current version, so a bump orphans all stale entries
// and TTL reclaims them.
const publicListingVersionKey = "jobs:public:ver"

func publicListingCacheKey(version int64, search string, f job.Filter) string {
	q := strings.ToLower(strings.TrimSpace(search))
	return fmt.Sprintf("jobs:public:v%d:q=%s:dept=%s:loc=%s:type=%s",
		version, q, f.Department, f.LocationType, f.JobType)
}
