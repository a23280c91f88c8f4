package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

func approvedJob(title, company, createdOffset string) job.Job {
	d, _ := time.ParseDuration(createdOffset)
	now := time.Now().UTC().Add(d)
	return job.Job{
		ID:                 uuid.New(),
		CreatedAt:          now,
		UpdatedAt:          now,
		Status:             job.StatusApproved,
		CompanyName:        company,
		CompanyContact:     "jobs@" + company + ".io",
		CompanyDescription: "company description",
		JobTitle:           title,
		Department:         job.DepartmentBackend,
		LocationType:       job.LocationRemote,
		JobType:            job.TypeFullTime,
		JobDescription:     "job description",
	}
}

func TestListPublic_OnlyApprovedRecords(t *testing.T) {
	pending := pendingJob(time.Now().UTC())
	rejected := pendingJob(time.Now().UTC())
	rejected.Status = job.StatusRejected
	live := approvedJob("Backend Engineer", "acme", "-1h")

	repo := newMockJobRepo(pending, rejected, live)
	uc := NewListingUsecase(repo, nil, nil, 0)

	out, err := uc.ListPublic(context.Background(), "", job.Filter{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	for _, j := range out {
		if j.Status != job.StatusApproved {
			t.Fatalf("public listing leaked status %s", j.Status)
		}
	}
}

func TestListPublic_FiltersAreANDCombined(t *testing.T) {
	a := approvedJob("Backend Engineer", "acme", "-1h")
	a.Department = job.DepartmentBackend
	a.JobType = job.TypeFullTime

	b := approvedJob("Backend Engineer", "globex", "-2h")
	b.Department = job.DepartmentBackend
	b.JobType = job.TypeContract

	c := approvedJob("BD Manager", "initech", "-3h")
	c.Department = job.DepartmentBD
	c.JobType = job.TypeFullTime

	repo := newMockJobRepo(a, b, c)
	uc := NewListingUsecase(repo, nil, nil, 0)

	out, err := uc.ListPublic(context.Background(), "", job.Filter{
		Department: job.DepartmentBackend,
		JobType:    job.TypeFullTime,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0].ID != a.ID {
		t.Fatalf("expected only the full-time backend record, got %d records", len(out))
	}
}

func TestListPublic_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	match := approvedJob("Senior Frontend Developer", "acme", "-1h")
	miss := approvedJob("Backend Engineer", "globex", "-2h")

	repo := newMockJobRepo(match, miss)
	uc := NewListingUsecase(repo, nil, nil, 0)

	out, err := uc.ListPublic(context.Background(), "frontend", job.Filter{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0].ID != match.ID {
		t.Fatalf("expected title substring match, got %d records", len(out))
	}
}

func TestListPublic_SearchSpansCompanyAndDescriptions(t *testing.T) {
	j := approvedJob("Backend Engineer", "acme", "-1h")
	j.CompanyDescription = "A leading blockchain consultancy."

	repo := newMockJobRepo(j)
	uc := NewListingUsecase(repo, nil, nil, 0)

	for _, query := range []string{"ACME", "Blockchain", "backend engineer"} {
		out, err := uc.ListPublic(context.Background(), query, job.Filter{})
		if err != nil {
			t.Fatalf("query %q: unexpected err: %v", query, err)
		}
		if len(out) != 1 {
			t.Fatalf("query %q: expected a match", query)
		}
	}

	out, err := uc.ListPublic(context.Background(), "haskell", job.Filter{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no match for unrelated query")
	}
}

func TestListAdmin_ReviewOrdering(t *testing.T) {
	t1 := time.Now().UTC().Add(-3 * time.Hour)
	t2 := time.Now().UTC().Add(-2 * time.Hour)
	t3 := time.Now().UTC().Add(-1 * time.Hour)

	a := pendingJob(t1)
	b := pendingJob(t2)
	b.Status = job.StatusApproved
	c := pendingJob(t3)

	repo := newMockJobRepo(a, b, c)
	uc := NewListingUsecase(repo, nil, nil, 0)

	out, err := uc.ListAdmin(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 records, got %d", len(out))
	}

	want := []uuid.UUID{c.ID, a.ID, b.ID}
	for i, id := range want {
		if out[i].ID != id {
			t.Fatalf("position %d: wrong record (pending-newest-first ordering violated)", i)
		}
	}
}

func TestListAdmin_StatusGroupOrder(t *testing.T) {
	rejected := pendingJob(time.Now().UTC().Add(-1 * time.Hour))
	rejected.Status = job.StatusRejected
	approved := pendingJob(time.Now().UTC().Add(-2 * time.Hour))
	approved.Status = job.StatusApproved
	pending := pendingJob(time.Now().UTC().Add(-3 * time.Hour))

	repo := newMockJobRepo(rejected, approved, pending)
	uc := NewListingUsecase(repo, nil, nil, 0)

	out, err := uc.ListAdmin(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	wantStatuses := []job.Status{job.StatusPending, job.StatusApproved, job.StatusRejected}
	for i, s := range wantStatuses {
		if out[i].Status != s {
			t.Fatalf("position %d: expected %s, got %s", i, s, out[i].Status)
		}
	}
}

func TestGet_NotFound(t *testing.T) {
	uc := NewListingUsecase(newMockJobRepo(), nil, nil, 0)

	_, err := uc.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListPublic_StoreFailure(t *testing.T) {
	repo := newMockJobRepo()
	repo.listErr = errors.New("connection refused")
	uc := NewListingUsecase(repo, nil, nil, 0)

	_, err := uc.ListPublic(context.Background(), "", job.Filter{})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

type mapCache struct {
	entries map[string][]byte
	ints    map[string]int64
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string][]byte{}, ints: map[string]int64{}}
}

func (m *mapCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mapCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = b
	return nil
}

func (m *mapCache) GetInt64(_ context.Context, key string) (int64, bool, error) {
	n, ok := m.ints[key]
	return n, ok, nil
}

func (m *mapCache) Incr(_ context.Context, key string) (int64, error) {
	m.ints[key]++
	return m.ints[key], nil
}

func TestListPublic_CacheInvalidatedByLifecycleMutation(t *testing.T) {
	j := pendingJob(time.Now().UTC().Add(-time.Hour))
	repo := newMockJobRepo(j)
	cache := newMapCache()

	listing := NewListingUsecase(repo, cache, nil, time.Minute)
	lifecycle := NewLifecycleUsecase(repo, &mockNotifier{}, nil, cache, nil, true)

	out, err := listing.ListPublic(context.Background(), "", job.Filter{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty public board, got %d", len(out))
	}

	if _, err := lifecycle.ChangeStatus(context.Background(), j.ID, job.StatusApproved); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	out, err = listing.ListPublic(context.Background(), "", job.Filter{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected approval to be visible despite caching, got %d records", len(out))
	}
}
