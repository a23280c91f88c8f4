package usecase

import (
	"sort"
	"strings"

	"jobboard/internal/domain/job"
)

func matchesFilter(j job.Job, f job.Filter) bool {
	if f.Department != "" && j.Department != f.Department {
		return false
	}
	if f.LocationType != "" && j.LocationType != f.LocationType {
		return false
	}
	if f.JobType != "" && j.JobType != f.JobType {
		return false
	}
	return true
}

// matchesSearch performs a case-insensitive substring match against the
// searchable text fields; a record matches when the query appears in any one
// of them. An empty query matches everything.
func matchesSearch(j job.Job, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{j.JobTitle, j.CompanyName, j.CompanyDescription, j.JobDescription} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

var statusReviewOrder = map[job.Status]int{
	job.StatusPending:  0,
	job.StatusApproved: 1,
	job.StatusRejected: 2,
}

// sortForReview orders the admin view: pending submissions first, approved
// next, rejected last, newest first within each group. This ordering is part
// of the admin contract, so it is enforced here rather than left to the store.
func sortForReview(jobs []job.Job) {
	sort.SliceStable(jobs, func(i, k int) bool {
		a, b := jobs[i], jobs[k]
		if statusReviewOrder[a.Status] != statusReviewOrder[b.Status] {
			return statusReviewOrder[a.Status] < statusReviewOrder[b.Status]
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}
