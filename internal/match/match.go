// Package match evaluates filter criteria against catalog records.
// Every predicate is a conjunction of independent sub-predicates; a
// sub-predicate whose criterion field is empty or false is vacuously
// true. Substring matches are always case-insensitive.
package match

import (
	"strings"

	"github.com/jimezsa/oppcli/internal/models"
)

// Job reports whether a job satisfies every active criterion. The
// search text matches against role, company, and tags; the remote
// constraint is satisfied by any location mentioning "remote".
func Job(c models.Criteria, job models.Job) bool {
	if c.Search != "" && !jobSearchHit(c.Search, job) {
		return false
	}
	if c.Location != "" && !containsFold(job.Location, c.Location) {
		return false
	}
	if c.Experience != "" && job.Experience != c.Experience {
		return false
	}
	if c.Type != "" && job.Type != c.Type {
		return false
	}
	if c.Remote && !containsFold(job.Location, "remote") {
		return false
	}
	return true
}

// Resource reports whether a resource satisfies the search criterion,
// matching against title, description, and resource kind. Resources
// have no location, experience, or type semantics, so the remaining
// criteria fields are ignored.
func Resource(c models.Criteria, r models.Resource) bool {
	if c.Search == "" {
		return true
	}
	return containsFold(r.Title, c.Search) ||
		containsFold(r.Description, c.Search) ||
		containsFold(r.Type, c.Search)
}

// Offer reports whether an offer satisfies the search criterion,
// matching against course name and provider. All other criteria fields
// are ignored.
func Offer(c models.Criteria, o models.Offer) bool {
	if c.Search == "" {
		return true
	}
	return containsFold(o.Course, c.Search) || containsFold(o.Provider, c.Search)
}

func jobSearchHit(search string, job models.Job) bool {
	if containsFold(job.Role, search) || containsFold(job.Company, search) {
		return true
	}
	for _, tag := range job.Tags {
		if containsFold(tag, search) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
