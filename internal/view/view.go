// Package view builds the record sequence shown for the active tab.
package view

import (
	"github.com/jimezsa/oppcli/internal/catalog"
	"github.com/jimezsa/oppcli/internal/match"
	"github.com/jimezsa/oppcli/internal/models"
)

// SavedSet is the read side of the saved list the selector consults for
// the saved tab.
type SavedSet interface {
	Contains(id string) bool
}

// View is the selected record sequence. Exactly one of the slices is
// populated, determined by Tab; callers other than the exporter never
// need to inspect record kinds themselves.
type View struct {
	Tab       catalog.Tab
	Jobs      []models.Job
	Resources []models.Resource
	Offers    []models.Offer
}

// Len returns the number of records in the view.
func (v View) Len() int {
	return len(v.Jobs) + len(v.Resources) + len(v.Offers)
}

// Selector selects and filters records from its collections. The zero
// value is empty; Default() wires the static catalog.
type Selector struct {
	Jobs      []models.Job
	Resources []models.Resource
	Offers    []models.Offer
}

// Default returns a selector over the compiled-in catalog.
func Default() Selector {
	return Selector{
		Jobs:      catalog.Jobs,
		Resources: catalog.Resources,
		Offers:    catalog.Offers,
	}
}

// Select returns the records for tab that satisfy criteria, preserving
// collection order. The saved tab keeps jobs whose id is in saved; a
// saved id with no matching job is silently skipped. An unrecognized
// tab yields an empty view.
func (s Selector) Select(tab catalog.Tab, criteria models.Criteria, saved SavedSet) View {
	out := View{Tab: tab}
	switch tab {
	case catalog.TabJobs:
		out.Jobs = s.filterJobs(criteria, func(j models.Job) bool {
			return j.Type == models.TypeFullTime
		})
	case catalog.TabInternships:
		out.Jobs = s.filterJobs(criteria, func(j models.Job) bool {
			return j.Type == models.TypeInternship
		})
	case catalog.TabSaved:
		out.Jobs = s.filterJobs(criteria, func(j models.Job) bool {
			return saved != nil && saved.Contains(j.ID)
		})
	case catalog.TabResources:
		for _, r := range s.Resources {
			if match.Resource(criteria, r) {
				out.Resources = append(out.Resources, r)
			}
		}
	case catalog.TabOffers:
		for _, o := range s.Offers {
			if match.Offer(criteria, o) {
				out.Offers = append(out.Offers, o)
			}
		}
	}
	return out
}

// ShowFilterControls reports whether tab exposes the full facet panel.
// Resources and offers only carry the search box, matching their
// reduced predicate surface.
func ShowFilterControls(tab catalog.Tab) bool {
	switch tab {
	case catalog.TabJobs, catalog.TabInternships, catalog.TabSaved:
		return true
	default:
		return false
	}
}

func (s Selector) filterJobs(criteria models.Criteria, keep func(models.Job) bool) []models.Job {
	var out []models.Job
	for _, job := range s.Jobs {
		if keep(job) && match.Job(criteria, job) {
			out = append(out, job)
		}
	}
	return out
}
