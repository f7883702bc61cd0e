package catalog

import (
	"strings"

	"github.com/jimezsa/oppcli/internal/models"
)

// Tab selects which base collection a view is built from.
type Tab string

const (
	TabJobs        Tab = "jobs"
	TabInternships Tab = "internships"
	TabResources   Tab = "resources"
	TabOffers      Tab = "offers"
	TabSaved       Tab = "saved"
)

// TabInfo is a tab with its display label and listing count. The saved
// tab's count is dynamic and filled in by the caller.
type TabInfo struct {
	ID    Tab
	Label string
	Count int
}

// Tabs returns the fixed tab set in display order. savedCount is the
// current size of the saved set.
func Tabs(savedCount int) []TabInfo {
	return []TabInfo{
		{ID: TabJobs, Label: "Jobs", Count: countJobsByType(models.TypeFullTime)},
		{ID: TabInternships, Label: "Internships", Count: countJobsByType(models.TypeInternship)},
		{ID: TabResources, Label: "Resources", Count: len(Resources)},
		{ID: TabOffers, Label: "Offers", Count: len(Offers)},
		{ID: TabSaved, Label: "Saved", Count: savedCount},
	}
}

// ParseTab normalizes a tab name. ok is false for unknown values.
func ParseTab(value string) (Tab, bool) {
	switch Tab(strings.ToLower(strings.TrimSpace(value))) {
	case TabJobs:
		return TabJobs, true
	case TabInternships:
		return TabInternships, true
	case TabResources:
		return TabResources, true
	case TabOffers:
		return TabOffers, true
	case TabSaved:
		return TabSaved, true
	default:
		return "", false
	}
}

func countJobsByType(jobType string) int {
	total := 0
	for _, job := range Jobs {
		if job.Type == jobType {
			total++
		}
	}
	return total
}
