package catalog

import (
	"testing"

	"github.com/jimezsa/oppcli/internal/models"
)

func TestTabCounts(t *testing.T) {
	tabs := Tabs(7)
	if len(tabs) != 5 {
		t.Fatalf("len(Tabs()) = %d, want 5", len(tabs))
	}

	byID := map[Tab]TabInfo{}
	for _, tab := range tabs {
		byID[tab.ID] = tab
	}

	fullTime, internships := 0, 0
	for _, job := range Jobs {
		switch job.Type {
		case models.TypeFullTime:
			fullTime++
		case models.TypeInternship:
			internships++
		}
	}

	if got := byID[TabJobs].Count; got != fullTime {
		t.Fatalf("jobs count = %d, want %d", got, fullTime)
	}
	if got := byID[TabInternships].Count; got != internships {
		t.Fatalf("internships count = %d, want %d", got, internships)
	}
	if got := byID[TabResources].Count; got != len(Resources) {
		t.Fatalf("resources count = %d, want %d", got, len(Resources))
	}
	if got := byID[TabOffers].Count; got != len(Offers) {
		t.Fatalf("offers count = %d, want %d", got, len(Offers))
	}
	if got := byID[TabSaved].Count; got != 7 {
		t.Fatalf("saved count = %d, want caller-provided 7", got)
	}
}

func TestIDsAreUnique(t *testing.T) {
	seen := map[string]struct{}{}
	check := func(id string) {
		if id == "" {
			t.Fatalf("empty record id")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate record id %q", id)
		}
		seen[id] = struct{}{}
	}
	for _, job := range Jobs {
		check(job.ID)
	}
	for _, r := range Resources {
		check(r.ID)
	}
	for _, o := range Offers {
		check(o.ID)
	}
}

func TestJobsCarryExactlyOneCompensation(t *testing.T) {
	for _, job := range Jobs {
		if job.Compensation() == "" {
			t.Fatalf("job %s has no compensation value", job.ID)
		}
	}
}

func TestParseTab(t *testing.T) {
	cases := []struct {
		in     string
		want   Tab
		wantOK bool
	}{
		{"jobs", TabJobs, true},
		{" Saved ", TabSaved, true},
		{"OFFERS", TabOffers, true},
		{"bogus", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseTab(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("ParseTab(%q) = %q, %v, want %q, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}
