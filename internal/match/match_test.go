package match

import (
	"strings"
	"testing"

	"github.com/jimezsa/oppcli/internal/models"
)

func sampleJob() models.Job {
	return models.Job{
		ID:         "job-100",
		Company:    "Acme",
		Role:       "Backend Engineer",
		Location:   "Remote (India)",
		Type:       models.TypeFullTime,
		Experience: models.ExperienceJunior,
		Tags:       []string{"Go", "PostgreSQL"},
	}
}

func TestJobEmptyCriteriaMatchesEverything(t *testing.T) {
	jobs := []models.Job{
		sampleJob(),
		{ID: "job-101", Role: "Intern", Company: "Beta", Location: "Pune", Type: models.TypeInternship},
		{},
	}
	for _, job := range jobs {
		if !Job(models.Criteria{}, job) {
			t.Fatalf("Job(empty, %q) = false, want true", job.ID)
		}
	}
}

func TestJobSearchMatchesRoleCompanyAndTags(t *testing.T) {
	job := sampleJob()

	cases := []struct {
		name   string
		search string
		want   bool
	}{
		{"role substring", "backend", true},
		{"company substring", "acm", true},
		{"tag substring", "postgres", true},
		{"case-insensitive", "ENGINEER", true},
		{"no hit", "designer", false},
		{"verbatim, no trimming", " backend", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Job(models.Criteria{Search: tc.search}, job)
			if got != tc.want {
				t.Fatalf("Job(search=%q) = %v, want %v", tc.search, got, tc.want)
			}
		})
	}
}

func TestJobFacets(t *testing.T) {
	job := sampleJob()

	if !Job(models.Criteria{Location: "india"}, job) {
		t.Fatalf("location substring should match")
	}
	if Job(models.Criteria{Location: "berlin"}, job) {
		t.Fatalf("location mismatch should not match")
	}
	if !Job(models.Criteria{Experience: models.ExperienceJunior}, job) {
		t.Fatalf("exact experience should match")
	}
	if Job(models.Criteria{Experience: models.ExperienceSenior}, job) {
		t.Fatalf("experience is exact equality, not substring")
	}
	if !Job(models.Criteria{Type: models.TypeFullTime}, job) {
		t.Fatalf("exact type should match")
	}
	if Job(models.Criteria{Type: models.TypeContract}, job) {
		t.Fatalf("type mismatch should not match")
	}
}

func TestJobRemoteMirrorsLocation(t *testing.T) {
	jobs := []models.Job{
		sampleJob(),
		{ID: "onsite", Location: "Hyderabad"},
		{ID: "caps", Location: "REMOTE"},
	}
	for _, job := range jobs {
		want := strings.Contains(strings.ToLower(job.Location), "remote")
		got := Job(models.Criteria{Remote: true}, job)
		if got != want {
			t.Fatalf("Job(remote, %q) = %v, want %v", job.Location, got, want)
		}
	}
}

func TestJobCriteriaAreConjunctive(t *testing.T) {
	job := sampleJob()
	criteria := models.Criteria{Search: "backend", Location: "india", Remote: true}
	if !Job(criteria, job) {
		t.Fatalf("all criteria satisfied, want match")
	}

	criteria.Location = "berlin"
	if Job(criteria, job) {
		t.Fatalf("one failing criterion must reject the job")
	}
}

func TestResource(t *testing.T) {
	r := models.Resource{
		Title:       "System Design Interview Cheat Sheet",
		Type:        models.ResourceCheatSheet,
		Description: "Scalability, databases, caching.",
	}

	if !Resource(models.Criteria{}, r) {
		t.Fatalf("empty search must match")
	}
	if !Resource(models.Criteria{Search: "caching"}, r) {
		t.Fatalf("description substring should match")
	}
	if !Resource(models.Criteria{Search: "cheat-sheet"}, r) {
		t.Fatalf("resource kind should match")
	}
	if Resource(models.Criteria{Search: "playlist"}, r) {
		t.Fatalf("non-matching search should reject")
	}

	// Facet fields carry no meaning for resources.
	if !Resource(models.Criteria{Location: "berlin", Remote: true, Type: "nope"}, r) {
		t.Fatalf("facet criteria must be ignored for resources")
	}
}

func TestOffer(t *testing.T) {
	o := models.Offer{Provider: "Coursera", Course: "Career Certificates Bundle"}

	if !Offer(models.Criteria{}, o) {
		t.Fatalf("empty search must match")
	}
	if !Offer(models.Criteria{Search: "coursera"}, o) {
		t.Fatalf("provider substring should match")
	}
	if !Offer(models.Criteria{Search: "bundle"}, o) {
		t.Fatalf("course substring should match")
	}
	if Offer(models.Criteria{Search: "udemy"}, o) {
		t.Fatalf("non-matching search should reject")
	}
	if !Offer(models.Criteria{Experience: "5+", Remote: true}, o) {
		t.Fatalf("facet criteria must be ignored for offers")
	}
}
