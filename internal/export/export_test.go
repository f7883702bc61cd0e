package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/jimezsa/oppcli/internal/catalog"
	"github.com/jimezsa/oppcli/internal/models"
	"github.com/jimezsa/oppcli/internal/view"
)

var now = time.Date(2025, time.August, 27, 12, 0, 0, 0, time.UTC)

func jobView() view.View {
	return view.View{
		Tab: catalog.TabJobs,
		Jobs: []models.Job{
			{
				ID:         "job-001",
				Company:    "GitHub",
				Role:       "Frontend Engineer",
				Location:   "Remote",
				Type:       models.TypeFullTime,
				Experience: models.ExperienceFresher,
				CTC:        "₹12–18 LPA",
				PostedAt:   now.Add(-3 * 24 * time.Hour),
				ApplyURL:   "https://example.com/apply",
				Tags:       []string{"React", "TypeScript"},
				Featured:   true,
			},
		},
	}
}

func TestWriteCSVJobs(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, jobView(), FormatCSV, WriteOptions{Now: now}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("row count = %d, want header + 1", len(rows))
	}
	if rows[0][0] != "id" {
		t.Fatalf("header = %v", rows[0])
	}
	row := rows[1]
	if row[0] != "job-001" || row[6] != "₹12–18 LPA" {
		t.Fatalf("row = %v", row)
	}
	if row[7] != "Posted 3 days ago" {
		t.Fatalf("posted label = %q, want %q", row[7], "Posted 3 days ago")
	}
	if row[9] != "React|TypeScript" {
		t.Fatalf("tags = %q", row[9])
	}
}

func TestWriteJSONOmitsAbsentDeadline(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, jobView(), FormatJSON, WriteOptions{Now: now}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if strings.Contains(buf.String(), "deadline") {
		t.Fatalf("json carries a deadline for a job without one:\n%s", buf.String())
	}

	v := jobView()
	deadline := now.Add(5 * 24 * time.Hour)
	v.Jobs[0].Deadline = &deadline
	buf.Reset()
	if err := Write(&buf, v, FormatJSON, WriteOptions{Now: now}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"deadline": "2025-09-01T12:00:00Z"`) {
		t.Fatalf("json missing deadline:\n%s", buf.String())
	}
}

func TestWriteJSONEmptyViewIsEmptyArray(t *testing.T) {
	var buf strings.Builder
	v := view.View{Tab: catalog.TabJobs}
	if err := Write(&buf, v, FormatJSON, WriteOptions{Now: now}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("json = %q, want []", buf.String())
	}
}

func TestWriteTableOffersShowsCountdownAndDeal(t *testing.T) {
	v := view.View{
		Tab: catalog.TabOffers,
		Offers: []models.Offer{
			{
				ID:              "off-001",
				Provider:        "Coursera",
				Course:          "Certificates Bundle",
				OriginalPrice:   "₹3,999/month",
				DiscountedPrice: "₹999/month",
				ExpiresAt:       now.Add(90 * time.Minute),
				URL:             "https://example.com",
			},
			{
				ID:        "off-002",
				Provider:  "Udemy",
				Course:    "Bootcamp",
				IsFree:    true,
				ExpiresAt: now.Add(-time.Hour),
			},
		},
	}

	var buf strings.Builder
	if err := Write(&buf, v, FormatTable, WriteOptions{Now: now}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "75% OFF") {
		t.Fatalf("output missing discount badge:\n%s", out)
	}
	if !strings.Contains(out, "1h 30m") {
		t.Fatalf("output missing countdown:\n%s", out)
	}
	if !strings.Contains(out, "FREE") {
		t.Fatalf("output missing FREE deal:\n%s", out)
	}
	if !strings.Contains(out, "Expired") {
		t.Fatalf("output missing Expired label:\n%s", out)
	}
}

func TestWriteMarkdownEmptyView(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, view.View{Tab: catalog.TabResources}, FormatMarkdown, WriteOptions{Now: now}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No results." {
		t.Fatalf("markdown = %q, want no-results line", buf.String())
	}
}

func TestWriteMarkdownJobIncludesDeadline(t *testing.T) {
	v := jobView()
	deadline := now.Add(5 * 24 * time.Hour)
	v.Jobs[0].Deadline = &deadline

	var buf strings.Builder
	if err := Write(&buf, v, FormatMarkdown, WriteOptions{Now: now}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Apply by Sep 1 - Closing Soon!") {
		t.Fatalf("markdown missing deadline warning:\n%s", out)
	}
	if !strings.Contains(out, "Featured") {
		t.Fatalf("markdown missing featured marker:\n%s", out)
	}
}

func TestDealText(t *testing.T) {
	cases := []struct {
		name  string
		offer models.Offer
		want  string
	}{
		{"free wins", models.Offer{IsFree: true, OriginalPrice: "₹999"}, "FREE"},
		{"discount", models.Offer{OriginalPrice: "₹200", DiscountedPrice: "₹150"}, "25% OFF"},
		{"no discount derivable", models.Offer{OriginalPrice: "call us", DiscountedPrice: "₹999"}, "₹999"},
		{"original only", models.Offer{OriginalPrice: "₹1,999/month"}, "₹1,999/month"},
		{"nothing", models.Offer{}, "-"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dealText(tc.offer); got != tc.want {
				t.Fatalf("dealText() = %q, want %q", got, tc.want)
			}
		})
	}
}
