package catalog

import (
	"time"

	"github.com/jimezsa/oppcli/internal/models"
)

// UpdatedAt is the date of the last catalog refresh, shown in listing
// summaries.
var UpdatedAt = time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC)

// Jobs holds every job and internship listing, in publication order.
var Jobs = []models.Job{
	{
		ID:         "job-001",
		Company:    "GitHub",
		Logo:       "🐙",
		Role:       "Frontend Engineer (New Grad)",
		Location:   "Remote",
		Type:       models.TypeFullTime,
		Experience: models.ExperienceFresher,
		CTC:        "₹12–18 LPA",
		PostedAt:   time.Date(2025, time.August, 18, 0, 0, 0, 0, time.UTC),
		ApplyURL:   "https://github.com/careers",
		Tags:       []string{"JavaScript", "React", "TypeScript"},
		Deadline:   timePtr(time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC)),
		Featured:   true,
	},
	{
		ID:         "job-002",
		Company:    "Google",
		Logo:       "🔍",
		Role:       "Software Engineer Intern",
		Location:   "Bengaluru",
		Type:       models.TypeInternship,
		Experience: models.ExperienceFresher,
		Stipend:    "₹80,000/month",
		PostedAt:   time.Date(2025, time.August, 19, 0, 0, 0, 0, time.UTC),
		ApplyURL:   "https://careers.google.com",
		Tags:       []string{"C++", "Algorithms", "Data Structures"},
		Deadline:   timePtr(time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC)),
	},
	{
		ID:         "job-003",
		Company:    "Microsoft",
		Logo:       "💻",
		Role:       "Full Stack Developer",
		Location:   "Hyderabad",
		Type:       models.TypeFullTime,
		Experience: models.ExperienceJunior,
		CTC:        "₹15–22 LPA",
		PostedAt:   time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC),
		ApplyURL:   "https://careers.microsoft.com",
		Tags:       []string{"Node.js", "Azure", "React"},
		Deadline:   timePtr(time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)),
	},
	{
		ID:         "job-004",
		Company:    "Amazon",
		Logo:       "📦",
		Role:       "SDE Intern",
		Location:   "Remote",
		Type:       models.TypeInternship,
		Experience: models.ExperienceFresher,
		Stipend:    "₹75,000/month",
		PostedAt:   time.Date(2025, time.August, 17, 0, 0, 0, 0, time.UTC),
		ApplyURL:   "https://amazon.jobs",
		Tags:       []string{"Java", "AWS", "System Design"},
		Deadline:   timePtr(time.Date(2025, time.August, 30, 0, 0, 0, 0, time.UTC)),
	},
}

// Resources holds every learning resource listing.
var Resources = []models.Resource{
	{
		ID:          "res-001",
		Title:       "MIT OpenCourseWare – 6.006 Introduction to Algorithms",
		Type:        models.ResourceCourse,
		Level:       models.LevelIntermediate,
		URL:         "https://ocw.mit.edu/6-006",
		Description: "Comprehensive algorithms course with problem sets, exams, and video lectures covering fundamental CS algorithms.",
		Provider:    "MIT",
		Featured:    true,
	},
	{
		ID:          "res-002",
		Title:       "LeetCode Patterns & Interview Prep",
		Type:        models.ResourceRoadmap,
		Level:       models.LevelAll,
		URL:         "https://leetcode.com",
		Description: "Curated collection of coding patterns for technical interviews with 150+ practice problems organized by difficulty.",
	},
	{
		ID:          "res-003",
		Title:       "System Design Interview Cheat Sheet",
		Type:        models.ResourceCheatSheet,
		Level:       models.LevelIntermediate,
		URL:         "https://github.com/donnemartin/system-design-primer",
		Description: "Complete guide to system design concepts including scalability, databases, caching, and real-world examples.",
	},
	{
		ID:          "res-004",
		Title:       "Full Stack Web Development Bootcamp",
		Type:        models.ResourcePlaylist,
		Level:       models.LevelBeginner,
		URL:         "https://freecodecamp.org",
		Description: "100+ hours of content covering HTML, CSS, JavaScript, React, Node.js, databases, and deployment.",
		Provider:    "FreeCodeCamp",
	},
	{
		ID:          "res-005",
		Title:       "Developer Tools & Extensions Pack",
		Type:        models.ResourceTools,
		Level:       models.LevelAll,
		URL:         "https://marketplace.visualstudio.com",
		Description: "Essential VS Code extensions, browser dev tools, and productivity apps for modern web development.",
	},
}

// Offers holds every promotional offer listing.
var Offers = []models.Offer{
	{
		ID:              "off-001",
		Provider:        "Coursera",
		Logo:            "🎓",
		Course:          "Google Career Certificates Bundle",
		OriginalPrice:   "₹3,999/month",
		DiscountedPrice: "₹999/month",
		ExpiresAt:       time.Date(2025, time.August, 31, 23, 59, 59, 0, time.UTC),
		URL:             "https://coursera.org",
		Featured:        true,
	},
	{
		ID:            "off-002",
		Provider:      "Udemy",
		Logo:          "📚",
		Course:        "Complete Web Developer Bootcamp",
		OriginalPrice: "₹6,999",
		IsFree:        true,
		ExpiresAt:     time.Date(2025, time.August, 28, 23, 59, 59, 0, time.UTC),
		URL:           "https://udemy.com",
	},
	{
		ID:            "off-003",
		Provider:      "Pluralsight",
		Logo:          "🔧",
		Course:        "Premium Plan (3 Months Free)",
		OriginalPrice: "₹1,999/month",
		IsFree:        true,
		ExpiresAt:     time.Date(2025, time.September, 15, 23, 59, 59, 0, time.UTC),
		URL:           "https://pluralsight.com",
	},
}

func timePtr(t time.Time) *time.Time {
	return &t
}
