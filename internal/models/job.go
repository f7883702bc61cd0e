package models

import "time"

// Employment types carried by Job.Type.
const (
	TypeFullTime   = "Full-time"
	TypeInternship = "Internship"
	TypeContract   = "Contract"
)

// Experience brackets carried by Job.Experience.
const (
	ExperienceFresher = "0-1"
	ExperienceJunior  = "1-3"
	ExperienceMid     = "3-5"
	ExperienceSenior  = "5+"
)

// Job is a single opportunity listing. Internships are not a distinct
// entity: they are Jobs with Type == TypeInternship.
type Job struct {
	ID         string     `json:"id"`
	Company    string     `json:"company"`
	Logo       string     `json:"logo,omitempty"`
	Role       string     `json:"role"`
	Location   string     `json:"location"`
	Type       string     `json:"type"`
	Experience string     `json:"experience"`
	CTC        string     `json:"ctc,omitempty"`
	Stipend    string     `json:"stipend,omitempty"`
	PostedAt   time.Time  `json:"posted_at"`
	ApplyURL   string     `json:"apply_url"`
	Tags       []string   `json:"tags,omitempty"`
	Deadline   *time.Time `json:"deadline,omitempty"`
	Featured   bool       `json:"featured,omitempty"`
}

// Compensation returns the primary compensation display value,
// preferring the salary (CTC) over the stipend.
func (j Job) Compensation() string {
	if j.CTC != "" {
		return j.CTC
	}
	return j.Stipend
}

// HasDeadline reports whether the job carries an application deadline.
func (j Job) HasDeadline() bool {
	return j.Deadline != nil && !j.Deadline.IsZero()
}
