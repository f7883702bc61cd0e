package models

// Criteria captures the active search and filter constraints. Empty
// string and false fields mean "no constraint"; values are matched
// verbatim, with no trimming or fuzzy matching.
type Criteria struct {
	Search     string
	Location   string
	Experience string
	Type       string
	Remote     bool
}

// IsZero reports whether no constraint is active.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}
