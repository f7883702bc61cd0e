package models

// Resource kinds carried by Resource.Type.
const (
	ResourceCourse     = "Course"
	ResourceRoadmap    = "Roadmap"
	ResourceCheatSheet = "Cheat-sheet"
	ResourcePlaylist   = "Playlist"
	ResourceTools      = "Tools"
)

// Difficulty levels carried by Resource.Level.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelAll          = "All levels"
)

// Resource is a learning resource listing.
type Resource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Level       string `json:"level"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Provider    string `json:"provider,omitempty"`
	Featured    bool   `json:"featured,omitempty"`
}
