package models

import "time"

// Category classifies an accomplishment. The set is closed: the UI renders
// a fixed chip per category, so unknown values are rejected at the edge.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryLearning Category = "learning"
	CategoryHealth   Category = "health"
)

// Categories lists all valid categories in display order.
var Categories = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryLearning,
	CategoryHealth,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Accomplishment represents one user-logged entry, mirrored locally for
// offline reads. ID is assigned client-side at creation time (UUID) and is
// stable across the offline to online transition; it is never reused.
type Accomplishment struct {
	CreatedAt time.Time `json:"created_at"` // primary ordering key, newest first
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Text      string    `json:"text"`
	Category  Category  `json:"category"`
}
