package api

import "time"

// Accomplishment represents one accomplishment row as the server stores it.
// The server echoes the canonical version back on insert; timestamps may
// differ from the client's provisional ones.
type Accomplishment struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
}

// InsertRequest represents a request to insert a new accomplishment.
// The ID is assigned client-side so that records created offline keep
// a stable identifier once they reach the server.
type InsertRequest struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
}

// UpdateRequest represents a partial update of an existing accomplishment.
// CreatedAt is optional; when set, the user re-dated the entry.
type UpdateRequest struct {
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Text      string     `json:"text"`
}

// QueryPageResponse represents one page of accomplishments for the
// authenticated user, newest first. TotalCount is the full matching
// count independent of pagination.
type QueryPageResponse struct {
	Rows       []Accomplishment `json:"rows"`
	TotalCount int              `json:"total_count"`
}
