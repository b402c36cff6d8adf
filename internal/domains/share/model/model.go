package model

import "time"

const (
	Collection = "shares"
	EntityName = "share"
)

// Share is an immutable snapshot of a todo at the moment it was shared.
// Later edits to the todo do not propagate here.
type Share struct {
	ID          string     `json:"id"`
	TodoID      string     `json:"todo_id"`
	UserID      string     `json:"user_id"`
	SharedBy    string     `json:"shared_by"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	SharedAt    time.Time  `json:"shared_at"`
}
