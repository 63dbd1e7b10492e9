package domain

import (
	"strings"
	"time"
)

// Status enumerates the two task lifecycle states. Transitions are expected
// to go Pending -> Completed, but the store does not enforce monotonicity.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// ParseStatus returns the canonical status for a raw value, or false when the
// value is not one of the known states.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusPending, StatusCompleted:
		return Status(raw), true
	}
	return "", false
}

// Priority enumerates task priority levels.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ParsePriority returns the canonical priority for a raw value, or false when
// the value is not one of the known levels.
func ParsePriority(raw string) (Priority, bool) {
	switch Priority(raw) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(raw), true
	}
	return "", false
}

// Bucket maps a stored priority value onto its statistics bucket key,
// matching case-insensitively. Unknown values map to an empty bucket.
func (p Priority) Bucket() string {
	switch strings.ToLower(string(p)) {
	case "low":
		return "low"
	case "medium":
		return "medium"
	case "high":
		return "high"
	}
	return ""
}

// Task represents a user-owned activity item.
type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    Priority  `json:"priority"`
	DueDate     time.Time `json:"due_date"`
	CategoryID  string    `json:"category_id,omitempty"`
	Labels      []string  `json:"labels,omitempty"`
	Status      Status    `json:"status"`
	Position    int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == StatusCompleted
}

// IsOverdue reports whether the task is pending with a due date strictly
// before the reference instant.
func (t *Task) IsOverdue(reference time.Time) bool {
	return t != nil && t.Status == StatusPending && t.DueDate.Before(reference)
}

// CategoryRef is the category projection embedded in enriched task listings.
type CategoryRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// LabelRef is the (id, name) label projection embedded in enriched listings.
type LabelRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TaskView is the enriched listing row: a task joined with its category
// (nil when unset or deleted) and its resolved labels (never nil).
type TaskView struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Priority    Priority     `json:"priority"`
	DueDate     time.Time    `json:"due_date"`
	Status      Status       `json:"status"`
	Position    int          `json:"order"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Category    *CategoryRef `json:"category"`
	Labels      []LabelRef   `json:"labels"`
}
