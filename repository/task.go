package repository

import (
	"context"
	"time"

	"github.com/taskhive/backend/domain"
)

// TaskFilter is the normalized predicate set applied to task listings. The
// owner predicate is always present; every other field is optional and, when
// zero, leaves the corresponding dimension unfiltered.
type TaskFilter struct {
	UserID     string
	Status     domain.Status
	CategoryID string
	LabelIDs   []string
	DueFrom    *time.Time
	DueTo      *time.Time
}

// PositionUpdate assigns a new manual sort position to one task.
type PositionUpdate struct {
	ID       string `json:"id"`
	Position int    `json:"order"`
}

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns the owner's tasks matching the filter, each enriched with
	// its category (nil when absent) and resolved labels, sorted by manual
	// position then due date.
	List(ctx context.Context, filter TaskFilter) ([]domain.TaskView, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	SetStatus(ctx context.Context, id, userID string, status domain.Status) (*domain.Task, error)
	Delete(ctx context.Context, id, userID string) error
	// Reorder applies each position assignment as an independent update
	// scoped to (id, owner). Unmatched ids are no-ops; the batch carries no
	// atomicity guarantee, but any statement error fails the whole call.
	Reorder(ctx context.Context, userID string, updates []PositionUpdate) error
}
