package repository

import (
	"context"

	"github.com/taskhive/backend/domain"
)

type ReminderRepository interface {
	// GetByID returns the reminder joined with its task; the task field is
	// nil when the referenced task no longer exists.
	GetByID(ctx context.Context, id string) (*domain.ReminderView, error)
	Create(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error)
	Update(ctx context.Context, reminder *domain.Reminder) error
	Delete(ctx context.Context, id, userID string) error
	// ExistsActive reports whether the (user, task) pair already has an
	// active reminder. Pure read.
	ExistsActive(ctx context.Context, userID, taskID string) (bool, error)
}
