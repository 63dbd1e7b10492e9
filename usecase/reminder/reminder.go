package reminder

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

type UseCase struct {
	reminders repository.ReminderRepository
	tasks     repository.TaskRepository
	logger    *zap.Logger
	clock     func() time.Time
}

func New(reminders repository.ReminderRepository, tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		reminders: reminders,
		tasks:     tasks,
		logger:    logger,
		clock:     time.Now,
	}
}

// HasActiveReminder reports whether an active reminder already exists for
// the (user, task) pair. Pure read.
func (uc *UseCase) HasActiveReminder(ctx context.Context, userID, taskID string) (bool, error) {
	return uc.reminders.ExistsActive(ctx, userID, taskID)
}

// SetReminder creates a reminder for a task the user owns. The at-most-one-
// active-reminder invariant is checked here, not enforced by the store.
func (uc *UseCase) SetReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	if reminder == nil || reminder.TaskID == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "task id and reminder time are required")
	}
	if reminder.RemindAt.IsZero() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "task id and reminder time are required")
	}
	if !reminder.RemindAt.After(uc.clock()) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "reminder time must be in the future")
	}

	task, err := uc.tasks.GetByID(ctx, reminder.TaskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != reminder.UserID {
		return nil, domain.ErrTaskNotFound
	}

	exists, err := uc.reminders.ExistsActive(ctx, reminder.UserID, reminder.TaskID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrReminderExists
	}

	if reminder.Type == "" {
		reminder.Type = domain.ReminderNotification
	}
	if reminder.Repeat == "" {
		reminder.Repeat = domain.RepeatNone
	}
	reminder.IsActive = true

	return uc.reminders.Create(ctx, reminder)
}

// GetReminder returns the reminder joined with its task, after an ownership
// check.
func (uc *UseCase) GetReminder(ctx context.Context, id, userID string) (*domain.ReminderView, error) {
	view, err := uc.reminders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return view, nil
}

// UpdateParams carries the fields an update may change; nil fields keep the
// stored value. Deactivating a reminder frees the (user, task) pair for a
// new active one.
type UpdateParams struct {
	RemindAt *time.Time
	Type     *domain.ReminderType
	Repeat   *domain.RepeatInterval
	IsActive *bool
}

// UpdateReminder modifies an existing reminder. A missing reminder is a
// distinct not-found failure; a reminder owned by another user is rejected.
func (uc *UseCase) UpdateReminder(ctx context.Context, id, userID string, params UpdateParams) (*domain.Reminder, error) {
	if id == "" {
		return nil, domain.ErrInvalidPayload
	}

	existing, err := uc.reminders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, domain.ErrForbidden
	}

	updated := existing.Reminder
	if params.RemindAt != nil {
		if !params.RemindAt.After(uc.clock()) {
			return nil, domain.NewError(domain.ErrCodeInvalid, "reminder time must be in the future")
		}
		updated.RemindAt = *params.RemindAt
	}
	if params.Type != nil {
		updated.Type = *params.Type
	}
	if params.Repeat != nil {
		updated.Repeat = *params.Repeat
	}
	if params.IsActive != nil {
		updated.IsActive = *params.IsActive
	}

	if err := uc.reminders.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (uc *UseCase) DeleteReminder(ctx context.Context, id, userID string) error {
	return uc.reminders.Delete(ctx, id, userID)
}
