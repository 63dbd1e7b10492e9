package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

type reminderRepository struct {
	pool *pgxpool.Pool
}

// NewReminderRepository returns a Postgres-backed reminder repository.
func NewReminderRepository(pool *pgxpool.Pool) repository.ReminderRepository {
	return &reminderRepository{pool: pool}
}

func (r *reminderRepository) GetByID(ctx context.Context, id string) (*domain.ReminderView, error) {
	const query = `
	SELECT rm.id, rm.user_id, rm.task_id, rm.remind_at, rm.reminder_type, rm.repeat_interval,
	       rm.is_active, rm.created_at, rm.updated_at,
	       t.id, t.title, t.description, t.due_date
	FROM reminders rm
	LEFT JOIN tasks t ON t.id = rm.task_id
	WHERE rm.id::text = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var (
		view    domain.ReminderView
		taskID  *string
		title   *string
		desc    *string
		dueDate *time.Time
	)
	if err := row.Scan(
		&view.ID,
		&view.UserID,
		&view.TaskID,
		&view.RemindAt,
		&view.Type,
		&view.Repeat,
		&view.IsActive,
		&view.CreatedAt,
		&view.UpdatedAt,
		&taskID,
		&title,
		&desc,
		&dueDate,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReminderNotFound
		}
		return nil, err
	}

	if taskID != nil {
		task := domain.ReminderTask{ID: *taskID}
		if title != nil {
			task.Title = *title
		}
		if desc != nil {
			task.Description = *desc
		}
		if dueDate != nil {
			task.DueDate = *dueDate
		}
		view.Task = &task
	}
	return &view, nil
}

func (r *reminderRepository) Create(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	if reminder == nil {
		return nil, domain.ErrInvalidPayload
	}
	if reminder.ID == "" {
		reminder.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO reminders (id, user_id, task_id, remind_at, reminder_type, repeat_interval, is_active)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		reminder.ID,
		reminder.UserID,
		reminder.TaskID,
		reminder.RemindAt,
		reminder.Type,
		reminder.Repeat,
		reminder.IsActive,
	).Scan(&reminder.CreatedAt, &reminder.UpdatedAt); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (r *reminderRepository) Update(ctx context.Context, reminder *domain.Reminder) error {
	if reminder == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE reminders
	SET remind_at = $3, reminder_type = $4, repeat_interval = $5, is_active = $6, updated_at = NOW()
	WHERE id::text = $1 AND user_id::text = $2
	RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		reminder.ID,
		reminder.UserID,
		reminder.RemindAt,
		reminder.Type,
		reminder.Repeat,
		reminder.IsActive,
	).Scan(&reminder.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrReminderNotFound
		}
		return err
	}
	return nil
}

func (r *reminderRepository) Delete(ctx context.Context, id, userID string) error {
	const query = `DELETE FROM reminders WHERE id::text = $1 AND user_id::text = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}

func (r *reminderRepository) ExistsActive(ctx context.Context, userID, taskID string) (bool, error) {
	const query = `
	SELECT EXISTS (
		SELECT 1 FROM reminders
		WHERE user_id::text = $1 AND task_id::text = $2 AND is_active
	)
	`
	var exists bool
	err := r.pool.QueryRow(ctx, query, userID, taskID).Scan(&exists)
	return exists, err
}
