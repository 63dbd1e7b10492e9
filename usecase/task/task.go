package task

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
	"github.com/taskhive/backend/usecase"
)

type UseCase struct {
	tasks  repository.TaskRepository
	buffer usecase.OperationBuffer
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		buffer: buffer,
		logger: logger,
	}
}

// ListTasks builds the normalized predicate set from the raw filter and
// returns the owner's enriched listing.
func (uc *UseCase) ListTasks(ctx context.Context, userID string, raw RawFilter) ([]domain.TaskView, error) {
	return uc.tasks.List(ctx, BuildFilter(userID, raw))
}

func (uc *UseCase) GetTask(ctx context.Context, id, userID string) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (uc *UseCase) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := validateTask(task); err != nil {
		return nil, err
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationCreate, task) {
			return task, nil
		}
		return nil, err
	}
	return created, nil
}

func (uc *UseCase) UpdateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := validateTask(task); err != nil {
		return nil, err
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		if err == domain.ErrTaskNotFound {
			return nil, err
		}
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, task) {
			return task, nil
		}
		return nil, err
	}
	return task, nil
}

func (uc *UseCase) MarkCompleted(ctx context.Context, id, userID string) (*domain.Task, error) {
	return uc.tasks.SetStatus(ctx, id, userID, domain.StatusCompleted)
}

func (uc *UseCase) DeleteTask(ctx context.Context, id, userID string) error {
	if err := uc.tasks.Delete(ctx, id, userID); err != nil {
		if err == domain.ErrTaskNotFound {
			return err
		}
		task := &domain.Task{ID: id, UserID: userID}
		if uc.shouldBuffer(ctx, usecase.OperationDelete, task) {
			return nil
		}
		return err
	}
	return nil
}

// Reorder applies a batch of positional assignments. Entries whose id does
// not match the store's identifier format are dropped up front so they
// no-op exactly like assignments to missing tasks; everything else is
// handed to the store's (id, owner)-scoped batch update.
func (uc *UseCase) Reorder(ctx context.Context, userID string, updates []repository.PositionUpdate) error {
	valid := make([]repository.PositionUpdate, 0, len(updates))
	for _, u := range updates {
		if _, err := uuid.Parse(u.ID); err != nil {
			continue
		}
		valid = append(valid, u)
	}
	if len(valid) == 0 {
		return nil
	}
	return uc.tasks.Reorder(ctx, userID, valid)
}

func validateTask(task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}
	if len(strings.TrimSpace(task.Title)) < 3 {
		return domain.NewError(domain.ErrCodeInvalid, "title must be at least 3 characters")
	}
	if _, ok := domain.ParsePriority(string(task.Priority)); !ok {
		return domain.NewError(domain.ErrCodeInvalid, "priority must be Low, Medium, or High")
	}
	if task.DueDate.IsZero() {
		return domain.NewError(domain.ErrCodeInvalid, "due date is required")
	}
	if task.Position < 0 {
		return domain.NewError(domain.ErrCodeInvalid, "order must not be negative")
	}
	if task.Status == "" {
		task.Status = domain.StatusPending
	} else if _, ok := domain.ParseStatus(string(task.Status)); !ok {
		return domain.NewError(domain.ErrCodeInvalid, "status must be Pending or Completed")
	}
	if task.CategoryID != "" {
		if _, err := uuid.Parse(task.CategoryID); err != nil {
			return domain.NewError(domain.ErrCodeInvalid, "category id is not a valid identifier")
		}
	}
	for _, labelID := range task.Labels {
		if _, err := uuid.Parse(labelID); err != nil {
			return domain.NewError(domain.ErrCodeInvalid, "label id is not a valid identifier")
		}
	}
	return nil
}

func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, task *domain.Task) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferTask(ctx, operation, task); err != nil {
		uc.logger.Error("failed to buffer task operation", zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("task operation buffered", zap.String("operation", operation))
	return true
}
