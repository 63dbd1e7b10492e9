package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
	"github.com/taskhive/backend/usecase"
)

type fakeTaskRepo struct {
	byID       map[string]*domain.Task
	listFilter repository.TaskFilter
	listResult []domain.TaskView

	createErr error
	updateErr error

	reorderUser    string
	reorderUpdates []repository.PositionUpdate
	reorderCalled  bool
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id string) (*domain.Task, error) {
	if task, ok := f.byID[id]; ok {
		return task, nil
	}
	return nil, domain.ErrTaskNotFound
}

func (f *fakeTaskRepo) List(_ context.Context, filter repository.TaskFilter) ([]domain.TaskView, error) {
	f.listFilter = filter
	return f.listResult, nil
}

func (f *fakeTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return task, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, _ *domain.Task) error {
	return f.updateErr
}

func (f *fakeTaskRepo) SetStatus(_ context.Context, id, userID string, status domain.Status) (*domain.Task, error) {
	task, ok := f.byID[id]
	if !ok || task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	task.Status = status
	return task, nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id, userID string) error {
	task, ok := f.byID[id]
	if !ok || task.UserID != userID {
		return domain.ErrTaskNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeTaskRepo) Reorder(_ context.Context, userID string, updates []repository.PositionUpdate) error {
	f.reorderCalled = true
	f.reorderUser = userID
	f.reorderUpdates = updates
	return nil
}

type fakeBuffer struct {
	operations []string
	err        error
}

func (f *fakeBuffer) BufferProfile(context.Context, string, *domain.User) error {
	return f.err
}

func (f *fakeBuffer) BufferTask(_ context.Context, operation string, _ *domain.Task) error {
	if f.err != nil {
		return f.err
	}
	f.operations = append(f.operations, operation)
	return nil
}

var _ usecase.OperationBuffer = (*fakeBuffer)(nil)

func validTask() *domain.Task {
	return &domain.Task{
		UserID:   "user-1",
		Title:    "write report",
		Priority: domain.PriorityHigh,
		DueDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateTaskValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Task)
	}{
		{name: "short title", mutate: func(task *domain.Task) { task.Title = "ab" }},
		{name: "whitespace title", mutate: func(task *domain.Task) { task.Title = "   " }},
		{name: "unknown priority", mutate: func(task *domain.Task) { task.Priority = "Urgent" }},
		{name: "missing due date", mutate: func(task *domain.Task) { task.DueDate = time.Time{} }},
		{name: "negative order", mutate: func(task *domain.Task) { task.Position = -1 }},
		{name: "unknown status", mutate: func(task *domain.Task) { task.Status = "Paused" }},
		{name: "malformed category", mutate: func(task *domain.Task) { task.CategoryID = "nope" }},
		{name: "malformed label", mutate: func(task *domain.Task) { task.Labels = []string{"nope"} }},
	}

	uc := New(&fakeTaskRepo{}, nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := validTask()
			tt.mutate(task)
			_, err := uc.CreateTask(context.Background(), task)
			require.Error(t, err)
			assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
		})
	}
}

func TestCreateTaskDefaultsStatus(t *testing.T) {
	uc := New(&fakeTaskRepo{}, nil, nil)

	created, err := uc.CreateTask(context.Background(), validTask())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)
}

func TestCreateTaskBuffersOnStoreFailure(t *testing.T) {
	repo := &fakeTaskRepo{createErr: errors.New("connection refused")}
	buf := &fakeBuffer{}
	uc := New(repo, buf, nil)

	task := validTask()
	created, err := uc.CreateTask(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, task, created)
	assert.Equal(t, []string{usecase.OperationCreate}, buf.operations)
}

func TestCreateTaskFailsWhenBufferUnavailable(t *testing.T) {
	repo := &fakeTaskRepo{createErr: errors.New("connection refused")}
	uc := New(repo, &fakeBuffer{err: errors.New("disk full")}, nil)

	_, err := uc.CreateTask(context.Background(), validTask())
	require.Error(t, err)
}

func TestUpdateTaskNotFoundIsNotBuffered(t *testing.T) {
	repo := &fakeTaskRepo{updateErr: domain.ErrTaskNotFound}
	buf := &fakeBuffer{}
	uc := New(repo, buf, nil)

	_, err := uc.UpdateTask(context.Background(), validTask())
	assert.Equal(t, domain.ErrTaskNotFound, err)
	assert.Empty(t, buf.operations)
}

func TestGetTaskOwnership(t *testing.T) {
	repo := &fakeTaskRepo{byID: map[string]*domain.Task{
		"t1": {ID: "t1", UserID: "user-1"},
	}}
	uc := New(repo, nil, nil)

	task, err := uc.GetTask(context.Background(), "t1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "t1", task.ID)

	// Another owner's task reads as missing, not forbidden.
	_, err = uc.GetTask(context.Background(), "t1", "user-2")
	assert.Equal(t, domain.ErrTaskNotFound, err)
}

func TestMarkCompleted(t *testing.T) {
	repo := &fakeTaskRepo{byID: map[string]*domain.Task{
		"t1": {ID: "t1", UserID: "user-1", Status: domain.StatusPending},
	}}
	uc := New(repo, nil, nil)

	task, err := uc.MarkCompleted(context.Background(), "t1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, task.Status)
}

func TestReorderPrunesMalformedIDs(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := New(repo, nil, nil)

	valid := "7d4df0ae-69f7-4cf3-9b2b-9cdbbb2a9f11"
	err := uc.Reorder(context.Background(), "user-1", []repository.PositionUpdate{
		{ID: "garbage", Position: 1},
		{ID: valid, Position: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", repo.reorderUser)
	assert.Equal(t, []repository.PositionUpdate{{ID: valid, Position: 2}}, repo.reorderUpdates)
}

func TestReorderAllMalformedIsNoop(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := New(repo, nil, nil)

	err := uc.Reorder(context.Background(), "user-1", []repository.PositionUpdate{
		{ID: "garbage", Position: 1},
	})
	require.NoError(t, err)
	assert.False(t, repo.reorderCalled)
}

func TestListTasksAppliesFilter(t *testing.T) {
	repo := &fakeTaskRepo{listResult: []domain.TaskView{{ID: "t1"}}}
	uc := New(repo, nil, nil)

	views, err := uc.ListTasks(context.Background(), "user-1", RawFilter{Status: "Pending"})
	require.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "user-1", repo.listFilter.UserID)
	assert.Equal(t, domain.StatusPending, repo.listFilter.Status)
}
