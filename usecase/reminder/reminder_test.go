package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

type fakeReminderRepo struct {
	views   map[string]*domain.ReminderView
	active  map[string]bool
	updated *domain.Reminder
}

func activeKey(userID, taskID string) string {
	return userID + "/" + taskID
}

func (f *fakeReminderRepo) GetByID(_ context.Context, id string) (*domain.ReminderView, error) {
	if view, ok := f.views[id]; ok {
		return view, nil
	}
	return nil, domain.ErrReminderNotFound
}

func (f *fakeReminderRepo) Create(_ context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	reminder.ID = "r-created"
	if f.active == nil {
		f.active = map[string]bool{}
	}
	f.active[activeKey(reminder.UserID, reminder.TaskID)] = true
	return reminder, nil
}

func (f *fakeReminderRepo) Update(_ context.Context, reminder *domain.Reminder) error {
	f.updated = reminder
	if !reminder.IsActive {
		delete(f.active, activeKey(reminder.UserID, reminder.TaskID))
	}
	return nil
}

func (f *fakeReminderRepo) Delete(_ context.Context, id, userID string) error {
	view, ok := f.views[id]
	if !ok || view.UserID != userID {
		return domain.ErrReminderNotFound
	}
	delete(f.views, id)
	return nil
}

func (f *fakeReminderRepo) ExistsActive(_ context.Context, userID, taskID string) (bool, error) {
	return f.active[activeKey(userID, taskID)], nil
}

type fakeTaskReader struct {
	tasks map[string]*domain.Task
}

func (f *fakeTaskReader) GetByID(_ context.Context, id string) (*domain.Task, error) {
	if task, ok := f.tasks[id]; ok {
		return task, nil
	}
	return nil, domain.ErrTaskNotFound
}

func (f *fakeTaskReader) List(context.Context, repository.TaskFilter) ([]domain.TaskView, error) {
	return nil, nil
}

func (f *fakeTaskReader) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	return task, nil
}

func (f *fakeTaskReader) Update(context.Context, *domain.Task) error { return nil }

func (f *fakeTaskReader) SetStatus(context.Context, string, string, domain.Status) (*domain.Task, error) {
	return nil, domain.ErrTaskNotFound
}

func (f *fakeTaskReader) Delete(context.Context, string, string) error { return nil }

func (f *fakeTaskReader) Reorder(context.Context, string, []repository.PositionUpdate) error {
	return nil
}

var testNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func newReminderUseCase(reminders *fakeReminderRepo, tasks *fakeTaskReader) *UseCase {
	if reminders.active == nil {
		reminders.active = map[string]bool{}
	}
	uc := New(reminders, tasks, nil)
	uc.clock = func() time.Time { return testNow }
	return uc
}

func ownedTask() *fakeTaskReader {
	return &fakeTaskReader{tasks: map[string]*domain.Task{
		"t1": {ID: "t1", UserID: "user-1"},
	}}
}

func TestSetReminderDefaults(t *testing.T) {
	repo := &fakeReminderRepo{}
	uc := newReminderUseCase(repo, ownedTask())

	created, err := uc.SetReminder(context.Background(), &domain.Reminder{
		UserID:   "user-1",
		TaskID:   "t1",
		RemindAt: testNow.Add(time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ReminderNotification, created.Type)
	assert.Equal(t, domain.RepeatNone, created.Repeat)
	assert.True(t, created.IsActive)
}

func TestSetReminderRequiresTaskAndTime(t *testing.T) {
	uc := newReminderUseCase(&fakeReminderRepo{}, ownedTask())

	_, err := uc.SetReminder(context.Background(), &domain.Reminder{UserID: "user-1", TaskID: "t1"})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	_, err = uc.SetReminder(context.Background(), &domain.Reminder{
		UserID: "user-1", RemindAt: testNow.Add(time.Hour),
	})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestSetReminderRejectsPastTime(t *testing.T) {
	uc := newReminderUseCase(&fakeReminderRepo{}, ownedTask())

	_, err := uc.SetReminder(context.Background(), &domain.Reminder{
		UserID:   "user-1",
		TaskID:   "t1",
		RemindAt: testNow.Add(-time.Minute),
	})
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestSetReminderForeignTaskReadsAsMissing(t *testing.T) {
	uc := newReminderUseCase(&fakeReminderRepo{}, ownedTask())

	_, err := uc.SetReminder(context.Background(), &domain.Reminder{
		UserID:   "user-2",
		TaskID:   "t1",
		RemindAt: testNow.Add(time.Hour),
	})
	assert.Equal(t, domain.ErrTaskNotFound, err)
}

func TestSetReminderDuplicateActiveConflicts(t *testing.T) {
	repo := &fakeReminderRepo{active: map[string]bool{activeKey("user-1", "t1"): true}}
	uc := newReminderUseCase(repo, ownedTask())

	_, err := uc.SetReminder(context.Background(), &domain.Reminder{
		UserID:   "user-1",
		TaskID:   "t1",
		RemindAt: testNow.Add(time.Hour),
	})
	assert.Equal(t, domain.ErrReminderExists, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))
}

func TestSetReminderAllowedAfterDeactivation(t *testing.T) {
	repo := &fakeReminderRepo{
		views: map[string]*domain.ReminderView{
			"r1": {Reminder: domain.Reminder{
				ID: "r1", UserID: "user-1", TaskID: "t1",
				RemindAt: testNow.Add(time.Hour), IsActive: true,
			}},
		},
		active: map[string]bool{activeKey("user-1", "t1"): true},
	}
	uc := newReminderUseCase(repo, ownedTask())

	inactive := false
	_, err := uc.UpdateReminder(context.Background(), "r1", "user-1", UpdateParams{IsActive: &inactive})
	require.NoError(t, err)

	created, err := uc.SetReminder(context.Background(), &domain.Reminder{
		UserID:   "user-1",
		TaskID:   "t1",
		RemindAt: testNow.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
}

func TestUpdateReminderMergesFields(t *testing.T) {
	repo := &fakeReminderRepo{
		views: map[string]*domain.ReminderView{
			"r1": {Reminder: domain.Reminder{
				ID: "r1", UserID: "user-1", TaskID: "t1",
				RemindAt: testNow.Add(time.Hour),
				Type:     domain.ReminderNotification,
				Repeat:   domain.RepeatNone,
				IsActive: true,
			}},
		},
	}
	uc := newReminderUseCase(repo, ownedTask())

	newType := domain.ReminderEmail
	updated, err := uc.UpdateReminder(context.Background(), "r1", "user-1", UpdateParams{Type: &newType})
	require.NoError(t, err)

	assert.Equal(t, domain.ReminderEmail, updated.Type)
	assert.Equal(t, domain.RepeatNone, updated.Repeat)
	assert.Equal(t, testNow.Add(time.Hour), updated.RemindAt)
	assert.True(t, updated.IsActive)
}

func TestUpdateReminderForeignOwnerForbidden(t *testing.T) {
	repo := &fakeReminderRepo{
		views: map[string]*domain.ReminderView{
			"r1": {Reminder: domain.Reminder{ID: "r1", UserID: "user-1", TaskID: "t1"}},
		},
	}
	uc := newReminderUseCase(repo, ownedTask())

	newType := domain.ReminderBoth
	_, err := uc.UpdateReminder(context.Background(), "r1", "user-2", UpdateParams{Type: &newType})
	assert.Equal(t, domain.ErrForbidden, err)
}

func TestUpdateReminderRejectsPastTime(t *testing.T) {
	repo := &fakeReminderRepo{
		views: map[string]*domain.ReminderView{
			"r1": {Reminder: domain.Reminder{ID: "r1", UserID: "user-1", TaskID: "t1"}},
		},
	}
	uc := newReminderUseCase(repo, ownedTask())

	past := testNow.Add(-time.Hour)
	_, err := uc.UpdateReminder(context.Background(), "r1", "user-1", UpdateParams{RemindAt: &past})
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestHasActiveReminder(t *testing.T) {
	repo := &fakeReminderRepo{active: map[string]bool{activeKey("user-1", "t1"): true}}
	uc := newReminderUseCase(repo, ownedTask())

	exists, err := uc.HasActiveReminder(context.Background(), "user-1", "t1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = uc.HasActiveReminder(context.Background(), "user-1", "t2")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetReminderOwnership(t *testing.T) {
	repo := &fakeReminderRepo{
		views: map[string]*domain.ReminderView{
			"r1": {
				Reminder: domain.Reminder{ID: "r1", UserID: "user-1", TaskID: "t1"},
				Task:     &domain.ReminderTask{ID: "t1", Title: "write report"},
			},
		},
	}
	uc := newReminderUseCase(repo, ownedTask())

	view, err := uc.GetReminder(context.Background(), "r1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, view.Task)
	assert.Equal(t, "write report", view.Task.Title)

	_, err = uc.GetReminder(context.Background(), "r1", "user-2")
	assert.Equal(t, domain.ErrForbidden, err)
}
