package repository

import (
	"context"
	"time"

	"github.com/taskhive/backend/domain"
)

// TaskCounts carries the four base aggregates behind summaries and
// statistics. Overdue counts pending tasks due strictly before the reference
// instant passed to TaskCounts.
type TaskCounts struct {
	Total     int
	Completed int
	Pending   int
	Overdue   int
}

// PriorityCount is one row of the per-priority grouping, as stored.
type PriorityCount struct {
	Priority string
	Count    int
}

// CategoryCount is one row of the per-category grouping. Name is nil for
// tasks whose category is unset or was deleted.
type CategoryCount struct {
	Name      *string
	Total     int
	Completed int
}

// ReportRepository exposes the owner-scoped aggregate reads the report
// calculators consume. All methods are read-only.
type ReportRepository interface {
	TaskCounts(ctx context.Context, userID string, now time.Time) (TaskCounts, error)
	PriorityCounts(ctx context.Context, userID string) ([]PriorityCount, error)
	CategoryCounts(ctx context.Context, userID string) ([]CategoryCount, error)
	// AverageCompletionHours returns the mean of (updated_at - created_at)
	// in hours across completed tasks, or 0 when none exist.
	AverageCompletionHours(ctx context.Context, userID string) (float64, error)
	OverdueTasks(ctx context.Context, userID string, now time.Time) ([]domain.TaskBrief, error)
	UpcomingTasks(ctx context.Context, userID string, from, to time.Time) ([]domain.TaskBrief, error)
	CompletedBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.TaskBrief, error)
}
