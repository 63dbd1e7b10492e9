package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

type reportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository returns the Postgres-backed aggregate reader behind
// summaries, statistics, and digests.
func NewReportRepository(pool *pgxpool.Pool) repository.ReportRepository {
	return &reportRepository{pool: pool}
}

func (r *reportRepository) TaskCounts(ctx context.Context, userID string, now time.Time) (repository.TaskCounts, error) {
	const query = `
	SELECT COUNT(*),
	       COUNT(*) FILTER (WHERE status = 'Completed'),
	       COUNT(*) FILTER (WHERE status = 'Pending'),
	       COUNT(*) FILTER (WHERE status = 'Pending' AND due_date < $2)
	FROM tasks
	WHERE user_id::text = $1
	`
	var counts repository.TaskCounts
	err := r.pool.QueryRow(ctx, query, userID, now).Scan(
		&counts.Total,
		&counts.Completed,
		&counts.Pending,
		&counts.Overdue,
	)
	return counts, err
}

func (r *reportRepository) PriorityCounts(ctx context.Context, userID string) ([]repository.PriorityCount, error) {
	const query = `
	SELECT priority, COUNT(*)
	FROM tasks
	WHERE user_id::text = $1
	GROUP BY priority
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []repository.PriorityCount
	for rows.Next() {
		var pc repository.PriorityCount
		if err := rows.Scan(&pc.Priority, &pc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, pc)
	}
	return counts, rows.Err()
}

func (r *reportRepository) CategoryCounts(ctx context.Context, userID string) ([]repository.CategoryCount, error) {
	// Left join keeps tasks whose category is unset or deleted; those rows
	// group under a NULL name for the calculator to relabel.
	const query = `
	SELECT c.name, COUNT(*), COUNT(*) FILTER (WHERE t.status = 'Completed')
	FROM tasks t
	LEFT JOIN categories c ON c.id = t.category_id
	WHERE t.user_id::text = $1
	GROUP BY c.name
	ORDER BY c.name NULLS LAST
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []repository.CategoryCount
	for rows.Next() {
		var cc repository.CategoryCount
		if err := rows.Scan(&cc.Name, &cc.Total, &cc.Completed); err != nil {
			return nil, err
		}
		counts = append(counts, cc)
	}
	return counts, rows.Err()
}

func (r *reportRepository) AverageCompletionHours(ctx context.Context, userID string) (float64, error) {
	const query = `
	SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (updated_at - created_at)) / 3600), 0)
	FROM tasks
	WHERE user_id::text = $1 AND status = 'Completed'
	`
	var hours float64
	err := r.pool.QueryRow(ctx, query, userID).Scan(&hours)
	return hours, err
}

func (r *reportRepository) OverdueTasks(ctx context.Context, userID string, now time.Time) ([]domain.TaskBrief, error) {
	const query = `
	SELECT id, title, description, priority, due_date
	FROM tasks
	WHERE user_id::text = $1 AND status = 'Pending' AND due_date < $2
	ORDER BY due_date ASC
	`
	rows, err := r.pool.Query(ctx, query, userID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBriefs(rows, false)
}

func (r *reportRepository) UpcomingTasks(ctx context.Context, userID string, from, to time.Time) ([]domain.TaskBrief, error) {
	const query = `
	SELECT id, title, description, priority, due_date
	FROM tasks
	WHERE user_id::text = $1 AND status = 'Pending' AND due_date >= $2 AND due_date <= $3
	ORDER BY due_date ASC
	`
	rows, err := r.pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBriefs(rows, false)
}

func (r *reportRepository) CompletedBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.TaskBrief, error) {
	const query = `
	SELECT id, title, description, priority, due_date, updated_at
	FROM tasks
	WHERE user_id::text = $1 AND status = 'Completed' AND updated_at >= $2 AND updated_at <= $3
	ORDER BY updated_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBriefs(rows, true)
}

func scanBriefs(rows pgx.Rows, withUpdatedAt bool) ([]domain.TaskBrief, error) {
	briefs := make([]domain.TaskBrief, 0)
	for rows.Next() {
		var brief domain.TaskBrief
		dest := []interface{}{&brief.ID, &brief.Title, &brief.Description, &brief.Priority, &brief.DueDate}
		if withUpdatedAt {
			var updated time.Time
			if err := rows.Scan(append(dest, &updated)...); err != nil {
				return nil, err
			}
			brief.UpdatedAt = &updated
		} else {
			if err := rows.Scan(dest...); err != nil {
				return nil, err
			}
		}
		briefs = append(briefs, brief)
	}
	return briefs, rows.Err()
}
