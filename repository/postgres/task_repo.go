package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	const query = `
	SELECT t.id, t.user_id, t.title, t.description, t.priority, t.due_date, t.category_id,
	       COALESCE(array_agg(tl.label_id::text) FILTER (WHERE tl.label_id IS NOT NULL), '{}'),
	       t.status, t.position, t.created_at, t.updated_at
	FROM tasks t
	LEFT JOIN task_labels tl ON tl.task_id = t.id
	WHERE t.id::text = $1
	GROUP BY t.id
	`
	row := r.pool.QueryRow(ctx, query, id)

	var task domain.Task
	var categoryID *string
	if err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Priority,
		&task.DueDate,
		&categoryID,
		&task.Labels,
		&task.Status,
		&task.Position,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	if categoryID != nil {
		task.CategoryID = *categoryID
	}
	return &task, nil
}

// List resolves the filter in a single query: a left join to categories (a
// missing category yields a null projection, never an error), a lateral
// label lookup projected to (id, name), and a stable sort on position then
// due date with insertion order breaking remaining ties.
func (r *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.TaskView, error) {
	const query = `
	SELECT t.id, t.user_id, t.title, t.description, t.priority, t.due_date, t.status, t.position,
	       t.created_at, t.updated_at,
	       c.id, c.name, c.description,
	       COALESCE(lbl.items, '[]')
	FROM tasks t
	LEFT JOIN categories c ON c.id = t.category_id
	LEFT JOIN LATERAL (
		SELECT json_agg(json_build_object('id', l.id, 'name', l.name)) AS items
		FROM task_labels tl
		JOIN labels l ON l.id = tl.label_id
		WHERE tl.task_id = t.id
	) lbl ON TRUE
	WHERE t.user_id::text = $1
	  AND ($2 = '' OR t.status = $2)
	  AND ($3 = '' OR t.category_id::text = $3)
	  AND (cardinality($4::text[]) = 0 OR EXISTS (
			SELECT 1 FROM task_labels x
			WHERE x.task_id = t.id AND x.label_id::text = ANY($4::text[])
	  ))
	  AND ($5::timestamptz IS NULL OR t.due_date >= $5)
	  AND ($6::timestamptz IS NULL OR t.due_date <= $6)
	ORDER BY t.position ASC, t.due_date ASC, t.created_at ASC, t.id ASC
	`
	labelIDs := filter.LabelIDs
	if labelIDs == nil {
		labelIDs = []string{}
	}

	rows, err := r.pool.Query(ctx, query,
		filter.UserID,
		string(filter.Status),
		filter.CategoryID,
		labelIDs,
		filter.DueFrom,
		filter.DueTo,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]domain.TaskView, 0)
	for rows.Next() {
		var (
			view      domain.TaskView
			catID     *string
			catName   *string
			catDesc   *string
			labelJSON []byte
		)
		if err := rows.Scan(
			&view.ID,
			&view.UserID,
			&view.Title,
			&view.Description,
			&view.Priority,
			&view.DueDate,
			&view.Status,
			&view.Position,
			&view.CreatedAt,
			&view.UpdatedAt,
			&catID,
			&catName,
			&catDesc,
			&labelJSON,
		); err != nil {
			return nil, err
		}

		if catID != nil {
			ref := domain.CategoryRef{ID: *catID}
			if catName != nil {
				ref.Name = *catName
			}
			if catDesc != nil {
				ref.Description = *catDesc
			}
			view.Category = &ref
		}

		view.Labels = make([]domain.LabelRef, 0)
		if len(labelJSON) > 0 {
			if err := json.Unmarshal(labelJSON, &view.Labels); err != nil {
				return nil, err
			}
		}

		views = append(views, view)
	}
	return views, rows.Err()
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const query = `
	INSERT INTO tasks (id, user_id, title, description, priority, due_date, category_id, status, position)
	VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, $8, $9)
	RETURNING created_at, updated_at
	`
	if err := tx.QueryRow(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		task.Priority,
		task.DueDate,
		task.CategoryID,
		task.Status,
		task.Position,
	).Scan(&task.CreatedAt, &task.UpdatedAt); err != nil {
		return nil, err
	}

	if err := replaceLabels(ctx, tx, task.ID, task.Labels); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const query = `
	UPDATE tasks
	SET title = $3,
		description = $4,
		priority = $5,
		due_date = $6,
		category_id = NULLIF($7, '')::uuid,
		status = $8,
		position = $9,
		updated_at = NOW()
	WHERE id::text = $1 AND user_id::text = $2
	RETURNING updated_at
	`
	if err := tx.QueryRow(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		task.Priority,
		task.DueDate,
		task.CategoryID,
		task.Status,
		task.Position,
	).Scan(&task.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		return err
	}

	if err := replaceLabels(ctx, tx, task.ID, task.Labels); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *taskRepository) SetStatus(ctx context.Context, id, userID string, status domain.Status) (*domain.Task, error) {
	const query = `
	UPDATE tasks
	SET status = $3, updated_at = NOW()
	WHERE id::text = $1 AND user_id::text = $2
	RETURNING id, user_id, title, description, priority, due_date, status, position, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query, id, userID, status)

	var task domain.Task
	if err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Priority,
		&task.DueDate,
		&task.Status,
		&task.Position,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) Delete(ctx context.Context, id, userID string) error {
	const query = `DELETE FROM tasks WHERE id::text = $1 AND user_id::text = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// Reorder queues one positional update per assignment. Each statement is
// scoped to (id, owner) so a caller cannot move another user's tasks, and an
// unmatched id simply affects zero rows. The batch is not transactional.
func (r *taskRepository) Reorder(ctx context.Context, userID string, updates []repository.PositionUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	const query = `
	UPDATE tasks
	SET position = $3, updated_at = NOW()
	WHERE id::text = $1 AND user_id::text = $2
	`
	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(query, u.ID, userID, u.Position)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range updates {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func replaceLabels(ctx context.Context, tx pgx.Tx, taskID string, labelIDs []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM task_labels WHERE task_id::text = $1`, taskID); err != nil {
		return err
	}
	for _, labelID := range labelIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO task_labels (task_id, label_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			taskID, labelID,
		); err != nil {
			return err
		}
	}
	return nil
}
