package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

type labelRepository struct {
	pool *pgxpool.Pool
}

// NewLabelRepository returns a Postgres-backed label repository.
func NewLabelRepository(pool *pgxpool.Pool) repository.LabelRepository {
	return &labelRepository{pool: pool}
}

func (r *labelRepository) GetByID(ctx context.Context, id string) (*domain.Label, error) {
	const query = `
	SELECT id, user_id, name, created_at, updated_at
	FROM labels
	WHERE id::text = $1
	`
	var label domain.Label
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&label.ID,
		&label.UserID,
		&label.Name,
		&label.CreatedAt,
		&label.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLabelNotFound
		}
		return nil, err
	}
	return &label, nil
}

func (r *labelRepository) List(ctx context.Context, userID string) ([]domain.Label, error) {
	const query = `
	SELECT id, user_id, name, created_at, updated_at
	FROM labels
	WHERE user_id::text = $1
	ORDER BY name ASC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []domain.Label
	for rows.Next() {
		var label domain.Label
		if err := rows.Scan(
			&label.ID,
			&label.UserID,
			&label.Name,
			&label.CreatedAt,
			&label.UpdatedAt,
		); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

func (r *labelRepository) Create(ctx context.Context, label *domain.Label) (*domain.Label, error) {
	if label == nil {
		return nil, domain.ErrInvalidPayload
	}
	if label.ID == "" {
		label.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO labels (id, user_id, name)
	VALUES ($1, $2, $3)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		label.ID,
		label.UserID,
		label.Name,
	).Scan(&label.CreatedAt, &label.UpdatedAt); err != nil {
		return nil, err
	}
	return label, nil
}

func (r *labelRepository) Update(ctx context.Context, label *domain.Label) error {
	if label == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE labels
	SET name = $3, updated_at = NOW()
	WHERE id::text = $1 AND user_id::text = $2
	RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query, label.ID, label.UserID, label.Name).Scan(&label.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrLabelNotFound
		}
		return err
	}
	return nil
}

func (r *labelRepository) Delete(ctx context.Context, id, userID string) error {
	// Task references are left in place; the listing join simply stops
	// resolving the label.
	const query = `DELETE FROM labels WHERE id::text = $1 AND user_id::text = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLabelNotFound
	}
	return nil
}
