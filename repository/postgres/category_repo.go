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

type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository returns a Postgres-backed category repository.
func NewCategoryRepository(pool *pgxpool.Pool) repository.CategoryRepository {
	return &categoryRepository{pool: pool}
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	const query = `
	SELECT id, user_id, name, description, created_at, updated_at
	FROM categories
	WHERE id::text = $1
	`
	var category domain.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.Description,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context, userID string) ([]domain.Category, error) {
	const query = `
	SELECT id, user_id, name, description, created_at, updated_at
	FROM categories
	WHERE user_id::text = $1
	ORDER BY name ASC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(
			&category.ID,
			&category.UserID,
			&category.Name,
			&category.Description,
			&category.CreatedAt,
			&category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if category == nil {
		return nil, domain.ErrInvalidPayload
	}
	if category.ID == "" {
		category.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO categories (id, user_id, name, description)
	VALUES ($1, $2, $3, $4)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		category.ID,
		category.UserID,
		category.Name,
		category.Description,
	).Scan(&category.CreatedAt, &category.UpdatedAt); err != nil {
		return nil, err
	}
	return category, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE categories
	SET name = $3, description = $4, updated_at = NOW()
	WHERE id::text = $1 AND user_id::text = $2
	RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		category.ID,
		category.UserID,
		category.Name,
		category.Description,
	).Scan(&category.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCategoryNotFound
		}
		return err
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id, userID string) error {
	// Tasks keep their category_id; the listing join renders it null and
	// reports fold it into "Uncategorized".
	const query = `DELETE FROM categories WHERE id::text = $1 AND user_id::text = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}
