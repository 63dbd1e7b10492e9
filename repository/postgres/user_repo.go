package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository instantiates a Postgres-backed user repository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
	SELECT id, name, email, status, created_at, updated_at
	FROM users
	WHERE id::text = $1
	`
	var user domain.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	if user == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO users (id, name, email, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, COALESCE($5, NOW()), NOW())
	ON CONFLICT (id) DO UPDATE
	SET name = EXCLUDED.name,
		email = EXCLUDED.email,
		status = EXCLUDED.status,
		updated_at = NOW()
	RETURNING created_at, updated_at
	`
	var createdAt, updatedAt time.Time
	if err := r.pool.QueryRow(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Status,
		nullTime(user.CreatedAt),
	).Scan(&createdAt, &updatedAt); err != nil {
		return err
	}

	user.CreatedAt = createdAt
	user.UpdatedAt = updatedAt
	return nil
}
