package repository

import (
	"context"

	"github.com/taskhive/backend/domain"
)

type CategoryRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context, userID string) ([]domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	// Delete removes the category only; tasks keep their dangling reference
	// and degrade to "Uncategorized" in reports.
	Delete(ctx context.Context, id, userID string) error
}

type LabelRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Label, error)
	List(ctx context.Context, userID string) ([]domain.Label, error)
	Create(ctx context.Context, label *domain.Label) (*domain.Label, error)
	Update(ctx context.Context, label *domain.Label) error
	Delete(ctx context.Context, id, userID string) error
}
