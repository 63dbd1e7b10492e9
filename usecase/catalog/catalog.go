package catalog

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

// UseCase covers the plain CRUD around categories and labels. Deletions are
// deliberately non-cascading; task references degrade in listings and
// reports instead.
type UseCase struct {
	categories repository.CategoryRepository
	labels     repository.LabelRepository
	logger     *zap.Logger
}

func New(categories repository.CategoryRepository, labels repository.LabelRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		categories: categories,
		labels:     labels,
		logger:     logger,
	}
}

func (uc *UseCase) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	return uc.categories.List(ctx, userID)
}

func (uc *UseCase) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if category == nil || strings.TrimSpace(category.Name) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "category name is required")
	}
	category.Name = strings.TrimSpace(category.Name)
	return uc.categories.Create(ctx, category)
}

func (uc *UseCase) UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if category == nil || category.ID == "" || strings.TrimSpace(category.Name) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "category name is required")
	}
	category.Name = strings.TrimSpace(category.Name)
	if err := uc.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *UseCase) DeleteCategory(ctx context.Context, id, userID string) error {
	return uc.categories.Delete(ctx, id, userID)
}

func (uc *UseCase) ListLabels(ctx context.Context, userID string) ([]domain.Label, error) {
	return uc.labels.List(ctx, userID)
}

func (uc *UseCase) CreateLabel(ctx context.Context, label *domain.Label) (*domain.Label, error) {
	if label == nil || strings.TrimSpace(label.Name) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "label name is required")
	}
	label.Name = strings.TrimSpace(label.Name)
	return uc.labels.Create(ctx, label)
}

func (uc *UseCase) UpdateLabel(ctx context.Context, label *domain.Label) (*domain.Label, error) {
	if label == nil || label.ID == "" || strings.TrimSpace(label.Name) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "label name is required")
	}
	label.Name = strings.TrimSpace(label.Name)
	if err := uc.labels.Update(ctx, label); err != nil {
		return nil, err
	}
	return label, nil
}

func (uc *UseCase) DeleteLabel(ctx context.Context, id, userID string) error {
	return uc.labels.Delete(ctx, id, userID)
}
