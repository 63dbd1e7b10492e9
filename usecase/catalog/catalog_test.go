package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/backend/domain"
)

type fakeCategoryRepo struct {
	created *domain.Category
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	return nil, domain.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) List(context.Context, string) ([]domain.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	f.created = category
	return category, nil
}

func (f *fakeCategoryRepo) Update(context.Context, *domain.Category) error { return nil }

func (f *fakeCategoryRepo) Delete(context.Context, string, string) error { return nil }

type fakeLabelRepo struct{}

func (f *fakeLabelRepo) GetByID(context.Context, string) (*domain.Label, error) {
	return nil, domain.ErrLabelNotFound
}

func (f *fakeLabelRepo) List(context.Context, string) ([]domain.Label, error) { return nil, nil }

func (f *fakeLabelRepo) Create(_ context.Context, label *domain.Label) (*domain.Label, error) {
	return label, nil
}

func (f *fakeLabelRepo) Update(context.Context, *domain.Label) error { return nil }

func (f *fakeLabelRepo) Delete(context.Context, string, string) error { return nil }

func TestCreateCategoryTrimsName(t *testing.T) {
	repo := &fakeCategoryRepo{}
	uc := New(repo, &fakeLabelRepo{}, nil)

	created, err := uc.CreateCategory(context.Background(), &domain.Category{
		UserID: "user-1",
		Name:   "  Work  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Work", created.Name)
}

func TestCreateCategoryRequiresName(t *testing.T) {
	uc := New(&fakeCategoryRepo{}, &fakeLabelRepo{}, nil)

	for _, name := range []string{"", "   "} {
		_, err := uc.CreateCategory(context.Background(), &domain.Category{UserID: "user-1", Name: name})
		require.Error(t, err)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	}
}

func TestUpdateLabelRequiresID(t *testing.T) {
	uc := New(&fakeCategoryRepo{}, &fakeLabelRepo{}, nil)

	_, err := uc.UpdateLabel(context.Background(), &domain.Label{Name: "urgent"})
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}
