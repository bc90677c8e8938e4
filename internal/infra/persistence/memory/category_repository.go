package memory

import (
	"context"
	"slices"
	"strings"

	"dealhub/internal/domain/entity"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"

	"github.com/google/uuid"
)

// categoryRepository serves categories from the fixture dataset. Read-only.
type categoryRepository struct {
	fixtures *Fixtures
}

// NewCategoryRepository is the constructor for the fixture-backed categoryRepository.
func NewCategoryRepository(fixtures *Fixtures) repository.CategoryRepository {
	return &categoryRepository{fixtures: fixtures}
}

// ListCategories retrieves all fixture categories, ordered by name ASC.
func (repo *categoryRepository) ListCategories(_ context.Context) ([]*entity.Category, error) {
	categories := slices.Clone(repo.fixtures.Categories)
	slices.SortFunc(categories, func(a, b *entity.Category) int {
		return strings.Compare(a.Name, b.Name)
	})

	return categories, nil
}

// FindCategoryByID retrieves a fixture category by its unique ID.
func (repo *categoryRepository) FindCategoryByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, category := range repo.fixtures.Categories {
		if category.ID == id {
			return category, nil
		}
	}

	return nil, repository.ErrCategoryNotFound
}

// FindCategoryBySlug retrieves a fixture category by its unique slug.
func (repo *categoryRepository) FindCategoryBySlug(_ context.Context, slug string) (*entity.Category, error) {
	for _, category := range repo.fixtures.Categories {
		if category.Slug == slug {
			return category, nil
		}
	}

	return nil, repository.ErrCategoryNotFound
}

// CreateCategory is unavailable without a database.
func (repo *categoryRepository) CreateCategory(_ context.Context, _ *entity.Category) error {
	return domainerrors.ErrServiceNotConfigured.WrapMessage("category writes require a database")
}

// UpdateCategory is unavailable without a database.
func (repo *categoryRepository) UpdateCategory(_ context.Context, _ *entity.Category) error {
	return domainerrors.ErrServiceNotConfigured.WrapMessage("category writes require a database")
}

// DeleteCategory is unavailable without a database.
func (repo *categoryRepository) DeleteCategory(_ context.Context, _ uuid.UUID) error {
	return domainerrors.ErrServiceNotConfigured.WrapMessage("category writes require a database")
}
