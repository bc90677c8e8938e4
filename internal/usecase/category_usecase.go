// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"dealhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryInput carries the writable fields of a category.
type CategoryInput struct {
	Name string
	Slug string
	Icon string
}

// CategoryUsecase defines the catalog operations around categories.
type CategoryUsecase interface {
	// ListCategories returns all categories by name ascending.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateCategory persists a new category; slugs are unique.
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)

	// UpdateCategory applies changes to an existing category.
	UpdateCategory(ctx context.Context, id uuid.UUID, input *CategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category by ID.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
