// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dealhub/internal/domain/entity"
	"dealhub/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for category persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategorySlug is returned when a slug is already taken.
	ErrDuplicateCategorySlug = errors.New("category slug already exists")
)

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// ListCategories retrieves all categories, ordered by name ASC.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// FindCategoryByID retrieves a category by its unique ID.
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindCategoryBySlug retrieves a category by its unique slug.
	FindCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// UpdateCategory modifies an existing category.
	UpdateCategory(ctx context.Context, category *entity.Category) error

	// DeleteCategory removes a category by its ID.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
