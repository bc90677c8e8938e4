// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "dealhub/internal/delivery/context"
	"dealhub/internal/domain/entity"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"
	"dealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns all categories by name ascending.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.ListCategories(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list categories", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateCategory persists a new category; slugs are unique.
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	srv.log(ctx).Info("Creating category", slog.String("slug", input.Slug))

	if input.Name == "" || input.Slug == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category name and slug are required")
	}

	newCategory := &entity.Category{
		Name: input.Name,
		Slug: input.Slug,
		Icon: input.Icon,
	}
	if err := srv.categoryRepo.CreateCategory(ctx, newCategory); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategorySlug) {
			return nil, domainerrors.ErrCategorySlugTaken.WrapMessage("category creation failed")
		}
		srv.log(ctx).Error("Failed to create category", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create category")
	}

	return newCategory, nil
}

// UpdateCategory applies changes to an existing category.
func (srv *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	srv.log(ctx).Info("Updating category", slog.Any("categoryID", id))

	category, err := srv.categoryRepo.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("category update failed")
		}

		return nil, errors.Wrap(err, "failed to find category for update")
	}

	category.Name = input.Name
	category.Slug = input.Slug
	category.Icon = input.Icon

	if err := srv.categoryRepo.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategorySlug) {
			return nil, domainerrors.ErrCategorySlugTaken.WrapMessage("category update failed")
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// DeleteCategory removes a category by ID.
func (srv *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting category", slog.Any("categoryID", id))

	if err := srv.categoryRepo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("category deletion failed")
		}

		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}
