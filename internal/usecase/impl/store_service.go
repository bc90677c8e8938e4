// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"dealhub/config"
	deliverycontext "dealhub/internal/delivery/context"
	"dealhub/internal/domain/entity"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"
	"dealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	txManager     repository.TransactionManager
	storeRepo     repository.StoreRepository
	catalogConfig *config.CatalogConfig
	logger        *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	StoreRepo repository.StoreRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	var catalogConfig *config.CatalogConfig
	if params.Config != nil {
		catalogConfig = params.Config.Catalog
	}

	return &storeService{
		txManager:     params.TxManager,
		storeRepo:     params.StoreRepo,
		catalogConfig: catalogConfig,
		logger:        params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListStores returns stores matching the filter, by name ascending.
func (srv *storeService) ListStores(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, error) {
	filter.Limit = clampLimit(srv.catalogConfig, filter.Limit)

	stores, err := srv.storeRepo.ListStores(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list stores", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

// GetStore returns a single store by ID.
func (srv *storeService) GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindStoreByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WrapMessage("store lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return store, nil
}

// CreateStore persists a new store.
func (srv *storeService) CreateStore(ctx context.Context, input *usecase.StoreInput) (*entity.Store, error) {
	srv.log(ctx).Info("Creating store", slog.String("name", input.Name))

	if err := validateStoreInput(input); err != nil {
		return nil, err
	}

	newStore := &entity.Store{}
	applyStoreInput(newStore, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.resolveCategory(ctx, repoFactory, newStore); err != nil {
			return err
		}

		if err := repoFactory.StoreRepo().CreateStore(ctx, newStore); err != nil {
			return errors.Wrap(err, "failed to create store")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Store creation failed", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute store creation transaction")
	}
	srv.log(ctx).Debug("Store created", slog.Any("storeID", newStore.ID))

	return newStore, nil
}

// UpdateStore applies changes to an existing store.
func (srv *storeService) UpdateStore(ctx context.Context, id uuid.UUID, input *usecase.StoreInput) (*entity.Store, error) {
	srv.log(ctx).Info("Updating store", slog.Any("storeID", id))

	if err := validateStoreInput(input); err != nil {
		return nil, err
	}

	var updatedStore *entity.Store
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.StoreRepo()

		store, err := storeRepo.FindStoreByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrStoreNotFound.WrapMessage("store update failed")
			}

			return errors.Wrap(err, "failed to find store for update")
		}

		applyStoreInput(store, input)
		if err := srv.resolveCategory(ctx, repoFactory, store); err != nil {
			return err
		}

		if err := storeRepo.UpdateStore(ctx, store); err != nil {
			return errors.Wrap(err, "failed to update store")
		}
		updatedStore = store

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Store update failed", slog.Any("storeID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute store update transaction")
	}

	return updatedStore, nil
}

// DeleteStore removes a store that has no remaining deals.
func (srv *storeService) DeleteStore(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting store", slog.Any("storeID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.StoreRepo()

		store, err := storeRepo.FindStoreByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrStoreNotFound.WrapMessage("store deletion failed")
			}

			return errors.Wrap(err, "failed to find store for deletion")
		}

		// Deals reference their store by ID; orphaning them is not allowed.
		if store.DealCount > 0 {
			return domainerrors.ErrStoreHasDeals.WrapMessage("store still owns deals")
		}

		if err := storeRepo.DeleteStore(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete store")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Store deletion failed", slog.Any("storeID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute store deletion transaction")
	}

	return nil
}

// resolveCategory fills CategoryID from the category slug when the caller
// supplied only the slug.
func (srv *storeService) resolveCategory(ctx context.Context, repoFactory repository.RepositoryFactory, store *entity.Store) error {
	if store.Category == "" || store.CategoryID != nil {
		return nil
	}

	category, err := repoFactory.CategoryRepo().FindCategoryBySlug(ctx, store.Category)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("unknown store category slug")
		}

		return errors.Wrap(err, "failed to resolve store category")
	}
	store.CategoryID = &category.ID

	return nil
}

func validateStoreInput(input *usecase.StoreInput) error {
	if input.Name == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("store name is required")
	}
	if !input.StoreType.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown store type")
	}

	return nil
}

func applyStoreInput(store *entity.Store, input *usecase.StoreInput) {
	store.Name = input.Name
	store.Logo = input.Logo
	store.Category = input.Category
	store.CategoryID = input.CategoryID
	store.URL = input.URL
	store.StoreType = input.StoreType
	store.Featured = input.Featured
	store.Country = input.Country
	store.Description = input.Description
}
