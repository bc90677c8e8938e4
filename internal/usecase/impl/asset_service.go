// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "dealhub/internal/delivery/context"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"
	"dealhub/internal/domain/service"
	"dealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// assetService implements the AssetUsecase interface.
type assetService struct {
	txManager      repository.TransactionManager
	storageService service.StorageService
	logger         *slog.Logger
}

// AssetServiceParams holds dependencies for AssetService, injected by Fx.
type AssetServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	StorageService service.StorageService
	Logger         *slog.Logger
}

// NewAssetService is the constructor for assetService.
func NewAssetService(params AssetServiceParams) usecase.AssetUsecase {
	return &assetService{
		txManager:      params.TxManager,
		storageService: params.StorageService,
		logger:         params.Logger,
	}
}

func (srv *assetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadStoreLogo stores a logo image and points the store at it.
func (srv *assetService) UploadStoreLogo(ctx context.Context, storeID uuid.UUID, data []byte, contentType string) (string, error) {
	srv.log(ctx).Info("Uploading store logo", slog.Any("storeID", storeID), slog.Int("bytes", len(data)))

	ext, err := imageExtension(contentType)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("stores/%s/logo%s", storeID, ext)
	url, err := srv.storageService.Upload(ctx, key, data, contentType)
	if err != nil {
		srv.log(ctx).Error("Failed to upload store logo", slog.Any("error", err), slog.Any("storeID", storeID))

		return "", errors.Wrap(err, "failed to upload store logo")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.StoreRepo()

		store, findErr := storeRepo.FindStoreByID(ctx, storeID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrStoreNotFound) {
				return domainerrors.ErrStoreNotFound.WrapMessage("logo upload failed")
			}

			return errors.Wrap(findErr, "failed to find store for logo upload")
		}

		store.Logo = url

		return storeRepo.UpdateStore(ctx, store)
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to execute logo upload transaction")
	}

	return url, nil
}

// UploadProductImage stores a product photo and points the deal at it.
func (srv *assetService) UploadProductImage(ctx context.Context, dealID uuid.UUID, data []byte, contentType string) (string, error) {
	srv.log(ctx).Info("Uploading product image", slog.Any("dealID", dealID), slog.Int("bytes", len(data)))

	ext, err := imageExtension(contentType)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("deals/%s/product%s", dealID, ext)
	url, err := srv.storageService.Upload(ctx, key, data, contentType)
	if err != nil {
		srv.log(ctx).Error("Failed to upload product image", slog.Any("error", err), slog.Any("dealID", dealID))

		return "", errors.Wrap(err, "failed to upload product image")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dealRepo := repoFactory.DealRepo()

		deal, findErr := dealRepo.FindDealByID(ctx, dealID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrDealNotFound) {
				return domainerrors.ErrDealNotFound.WrapMessage("product image upload failed")
			}

			return errors.Wrap(findErr, "failed to find deal for product image upload")
		}

		deal.ProductImage = url

		return dealRepo.UpdateDeal(ctx, deal)
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to execute product image upload transaction")
	}

	return url, nil
}

// imageExtension maps an accepted image content type to a file extension.
func imageExtension(contentType string) (string, error) {
	switch contentType {
	case "image/png":
		return ".png", nil
	case "image/jpeg":
		return ".jpg", nil
	case "image/webp":
		return ".webp", nil
	case "image/gif":
		return ".gif", nil
	default:
		return "", domainerrors.ErrValidationFailed.WrapMessage("unsupported image content type")
	}
}
