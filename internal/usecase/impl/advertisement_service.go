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

// advertisementService implements the AdvertisementUsecase interface.
type advertisementService struct {
	txManager repository.TransactionManager
	adRepo    repository.AdvertisementRepository
	logger    *slog.Logger
}

// AdvertisementServiceParams holds dependencies for AdvertisementService, injected by Fx.
type AdvertisementServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	AdRepo    repository.AdvertisementRepository
	Logger    *slog.Logger
}

// NewAdvertisementService is the constructor for advertisementService.
func NewAdvertisementService(params AdvertisementServiceParams) usecase.AdvertisementUsecase {
	return &advertisementService{
		txManager: params.TxManager,
		adRepo:    params.AdRepo,
		logger:    params.Logger,
	}
}

func (srv *advertisementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAdvertisements returns banners ordered by display position.
func (srv *advertisementService) ListAdvertisements(ctx context.Context, activeOnly bool) ([]*entity.Advertisement, error) {
	ads, err := srv.adRepo.ListAdvertisements(ctx, activeOnly)
	if err != nil {
		srv.log(ctx).Error("Failed to list advertisements", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list advertisements")
	}

	return ads, nil
}

// CreateAdvertisement appends a banner at the end of the rotation.
func (srv *advertisementService) CreateAdvertisement(ctx context.Context, input *usecase.AdvertisementInput) (*entity.Advertisement, error) {
	srv.log(ctx).Info("Creating advertisement", slog.String("title", input.Title))

	newAd := &entity.Advertisement{}
	applyAdvertisementInput(newAd, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adRepo := repoFactory.AdvertisementRepo()

		// Placing the banner after the current maximum keeps the rotation a
		// total order without renumbering existing rows.
		ads, err := adRepo.ListAdvertisements(ctx, false)
		if err != nil {
			return errors.Wrap(err, "failed to list advertisements for ordering")
		}
		maxOrder := 0
		for _, ad := range ads {
			if ad.DisplayOrder > maxOrder {
				maxOrder = ad.DisplayOrder
			}
		}
		newAd.DisplayOrder = maxOrder + 1

		if err := adRepo.CreateAdvertisement(ctx, newAd); err != nil {
			return errors.Wrap(err, "failed to create advertisement")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Advertisement creation failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute advertisement creation transaction")
	}

	return newAd, nil
}

// UpdateAdvertisement applies changes to an existing banner.
func (srv *advertisementService) UpdateAdvertisement(ctx context.Context, id uuid.UUID, input *usecase.AdvertisementInput) (*entity.Advertisement, error) {
	srv.log(ctx).Info("Updating advertisement", slog.Any("advertisementID", id))

	ad, err := srv.adRepo.FindAdvertisementByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdvertisementNotFound) {
			return nil, domainerrors.ErrAdvertisementNotFound.WrapMessage("advertisement update failed")
		}

		return nil, errors.Wrap(err, "failed to find advertisement for update")
	}

	applyAdvertisementInput(ad, input)
	if err := srv.adRepo.UpdateAdvertisement(ctx, ad); err != nil {
		return nil, errors.Wrap(err, "failed to update advertisement")
	}

	return ad, nil
}

// DeleteAdvertisement removes a banner.
func (srv *advertisementService) DeleteAdvertisement(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting advertisement", slog.Any("advertisementID", id))

	if err := srv.adRepo.DeleteAdvertisement(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAdvertisementNotFound) {
			return domainerrors.ErrAdvertisementNotFound.WrapMessage("advertisement deletion failed")
		}

		return errors.Wrap(err, "failed to delete advertisement")
	}

	return nil
}

// ReorderAdvertisements swaps the display positions of two banners
// atomically inside one database transaction.
func (srv *advertisementService) ReorderAdvertisements(ctx context.Context, idA, idB uuid.UUID) error {
	srv.log(ctx).Info("Reordering advertisements", slog.Any("idA", idA), slog.Any("idB", idB))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adRepo := repoFactory.AdvertisementRepo()

		adA, err := adRepo.FindAdvertisementByID(ctx, idA)
		if err != nil {
			if errors.Is(err, repository.ErrAdvertisementNotFound) {
				return domainerrors.ErrAdvertisementNotFound.WrapMessage("advertisement reorder failed")
			}

			return errors.Wrap(err, "failed to find first advertisement")
		}

		adB, err := adRepo.FindAdvertisementByID(ctx, idB)
		if err != nil {
			if errors.Is(err, repository.ErrAdvertisementNotFound) {
				return domainerrors.ErrAdvertisementNotFound.WrapMessage("advertisement reorder failed")
			}

			return errors.Wrap(err, "failed to find second advertisement")
		}

		if err := adRepo.UpdateDisplayOrder(ctx, adA.ID, adB.DisplayOrder); err != nil {
			return errors.Wrap(err, "failed to move first advertisement")
		}
		if err := adRepo.UpdateDisplayOrder(ctx, adB.ID, adA.DisplayOrder); err != nil {
			return errors.Wrap(err, "failed to move second advertisement")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Advertisement reorder failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute advertisement reorder transaction")
	}

	return nil
}

func applyAdvertisementInput(ad *entity.Advertisement, input *usecase.AdvertisementInput) {
	ad.Title = input.Title
	ad.Description = input.Description
	ad.CTAText = input.CTAText
	ad.CTALink = input.CTALink
	ad.BgColor = input.BgColor
	ad.ImageURL = input.ImageURL
	ad.IsActive = input.IsActive
}
