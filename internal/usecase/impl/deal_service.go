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
	"dealhub/internal/domain/service"
	"dealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dealService implements the DealUsecase interface.
type dealService struct {
	txManager      repository.TransactionManager
	dealRepo       repository.DealRepository
	qrcodeService  service.QRCodeService
	eventPublisher service.EventPublisher
	catalogConfig  *config.CatalogConfig
	logger         *slog.Logger
}

// DealServiceParams holds dependencies for DealService, injected by Fx.
type DealServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	DealRepo       repository.DealRepository
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher `optional:"true"`
	Config         *config.Config
	Logger         *slog.Logger
}

// NewDealService is the constructor for dealService.
func NewDealService(params DealServiceParams) usecase.DealUsecase {
	var catalogConfig *config.CatalogConfig
	if params.Config != nil {
		catalogConfig = params.Config.Catalog
	}

	return &dealService{
		txManager:      params.TxManager,
		dealRepo:       params.DealRepo,
		qrcodeService:  params.QRCodeService,
		eventPublisher: params.EventPublisher,
		catalogConfig:  catalogConfig,
		logger:         params.Logger,
	}
}

func (srv *dealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDeals returns deals matching the filter, newest first.
func (srv *dealService) ListDeals(ctx context.Context, filter repository.DealFilter) ([]*entity.Deal, error) {
	filter.Limit = clampLimit(srv.catalogConfig, filter.Limit)

	deals, err := srv.dealRepo.ListDeals(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list deals", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list deals")
	}

	return deals, nil
}

// GetDeal returns a single deal by ID.
func (srv *dealService) GetDeal(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	deal, err := srv.dealRepo.FindDealByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return nil, domainerrors.ErrDealNotFound.WrapMessage("deal lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find deal by id")
	}

	return deal, nil
}

// IncrementUsedCount records that a visitor revealed or used the deal.
func (srv *dealService) IncrementUsedCount(ctx context.Context, id uuid.UUID) error {
	if err := srv.dealRepo.IncrementUsedCount(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return domainerrors.ErrDealNotFound.WrapMessage("deal usage tracking failed")
		}
		srv.log(ctx).Error("Failed to increment deal used count", slog.Any("error", err), slog.Any("dealID", id))

		return errors.Wrap(err, "failed to increment deal used count")
	}

	return nil
}

// CreateDeal validates the type invariants and persists the deal, bumping
// the owning store's deal counter in the same transaction.
func (srv *dealService) CreateDeal(ctx context.Context, input *usecase.DealInput) (*entity.Deal, error) {
	srv.log(ctx).Info("Creating deal", slog.String("title", input.Title), slog.Any("storeID", input.StoreID))

	if err := validateDealInput(input); err != nil {
		return nil, err
	}

	newDeal := dealFromInput(input)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dealRepo := repoFactory.DealRepo()
		storeRepo := repoFactory.StoreRepo()

		// The owning store must exist; the counter update below would
		// otherwise silently touch zero rows.
		if _, err := storeRepo.FindStoreByID(ctx, input.StoreID); err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrStoreNotFound.WrapMessage("deal creation failed")
			}

			return errors.Wrap(err, "failed to find owning store")
		}

		if err := dealRepo.CreateDeal(ctx, newDeal); err != nil {
			return errors.Wrap(err, "failed to create deal")
		}

		if err := storeRepo.AdjustDealCount(ctx, input.StoreID, 1); err != nil {
			return errors.Wrap(err, "failed to bump store deal count")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Deal creation failed", slog.String("title", input.Title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute deal creation transaction")
	}

	if newDeal.Featured {
		srv.publishFeaturedEvent(ctx, newDeal)
	}
	srv.log(ctx).Debug("Deal created", slog.Any("dealID", newDeal.ID))

	return newDeal, nil
}

// UpdateDeal validates and applies changes to an existing deal.
func (srv *dealService) UpdateDeal(ctx context.Context, id uuid.UUID, input *usecase.DealInput) (*entity.Deal, error) {
	srv.log(ctx).Info("Updating deal", slog.Any("dealID", id))

	if err := validateDealInput(input); err != nil {
		return nil, err
	}

	var updatedDeal *entity.Deal
	var newlyFeatured bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dealRepo := repoFactory.DealRepo()
		storeRepo := repoFactory.StoreRepo()

		deal, err := dealRepo.FindDealByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDealNotFound) {
				return domainerrors.ErrDealNotFound.WrapMessage("deal update failed")
			}

			return errors.Wrap(err, "failed to find deal for update")
		}

		// A deal moving between stores shifts both counters.
		if input.StoreID != deal.StoreID {
			if _, err := storeRepo.FindStoreByID(ctx, input.StoreID); err != nil {
				if errors.Is(err, repository.ErrStoreNotFound) {
					return domainerrors.ErrStoreNotFound.WrapMessage("deal update failed")
				}

				return errors.Wrap(err, "failed to find new owning store")
			}
			if err := storeRepo.AdjustDealCount(ctx, deal.StoreID, -1); err != nil {
				return errors.Wrap(err, "failed to decrement old store deal count")
			}
			if err := storeRepo.AdjustDealCount(ctx, input.StoreID, 1); err != nil {
				return errors.Wrap(err, "failed to increment new store deal count")
			}
		}

		newlyFeatured = input.Featured && !deal.Featured
		applyDealInput(deal, input)

		if err := dealRepo.UpdateDeal(ctx, deal); err != nil {
			return errors.Wrap(err, "failed to update deal")
		}
		updatedDeal = deal

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Deal update failed", slog.Any("dealID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute deal update transaction")
	}

	if newlyFeatured {
		srv.publishFeaturedEvent(ctx, updatedDeal)
	}

	return updatedDeal, nil
}

// DeleteDeal removes the deal and decrements the store's deal counter in
// the same transaction.
func (srv *dealService) DeleteDeal(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting deal", slog.Any("dealID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dealRepo := repoFactory.DealRepo()
		storeRepo := repoFactory.StoreRepo()

		deal, err := dealRepo.FindDealByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDealNotFound) {
				return domainerrors.ErrDealNotFound.WrapMessage("deal deletion failed")
			}

			return errors.Wrap(err, "failed to find deal for deletion")
		}

		if err := dealRepo.DeleteDeal(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete deal")
		}

		if err := storeRepo.AdjustDealCount(ctx, deal.StoreID, -1); err != nil {
			return errors.Wrap(err, "failed to decrement store deal count")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Deal deletion failed", slog.Any("dealID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute deal deletion transaction")
	}

	return nil
}

// GetRedemptionQR renders the in-store redemption QR code for a code-type deal.
func (srv *dealService) GetRedemptionQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	deal, err := srv.GetDeal(ctx, id)
	if err != nil {
		return nil, err
	}

	if deal.Type != entity.DealTypeCode || deal.Code == "" {
		return nil, domainerrors.ErrDealCodeRequired.WrapMessage("redemption QR requires a code-type deal")
	}

	png, err := srv.qrcodeService.GenerateRedemptionQR(deal.ID, deal.Code)
	if err != nil {
		srv.log(ctx).Error("Failed to generate redemption QR", slog.Any("error", err), slog.Any("dealID", id))

		return nil, errors.Wrap(err, "failed to generate redemption QR")
	}

	return png, nil
}

// publishFeaturedEvent queues a deal.featured event. Publishing is best
// effort: the deal is already committed, so a queue failure is only logged.
func (srv *dealService) publishFeaturedEvent(ctx context.Context, deal *entity.Deal) {
	if srv.eventPublisher == nil {
		return
	}

	event := &service.DealEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventType: service.EventDealFeatured,
		DealID:    deal.ID.String(),
		StoreID:   deal.StoreID.String(),
		Title:     deal.Title,
		Discount:  deal.Discount,
	}
	if err := srv.eventPublisher.PublishDealEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish deal.featured event", slog.Any("error", err), slog.Any("dealID", deal.ID))
	}
}

// validateDealInput enforces the redemption type invariants.
func validateDealInput(input *usecase.DealInput) error {
	if !input.Type.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown deal type")
	}
	if input.Type == entity.DealTypeCode && input.Code == "" {
		return domainerrors.ErrDealCodeRequired.WrapMessage("code-type deal without a coupon code")
	}
	if input.Type == entity.DealTypeProduct && input.Price == nil {
		return domainerrors.ErrDealPriceRequired.WrapMessage("product-type deal without a price")
	}

	return nil
}

func dealFromInput(input *usecase.DealInput) *entity.Deal {
	deal := &entity.Deal{}
	applyDealInput(deal, input)

	return deal
}

func applyDealInput(deal *entity.Deal, input *usecase.DealInput) {
	deal.Title = input.Title
	deal.Description = input.Description
	deal.Discount = input.Discount
	deal.Code = input.Code
	deal.Type = input.Type
	deal.StoreID = input.StoreID
	deal.Category = input.Category
	deal.URL = input.URL
	deal.Featured = input.Featured
	deal.Verified = input.Verified
	deal.Price = input.Price
	deal.OriginalPrice = input.OriginalPrice
	deal.ProductImage = input.ProductImage
	deal.ExpiresAt = input.ExpiresAt
}
