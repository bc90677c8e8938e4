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

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	dealRepo     repository.DealRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	DealRepo     repository.DealRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		dealRepo:     params.DealRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddFavorite saves a deal for the user. Saving an already saved deal
// succeeds without creating a second row.
func (srv *favoriteService) AddFavorite(ctx context.Context, userID, dealID uuid.UUID) error {
	if _, err := srv.dealRepo.FindDealByID(ctx, dealID); err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return domainerrors.ErrDealNotFound.WrapMessage("cannot favorite a missing deal")
		}

		return errors.Wrap(err, "failed to find deal for favorite")
	}

	favorite := &entity.Favorite{
		UserID: userID,
		DealID: dealID,
	}
	if err := srv.favoriteRepo.CreateFavorite(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			// Already saved; the outcome the caller wanted holds.
			srv.log(ctx).Debug("Favorite already exists", slog.Any("userID", userID), slog.Any("dealID", dealID))

			return nil
		}
		srv.log(ctx).Error("Failed to create favorite", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to create favorite")
	}

	return nil
}

// RemoveFavorite deletes the saved deal for the user.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID, dealID uuid.UUID) error {
	if err := srv.favoriteRepo.DeleteFavorite(ctx, userID, dealID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound.WrapMessage("favorite removal failed")
		}
		srv.log(ctx).Error("Failed to delete favorite", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to delete favorite")
	}

	return nil
}

// ListFavorites returns the user's saved deals, newest first.
func (srv *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.FindFavoritesByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list favorites", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}
