// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"dealhub/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase defines the operations around a user's saved deals.
type FavoriteUsecase interface {
	// AddFavorite saves a deal for the user. Saving an already saved deal
	// succeeds without creating a second row.
	AddFavorite(ctx context.Context, userID, dealID uuid.UUID) error

	// RemoveFavorite deletes the saved deal for the user.
	RemoveFavorite(ctx context.Context, userID, dealID uuid.UUID) error

	// ListFavorites returns the user's saved deals, newest first.
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
}
