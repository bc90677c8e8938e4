// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dealhub/internal/domain/entity"
	"dealhub/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when a favorite is not found.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the (user, deal) pair already exists.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository defines the interface for favorite-related database operations.
type FavoriteRepository interface {
	// CreateFavorite persists a new favorite. Returns ErrDuplicateFavorite when
	// the (user, deal) pair already exists.
	CreateFavorite(ctx context.Context, favorite *entity.Favorite) error

	// DeleteFavorite removes the favorite for the given (user, deal) pair.
	DeleteFavorite(ctx context.Context, userID, dealID uuid.UUID) error

	// FindFavoritesByUser retrieves a user's favorites, newest first.
	FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)

	// FindUserIDsByStore retrieves the distinct IDs of users who favorited any
	// deal of the given store. Used for deal alert pushes.
	FindUserIDsByStore(ctx context.Context, storeID uuid.UUID) ([]uuid.UUID, error)
}
