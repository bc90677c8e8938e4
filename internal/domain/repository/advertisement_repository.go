// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dealhub/internal/domain/entity"
	"dealhub/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for advertisement persistence.
var (
	// ErrAdvertisementNotFound is returned when a banner is not found.
	ErrAdvertisementNotFound = errors.New("advertisement not found")
)

// AdvertisementRepository defines the interface for banner-related database operations.
// Listings are always ordered by display_order ASC.
type AdvertisementRepository interface {
	// ListAdvertisements retrieves banners ordered by display_order ASC.
	// When activeOnly is true, inactive banners are excluded.
	ListAdvertisements(ctx context.Context, activeOnly bool) ([]*entity.Advertisement, error)

	// FindAdvertisementByID retrieves a banner by its unique ID.
	FindAdvertisementByID(ctx context.Context, id uuid.UUID) (*entity.Advertisement, error)

	// CreateAdvertisement persists a new banner.
	CreateAdvertisement(ctx context.Context, ad *entity.Advertisement) error

	// UpdateAdvertisement modifies an existing banner.
	UpdateAdvertisement(ctx context.Context, ad *entity.Advertisement) error

	// UpdateDisplayOrder sets the display position of a single banner.
	// Reordering two banners runs both updates inside one transaction.
	UpdateDisplayOrder(ctx context.Context, id uuid.UUID, displayOrder int) error

	// DeleteAdvertisement removes a banner by its ID.
	DeleteAdvertisement(ctx context.Context, id uuid.UUID) error
}
