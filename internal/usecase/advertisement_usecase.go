// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"dealhub/internal/domain/entity"

	"github.com/google/uuid"
)

// AdvertisementInput carries the writable fields of a banner.
type AdvertisementInput struct {
	Title       string
	Description string
	CTAText     string
	CTALink     string
	BgColor     string
	ImageURL    string
	IsActive    bool
}

// AdvertisementUsecase defines the operations around promotional banners.
type AdvertisementUsecase interface {
	// ListAdvertisements returns banners ordered by display position.
	ListAdvertisements(ctx context.Context, activeOnly bool) ([]*entity.Advertisement, error)

	// CreateAdvertisement appends a banner at the end of the rotation.
	CreateAdvertisement(ctx context.Context, input *AdvertisementInput) (*entity.Advertisement, error)

	// UpdateAdvertisement applies changes to an existing banner.
	UpdateAdvertisement(ctx context.Context, id uuid.UUID, input *AdvertisementInput) (*entity.Advertisement, error)

	// DeleteAdvertisement removes a banner.
	DeleteAdvertisement(ctx context.Context, id uuid.UUID) error

	// ReorderAdvertisements swaps the display positions of two banners
	// atomically inside one database transaction.
	ReorderAdvertisements(ctx context.Context, idA, idB uuid.UUID) error
}
