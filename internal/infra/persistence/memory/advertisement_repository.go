package memory

import (
	"context"
	"slices"

	"dealhub/internal/domain/entity"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"

	"github.com/google/uuid"
)

// advertisementRepository serves banners from the fixture dataset. Read-only.
type advertisementRepository struct {
	fixtures *Fixtures
}

// NewAdvertisementRepository is the constructor for the fixture-backed advertisementRepository.
func NewAdvertisementRepository(fixtures *Fixtures) repository.AdvertisementRepository {
	return &advertisementRepository{fixtures: fixtures}
}

// ListAdvertisements retrieves fixture banners ordered by display order.
func (repo *advertisementRepository) ListAdvertisements(_ context.Context, activeOnly bool) ([]*entity.Advertisement, error) {
	ads := make([]*entity.Advertisement, 0, len(repo.fixtures.Advertisements))
	for _, ad := range repo.fixtures.Advertisements {
		if activeOnly && !ad.IsActive {
			continue
		}
		ads = append(ads, ad)
	}

	slices.SortFunc(ads, func(a, b *entity.Advertisement) int {
		return a.DisplayOrder - b.DisplayOrder
	})

	return ads, nil
}

// FindAdvertisementByID retrieves a fixture banner by its unique ID.
func (repo *advertisementRepository) FindAdvertisementByID(_ context.Context, id uuid.UUID) (*entity.Advertisement, error) {
	for _, ad := range repo.fixtures.Advertisements {
		if ad.ID == id {
			return ad, nil
		}
	}

	return nil, repository.ErrAdvertisementNotFound
}

// CreateAdvertisement is unavailable without a database.
func (repo *advertisementRepository) CreateAdvertisement(_ context.Context, _ *entity.Advertisement) error {
	return domainerrors.ErrServiceNotConfigured.WrapMessage("advertisement writes require a database")
}

// UpdateAdvertisement is unavailable without a database.
func (repo *advertisementRepository) UpdateAdvertisement(_ context.Context, _ *entity.Advertisement) error {
	return domainerrors.ErrServiceNotConfigured.WrapMessage("advertisement writes require a database")
}

// UpdateDisplayOrder is unavailable without a database.
func (repo *advertisementRepository) UpdateDisplayOrder(_ context.Context, _ uuid.UUID, _ int) error {
	return domainerrors.ErrServiceNotConfigured.WrapMessage("advertisement writes require a database")
}

// DeleteAdvertisement is unavailable without a database.
func (repo *advertisementRepository) DeleteAdvertisement(_ context.Context, _ uuid.UUID) error {
	return domainerrors.ErrServiceNotConfigured.WrapMessage("advertisement writes require a database")
}
