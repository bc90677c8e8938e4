// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"dealhub/internal/domain/entity"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"
	"dealhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// advertisementRepository implements the domain.AdvertisementRepository interface.
type advertisementRepository struct {
	db *gorm.DB
}

// NewAdvertisementRepository is the constructor for advertisementRepository.
func NewAdvertisementRepository(db *gorm.DB) repository.AdvertisementRepository {
	return &advertisementRepository{db: db}
}

// ListAdvertisements retrieves banners ordered by display_order ASC.
// When activeOnly is true, inactive banners are excluded.
func (repo *advertisementRepository) ListAdvertisements(ctx context.Context, activeOnly bool) ([]*entity.Advertisement, error) {
	query := repo.db.WithContext(ctx).Model(&model.AdvertisementModel{})

	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var adMs []model.AdvertisementModel
	if err := query.Order("display_order ASC").Find(&adMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list advertisements")
	}

	ads := make([]*entity.Advertisement, 0, len(adMs))
	for i := range adMs {
		ads = append(ads, toAdvertisementDomain(&adMs[i]))
	}

	return ads, nil
}

// FindAdvertisementByID retrieves a banner by its unique ID.
func (repo *advertisementRepository) FindAdvertisementByID(ctx context.Context, id uuid.UUID) (*entity.Advertisement, error) {
	var adM model.AdvertisementModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&adM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdvertisementNotFound
		}

		return nil, errors.Wrap(err, "failed to find advertisement by id")
	}

	return toAdvertisementDomain(&adM), nil
}

// CreateAdvertisement persists a new banner.
func (repo *advertisementRepository) CreateAdvertisement(ctx context.Context, ad *entity.Advertisement) error {
	adM := fromAdvertisementDomain(ad)

	if err := repo.db.WithContext(ctx).Create(adM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required advertisement information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create advertisement")
	}

	ad.ID = adM.ID
	ad.CreatedAt = adM.CreatedAt
	ad.UpdatedAt = adM.UpdatedAt

	return nil
}

// UpdateAdvertisement modifies an existing banner.
func (repo *advertisementRepository) UpdateAdvertisement(ctx context.Context, ad *entity.Advertisement) error {
	adM := fromAdvertisementDomain(ad)

	if err := repo.db.WithContext(ctx).Save(adM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update advertisement")
	}

	ad.UpdatedAt = adM.UpdatedAt

	return nil
}

// UpdateDisplayOrder sets the display position of a single banner.
// Reordering two banners runs both updates inside one transaction.
func (repo *advertisementRepository) UpdateDisplayOrder(ctx context.Context, id uuid.UUID, displayOrder int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdvertisementModel{}).
		Where("id = ?", id).
		UpdateColumn("display_order", displayOrder)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update advertisement display order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdvertisementNotFound
	}

	return nil
}

// DeleteAdvertisement removes a banner by its ID.
func (repo *advertisementRepository) DeleteAdvertisement(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AdvertisementModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete advertisement")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdvertisementNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAdvertisementDomain converts a GORM AdvertisementModel to a domain entity.
func toAdvertisementDomain(data *model.AdvertisementModel) *entity.Advertisement {
	if data == nil {
		return nil
	}

	return &entity.Advertisement{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		CTAText:      data.CTAText,
		CTALink:      data.CTALink,
		BgColor:      data.BgColor,
		ImageURL:     data.ImageURL,
		IsActive:     data.IsActive,
		DisplayOrder: data.DisplayOrder,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAdvertisementDomain converts a domain entity to a GORM AdvertisementModel.
func fromAdvertisementDomain(data *entity.Advertisement) *model.AdvertisementModel {
	if data == nil {
		return nil
	}

	return &model.AdvertisementModel{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		CTAText:      data.CTAText,
		CTALink:      data.CTALink,
		BgColor:      data.BgColor,
		ImageURL:     data.ImageURL,
		IsActive:     data.IsActive,
		DisplayOrder: data.DisplayOrder,
	}
}
