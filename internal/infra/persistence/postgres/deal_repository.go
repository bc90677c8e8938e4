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

// dealRepository implements the domain.DealRepository interface.
type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository is the constructor for dealRepository.
func NewDealRepository(db *gorm.DB) repository.DealRepository {
	return &dealRepository{db: db}
}

// ListDeals retrieves deals matching the filter, ordered by created_at DESC.
// Set filter fields are combined conjunctively.
func (repo *dealRepository) ListDeals(ctx context.Context, filter repository.DealFilter) ([]*entity.Deal, error) {
	query := repo.db.WithContext(ctx).Model(&model.DealModel{})

	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.StoreID != nil {
		query = query.Where("store_id = ?", *filter.StoreID)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var dealMs []model.DealModel
	if err := query.Order("created_at DESC").Find(&dealMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list deals")
	}

	deals := make([]*entity.Deal, 0, len(dealMs))
	for i := range dealMs {
		deals = append(deals, toDealDomain(&dealMs[i]))
	}

	return deals, nil
}

// FindDealByID retrieves a deal by its unique ID.
func (repo *dealRepository) FindDealByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	var dealM model.DealModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dealM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDealNotFound
		}

		return nil, errors.Wrap(err, "failed to find deal by id")
	}

	return toDealDomain(&dealM), nil
}

// CreateDeal persists a new deal.
func (repo *dealRepository) CreateDeal(ctx context.Context, deal *entity.Deal) error {
	dealM := fromDealDomain(deal)

	if err := repo.db.WithContext(ctx).Create(dealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreNotFound.WrapMessage("invalid store reference for deal")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required deal information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create deal")
	}

	deal.ID = dealM.ID
	deal.CreatedAt = dealM.CreatedAt
	deal.UpdatedAt = dealM.UpdatedAt

	return nil
}

// UpdateDeal modifies an existing deal.
func (repo *dealRepository) UpdateDeal(ctx context.Context, deal *entity.Deal) error {
	dealM := fromDealDomain(deal)

	if err := repo.db.WithContext(ctx).Save(dealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreNotFound.WrapMessage("invalid store reference for deal")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update deal")
	}

	deal.UpdatedAt = dealM.UpdatedAt

	return nil
}

// DeleteDeal removes a deal by its ID.
func (repo *dealRepository) DeleteDeal(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DealModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete deal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

// IncrementUsedCount atomically bumps the deal's used counter by one.
func (repo *dealRepository) IncrementUsedCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Where("id = ?", id).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment deal used count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDealDomain converts a GORM DealModel to a domain Deal entity.
func toDealDomain(data *model.DealModel) *entity.Deal {
	if data == nil {
		return nil
	}

	return &entity.Deal{
		ID:            data.ID,
		Title:         data.Title,
		Description:   data.Description,
		Discount:      data.Discount,
		Code:          data.Code,
		Type:          entity.DealType(data.Type),
		StoreID:       data.StoreID,
		Category:      data.Category,
		URL:           data.URL,
		Featured:      data.Featured,
		Verified:      data.Verified,
		UsedCount:     data.UsedCount,
		Price:         data.Price,
		OriginalPrice: data.OriginalPrice,
		ProductImage:  data.ProductImage,
		ExpiresAt:     data.ExpiresAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromDealDomain converts a domain Deal entity to a GORM DealModel for persistence.
func fromDealDomain(data *entity.Deal) *model.DealModel {
	if data == nil {
		return nil
	}

	return &model.DealModel{
		ID:            data.ID,
		Title:         data.Title,
		Description:   data.Description,
		Discount:      data.Discount,
		Code:          data.Code,
		Type:          data.Type.String(),
		StoreID:       data.StoreID,
		Category:      data.Category,
		URL:           data.URL,
		Featured:      data.Featured,
		Verified:      data.Verified,
		UsedCount:     data.UsedCount,
		Price:         data.Price,
		OriginalPrice: data.OriginalPrice,
		ProductImage:  data.ProductImage,
		ExpiresAt:     data.ExpiresAt,
	}
}
