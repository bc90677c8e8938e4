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

// favoriteRepository implements the domain.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// CreateFavorite persists a new favorite. Returns ErrDuplicateFavorite when
// the (user, deal) pair already exists.
func (repo *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDealNotFound.WrapMessage("invalid deal reference for favorite")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// DeleteFavorite removes the favorite for the given (user, deal) pair.
func (repo *favoriteRepository) DeleteFavorite(ctx context.Context, userID, dealID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND deal_id = ?", userID, dealID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// FindFavoritesByUser retrieves a user's favorites, newest first.
func (repo *favoriteRepository) FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	var favoriteMs []model.FavoriteModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteMs))
	for i := range favoriteMs {
		favorites = append(favorites, toFavoriteDomain(&favoriteMs[i]))
	}

	return favorites, nil
}

// FindUserIDsByStore retrieves the distinct IDs of users who favorited any
// deal of the given store. Used for deal alert pushes.
func (repo *favoriteRepository) FindUserIDsByStore(ctx context.Context, storeID uuid.UUID) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Distinct("favorites.user_id").
		Joins("JOIN deals ON deals.id = favorites.deal_id").
		Where("deals.store_id = ?", storeID).
		Pluck("favorites.user_id", &userIDs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user ids by store")
	}

	return userIDs, nil
}

// --- Mapper Functions ---

// toFavoriteDomain converts a GORM FavoriteModel to a domain Favorite entity.
func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:        data.ID,
		UserID:    data.UserID,
		DealID:    data.DealID,
		CreatedAt: data.CreatedAt,
	}
}

// fromFavoriteDomain converts a domain Favorite entity to a GORM FavoriteModel.
func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:     data.ID,
		UserID: data.UserID,
		DealID: data.DealID,
	}
}
