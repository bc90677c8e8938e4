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

// adminRepository implements the domain.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// FindAdminByUserID retrieves the grant held by a user, if any.
func (repo *adminRepository) FindAdminByUserID(ctx context.Context, userID uuid.UUID) (*entity.AdminUser, error) {
	var adminM model.AdminUserModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&adminM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin grant by user id")
	}

	return toAdminDomain(&adminM), nil
}

// FindAdminByID retrieves a grant record by its unique ID.
func (repo *adminRepository) FindAdminByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	var adminM model.AdminUserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&adminM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin grant by id")
	}

	return toAdminDomain(&adminM), nil
}

// ListAdmins retrieves all grant records, oldest first.
func (repo *adminRepository) ListAdmins(ctx context.Context) ([]*entity.AdminUser, error) {
	var adminMs []model.AdminUserModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&adminMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admin grants")
	}

	admins := make([]*entity.AdminUser, 0, len(adminMs))
	for i := range adminMs {
		admins = append(admins, toAdminDomain(&adminMs[i]))
	}

	return admins, nil
}

// CreateAdmin persists a new grant. Returns ErrDuplicateAdmin when the
// user already holds one.
func (repo *adminRepository) CreateAdmin(ctx context.Context, admin *entity.AdminUser) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAdmin
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference for admin grant")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin grant")
	}

	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt

	return nil
}

// DeleteAdmin removes a grant record by its unique ID.
func (repo *adminRepository) DeleteAdmin(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AdminUserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete admin grant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAdminDomain converts a GORM AdminUserModel to a domain AdminUser entity.
func toAdminDomain(data *model.AdminUserModel) *entity.AdminUser {
	if data == nil {
		return nil
	}

	return &entity.AdminUser{
		ID:        data.ID,
		UserID:    data.UserID,
		Role:      entity.Role(data.Role),
		CreatedAt: data.CreatedAt,
	}
}

// fromAdminDomain converts a domain AdminUser entity to a GORM AdminUserModel.
func fromAdminDomain(data *entity.AdminUser) *model.AdminUserModel {
	if data == nil {
		return nil
	}

	return &model.AdminUserModel{
		ID:     data.ID,
		UserID: data.UserID,
		Role:   data.Role.String(),
	}
}
