package memory

import (
	"context"

	"dealhub/internal/domain/entity"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"

	"github.com/google/uuid"
)

// errNoDatabase is the shared failure for every operation that cannot
// work without persistent storage.
func errNoDatabase() error {
	return domainerrors.ErrServiceNotConfigured.WrapMessage("this operation requires a database")
}

// unconfiguredTransactionManager refuses every transactional write.
type unconfiguredTransactionManager struct{}

// NewTransactionManager returns a TransactionManager for demo mode.
// Execute never runs the callback.
func NewTransactionManager() repository.TransactionManager {
	return &unconfiguredTransactionManager{}
}

func (m *unconfiguredTransactionManager) Execute(_ context.Context, _ func(repository.RepositoryFactory) error) error {
	return errNoDatabase()
}

// unconfiguredRefreshTokenRepository backs the session surface in demo mode.
type unconfiguredRefreshTokenRepository struct{}

// NewRefreshTokenRepository returns a RefreshTokenRepository for demo mode.
func NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return &unconfiguredRefreshTokenRepository{}
}

func (repo *unconfiguredRefreshTokenRepository) CreateRefreshToken(_ context.Context, _ *entity.RefreshToken) error {
	return errNoDatabase()
}

func (repo *unconfiguredRefreshTokenRepository) FindRefreshTokenByHash(_ context.Context, _ string) (*entity.RefreshToken, error) {
	return nil, errNoDatabase()
}

func (repo *unconfiguredRefreshTokenRepository) FindRefreshTokenByID(_ context.Context, _ uuid.UUID) (*entity.RefreshToken, error) {
	return nil, errNoDatabase()
}

func (repo *unconfiguredRefreshTokenRepository) FindRefreshTokensByUserID(_ context.Context, _ uuid.UUID) ([]*entity.RefreshToken, error) {
	return nil, errNoDatabase()
}

func (repo *unconfiguredRefreshTokenRepository) DeleteRefreshToken(_ context.Context, _ uuid.UUID) error {
	return errNoDatabase()
}

func (repo *unconfiguredRefreshTokenRepository) DeleteRefreshTokenByHash(_ context.Context, _ string) error {
	return errNoDatabase()
}

func (repo *unconfiguredRefreshTokenRepository) DeleteRefreshTokensByUserID(_ context.Context, _ uuid.UUID) error {
	return errNoDatabase()
}

func (repo *unconfiguredRefreshTokenRepository) DeleteExpiredRefreshTokens(_ context.Context) error {
	return errNoDatabase()
}

func (repo *unconfiguredRefreshTokenRepository) CountActiveSessionsByUserID(_ context.Context, _ uuid.UUID) (int, error) {
	return 0, errNoDatabase()
}

// unconfiguredFavoriteRepository backs the favorites surface in demo mode.
type unconfiguredFavoriteRepository struct{}

// NewFavoriteRepository returns a FavoriteRepository for demo mode.
func NewFavoriteRepository() repository.FavoriteRepository {
	return &unconfiguredFavoriteRepository{}
}

func (repo *unconfiguredFavoriteRepository) CreateFavorite(_ context.Context, _ *entity.Favorite) error {
	return errNoDatabase()
}

func (repo *unconfiguredFavoriteRepository) DeleteFavorite(_ context.Context, _, _ uuid.UUID) error {
	return errNoDatabase()
}

func (repo *unconfiguredFavoriteRepository) FindFavoritesByUser(_ context.Context, _ uuid.UUID) ([]*entity.Favorite, error) {
	return nil, errNoDatabase()
}

func (repo *unconfiguredFavoriteRepository) FindUserIDsByStore(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return nil, errNoDatabase()
}

// unconfiguredDeviceRepository backs device registration in demo mode.
type unconfiguredDeviceRepository struct{}

// NewDeviceRepository returns a DeviceRepository for demo mode.
func NewDeviceRepository() repository.DeviceRepository {
	return &unconfiguredDeviceRepository{}
}

func (repo *unconfiguredDeviceRepository) CreateDevice(_ context.Context, _ *entity.UserDevice) error {
	return errNoDatabase()
}

func (repo *unconfiguredDeviceRepository) FindDeviceByID(_ context.Context, _ uuid.UUID) (*entity.UserDevice, error) {
	return nil, errNoDatabase()
}

func (repo *unconfiguredDeviceRepository) FindActiveDevicesByUser(_ context.Context, _ uuid.UUID) ([]*entity.UserDevice, error) {
	return nil, errNoDatabase()
}

func (repo *unconfiguredDeviceRepository) FindDevicesForUsers(_ context.Context, _ []uuid.UUID) ([]*entity.UserDevice, error) {
	return nil, errNoDatabase()
}

func (repo *unconfiguredDeviceRepository) UpdateFCMToken(_ context.Context, _ uuid.UUID, _ string) error {
	return errNoDatabase()
}

func (repo *unconfiguredDeviceRepository) DeactivateByFCMTokens(_ context.Context, _ []string) error {
	return errNoDatabase()
}

func (repo *unconfiguredDeviceRepository) DeleteDevice(_ context.Context, _ uuid.UUID) error {
	return errNoDatabase()
}

// unconfiguredAdminRepository backs admin gating in demo mode. Lookups
// fail, which the admin usecase treats as "not an administrator".
type unconfiguredAdminRepository struct{}

// NewAdminRepository returns an AdminRepository for demo mode.
func NewAdminRepository() repository.AdminRepository {
	return &unconfiguredAdminRepository{}
}

func (repo *unconfiguredAdminRepository) FindAdminByUserID(_ context.Context, _ uuid.UUID) (*entity.AdminUser, error) {
	return nil, errNoDatabase()
}

func (repo *unconfiguredAdminRepository) FindAdminByID(_ context.Context, _ uuid.UUID) (*entity.AdminUser, error) {
	return nil, errNoDatabase()
}

func (repo *unconfiguredAdminRepository) ListAdmins(_ context.Context) ([]*entity.AdminUser, error) {
	return nil, errNoDatabase()
}

func (repo *unconfiguredAdminRepository) CreateAdmin(_ context.Context, _ *entity.AdminUser) error {
	return errNoDatabase()
}

func (repo *unconfiguredAdminRepository) DeleteAdmin(_ context.Context, _ uuid.UUID) error {
	return errNoDatabase()
}
