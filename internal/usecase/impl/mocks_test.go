package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"dealhub/config"
	"dealhub/internal/domain/entity"
	"dealhub/internal/domain/repository"
	"dealhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
	}
}

// stubTxManager runs the callback against a fixed repository factory,
// standing in for a database transaction.
type stubTxManager struct {
	factory  repository.RepositoryFactory
	executed bool
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.executed = true

	return fn(m.factory)
}

// stubRepoFactory hands out whichever repository doubles the test wired in.
type stubRepoFactory struct {
	userRepo     repository.UserRepository
	authRepo     repository.AuthRepository
	refreshRepo  repository.RefreshTokenRepository
	dealRepo     repository.DealRepository
	storeRepo    repository.StoreRepository
	categoryRepo repository.CategoryRepository
	adRepo       repository.AdvertisementRepository
	adminRepo    repository.AdminRepository
}

func (f *stubRepoFactory) UserRepo() repository.UserRepository                   { return f.userRepo }
func (f *stubRepoFactory) AuthRepo() repository.AuthRepository                   { return f.authRepo }
func (f *stubRepoFactory) RefreshTokenRepo() repository.RefreshTokenRepository   { return f.refreshRepo }
func (f *stubRepoFactory) DealRepo() repository.DealRepository                   { return f.dealRepo }
func (f *stubRepoFactory) StoreRepo() repository.StoreRepository                 { return f.storeRepo }
func (f *stubRepoFactory) CategoryRepo() repository.CategoryRepository           { return f.categoryRepo }
func (f *stubRepoFactory) AdvertisementRepo() repository.AdvertisementRepository { return f.adRepo }
func (f *stubRepoFactory) AdminRepo() repository.AdminRepository                 { return f.adminRepo }

// --- Repository doubles ---

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) AcquireSessionMutex(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockAuthRepository struct{ mock.Mock }

func (m *mockAuthRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	return m.Called(ctx, auth).Error(0)
}

func (m *mockAuthRepository) FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error) {
	args := m.Called(ctx, provider, providerUserID)
	auth, _ := args.Get(0).(*entity.Authentication)

	return auth, args.Error(1)
}

func (m *mockAuthRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockAuthRepository) FindRefreshTokenByHash(ctx context.Context, hash string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, hash)
	token, _ := args.Get(0).(*entity.RefreshToken)

	return token, args.Error(1)
}

func (m *mockAuthRepository) DeleteRefreshTokenByHash(ctx context.Context, hash string) error {
	return m.Called(ctx, hash).Error(0)
}

type mockRefreshTokenRepository struct{ mock.Mock }

func (m *mockRefreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockRefreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	token, _ := args.Get(0).(*entity.RefreshToken)

	return token, args.Error(1)
}

func (m *mockRefreshTokenRepository) FindRefreshTokenByID(ctx context.Context, id uuid.UUID) (*entity.RefreshToken, error) {
	args := m.Called(ctx, id)
	token, _ := args.Get(0).(*entity.RefreshToken)

	return token, args.Error(1)
}

func (m *mockRefreshTokenRepository) FindRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error) {
	args := m.Called(ctx, userID)
	tokens, _ := args.Get(0).([]*entity.RefreshToken)

	return tokens, args.Error(1)
}

func (m *mockRefreshTokenRepository) DeleteRefreshToken(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRefreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

func (m *mockRefreshTokenRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockRefreshTokenRepository) DeleteExpiredRefreshTokens(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockRefreshTokenRepository) CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)

	return args.Int(0), args.Error(1)
}

type mockDealRepository struct{ mock.Mock }

func (m *mockDealRepository) ListDeals(ctx context.Context, filter repository.DealFilter) ([]*entity.Deal, error) {
	args := m.Called(ctx, filter)
	deals, _ := args.Get(0).([]*entity.Deal)

	return deals, args.Error(1)
}

func (m *mockDealRepository) FindDealByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	args := m.Called(ctx, id)
	deal, _ := args.Get(0).(*entity.Deal)

	return deal, args.Error(1)
}

func (m *mockDealRepository) CreateDeal(ctx context.Context, deal *entity.Deal) error {
	return m.Called(ctx, deal).Error(0)
}

func (m *mockDealRepository) UpdateDeal(ctx context.Context, deal *entity.Deal) error {
	return m.Called(ctx, deal).Error(0)
}

func (m *mockDealRepository) DeleteDeal(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockDealRepository) IncrementUsedCount(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockStoreRepository struct{ mock.Mock }

func (m *mockStoreRepository) ListStores(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, error) {
	args := m.Called(ctx, filter)
	stores, _ := args.Get(0).([]*entity.Store)

	return stores, args.Error(1)
}

func (m *mockStoreRepository) FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	args := m.Called(ctx, id)
	store, _ := args.Get(0).(*entity.Store)

	return store, args.Error(1)
}

func (m *mockStoreRepository) CreateStore(ctx context.Context, store *entity.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *mockStoreRepository) UpdateStore(ctx context.Context, store *entity.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *mockStoreRepository) DeleteStore(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStoreRepository) AdjustDealCount(ctx context.Context, id uuid.UUID, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

type mockCategoryRepository struct{ mock.Mock }

func (m *mockCategoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]*entity.Category)

	return categories, args.Error(1)
}

func (m *mockCategoryRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*entity.Category)

	return category, args.Error(1)
}

func (m *mockCategoryRepository) FindCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	args := m.Called(ctx, slug)
	category, _ := args.Get(0).(*entity.Category)

	return category, args.Error(1)
}

func (m *mockCategoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepository) UpdateCategory(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockAdvertisementRepository struct{ mock.Mock }

func (m *mockAdvertisementRepository) ListAdvertisements(ctx context.Context, activeOnly bool) ([]*entity.Advertisement, error) {
	args := m.Called(ctx, activeOnly)
	ads, _ := args.Get(0).([]*entity.Advertisement)

	return ads, args.Error(1)
}

func (m *mockAdvertisementRepository) FindAdvertisementByID(ctx context.Context, id uuid.UUID) (*entity.Advertisement, error) {
	args := m.Called(ctx, id)
	ad, _ := args.Get(0).(*entity.Advertisement)

	return ad, args.Error(1)
}

func (m *mockAdvertisementRepository) CreateAdvertisement(ctx context.Context, ad *entity.Advertisement) error {
	return m.Called(ctx, ad).Error(0)
}

func (m *mockAdvertisementRepository) UpdateAdvertisement(ctx context.Context, ad *entity.Advertisement) error {
	return m.Called(ctx, ad).Error(0)
}

func (m *mockAdvertisementRepository) UpdateDisplayOrder(ctx context.Context, id uuid.UUID, displayOrder int) error {
	return m.Called(ctx, id, displayOrder).Error(0)
}

func (m *mockAdvertisementRepository) DeleteAdvertisement(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockAdminRepository struct{ mock.Mock }

func (m *mockAdminRepository) FindAdminByUserID(ctx context.Context, userID uuid.UUID) (*entity.AdminUser, error) {
	args := m.Called(ctx, userID)
	admin, _ := args.Get(0).(*entity.AdminUser)

	return admin, args.Error(1)
}

func (m *mockAdminRepository) FindAdminByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	args := m.Called(ctx, id)
	admin, _ := args.Get(0).(*entity.AdminUser)

	return admin, args.Error(1)
}

func (m *mockAdminRepository) ListAdmins(ctx context.Context) ([]*entity.AdminUser, error) {
	args := m.Called(ctx)
	admins, _ := args.Get(0).([]*entity.AdminUser)

	return admins, args.Error(1)
}

func (m *mockAdminRepository) CreateAdmin(ctx context.Context, admin *entity.AdminUser) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *mockAdminRepository) DeleteAdmin(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockFavoriteRepository struct{ mock.Mock }

func (m *mockFavoriteRepository) CreateFavorite(ctx context.Context, favorite *entity.Favorite) error {
	return m.Called(ctx, favorite).Error(0)
}

func (m *mockFavoriteRepository) DeleteFavorite(ctx context.Context, userID, dealID uuid.UUID) error {
	return m.Called(ctx, userID, dealID).Error(0)
}

func (m *mockFavoriteRepository) FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	args := m.Called(ctx, userID)
	favorites, _ := args.Get(0).([]*entity.Favorite)

	return favorites, args.Error(1)
}

func (m *mockFavoriteRepository) FindUserIDsByStore(ctx context.Context, storeID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, storeID)
	userIDs, _ := args.Get(0).([]uuid.UUID)

	return userIDs, args.Error(1)
}

type mockDeviceRepository struct{ mock.Mock }

func (m *mockDeviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	return m.Called(ctx, device).Error(0)
}

func (m *mockDeviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	args := m.Called(ctx, id)
	device, _ := args.Get(0).(*entity.UserDevice)

	return device, args.Error(1)
}

func (m *mockDeviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	args := m.Called(ctx, userID)
	devices, _ := args.Get(0).([]*entity.UserDevice)

	return devices, args.Error(1)
}

func (m *mockDeviceRepository) FindDevicesForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error) {
	args := m.Called(ctx, userIDs)
	devices, _ := args.Get(0).([]*entity.UserDevice)

	return devices, args.Error(1)
}

func (m *mockDeviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	return m.Called(ctx, deviceID, fcmToken).Error(0)
}

func (m *mockDeviceRepository) DeactivateByFCMTokens(ctx context.Context, tokens []string) error {
	return m.Called(ctx, tokens).Error(0)
}

func (m *mockDeviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- Domain service doubles ---

type mockTokenService struct{ mock.Mock }

func (m *mockTokenService) GenerateTokens(userID uuid.UUID, roles []string, rememberMe bool) (string, string, error) {
	args := m.Called(userID, roles, rememberMe)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (m *mockTokenService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (m *mockTokenService) HashToken(token string) string {
	return m.Called(token).String(0)
}

func (m *mockTokenService) GetRefreshTokenDuration(rememberMe bool) time.Duration {
	args := m.Called(rememberMe)
	duration, _ := args.Get(0).(time.Duration)

	return duration
}

type mockPasswordHasher struct{ mock.Mock }

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type mockOAuthAuthService struct{ mock.Mock }

func (m *mockOAuthAuthService) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	args := m.Called(ctx, idToken)
	user, _ := args.Get(0).(*service.OAuthUser)

	return user, args.Error(1)
}

func (m *mockOAuthAuthService) GetProvider() string {
	return m.Called().String(0)
}

type mockQRCodeService struct{ mock.Mock }

func (m *mockQRCodeService) GenerateRedemptionQR(dealID uuid.UUID, code string) ([]byte, error) {
	args := m.Called(dealID, code)
	png, _ := args.Get(0).([]byte)

	return png, args.Error(1)
}

func (m *mockQRCodeService) ParseRedemptionQR(qrData string) (uuid.UUID, string, error) {
	args := m.Called(qrData)
	id, _ := args.Get(0).(uuid.UUID)

	return id, args.String(1), args.Error(2)
}

type mockEventPublisher struct{ mock.Mock }

func (m *mockEventPublisher) PublishDealEvent(ctx context.Context, event *service.DealEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventPublisher) Close() error {
	return m.Called().Error(0)
}

type mockPushSender struct{ mock.Mock }

func (m *mockPushSender) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	args := m.Called(ctx, tokens, title, body, data)
	invalid, _ := args.Get(2).([]string)

	return args.Int(0), args.Int(1), invalid, args.Error(3)
}

func (m *mockPushSender) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	return m.Called(ctx, token, title, body, data).Error(0)
}

type mockStorageService struct{ mock.Mock }

func (m *mockStorageService) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)

	return args.String(0), args.Error(1)
}

func (m *mockStorageService) PublicURL(key string) string {
	return m.Called(key).String(0)
}

func (m *mockStorageService) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
