package impl

import (
	"context"
	"testing"
	"time"

	"dealhub/config"
	"dealhub/internal/domain/entity"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"
	"dealhub/internal/domain/service"
	"dealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	tx          *stubTxManager
	userRepo    *mockUserRepository
	authRepo    *mockAuthRepository
	refreshRepo *mockRefreshTokenRepository
	hasher      *mockPasswordHasher
	tokens      *mockTokenService
	oauth       *mockOAuthAuthService
}

func newUserService(cfg *config.Config) (*userService, *userServiceMocks) {
	mocks := &userServiceMocks{
		userRepo:    new(mockUserRepository),
		authRepo:    new(mockAuthRepository),
		refreshRepo: new(mockRefreshTokenRepository),
		hasher:      new(mockPasswordHasher),
		tokens:      new(mockTokenService),
		oauth:       new(mockOAuthAuthService),
	}
	mocks.tx = &stubTxManager{factory: &stubRepoFactory{
		userRepo:    mocks.userRepo,
		authRepo:    mocks.authRepo,
		refreshRepo: mocks.refreshRepo,
	}}

	svc := NewUserService(UserServiceParams{
		TxManager:         mocks.tx,
		RefreshTokenRepo:  mocks.refreshRepo,
		Hasher:            mocks.hasher,
		TokenService:      mocks.tokens,
		GoogleAuthService: mocks.oauth,
		Config:            cfg,
		Logger:            newDiscardLogger(),
	}).(*userService)

	return svc, mocks
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	mocks.hasher.On("Hash", "s3cret-pass").Return("hashed", nil)
	mocks.authRepo.On("FindAuthentication", ctx, entity.ProviderEmail, "ada@example.com").Return(nil, repository.ErrAuthNotFound)
	mocks.userRepo.On("Create", ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.Email == "ada@example.com" && user.Name == "Ada"
	})).Return(nil)
	mocks.authRepo.On("CreateAuthentication", ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
		return auth.Provider == entity.ProviderEmail && auth.PasswordHash == "hashed"
	})).Return(nil)

	out, err := svc.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", out.User.Email)
	mocks.authRepo.AssertExpectations(t)
}

func TestUserService_RegisterUser_EmailTaken(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	mocks.hasher.On("Hash", "s3cret-pass").Return("hashed", nil)
	mocks.authRepo.On("FindAuthentication", ctx, entity.ProviderEmail, "ada@example.com").
		Return(&entity.Authentication{Provider: entity.ProviderEmail}, nil)

	_, err := svc.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "s3cret-pass",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	mocks.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	cfg := newTestConfig(0)
	cfg.PasswordStrength = &config.PasswordStrengthConfig{MinLength: 12, RequireNumbers: true}
	svc, mocks := newUserService(cfg)

	_, err := svc.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "short",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	mocks.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	userID := uuid.New()
	mocks.authRepo.On("FindAuthentication", ctx, entity.ProviderEmail, "ada@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	mocks.hasher.On("Check", "s3cret-pass", "hashed").Return(true)
	mocks.userRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID, Email: "ada@example.com"}, nil)
	mocks.tokens.On("GenerateTokens", userID, mock.Anything, false).Return("access-token", "refresh-token", nil)
	mocks.tokens.On("HashToken", "refresh-token").Return("refresh-hash")
	mocks.tokens.On("GetRefreshTokenDuration", false).Return(7 * 24 * time.Hour)
	mocks.refreshRepo.On("CreateRefreshToken", ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
		return token.UserID == userID && token.TokenHash == "refresh-hash"
	})).Return(nil)

	out, err := svc.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	mocks.refreshRepo.AssertExpectations(t)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	mocks.authRepo.On("FindAuthentication", ctx, entity.ProviderEmail, "ada@example.com").
		Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)
	mocks.hasher.On("Check", "wrong-pass", "hashed").Return(false)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong-pass"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	mocks.tokens.AssertNotCalled(t, "GenerateTokens", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Login_UnknownEmailLooksLikeBadCredentials(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	mocks.authRepo.On("FindAuthentication", ctx, entity.ProviderEmail, "ghost@example.com").
		Return(nil, repository.ErrAuthNotFound)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_SessionLimitExceeded(t *testing.T) {
	svc, mocks := newUserService(newTestConfig(2))

	ctx := context.Background()
	userID := uuid.New()
	mocks.authRepo.On("FindAuthentication", ctx, entity.ProviderEmail, "ada@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	mocks.hasher.On("Check", "s3cret-pass", "hashed").Return(true)
	mocks.userRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID}, nil)
	mocks.tokens.On("GenerateTokens", userID, mock.Anything, false).Return("access-token", "refresh-token", nil)
	mocks.userRepo.On("AcquireSessionMutex", ctx, userID).Return(nil)
	mocks.refreshRepo.On("CountActiveSessionsByUserID", ctx, userID).Return(2, nil)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "s3cret-pass"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
	mocks.refreshRepo.AssertNotCalled(t, "CreateRefreshToken", mock.Anything, mock.Anything)
}

func TestUserService_Login_RememberMeExtendsTokenLifetime(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	userID := uuid.New()
	mocks.authRepo.On("FindAuthentication", ctx, entity.ProviderEmail, "ada@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	mocks.hasher.On("Check", "s3cret-pass", "hashed").Return(true)
	mocks.userRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID}, nil)
	mocks.tokens.On("GenerateTokens", userID, mock.Anything, true).Return("access-token", "refresh-token", nil)
	mocks.tokens.On("HashToken", "refresh-token").Return("refresh-hash")
	mocks.tokens.On("GetRefreshTokenDuration", true).Return(30 * 24 * time.Hour)
	mocks.refreshRepo.On("CreateRefreshToken", ctx, mock.Anything).Return(nil)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "s3cret-pass", RememberMe: true})

	require.NoError(t, err)
	mocks.tokens.AssertExpectations(t)
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	userID := uuid.New()
	mocks.tokens.On("ValidateRefreshToken", "refresh-token").Return(&service.Claims{UserID: userID}, nil)
	mocks.tokens.On("HashToken", "refresh-token").Return("refresh-hash")
	mocks.refreshRepo.On("FindRefreshTokenByHash", ctx, "refresh-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "refresh-hash"}, nil)
	mocks.userRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID}, nil)
	mocks.tokens.On("GenerateTokens", userID, mock.Anything, false).Return("new-access-token", "unused", nil)

	out, err := svc.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", out.AccessToken)
}

func TestUserService_RefreshToken_RevokedSessionCannotRefresh(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	mocks.tokens.On("ValidateRefreshToken", "refresh-token").Return(&service.Claims{UserID: uuid.New()}, nil)
	mocks.tokens.On("HashToken", "refresh-token").Return("refresh-hash")
	mocks.refreshRepo.On("FindRefreshTokenByHash", ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := svc.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	mocks.tokens.AssertNotCalled(t, "GenerateTokens", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_RefreshToken_InvalidToken(t *testing.T) {
	svc, mocks := newUserService(nil)

	mocks.tokens.On("ValidateRefreshToken", "garbage").Return(nil, assert.AnError)

	_, err := svc.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	assert.False(t, mocks.tx.executed)
}

func TestUserService_Logout_InvalidTokenStillDeletesHash(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	mocks.tokens.On("ValidateRefreshToken", "expired-token").Return(nil, assert.AnError)
	mocks.tokens.On("HashToken", "expired-token").Return("expired-hash")
	mocks.refreshRepo.On("DeleteRefreshTokenByHash", ctx, "expired-hash").Return(nil)

	require.NoError(t, svc.Logout(ctx, &usecase.LogoutInput{RefreshToken: "expired-token"}))
	mocks.refreshRepo.AssertExpectations(t)
}

func TestUserService_Logout_TokenAlreadyAbsent(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	mocks.tokens.On("ValidateRefreshToken", "refresh-token").Return(&service.Claims{UserID: uuid.New()}, nil)
	mocks.tokens.On("HashToken", "refresh-token").Return("refresh-hash")
	mocks.refreshRepo.On("DeleteRefreshTokenByHash", ctx, "refresh-hash").Return(repository.ErrRefreshTokenNotFound)

	require.NoError(t, svc.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"}))
}

func TestUserService_LogoutAllDevices_Success(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	userID := uuid.New()
	mocks.refreshRepo.On("DeleteRefreshTokensByUserID", ctx, userID).Return(nil)

	require.NoError(t, svc.LogoutAllDevices(ctx, userID))
	mocks.refreshRepo.AssertExpectations(t)
}

func strPtrUser(v string) *string { return &v }

func TestUserService_GetProfile_Success(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	userID := uuid.New()
	mocks.userRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID, Name: "Ada", AvatarURL: "https://cdn.example.com/ada.png"}, nil)

	user, err := svc.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "https://cdn.example.com/ada.png", user.AvatarURL)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	userID := uuid.New()
	mocks.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateProfile_ChangesNameAndAvatar(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	userID := uuid.New()
	mocks.userRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID, Name: "Ada", Email: "ada@example.com"}, nil)
	mocks.userRepo.On("Update", ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.Name == "Ada L." && user.AvatarURL == "https://cdn.example.com/new.png"
	})).Return(nil)

	user, err := svc.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Name:      strPtrUser("Ada L."),
		AvatarURL: strPtrUser("https://cdn.example.com/new.png"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada L.", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	mocks.userRepo.AssertExpectations(t)
}

func TestUserService_UpdateProfile_NilFieldsLeaveValuesUntouched(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	userID := uuid.New()
	mocks.userRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID, Name: "Ada", AvatarURL: "https://cdn.example.com/ada.png"}, nil)
	mocks.userRepo.On("Update", ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.Name == "Ada" && user.AvatarURL == "https://cdn.example.com/new.png"
	})).Return(nil)

	user, err := svc.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		AvatarURL: strPtrUser("https://cdn.example.com/new.png"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
}

func TestUserService_UpdateProfile_EmptyNameRejected(t *testing.T) {
	svc, mocks := newUserService(nil)

	_, err := svc.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{
		Name: strPtrUser(""),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.False(t, mocks.tx.executed)
}

func TestUserService_UpdateProfile_NotFound(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	userID := uuid.New()
	mocks.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := svc.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Name: strPtrUser("Ada L.")})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	mocks.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_GoogleCallback_CreatesUserOnFirstSignIn(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	mocks.oauth.On("VerifyIDToken", ctx, "google-id-token").Return(&service.OAuthUser{
		ID:    "google-sub-1",
		Email: "ada@example.com",
		Name:  "Ada",
	}, nil)
	mocks.authRepo.On("FindAuthentication", ctx, entity.ProviderGoogle, "google-sub-1").Return(nil, repository.ErrAuthNotFound)
	mocks.userRepo.On("Create", ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.Email == "ada@example.com"
	})).Return(nil)
	mocks.authRepo.On("CreateAuthentication", ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
		return auth.Provider == entity.ProviderGoogle && auth.ProviderUserID == "google-sub-1"
	})).Return(nil)
	mocks.tokens.On("GenerateTokens", mock.Anything, mock.Anything, false).Return("access-token", "refresh-token", nil)
	mocks.tokens.On("HashToken", "refresh-token").Return("refresh-hash")
	mocks.tokens.On("GetRefreshTokenDuration", false).Return(7 * 24 * time.Hour)
	mocks.refreshRepo.On("CreateRefreshToken", ctx, mock.Anything).Return(nil)

	out, err := svc.GoogleCallback(ctx, &usecase.GoogleCallbackInput{IDToken: "google-id-token"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	mocks.authRepo.AssertExpectations(t)
}

func TestUserService_GoogleCallback_InvalidIDToken(t *testing.T) {
	svc, mocks := newUserService(nil)

	ctx := context.Background()
	mocks.oauth.On("VerifyIDToken", ctx, "forged").Return(nil, assert.AnError)

	_, err := svc.GoogleCallback(ctx, &usecase.GoogleCallbackInput{IDToken: "forged"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
	assert.False(t, mocks.tx.executed)
}
