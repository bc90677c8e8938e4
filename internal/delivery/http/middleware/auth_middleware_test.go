package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dealhub/internal/domain/entity"
	"dealhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

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

type mockAdminUsecase struct{ mock.Mock }

func (m *mockAdminUsecase) IsAdmin(ctx context.Context, userID uuid.UUID) bool {
	return m.Called(ctx, userID).Bool(0)
}

func (m *mockAdminUsecase) GetAdminForUser(ctx context.Context, userID uuid.UUID) (*entity.AdminUser, error) {
	args := m.Called(ctx, userID)
	admin, _ := args.Get(0).(*entity.AdminUser)

	return admin, args.Error(1)
}

func (m *mockAdminUsecase) ListAdmins(ctx context.Context) ([]*entity.AdminUser, error) {
	args := m.Called(ctx)
	admins, _ := args.Get(0).([]*entity.AdminUser)

	return admins, args.Error(1)
}

func (m *mockAdminUsecase) MakeAdmin(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.AdminUser, error) {
	args := m.Called(ctx, userID, role)
	admin, _ := args.Get(0).(*entity.AdminUser)

	return admin, args.Error(1)
}

func (m *mockAdminUsecase) RemoveAdmin(ctx context.Context, actorUserID, grantID uuid.UUID) error {
	return m.Called(ctx, actorUserID, grantID).Error(0)
}

// adminChain runs a request through Authenticate and RequireAdmin, the
// same chain the back-office route group uses.
func adminChain(t *testing.T, tokenSvc *mockTokenService, adminUc *mockAdminUsecase, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	m := NewAuthMiddleware(tokenSvc, adminUc, newDiscardLogger())

	reached := false
	handler := m.Authenticate(m.RequireAdmin(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/deals", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))

	return rec, reached
}

func TestAuthMiddleware_AnonymousGetsUnauthorized(t *testing.T) {
	tokenSvc := new(mockTokenService)
	adminUc := new(mockAdminUsecase)

	rec, reached := adminChain(t, tokenSvc, adminUc, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	tokenSvc.AssertNotCalled(t, "ValidateAccessToken", mock.Anything)
	adminUc.AssertNotCalled(t, "IsAdmin", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_MalformedHeaderGetsUnauthorized(t *testing.T) {
	tokenSvc := new(mockTokenService)
	adminUc := new(mockAdminUsecase)

	rec, reached := adminChain(t, tokenSvc, adminUc, "token-without-bearer-prefix")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	tokenSvc.AssertNotCalled(t, "ValidateAccessToken", mock.Anything)
}

func TestAuthMiddleware_InvalidTokenGetsUnauthorized(t *testing.T) {
	tokenSvc := new(mockTokenService)
	adminUc := new(mockAdminUsecase)

	tokenSvc.On("ValidateAccessToken", "expired").Return(nil, assert.AnError)

	rec, reached := adminChain(t, tokenSvc, adminUc, "Bearer expired")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	adminUc.AssertNotCalled(t, "IsAdmin", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_AuthenticatedNonAdminGetsForbidden(t *testing.T) {
	tokenSvc := new(mockTokenService)
	adminUc := new(mockAdminUsecase)
	userID := uuid.New()

	tokenSvc.On("ValidateAccessToken", "valid-token").Return(&service.Claims{UserID: userID}, nil)
	adminUc.On("IsAdmin", mock.Anything, userID).Return(false)

	rec, reached := adminChain(t, tokenSvc, adminUc, "Bearer valid-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
	adminUc.AssertExpectations(t)
}

func TestAuthMiddleware_AdminPassesThrough(t *testing.T) {
	tokenSvc := new(mockTokenService)
	adminUc := new(mockAdminUsecase)
	userID := uuid.New()

	tokenSvc.On("ValidateAccessToken", "valid-token").Return(&service.Claims{UserID: userID}, nil)
	adminUc.On("IsAdmin", mock.Anything, userID).Return(true)

	rec, reached := adminChain(t, tokenSvc, adminUc, "Bearer valid-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestAuthMiddleware_AuthenticateStoresIdentity(t *testing.T) {
	tokenSvc := new(mockTokenService)
	userID := uuid.New()
	tokenSvc.On("ValidateAccessToken", "valid-token").Return(&service.Claims{UserID: userID, Roles: []string{"editor"}}, nil)

	m := NewAuthMiddleware(tokenSvc, new(mockAdminUsecase), newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(func(c echo.Context) error {
		gotID, ok := UserIDFromContext(c)
		require.True(t, ok)
		assert.Equal(t, userID, gotID)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
