package impl

import (
	"context"
	"testing"
	"time"

	"dealhub/internal/domain/entity"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionService(refreshRepo repository.RefreshTokenRepository) *sessionService {
	return NewSessionService(SessionServiceParams{
		RefreshTokenRepo: refreshRepo,
		Logger:           newDiscardLogger(),
	}).(*sessionService)
}

func TestSessionService_GetActiveSessions_FlagsExpired(t *testing.T) {
	refreshRepo := new(mockRefreshTokenRepository)
	svc := newSessionService(refreshRepo)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	tokens := []*entity.RefreshToken{
		{ID: uuid.New(), UserID: userID, CreatedAt: now.Add(-time.Hour), ExpiresAt: now.Add(time.Hour)},
		{ID: uuid.New(), UserID: userID, CreatedAt: now.Add(-48 * time.Hour), ExpiresAt: now.Add(-time.Hour)},
	}
	refreshRepo.On("FindRefreshTokensByUserID", ctx, userID).Return(tokens, nil)

	sessions, err := svc.GetActiveSessions(ctx, userID)

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.True(t, sessions[0].IsActive)
	assert.False(t, sessions[1].IsActive)
}

func TestSessionService_RevokeSession_Success(t *testing.T) {
	refreshRepo := new(mockRefreshTokenRepository)
	svc := newSessionService(refreshRepo)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	refreshRepo.On("FindRefreshTokenByID", ctx, sessionID).Return(&entity.RefreshToken{ID: sessionID, UserID: userID}, nil)
	refreshRepo.On("DeleteRefreshToken", ctx, sessionID).Return(nil)

	err := svc.RevokeSession(ctx, userID, sessionID)

	require.NoError(t, err)
	refreshRepo.AssertExpectations(t)
}

func TestSessionService_RevokeSession_OtherUsersSessionLooksMissing(t *testing.T) {
	refreshRepo := new(mockRefreshTokenRepository)
	svc := newSessionService(refreshRepo)

	ctx := context.Background()
	sessionID := uuid.New()
	refreshRepo.On("FindRefreshTokenByID", ctx, sessionID).Return(&entity.RefreshToken{ID: sessionID, UserID: uuid.New()}, nil)

	err := svc.RevokeSession(ctx, uuid.New(), sessionID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenNotFound))
	refreshRepo.AssertNotCalled(t, "DeleteRefreshToken", mock.Anything, mock.Anything)
}

func TestSessionService_RevokeSession_NotFound(t *testing.T) {
	refreshRepo := new(mockRefreshTokenRepository)
	svc := newSessionService(refreshRepo)

	ctx := context.Background()
	sessionID := uuid.New()
	refreshRepo.On("FindRefreshTokenByID", ctx, sessionID).Return(nil, repository.ErrRefreshTokenNotFound)

	err := svc.RevokeSession(ctx, uuid.New(), sessionID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenNotFound))
}

func TestSessionService_RevokeAllOtherSessions_KeepsCurrent(t *testing.T) {
	refreshRepo := new(mockRefreshTokenRepository)
	svc := newSessionService(refreshRepo)

	ctx := context.Background()
	userID := uuid.New()
	currentID := uuid.New()
	otherA := uuid.New()
	otherB := uuid.New()
	tokens := []*entity.RefreshToken{
		{ID: otherA, UserID: userID},
		{ID: currentID, UserID: userID},
		{ID: otherB, UserID: userID},
	}
	refreshRepo.On("FindRefreshTokensByUserID", ctx, userID).Return(tokens, nil)
	refreshRepo.On("DeleteRefreshToken", ctx, otherA).Return(nil)
	refreshRepo.On("DeleteRefreshToken", ctx, otherB).Return(nil)

	err := svc.RevokeAllOtherSessions(ctx, userID, currentID)

	require.NoError(t, err)
	refreshRepo.AssertExpectations(t)
	refreshRepo.AssertNotCalled(t, "DeleteRefreshToken", ctx, currentID)
}

func TestSessionService_RevokeAllSessions_Success(t *testing.T) {
	refreshRepo := new(mockRefreshTokenRepository)
	svc := newSessionService(refreshRepo)

	ctx := context.Background()
	userID := uuid.New()
	refreshRepo.On("DeleteRefreshTokensByUserID", ctx, userID).Return(nil)

	require.NoError(t, svc.RevokeAllSessions(ctx, userID))
	refreshRepo.AssertExpectations(t)
}

func TestSessionService_CleanupExpiredSessions_Error(t *testing.T) {
	refreshRepo := new(mockRefreshTokenRepository)
	svc := newSessionService(refreshRepo)

	ctx := context.Background()
	refreshRepo.On("DeleteExpiredRefreshTokens", ctx).Return(assert.AnError)

	assert.Error(t, svc.CleanupExpiredSessions(ctx))
}
