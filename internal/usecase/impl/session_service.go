// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "dealhub/internal/delivery/context"
	"dealhub/internal/domain/entity"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"
	"dealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	refreshTokenRepo repository.RefreshTokenRepository
	logger           *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	RefreshTokenRepo repository.RefreshTokenRepository
	Logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		refreshTokenRepo: params.RefreshTokenRepo,
		logger:           params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetActiveSessions lists all sessions belonging to a user.
func (srv *sessionService) GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.SessionInfo, error) {
	tokens, err := srv.refreshTokenRepo.FindRefreshTokensByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list sessions", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to list sessions")
	}

	now := time.Now()
	sessions := make([]*entity.SessionInfo, 0, len(tokens))
	for _, token := range tokens {
		sessions = append(sessions, &entity.SessionInfo{
			ID:        token.ID,
			UserID:    token.UserID,
			CreatedAt: token.CreatedAt,
			ExpiresAt: token.ExpiresAt,
			IsActive:  token.ExpiresAt.After(now),
		})
	}

	return sessions, nil
}

// RevokeSession ends one session; the session must belong to the user.
func (srv *sessionService) RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	srv.log(ctx).Info("Revoking session", slog.Any("sessionID", sessionID), slog.Any("userID", userID))

	token, err := srv.refreshTokenRepo.FindRefreshTokenByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrRefreshTokenNotFound.WrapMessage("session revocation failed")
		}

		return errors.Wrap(err, "failed to find session for revocation")
	}

	// Another user's session is reported as missing, not forbidden, so
	// session IDs cannot be probed.
	if token.UserID != userID {
		return domainerrors.ErrRefreshTokenNotFound.WrapMessage("session revocation failed")
	}

	if err := srv.refreshTokenRepo.DeleteRefreshToken(ctx, sessionID); err != nil {
		srv.log(ctx).Error("Failed to delete session", slog.Any("error", err), slog.Any("sessionID", sessionID))

		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// RevokeAllSessions ends every session the user has.
func (srv *sessionService) RevokeAllSessions(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Revoking all sessions", slog.Any("userID", userID))

	if err := srv.refreshTokenRepo.DeleteRefreshTokensByUserID(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to delete all sessions", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to delete all sessions")
	}

	return nil
}

// RevokeAllOtherSessions ends every session except the current one.
func (srv *sessionService) RevokeAllOtherSessions(ctx context.Context, userID uuid.UUID, currentSessionID uuid.UUID) error {
	srv.log(ctx).Info("Revoking other sessions", slog.Any("userID", userID), slog.Any("currentSessionID", currentSessionID))

	tokens, err := srv.refreshTokenRepo.FindRefreshTokensByUserID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list sessions for revocation")
	}

	for _, token := range tokens {
		if token.ID == currentSessionID {
			continue
		}
		if err := srv.refreshTokenRepo.DeleteRefreshToken(ctx, token.ID); err != nil {
			srv.log(ctx).Error("Failed to delete session", slog.Any("error", err), slog.Any("sessionID", token.ID))

			return errors.Wrap(err, "failed to delete session")
		}
	}

	return nil
}

// CleanupExpiredSessions removes expired sessions; called periodically.
func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) error {
	srv.log(ctx).Debug("Cleaning up expired sessions")

	if err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx); err != nil {
		srv.log(ctx).Error("Failed to clean up expired sessions", slog.Any("error", err))

		return errors.Wrap(err, "failed to clean up expired sessions")
	}

	return nil
}
