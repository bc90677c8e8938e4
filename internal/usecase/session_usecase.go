// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"dealhub/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	// GetActiveSessions lists all sessions belonging to a user.
	GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.SessionInfo, error)

	// RevokeSession ends one session; the session must belong to the user.
	RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error

	// RevokeAllSessions ends every session the user has.
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) error

	// RevokeAllOtherSessions ends every session except the current one.
	RevokeAllOtherSessions(ctx context.Context, userID uuid.UUID, currentSessionID uuid.UUID) error

	// CleanupExpiredSessions removes expired sessions; called periodically.
	CleanupExpiredSessions(ctx context.Context) error
}
