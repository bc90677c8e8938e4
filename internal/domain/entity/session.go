// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionInfo is a read model describing one logged-in session (one refresh token).
type SessionInfo struct {
	ID        uuid.UUID `json:"id"`         // The refresh token record ID identifying the session.
	UserID    uuid.UUID `json:"user_id"`    // The user the session belongs to.
	CreatedAt time.Time `json:"created_at"` // When the session was established (login time).
	ExpiresAt time.Time `json:"expires_at"` // When the session's refresh token expires.
	IsActive  bool      `json:"is_active"`  // Whether the session is still usable.
}
