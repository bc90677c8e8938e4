// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a deal a user saved for later.
// The (UserID, DealID) pair is unique; saving twice is a no-op.
type Favorite struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the favorite.
	UserID    uuid.UUID // The user who saved the deal.
	DealID    uuid.UUID // The deal that was saved.
	CreatedAt time.Time // Timestamp of when the deal was saved.
}
