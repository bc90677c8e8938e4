// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups deals and stores for browsing.
// Slug is unique and serves as the canonical reference everywhere a deal
// or store points at a category.
type Category struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the category.
	Name      string    // Human-readable name, e.g. "Electronics".
	Slug      string    // URL-safe unique key, e.g. "electronics".
	Icon      string    // Optional icon identifier for the client.
	CreatedAt time.Time // Timestamp of when this category was created.
}
