// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoreType represents where a store operates.
type StoreType string

const (
	// StoreTypeOnline is a web-only store.
	StoreTypeOnline StoreType = "online"
	// StoreTypeLocal is a brick-and-mortar store.
	StoreTypeLocal StoreType = "local"
	// StoreTypeBoth operates online and locally.
	StoreTypeBoth StoreType = "both"
)

// String returns the string representation of the StoreType.
func (t StoreType) String() string {
	return string(t)
}

// IsValid checks if the StoreType is a valid value.
func (t StoreType) IsValid() bool {
	switch t {
	case StoreTypeOnline, StoreTypeLocal, StoreTypeBoth:
		return true
	default:
		return false
	}
}

// Store represents a merchant whose deals are listed on the marketplace.
// DealCount is denormalized and maintained inside the same transaction
// that creates or deletes a deal.
type Store struct {
	ID          uuid.UUID  // The Global Unique Identifier (GUID) for the store.
	Name        string     // The store's display name.
	Logo        string     // Logo image URL served from blob storage.
	Category    string     // Category slug; the canonical category reference.
	CategoryID  *uuid.UUID // Optional foreign key to the Category row, used for joins.
	URL         string     // The store's website.
	StoreType   StoreType  // Where the store operates: online, local or both.
	Featured    bool       // Whether the store is promoted on the landing page.
	DealCount   int        // Denormalized count of the store's deals.
	Country     string     // Optional country code for local stores.
	Description string     // Short blurb shown on the store page.
	CreatedAt   time.Time  // Timestamp of when this store was listed.
	UpdatedAt   time.Time  // Timestamp of the last modification.
}
