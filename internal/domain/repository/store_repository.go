// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dealhub/internal/domain/entity"
	"dealhub/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")
)

// StoreFilter narrows a store listing. Every field is optional; set fields
// are combined conjunctively (AND).
type StoreFilter struct {
	Featured  *bool             // Only stores with this featured flag.
	Category  *string           // Only stores with this category slug.
	StoreType *entity.StoreType // Only stores of this type.
	Country   *string           // Only stores in this country.
	Search    string            // Case-insensitive substring match on name OR description.
	Limit     int               // Maximum rows returned; 0 means the repository default.
}

// StoreRepository defines the interface for store-related database operations.
// Listings are always ordered by name, ascending.
type StoreRepository interface {
	// ListStores retrieves stores matching the filter, ordered by name ASC.
	ListStores(ctx context.Context, filter StoreFilter) ([]*entity.Store, error)

	// FindStoreByID retrieves a store by its unique ID.
	FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// CreateStore persists a new store.
	CreateStore(ctx context.Context, store *entity.Store) error

	// UpdateStore modifies an existing store.
	UpdateStore(ctx context.Context, store *entity.Store) error

	// DeleteStore removes a store by its ID.
	DeleteStore(ctx context.Context, id uuid.UUID) error

	// AdjustDealCount atomically shifts the store's denormalized deal counter.
	// Called inside the same transaction that creates or deletes a deal.
	AdjustDealCount(ctx context.Context, id uuid.UUID, delta int) error
}
