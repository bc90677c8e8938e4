// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"dealhub/internal/domain/entity"
	"dealhub/internal/domain/repository"

	"github.com/google/uuid"
)

// StoreInput carries the writable fields of a store for create and update.
type StoreInput struct {
	Name        string
	Logo        string
	Category    string
	CategoryID  *uuid.UUID
	URL         string
	StoreType   entity.StoreType
	Featured    bool
	Country     string
	Description string
}

// StoreUsecase defines the catalog operations around stores.
type StoreUsecase interface {
	// ListStores returns stores matching the filter, by name ascending.
	ListStores(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, error)

	// GetStore returns a single store; a missing ID is a distinct not-found error.
	GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// CreateStore persists a new store.
	CreateStore(ctx context.Context, input *StoreInput) (*entity.Store, error)

	// UpdateStore applies changes to an existing store.
	UpdateStore(ctx context.Context, id uuid.UUID, input *StoreInput) (*entity.Store, error)

	// DeleteStore removes a store that has no remaining deals.
	DeleteStore(ctx context.Context, id uuid.UUID) error
}
