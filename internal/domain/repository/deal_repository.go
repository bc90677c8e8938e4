// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dealhub/internal/domain/entity"
	"dealhub/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for deal persistence.
var (
	// ErrDealNotFound is returned when a deal is not found.
	ErrDealNotFound = errors.New("deal not found")
)

// DealFilter narrows a deal listing. Every field is optional; set fields
// are combined conjunctively (AND). A nil pointer means "no constraint".
type DealFilter struct {
	Featured *bool            // Only deals with this featured flag.
	StoreID  *uuid.UUID       // Only deals belonging to this store.
	Category *string          // Only deals with this category slug.
	Type     *entity.DealType // Only deals of this redemption type.
	Search   string           // Case-insensitive substring match on title OR description.
	Limit    int              // Maximum rows returned; 0 means the repository default.
}

// DealRepository defines the interface for deal-related database operations.
// Listings are always ordered by creation time, newest first.
type DealRepository interface {
	// ListDeals retrieves deals matching the filter, ordered by created_at DESC.
	ListDeals(ctx context.Context, filter DealFilter) ([]*entity.Deal, error)

	// FindDealByID retrieves a deal by its unique ID.
	FindDealByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error)

	// CreateDeal persists a new deal.
	CreateDeal(ctx context.Context, deal *entity.Deal) error

	// UpdateDeal modifies an existing deal.
	UpdateDeal(ctx context.Context, deal *entity.Deal) error

	// DeleteDeal removes a deal by its ID.
	DeleteDeal(ctx context.Context, id uuid.UUID) error

	// IncrementUsedCount atomically bumps the deal's used counter by one.
	IncrementUsedCount(ctx context.Context, id uuid.UUID) error
}
