// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"dealhub/internal/domain/entity"
	"dealhub/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// DealInput carries the writable fields of a deal for create and update.
type DealInput struct {
	Title         string
	Description   string
	Discount      string
	Code          string
	Type          entity.DealType
	StoreID       uuid.UUID
	Category      string
	URL           string
	Featured      bool
	Verified      bool
	Price         *float64
	OriginalPrice *float64
	ProductImage  string
	ExpiresAt     *time.Time // nil means no expiry
}

// DealUsecase defines the catalog operations around deals.
// Reads are public; writes are reached only through the admin surface.
type DealUsecase interface {
	// ListDeals returns deals matching the filter, newest first.
	// Filters combine conjunctively; an error never yields a partial list.
	ListDeals(ctx context.Context, filter repository.DealFilter) ([]*entity.Deal, error)

	// GetDeal returns a single deal; a missing ID is a distinct not-found error.
	GetDeal(ctx context.Context, id uuid.UUID) (*entity.Deal, error)

	// IncrementUsedCount records that a visitor revealed or used the deal.
	IncrementUsedCount(ctx context.Context, id uuid.UUID) error

	// CreateDeal validates the type invariants (code/price) and persists the
	// deal, bumping the owning store's deal count in the same transaction.
	// A featured deal additionally publishes a deal.featured event.
	CreateDeal(ctx context.Context, input *DealInput) (*entity.Deal, error)

	// UpdateDeal validates and applies changes to an existing deal.
	UpdateDeal(ctx context.Context, id uuid.UUID, input *DealInput) (*entity.Deal, error)

	// DeleteDeal removes the deal and decrements the store's deal count in
	// the same transaction.
	DeleteDeal(ctx context.Context, id uuid.UUID) error

	// GetRedemptionQR renders the in-store redemption QR code (PNG) for a
	// code-type deal.
	GetRedemptionQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
