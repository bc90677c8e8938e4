// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DealType represents how a deal is redeemed.
type DealType string

const (
	// DealTypeCode is a coupon code revealed to the visitor.
	DealTypeCode DealType = "code"
	// DealTypeLink is an affiliate link the visitor follows.
	DealTypeLink DealType = "link"
	// DealTypeProduct is a discounted product with its own price.
	DealTypeProduct DealType = "product"
)

// String returns the string representation of the DealType.
func (t DealType) String() string {
	return string(t)
}

// IsValid checks if the DealType is a valid value.
func (t DealType) IsValid() bool {
	switch t {
	case DealTypeCode, DealTypeLink, DealTypeProduct:
		return true
	default:
		return false
	}
}

// Deal represents a single offer published on the marketplace.
// Code deals carry a coupon code, product deals carry pricing; both
// invariants are enforced at create/update time.
type Deal struct {
	ID            uuid.UUID  // The Global Unique Identifier (GUID) for the deal.
	Title         string     // Short headline shown in listings.
	Description   string     // Longer marketing copy for the detail view.
	Discount      string     // Human-readable discount label, e.g. "20% OFF".
	Code          string     // Coupon code; required when Type is DealTypeCode.
	Type          DealType   // Redemption mechanism: code, link or product.
	StoreID       uuid.UUID  // The store this deal belongs to. Always set.
	Category      string     // Category slug; the canonical category reference.
	URL           string     // Outbound link for link/product deals.
	Featured      bool       // Whether the deal is promoted on the landing page.
	Verified      bool       // Whether staff have confirmed the deal still works.
	UsedCount     int        // Number of times visitors revealed or used the deal.
	Price         *float64   // Sale price; required when Type is DealTypeProduct.
	OriginalPrice *float64   // Pre-discount price for product deals.
	ProductImage  string     // Product photo URL for product deals.
	ExpiresAt     *time.Time // Optional expiry; nil means the deal does not expire.
	CreatedAt     time.Time  // Timestamp of when this deal was published.
	UpdatedAt     time.Time  // Timestamp of the last modification.
}

// Expired reports whether the deal has an expiry in the past.
func (d *Deal) Expired(now time.Time) bool {
	return d.ExpiresAt != nil && d.ExpiresAt.Before(now)
}
