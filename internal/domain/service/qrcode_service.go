package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateRedemptionQR generates a QR code used to redeem a code-type deal in a local store
	GenerateRedemptionQR(dealID uuid.UUID, code string) ([]byte, error)

	// ParseRedemptionQR parses QR code data and returns the deal ID and coupon code
	ParseRedemptionQR(qrData string) (uuid.UUID, string, error)
}
