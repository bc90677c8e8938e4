// Package qrcode renders redemption QR codes for code-type deals.
package qrcode

import (
	"encoding/json"
	"fmt"

	"dealhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	DealID string `json:"deal_id"`
	Code   string `json:"code"`
	Type   string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateRedemptionQR generates a QR code used to redeem a code-type deal in a local store
func (s *qrcodeService) GenerateRedemptionQR(dealID uuid.UUID, code string) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		DealID: dealID.String(),
		Code:   code,
		Type:   "redemption",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseRedemptionQR parses QR code data and returns the deal ID and coupon code
func (s *qrcodeService) ParseRedemptionQR(qrData string) (uuid.UUID, string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "redemption" {
		return uuid.Nil, "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	// Parse UUID
	dealID, err := uuid.Parse(data.DealID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to parse deal ID: %w", err)
	}

	return dealID, data.Code, nil
}
