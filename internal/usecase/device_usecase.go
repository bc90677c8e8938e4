// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"dealhub/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput carries the data needed to register a device for pushes.
type RegisterDeviceInput struct {
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase defines the operations around push notification devices.
type DeviceUsecase interface {
	// RegisterDevice registers (or refreshes) a device for deal alerts.
	RegisterDevice(ctx context.Context, userID uuid.UUID, input *RegisterDeviceInput) (*entity.UserDevice, error)

	// RemoveDevice unregisters a device.
	RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
