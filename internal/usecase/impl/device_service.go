// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "dealhub/internal/delivery/context"
	"dealhub/internal/domain/entity"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"
	"dealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice registers (or refreshes) a device for deal alerts.
// Re-registering a known client device only rotates its FCM token.
func (srv *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	srv.log(ctx).Info("Registering device", slog.Any("userID", userID), slog.String("platform", input.Platform))

	if input.FCMToken == "" || input.DeviceID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("device registration requires an FCM token and device ID")
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user devices")
	}

	for _, device := range devices {
		if device.DeviceID == input.DeviceID {
			if err := srv.deviceRepo.UpdateFCMToken(ctx, device.ID, input.FCMToken); err != nil {
				return nil, errors.Wrap(err, "failed to refresh device FCM token")
			}
			device.FCMToken = input.FCMToken

			return device, nil
		}
	}

	newDevice := &entity.UserDevice{
		UserID:   userID,
		FCMToken: input.FCMToken,
		DeviceID: input.DeviceID,
		Platform: input.Platform,
		IsActive: true,
	}
	if err := srv.deviceRepo.CreateDevice(ctx, newDevice); err != nil {
		srv.log(ctx).Error("Failed to register device", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to register device")
	}

	return newDevice, nil
}

// RemoveDevice unregisters a device.
func (srv *deviceService) RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	srv.log(ctx).Info("Removing device", slog.Any("deviceID", deviceID), slog.Any("userID", userID))

	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("device removal failed")
		}

		return errors.Wrap(err, "failed to find device for removal")
	}

	// Other users' devices are reported as missing.
	if device.UserID != userID {
		return domainerrors.ErrNotFound.WrapMessage("device removal failed")
	}

	if err := srv.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		srv.log(ctx).Error("Failed to delete device", slog.Any("error", err), slog.Any("deviceID", deviceID))

		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}
