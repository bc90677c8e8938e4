package impl

import (
	"context"
	"testing"

	"dealhub/internal/domain/entity"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"
	"dealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceService(deviceRepo repository.DeviceRepository) *deviceService {
	return NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     newDiscardLogger(),
	}).(*deviceService)
}

func TestDeviceService_RegisterDevice_CreatesNewDevice(t *testing.T) {
	deviceRepo := new(mockDeviceRepository)
	svc := newDeviceService(deviceRepo)

	ctx := context.Background()
	userID := uuid.New()
	deviceRepo.On("FindActiveDevicesByUser", ctx, userID).Return([]*entity.UserDevice{}, nil)
	deviceRepo.On("CreateDevice", ctx, mock.MatchedBy(func(device *entity.UserDevice) bool {
		return device.UserID == userID && device.DeviceID == "phone-1" && device.IsActive
	})).Return(nil)

	device, err := svc.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{
		FCMToken: "fcm-token-abc",
		DeviceID: "phone-1",
		Platform: "android",
	})

	require.NoError(t, err)
	assert.True(t, device.IsActive)
	deviceRepo.AssertExpectations(t)
}

func TestDeviceService_RegisterDevice_KnownDeviceRotatesToken(t *testing.T) {
	deviceRepo := new(mockDeviceRepository)
	svc := newDeviceService(deviceRepo)

	ctx := context.Background()
	userID := uuid.New()
	existingID := uuid.New()
	existing := []*entity.UserDevice{
		{ID: existingID, UserID: userID, DeviceID: "phone-1", FCMToken: "stale-token", IsActive: true},
	}
	deviceRepo.On("FindActiveDevicesByUser", ctx, userID).Return(existing, nil)
	deviceRepo.On("UpdateFCMToken", ctx, existingID, "fresh-token").Return(nil)

	device, err := svc.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{
		FCMToken: "fresh-token",
		DeviceID: "phone-1",
		Platform: "android",
	})

	require.NoError(t, err)
	assert.Equal(t, existingID, device.ID)
	assert.Equal(t, "fresh-token", device.FCMToken)
	deviceRepo.AssertNotCalled(t, "CreateDevice", mock.Anything, mock.Anything)
}

func TestDeviceService_RegisterDevice_MissingToken(t *testing.T) {
	deviceRepo := new(mockDeviceRepository)
	svc := newDeviceService(deviceRepo)

	_, err := svc.RegisterDevice(context.Background(), uuid.New(), &usecase.RegisterDeviceInput{
		DeviceID: "phone-1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	deviceRepo.AssertNotCalled(t, "FindActiveDevicesByUser", mock.Anything, mock.Anything)
}

func TestDeviceService_RemoveDevice_OtherUsersDeviceLooksMissing(t *testing.T) {
	deviceRepo := new(mockDeviceRepository)
	svc := newDeviceService(deviceRepo)

	ctx := context.Background()
	deviceID := uuid.New()
	deviceRepo.On("FindDeviceByID", ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := svc.RemoveDevice(ctx, uuid.New(), deviceID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	deviceRepo.AssertNotCalled(t, "DeleteDevice", mock.Anything, mock.Anything)
}

func TestDeviceService_RemoveDevice_Success(t *testing.T) {
	deviceRepo := new(mockDeviceRepository)
	svc := newDeviceService(deviceRepo)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	deviceRepo.On("FindDeviceByID", ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	deviceRepo.On("DeleteDevice", ctx, deviceID).Return(nil)

	require.NoError(t, svc.RemoveDevice(ctx, userID, deviceID))
	deviceRepo.AssertExpectations(t)
}
