// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "dealhub/internal/delivery/context"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"
	"dealhub/internal/domain/service"
	"dealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// fcmBatchSize is the maximum number of tokens FCM accepts per multicast call.
const fcmBatchSize = 500

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	favoriteRepo        repository.FavoriteRepository
	deviceRepo          repository.DeviceRepository
	notificationService service.NotificationService
	logger              *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	FavoriteRepo        repository.FavoriteRepository
	DeviceRepo          repository.DeviceRepository
	NotificationService service.NotificationService
	Logger              *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		favoriteRepo:        params.FavoriteRepo,
		deviceRepo:          params.DeviceRepo,
		notificationService: params.NotificationService,
		logger:              params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessDealEvent handles one queued deal event end to end: resolve the
// users who favorited deals of the originating store, batch-send pushes to
// their devices, and deactivate tokens FCM reports as invalid.
func (srv *notificationService) ProcessDealEvent(ctx context.Context, event *service.DealEvent) error {
	log := srv.log(ctx)
	log.Info("Processing deal event",
		slog.String("eventType", event.EventType),
		slog.String("dealID", event.DealID),
		slog.String("storeID", event.StoreID))

	if event.EventType != service.EventDealFeatured {
		log.Warn("Skipping unknown deal event type", slog.String("eventType", event.EventType))

		return nil
	}

	storeID, err := uuid.Parse(event.StoreID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("deal event carries a malformed store ID")
	}

	userIDs, err := srv.favoriteRepo.FindUserIDsByStore(ctx, storeID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve interested users")
	}
	if len(userIDs) == 0 {
		log.Debug("No users to notify for deal event", slog.String("dealID", event.DealID))

		return nil
	}

	devices, err := srv.deviceRepo.FindDevicesForUsers(ctx, userIDs)
	if err != nil {
		return errors.Wrap(err, "failed to resolve devices for push")
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.FCMToken != "" {
			tokens = append(tokens, device.FCMToken)
		}
	}
	if len(tokens) == 0 {
		log.Debug("No registered device tokens for deal event", slog.String("dealID", event.DealID))

		return nil
	}

	title := event.Title
	body := event.Discount
	data := map[string]string{
		"event_type": event.EventType,
		"deal_id":    event.DealID,
		"store_id":   event.StoreID,
	}

	var totalSuccess, totalFailure int
	var allInvalidTokens []string
	for start := 0; start < len(tokens); start += fcmBatchSize {
		end := min(start+fcmBatchSize, len(tokens))

		successCount, failureCount, invalidTokens, err := srv.notificationService.SendBatchNotification(ctx, tokens[start:end], title, body, data)
		if err != nil {
			// Remaining batches still go out; a transport hiccup on one
			// batch should not silence every other device.
			log.Error("Push batch failed", slog.Any("error", err), slog.Int("batchStart", start))

			continue
		}
		totalSuccess += successCount
		totalFailure += failureCount
		allInvalidTokens = append(allInvalidTokens, invalidTokens...)
	}

	if len(allInvalidTokens) > 0 {
		if err := srv.deviceRepo.DeactivateByFCMTokens(ctx, allInvalidTokens); err != nil {
			log.Error("Failed to deactivate invalid FCM tokens", slog.Any("error", err), slog.Int("count", len(allInvalidTokens)))
		}
	}

	log.Info("Deal event processed",
		slog.String("dealID", event.DealID),
		slog.Int("success", totalSuccess),
		slog.Int("failure", totalFailure),
		slog.Int("invalidTokens", len(allInvalidTokens)))

	return nil
}
