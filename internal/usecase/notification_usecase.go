// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"dealhub/internal/domain/service"
)

// NotificationUsecase processes queued deal events and fans out pushes to
// the devices of users who favorited deals of the originating store.
type NotificationUsecase interface {
	// ProcessDealEvent handles one queued deal event end to end:
	// resolve interested users, batch-send pushes, clean up invalid tokens.
	ProcessDealEvent(ctx context.Context, event *service.DealEvent) error
}
