package service

import (
	"context"
)

// NotificationService sends deal-alert pushes to registered devices.
type NotificationService interface {
	// SendBatchNotification delivers one notification to many device tokens.
	// It reports how many sends succeeded and failed, and which tokens the
	// provider flagged as invalid so the caller can deactivate them.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification delivers a notification to one device token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
