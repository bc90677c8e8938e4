package notification

import (
	"context"
	"log/slog"

	"dealhub/config"
	"dealhub/internal/domain/service"

	"go.uber.org/fx"
)

// noopService drops pushes when Firebase is not configured, so the worker
// can run locally without credentials.
type noopService struct {
	logger *slog.Logger
}

func (s *noopService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	s.logger.Debug("[NoopFCM] Push sending disabled, dropping batch",
		slog.Int("tokens", len(tokens)),
		slog.String("title", title),
	)

	return len(tokens), 0, nil, nil
}

func (s *noopService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.Debug("[NoopFCM] Push sending disabled, dropping message", slog.String("title", title))

	return nil
}

// ServiceParams holds dependencies for NotificationService, injected by Fx
type ServiceParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService creates a NotificationService based on configuration.
// Without Firebase credentials it falls back to a no-op sender.
func NewNotificationService(params ServiceParams) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, using no-op notification service")

		return &noopService{logger: params.Logger}, nil
	}

	params.Logger.Info("Using Firebase Cloud Messaging",
		slog.String("project_id", cfg.ProjectID),
	)

	return NewFirebaseService(params.Ctx, cfg.CredentialsPath)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationService),
)
