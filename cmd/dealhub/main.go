package main

import (
	"context"
	"log/slog"
	"os"

	"dealhub/config"
	"dealhub/internal/delivery"
	"dealhub/internal/delivery/http"
	"dealhub/internal/delivery/http/middleware"
	"dealhub/internal/delivery/http/router/handler"
	"dealhub/internal/domain/service"
	"dealhub/internal/infra/auth"
	"dealhub/internal/infra/auth/google"
	logs "dealhub/internal/infra/log"
	"dealhub/internal/infra/persistence"
	"dealhub/internal/infra/pubsub"
	"dealhub/internal/infra/qrcode"
	"dealhub/internal/infra/storage"
	"dealhub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		persistence.Module,
		storage.Module,
		pubsub.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSessionService,
			impl.NewDealService,
			impl.NewStoreService,
			impl.NewCategoryService,
			impl.NewSearchService,
			impl.NewFavoriteService,
			impl.NewAdvertisementService,
			impl.NewAdminService,
			impl.NewDeviceService,
			impl.NewAssetService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewSessionHandler,
			handler.NewDealHandler,
			handler.NewStoreHandler,
			handler.NewCategoryHandler,
			handler.NewSearchHandler,
			handler.NewFavoriteHandler,
			handler.NewAdvertisementHandler,
			handler.NewAdminHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
