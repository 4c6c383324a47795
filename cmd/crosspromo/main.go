package main

import (
	"context"
	"log/slog"
	"os"

	"crosspromo/config"
	"crosspromo/internal/delivery"
	"crosspromo/internal/delivery/http"
	"crosspromo/internal/delivery/http/middleware"
	"crosspromo/internal/delivery/http/router/handler"
	"crosspromo/internal/domain/repository"
	"crosspromo/internal/domain/service"
	"crosspromo/internal/infra/auth"
	"crosspromo/internal/infra/backend"
	logs "crosspromo/internal/infra/log"
	"crosspromo/internal/infra/mapsurface"
	"crosspromo/internal/infra/notification"
	"crosspromo/internal/infra/persistence/memory"
	"crosspromo/internal/infra/persistence/postgres"
	"crosspromo/internal/infra/pubsub"
	"crosspromo/internal/infra/realtime"
	"crosspromo/internal/infra/sticker"
	"crosspromo/internal/infra/storage"
	"crosspromo/internal/infra/toast"
	"crosspromo/internal/usecase/impl"

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
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			closeRealtimeHub,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newPendingMarkRepository,
		),
	)
}

// newPendingMarkRepository shares pending marks through Postgres when it is configured and
// keeps them in process memory otherwise.
func newPendingMarkRepository(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repository.PendingMarkRepository, error) {
	if cfg.Postgres == nil {
		logger.Info("Postgres not configured, pending marks kept in memory")

		return memory.NewPendingMarkRepository(), nil
	}

	db, err := postgres.New(postgres.Params{Lifecycle: lc, Config: cfg, Logger: logger})
	if err != nil {
		return nil, err
	}

	return postgres.NewPendingMarkRepository(db), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			fx.Annotate(
				backend.NewClient,
				fx.As(new(service.PartnerGateway)),
			),
			fx.Annotate(
				mapsurface.NewFactory,
				fx.As(new(service.MapSurfaceFactory)),
			),
			realtime.NewHub,
			realtime.NewConnector,
			notification.NewFirebaseService,
			fx.Annotate(
				toast.NewSink,
				fx.As(new(service.ToastSink)),
				fx.As(new(service.PartnersNotifier)),
			),
			pubsub.NewEventPublisher,
			sticker.NewComposer,
			storage.NewBlobStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPendingTracker,
			impl.NewPartnerService,
			impl.NewStickerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPartnerHandler,
			handler.NewMapHandler,
			handler.NewStickerHandler,
			handler.NewRealtimeHandler,
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

// closeRealtimeHub disconnects browser WebSockets on shutdown. The HTTP server does not
// track hijacked connections.
func closeRealtimeHub(lc fx.Lifecycle, hub *realtime.Hub) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			hub.Close()

			return nil
		},
	})
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
