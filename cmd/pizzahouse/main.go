package main

import (
	"context"
	"log/slog"
	"os"

	"pizzahouse/config"
	"pizzahouse/internal/delivery"
	"pizzahouse/internal/delivery/api"
	"pizzahouse/internal/delivery/api/middleware"
	"pizzahouse/internal/delivery/api/router/handler"
	"pizzahouse/internal/domain/service"
	"pizzahouse/internal/infra/auth"
	"pizzahouse/internal/infra/broadcast"
	"pizzahouse/internal/infra/cache"
	"pizzahouse/internal/infra/clock"
	logs "pizzahouse/internal/infra/log"
	"pizzahouse/internal/infra/persistence/postgres"
	"pizzahouse/internal/infra/printer"
	"pizzahouse/internal/infra/pubsub"
	"pizzahouse/internal/infra/tasks"
	"pizzahouse/internal/jobs"
	"pizzahouse/internal/usecase"
	"pizzahouse/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectJobs(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newClock,
	)
}

func newClock(cfg *config.Config) (service.Clock, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return clock.NewRealClock(loc), nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewZoneRepository,
			postgres.NewOrderRepository,
			postgres.NewRestaurantRepository,
			postgres.NewTransactionManager,
		),
		// Active zone snapshot is read through Redis when configured
		fx.Decorate(cache.Decorate),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			printer.New,
			tasks.New,
			pubsub.NewEventPublisher,
			newHub,
			newBroadcaster,
		),
	)
}

// newHub creates the websocket hub staff dashboards attach to
func newHub(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) *broadcast.Hub {
	hub := broadcast.NewHub(cfg.WebSocket.AllowedOrigins, cfg.WebSocket.WriteTimeout, logger)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			hub.Close()

			return nil
		},
	})

	return hub
}

// newBroadcaster delivers order events to dashboards and to the event bus
func newBroadcaster(hub *broadcast.Hub, publisher service.EventPublisher, clock service.Clock) service.Broadcaster {
	return broadcast.NewFanout(hub, pubsub.NewOrderEventBroadcaster(publisher, clock))
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewZoneService,
			impl.NewOrderService,
			impl.NewRestaurantService,
		),
	)
}

func injectJobs() fx.Option {
	return fx.Options(
		fx.Provide(jobs.NewSlotResetJob),
		fx.Invoke(func(*jobs.SlotResetJob) {}),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewZoneHandler,
			handler.NewOrderHandler,
			handler.NewRestaurantHandler,
			handler.NewWebSocketHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedCatalog installs the stock zones and the flagship branch on an empty database
func seedCatalog(lc fx.Lifecycle, cfg *config.Config, zoneUC usecase.ZoneUsecase, restaurantUC usecase.RestaurantUsecase, logger *slog.Logger) {
	if !cfg.Fulfillment.SeedDefaultZones {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			seededZones, err := zoneUC.SeedDefaultZones(ctx)
			if err != nil {
				return err
			}
			seededBranch, err := restaurantUC.SeedFlagship(ctx)
			if err != nil {
				return err
			}

			logger.Info("Catalog seeding finished",
				slog.Bool("zones_seeded", seededZones),
				slog.Bool("flagship_seeded", seededBranch),
			)

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
