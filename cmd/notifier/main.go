package main

import (
	"context"
	"log/slog"
	"os"

	"pizzahouse/config"
	"pizzahouse/internal/delivery"
	"pizzahouse/internal/delivery/worker"
	"pizzahouse/internal/delivery/worker/handler"
	"pizzahouse/internal/domain/service"
	logs "pizzahouse/internal/infra/log"
	"pizzahouse/internal/infra/notification"

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
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
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

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.New,
			fx.Annotate(
				customerNotifier,
				fx.ResultTags(`name:"customerNotifier"`),
			),
		),
	)
}

// customerNotifier keeps an unconfigured Firebase client a nil interface
func customerNotifier(n *notification.CustomerNotifier) service.Broadcaster {
	if n == nil {
		return nil
	}

	return n
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
