package pubsub

import (
	"context"
	"log/slog"

	"pizzahouse/config"
	"pizzahouse/internal/domain/constants"
	"pizzahouse/internal/domain/service"
	"pizzahouse/internal/errors"

	"go.uber.org/fx"
)

// discardPublisher drops order events when no event bus is configured
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	p.logger.DebugContext(ctx, "Order event not published, no event bus configured",
		slog.String("event", event.Event),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

func (p *discardPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the order event bus named by pubsub.provider.
// An empty provider disables publishing.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Order events disabled, pubsub provider not set")

		return &discardPublisher{logger: params.Logger}, nil
	}

	if err := validatePublisherConfig(cfg); err != nil {
		return nil, err
	}

	publisher, err := openPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Order event publisher ready",
		slog.String("provider", cfg.Provider),
		slog.String("topic_id", cfg.TopicID),
		slog.String("endpoint", cfg.LocalEndpoint),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.Wrap(publisher.Close(), "close order event publisher")
		},
	})

	return publisher, nil
}

func validatePublisherConfig(cfg *config.PubSubConfig) error {
	var missing []error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			missing = append(missing, errors.New("pubsub.localEndpoint is required for the local provider"))
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			missing = append(missing, errors.New("pubsub.projectId is required for the google provider"))
		}
		if cfg.TopicID == "" {
			missing = append(missing, errors.New("pubsub.topicId is required for the google provider"))
		}
	default:
		return errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	return errors.Join(missing...)
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.Provider == constants.PubSubProviderLocal {
		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	}

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}
