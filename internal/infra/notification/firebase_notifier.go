package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pizzahouse/config"
	"pizzahouse/internal/domain/constants"
	"pizzahouse/internal/domain/entity"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// ErrUnavailable marks a send failure that may succeed when retried.
var ErrUnavailable = errors.New("push service unavailable")

// Sender is the subset of the FCM client the notifier uses.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// CustomerNotifier pushes order updates to the customer's FCM topic user-<userID>.
type CustomerNotifier struct {
	sender Sender
	logger *slog.Logger
}

// Params defines the dependencies for the Firebase notifier
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New returns nil when Firebase is not configured.
func New(params Params) (*CustomerNotifier, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, customer push notifications disabled")

		return nil, nil
	}

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(params.Ctx, fbConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return NewCustomerNotifier(client, params.Logger), nil
}

func NewCustomerNotifier(sender Sender, logger *slog.Logger) *CustomerNotifier {
	return &CustomerNotifier{sender: sender, logger: logger}
}

func (n *CustomerNotifier) EmitNewOrder(ctx context.Context, order *entity.Order) error {
	return n.send(ctx, order, constants.EventNewOrder, "Order received", "We have received your order.")
}

func (n *CustomerNotifier) EmitOrderStatusUpdate(ctx context.Context, order *entity.Order) error {
	return n.send(ctx, order, constants.EventOrderUpdate, "Order update", statusMessage(order))
}

func (n *CustomerNotifier) send(ctx context.Context, order *entity.Order, event, title, body string) error {
	message := &messaging.Message{
		Topic: TopicForUser(order.UserID.String()),
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"event":   event,
			"orderId": order.ID.String(),
			"status":  order.Status.String(),
		},
	}

	messageID, err := n.sender.Send(ctx, message)
	if err != nil {
		if errorutils.IsUnavailable(err) || errorutils.IsInternal(err) {
			return fmt.Errorf("failed to send notification: %w: %w", ErrUnavailable, err)
		}

		return fmt.Errorf("failed to send notification: %w", err)
	}

	n.logger.DebugContext(ctx, "Customer notified",
		slog.String("orderId", order.ID.String()),
		slog.String("messageId", messageID),
	)

	return nil
}

// TopicForUser is the FCM topic a customer's app subscribes to.
func TopicForUser(userID string) string {
	return "user-" + userID
}

func statusMessage(order *entity.Order) string {
	switch order.Status {
	case entity.OrderStatusConfirmed:
		return "Your order has been confirmed."
	case entity.OrderStatusPreparing:
		return "Your order is being prepared."
	case entity.OrderStatusReady:
		if order.Type == entity.OrderTypePickup {
			return "Your order is ready for pickup."
		}

		return "Your order is ready."
	case entity.OrderStatusOutForDelivery:
		return "Your order is on its way."
	case entity.OrderStatusDelivered:
		return "Your order has been delivered. Enjoy!"
	case entity.OrderStatusCancelled:
		return "Your order was cancelled: " + order.CancellationReason
	default:
		return "Your order is " + order.Status.String() + "."
	}
}
