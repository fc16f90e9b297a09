package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pizzahouse/config"
	deliverycontext "pizzahouse/internal/delivery/context"
	"pizzahouse/internal/domain/constants"
	"pizzahouse/internal/domain/service"
	"pizzahouse/internal/errors"
	"pizzahouse/internal/infra/notification"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	_, ok := errors.Find[*retryableError](err)

	return ok
}

// TokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type TokenVerifier func(ctx context.Context, token, audience string) error

// PushHandler relays order events from Pub/Sub to customer devices
type PushHandler struct {
	verifier TokenVerifier
	notifier service.Broadcaster
	logger   *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Notifier service.Broadcaster `name:"customerNotifier" optional:"true"`
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		notifier: params.Notifier,
		logger:   params.Logger,
	}

	// Only Google push requests carry a verifiable token
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.verifier = verifyGoogleIDToken
	}

	return h
}

// NewPushHandlerWithVerifier is used by tests to stub token validation.
func NewPushHandlerWithVerifier(notifier service.Broadcaster, verifier TokenVerifier, logger *slog.Logger) *PushHandler {
	return &PushHandler{verifier: verifier, notifier: notifier, logger: logger}
}

// HandlePush acknowledges with 200 unless the event should be redelivered,
// in which case it answers 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verifier != nil {
		if err := h.verifyRequest(c.Request()); err != nil {
			logger.Warn("[Notifier] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		logger.Error("[Notifier] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		logger.Error("[Notifier] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.Error("[Notifier] Failed to parse order event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), reqLogger)

	reqLogger.Info("[Notifier] Processing order event",
		slog.String("event_id", event.EventID),
		slog.String("event", event.Event),
		slog.String("order_id", event.OrderID),
		slog.String("status", event.Status),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		retryable := isRetryableError(err)
		reqLogger.Error("[Notifier] Failed to process order event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		// Non-retryable failures are acknowledged so Pub/Sub stops redelivering
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.OrderEvent) error {
	if h.notifier == nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Notifier] Push notifications disabled, event dropped",
			slog.String("event_id", event.EventID),
		)

		return nil
	}

	if event.Order == nil || event.Order.UserID == uuid.Nil {
		return errors.Errorf("event %s carries no order owner", event.EventID)
	}

	var err error
	switch event.Event {
	case constants.EventNewOrder:
		err = h.notifier.EmitNewOrder(ctx, event.Order)
	case constants.EventOrderUpdate:
		err = h.notifier.EmitOrderStatusUpdate(ctx, event.Order)
	default:
		return errors.Errorf("unknown event type %q", event.Event)
	}

	if err != nil {
		if errors.Is(err, notification.ErrUnavailable) || errors.Is(err, context.DeadlineExceeded) {
			return newRetryableError(err)
		}

		return err
	}

	return nil
}

// extractRequestID prefers message attributes, then the event payload, then the X-Request-Id header.
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.OrderEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

func (h *PushHandler) verifyRequest(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	return h.verifier(req.Context(), token, audience)
}

// verifyGoogleIDToken validates push tokens as described at
// https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyGoogleIDToken(ctx context.Context, token, audience string) error {
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
