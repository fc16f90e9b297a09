package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pizzahouse/config"
	deliverycontext "pizzahouse/internal/delivery/context"
	"pizzahouse/internal/domain/constants"
	"pizzahouse/internal/domain/entity"
	"pizzahouse/internal/domain/service"
	"pizzahouse/internal/infra/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_SendsPushEnvelope(t *testing.T) {
	var (
		received  PubSubPushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	now := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusPending}
	broadcaster := NewOrderEventBroadcaster(NewLocalHTTPPublisher(server.URL, discardLogger()), clock.NewMockClock(now))

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	require.NoError(t, broadcaster.EmitNewOrder(ctx, order))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, constants.EventNewOrder, received.Message.Attributes["event"])
	assert.Equal(t, order.ID.String(), received.Message.Attributes["order_id"])
	assert.Equal(t, order.UserID.String(), received.Message.Attributes["user_id"])
	assert.Equal(t, "req-42", received.Message.Attributes["request_id"])
	assert.Equal(t, now.Format(time.RFC3339), received.Message.PublishTime)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.OrderEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, "pending", event.Status)
	assert.Equal(t, order.ID.String(), event.OrderID)
	assert.NotEmpty(t, event.EventID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	broadcaster := NewOrderEventBroadcaster(NewLocalHTTPPublisher(server.URL, discardLogger()), clock.NewMockClock(time.Now()))

	err := broadcaster.EmitOrderStatusUpdate(context.Background(), &entity.Order{ID: uuid.New(), Status: entity.OrderStatusReady})
	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "Not configured", cfg: nil},
		{name: "Local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999"}},
		{name: "Local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "Google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "orders"}, wantErr: true},
		{name: "Unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
