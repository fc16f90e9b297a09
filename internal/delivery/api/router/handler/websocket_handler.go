package handler

import (
	"log/slog"

	"pizzahouse/internal/infra/broadcast"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WebSocketHandlerParams holds dependencies for WebSocketHandler, injected by Fx.
type WebSocketHandlerParams struct {
	fx.In

	Hub    *broadcast.Hub
	Logger *slog.Logger
}

// WebSocketHandler attaches staff dashboards to the order event stream.
type WebSocketHandler struct {
	hub    *broadcast.Hub
	logger *slog.Logger
}

func NewWebSocketHandler(params WebSocketHandlerParams) *WebSocketHandler {
	return &WebSocketHandler{
		hub:    params.Hub,
		logger: params.Logger,
	}
}

// OrderStream blocks until the client disconnects.
func (h *WebSocketHandler) OrderStream(c echo.Context) error {
	if err := h.hub.ServeWS(c.Response(), c.Request()); err != nil {
		// The upgrader has already written the failure response.
		h.logger.Debug("websocket upgrade rejected",
			slog.String("remote_addr", c.RealIP()),
			slog.Any("error", err),
		)
	}

	return nil
}
