package handler

import (
	"log/slog"
	"net/http"

	"pizzahouse/internal/delivery/api/response"
	"pizzahouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	Logger       *slog.Logger
}

type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	logger       *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		logger:       params.Logger,
	}
}

// NearestRestaurant handles finding the closest open branch, GET /restaurants/nearest?lat=..&lng=..
func (h *RestaurantHandler) NearestRestaurant(c echo.Context) error {
	var req CoordinatesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid coordinates input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	nearest, err := h.restaurantUC.NearestRestaurant(c.Request().Context(), req.toCoordinate())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nearest)
}
