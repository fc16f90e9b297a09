package handler

import (
	"log/slog"
	"net/http"

	"pizzahouse/internal/delivery/api/response"
	"pizzahouse/internal/domain/entity"
	"pizzahouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ZoneHandlerParams holds dependencies for ZoneHandler, injected by Fx.
type ZoneHandlerParams struct {
	fx.In

	ZoneUC usecase.ZoneUsecase
	Logger *slog.Logger
}

// ZoneHandler serves delivery quotes, slot listings and zone administration.
type ZoneHandler struct {
	zoneUC usecase.ZoneUsecase
	logger *slog.Logger
}

// NewZoneHandler is the constructor for ZoneHandler
func NewZoneHandler(params ZoneHandlerParams) *ZoneHandler {
	return &ZoneHandler{
		zoneUC: params.ZoneUC,
		logger: params.Logger,
	}
}

// ZoneRequest represents the request body for creating or replacing a zone
type ZoneRequest struct {
	Name               string                `json:"name" validate:"required,max=100"`
	Center             CoordinatesRequest    `json:"center"`
	RadiusKm           float64               `json:"radiusKm" validate:"gte=0"`
	BaseFee            decimal.Decimal       `json:"baseFee"`
	PerKmSurcharge     decimal.Decimal       `json:"perKmSurcharge"`
	MinimumOrderAmount decimal.Decimal       `json:"minimumOrderAmount"`
	MaxDeliveryMinutes int                   `json:"maxDeliveryMinutes" validate:"gte=0"`
	Priority           int                   `json:"priority"`
	OperatingHours     entity.OperatingHours `json:"operatingHours"`
	TimeSlots          []TimeSlotRequest     `json:"timeSlots" validate:"dive"`
	IsActive           *bool                 `json:"isActive"`
}

// TimeSlotRequest is one slot of a ZoneRequest. Omit the id to add a slot.
type TimeSlotRequest struct {
	ID          *uuid.UUID       `json:"id"`
	Start       entity.ClockTime `json:"startTime"`
	End         entity.ClockTime `json:"endTime"`
	MaxOrders   int              `json:"maxOrders" validate:"gte=0"`
	IsAvailable *bool            `json:"isAvailable"`
}

func (r *ZoneRequest) toInput() *usecase.ZoneInput {
	input := &usecase.ZoneInput{
		Name:               r.Name,
		Center:             r.Center.toCoordinate(),
		RadiusKm:           r.RadiusKm,
		BaseFee:            r.BaseFee,
		PerKmSurcharge:     r.PerKmSurcharge,
		MinimumOrderAmount: r.MinimumOrderAmount,
		MaxDeliveryMinutes: r.MaxDeliveryMinutes,
		Priority:           r.Priority,
		OperatingHours:     r.OperatingHours,
		IsActive:           r.IsActive,
		TimeSlots:          make([]usecase.TimeSlotInput, 0, len(r.TimeSlots)),
	}
	for _, slot := range r.TimeSlots {
		input.TimeSlots = append(input.TimeSlots, usecase.TimeSlotInput{
			ID:          slot.ID,
			Start:       slot.Start,
			End:         slot.End,
			MaxOrders:   slot.MaxOrders,
			IsAvailable: slot.IsAvailable,
		})
	}

	return input
}

// SlotsQuery selects the weekday for a slot listing, today when empty
type SlotsQuery struct {
	Day string `query:"day"`
}

// ListZones handles listing the active zones in resolution order
func (h *ZoneHandler) ListZones(c echo.Context) error {
	zones, err := h.zoneUC.ListActiveZones(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zones)
}

// GetZone handles retrieving a single zone
func (h *ZoneHandler) GetZone(c echo.Context) error {
	zoneID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	zone, err := h.zoneUC.GetZone(c.Request().Context(), zoneID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zone)
}

// ResolveZone handles delivery quotes for a coordinate
func (h *ZoneHandler) ResolveZone(c echo.Context) error {
	var req CoordinatesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid coordinates input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	resolution, err := h.zoneUC.ResolveZone(c.Request().Context(), req.toCoordinate())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, resolution)
}

// AvailableSlots handles listing bookable slots of a zone
func (h *ZoneHandler) AvailableSlots(c echo.Context) error {
	zoneID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var query SlotsQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid slot query")
	}

	var day *entity.Weekday
	if query.Day != "" {
		parsed, err := entity.ParseWeekday(query.Day)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "day must be a weekday name")
		}
		day = &parsed
	}

	slots, err := h.zoneUC.AvailableSlots(c.Request().Context(), zoneID, day)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, slots)
}

// CreateZone handles zone creation
func (h *ZoneHandler) CreateZone(c echo.Context) error {
	var req ZoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid zone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	zone, err := h.zoneUC.CreateZone(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, zone)
}

// UpdateZone handles replacing a zone's settings
func (h *ZoneHandler) UpdateZone(c echo.Context) error {
	zoneID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ZoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid zone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	zone, err := h.zoneUC.UpdateZone(c.Request().Context(), zoneID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zone)
}

// DeactivateZone handles soft-deleting a zone
func (h *ZoneHandler) DeactivateZone(c echo.Context) error {
	zoneID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.zoneUC.DeactivateZone(c.Request().Context(), zoneID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Zone deactivated successfully"})
}

// RestoreDefaultZones handles replacing the catalog with the stock zones
func (h *ZoneHandler) RestoreDefaultZones(c echo.Context) error {
	zones, err := h.zoneUC.RestoreDefaultZones(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zones)
}
