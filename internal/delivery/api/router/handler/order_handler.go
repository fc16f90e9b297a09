package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pizzahouse/internal/delivery/api/middleware"
	"pizzahouse/internal/delivery/api/response"
	"pizzahouse/internal/domain/entity"
	domainerrors "pizzahouse/internal/domain/errors"
	"pizzahouse/internal/domain/service"
	"pizzahouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Clock   service.Clock
	Logger  *slog.Logger
}

// OrderHandler serves checkout, order queries and status changes.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	clock   service.Clock
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		clock:   params.Clock,
		logger:  params.Logger,
	}
}

// CreateOrderRequest represents the checkout request body
type CreateOrderRequest struct {
	Items           []OrderItemRequest      `json:"items" validate:"required,min=1,dive"`
	OrderType       string                  `json:"orderType" validate:"required,oneof=delivery pickup"`
	DeliveryAddress *DeliveryAddressRequest `json:"deliveryAddress"`
	TimeSlotID      *uuid.UUID              `json:"timeSlotId"`
	PaymentMethod   string                  `json:"paymentMethod" validate:"omitempty,oneof=cash card"`
	Discount        decimal.Decimal         `json:"discount"`
	Notes           string                  `json:"notes" validate:"max=500"`
}

// OrderItemRequest is one cart line
type OrderItemRequest struct {
	ProductID     uuid.UUID            `json:"productId" validate:"required"`
	Name          string               `json:"name" validate:"required"`
	Quantity      int                  `json:"quantity" validate:"required,min=1"`
	UnitPrice     decimal.Decimal      `json:"unitPrice"`
	Customization CustomizationRequest `json:"customization"`
}

// CustomizationRequest carries the pizza options of a cart line
type CustomizationRequest struct {
	Size                string           `json:"size" validate:"omitempty,oneof=small medium large"`
	Toppings            []entity.Topping `json:"toppings"`
	SpecialInstructions string           `json:"specialInstructions" validate:"max=200"`
}

// DeliveryAddressRequest is the drop-off address of a delivery order
type DeliveryAddressRequest struct {
	Street       string             `json:"street" validate:"required"`
	City         string             `json:"city" validate:"required"`
	PostalCode   string             `json:"postalCode" validate:"required"`
	Instructions string             `json:"instructions"`
	Coordinates  CoordinatesRequest `json:"coordinates"`
}

func (r *CreateOrderRequest) toInput() *usecase.CreateOrderInput {
	input := &usecase.CreateOrderInput{
		Items:         make([]entity.OrderItem, 0, len(r.Items)),
		OrderType:     r.OrderType,
		TimeSlotID:    r.TimeSlotID,
		PaymentMethod: r.PaymentMethod,
		Discount:      r.Discount,
		Notes:         r.Notes,
	}
	for _, item := range r.Items {
		input.Items = append(input.Items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Customization: entity.Customization{
				Size:                entity.ItemSize(item.Customization.Size),
				Toppings:            item.Customization.Toppings,
				SpecialInstructions: item.Customization.SpecialInstructions,
			},
		})
	}
	if addr := r.DeliveryAddress; addr != nil {
		input.DeliveryAddress = &entity.DeliveryAddress{
			Street:       addr.Street,
			City:         addr.City,
			PostalCode:   addr.PostalCode,
			Instructions: addr.Instructions,
			Coordinates:  addr.Coordinates.toCoordinate(),
		}
	}

	return input
}

// UpdateOrderStatusRequest represents an administrator status change
type UpdateOrderStatusRequest struct {
	Status             string     `json:"status" validate:"required"`
	CancellationReason string     `json:"cancellationReason" validate:"max=500"`
	ActualDeliveryTime *time.Time `json:"actualDeliveryTime"`
}

// ListOrdersQuery holds the query parameters of order listings
type ListOrdersQuery struct {
	Status    string `query:"status"`
	UserID    string `query:"userId"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	SortBy    string `query:"sortBy" validate:"omitempty,oneof=date status"`
	SortOrder string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Limit     int    `query:"limit" validate:"gte=0"`
	Offset    int    `query:"offset" validate:"gte=0"`
}

// parseListQuery reads listing parameters, parsing dates in the restaurant timezone.
func (h *OrderHandler) parseListQuery(c echo.Context) (*usecase.ListOrdersInput, error) {
	var query ListOrdersQuery
	if err := c.Bind(&query); err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("invalid order query")
	}

	if err := c.Validate(&query); err != nil {
		return nil, err
	}

	input := &usecase.ListOrdersInput{
		Status:    query.Status,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Limit:     query.Limit,
		Offset:    query.Offset,
	}

	loc := h.clock.Now().Location()
	var err error
	if input.CreatedFrom, err = parseDate(query.StartDate, loc); err != nil {
		return nil, err
	}
	if input.CreatedBefore, err = parseDate(query.EndDate, loc); err != nil {
		return nil, err
	}
	if query.UserID != "" {
		userID, err := uuid.Parse(query.UserID)
		if err != nil {
			return nil, domainerrors.ErrInvalidInput.WithDetails("userId must be a UUID")
		}
		input.UserID = &userID
	}

	return input, nil
}

// CreateOrder handles checkout
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// GetOrder handles retrieving one of the caller's orders
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ListMyOrders handles listing the caller's orders
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input, err := h.parseListQuery(c)
	if err != nil {
		return requestError(c, err)
	}

	orders, err := h.orderUC.ListMyOrders(c.Request().Context(), actor, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// DeleteOrder handles removing a pending order
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), actor, orderID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ListOrders handles the administrator order listing
func (h *OrderHandler) ListOrders(c echo.Context) error {
	input, err := h.parseListQuery(c)
	if err != nil {
		return requestError(c, err)
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// UpdateOrderStatus handles administrator status changes
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), orderID, &usecase.UpdateOrderStatusInput{
		Status:      req.Status,
		Reason:      req.CancellationReason,
		DeliveredAt: req.ActualDeliveryTime,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
