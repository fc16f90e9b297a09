package usecase

import (
	"context"
	"slices"
	"time"

	"pizzahouse/internal/domain/constants"
	"pizzahouse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Actor is the authenticated caller of an order operation
type Actor struct {
	UserID uuid.UUID
	Roles  []string
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return slices.Contains(a.Roles, constants.RoleAdmin)
}

// CreateOrderInput represents a checkout request
type CreateOrderInput struct {
	Items           []entity.OrderItem      `json:"items"`
	OrderType       string                  `json:"orderType"`
	DeliveryAddress *entity.DeliveryAddress `json:"deliveryAddress,omitempty"`
	TimeSlotID      *uuid.UUID              `json:"timeSlotId,omitempty"`
	PaymentMethod   string                  `json:"paymentMethod"`
	Discount        decimal.Decimal         `json:"discount"`
	Notes           string                  `json:"notes"`
}

// UpdateOrderStatusInput represents an administrator status change
type UpdateOrderStatusInput struct {
	Status      string     `json:"status"`
	Reason      string     `json:"cancellationReason,omitempty"`
	DeliveredAt *time.Time `json:"actualDeliveryTime,omitempty"`
}

// ListOrdersInput filters and sorts order listings
type ListOrdersInput struct {
	Status        string     `json:"status"`
	UserID        *uuid.UUID `json:"userId,omitempty"`
	CreatedFrom   *time.Time `json:"startDate,omitempty"`
	CreatedBefore *time.Time `json:"endDate,omitempty"`
	SortBy        string     `json:"sortBy"`    // date or status
	SortOrder     string     `json:"sortOrder"` // asc or desc
	Limit         int        `json:"limit"`
	Offset        int        `json:"offset"`
}

// OrderUsecase defines the interface for order fulfillment use cases
type OrderUsecase interface {
	// Customer operations
	CreateOrder(ctx context.Context, actor Actor, input *CreateOrderInput) (*entity.Order, error)
	GetOrder(ctx context.Context, actor Actor, orderID uuid.UUID) (*entity.Order, error)
	ListMyOrders(ctx context.Context, actor Actor, input *ListOrdersInput) ([]*entity.Order, error)
	DeleteOrder(ctx context.Context, actor Actor, orderID uuid.UUID) error

	// Administrator operations
	ListOrders(ctx context.Context, input *ListOrdersInput) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)
}
