package repository

import (
	"context"
	"time"

	"pizzahouse/internal/domain/entity"

	"github.com/google/uuid"
)

type OrderSortField string

const (
	OrderSortByDate   OrderSortField = "date"
	OrderSortByStatus OrderSortField = "status"
)

// OrderFilter narrows order listings. Zero values do not filter.
type OrderFilter struct {
	UserID        *uuid.UUID
	Status        *entity.OrderStatus
	CreatedFrom   *time.Time
	CreatedBefore *time.Time
	SortBy        OrderSortField
	Ascending     bool
	Limit         int
	Offset        int
}

// OrderRepository is the durable store for orders.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *entity.Order) error
	// FindOrderByID returns ErrOrderNotFound when absent.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// FindOrderByIDForUpdate locks the order row for the rest of the transaction.
	FindOrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// UpdateOrder persists status, timestamps and charges of an existing order.
	UpdateOrder(ctx context.Context, order *entity.Order) error
	FindOrders(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	// DeletePendingOrder removes the order only while it is still pending.
	// It returns ErrOrderNotPending when the stored status differs.
	DeletePendingOrder(ctx context.Context, id uuid.UUID) error
}
