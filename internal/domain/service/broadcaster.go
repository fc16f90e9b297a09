package service

import (
	"context"

	"pizzahouse/internal/domain/entity"
)

// Broadcaster pushes realtime order events to listeners. Callers treat it as fire-and-forget.
type Broadcaster interface {
	EmitNewOrder(ctx context.Context, order *entity.Order) error
	EmitOrderStatusUpdate(ctx context.Context, order *entity.Order) error
}
