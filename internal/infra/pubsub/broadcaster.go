package pubsub

import (
	"context"

	deliverycontext "pizzahouse/internal/delivery/context"
	"pizzahouse/internal/domain/constants"
	"pizzahouse/internal/domain/entity"
	"pizzahouse/internal/domain/service"

	"github.com/google/uuid"
)

// OrderEventBroadcaster turns order broadcasts into published OrderEvents.
type OrderEventBroadcaster struct {
	publisher service.EventPublisher
	clock     service.Clock
}

func NewOrderEventBroadcaster(publisher service.EventPublisher, clock service.Clock) *OrderEventBroadcaster {
	return &OrderEventBroadcaster{publisher: publisher, clock: clock}
}

func (b *OrderEventBroadcaster) EmitNewOrder(ctx context.Context, order *entity.Order) error {
	return b.publisher.PublishOrderEvent(ctx, b.newEvent(ctx, constants.EventNewOrder, order))
}

func (b *OrderEventBroadcaster) EmitOrderStatusUpdate(ctx context.Context, order *entity.Order) error {
	return b.publisher.PublishOrderEvent(ctx, b.newEvent(ctx, constants.EventOrderUpdate, order))
}

func (b *OrderEventBroadcaster) newEvent(ctx context.Context, event string, order *entity.Order) *service.OrderEvent {
	return &service.OrderEvent{
		EventID:    uuid.NewString(),
		Event:      event,
		OrderID:    order.ID.String(),
		UserID:     order.UserID.String(),
		Status:     order.Status.String(),
		OccurredAt: b.clock.Now(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Order:      order,
	}
}
