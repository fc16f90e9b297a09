package service

import (
	"context"
	"time"

	"pizzahouse/internal/domain/entity"
)

// OrderEvent is the message published to downstream consumers when an order changes.
type OrderEvent struct {
	EventID    string        `json:"eventId"`
	Event      string        `json:"event"` // constants.EventNewOrder or constants.EventOrderUpdate
	OrderID    string        `json:"orderId"`
	UserID     string        `json:"userId"`
	Status     string        `json:"status"`
	OccurredAt time.Time     `json:"occurredAt"`
	RequestID  string        `json:"requestId,omitempty"`
	Order      *entity.Order `json:"order"`
}

// EventPublisher publishes order events to a message bus.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error
	Close() error
}
