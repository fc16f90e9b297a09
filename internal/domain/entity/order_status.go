package entity

import (
	domainerrors "pizzahouse/internal/domain/errors"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus uint8

const (
	OrderStatusUnknown OrderStatus = iota
	OrderStatusPending
	OrderStatusConfirmed
	OrderStatusPreparing
	OrderStatusReady
	OrderStatusOutForDelivery
	OrderStatusDelivered
	OrderStatusCancelled
)

var orderStatusNames = map[OrderStatus]string{
	OrderStatusPending:        "pending",
	OrderStatusConfirmed:      "confirmed",
	OrderStatusPreparing:      "preparing",
	OrderStatusReady:          "ready",
	OrderStatusOutForDelivery: "out_for_delivery",
	OrderStatusDelivered:      "delivered",
	OrderStatusCancelled:      "cancelled",
}

// orderTransitions lists the allowed targets per source state. Terminal states have no entry.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {
		OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled,
	},
	OrderStatusConfirmed: {
		OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled,
	},
	OrderStatusPreparing: {
		OrderStatusPending, OrderStatusConfirmed, OrderStatusReady,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled,
	},
	OrderStatusReady: {
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled,
	},
	OrderStatusOutForDelivery: {
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled,
	},
}

// ParseOrderStatus parses the wire name of a status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for status, name := range orderStatusNames {
		if name == s {
			return status, nil
		}
	}

	return OrderStatusUnknown, domainerrors.ErrInvalidStatus.WithDetailsf("unknown status %q", s)
}

func (s OrderStatus) String() string {
	if name, ok := orderStatusNames[s]; ok {
		return name
	}

	return "unknown"
}

// IsValid reports whether s is a recognized status.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusNames[s]

	return ok
}

// IsTerminal reports whether s accepts no further transitions.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the transition table allows moving from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

func (s OrderStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *OrderStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseOrderStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}
