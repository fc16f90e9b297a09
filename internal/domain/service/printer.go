package service

import (
	"context"

	"pizzahouse/internal/domain/entity"
)

// DocumentKind selects which printed document is produced for an order.
type DocumentKind string

const (
	DocumentKitchenOrder    DocumentKind = "kitchenOrder"
	DocumentCustomerReceipt DocumentKind = "customerReceipt"
	DocumentDeliverySlip    DocumentKind = "deliverySlip"
)

// Printer renders and prints order documents. Callers treat it as best-effort.
type Printer interface {
	PrintOrder(ctx context.Context, order *entity.Order, kind DocumentKind) error
}
