package entity

import (
	"encoding/json"
	"strings"
	"time"

	domainerrors "pizzahouse/internal/domain/errors"
	"pizzahouse/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCancellationReason is recorded when an order is cancelled without an explicit reason.
const DefaultCancellationReason = "Cancelled by administrator"

type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

// ParseOrderType validates s as an order type.
func ParseOrderType(s string) (OrderType, error) {
	switch t := OrderType(s); t {
	case OrderTypeDelivery, OrderTypePickup:
		return t, nil
	default:
		return "", domainerrors.ErrInvalidOrderType.WithDetailsf("got %q", s)
	}
}

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

// ParsePaymentMethod validates s as a payment method. Empty means cash.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case "":
		return PaymentMethodCash, nil
	case PaymentMethodCash, PaymentMethodCard:
		return m, nil
	default:
		return "", domainerrors.ErrInvalidPaymentMethod.WithDetailsf("got %q", s)
	}
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type ItemSize string

const (
	ItemSizeSmall  ItemSize = "small"
	ItemSizeMedium ItemSize = "medium"
	ItemSizeLarge  ItemSize = "large"
)

// Topping is an extra added to a line item.
type Topping struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Customization describes how a line item is prepared.
type Customization struct {
	Size                ItemSize  `json:"size"`
	Toppings            []Topping `json:"toppings,omitempty"`
	SpecialInstructions string    `json:"specialInstructions,omitempty"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID     uuid.UUID       `json:"productId"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Customization Customization   `json:"customization"`
}

// LineTotal is unit price times quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// DeliveryAddress is where a delivery order is dropped off.
type DeliveryAddress struct {
	Street       string         `json:"street"`
	City         string         `json:"city"`
	PostalCode   string         `json:"postalCode"`
	Instructions string         `json:"instructions,omitempty"`
	Coordinates  geo.Coordinate `json:"coordinates"`
}

// Order is a customer order moving through the fulfillment lifecycle.
// Subtotal and final price are derived from the items and charge components.
type Order struct {
	ID                    uuid.UUID        `json:"id"`
	UserID                uuid.UUID        `json:"userId"`
	Items                 []OrderItem      `json:"items"`
	DeliveryCharge        decimal.Decimal  `json:"deliveryCharge"`
	Tax                   decimal.Decimal  `json:"tax"`
	Discount              decimal.Decimal  `json:"discount"`
	Type                  OrderType        `json:"orderType"`
	DeliveryAddress       *DeliveryAddress `json:"deliveryAddress,omitempty"`
	ZoneID                *uuid.UUID       `json:"zoneId,omitempty"`
	TimeSlotID            *uuid.UUID       `json:"timeSlotId,omitempty"`
	IsOutOfZone           bool             `json:"isOutOfZone"`
	EstimatedDeliveryTime *time.Time       `json:"estimatedDeliveryTime,omitempty"`
	ActualDeliveryTime    *time.Time       `json:"actualDeliveryTime,omitempty"`
	PaymentMethod         PaymentMethod    `json:"paymentMethod"`
	PaymentStatus         PaymentStatus    `json:"paymentStatus"`
	Status                OrderStatus      `json:"status"`
	Notes                 string           `json:"notes,omitempty"`
	CancellationReason    string           `json:"cancellationReason,omitempty"`
	CreatedAt             time.Time        `json:"createdAt"`
	UpdatedAt             time.Time        `json:"updatedAt"`
}

// Subtotal is the sum of every line item's price times quantity.
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}

	return total
}

// FinalPrice is subtotal + delivery charge + tax - discount.
func (o *Order) FinalPrice() decimal.Decimal {
	return o.Subtotal().Add(o.DeliveryCharge).Add(o.Tax).Sub(o.Discount)
}

// MarshalJSON adds the derived subtotal and final price to the order fields.
func (o *Order) MarshalJSON() ([]byte, error) {
	type plain Order

	return json.Marshal(struct {
		*plain
		Subtotal   decimal.Decimal `json:"subtotal"`
		FinalPrice decimal.Decimal `json:"finalPrice"`
	}{
		plain:      (*plain)(o),
		Subtotal:   o.Subtotal(),
		FinalPrice: o.FinalPrice(),
	})
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.UserID == userID
}

// Validate checks the order's structural invariants.
func (o *Order) Validate() error {
	if len(o.Items) == 0 {
		return domainerrors.ErrInvalidInput.WithDetails("order must contain at least one item")
	}

	for i, item := range o.Items {
		if item.Quantity < 1 {
			return domainerrors.ErrInvalidInput.WithDetailsf("item %d: quantity must be at least 1", i)
		}
		if item.UnitPrice.IsNegative() {
			return domainerrors.ErrInvalidInput.WithDetailsf("item %d: price must be non-negative", i)
		}
		switch item.Customization.Size {
		case ItemSizeSmall, ItemSizeMedium, ItemSizeLarge:
		default:
			return domainerrors.ErrInvalidInput.WithDetailsf("item %d: unknown size %q", i, item.Customization.Size)
		}
		for _, topping := range item.Customization.Toppings {
			if topping.Quantity < 1 || topping.Price.IsNegative() {
				return domainerrors.ErrInvalidInput.WithDetailsf("item %d: invalid topping %q", i, topping.Name)
			}
		}
	}

	if o.DeliveryCharge.IsNegative() || o.Tax.IsNegative() || o.Discount.IsNegative() {
		return domainerrors.ErrInvalidInput.WithDetails("charges must be non-negative")
	}
	// Discounts apply to goods and tax only; the delivery charge is always paid
	if o.Discount.GreaterThan(o.Subtotal().Add(o.Tax)) {
		return domainerrors.ErrInvalidInput.WithDetails("discount exceeds subtotal plus tax")
	}

	switch o.Type {
	case OrderTypeDelivery:
		if o.DeliveryAddress == nil || o.ZoneID == nil || o.EstimatedDeliveryTime == nil {
			return domainerrors.ErrInvalidInput.WithDetails("delivery orders require an address, zone and estimated time")
		}
		addr := o.DeliveryAddress
		if strings.TrimSpace(addr.Street) == "" || strings.TrimSpace(addr.City) == "" || strings.TrimSpace(addr.PostalCode) == "" {
			return domainerrors.ErrInvalidInput.WithDetails("delivery address requires street, city and postal code")
		}
		if !addr.Coordinates.IsValid() {
			return domainerrors.ErrInvalidCoordinates
		}
	case OrderTypePickup:
		if o.DeliveryAddress != nil || o.ZoneID != nil || o.EstimatedDeliveryTime != nil || o.TimeSlotID != nil {
			return domainerrors.ErrInvalidInput.WithDetails("pickup orders must not carry delivery fields")
		}
	default:
		return domainerrors.ErrInvalidOrderType.WithDetailsf("got %q", o.Type)
	}

	if _, err := ParsePaymentMethod(string(o.PaymentMethod)); err != nil || o.PaymentMethod == "" {
		return domainerrors.ErrInvalidPaymentMethod.WithDetailsf("got %q", o.PaymentMethod)
	}

	return nil
}

// TransitionOptions carries caller context for a status change.
type TransitionOptions struct {
	Now         time.Time
	DeliveredAt *time.Time // Defaults to Now when entering delivered.
	Reason      string     // Cancellation reason, defaults to DefaultReason.
	// DefaultReason overrides DefaultCancellationReason when set.
	DefaultReason string
}

// TransitionEffects lists the side effects a status change requires.
type TransitionEffects struct {
	From           OrderStatus
	To             OrderStatus
	ReprintKitchen bool
}

// TransitionTo moves the order to next, enforcing the transition table and
// stamping delivery time or cancellation reason as required.
func (o *Order) TransitionTo(next OrderStatus, opts TransitionOptions) (TransitionEffects, error) {
	if !next.IsValid() {
		return TransitionEffects{}, domainerrors.ErrInvalidStatus.WithDetailsf("unknown status %d", next)
	}
	if o.Status.IsTerminal() {
		return TransitionEffects{}, domainerrors.ErrInvalidTransition.WithDetailsf("order is already %s", o.Status)
	}
	if !o.Status.CanTransitionTo(next) {
		return TransitionEffects{}, domainerrors.ErrInvalidTransition.WithDetailsf("cannot move from %s to %s", o.Status, next)
	}

	effects := TransitionEffects{From: o.Status, To: next}

	switch next {
	case OrderStatusDelivered:
		deliveredAt := opts.Now
		if opts.DeliveredAt != nil {
			deliveredAt = *opts.DeliveredAt
		}
		o.ActualDeliveryTime = &deliveredAt
	case OrderStatusCancelled:
		reason := strings.TrimSpace(opts.Reason)
		if reason == "" {
			reason = opts.DefaultReason
		}
		if reason == "" {
			reason = DefaultCancellationReason
		}
		o.CancellationReason = reason
	case OrderStatusPreparing:
		effects.ReprintKitchen = true
	}

	o.Status = next
	o.UpdatedAt = opts.Now

	return effects, nil
}

// EnsureDeletable fails with InvalidTransition unless the order is still pending.
func (o *Order) EnsureDeletable() error {
	if o.Status != OrderStatusPending {
		return domainerrors.ErrInvalidTransition.WithDetailsf("only pending orders can be deleted, order is %s", o.Status)
	}

	return nil
}
