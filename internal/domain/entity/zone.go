package entity

import (
	"time"

	domainerrors "pizzahouse/internal/domain/errors"
	"pizzahouse/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Zone is a configured delivery coverage area with its own pricing, schedule and slot capacity.
type Zone struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Center             geo.Coordinate  `json:"center"`
	RadiusKm           float64         `json:"radiusKm"`           // Coverage radius, inclusive.
	BaseFee            decimal.Decimal `json:"baseFee"`            // Flat delivery fee inside the zone.
	PerKmSurcharge     decimal.Decimal `json:"perKmSurcharge"`     // Charged per kilometer beyond RadiusKm.
	MinimumOrderAmount decimal.Decimal `json:"minimumOrderAmount"` // Subtotal floor for delivery orders.
	MaxDeliveryMinutes int             `json:"maxDeliveryMinutes"` // Promised delivery time.
	Priority           int             `json:"priority"`           // Lower wins ties during resolution.
	OperatingHours     OperatingHours  `json:"operatingHours"`
	TimeSlots          []TimeSlot      `json:"timeSlots"` // Ordered as configured.
	IsActive           bool            `json:"isActive"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// TimeSlot is one bookable delivery window owned by a zone.
type TimeSlot struct {
	ID            uuid.UUID `json:"id"`
	Start         ClockTime `json:"startTime"`
	End           ClockTime `json:"endTime"`
	MaxOrders     int       `json:"maxOrders"`
	CurrentOrders int       `json:"currentOrders"`
	IsAvailable   bool      `json:"isAvailable"`
}

// HasCapacity reports whether another booking fits into the slot.
func (s TimeSlot) HasCapacity() bool {
	return s.CurrentOrders < s.MaxOrders
}

// ContainsDistance reports whether a point distanceKm from the center lies inside the zone.
func (z *Zone) ContainsDistance(distanceKm float64) bool {
	return distanceKm <= z.RadiusKm
}

// DistanceTo returns the great-circle distance from the zone's center to point.
func (z *Zone) DistanceTo(point geo.Coordinate) float64 {
	return geo.DistanceKm(z.Center, point)
}

// FeeAt returns the delivery charge for a point distanceKm from the center:
// baseFee + round(max(0, distance - radius) * perKmSurcharge).
func (z *Zone) FeeAt(distanceKm float64) decimal.Decimal {
	excess := distanceKm - z.RadiusKm
	if excess <= 0 || z.PerKmSurcharge.IsZero() {
		return z.BaseFee
	}

	surcharge := decimal.NewFromFloat(excess).Mul(z.PerKmSurcharge).Round(0)

	return z.BaseFee.Add(surcharge)
}

// FindSlot returns the index of the slot with the given id.
func (z *Zone) FindSlot(id uuid.UUID) (int, bool) {
	for i := range z.TimeSlots {
		if z.TimeSlots[i].ID == id {
			return i, true
		}
	}

	return -1, false
}

// Validate checks the zone's structural invariants.
func (z *Zone) Validate() error {
	switch {
	case z.Name == "":
		return domainerrors.ErrInvalidInput.WithDetails("zone name is required")
	case !z.Center.IsValid():
		return domainerrors.ErrInvalidCoordinates.WithDetails("zone center")
	case z.RadiusKm < 0:
		return domainerrors.ErrInvalidInput.WithDetails("radius must be non-negative")
	case z.BaseFee.IsNegative():
		return domainerrors.ErrInvalidInput.WithDetails("base fee must be non-negative")
	case z.PerKmSurcharge.IsNegative():
		return domainerrors.ErrInvalidInput.WithDetails("per-km surcharge must be non-negative")
	case z.MinimumOrderAmount.IsNegative():
		return domainerrors.ErrInvalidInput.WithDetails("minimum order amount must be non-negative")
	case z.MaxDeliveryMinutes < 0:
		return domainerrors.ErrInvalidInput.WithDetails("max delivery time must be non-negative")
	}

	if err := z.OperatingHours.Validate(); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	for _, slot := range z.TimeSlots {
		if !slot.Start.Valid() || !slot.End.Valid() || slot.Start >= slot.End {
			return domainerrors.ErrInvalidInput.WithDetailsf("slot %s-%s has an invalid range", slot.Start, slot.End)
		}
		if slot.MaxOrders < 0 || slot.CurrentOrders < 0 {
			return domainerrors.ErrInvalidInput.WithDetailsf("slot %s-%s has a negative capacity", slot.Start, slot.End)
		}
		if slot.CurrentOrders > slot.MaxOrders {
			return domainerrors.ErrInvalidInput.WithDetailsf("slot %s-%s is booked beyond its maximum", slot.Start, slot.End)
		}
	}

	return nil
}
