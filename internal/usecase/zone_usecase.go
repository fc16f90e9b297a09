package usecase

import (
	"context"

	"pizzahouse/internal/domain/entity"
	"pizzahouse/internal/domain/geo"
	"pizzahouse/internal/domain/zoning"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ZoneInput describes a delivery zone as submitted by an administrator
type ZoneInput struct {
	Name               string                `json:"name"`
	Center             geo.Coordinate        `json:"center"`
	RadiusKm           float64               `json:"radiusKm"`
	BaseFee            decimal.Decimal       `json:"baseFee"`
	PerKmSurcharge     decimal.Decimal       `json:"perKmSurcharge"`
	MinimumOrderAmount decimal.Decimal       `json:"minimumOrderAmount"`
	MaxDeliveryMinutes int                   `json:"maxDeliveryMinutes"`
	Priority           int                   `json:"priority"`
	OperatingHours     entity.OperatingHours `json:"operatingHours"`
	TimeSlots          []TimeSlotInput       `json:"timeSlots"`
	IsActive           *bool                 `json:"isActive,omitempty"`
}

// TimeSlotInput describes one slot of a zone. Slots without an ID are new;
// booked counters of existing slots are kept.
type TimeSlotInput struct {
	ID          *uuid.UUID       `json:"id,omitempty"`
	Start       entity.ClockTime `json:"startTime"`
	End         entity.ClockTime `json:"endTime"`
	MaxOrders   int              `json:"maxOrders"`
	IsAvailable *bool            `json:"isAvailable,omitempty"`
}

// ZoneUsecase defines the interface for zone resolution and administration use cases
type ZoneUsecase interface {
	// Delivery quotes
	ResolveZone(ctx context.Context, location geo.Coordinate) (*zoning.Resolution, error)
	// AvailableSlots lists the bookable slots of a zone; a nil day means today.
	AvailableSlots(ctx context.Context, zoneID uuid.UUID, day *entity.Weekday) ([]entity.TimeSlot, error)

	// Catalog
	ListActiveZones(ctx context.Context) ([]*entity.Zone, error)
	GetZone(ctx context.Context, zoneID uuid.UUID) (*entity.Zone, error)

	// Administration
	CreateZone(ctx context.Context, input *ZoneInput) (*entity.Zone, error)
	UpdateZone(ctx context.Context, zoneID uuid.UUID, input *ZoneInput) (*entity.Zone, error)
	DeactivateZone(ctx context.Context, zoneID uuid.UUID) error
	RestoreDefaultZones(ctx context.Context) ([]*entity.Zone, error)
	// SeedDefaultZones installs the stock zones when no active zone exists and reports whether it did.
	SeedDefaultZones(ctx context.Context) (bool, error)

	// Maintenance
	ResetSlotBookings(ctx context.Context) (int64, error)
}
