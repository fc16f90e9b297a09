package repository

import (
	"context"

	"pizzahouse/internal/domain/entity"

	"github.com/google/uuid"
)

// ZoneRepository is the durable store for delivery zones and their time slots.
type ZoneRepository interface {
	// FindActiveZones returns every active zone in resolution order (priority, creation time).
	FindActiveZones(ctx context.Context) ([]*entity.Zone, error)
	// FindZoneByID returns the zone with the given id, active or not.
	FindZoneByID(ctx context.Context, id uuid.UUID) (*entity.Zone, error)
	// SaveZone inserts or fully replaces a zone including its hours and slots.
	// It returns ErrSlotOverbooked when a slot's new capacity is below its stored bookings.
	SaveZone(ctx context.Context, zone *entity.Zone) error
	// DeactivateZone soft-deletes a zone.
	DeactivateZone(ctx context.Context, id uuid.UUID) error
	// ReplaceAllZones deactivates every zone and saves zones in its place.
	ReplaceAllZones(ctx context.Context, zones []*entity.Zone) error
	// BookSlot atomically increments the slot's booked count when it is available
	// and below capacity. It returns ErrSlotFull when the condition does not hold.
	BookSlot(ctx context.Context, zoneID, slotID uuid.UUID) error
	// ResetSlotBookings zeroes every slot's booked count and returns the rows touched.
	ResetSlotBookings(ctx context.Context) (int64, error)
}
