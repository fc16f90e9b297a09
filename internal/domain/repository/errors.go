package repository

import "errors"

var (
	// ErrZoneNotFound is returned when a zone id does not exist.
	ErrZoneNotFound = errors.New("zone not found")
	// ErrOrderNotFound is returned when an order id does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrSlotNotFound is returned when a slot id does not belong to the zone.
	ErrSlotNotFound = errors.New("time slot not found")
	// ErrSlotFull is returned when a conditional booking finds the slot full or unavailable.
	ErrSlotFull = errors.New("time slot is full or unavailable")
	// ErrSlotOverbooked is returned when a zone save would cap a slot below its booked orders.
	ErrSlotOverbooked = errors.New("time slot capacity below booked orders")
	// ErrOrderNotPending is returned when a conditional delete finds a non-pending order.
	ErrOrderNotPending = errors.New("order is not pending")
)
