package zoning

import (
	"time"

	"pizzahouse/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	DefaultSlotCapacity = 10
	DefaultSlotLength   = time.Hour
)

// SlotPolicy configures slot synthesis for zones without explicit slots.
type SlotPolicy struct {
	DefaultCapacity int
	SlotLength      time.Duration
}

func (p SlotPolicy) withDefaults() SlotPolicy {
	if p.DefaultCapacity <= 0 {
		p.DefaultCapacity = DefaultSlotCapacity
	}
	if p.SlotLength < time.Minute {
		p.SlotLength = DefaultSlotLength
	}

	return p
}

// AvailableSlots returns the bookable slots of zone on day, in configured order.
//
// now must be expressed in the zone's local time. When day is now's weekday,
// slots starting at or before now's time of day are dropped; other days are
// not filtered by time. Unavailable and fully booked slots are always dropped.
// Zones without explicit slots get hourly slots synthesized from that day's
// operating hours.
func AvailableSlots(zone *entity.Zone, day entity.Weekday, now time.Time, policy SlotPolicy) []entity.TimeSlot {
	if zone == nil {
		return nil
	}

	candidates := zone.TimeSlots
	if len(candidates) == 0 {
		candidates = SynthesizeSlots(zone, day, policy)
	}

	isToday := entity.WeekdayOf(now) == day
	cutoff := entity.ClockTimeOf(now)

	available := make([]entity.TimeSlot, 0, len(candidates))
	for _, slot := range candidates {
		if isToday && slot.Start <= cutoff {
			continue
		}
		if !slot.IsAvailable || !slot.HasCapacity() {
			continue
		}
		available = append(available, slot)
	}

	return available
}

// SynthesizeSlots splits day's operating hours into consecutive slots of the
// policy length, clipping the last slot to closing time. Ids are derived from
// the zone, day and start so repeated calls return the same slots.
func SynthesizeSlots(zone *entity.Zone, day entity.Weekday, policy SlotPolicy) []entity.TimeSlot {
	window, ok := zone.OperatingHours.On(day)
	if !ok || window.Open >= window.Close {
		return nil
	}

	policy = policy.withDefaults()
	step := entity.ClockTime(policy.SlotLength / time.Minute)

	var slots []entity.TimeSlot
	for start := window.Open; start < window.Close; start += step {
		end := min(start+step, window.Close)
		slots = append(slots, entity.TimeSlot{
			ID:          SynthesizedSlotID(zone.ID, day, start),
			Start:       start,
			End:         end,
			MaxOrders:   policy.DefaultCapacity,
			IsAvailable: true,
		})
	}

	return slots
}

// SynthesizedSlotID derives a stable id for a synthesized slot.
func SynthesizedSlotID(zoneID uuid.UUID, day entity.Weekday, start entity.ClockTime) uuid.UUID {
	return uuid.NewSHA1(zoneID, []byte(day.String()+"@"+start.String()))
}
