package zoning

import (
	"time"

	"pizzahouse/internal/domain/entity"
	"pizzahouse/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantCoordinate is the flagship branch in Mithi that the stock zones are centered on.
var RestaurantCoordinate = geo.NewCoordinate(24.7337, 69.7967)

var (
	defaultOpen  = entity.NewClockTime(11, 0)
	defaultClose = entity.NewClockTime(23, 0)
)

type defaultZone struct {
	name        string
	radiusKm    float64
	fee         string
	minimum     string
	maxDelivery int
}

var stockZones = []defaultZone{
	{name: "Zone 1 - Downtown", radiusKm: 5, fee: "0", minimum: "15", maxDelivery: 20},
	{name: "Zone 2 - Midtown", radiusKm: 10, fee: "2.99", minimum: "20", maxDelivery: 35},
	{name: "Zone 3 - Uptown", radiusKm: 15, fee: "4.99", minimum: "25", maxDelivery: 45},
	{name: "Zone 4 - Suburbs", radiusKm: 20, fee: "6.99", minimum: "30", maxDelivery: 60},
}

// DefaultZones returns the stock zone set: four concentric rings around the
// restaurant, open 11:00-23:00 daily, without explicit slots.
func DefaultZones(now time.Time) []*entity.Zone {
	zones := make([]*entity.Zone, 0, len(stockZones))
	for i, z := range stockZones {
		zones = append(zones, &entity.Zone{
			ID:                 uuid.New(),
			Name:               z.name,
			Center:             RestaurantCoordinate,
			RadiusKm:           z.radiusKm,
			BaseFee:            decimal.RequireFromString(z.fee),
			PerKmSurcharge:     decimal.Zero,
			MinimumOrderAmount: decimal.RequireFromString(z.minimum),
			MaxDeliveryMinutes: z.maxDelivery,
			Priority:           i + 1,
			OperatingHours:     entity.UniformOperatingHours(defaultOpen, defaultClose),
			IsActive:           true,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	}

	return zones
}
