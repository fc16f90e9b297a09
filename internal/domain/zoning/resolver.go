package zoning

import (
	"cmp"
	"slices"

	domainerrors "pizzahouse/internal/domain/errors"
	"pizzahouse/internal/domain/entity"
	"pizzahouse/internal/domain/geo"

	"github.com/shopspring/decimal"
)

// Resolution is the outcome of resolving a location against the catalog.
type Resolution struct {
	Zone           *entity.Zone    `json:"zone"`
	DeliveryCharge decimal.Decimal `json:"deliveryCharge"`
	IsOutOfZone    bool            `json:"isOutOfZone"`
	DistanceKm     float64         `json:"distanceKm"`
}

// Resolve selects the zone serving location.
//
// The nearest containing zone wins; exact distance ties go to the lower base
// fee, then to catalog order. When no zone contains the location the zone with
// the highest base fee is charged and IsOutOfZone is set. An empty catalog
// returns ErrNoZoneAvailable.
func Resolve(catalog *Catalog, location geo.Coordinate) (Resolution, error) {
	if !location.IsValid() {
		return Resolution{}, domainerrors.ErrInvalidCoordinates.WithDetailsf("lat=%v lng=%v", location.Latitude, location.Longitude)
	}
	if catalog == nil || catalog.Len() == 0 {
		return Resolution{}, domainerrors.ErrNoZoneAvailable
	}

	if matches := catalog.Containing(location); len(matches) > 0 {
		best := slices.MinFunc(matches, compareMatches)

		return Resolution{
			Zone:           best.Zone,
			DeliveryCharge: best.Zone.FeeAt(best.DistanceKm),
			IsOutOfZone:    false,
			DistanceKm:     best.DistanceKm,
		}, nil
	}

	fallback, _ := catalog.HighestFee()

	return Resolution{
		Zone:           fallback,
		DeliveryCharge: fallback.BaseFee,
		IsOutOfZone:    true,
		DistanceKm:     fallback.DistanceTo(location),
	}, nil
}

func compareMatches(a, b ZoneDistance) int {
	if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
		return c
	}
	if c := a.Zone.BaseFee.Cmp(b.Zone.BaseFee); c != 0 {
		return c
	}

	return cmp.Compare(a.rank, b.rank)
}
