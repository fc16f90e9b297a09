// Package zoning holds the pure zone algorithms: containment, nearest-zone
// resolution and time-slot availability over a snapshot of configured zones.
package zoning

import (
	"cmp"
	"slices"

	"pizzahouse/internal/domain/entity"
	"pizzahouse/internal/domain/geo"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/shopspring/decimal"
)

// boundPadding widens the bounding-box prefilter so it never rejects a point
// that the haversine check would accept.
const (
	boundPaddingFactor = 1.01
	boundPaddingMeters = 50.0
)

// ZoneDistance pairs a zone with a location's distance from its center.
type ZoneDistance struct {
	Zone       *entity.Zone
	DistanceKm float64
	rank       int
}

// Catalog is an immutable snapshot of active zones in resolution order
// (priority ascending, then creation time, then input order).
type Catalog struct {
	zones  []*entity.Zone
	bounds []*orb.Bound
}

// NewCatalog builds a catalog from zones, dropping inactive ones.
func NewCatalog(zones []*entity.Zone) *Catalog {
	active := make([]*entity.Zone, 0, len(zones))
	for _, z := range zones {
		if z != nil && z.IsActive {
			active = append(active, z)
		}
	}

	slices.SortStableFunc(active, func(a, b *entity.Zone) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}

		return a.CreatedAt.Compare(b.CreatedAt)
	})

	bounds := make([]*orb.Bound, len(active))
	for i, z := range active {
		bounds[i] = prefilterBound(z)
	}

	return &Catalog{zones: active, bounds: bounds}
}

// Zones returns the active zones in resolution order.
func (c *Catalog) Zones() []*entity.Zone {
	return slices.Clone(c.zones)
}

// Len returns the number of active zones.
func (c *Catalog) Len() int {
	return len(c.zones)
}

// Contains reports whether point is within zone's radius and returns the distance.
func (c *Catalog) Contains(zone *entity.Zone, point geo.Coordinate) (float64, bool) {
	distance := zone.DistanceTo(point)

	return distance, zone.ContainsDistance(distance)
}

// FeeForLocation returns zone's delivery charge for point.
func (c *Catalog) FeeForLocation(zone *entity.Zone, point geo.Coordinate) decimal.Decimal {
	return zone.FeeAt(zone.DistanceTo(point))
}

// Containing returns every zone whose radius covers point, in catalog order.
func (c *Catalog) Containing(point geo.Coordinate) []ZoneDistance {
	var matches []ZoneDistance
	p := point.Point()

	for i, z := range c.zones {
		if b := c.bounds[i]; b != nil && !b.Contains(p) {
			continue
		}
		if distance, ok := c.Contains(z, point); ok {
			matches = append(matches, ZoneDistance{Zone: z, DistanceKm: distance, rank: i})
		}
	}

	return matches
}

// HighestFee returns the zone with the highest base fee; ties go to the earlier zone.
func (c *Catalog) HighestFee() (*entity.Zone, bool) {
	if len(c.zones) == 0 {
		return nil, false
	}

	best := c.zones[0]
	for _, z := range c.zones[1:] {
		if z.BaseFee.GreaterThan(best.BaseFee) {
			best = z
		}
	}

	return best, true
}

// prefilterBound returns a padded bounding box around the zone, or nil when the
// box would wrap the antimeridian or a pole and cannot be tested with a plain
// min/max comparison. orb wraps longitudes past ±180 back into range, so a
// crossing shows up as an inverted box (Min.Lon > Max.Lon).
func prefilterBound(z *entity.Zone) *orb.Bound {
	if !z.Center.IsValid() {
		return nil
	}

	// orb measures on a slightly larger sphere; scale so the box still covers the radius.
	meters := z.RadiusKm*1000*(orb.EarthRadius/(geo.EarthRadiusKm*1000))*boundPaddingFactor + boundPaddingMeters
	b := orbgeo.NewBoundAroundPoint(z.Center.Point(), meters)
	if b.Min.Lon() > b.Max.Lon() || b.Min.Lon() < -180 || b.Max.Lon() > 180 || b.Min.Lat() < -90 || b.Max.Lat() > 90 {
		return nil
	}

	return &b
}
