package zoning

import (
	"math"
	"testing"
	"time"

	domainerrors "pizzahouse/internal/domain/errors"
	"pizzahouse/internal/domain/entity"
	"pizzahouse/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)

func newZone(name string, center geo.Coordinate, radiusKm float64, fee string, priority int) *entity.Zone {
	return &entity.Zone{
		ID:                 uuid.New(),
		Name:               name,
		Center:             center,
		RadiusKm:           radiusKm,
		BaseFee:            decimal.RequireFromString(fee),
		MinimumOrderAmount: decimal.Zero,
		Priority:           priority,
		IsActive:           true,
		CreatedAt:          baseTime.Add(time.Duration(priority) * time.Minute),
	}
}

// northOf returns the point distanceKm due north of c.
func northOf(c geo.Coordinate, distanceKm float64) geo.Coordinate {
	return geo.NewCoordinate(c.Latitude+distanceKm/geo.EarthRadiusKm*180/math.Pi, c.Longitude)
}

func TestResolve_ZoneCenterScenario(t *testing.T) {
	zoneA := newZone("Zone A", geo.NewCoordinate(24.7337, 69.7967), 1.5, "30", 1)

	res, err := Resolve(NewCatalog([]*entity.Zone{zoneA}), geo.NewCoordinate(24.7337, 69.7967))

	require.NoError(t, err)
	assert.Same(t, zoneA, res.Zone)
	assert.True(t, res.DeliveryCharge.Equal(decimal.NewFromInt(30)))
	assert.False(t, res.IsOutOfZone)
	assert.Equal(t, 0.0, res.DistanceKm)
}

func TestResolve_BoundaryIsInclusive(t *testing.T) {
	center := geo.NewCoordinate(24.7337, 69.7967)
	point := northOf(center, 3)
	exact := geo.DistanceKm(center, point)

	inside := newZone("edge", center, exact, "10", 1)
	fallback := newZone("fallback", geo.NewCoordinate(0, 0), 1, "99", 2)

	res, err := Resolve(NewCatalog([]*entity.Zone{inside, fallback}), point)
	require.NoError(t, err)
	assert.Same(t, inside, res.Zone)
	assert.False(t, res.IsOutOfZone)

	inside.RadiusKm = exact - 1e-9
	res, err = Resolve(NewCatalog([]*entity.Zone{inside, fallback}), point)
	require.NoError(t, err)
	assert.Same(t, fallback, res.Zone)
	assert.True(t, res.IsOutOfZone)
}

func TestResolve_RadiusZeroContainsOnlyCenter(t *testing.T) {
	center := geo.NewCoordinate(10, 10)
	pin := newZone("pin", center, 0, "5", 1)
	catalog := NewCatalog([]*entity.Zone{pin})

	res, err := Resolve(catalog, center)
	require.NoError(t, err)
	assert.False(t, res.IsOutOfZone)

	res, err = Resolve(catalog, northOf(center, 0.001))
	require.NoError(t, err)
	assert.True(t, res.IsOutOfZone)
}

func TestResolve_NearestOverlappingZoneWins(t *testing.T) {
	point := geo.NewCoordinate(24.7337, 69.7967)
	far := newZone("far", northOf(point, 4), 10, "1", 1)
	near := newZone("near", northOf(point, 2), 10, "50", 2)

	res, err := Resolve(NewCatalog([]*entity.Zone{far, near}), point)

	require.NoError(t, err)
	assert.Same(t, near, res.Zone)
	assert.True(t, res.DeliveryCharge.Equal(decimal.NewFromInt(50)))
}

func TestResolve_DistanceTieGoesToLowerFee(t *testing.T) {
	center := geo.NewCoordinate(24.7337, 69.7967)
	expensive := newZone("expensive", center, 10, "6.99", 1)
	cheap := newZone("cheap", center, 5, "2.99", 2)

	res, err := Resolve(NewCatalog([]*entity.Zone{expensive, cheap}), northOf(center, 1))

	require.NoError(t, err)
	assert.Same(t, cheap, res.Zone)
}

func TestResolve_FullTieGoesToPriorityThenInsertion(t *testing.T) {
	center := geo.NewCoordinate(24.7337, 69.7967)
	second := newZone("second", center, 5, "3", 2)
	first := newZone("first", center, 5, "3", 1)

	res, err := Resolve(NewCatalog([]*entity.Zone{second, first}), center)
	require.NoError(t, err)
	assert.Same(t, first, res.Zone)

	a := newZone("a", center, 5, "3", 1)
	b := newZone("b", center, 5, "3", 1)
	b.CreatedAt = a.CreatedAt

	for range 10 {
		res, err = Resolve(NewCatalog([]*entity.Zone{a, b}), center)
		require.NoError(t, err)
		assert.Same(t, a, res.Zone)
	}
}

func TestResolve_OutOfZoneUsesHighestFee(t *testing.T) {
	center := geo.NewCoordinate(24.7337, 69.7967)
	zones := []*entity.Zone{
		newZone("low", center, 1, "2.99", 1),
		newZone("high", center, 2, "6.99", 2),
		newZone("mid", center, 3, "4.99", 3),
	}

	res, err := Resolve(NewCatalog(zones), northOf(center, 50))

	require.NoError(t, err)
	assert.Equal(t, "high", res.Zone.Name)
	assert.True(t, res.DeliveryCharge.Equal(decimal.RequireFromString("6.99")))
	assert.True(t, res.IsOutOfZone)
	assert.InDelta(t, 50, res.DistanceKm, 1e-6)
}

func TestResolve_InactiveZonesIgnored(t *testing.T) {
	center := geo.NewCoordinate(24.7337, 69.7967)
	inactive := newZone("inactive", center, 10, "100", 1)
	inactive.IsActive = false
	active := newZone("active", geo.NewCoordinate(0, 0), 1, "1", 2)

	res, err := Resolve(NewCatalog([]*entity.Zone{inactive, active}), center)

	require.NoError(t, err)
	assert.Same(t, active, res.Zone)
	assert.True(t, res.IsOutOfZone)
}

func TestResolve_NoActiveZones(t *testing.T) {
	inactive := newZone("inactive", geo.NewCoordinate(0, 0), 10, "1", 1)
	inactive.IsActive = false

	_, err := Resolve(NewCatalog([]*entity.Zone{inactive}), geo.NewCoordinate(0, 0))
	assert.ErrorIs(t, err, domainerrors.ErrNoZoneAvailable)

	_, err = Resolve(NewCatalog(nil), geo.NewCoordinate(0, 0))
	assert.ErrorIs(t, err, domainerrors.ErrNoZoneAvailable)
}

func TestResolve_InvalidCoordinates(t *testing.T) {
	catalog := NewCatalog([]*entity.Zone{newZone("z", geo.NewCoordinate(0, 0), 1, "1", 1)})

	for _, c := range []geo.Coordinate{
		geo.NewCoordinate(91, 0),
		geo.NewCoordinate(0, -181),
		geo.NewCoordinate(math.NaN(), 0),
	} {
		_, err := Resolve(catalog, c)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
	}
}

func TestResolve_StockZonesPickInnermostRing(t *testing.T) {
	catalog := NewCatalog(DefaultZones(baseTime))

	tests := []struct {
		distanceKm float64
		zone       string
		outOfZone  bool
	}{
		{distanceKm: 0, zone: "Zone 1 - Downtown"},
		{distanceKm: 7, zone: "Zone 2 - Midtown"},
		{distanceKm: 12, zone: "Zone 3 - Uptown"},
		{distanceKm: 19.5, zone: "Zone 4 - Suburbs"},
		{distanceKm: 30, zone: "Zone 4 - Suburbs", outOfZone: true},
	}

	for _, tt := range tests {
		res, err := Resolve(catalog, northOf(RestaurantCoordinate, tt.distanceKm))
		require.NoError(t, err)
		assert.Equal(t, tt.zone, res.Zone.Name, "%v km", tt.distanceKm)
		assert.Equal(t, tt.outOfZone, res.IsOutOfZone, "%v km", tt.distanceKm)
	}
}

func TestZoneFeeAt_Surcharge(t *testing.T) {
	zone := newZone("z", geo.NewCoordinate(0, 0), 5, "10", 1)
	zone.PerKmSurcharge = decimal.NewFromInt(3)

	assert.True(t, zone.FeeAt(4).Equal(decimal.NewFromInt(10)))
	assert.True(t, zone.FeeAt(5).Equal(decimal.NewFromInt(10)))
	// round(1.5 * 3) = round(4.5) = 5
	assert.True(t, zone.FeeAt(6.5).Equal(decimal.NewFromInt(15)), zone.FeeAt(6.5).String())
}

func TestCatalog_PrefilterKeepsHaversineResult(t *testing.T) {
	centers := []geo.Coordinate{
		geo.NewCoordinate(24.7337, 69.7967),
		geo.NewCoordinate(-33.8688, 151.2093),
		geo.NewCoordinate(64.1466, -21.9426),
		geo.NewCoordinate(89.5, 0),
		geo.NewCoordinate(0, 179.99),
	}

	for _, center := range centers {
		point := northOf(center, 0)
		point.Longitude += 0.05
		if point.Longitude > 180 {
			point.Longitude -= 360
		}
		exact := geo.DistanceKm(center, point)
		zone := newZone("z", center, exact, "1", 1)
		catalog := NewCatalog([]*entity.Zone{zone})

		matches := catalog.Containing(point)
		require.Len(t, matches, 1, "center %+v", center)
		assert.Equal(t, exact, matches[0].DistanceKm)
	}
}

func TestResolve_ZoneNearAntimeridian(t *testing.T) {
	fiji := newZone("fiji", geo.NewCoordinate(-17.8, 179.99), 10, "30", 1)
	far := newZone("far", geo.NewCoordinate(0, 0), 1, "99", 2)
	catalog := NewCatalog([]*entity.Zone{fiji, far})

	for _, point := range []geo.Coordinate{
		geo.NewCoordinate(-17.8, 179.991),
		geo.NewCoordinate(-17.8, -179.95),
	} {
		res, err := Resolve(catalog, point)
		require.NoError(t, err)
		assert.Same(t, fiji, res.Zone, "point %+v", point)
		assert.False(t, res.IsOutOfZone)
		assert.True(t, res.DeliveryCharge.Equal(decimal.NewFromInt(30)))
	}
}
