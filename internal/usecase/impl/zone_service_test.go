package impl

import (
	"context"
	"testing"
	"time"

	"pizzahouse/internal/domain/entity"
	domainerrors "pizzahouse/internal/domain/errors"
	"pizzahouse/internal/domain/geo"
	"pizzahouse/internal/domain/repository"
	"pizzahouse/internal/errors"
	"pizzahouse/internal/infra/clock"
	mockRepo "pizzahouse/internal/mocks/repository"
	"pizzahouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newZoneService(t *testing.T, now time.Time) (*zoneService, *mockRepo.MockZoneRepository) {
	t.Helper()

	repo := mockRepo.NewMockZoneRepository(t)
	svc := NewZoneService(ZoneServiceParams{
		ZoneRepo: repo,
		Clock:    clock.NewMockClock(now),
		Config:   testConfig(),
		Logger:   discardLogger(),
	}).(*zoneService)

	return svc, repo
}

func zoneInput() *usecase.ZoneInput {
	return &usecase.ZoneInput{
		Name:               "Zone C",
		Center:             geo.NewCoordinate(24.74, 69.80),
		RadiusKm:           6,
		BaseFee:            decimal.NewFromInt(100),
		MinimumOrderAmount: decimal.NewFromInt(800),
		MaxDeliveryMinutes: 40,
		Priority:           3,
		OperatingHours:     entity.UniformOperatingHours(entity.NewClockTime(11, 0), entity.NewClockTime(23, 0)),
	}
}

func TestZoneService_ResolveZone(t *testing.T) {
	ctx := context.Background()

	t.Run("inside zone", func(t *testing.T) {
		svc, repo := newZoneService(t, mondayAt(12, 0))
		zone := zoneA()
		repo.EXPECT().FindActiveZones(ctx).Return([]*entity.Zone{zone}, nil).Once()

		resolution, err := svc.ResolveZone(ctx, zone.Center)
		require.NoError(t, err)
		assert.Same(t, zone, resolution.Zone)
		assert.False(t, resolution.IsOutOfZone)
		assert.True(t, resolution.DeliveryCharge.Equal(decimal.NewFromInt(30)))
		assert.InDelta(t, 0, resolution.DistanceKm, 1e-9)
	})

	t.Run("no active zones", func(t *testing.T) {
		svc, repo := newZoneService(t, mondayAt(12, 0))
		repo.EXPECT().FindActiveZones(ctx).Return(nil, nil).Once()

		_, err := svc.ResolveZone(ctx, geo.NewCoordinate(24.73, 69.79))
		require.ErrorIs(t, err, domainerrors.ErrNoZoneAvailable)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		svc, _ := newZoneService(t, mondayAt(12, 0))

		_, err := svc.ResolveZone(ctx, geo.NewCoordinate(0, 181))
		require.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, repo := newZoneService(t, mondayAt(12, 0))
		repo.EXPECT().FindActiveZones(ctx).Return(nil, errors.New("connection refused")).Once()

		_, err := svc.ResolveZone(ctx, geo.NewCoordinate(24.73, 69.79))
		require.Error(t, err)
		assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
	})
}

func TestZoneService_AvailableSlotsSynthesizedForToday(t *testing.T) {
	ctx := context.Background()
	svc, repo := newZoneService(t, mondayAt(15, 30))
	zone := zoneA()
	repo.EXPECT().FindZoneByID(ctx, zone.ID).Return(zone, nil).Once()

	slots, err := svc.AvailableSlots(ctx, zone.ID, nil)
	require.NoError(t, err)

	require.Len(t, slots, 7)
	assert.Equal(t, "16:00", slots[0].Start.String())
	assert.Equal(t, "22:00", slots[6].Start.String())
	assert.Equal(t, "23:00", slots[6].End.String())
	for _, slot := range slots {
		assert.Equal(t, 10, slot.MaxOrders)
	}
}

func TestZoneService_AvailableSlotsOtherDayIsNotTimeFiltered(t *testing.T) {
	ctx := context.Background()
	svc, repo := newZoneService(t, mondayAt(22, 30))
	zone := zoneA()
	zone.TimeSlots = []entity.TimeSlot{
		{ID: uuid.New(), Start: entity.NewClockTime(12, 0), End: entity.NewClockTime(13, 0), MaxOrders: 2, IsAvailable: true},
		{ID: uuid.New(), Start: entity.NewClockTime(13, 0), End: entity.NewClockTime(14, 0), MaxOrders: 2, CurrentOrders: 2, IsAvailable: true},
		{ID: uuid.New(), Start: entity.NewClockTime(14, 0), End: entity.NewClockTime(15, 0), MaxOrders: 2, IsAvailable: false},
	}
	repo.EXPECT().FindZoneByID(ctx, zone.ID).Return(zone, nil).Once()

	tuesday := entity.Weekday(time.Tuesday)
	slots, err := svc.AvailableSlots(ctx, zone.ID, &tuesday)
	require.NoError(t, err)

	require.Len(t, slots, 1)
	assert.Equal(t, zone.TimeSlots[0].ID, slots[0].ID)
}

func TestZoneService_AvailableSlotsInactiveZone(t *testing.T) {
	ctx := context.Background()
	svc, repo := newZoneService(t, mondayAt(12, 0))
	zone := zoneA()
	zone.IsActive = false
	repo.EXPECT().FindZoneByID(ctx, zone.ID).Return(zone, nil).Once()

	_, err := svc.AvailableSlots(ctx, zone.ID, nil)
	require.ErrorIs(t, err, domainerrors.ErrZoneNotFound)
}

func TestZoneService_AvailableSlotsMissingZone(t *testing.T) {
	ctx := context.Background()
	svc, repo := newZoneService(t, mondayAt(12, 0))
	zoneID := uuid.New()
	repo.EXPECT().FindZoneByID(ctx, zoneID).Return(nil, repository.ErrZoneNotFound).Once()

	_, err := svc.AvailableSlots(ctx, zoneID, nil)
	require.ErrorIs(t, err, domainerrors.ErrZoneNotFound)
}

func TestZoneService_CreateZone(t *testing.T) {
	ctx := context.Background()

	t.Run("valid zone", func(t *testing.T) {
		svc, repo := newZoneService(t, mondayAt(9, 0))
		repo.EXPECT().SaveZone(ctx, mock.AnythingOfType("*entity.Zone")).Return(nil).Once()

		input := zoneInput()
		input.TimeSlots = []usecase.TimeSlotInput{
			{Start: entity.NewClockTime(18, 0), End: entity.NewClockTime(19, 0), MaxOrders: 8},
		}

		zone, err := svc.CreateZone(ctx, input)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, zone.ID)
		assert.True(t, zone.IsActive)
		assert.Equal(t, mondayAt(9, 0), zone.CreatedAt)
		require.Len(t, zone.TimeSlots, 1)
		assert.True(t, zone.TimeSlots[0].IsAvailable)
		assert.Zero(t, zone.TimeSlots[0].CurrentOrders)
	})

	t.Run("negative radius", func(t *testing.T) {
		svc, _ := newZoneService(t, mondayAt(9, 0))
		input := zoneInput()
		input.RadiusKm = -1

		_, err := svc.CreateZone(ctx, input)
		require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("inverted slot", func(t *testing.T) {
		svc, _ := newZoneService(t, mondayAt(9, 0))
		input := zoneInput()
		input.TimeSlots = []usecase.TimeSlotInput{
			{Start: entity.NewClockTime(19, 0), End: entity.NewClockTime(18, 0), MaxOrders: 8},
		}

		_, err := svc.CreateZone(ctx, input)
		require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})
}

func TestZoneService_UpdateZoneKeepsBookedCounters(t *testing.T) {
	ctx := context.Background()
	svc, repo := newZoneService(t, mondayAt(10, 0))
	existing := zoneA()
	existing.CreatedAt = mondayAt(8, 0)
	kept := entity.TimeSlot{ID: uuid.New(), Start: entity.NewClockTime(18, 0), End: entity.NewClockTime(19, 0), MaxOrders: 5, CurrentOrders: 3, IsAvailable: true}
	dropped := entity.TimeSlot{ID: uuid.New(), Start: entity.NewClockTime(19, 0), End: entity.NewClockTime(20, 0), MaxOrders: 5, CurrentOrders: 1, IsAvailable: true}
	existing.TimeSlots = []entity.TimeSlot{kept, dropped}

	repo.EXPECT().FindZoneByID(ctx, existing.ID).Return(existing, nil).Once()
	repo.EXPECT().SaveZone(ctx, mock.AnythingOfType("*entity.Zone")).Return(nil).Once()

	input := zoneInput()
	input.TimeSlots = []usecase.TimeSlotInput{
		{ID: &kept.ID, Start: kept.Start, End: kept.End, MaxOrders: 6},
		{Start: entity.NewClockTime(21, 0), End: entity.NewClockTime(22, 0), MaxOrders: 4},
	}

	zone, err := svc.UpdateZone(ctx, existing.ID, input)
	require.NoError(t, err)

	assert.Equal(t, existing.ID, zone.ID)
	assert.Equal(t, mondayAt(8, 0), zone.CreatedAt)
	assert.Equal(t, mondayAt(10, 0), zone.UpdatedAt)
	assert.Equal(t, "Zone C", zone.Name)
	require.Len(t, zone.TimeSlots, 2)
	assert.Equal(t, kept.ID, zone.TimeSlots[0].ID)
	assert.Equal(t, 3, zone.TimeSlots[0].CurrentOrders)
	assert.Equal(t, 6, zone.TimeSlots[0].MaxOrders)
	assert.Zero(t, zone.TimeSlots[1].CurrentOrders)
	assert.Equal(t, "Zone A", existing.Name, "stored zone must not be mutated")
}

func TestZoneService_UpdateZoneRejectsCapacityBelowBookings(t *testing.T) {
	ctx := context.Background()
	svc, repo := newZoneService(t, mondayAt(10, 0))
	existing := zoneA()
	slot := entity.TimeSlot{ID: uuid.New(), Start: entity.NewClockTime(18, 0), End: entity.NewClockTime(19, 0), MaxOrders: 5, CurrentOrders: 4, IsAvailable: true}
	existing.TimeSlots = []entity.TimeSlot{slot}
	repo.EXPECT().FindZoneByID(ctx, existing.ID).Return(existing, nil).Once()

	input := zoneInput()
	input.TimeSlots = []usecase.TimeSlotInput{{ID: &slot.ID, Start: slot.Start, End: slot.End, MaxOrders: 2}}

	_, err := svc.UpdateZone(ctx, existing.ID, input)
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestZoneService_UpdateZoneLosesRaceWithBooking(t *testing.T) {
	ctx := context.Background()
	svc, repo := newZoneService(t, mondayAt(10, 0))
	existing := zoneA()
	slot := entity.TimeSlot{ID: uuid.New(), Start: entity.NewClockTime(18, 0), End: entity.NewClockTime(19, 0), MaxOrders: 5, CurrentOrders: 2, IsAvailable: true}
	existing.TimeSlots = []entity.TimeSlot{slot}
	repo.EXPECT().FindZoneByID(ctx, existing.ID).Return(existing, nil).Once()
	// The stale read passes the capacity check; the store sees the newer bookings.
	repo.EXPECT().SaveZone(ctx, mock.AnythingOfType("*entity.Zone")).Return(repository.ErrSlotOverbooked).Once()

	input := zoneInput()
	input.TimeSlots = []usecase.TimeSlotInput{{ID: &slot.ID, Start: slot.Start, End: slot.End, MaxOrders: 3}}

	_, err := svc.UpdateZone(ctx, existing.ID, input)
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	_, isDBErr := errors.Find[*domainerrors.DatabaseExecuteError](err)
	assert.False(t, isDBErr)
}

func TestZoneService_DeactivateZone(t *testing.T) {
	ctx := context.Background()
	svc, repo := newZoneService(t, mondayAt(10, 0))
	zoneID := uuid.New()
	repo.EXPECT().DeactivateZone(ctx, zoneID).Return(repository.ErrZoneNotFound).Once()

	err := svc.DeactivateZone(ctx, zoneID)
	require.ErrorIs(t, err, domainerrors.ErrZoneNotFound)
}

func TestZoneService_RestoreDefaultZones(t *testing.T) {
	ctx := context.Background()
	svc, repo := newZoneService(t, mondayAt(10, 0))
	repo.EXPECT().
		ReplaceAllZones(ctx, mock.MatchedBy(func(zones []*entity.Zone) bool { return len(zones) == 4 })).
		Return(nil).
		Once()

	zones, err := svc.RestoreDefaultZones(ctx)
	require.NoError(t, err)
	require.Len(t, zones, 4)
	for _, zone := range zones {
		assert.True(t, zone.IsActive)
		assert.NoError(t, zone.Validate())
	}
}

func TestZoneService_SeedDefaultZones(t *testing.T) {
	ctx := context.Background()

	t.Run("empty catalog", func(t *testing.T) {
		svc, repo := newZoneService(t, mondayAt(10, 0))
		repo.EXPECT().FindActiveZones(ctx).Return(nil, nil).Once()
		repo.EXPECT().ReplaceAllZones(ctx, mock.Anything).Return(nil).Once()

		seeded, err := svc.SeedDefaultZones(ctx)
		require.NoError(t, err)
		assert.True(t, seeded)
	})

	t.Run("catalog already populated", func(t *testing.T) {
		svc, repo := newZoneService(t, mondayAt(10, 0))
		repo.EXPECT().FindActiveZones(ctx).Return([]*entity.Zone{zoneA()}, nil).Once()

		seeded, err := svc.SeedDefaultZones(ctx)
		require.NoError(t, err)
		assert.False(t, seeded)
	})
}

func TestZoneService_ResetSlotBookings(t *testing.T) {
	ctx := context.Background()
	svc, repo := newZoneService(t, mondayAt(0, 0))
	repo.EXPECT().ResetSlotBookings(ctx).Return(int64(12), nil).Once()

	reset, err := svc.ResetSlotBookings(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), reset)
}
