package impl

import (
	"context"
	"log/slog"
	"time"

	"pizzahouse/config"
	deliverycontext "pizzahouse/internal/delivery/context"
	"pizzahouse/internal/domain/entity"
	domainerrors "pizzahouse/internal/domain/errors"
	"pizzahouse/internal/domain/geo"
	"pizzahouse/internal/domain/repository"
	"pizzahouse/internal/domain/service"
	"pizzahouse/internal/domain/zoning"
	"pizzahouse/internal/errors"
	"pizzahouse/internal/infra/metrics"
	"pizzahouse/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type zoneService struct {
	zoneRepo repository.ZoneRepository
	clock    service.Clock
	policy   zoning.SlotPolicy
	logger   *slog.Logger
}

// ZoneServiceParams holds dependencies for ZoneService, injected by Fx.
type ZoneServiceParams struct {
	fx.In

	ZoneRepo repository.ZoneRepository
	Clock    service.Clock
	Config   *config.Config
	Logger   *slog.Logger
}

// NewZoneService creates a new zone service instance
func NewZoneService(params ZoneServiceParams) usecase.ZoneUsecase {
	var policy zoning.SlotPolicy
	if cfg := params.Config.Fulfillment; cfg != nil {
		policy = zoning.SlotPolicy{
			DefaultCapacity: cfg.DefaultSlotCapacity,
			SlotLength:      cfg.SlotLength,
		}
	}

	return &zoneService{
		zoneRepo: params.ZoneRepo,
		clock:    params.Clock,
		policy:   policy,
		logger:   params.Logger,
	}
}

func (s *zoneService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ResolveZone prices a delivery to location against the current active zones.
func (s *zoneService) ResolveZone(ctx context.Context, location geo.Coordinate) (*zoning.Resolution, error) {
	if !location.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetailsf("lat=%v lng=%v", location.Latitude, location.Longitude)
	}

	zones, err := s.zoneRepo.FindActiveZones(ctx)
	if err != nil {
		return nil, translateRepoError(err, "failed to load active zones")
	}

	resolution, err := resolveLocation(zones, location)
	if err != nil {
		return nil, err
	}

	return &resolution, nil
}

// resolveLocation runs the resolver over a fresh catalog and records the outcome.
func resolveLocation(zones []*entity.Zone, location geo.Coordinate) (zoning.Resolution, error) {
	resolution, err := zoning.Resolve(zoning.NewCatalog(zones), location)
	switch {
	case errors.Is(err, domainerrors.ErrNoZoneAvailable):
		metrics.ZoneResolutionsTotal.WithLabelValues("unavailable").Inc()

		return zoning.Resolution{}, err
	case err != nil:
		return zoning.Resolution{}, err
	case resolution.IsOutOfZone:
		metrics.ZoneResolutionsTotal.WithLabelValues("out_of_zone").Inc()
	default:
		metrics.ZoneResolutionsTotal.WithLabelValues("in_zone").Inc()
	}

	return resolution, nil
}

// AvailableSlots lists the bookable slots of an active zone for day, today when nil.
func (s *zoneService) AvailableSlots(ctx context.Context, zoneID uuid.UUID, day *entity.Weekday) ([]entity.TimeSlot, error) {
	zone, err := s.zoneRepo.FindZoneByID(ctx, zoneID)
	if err != nil {
		return nil, translateRepoError(err, "failed to load zone")
	}
	if !zone.IsActive {
		return nil, domainerrors.ErrZoneNotFound.WithDetails("zone is not active")
	}

	now := s.clock.Now()
	target := entity.WeekdayOf(now)
	if day != nil {
		target = *day
	}

	return zoning.AvailableSlots(zone, target, now, s.policy), nil
}

func (s *zoneService) ListActiveZones(ctx context.Context) ([]*entity.Zone, error) {
	zones, err := s.zoneRepo.FindActiveZones(ctx)
	if err != nil {
		return nil, translateRepoError(err, "failed to load active zones")
	}

	return zoning.NewCatalog(zones).Zones(), nil
}

func (s *zoneService) GetZone(ctx context.Context, zoneID uuid.UUID) (*entity.Zone, error) {
	zone, err := s.zoneRepo.FindZoneByID(ctx, zoneID)
	if err != nil {
		return nil, translateRepoError(err, "failed to load zone")
	}

	return zone, nil
}

// CreateZone validates and stores a new zone.
func (s *zoneService) CreateZone(ctx context.Context, input *usecase.ZoneInput) (*entity.Zone, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("zone body is required")
	}

	now := s.clock.Now()
	zone := buildZone(&entity.Zone{ID: uuid.New(), CreatedAt: now}, input, now)
	if err := zone.Validate(); err != nil {
		return nil, err
	}

	if err := s.zoneRepo.SaveZone(ctx, zone); err != nil {
		return nil, translateRepoError(err, "failed to save zone")
	}

	s.log(ctx).Info("Zone created", slog.String("zone_id", zone.ID.String()), slog.String("name", zone.Name))

	return zone, nil
}

// UpdateZone replaces a zone's settings, keeping its id, creation time and the
// booked counters of slots it still has.
func (s *zoneService) UpdateZone(ctx context.Context, zoneID uuid.UUID, input *usecase.ZoneInput) (*entity.Zone, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("zone body is required")
	}

	existing, err := s.zoneRepo.FindZoneByID(ctx, zoneID)
	if err != nil {
		return nil, translateRepoError(err, "failed to load zone")
	}

	zone := buildZone(existing, input, s.clock.Now())
	if err := zone.Validate(); err != nil {
		return nil, err
	}

	if err := s.zoneRepo.SaveZone(ctx, zone); err != nil {
		return nil, translateRepoError(err, "failed to save zone")
	}

	s.log(ctx).Info("Zone updated", slog.String("zone_id", zone.ID.String()))

	return zone, nil
}

func (s *zoneService) DeactivateZone(ctx context.Context, zoneID uuid.UUID) error {
	if err := s.zoneRepo.DeactivateZone(ctx, zoneID); err != nil {
		return translateRepoError(err, "failed to deactivate zone")
	}

	s.log(ctx).Info("Zone deactivated", slog.String("zone_id", zoneID.String()))

	return nil
}

// RestoreDefaultZones replaces the catalog with the stock zones.
func (s *zoneService) RestoreDefaultZones(ctx context.Context) ([]*entity.Zone, error) {
	zones := zoning.DefaultZones(s.clock.Now())
	if err := s.zoneRepo.ReplaceAllZones(ctx, zones); err != nil {
		return nil, translateRepoError(err, "failed to restore default zones")
	}

	s.log(ctx).Info("Default zones restored", slog.Int("count", len(zones)))

	return zones, nil
}

func (s *zoneService) SeedDefaultZones(ctx context.Context) (bool, error) {
	zones, err := s.zoneRepo.FindActiveZones(ctx)
	if err != nil {
		return false, translateRepoError(err, "failed to load active zones")
	}
	if len(zones) > 0 {
		return false, nil
	}

	if _, err := s.RestoreDefaultZones(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func (s *zoneService) ResetSlotBookings(ctx context.Context) (int64, error) {
	reset, err := s.zoneRepo.ResetSlotBookings(ctx)
	if err != nil {
		return 0, translateRepoError(err, "failed to reset slot bookings")
	}

	return reset, nil
}

// buildZone applies input onto base. Slots matching an existing id keep their
// booked counter; new slots start empty.
func buildZone(base *entity.Zone, input *usecase.ZoneInput, now time.Time) *entity.Zone {
	zone := *base
	zone.UpdatedAt = now
	zone.Name = input.Name
	zone.Center = input.Center
	zone.RadiusKm = input.RadiusKm
	zone.BaseFee = input.BaseFee
	zone.PerKmSurcharge = input.PerKmSurcharge
	zone.MinimumOrderAmount = input.MinimumOrderAmount
	zone.MaxDeliveryMinutes = input.MaxDeliveryMinutes
	zone.Priority = input.Priority
	zone.OperatingHours = input.OperatingHours
	zone.IsActive = input.IsActive == nil || *input.IsActive

	booked := make(map[uuid.UUID]int, len(base.TimeSlots))
	for _, slot := range base.TimeSlots {
		booked[slot.ID] = slot.CurrentOrders
	}

	zone.TimeSlots = make([]entity.TimeSlot, 0, len(input.TimeSlots))
	for _, in := range input.TimeSlots {
		slot := entity.TimeSlot{
			ID:          uuid.New(),
			Start:       in.Start,
			End:         in.End,
			MaxOrders:   in.MaxOrders,
			IsAvailable: in.IsAvailable == nil || *in.IsAvailable,
		}
		if in.ID != nil {
			slot.ID = *in.ID
			slot.CurrentOrders = booked[*in.ID]
		}
		zone.TimeSlots = append(zone.TimeSlots, slot)
	}

	return &zone
}
