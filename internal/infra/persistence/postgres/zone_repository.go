package postgres

import (
	"context"

	"pizzahouse/internal/domain/entity"
	domainerrors "pizzahouse/internal/domain/errors"
	"pizzahouse/internal/domain/geo"
	"pizzahouse/internal/domain/repository"
	"pizzahouse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// slotUpsertColumns are overwritten when a slot already exists. current_orders is
// left alone so concurrent bookings survive a zone edit.
var slotUpsertColumns = []string{"zone_id", "position", "start_minute", "end_minute", "max_orders", "is_available", "updated_at"}

// zoneRepository implements the repository.ZoneRepository interface.
type zoneRepository struct {
	db *gorm.DB
}

// NewZoneRepository is the constructor for zoneRepository.
func NewZoneRepository(db *gorm.DB) repository.ZoneRepository {
	return &zoneRepository{
		db: db,
	}
}

func preloadSlots(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// FindActiveZones returns active zones ordered by priority then creation time.
func (repo *zoneRepository) FindActiveZones(ctx context.Context) ([]*entity.Zone, error) {
	var zoneModels []*model.ZoneModel

	if err := repo.db.WithContext(ctx).
		Preload("TimeSlots", preloadSlots).
		Where("is_active = ?", true).
		Order("priority ASC, created_at ASC").
		Find(&zoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active zones")
	}

	zones := make([]*entity.Zone, 0, len(zoneModels))
	for _, zoneM := range zoneModels {
		zones = append(zones, toZoneDomain(zoneM))
	}

	return zones, nil
}

// FindZoneByID retrieves a zone by its unique ID.
func (repo *zoneRepository) FindZoneByID(ctx context.Context, id uuid.UUID) (*entity.Zone, error) {
	var zoneM model.ZoneModel

	if err := repo.db.WithContext(ctx).
		Preload("TimeSlots", preloadSlots).
		Where("id = ?", id).
		First(&zoneM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrZoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find zone by ID")
	}

	return toZoneDomain(&zoneM), nil
}

// SaveZone upserts the zone row and reconciles its slots.
func (repo *zoneRepository) SaveZone(ctx context.Context, zone *entity.Zone) error {
	zoneM := fromZoneDomain(zone)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveZoneModel(tx, zoneM)
	})
	if err != nil {
		return translateWriteError(err, "failed to save zone")
	}

	zone.CreatedAt = zoneM.CreatedAt
	zone.UpdatedAt = zoneM.UpdatedAt

	return nil
}

func saveZoneModel(tx *gorm.DB, zoneM *model.ZoneModel) error {
	if err := tx.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(zoneUpsertColumns),
		}).
		Create(zoneM).Error; err != nil {
		return err
	}

	keep := make([]uuid.UUID, 0, len(zoneM.TimeSlots))
	for _, slot := range zoneM.TimeSlots {
		keep = append(keep, slot.ID)
	}

	stale := tx.Where("zone_id = ?", zoneM.ID)
	if len(keep) > 0 {
		stale = stale.Where("id NOT IN ?", keep)
	}
	if err := stale.Delete(&model.ZoneTimeSlotModel{}).Error; err != nil {
		return err
	}

	if len(zoneM.TimeSlots) == 0 {
		return nil
	}

	// Capacity is compared with the locked row, so a booking that landed after
	// the caller read the zone still blocks a shrink below it.
	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(slotUpsertColumns),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "zone_time_slots.current_orders <= excluded.max_orders"},
		}},
	}).Create(&zoneM.TimeSlots)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != int64(len(zoneM.TimeSlots)) {
		return repository.ErrSlotOverbooked
	}

	return nil
}

var zoneUpsertColumns = []string{
	"name", "center_latitude", "center_longitude", "radius_km", "base_fee", "per_km_surcharge",
	"minimum_order_amount", "max_delivery_minutes", "priority", "operating_hours", "is_active", "updated_at",
}

// DeactivateZone soft-deletes a zone by clearing its active flag.
func (repo *zoneRepository) DeactivateZone(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ZoneModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate zone")
	}

	if result.RowsAffected == 0 {
		return repository.ErrZoneNotFound
	}

	return nil
}

// ReplaceAllZones deactivates the current catalog and stores zones in one transaction.
func (repo *zoneRepository) ReplaceAllZones(ctx context.Context, zones []*entity.Zone) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ZoneModel{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		for _, zone := range zones {
			if err := saveZoneModel(tx, fromZoneDomain(zone)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return translateWriteError(err, "failed to replace zones")
	}

	return nil
}

// BookSlot increments current_orders only while the slot is available and below capacity.
func (repo *zoneRepository) BookSlot(ctx context.Context, zoneID, slotID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ZoneTimeSlotModel{}).
		Where("id = ? AND zone_id = ?", slotID, zoneID).
		Where("is_available = ? AND current_orders < max_orders", true).
		UpdateColumn("current_orders", gorm.Expr("current_orders + ?", 1))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to book time slot")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ZoneTimeSlotModel{}).
		Where("id = ? AND zone_id = ?", slotID, zoneID).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to look up time slot")
	}

	if count == 0 {
		return repository.ErrSlotNotFound
	}

	return repository.ErrSlotFull
}

// ResetSlotBookings zeroes every booked slot.
func (repo *zoneRepository) ResetSlotBookings(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ZoneTimeSlotModel{}).
		Where("current_orders > ?", 0).
		UpdateColumn("current_orders", 0)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to reset slot bookings")
	}

	return result.RowsAffected, nil
}

func translateWriteError(err error, details string) error {
	switch {
	case errors.Is(err, repository.ErrSlotOverbooked):
		return err
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrInvalidInput.WithDetails("duplicate identifier")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrInvalidInput.WithDetails("invalid reference")
	case isCheckConstraintViolation(err), isNotNullConstraintViolation(err):
		return domainerrors.ErrInvalidInput.WithDetails("missing or out-of-range value")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func toZoneDomain(data *model.ZoneModel) *entity.Zone {
	slots := make([]entity.TimeSlot, 0, len(data.TimeSlots))
	for _, slotM := range data.TimeSlots {
		slots = append(slots, entity.TimeSlot{
			ID:            slotM.ID,
			Start:         entity.ClockTime(slotM.StartMinute),
			End:           entity.ClockTime(slotM.EndMinute),
			MaxOrders:     slotM.MaxOrders,
			CurrentOrders: slotM.CurrentOrders,
			IsAvailable:   slotM.IsAvailable,
		})
	}

	hours := data.OperatingHours.Data()
	if hours == nil {
		hours = entity.OperatingHours{}
	}

	return &entity.Zone{
		ID:                 data.ID,
		Name:               data.Name,
		Center:             geo.NewCoordinate(data.CenterLatitude, data.CenterLongitude),
		RadiusKm:           data.RadiusKm,
		BaseFee:            data.BaseFee,
		PerKmSurcharge:     data.PerKmSurcharge,
		MinimumOrderAmount: data.MinimumOrderAmount,
		MaxDeliveryMinutes: data.MaxDeliveryMinutes,
		Priority:           data.Priority,
		OperatingHours:     hours,
		TimeSlots:          slots,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromZoneDomain(data *entity.Zone) *model.ZoneModel {
	slots := make([]model.ZoneTimeSlotModel, 0, len(data.TimeSlots))
	for i, slot := range data.TimeSlots {
		slots = append(slots, model.ZoneTimeSlotModel{
			ID:            slot.ID,
			ZoneID:        data.ID,
			Position:      i,
			StartMinute:   int(slot.Start),
			EndMinute:     int(slot.End),
			MaxOrders:     slot.MaxOrders,
			CurrentOrders: slot.CurrentOrders,
			IsAvailable:   slot.IsAvailable,
		})
	}

	return &model.ZoneModel{
		ID:                 data.ID,
		Name:               data.Name,
		CenterLatitude:     data.Center.Latitude,
		CenterLongitude:    data.Center.Longitude,
		RadiusKm:           data.RadiusKm,
		BaseFee:            data.BaseFee,
		PerKmSurcharge:     data.PerKmSurcharge,
		MinimumOrderAmount: data.MinimumOrderAmount,
		MaxDeliveryMinutes: data.MaxDeliveryMinutes,
		Priority:           data.Priority,
		OperatingHours:     datatypes.NewJSONType(data.OperatingHours),
		IsActive:           data.IsActive,
		TimeSlots:          slots,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
