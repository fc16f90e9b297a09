package model

import (
	"time"

	"pizzahouse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ZoneModel is the GORM-specific struct for the 'delivery_zones' table.
type ZoneModel struct {
	ID                 uuid.UUID                                 `gorm:"type:uuid;primary_key"`
	Name               string                                    `gorm:"type:varchar(255);not null"`
	CenterLatitude     float64                                   `gorm:"type:decimal(10,8);not null"`
	CenterLongitude    float64                                   `gorm:"type:decimal(11,8);not null"`
	RadiusKm           float64                                   `gorm:"type:decimal(8,3);not null"`
	BaseFee            decimal.Decimal                           `gorm:"type:numeric(12,2);not null;default:0"`
	PerKmSurcharge     decimal.Decimal                           `gorm:"type:numeric(12,2);not null;default:0"`
	MinimumOrderAmount decimal.Decimal                           `gorm:"type:numeric(12,2);not null;default:0"`
	MaxDeliveryMinutes int                                       `gorm:"not null;default:0"`
	Priority           int                                       `gorm:"not null;default:0;index:idx_delivery_zones_resolution,priority:2"`
	OperatingHours     datatypes.JSONType[entity.OperatingHours] `gorm:"type:jsonb;not null"`
	IsActive           bool                                      `gorm:"not null;default:true;index:idx_delivery_zones_resolution,priority:1"`
	TimeSlots          []ZoneTimeSlotModel                       `gorm:"foreignKey:ZoneID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time                                 `gorm:"index:idx_delivery_zones_resolution,priority:3"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ZoneModel) TableName() string {
	return "delivery_zones"
}

// ZoneTimeSlotModel is the GORM-specific struct for the 'zone_time_slots' table.
// Position keeps the configured slot order.
type ZoneTimeSlotModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	ZoneID        uuid.UUID `gorm:"type:uuid;not null;index:idx_zone_time_slots_zone"`
	Position      int       `gorm:"not null;default:0"`
	StartMinute   int       `gorm:"not null"`
	EndMinute     int       `gorm:"not null"`
	MaxOrders     int       `gorm:"not null;default:0"`
	CurrentOrders int       `gorm:"not null;default:0;check:chk_zone_time_slots_capacity,current_orders >= 0"`
	IsAvailable   bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ZoneTimeSlotModel) TableName() string {
	return "zone_time_slots"
}
