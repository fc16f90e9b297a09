package model

import (
	"time"

	"pizzahouse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Line items are stored as a jsonb document; the delivery address is flattened.
type OrderModel struct {
	ID                    uuid.UUID                              `gorm:"type:uuid;primary_key"`
	UserID                uuid.UUID                              `gorm:"type:uuid;not null;index"`
	Items                 datatypes.JSONType[[]entity.OrderItem] `gorm:"type:jsonb;not null"`
	DeliveryCharge        decimal.Decimal                        `gorm:"type:numeric(12,2);not null;default:0"`
	Tax                   decimal.Decimal                        `gorm:"type:numeric(12,2);not null;default:0"`
	Discount              decimal.Decimal                        `gorm:"type:numeric(12,2);not null;default:0"`
	OrderType             string                                 `gorm:"type:varchar(20);not null"`
	DeliveryStreet        *string                                `gorm:"type:varchar(255)"`
	DeliveryCity          *string                                `gorm:"type:varchar(100)"`
	DeliveryPostalCode    *string                                `gorm:"type:varchar(20)"`
	DeliveryInstructions  *string                                `gorm:"type:text"`
	DeliveryLatitude      *float64                               `gorm:"type:decimal(10,8)"`
	DeliveryLongitude     *float64                               `gorm:"type:decimal(11,8)"`
	ZoneID                *uuid.UUID                             `gorm:"type:uuid;index"`
	TimeSlotID            *uuid.UUID                             `gorm:"type:uuid"`
	IsOutOfZone           bool                                   `gorm:"not null;default:false"`
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	PaymentMethod         string                                 `gorm:"type:varchar(20);not null;default:'cash'"`
	PaymentStatus         string                                 `gorm:"type:varchar(20);not null;default:'pending'"`
	Status                string                                 `gorm:"type:varchar(30);not null;index"`
	Notes                 string                                 `gorm:"type:text"`
	CancellationReason    string                                 `gorm:"type:text"`
	CreatedAt             time.Time                              `gorm:"index"`
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
