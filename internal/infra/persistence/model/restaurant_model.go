package model

import (
	"time"

	"pizzahouse/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RestaurantLocationModel is the GORM-specific struct for the 'restaurant_locations' table.
type RestaurantLocationModel struct {
	ID             uuid.UUID                                 `gorm:"type:uuid;primary_key"`
	Name           string                                    `gorm:"type:varchar(255);not null"`
	BranchName     string                                    `gorm:"type:varchar(255);not null"`
	Address        string                                    `gorm:"type:text;not null"`
	City           string                                    `gorm:"type:varchar(100);not null"`
	Latitude       float64                                   `gorm:"type:decimal(10,8);not null"`
	Longitude      float64                                   `gorm:"type:decimal(11,8);not null"`
	ContactNumber  string                                    `gorm:"type:varchar(50)"`
	OperatingHours datatypes.JSONType[entity.OperatingHours] `gorm:"type:jsonb;not null"`
	IsActive       bool                                      `gorm:"not null;default:true;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantLocationModel) TableName() string {
	return "restaurant_locations"
}
