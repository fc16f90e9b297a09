package entity

import (
	"time"

	"pizzahouse/internal/domain/geo"

	"github.com/google/uuid"
)

// RestaurantLocation is a physical branch that prepares orders.
type RestaurantLocation struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	BranchName     string         `json:"branchName"`
	Address        string         `json:"address"`
	City           string         `json:"city"`
	Coordinates    geo.Coordinate `json:"coordinates"`
	ContactNumber  string         `json:"contactNumber"`
	OperatingHours OperatingHours `json:"operatingHours"`
	IsActive       bool           `json:"isActive"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// IsOpenAt reports whether the branch is open at t; t should already be in the branch's local time.
func (r *RestaurantLocation) IsOpenAt(t time.Time) bool {
	return r.OperatingHours.IsOpenAt(t)
}
