package usecase

import (
	"context"

	"pizzahouse/internal/domain/entity"
	"pizzahouse/internal/domain/geo"
)

// NearestRestaurant is the closest active branch to a customer
type NearestRestaurant struct {
	Restaurant *entity.RestaurantLocation `json:"restaurant"`
	DistanceKm float64                    `json:"distanceKm"`
	IsOpen     bool                       `json:"isOpen"`
}

// RestaurantUsecase defines the interface for branch lookup use cases
type RestaurantUsecase interface {
	NearestRestaurant(ctx context.Context, location geo.Coordinate) (*NearestRestaurant, error)
	// SeedFlagship installs the flagship branch when no active branch exists.
	SeedFlagship(ctx context.Context) (bool, error)
}
