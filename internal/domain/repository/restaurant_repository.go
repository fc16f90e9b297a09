package repository

import (
	"context"

	"pizzahouse/internal/domain/entity"
)

// RestaurantRepository provides read access to restaurant branches.
type RestaurantRepository interface {
	FindActiveRestaurants(ctx context.Context) ([]*entity.RestaurantLocation, error)
	// SaveRestaurant inserts or replaces a branch.
	SaveRestaurant(ctx context.Context, restaurant *entity.RestaurantLocation) error
}
