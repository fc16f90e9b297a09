package impl

import (
	"context"
	"log/slog"

	deliverycontext "pizzahouse/internal/delivery/context"
	"pizzahouse/internal/domain/entity"
	domainerrors "pizzahouse/internal/domain/errors"
	"pizzahouse/internal/domain/geo"
	"pizzahouse/internal/domain/repository"
	"pizzahouse/internal/domain/service"
	"pizzahouse/internal/domain/zoning"
	"pizzahouse/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	clock          service.Clock
	logger         *slog.Logger
}

// RestaurantServiceParams holds dependencies for RestaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	Clock          service.Clock
	Logger         *slog.Logger
}

// NewRestaurantService creates a new restaurant service instance
func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: params.RestaurantRepo,
		clock:          params.Clock,
		logger:         params.Logger,
	}
}

// NearestRestaurant returns the closest active branch and whether it is open now.
// Equal distances keep the repository order.
func (s *restaurantService) NearestRestaurant(ctx context.Context, location geo.Coordinate) (*usecase.NearestRestaurant, error) {
	if !location.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetailsf("lat=%v lng=%v", location.Latitude, location.Longitude)
	}

	restaurants, err := s.restaurantRepo.FindActiveRestaurants(ctx)
	if err != nil {
		return nil, translateRepoError(err, "failed to load restaurants")
	}

	var nearest *usecase.NearestRestaurant
	for _, restaurant := range restaurants {
		distance := geo.DistanceKm(restaurant.Coordinates, location)
		if nearest == nil || distance < nearest.DistanceKm {
			nearest = &usecase.NearestRestaurant{Restaurant: restaurant, DistanceKm: distance}
		}
	}
	if nearest == nil {
		return nil, domainerrors.ErrRestaurantNotFound.WithDetails("no active restaurant location")
	}

	nearest.IsOpen = nearest.Restaurant.IsOpenAt(s.clock.Now())

	return nearest, nil
}

// SeedFlagship stores the flagship branch when no active branch exists.
func (s *restaurantService) SeedFlagship(ctx context.Context) (bool, error) {
	restaurants, err := s.restaurantRepo.FindActiveRestaurants(ctx)
	if err != nil {
		return false, translateRepoError(err, "failed to load restaurants")
	}
	if len(restaurants) > 0 {
		return false, nil
	}

	now := s.clock.Now()
	flagship := &entity.RestaurantLocation{
		ID:             uuid.New(),
		Name:           "Pizza House",
		BranchName:     "Mithi",
		Address:        "Main Bazaar Road",
		City:           "Mithi",
		Coordinates:    zoning.RestaurantCoordinate,
		OperatingHours: entity.UniformOperatingHours(entity.NewClockTime(11, 0), entity.NewClockTime(23, 0)),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.restaurantRepo.SaveRestaurant(ctx, flagship); err != nil {
		return false, translateRepoError(err, "failed to save restaurant")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Flagship restaurant seeded", slog.String("restaurant_id", flagship.ID.String()))

	return true, nil
}
