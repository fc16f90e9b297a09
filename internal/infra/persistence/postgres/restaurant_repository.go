package postgres

import (
	"context"

	"pizzahouse/internal/domain/entity"
	"pizzahouse/internal/domain/geo"
	"pizzahouse/internal/domain/repository"
	"pizzahouse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

// FindActiveRestaurants returns every active branch.
func (repo *restaurantRepository) FindActiveRestaurants(ctx context.Context) ([]*entity.RestaurantLocation, error) {
	var restaurantModels []*model.RestaurantLocationModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active restaurants")
	}

	restaurants := make([]*entity.RestaurantLocation, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// SaveRestaurant upserts a branch.
func (repo *restaurantRepository) SaveRestaurant(ctx context.Context, restaurant *entity.RestaurantLocation) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(restaurantM).Error; err != nil {
		return translateWriteError(err, "failed to save restaurant")
	}

	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

func toRestaurantDomain(data *model.RestaurantLocationModel) *entity.RestaurantLocation {
	return &entity.RestaurantLocation{
		ID:             data.ID,
		Name:           data.Name,
		BranchName:     data.BranchName,
		Address:        data.Address,
		City:           data.City,
		Coordinates:    geo.NewCoordinate(data.Latitude, data.Longitude),
		ContactNumber:  data.ContactNumber,
		OperatingHours: data.OperatingHours.Data(),
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromRestaurantDomain(data *entity.RestaurantLocation) *model.RestaurantLocationModel {
	return &model.RestaurantLocationModel{
		ID:             data.ID,
		Name:           data.Name,
		BranchName:     data.BranchName,
		Address:        data.Address,
		City:           data.City,
		Latitude:       data.Coordinates.Latitude,
		Longitude:      data.Coordinates.Longitude,
		ContactNumber:  data.ContactNumber,
		OperatingHours: datatypes.NewJSONType(data.OperatingHours),
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
