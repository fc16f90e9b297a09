package postgres

import (
	"context"

	"pizzahouse/internal/domain/entity"
	"pizzahouse/internal/domain/geo"
	"pizzahouse/internal/domain/repository"
	"pizzahouse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return translateWriteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order by its unique ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOrder(repo.db.WithContext(ctx), id)
}

// FindOrderByIDForUpdate reads the order from the primary and holds a row lock until the transaction ends.
func (repo *orderRepository) FindOrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOrder(repo.db.WithContext(ctx).Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *orderRepository) findOrder(db *gorm.DB, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := db.Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM)
}

// UpdateOrder writes the mutable lifecycle fields of an order.
func (repo *orderRepository) UpdateOrder(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":               order.Status.String(),
			"payment_status":       string(order.PaymentStatus),
			"actual_delivery_time": order.ActualDeliveryTime,
			"cancellation_reason":  order.CancellationReason,
			"delivery_charge":      order.DeliveryCharge,
			"tax":                  order.Tax,
			"discount":             order.Discount,
			"notes":                order.Notes,
			"updated_at":           order.UpdatedAt,
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// FindOrders lists orders matching filter.
func (repo *orderRepository) FindOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}

	column := "created_at"
	if filter.SortBy == repository.OrderSortByStatus {
		column = "status"
	}
	query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: !filter.Ascending})
	if column != "created_at" {
		query = query.Order("created_at DESC")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var orderModels []*model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// DeletePendingOrder deletes the order only while its stored status is pending.
func (repo *orderRepository) DeletePendingOrder(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, entity.OrderStatusPending.String()).
		Delete(&model.OrderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to look up order")
	}

	if count == 0 {
		return repository.ErrOrderNotFound
	}

	return repository.ErrOrderNotPending
}

func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	status, err := entity.ParseOrderStatus(data.Status)
	if err != nil {
		return nil, errors.Wrapf(err, "order %s has a corrupt status", data.ID)
	}

	order := &entity.Order{
		ID:                    data.ID,
		UserID:                data.UserID,
		Items:                 data.Items.Data(),
		DeliveryCharge:        data.DeliveryCharge,
		Tax:                   data.Tax,
		Discount:              data.Discount,
		Type:                  entity.OrderType(data.OrderType),
		ZoneID:                data.ZoneID,
		TimeSlotID:            data.TimeSlotID,
		IsOutOfZone:           data.IsOutOfZone,
		EstimatedDeliveryTime: data.EstimatedDeliveryTime,
		ActualDeliveryTime:    data.ActualDeliveryTime,
		PaymentMethod:         entity.PaymentMethod(data.PaymentMethod),
		PaymentStatus:         entity.PaymentStatus(data.PaymentStatus),
		Status:                status,
		Notes:                 data.Notes,
		CancellationReason:    data.CancellationReason,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}

	if data.DeliveryStreet != nil {
		address := &entity.DeliveryAddress{
			Street:       deref(data.DeliveryStreet),
			City:         deref(data.DeliveryCity),
			PostalCode:   deref(data.DeliveryPostalCode),
			Instructions: deref(data.DeliveryInstructions),
		}
		if data.DeliveryLatitude != nil && data.DeliveryLongitude != nil {
			address.Coordinates = geo.NewCoordinate(*data.DeliveryLatitude, *data.DeliveryLongitude)
		}
		order.DeliveryAddress = address
	}

	return order, nil
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	orderM := &model.OrderModel{
		ID:                    data.ID,
		UserID:                data.UserID,
		Items:                 datatypes.NewJSONType(data.Items),
		DeliveryCharge:        data.DeliveryCharge,
		Tax:                   data.Tax,
		Discount:              data.Discount,
		OrderType:             string(data.Type),
		ZoneID:                data.ZoneID,
		TimeSlotID:            data.TimeSlotID,
		IsOutOfZone:           data.IsOutOfZone,
		EstimatedDeliveryTime: data.EstimatedDeliveryTime,
		ActualDeliveryTime:    data.ActualDeliveryTime,
		PaymentMethod:         string(data.PaymentMethod),
		PaymentStatus:         string(data.PaymentStatus),
		Status:                data.Status.String(),
		Notes:                 data.Notes,
		CancellationReason:    data.CancellationReason,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}

	if address := data.DeliveryAddress; address != nil {
		lat, lng := address.Coordinates.Latitude, address.Coordinates.Longitude
		orderM.DeliveryStreet = &address.Street
		orderM.DeliveryCity = &address.City
		orderM.DeliveryPostalCode = &address.PostalCode
		orderM.DeliveryInstructions = &address.Instructions
		orderM.DeliveryLatitude = &lat
		orderM.DeliveryLongitude = &lng
	}

	return orderM
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
