package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pizzahouse/config"
	deliverycontext "pizzahouse/internal/delivery/context"
	"pizzahouse/internal/domain/entity"
	domainerrors "pizzahouse/internal/domain/errors"
	"pizzahouse/internal/domain/repository"
	"pizzahouse/internal/domain/service"
	"pizzahouse/internal/errors"
	"pizzahouse/internal/infra/metrics"
	"pizzahouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// cacheInvalidator is implemented by zone repositories that keep a snapshot
// which transaction-bound writes bypass.
type cacheInvalidator interface {
	Invalidate(ctx context.Context)
}

type orderService struct {
	txManager     repository.TransactionManager
	orderRepo     repository.OrderRepository
	zoneRepo      repository.ZoneRepository
	clock         service.Clock
	effects       *sideEffects
	taxRate       decimal.Decimal
	defaultReason string
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	ZoneRepo    repository.ZoneRepository
	Clock       service.Clock
	TaskRunner  service.TaskRunner
	Printer     service.Printer
	Broadcaster service.Broadcaster
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService creates the order fulfillment service
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	svc := &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		zoneRepo:  params.ZoneRepo,
		clock:     params.Clock,
		effects: &sideEffects{
			runner:      params.TaskRunner,
			printer:     params.Printer,
			broadcaster: params.Broadcaster,
			logger:      params.Logger,
		},
		taxRate: decimal.Zero,
		logger:  params.Logger,
	}

	if cfg := params.Config.Fulfillment; cfg != nil {
		svc.taxRate = decimal.NewFromFloat(cfg.TaxRate)
		svc.defaultReason = cfg.DefaultCancellationReason
	}

	return svc
}

func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateOrder prices, validates and persists a new order, booking the requested
// slot in the same transaction. Printing and broadcasting happen afterwards and
// never fail the call.
func (s *orderService) CreateOrder(ctx context.Context, actor usecase.Actor, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("order body is required")
	}

	if !input.Discount.IsZero() && !actor.IsAdmin() {
		return nil, domainerrors.ErrUnauthorized.WithDetails("only administrators may apply a discount")
	}

	orderType, err := entity.ParseOrderType(input.OrderType)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := entity.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        actor.UserID,
		Items:         normalizeItems(input.Items),
		Discount:      input.Discount,
		Type:          orderType,
		PaymentMethod: paymentMethod,
		PaymentStatus: entity.PaymentStatusPending,
		Status:        entity.OrderStatusPending,
		Notes:         strings.TrimSpace(input.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	switch orderType {
	case entity.OrderTypePickup:
		if input.DeliveryAddress != nil || input.TimeSlotID != nil {
			return nil, domainerrors.ErrInvalidInput.WithDetails("pickup orders must not carry a delivery address or time slot")
		}
		order.DeliveryCharge = decimal.Zero
	case entity.OrderTypeDelivery:
		if err := s.priceDelivery(ctx, order, input, now); err != nil {
			return nil, err
		}
	}

	order.Tax = order.Subtotal().Mul(s.taxRate).Round(2)

	if err := order.Validate(); err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		if order.TimeSlotID != nil {
			if err := s.bookSlot(ctx, txRepo.NewZoneRepository(), *order.ZoneID, *order.TimeSlotID); err != nil {
				return err
			}
		}

		if err := txRepo.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return translateRepoError(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if order.TimeSlotID != nil {
		if inv, ok := s.zoneRepo.(cacheInvalidator); ok {
			inv.Invalidate(ctx)
		}
	}

	metrics.OrdersCreatedTotal.WithLabelValues(string(order.Type)).Inc()
	s.log(ctx).Info("Order created",
		slog.String("order_id", order.ID.String()),
		slog.String("type", string(order.Type)),
		slog.String("final_price", order.FinalPrice().StringFixed(2)),
		slog.Bool("out_of_zone", order.IsOutOfZone),
	)

	s.effects.orderCreated(ctx, order)

	return order, nil
}

// priceDelivery resolves the delivery zone, enforces its minimum and sets the
// charge, estimate and optional slot on order.
func (s *orderService) priceDelivery(ctx context.Context, order *entity.Order, input *usecase.CreateOrderInput, now time.Time) error {
	if input.DeliveryAddress == nil {
		return domainerrors.ErrInvalidInput.WithDetails("delivery orders require a delivery address")
	}
	address := *input.DeliveryAddress
	if !address.Coordinates.IsValid() {
		return domainerrors.ErrInvalidCoordinates.WithDetailsf("lat=%v lng=%v", address.Coordinates.Latitude, address.Coordinates.Longitude)
	}

	zones, err := s.zoneRepo.FindActiveZones(ctx)
	if err != nil {
		return translateRepoError(err, "failed to load active zones")
	}

	resolution, err := resolveLocation(zones, address.Coordinates)
	if err != nil {
		return err
	}
	zone := resolution.Zone

	if subtotal := order.Subtotal(); subtotal.LessThan(zone.MinimumOrderAmount) {
		return domainerrors.NewBelowMinimumOrderError(zone.MinimumOrderAmount, subtotal)
	}

	zoneID := zone.ID
	eta := now.Add(time.Duration(zone.MaxDeliveryMinutes) * time.Minute)

	if input.TimeSlotID != nil {
		idx, ok := zone.FindSlot(*input.TimeSlotID)
		if !ok {
			return domainerrors.ErrSlotNotFound.WithDetailsf("slot %s does not belong to zone %s", input.TimeSlotID, zone.Name)
		}
		slot := zone.TimeSlots[idx]
		if slot.Start <= entity.ClockTimeOf(now) {
			return domainerrors.ErrCapacityExceeded.WithDetails("time slot has already started")
		}
		slotID := slot.ID
		order.TimeSlotID = &slotID
		eta = slot.End.On(now)
	}

	order.DeliveryAddress = &address
	order.ZoneID = &zoneID
	order.DeliveryCharge = resolution.DeliveryCharge
	order.IsOutOfZone = resolution.IsOutOfZone
	order.EstimatedDeliveryTime = &eta

	return nil
}

func (s *orderService) bookSlot(ctx context.Context, zones repository.ZoneRepository, zoneID, slotID uuid.UUID) error {
	err := zones.BookSlot(ctx, zoneID, slotID)
	switch {
	case err == nil:
		metrics.SlotBookingsTotal.WithLabelValues("booked").Inc()

		return nil
	case errors.Is(err, repository.ErrSlotFull):
		metrics.SlotBookingsTotal.WithLabelValues("full").Inc()
	case errors.Is(err, repository.ErrSlotNotFound):
		metrics.SlotBookingsTotal.WithLabelValues("not_found").Inc()
	default:
		metrics.SlotBookingsTotal.WithLabelValues("error").Inc()
	}

	return translateRepoError(err, "failed to book time slot")
}

// UpdateOrderStatus applies a status transition under a row lock. The kitchen
// reprint and the status broadcast are dispatched after commit.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("status body is required")
	}

	next, err := entity.ParseOrderStatus(input.Status)
	if err != nil {
		return nil, err
	}

	var (
		order   *entity.Order
		effects entity.TransitionEffects
	)
	err = s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		orders := txRepo.NewOrderRepository()

		current, err := orders.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return translateRepoError(err, "failed to load order")
		}

		effects, err = current.TransitionTo(next, entity.TransitionOptions{
			Now:           s.clock.Now(),
			DeliveredAt:   input.DeliveredAt,
			Reason:        input.Reason,
			DefaultReason: s.defaultReason,
		})
		if err != nil {
			return err
		}

		if err := orders.UpdateOrder(ctx, current); err != nil {
			return translateRepoError(err, "failed to update order")
		}
		order = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(effects.From.String(), effects.To.String()).Inc()
	s.log(ctx).Info("Order status updated",
		slog.String("order_id", order.ID.String()),
		slog.String("from", effects.From.String()),
		slog.String("to", effects.To.String()),
	)

	s.effects.statusChanged(ctx, order, effects)

	return order, nil
}

// GetOrder returns an order to its owner or an administrator.
func (s *orderService) GetOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, translateRepoError(err, "failed to load order")
	}
	if !actor.IsAdmin() && !order.IsOwnedBy(actor.UserID) {
		return nil, domainerrors.ErrUnauthorized
	}

	return order, nil
}

func (s *orderService) ListMyOrders(ctx context.Context, actor usecase.Actor, input *usecase.ListOrdersInput) ([]*entity.Order, error) {
	filter, err := buildOrderFilter(input)
	if err != nil {
		return nil, err
	}
	userID := actor.UserID
	filter.UserID = &userID

	return s.findOrders(ctx, filter)
}

func (s *orderService) ListOrders(ctx context.Context, input *usecase.ListOrdersInput) ([]*entity.Order, error) {
	filter, err := buildOrderFilter(input)
	if err != nil {
		return nil, err
	}

	return s.findOrders(ctx, filter)
}

func (s *orderService) findOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindOrders(ctx, filter)
	if err != nil {
		return nil, translateRepoError(err, "failed to list orders")
	}

	return orders, nil
}

// DeleteOrder removes a pending order owned by the actor, or any pending order for an administrator.
func (s *orderService) DeleteOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) error {
	order, err := s.GetOrder(ctx, actor, orderID)
	if err != nil {
		return err
	}
	if err := order.EnsureDeletable(); err != nil {
		return err
	}

	if err := s.orderRepo.DeletePendingOrder(ctx, orderID); err != nil {
		return translateRepoError(err, "failed to delete order")
	}

	s.log(ctx).Info("Order deleted", slog.String("order_id", orderID.String()))

	return nil
}

// buildOrderFilter validates listing parameters. Results default to newest first.
func buildOrderFilter(input *usecase.ListOrdersInput) (repository.OrderFilter, error) {
	filter := repository.OrderFilter{SortBy: repository.OrderSortByDate, Limit: defaultListLimit}
	if input == nil {
		return filter, nil
	}

	if input.Status != "" {
		status, err := entity.ParseOrderStatus(input.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	switch strings.ToLower(input.SortBy) {
	case "", string(repository.OrderSortByDate):
		filter.SortBy = repository.OrderSortByDate
	case string(repository.OrderSortByStatus):
		filter.SortBy = repository.OrderSortByStatus
	default:
		return filter, domainerrors.ErrInvalidInput.WithDetailsf("sortBy must be date or status, got %q", input.SortBy)
	}

	switch strings.ToLower(input.SortOrder) {
	case "", "desc":
		filter.Ascending = false
	case "asc":
		filter.Ascending = true
	default:
		return filter, domainerrors.ErrInvalidInput.WithDetailsf("sortOrder must be asc or desc, got %q", input.SortOrder)
	}

	if input.CreatedFrom != nil && input.CreatedBefore != nil && !input.CreatedFrom.Before(*input.CreatedBefore) {
		return filter, domainerrors.ErrInvalidInput.WithDetails("startDate must be before endDate")
	}
	filter.UserID = input.UserID
	filter.CreatedFrom = input.CreatedFrom
	filter.CreatedBefore = input.CreatedBefore

	switch {
	case input.Limit < 0 || input.Offset < 0:
		return filter, domainerrors.ErrInvalidInput.WithDetails("limit and offset must be non-negative")
	case input.Limit > 0:
		filter.Limit = min(input.Limit, maxListLimit)
	}
	filter.Offset = input.Offset

	return filter, nil
}

// normalizeItems copies the cart and defaults each line's size to medium.
func normalizeItems(items []entity.OrderItem) []entity.OrderItem {
	normalized := make([]entity.OrderItem, len(items))
	for i, item := range items {
		if item.Customization.Size == "" {
			item.Customization.Size = entity.ItemSizeMedium
		}
		normalized[i] = item
	}

	return normalized
}
