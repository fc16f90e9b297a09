package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "pizzahouse/internal/delivery/context"
	"pizzahouse/internal/domain/constants"
	"pizzahouse/internal/domain/entity"
	domainerrors "pizzahouse/internal/domain/errors"
	"pizzahouse/internal/domain/geo"
	"pizzahouse/internal/domain/repository"
	"pizzahouse/internal/domain/service"
	"pizzahouse/internal/errors"
	"pizzahouse/internal/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func customer() usecase.Actor {
	return usecase.Actor{UserID: uuid.New(), Roles: []string{constants.RoleCustomer}}
}

func admin() usecase.Actor {
	return usecase.Actor{UserID: uuid.New(), Roles: []string{constants.RoleAdmin}}
}

func TestOrderService_CreatePickupOrder(t *testing.T) {
	f := newOrderFixture(t)
	svc := f.service()
	ctx := context.Background()
	actor := customer()

	f.expectTransaction()
	f.factory.EXPECT().NewOrderRepository().Return(f.txOrderRepo).Once()
	f.txOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
	f.expectPrints(service.DocumentKitchenOrder, service.DocumentCustomerReceipt)
	f.broadcaster.EXPECT().EmitNewOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil).Once()

	order, err := svc.CreateOrder(ctx, actor, &usecase.CreateOrderInput{
		Items:     []entity.OrderItem{pizza("12.50", 2)},
		OrderType: "pickup",
	})
	require.NoError(t, err)

	assert.Equal(t, actor.UserID, order.UserID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, entity.PaymentMethodCash, order.PaymentMethod)
	assert.True(t, order.DeliveryCharge.IsZero())
	assert.Nil(t, order.ZoneID)
	assert.Nil(t, order.EstimatedDeliveryTime)
	assert.True(t, order.FinalPrice().Equal(decimal.NewFromInt(25)))

	want := []string{taskPrintKitchen, taskPrintReceipt, taskBroadcastNew}
	if diff := cmp.Diff(want, f.runner.tasks()); diff != "" {
		t.Errorf("dispatched tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderService_CreateDeliveryOrderInZone(t *testing.T) {
	f := newOrderFixture(t)
	f.cfg.Fulfillment.TaxRate = 0.1
	svc := f.service()
	ctx := context.Background()
	zone := zoneA()

	f.zoneRepo.EXPECT().FindActiveZones(ctx).Return([]*entity.Zone{zone}, nil).Once()
	f.expectTransaction()
	f.factory.EXPECT().NewOrderRepository().Return(f.txOrderRepo).Once()
	f.txOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
	f.expectPrints(service.DocumentKitchenOrder, service.DocumentCustomerReceipt, service.DocumentDeliverySlip)
	f.broadcaster.EXPECT().EmitNewOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil).Once()

	order, err := svc.CreateOrder(ctx, admin(), &usecase.CreateOrderInput{
		Items:           []entity.OrderItem{pizza("350", 1)},
		OrderType:       "delivery",
		DeliveryAddress: address(zone.Center),
		PaymentMethod:   "card",
		Discount:        decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	require.NotNil(t, order.ZoneID)
	assert.Equal(t, zone.ID, *order.ZoneID)
	assert.False(t, order.IsOutOfZone)
	assert.True(t, order.DeliveryCharge.Equal(decimal.NewFromInt(30)))
	assert.True(t, order.Tax.Equal(decimal.NewFromInt(35)))
	assert.True(t, order.FinalPrice().Equal(decimal.NewFromInt(410)), "350 + 30 + 35 - 5")
	require.NotNil(t, order.EstimatedDeliveryTime)
	assert.Equal(t, mondayAt(12, 20), *order.EstimatedDeliveryTime)
	assert.Equal(t, entity.PaymentMethodCard, order.PaymentMethod)
	assert.Contains(t, f.runner.tasks(), taskPrintSlip)
}

func TestOrderService_CreateDeliveryOrderOutOfZoneUsesHighestFee(t *testing.T) {
	f := newOrderFixture(t)
	svc := f.service()
	ctx := context.Background()
	cheap := zoneA()
	cheap.MinimumOrderAmount = decimal.Zero
	expensive := zoneA()
	expensive.Name = "Zone B"
	expensive.BaseFee = decimal.NewFromInt(80)
	expensive.MinimumOrderAmount = decimal.Zero

	f.zoneRepo.EXPECT().FindActiveZones(ctx).Return([]*entity.Zone{cheap, expensive}, nil).Once()
	f.expectTransaction()
	f.factory.EXPECT().NewOrderRepository().Return(f.txOrderRepo).Once()
	f.txOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
	f.expectPrints(service.DocumentKitchenOrder, service.DocumentCustomerReceipt, service.DocumentDeliverySlip)
	f.broadcaster.EXPECT().EmitNewOrder(mock.Anything, mock.Anything).Return(nil).Once()

	order, err := svc.CreateOrder(ctx, customer(), &usecase.CreateOrderInput{
		Items:           []entity.OrderItem{pizza("20", 1)},
		OrderType:       "delivery",
		DeliveryAddress: address(geo.NewCoordinate(25.5, 70.5)),
	})
	require.NoError(t, err)

	assert.True(t, order.IsOutOfZone)
	assert.Equal(t, expensive.ID, *order.ZoneID)
	assert.True(t, order.DeliveryCharge.Equal(decimal.NewFromInt(80)))
}

func TestOrderService_CreateOrderBelowMinimum(t *testing.T) {
	f := newOrderFixture(t)
	svc := f.service()
	ctx := context.Background()
	zone := zoneA()

	f.zoneRepo.EXPECT().FindActiveZones(ctx).Return([]*entity.Zone{zone}, nil).Once()

	_, err := svc.CreateOrder(ctx, customer(), &usecase.CreateOrderInput{
		Items:           []entity.OrderItem{pizza("250", 1)},
		OrderType:       "delivery",
		DeliveryAddress: address(zone.Center),
	})
	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrBelowMinimumOrder)

	var belowMin *domainerrors.BelowMinimumOrderError
	require.True(t, errors.As(err, &belowMin))
	assert.True(t, belowMin.Minimum.Equal(decimal.NewFromInt(300)))
	assert.True(t, belowMin.Subtotal.Equal(decimal.NewFromInt(250)))
	assert.Empty(t, f.runner.tasks())
}

func TestOrderService_CustomerCannotDiscountCheckout(t *testing.T) {
	f := newOrderFixture(t)
	zone := zoneA()

	_, err := f.service().CreateOrder(context.Background(), customer(), &usecase.CreateOrderInput{
		Items:           []entity.OrderItem{pizza("300", 1)},
		OrderType:       "delivery",
		DeliveryAddress: address(zone.Center),
		Discount:        decimal.NewFromInt(330),
	})
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.Empty(t, f.runner.tasks())
}

func TestOrderService_AdminDiscountKeepsDeliveryCharge(t *testing.T) {
	zone := zoneA()

	t.Run("discount covering the delivery charge", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()
		f.zoneRepo.EXPECT().FindActiveZones(ctx).Return([]*entity.Zone{zone}, nil).Once()

		_, err := f.service().CreateOrder(ctx, admin(), &usecase.CreateOrderInput{
			Items:           []entity.OrderItem{pizza("300", 1)},
			OrderType:       "delivery",
			DeliveryAddress: address(zone.Center),
			Discount:        decimal.NewFromInt(330),
		})
		require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("full discount on goods", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()
		f.zoneRepo.EXPECT().FindActiveZones(ctx).Return([]*entity.Zone{zone}, nil).Once()
		f.expectTransaction()
		f.factory.EXPECT().NewOrderRepository().Return(f.txOrderRepo).Once()
		f.txOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
		f.expectPrints(service.DocumentKitchenOrder, service.DocumentCustomerReceipt, service.DocumentDeliverySlip)
		f.broadcaster.EXPECT().EmitNewOrder(mock.Anything, mock.Anything).Return(nil).Once()

		order, err := f.service().CreateOrder(ctx, admin(), &usecase.CreateOrderInput{
			Items:           []entity.OrderItem{pizza("300", 1)},
			OrderType:       "delivery",
			DeliveryAddress: address(zone.Center),
			Discount:        decimal.NewFromInt(300),
		})
		require.NoError(t, err)
		assert.True(t, order.FinalPrice().Equal(decimal.NewFromInt(30)), "delivery charge remains")
	})
}

func TestOrderService_CreateOrderNoZoneAvailable(t *testing.T) {
	f := newOrderFixture(t)
	svc := f.service()
	ctx := context.Background()

	f.zoneRepo.EXPECT().FindActiveZones(ctx).Return(nil, nil).Once()

	_, err := svc.CreateOrder(ctx, customer(), &usecase.CreateOrderInput{
		Items:           []entity.OrderItem{pizza("500", 1)},
		OrderType:       "delivery",
		DeliveryAddress: address(geo.NewCoordinate(24.7337, 69.7967)),
	})
	require.ErrorIs(t, err, domainerrors.ErrNoZoneAvailable)
}

func TestOrderService_CreateOrderRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		actor usecase.Actor
		input *usecase.CreateOrderInput
		want  error
	}{
		{
			name:  "unknown order type",
			input: &usecase.CreateOrderInput{Items: []entity.OrderItem{pizza("10", 1)}, OrderType: "drone"},
			want:  domainerrors.ErrInvalidOrderType,
		},
		{
			name:  "unknown payment method",
			input: &usecase.CreateOrderInput{Items: []entity.OrderItem{pizza("10", 1)}, OrderType: "pickup", PaymentMethod: "crypto"},
			want:  domainerrors.ErrInvalidPaymentMethod,
		},
		{
			name:  "delivery without address",
			input: &usecase.CreateOrderInput{Items: []entity.OrderItem{pizza("10", 1)}, OrderType: "delivery"},
			want:  domainerrors.ErrInvalidInput,
		},
		{
			name: "delivery with invalid coordinates",
			input: &usecase.CreateOrderInput{
				Items:           []entity.OrderItem{pizza("10", 1)},
				OrderType:       "delivery",
				DeliveryAddress: address(geo.NewCoordinate(91, 0)),
			},
			want: domainerrors.ErrInvalidCoordinates,
		},
		{
			name: "pickup with address",
			input: &usecase.CreateOrderInput{
				Items:           []entity.OrderItem{pizza("10", 1)},
				OrderType:       "pickup",
				DeliveryAddress: address(geo.NewCoordinate(24.7, 69.7)),
			},
			want: domainerrors.ErrInvalidInput,
		},
		{
			name:  "empty cart",
			input: &usecase.CreateOrderInput{OrderType: "pickup"},
			want:  domainerrors.ErrInvalidInput,
		},
		{
			name:  "discount above subtotal and tax",
			actor: admin(),
			input: &usecase.CreateOrderInput{Items: []entity.OrderItem{pizza("10", 1)}, OrderType: "pickup", Discount: decimal.NewFromInt(11)},
			want:  domainerrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)
			actor := tt.actor
			if actor.UserID == uuid.Nil {
				actor = customer()
			}

			_, err := f.service().CreateOrder(context.Background(), actor, tt.input)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOrderService_CreateOrderBooksSlot(t *testing.T) {
	f := newOrderFixture(t)
	svc := f.service()
	ctx := context.Background()
	zone := zoneA()
	slot := entity.TimeSlot{
		ID:          uuid.New(),
		Start:       entity.NewClockTime(18, 0),
		End:         entity.NewClockTime(19, 0),
		MaxOrders:   5,
		IsAvailable: true,
	}
	zone.TimeSlots = []entity.TimeSlot{slot}

	f.zoneRepo.EXPECT().FindActiveZones(ctx).Return([]*entity.Zone{zone}, nil).Once()
	f.expectTransaction()
	f.factory.EXPECT().NewZoneRepository().Return(f.txZoneRepo).Once()
	f.txZoneRepo.EXPECT().BookSlot(ctx, zone.ID, slot.ID).Return(nil).Once()
	f.factory.EXPECT().NewOrderRepository().Return(f.txOrderRepo).Once()
	f.txOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
	f.expectPrints(service.DocumentKitchenOrder, service.DocumentCustomerReceipt, service.DocumentDeliverySlip)
	f.broadcaster.EXPECT().EmitNewOrder(mock.Anything, mock.Anything).Return(nil).Once()

	order, err := svc.CreateOrder(ctx, customer(), &usecase.CreateOrderInput{
		Items:           []entity.OrderItem{pizza("300", 1)},
		OrderType:       "delivery",
		DeliveryAddress: address(zone.Center),
		TimeSlotID:      &slot.ID,
	})
	require.NoError(t, err)

	require.NotNil(t, order.TimeSlotID)
	assert.Equal(t, slot.ID, *order.TimeSlotID)
	assert.Equal(t, mondayAt(19, 0), *order.EstimatedDeliveryTime)
}

func TestOrderService_CreateOrderSlotFull(t *testing.T) {
	f := newOrderFixture(t)
	svc := f.service()
	ctx := context.Background()
	zone := zoneA()
	slot := entity.TimeSlot{ID: uuid.New(), Start: entity.NewClockTime(18, 0), End: entity.NewClockTime(19, 0), MaxOrders: 1, IsAvailable: true}
	zone.TimeSlots = []entity.TimeSlot{slot}

	f.zoneRepo.EXPECT().FindActiveZones(ctx).Return([]*entity.Zone{zone}, nil).Once()
	f.expectTransaction()
	f.factory.EXPECT().NewZoneRepository().Return(f.txZoneRepo).Once()
	f.txZoneRepo.EXPECT().BookSlot(ctx, zone.ID, slot.ID).Return(repository.ErrSlotFull).Once()

	_, err := svc.CreateOrder(ctx, customer(), &usecase.CreateOrderInput{
		Items:           []entity.OrderItem{pizza("300", 1)},
		OrderType:       "delivery",
		DeliveryAddress: address(zone.Center),
		TimeSlotID:      &slot.ID,
	})
	require.ErrorIs(t, err, domainerrors.ErrCapacityExceeded)
	assert.Equal(t, domainerrors.KindCapacityExceeded, domainerrors.KindOf(err))
	assert.Empty(t, f.runner.tasks())
}

func TestOrderService_CreateOrderSlotRules(t *testing.T) {
	f := newOrderFixture(t)
	svc := f.service()
	ctx := context.Background()
	zone := zoneA()
	started := entity.TimeSlot{ID: uuid.New(), Start: entity.NewClockTime(12, 0), End: entity.NewClockTime(13, 0), MaxOrders: 5, IsAvailable: true}
	zone.TimeSlots = []entity.TimeSlot{started}
	unknown := uuid.New()

	f.zoneRepo.EXPECT().FindActiveZones(ctx).Return([]*entity.Zone{zone}, nil).Twice()

	input := &usecase.CreateOrderInput{
		Items:           []entity.OrderItem{pizza("300", 1)},
		OrderType:       "delivery",
		DeliveryAddress: address(zone.Center),
		TimeSlotID:      &unknown,
	}
	_, err := svc.CreateOrder(ctx, customer(), input)
	require.ErrorIs(t, err, domainerrors.ErrSlotNotFound)

	input.TimeSlotID = &started.ID
	_, err = svc.CreateOrder(ctx, customer(), input)
	require.ErrorIs(t, err, domainerrors.ErrCapacityExceeded)
}

func TestOrderService_SideEffectFailuresDoNotFailCreation(t *testing.T) {
	f := newOrderFixture(t)
	svc := f.service()
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	f.expectTransaction()
	f.factory.EXPECT().NewOrderRepository().Return(f.txOrderRepo).Once()
	f.txOrderRepo.EXPECT().CreateOrder(ctx, mock.Anything).Return(nil).Once()
	f.printer.EXPECT().PrintOrder(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("printer offline")).Twice()

	var broadcastRequestID string
	f.broadcaster.EXPECT().
		EmitNewOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(taskCtx context.Context, _ *entity.Order) error {
			broadcastRequestID = deliverycontext.GetRequestIDFromContext(taskCtx)

			return errors.New("socket closed")
		}).
		Once()

	order, err := svc.CreateOrder(ctx, customer(), &usecase.CreateOrderInput{
		Items:     []entity.OrderItem{pizza("10", 1)},
		OrderType: "pickup",
	})
	require.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, "req-42", broadcastRequestID)

	for _, taskErr := range f.runner.errs {
		assert.Error(t, taskErr)
	}
}

func TestOrderService_FullQueueDoesNotFailCreation(t *testing.T) {
	f := newOrderFixture(t)
	f.runner.reject = true
	svc := f.service()
	ctx := context.Background()

	f.expectTransaction()
	f.factory.EXPECT().NewOrderRepository().Return(f.txOrderRepo).Once()
	f.txOrderRepo.EXPECT().CreateOrder(ctx, mock.Anything).Return(nil).Once()

	_, err := svc.CreateOrder(ctx, customer(), &usecase.CreateOrderInput{
		Items:     []entity.OrderItem{pizza("10", 1)},
		OrderType: "pickup",
	})
	require.NoError(t, err)
}

func TestOrderService_CreateOrderPersistenceFailure(t *testing.T) {
	f := newOrderFixture(t)
	svc := f.service()
	ctx := context.Background()

	f.expectTransaction()
	f.factory.EXPECT().NewOrderRepository().Return(f.txOrderRepo).Once()
	f.txOrderRepo.EXPECT().CreateOrder(ctx, mock.Anything).Return(errors.New("connection reset")).Once()

	_, err := svc.CreateOrder(ctx, customer(), &usecase.CreateOrderInput{
		Items:     []entity.OrderItem{pizza("10", 1)},
		OrderType: "pickup",
	})
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
	assert.Empty(t, f.runner.tasks())
}

func (f *orderFixture) expectLockedOrder(order *entity.Order) {
	f.expectTransaction()
	f.factory.EXPECT().NewOrderRepository().Return(f.txOrderRepo).Once()
	f.txOrderRepo.EXPECT().FindOrderByIDForUpdate(mock.Anything, order.ID).Return(order, nil).Once()
}

func TestOrderService_UpdateStatusToPreparingReprintsKitchen(t *testing.T) {
	f := newOrderFixture(t)
	svc := f.service()
	ctx := context.Background()
	order := pendingOrder(uuid.New())

	f.expectLockedOrder(order)
	f.txOrderRepo.EXPECT().UpdateOrder(mock.Anything, order).Return(nil).Once()
	f.expectPrints(service.DocumentKitchenOrder)
	f.broadcaster.EXPECT().
		EmitOrderStatusUpdate(mock.Anything, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, o *entity.Order) error {
			assert.Equal(t, entity.OrderStatusPreparing, o.Status)

			return nil
		}).
		Once()

	updated, err := svc.UpdateOrderStatus(ctx, order.ID, &usecase.UpdateOrderStatusInput{Status: "preparing"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPreparing, updated.Status)
	assert.Equal(t, mondayAt(12, 0), updated.UpdatedAt)

	if diff := cmp.Diff([]string{taskPrintKitchen, taskBroadcastState}, f.runner.tasks()); diff != "" {
		t.Errorf("dispatched tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderService_UpdateStatusToDeliveredStampsTime(t *testing.T) {
	f := newOrderFixture(t)
	svc := f.service()
	order := pendingOrder(uuid.New())
	order.Status = entity.OrderStatusOutForDelivery

	f.expectLockedOrder(order)
	f.txOrderRepo.EXPECT().UpdateOrder(mock.Anything, order).Return(nil).Once()
	f.broadcaster.EXPECT().EmitOrderStatusUpdate(mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := svc.UpdateOrderStatus(context.Background(), order.ID, &usecase.UpdateOrderStatusInput{Status: "delivered"})
	require.NoError(t, err)
	require.NotNil(t, updated.ActualDeliveryTime)
	assert.Equal(t, mondayAt(12, 0), *updated.ActualDeliveryTime)
	assert.Equal(t, []string{taskBroadcastState}, f.runner.tasks())
}

func TestOrderService_UpdateStatusToCancelledRecordsReason(t *testing.T) {
	tests := []struct {
		name          string
		reason        string
		defaultReason string
		want          string
	}{
		{name: "explicit reason", reason: "Customer called", want: "Customer called"},
		{name: "configured default", defaultReason: "Cancelled by the shop", want: "Cancelled by the shop"},
		{name: "built-in default", want: entity.DefaultCancellationReason},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)
			f.cfg.Fulfillment.DefaultCancellationReason = tt.defaultReason
			svc := f.service()
			order := pendingOrder(uuid.New())

			f.expectLockedOrder(order)
			f.txOrderRepo.EXPECT().UpdateOrder(mock.Anything, order).Return(nil).Once()
			f.broadcaster.EXPECT().EmitOrderStatusUpdate(mock.Anything, mock.Anything).Return(nil).Once()

			updated, err := svc.UpdateOrderStatus(context.Background(), order.ID, &usecase.UpdateOrderStatusInput{
				Status: "cancelled",
				Reason: tt.reason,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, updated.CancellationReason)
		})
	}
}

func TestOrderService_UpdateStatusRejectsTerminalOrder(t *testing.T) {
	f := newOrderFixture(t)
	svc := f.service()
	order := pendingOrder(uuid.New())
	order.Status = entity.OrderStatusDelivered

	f.expectLockedOrder(order)

	_, err := svc.UpdateOrderStatus(context.Background(), order.ID, &usecase.UpdateOrderStatusInput{Status: "pending"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Empty(t, f.runner.tasks())
}

func TestOrderService_UpdateStatusErrors(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		f := newOrderFixture(t)

		_, err := f.service().UpdateOrderStatus(context.Background(), uuid.New(), &usecase.UpdateOrderStatusInput{Status: "baking"})
		require.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})

	t.Run("missing order", func(t *testing.T) {
		f := newOrderFixture(t)
		orderID := uuid.New()

		f.expectTransaction()
		f.factory.EXPECT().NewOrderRepository().Return(f.txOrderRepo).Once()
		f.txOrderRepo.EXPECT().FindOrderByIDForUpdate(mock.Anything, orderID).Return(nil, repository.ErrOrderNotFound).Once()

		_, err := f.service().UpdateOrderStatus(context.Background(), orderID, &usecase.UpdateOrderStatusInput{Status: "ready"})
		require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	owner := customer()
	order := pendingOrder(owner.UserID)

	tests := []struct {
		name    string
		actor   usecase.Actor
		wantErr error
	}{
		{name: "owner", actor: owner},
		{name: "admin", actor: admin()},
		{name: "someone else", actor: customer(), wantErr: domainerrors.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)
			ctx := context.Background()
			f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Once()

			got, err := f.service().GetOrder(ctx, tt.actor, order.ID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, domainerrors.KindUnauthorized, domainerrors.KindOf(err))

				return
			}
			require.NoError(t, err)
			assert.Same(t, order, got)
		})
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	t.Run("pending order", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()
		actor := customer()
		order := pendingOrder(actor.UserID)

		f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Once()
		f.orderRepo.EXPECT().DeletePendingOrder(ctx, order.ID).Return(nil).Once()

		require.NoError(t, f.service().DeleteOrder(ctx, actor, order.ID))
	})

	t.Run("confirmed order", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()
		actor := customer()
		order := pendingOrder(actor.UserID)
		order.Status = entity.OrderStatusConfirmed

		f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Once()

		err := f.service().DeleteOrder(ctx, actor, order.ID)
		require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("status changed concurrently", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()
		actor := admin()
		order := pendingOrder(uuid.New())

		f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Once()
		f.orderRepo.EXPECT().DeletePendingOrder(ctx, order.ID).Return(repository.ErrOrderNotPending).Once()

		err := f.service().DeleteOrder(ctx, actor, order.ID)
		require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})
}

func TestOrderService_ListMyOrdersScopesToActor(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	actor := customer()
	from := mondayAt(0, 0)
	to := from.Add(24 * time.Hour)

	f.orderRepo.EXPECT().
		FindOrders(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.UserID != nil && *filter.UserID == actor.UserID &&
				filter.Status != nil && *filter.Status == entity.OrderStatusReady &&
				filter.SortBy == repository.OrderSortByStatus && filter.Ascending &&
				filter.Limit == maxListLimit &&
				filter.CreatedFrom.Equal(from) && filter.CreatedBefore.Equal(to)
		})).
		Return([]*entity.Order{}, nil).
		Once()

	_, err := f.service().ListMyOrders(ctx, actor, &usecase.ListOrdersInput{
		Status:        "ready",
		SortBy:        "status",
		SortOrder:     "asc",
		Limit:         500,
		UserID:        func() *uuid.UUID { id := uuid.New(); return &id }(),
		CreatedFrom:   &from,
		CreatedBefore: &to,
	})
	require.NoError(t, err)
}

func TestBuildOrderFilter(t *testing.T) {
	filter, err := buildOrderFilter(nil)
	require.NoError(t, err)
	assert.Equal(t, repository.OrderSortByDate, filter.SortBy)
	assert.False(t, filter.Ascending)
	assert.Equal(t, defaultListLimit, filter.Limit)

	invalid := []*usecase.ListOrdersInput{
		{SortBy: "price"},
		{SortOrder: "sideways"},
		{Status: "lost"},
		{Limit: -1},
	}
	for _, input := range invalid {
		_, err := buildOrderFilter(input)
		assert.Error(t, err, "%+v", input)
	}
}
