package impl

import (
	"context"
	"log/slog"

	deliverycontext "pizzahouse/internal/delivery/context"
	"pizzahouse/internal/domain/entity"
	"pizzahouse/internal/domain/service"
)

const (
	taskPrintKitchen   = "print_kitchen_order"
	taskPrintReceipt   = "print_customer_receipt"
	taskPrintSlip      = "print_delivery_slip"
	taskBroadcastNew   = "broadcast_new_order"
	taskBroadcastState = "broadcast_order_update"
)

// sideEffects hands best-effort work for an order to the task runner. The
// order is copied so later mutations by the caller are not observed, and the
// request id and logger of ctx follow the task.
type sideEffects struct {
	runner      service.TaskRunner
	printer     service.Printer
	broadcaster service.Broadcaster
	logger      *slog.Logger
}

func (s *sideEffects) orderCreated(ctx context.Context, order *entity.Order) {
	s.print(ctx, taskPrintKitchen, order, service.DocumentKitchenOrder)
	s.print(ctx, taskPrintReceipt, order, service.DocumentCustomerReceipt)
	if order.Type == entity.OrderTypeDelivery {
		s.print(ctx, taskPrintSlip, order, service.DocumentDeliverySlip)
	}

	s.submit(ctx, taskBroadcastNew, order, s.broadcaster.EmitNewOrder)
}

func (s *sideEffects) statusChanged(ctx context.Context, order *entity.Order, effects entity.TransitionEffects) {
	if effects.ReprintKitchen {
		s.print(ctx, taskPrintKitchen, order, service.DocumentKitchenOrder)
	}

	s.submit(ctx, taskBroadcastState, order, s.broadcaster.EmitOrderStatusUpdate)
}

func (s *sideEffects) print(ctx context.Context, name string, order *entity.Order, kind service.DocumentKind) {
	s.submit(ctx, name, order, func(taskCtx context.Context, o *entity.Order) error {
		return s.printer.PrintOrder(taskCtx, o, kind)
	})
}

func (s *sideEffects) submit(ctx context.Context, name string, order *entity.Order, fn func(context.Context, *entity.Order) error) {
	snapshot := *order
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	accepted := s.runner.Submit(name, func(taskCtx context.Context) error {
		taskCtx = deliverycontext.Carry(ctx, taskCtx)

		if err := fn(taskCtx, &snapshot); err != nil {
			logger.ErrorContext(taskCtx, "Side effect failed",
				slog.String("task", name),
				slog.String("order_id", snapshot.ID.String()),
				slog.Any("error", err),
			)

			return err
		}

		return nil
	})
	if !accepted {
		logger.WarnContext(ctx, "Side effect dropped",
			slog.String("task", name),
			slog.String("order_id", order.ID.String()),
		)
	}
}
