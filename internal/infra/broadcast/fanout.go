package broadcast

import (
	"context"

	"pizzahouse/internal/domain/entity"
	"pizzahouse/internal/domain/service"
	"pizzahouse/internal/errors"
)

// Fanout forwards each event to every target and joins their failures.
type Fanout struct {
	targets []service.Broadcaster
}

func NewFanout(targets ...service.Broadcaster) *Fanout {
	return &Fanout{targets: targets}
}

func (f *Fanout) EmitNewOrder(ctx context.Context, order *entity.Order) error {
	var errs []error
	for _, target := range f.targets {
		if err := target.EmitNewOrder(ctx, order); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (f *Fanout) EmitOrderStatusUpdate(ctx context.Context, order *entity.Order) error {
	var errs []error
	for _, target := range f.targets {
		if err := target.EmitOrderStatusUpdate(ctx, order); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
