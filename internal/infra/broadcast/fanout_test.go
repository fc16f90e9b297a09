package broadcast

import (
	"context"
	"errors"
	"testing"

	"pizzahouse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type recordingBroadcaster struct {
	newOrders []uuid.UUID
	updates   []uuid.UUID
	err       error
}

func (r *recordingBroadcaster) EmitNewOrder(_ context.Context, order *entity.Order) error {
	r.newOrders = append(r.newOrders, order.ID)

	return r.err
}

func (r *recordingBroadcaster) EmitOrderStatusUpdate(_ context.Context, order *entity.Order) error {
	r.updates = append(r.updates, order.ID)

	return r.err
}

func TestFanout_DeliversToAllTargetsDespiteFailures(t *testing.T) {
	failure := errors.New("topic unavailable")
	failing := &recordingBroadcaster{err: failure}
	healthy := &recordingBroadcaster{}
	fanout := NewFanout(failing, healthy)
	order := &entity.Order{ID: uuid.New()}

	err := fanout.EmitNewOrder(context.Background(), order)
	assert.ErrorIs(t, err, failure)
	assert.Equal(t, []uuid.UUID{order.ID}, healthy.newOrders)

	assert.ErrorIs(t, fanout.EmitOrderStatusUpdate(context.Background(), order), failure)
	assert.Equal(t, []uuid.UUID{order.ID}, failing.updates)
	assert.Equal(t, []uuid.UUID{order.ID}, healthy.updates)
}

func TestFanout_NoTargets(t *testing.T) {
	assert.NoError(t, NewFanout().EmitNewOrder(context.Background(), &entity.Order{}))
}
