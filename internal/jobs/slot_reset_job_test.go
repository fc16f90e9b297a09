package jobs

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"pizzahouse/config"
	"pizzahouse/internal/errors"
	"pizzahouse/internal/infra/clock"
	mockUC "pizzahouse/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func jobConfig(enabled bool, spec string) *config.Config {
	cfg := &config.Config{Jobs: &config.JobsConfig{}}
	cfg.Jobs.SlotReset.Enabled = enabled
	cfg.Jobs.SlotReset.Spec = spec

	return cfg
}

func newJob(t *testing.T, cfg *config.Config, zoneUC *mockUC.MockZoneUsecase) (*SlotResetJob, *fxtest.Lifecycle, error) {
	t.Helper()

	lc := fxtest.NewLifecycle(t)
	loc, err := time.LoadLocation("Asia/Karachi")
	require.NoError(t, err)

	job, err := NewSlotResetJob(SlotResetJobParams{
		Lc:     lc,
		Config: cfg,
		Clock:  clock.NewMockClock(time.Date(2026, 3, 2, 12, 0, 0, 0, loc)),
		ZoneUC: zoneUC,
		Logger: slog.New(slog.DiscardHandler),
	})

	return job, lc, err
}

func TestSlotResetJob_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("reports reset count", func(t *testing.T) {
		zoneUC := mockUC.NewMockZoneUsecase(t)
		zoneUC.EXPECT().ResetSlotBookings(ctx).Return(int64(28), nil).Once()

		job, _, err := newJob(t, jobConfig(true, "0 0 * * *"), zoneUC)
		require.NoError(t, err)

		reset, err := job.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(28), reset)
	})

	t.Run("propagates failure", func(t *testing.T) {
		zoneUC := mockUC.NewMockZoneUsecase(t)
		zoneUC.EXPECT().ResetSlotBookings(ctx).Return(int64(0), errors.New("db down")).Once()

		job, _, err := newJob(t, jobConfig(true, "0 0 * * *"), zoneUC)
		require.NoError(t, err)

		_, err = job.RunOnce(ctx)
		assert.ErrorContains(t, err, "db down")
	})
}

func TestSlotResetJob_Schedule(t *testing.T) {
	t.Run("runs on schedule", func(t *testing.T) {
		zoneUC := mockUC.NewMockZoneUsecase(t)
		fired := make(chan struct{}, 1)
		zoneUC.EXPECT().
			ResetSlotBookings(mock.Anything).
			RunAndReturn(func(context.Context) (int64, error) {
				select {
				case fired <- struct{}{}:
				default:
				}

				return 1, nil
			}).
			Maybe()

		_, lc, err := newJob(t, jobConfig(true, "@every 1s"), zoneUC)
		require.NoError(t, err)

		lc.RequireStart()
		select {
		case <-fired:
		case <-time.After(3 * time.Second):
			t.Fatal("slot reset did not fire")
		}
		lc.RequireStop()
	})

	t.Run("disabled registers no hooks", func(t *testing.T) {
		zoneUC := mockUC.NewMockZoneUsecase(t)

		_, lc, err := newJob(t, jobConfig(false, "not a schedule"), zoneUC)
		require.NoError(t, err)

		lc.RequireStart()
		lc.RequireStop()
	})

	t.Run("invalid schedule", func(t *testing.T) {
		_, _, err := newJob(t, jobConfig(true, "every tuesday"), mockUC.NewMockZoneUsecase(t))
		assert.ErrorContains(t, err, "invalid slot reset schedule")
	})
}
