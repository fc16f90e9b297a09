// Package jobs holds scheduled maintenance work run by the API process.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"pizzahouse/config"
	"pizzahouse/internal/domain/service"
	"pizzahouse/internal/errors"
	"pizzahouse/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const slotResetTimeout = time.Minute

// SlotResetJobParams holds dependencies for SlotResetJob, injected by Fx.
type SlotResetJobParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Clock  service.Clock
	ZoneUC usecase.ZoneUsecase
	Logger *slog.Logger
}

// SlotResetJob zeroes every slot's booked counter on a cron schedule, which
// makes slot capacity a per-day budget.
type SlotResetJob struct {
	zoneUC usecase.ZoneUsecase
	cron   *cron.Cron
	spec   string
	logger *slog.Logger
}

// NewSlotResetJob registers the job with the fx lifecycle unless it is disabled.
func NewSlotResetJob(params SlotResetJobParams) (*SlotResetJob, error) {
	job := &SlotResetJob{
		zoneUC: params.ZoneUC,
		cron:   cron.New(cron.WithLocation(params.Clock.Now().Location())),
		spec:   params.Config.Jobs.SlotReset.Spec,
		logger: params.Logger.With(slog.String("component", "slot_reset_job")),
	}

	if !params.Config.Jobs.SlotReset.Enabled {
		job.logger.Info("Slot reset job disabled")

		return job, nil
	}

	if _, err := job.cron.AddFunc(job.spec, job.run); err != nil {
		return nil, errors.Wrapf(err, "invalid slot reset schedule %q", job.spec)
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			job.cron.Start()
			job.logger.Info("Slot reset job started", slog.String("spec", job.spec))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-job.cron.Stop().Done():
			case <-ctx.Done():
				return errors.WithStack(ctx.Err())
			}
			job.logger.Info("Slot reset job stopped")

			return nil
		},
	})

	return job, nil
}

func (j *SlotResetJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), slotResetTimeout)
	defer cancel()

	if _, err := j.RunOnce(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Slot reset failed", slog.Any("error", err))
	}
}

// RunOnce resets the counters immediately and reports how many slots changed.
func (j *SlotResetJob) RunOnce(ctx context.Context) (int64, error) {
	reset, err := j.zoneUC.ResetSlotBookings(ctx)
	if err != nil {
		return 0, err
	}

	j.logger.InfoContext(ctx, "Slot bookings reset", slog.Int64("slots", reset))

	return reset, nil
}
