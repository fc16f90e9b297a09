// Package tasks runs fire-and-forget side effects on a bounded worker pool.
package tasks

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pizzahouse/config"
	"pizzahouse/internal/domain/service"
	"pizzahouse/internal/infra/metrics"

	"go.uber.org/fx"
)

// stopGrace is how long Stop waits for cancelled tasks once its context expires.
const stopGrace = 100 * time.Millisecond

type job struct {
	name string
	task service.Task
}

// Pool implements service.TaskRunner. Failures and panics are logged and
// counted; they never reach the submitter.
type Pool struct {
	queue   chan job
	workers int
	timeout time.Duration
	logger  *slog.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

// Params defines the dependencies for the side-effect pool
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New builds the pool and ties it to the application lifecycle.
func New(params Params) service.TaskRunner {
	cfg := params.Config.SideEffects
	pool := NewPool(cfg.Workers, cfg.QueueSize, cfg.TaskTimeout, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			pool.Start()

			return nil
		},
		OnStop: pool.Stop,
	})

	return pool
}

func NewPool(workers, queueSize int, timeout time.Duration, logger *slog.Logger) *Pool {
	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		queue:   make(chan job, max(queueSize, 1)),
		workers: max(workers, 1),
		timeout: timeout,
		logger:  logger.With(slog.String("component", "side_effects")),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (p *Pool) Start() {
	for range p.workers {
		p.wg.Add(1)
		go p.work()
	}
}

// Submit queues task without blocking. It reports false when the queue is
// full or the pool is stopping.
func (p *Pool) Submit(name string, task service.Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return false
	}

	select {
	case p.queue <- job{name: name, task: task}:
		metrics.SideEffectQueueDepth.Inc()

		return true
	default:
		p.logger.Warn("Side-effect queue full, dropping task", slog.String("task", name))
		metrics.ObserveSideEffect(name, errQueueFull)

		return false
	}
}

// Stop drains queued tasks until ctx expires, then cancels the running ones
// and returns after stopGrace even if a task ignores its context.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.queue)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()

		return nil
	case <-ctx.Done():
		p.cancel()
		select {
		case <-done:
		case <-time.After(stopGrace):
			p.logger.Warn("Side-effect tasks still running after shutdown deadline")
		}

		return ctx.Err()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()

	for j := range p.queue {
		metrics.SideEffectQueueDepth.Dec()
		p.run(j)
	}
}

func (p *Pool) run(j job) {
	ctx := p.ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Side-effect task panicked", slog.String("task", j.name), slog.Any("panic", r))
			metrics.ObserveSideEffect(j.name, errPanicked)
		}
	}()

	err := j.task(ctx)
	metrics.ObserveSideEffect(j.name, err)
	if err != nil {
		p.logger.Warn("Side-effect task failed", slog.String("task", j.name), slog.String("error", err.Error()))
	}
}
