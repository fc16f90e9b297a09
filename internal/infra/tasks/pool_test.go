package tasks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPool_RunsSubmittedTasks(t *testing.T) {
	pool := NewPool(2, 8, time.Second, discardLogger())
	pool.Start()

	var ran atomic.Int32
	for range 5 {
		require.True(t, pool.Submit("count", func(context.Context) error {
			ran.Add(1)

			return nil
		}))
	}

	require.NoError(t, pool.Stop(context.Background()))
	assert.Equal(t, int32(5), ran.Load())
}

func TestPool_FailuresAndPanicsDoNotStopWorkers(t *testing.T) {
	pool := NewPool(1, 8, time.Second, discardLogger())
	pool.Start()

	var ran atomic.Int32
	pool.Submit("fail", func(context.Context) error { return errors.New("printer offline") })
	pool.Submit("panic", func(context.Context) error { panic("boom") })
	pool.Submit("ok", func(context.Context) error {
		ran.Add(1)

		return nil
	})

	require.NoError(t, pool.Stop(context.Background()))
	assert.Equal(t, int32(1), ran.Load())
}

func TestPool_RejectsWhenFullOrStopped(t *testing.T) {
	pool := NewPool(1, 1, time.Second, discardLogger())

	// Not started, so the single queue slot stays occupied.
	assert.True(t, pool.Submit("first", func(context.Context) error { return nil }))
	assert.False(t, pool.Submit("second", func(context.Context) error { return nil }))

	pool.Start()
	require.NoError(t, pool.Stop(context.Background()))
	assert.False(t, pool.Submit("late", func(context.Context) error { return nil }))
}

func TestPool_TaskTimeout(t *testing.T) {
	pool := NewPool(1, 1, 20*time.Millisecond, discardLogger())
	pool.Start()

	result := make(chan error, 1)
	pool.Submit("slow", func(ctx context.Context) error {
		<-ctx.Done()
		result <- ctx.Err()

		return ctx.Err()
	})

	select {
	case err := <-result:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("task was not cancelled")
	}

	require.NoError(t, pool.Stop(context.Background()))
}

func TestPool_StopReturnsWhenTaskIgnoresContext(t *testing.T) {
	pool := NewPool(1, 1, 0, discardLogger())
	pool.Start()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	started := make(chan struct{})
	require.True(t, pool.Submit("stuck", func(context.Context) error {
		close(started)
		<-release

		return nil
	}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	stopped := make(chan error, 1)
	go func() { stopped <- pool.Stop(ctx) }()

	select {
	case err := <-stopped:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked on a task that ignores its context")
	}
}

func TestPool_StopCancelsRunningTasksAtDeadline(t *testing.T) {
	pool := NewPool(1, 1, 0, discardLogger())
	pool.Start()

	started := make(chan struct{})
	result := make(chan error, 1)
	require.True(t, pool.Submit("wait", func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		result <- ctx.Err()

		return ctx.Err()
	}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, pool.Stop(ctx), context.DeadlineExceeded)
	assert.ErrorIs(t, <-result, context.Canceled)
}
