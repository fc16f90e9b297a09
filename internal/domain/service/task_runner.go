package service

import "context"

// Task is a unit of background work.
type Task func(ctx context.Context) error

// TaskRunner runs tasks asynchronously. Submit never blocks on task execution;
// it reports false when the task could not be queued.
type TaskRunner interface {
	Submit(name string, task Task) bool
}
