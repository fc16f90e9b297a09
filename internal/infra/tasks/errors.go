package tasks

import "pizzahouse/internal/errors"

var (
	errQueueFull = errors.New("side-effect queue full")
	errPanicked  = errors.New("side-effect task panicked")
)
