package formstate

import "errors"

var (
	// ErrMachineNil is returned when a runner is created without a machine.
	ErrMachineNil = errors.New("machine cannot be nil")

	// ErrRunnerStarted is returned when Start is called on a running runner.
	ErrRunnerStarted = errors.New("runner already started")

	// ErrRunnerStopped is returned when dispatching to, or starting, a
	// runner that has been stopped.
	ErrRunnerStopped = errors.New("runner is stopped")

	// ErrQueueFull is returned when the runner's event queue cannot accept
	// another event.
	ErrQueueFull = errors.New("event queue is full")
)
