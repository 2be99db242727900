package formstate

import "log/slog"

const (
	defaultQueueSize   = 16
	defaultWatchBuffer = 4
)

// RunnerOption is a functional option for configuring a runner.
type RunnerOption[O any, F comparable, C any] func(*runnerOptions[O, F, C])

type runnerOptions[O any, F comparable, C any] struct {
	queueSize   int
	watchBuffer int
	initial     State[O, F]
	executor    Executor[O, F, C]
	logger      *slog.Logger
}

// WithQueueSize sets the event queue capacity.
func WithQueueSize[O any, F comparable, C any](n int) RunnerOption[O, F, C] {
	return func(o *runnerOptions[O, F, C]) {
		if n > 0 {
			o.queueSize = n
		}
	}
}

// WithWatchBuffer sets the buffer size of channels returned by Watch.
func WithWatchBuffer[O any, F comparable, C any](n int) RunnerOption[O, F, C] {
	return func(o *runnerOptions[O, F, C]) {
		if n > 0 {
			o.watchBuffer = n
		}
	}
}

// WithInitialState sets the state the runner starts from instead of
// Unloaded, e.g. to resume a form around a known object.
func WithInitialState[O any, F comparable, C any](state State[O, F]) RunnerOption[O, F, C] {
	return func(o *runnerOptions[O, F, C]) {
		o.initial = state
	}
}

// WithExecutor sets the effect executor. Without one, effects are logged
// at debug level and discarded, which suits display-only forms.
func WithExecutor[O any, F comparable, C any](executor Executor[O, F, C]) RunnerOption[O, F, C] {
	return func(o *runnerOptions[O, F, C]) {
		if executor != nil {
			o.executor = executor
		}
	}
}

// WithLogger sets the runner's logger, overriding the machine's.
func WithLogger[O any, F comparable, C any](logger *slog.Logger) RunnerOption[O, F, C] {
	return func(o *runnerOptions[O, F, C]) {
		if logger != nil {
			o.logger = logger
		}
	}
}
