package formstate

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Executor runs the effects a transition requested and translates their
// completion back into an event (typically Display on success). Returning
// an error makes the runner dispatch a Fail event carrying the error text;
// returning the zero Event means the effect produced no follow-up.
//
// How effects are actually executed (over the network, in memory, logged
// and dropped) is entirely up to the implementation; the runner only
// hands the inert description over.
type Executor[O any, F comparable, C any] interface {
	Execute(ctx context.Context, effect Effect) (Event[O, F, C], error)
}

// ExecutorFunc adapts a plain function to the Executor interface.
type ExecutorFunc[O any, F comparable, C any] func(ctx context.Context, effect Effect) (Event[O, F, C], error)

func (fn ExecutorFunc[O, F, C]) Execute(ctx context.Context, effect Effect) (Event[O, F, C], error) {
	return fn(ctx, effect)
}

// Runner drives one form instance: it owns the authoritative State and a
// single event queue, and applies events through the machine strictly one
// at a time, which is the serialization the engine's ordering guarantee
// requires. Effects are handed to the configured Executor in the
// background and their completion events re-enter the same queue.
//
// All methods are safe for concurrent use.
type Runner[O any, F comparable, C any] struct {
	machine  *Machine[O, F, C]
	id       uuid.UUID
	queue    chan Event[O, F, C]
	executor Executor[O, F, C]
	logger   *slog.Logger

	state   State[O, F]
	stateMu sync.RWMutex

	watchers    map[chan State[O, F]]struct{}
	watchBuffer int
	watchClosed bool
	watchMu     sync.Mutex

	mu       sync.Mutex
	ctx      context.Context
	cancel   context.CancelFunc
	loopDone chan struct{}
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
	stopping atomic.Bool
}

// NewRunner creates a runner for one form instance. The runner starts in
// the Unloaded state unless WithInitialState overrides it.
func NewRunner[O any, F comparable, C any](machine *Machine[O, F, C], opts ...RunnerOption[O, F, C]) (*Runner[O, F, C], error) {
	if machine == nil {
		return nil, ErrMachineNil
	}

	options := &runnerOptions[O, F, C]{
		queueSize:   defaultQueueSize,
		watchBuffer: defaultWatchBuffer,
		initial:     Unloaded[O, F](),
		logger:      machine.logger,
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Runner[O, F, C]{
		machine:     machine,
		id:          uuid.New(),
		queue:       make(chan Event[O, F, C], options.queueSize),
		executor:    options.executor,
		logger:      options.logger,
		state:       options.initial,
		watchers:    make(map[chan State[O, F]]struct{}),
		watchBuffer: options.watchBuffer,
		done:        make(chan struct{}),
	}, nil
}

// ID returns the runner's instance identifier, used in its log records.
func (r *Runner[O, F, C]) ID() uuid.UUID {
	return r.id
}

// Start launches the event loop. The loop stops when ctx is cancelled or
// Stop is called. A runner cannot be restarted after Stop.
func (r *Runner[O, F, C]) Start(ctx context.Context) error {
	if r.stopping.Load() {
		return ErrRunnerStopped
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return ErrRunnerStarted
	}

	r.ctx, r.cancel = context.WithCancel(ctx)
	r.loopDone = make(chan struct{})

	go r.run(r.ctx, r.loopDone)

	r.logger.Info("form runner started",
		slog.String("form", r.machine.Name()),
		slog.String("form_id", r.id.String()),
		slog.Int("queue_size", cap(r.queue)))

	return nil
}

// Stop shuts the runner down: it stops accepting events, drains whatever
// is already queued, waits for in-flight effect executions, and closes all
// watcher channels. Stop is idempotent.
func (r *Runner[O, F, C]) Stop() error {
	r.stopOnce.Do(func() {
		r.stopping.Store(true)

		r.mu.Lock()
		cancel := r.cancel
		loopDone := r.loopDone
		r.cancel = nil
		r.mu.Unlock()

		if cancel != nil {
			cancel()
			<-loopDone
		}

		r.wg.Wait()
		close(r.done)
		r.closeWatchers()

		r.logger.Info("form runner stopped",
			slog.String("form", r.machine.Name()),
			slog.String("form_id", r.id.String()))
	})
	return nil
}

// Dispatch enqueues an event for the loop to apply. It never blocks on a
// full queue; callers decide whether ErrQueueFull warrants backoff or is a
// bug in their dispatch rate.
func (r *Runner[O, F, C]) Dispatch(ctx context.Context, event Event[O, F, C]) error {
	if r.stopping.Load() {
		return ErrRunnerStopped
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	select {
	case r.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// State returns a snapshot of the current state.
func (r *Runner[O, F, C]) State() State[O, F] {
	r.stateMu.RLock()
	defer r.stateMu.RUnlock()
	return r.state
}

// Watch returns a channel receiving every post-transition state. Sends are
// non-blocking: a watcher that falls behind its buffer misses states
// rather than stalling the loop. The channel is closed when ctx is
// cancelled or the runner stops.
func (r *Runner[O, F, C]) Watch(ctx context.Context) <-chan State[O, F] {
	ch := make(chan State[O, F], r.watchBuffer)

	r.watchMu.Lock()
	if r.watchClosed {
		r.watchMu.Unlock()
		close(ch)
		return ch
	}
	r.watchers[ch] = struct{}{}
	r.watchMu.Unlock()

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
			case <-r.done:
			}
			r.removeWatcher(ch)
		}()
	}

	return ch
}

func (r *Runner[O, F, C]) run(ctx context.Context, loopDone chan struct{}) {
	defer close(loopDone)

	for {
		select {
		case <-ctx.Done():
			// Drain events accepted before the shutdown so nothing that
			// was successfully dispatched is silently dropped.
			for {
				select {
				case event := <-r.queue:
					r.step(ctx, event)
				default:
					return
				}
			}
		case event := <-r.queue:
			r.step(ctx, event)
		}
	}
}

func (r *Runner[O, F, C]) step(ctx context.Context, event Event[O, F, C]) {
	r.stateMu.Lock()
	next, effect := r.machine.Apply(r.state, event)
	r.state = next
	r.stateMu.Unlock()

	r.logger.Debug("form transition applied",
		slog.String("form", r.machine.Name()),
		slog.String("form_id", r.id.String()),
		slog.String("event", event.Name()),
		slog.String("phase", next.Phase().String()))

	r.notify(next)

	if effect == nil {
		return
	}
	if r.executor == nil {
		r.logger.Debug("effect discarded, no executor configured",
			slog.String("form_id", r.id.String()),
			slog.String("effect", effect.Name()))
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		followUp, err := r.executor.Execute(ctx, effect)
		if err != nil {
			followUp = r.machine.Fail(err.Error())
		}
		if followUp.IsZero() {
			return
		}

		if err := r.Dispatch(ctx, followUp); err != nil {
			r.logger.Warn("effect completion event dropped",
				slog.String("form_id", r.id.String()),
				slog.String("effect", effect.Name()),
				slog.String("event", followUp.Name()),
				slog.Any("error", err))
		}
	}()
}

func (r *Runner[O, F, C]) notify(state State[O, F]) {
	r.watchMu.Lock()
	defer r.watchMu.Unlock()

	for ch := range r.watchers {
		select {
		case ch <- state:
		default:
			// Slow watcher: drop this state rather than block the loop.
		}
	}
}

func (r *Runner[O, F, C]) removeWatcher(ch chan State[O, F]) {
	r.watchMu.Lock()
	defer r.watchMu.Unlock()

	if _, ok := r.watchers[ch]; ok {
		delete(r.watchers, ch)
		close(ch)
	}
}

func (r *Runner[O, F, C]) closeWatchers() {
	r.watchMu.Lock()
	defer r.watchMu.Unlock()

	r.watchClosed = true
	for ch := range r.watchers {
		close(ch)
	}
	clear(r.watchers)
}
