package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/gridwalk/internal/logging"
	"github.com/aretw0/gridwalk/pkg/domain"
)

// Engine is the core traversal state machine.
// It holds no per-walk state, so one Engine can drive any number of walks.
type Engine struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	now    func() time.Time
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates a new engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start creates the initial state of a walk: origin, heading right.
func (e *Engine) Start() *domain.State {
	return domain.NewState()
}

// Step applies one transition and returns the resulting state.
// The input state is never mutated, so callers can keep every intermediate
// snapshot. Stepping a terminated state returns domain.ErrTerminated.
func (e *Engine) Step(ctx context.Context, grid domain.Grid, state *domain.State) (*domain.State, error) {
	if state == nil {
		return nil, fmt.Errorf("step: nil state")
	}
	if state.Terminated() {
		return nil, domain.ErrTerminated
	}

	next := state.Clone()
	if err := e.transition(ctx, grid, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Advance applies one transition to a state owned by the caller, in place.
// It is the allocation-free counterpart of Step.
func (e *Engine) Advance(ctx context.Context, grid domain.Grid, state *domain.State) error {
	if state == nil {
		return fmt.Errorf("advance: nil state")
	}
	if state.Terminated() {
		return domain.ErrTerminated
	}
	return e.transition(ctx, grid, state)
}

// Run walks the grid from the origin until it exits the bounds or loops.
// Termination is guaranteed within grid.Size()+1 transitions.
func (e *Engine) Run(ctx context.Context, grid domain.Grid) (*domain.State, error) {
	state := e.Start()
	limit := grid.Size() + 1

	e.logger.Debug("walk started", "rows", grid.Rows(), "cols", grid.Cols())
	for !state.Terminated() {
		if state.Steps >= limit {
			return state, fmt.Errorf("walk did not terminate within %d steps", limit)
		}
		if err := e.transition(ctx, grid, state); err != nil {
			return state, err
		}
	}
	return state, nil
}
