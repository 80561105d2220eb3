package gridwalk

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/gridwalk/internal/logging"
	"github.com/aretw0/gridwalk/internal/runtime"
	"github.com/aretw0/gridwalk/pkg/domain"
)

// Style selects which API face performs a walk.
type Style string

const (
	// StyleObject drives a Walker step by step.
	StyleObject Style = "object"
	// StyleFunction calls the stateless Traverse.
	StyleFunction Style = "function"
)

// ParseStyle resolves a style name. Empty defaults to StyleObject.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case "", StyleObject, "oo", "ooo":
		return StyleObject, nil
	case StyleFunction, "func", "functional":
		return StyleFunction, nil
	}
	return "", fmt.Errorf("unknown style %q (expected %q or %q)", s, StyleObject, StyleFunction)
}

// Engine is the high-level entry point for the gridwalk library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	eng.runtime = runtime.NewEngine(
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
	)
	return eng
}

// defaultEngine backs the package-level functions. It is stateless and safe to share.
var defaultEngine = New()

// Start creates the initial state of a walk.
func (e *Engine) Start() *domain.State {
	return e.runtime.Start()
}

// Step returns the state after one transition, leaving state untouched.
func (e *Engine) Step(ctx context.Context, grid domain.Grid, state *domain.State) (*domain.State, error) {
	return e.runtime.Step(ctx, grid, state)
}

// Walk runs a complete walk and returns its final state.
func (e *Engine) Walk(ctx context.Context, grid domain.Grid) (*domain.State, error) {
	return e.runtime.Run(ctx, grid)
}

// NewWalker creates a stateful Walker that shares this engine's hooks and logger.
func (e *Engine) NewWalker(grid domain.Grid) *Walker {
	return &Walker{
		engine: e.runtime,
		grid:   grid,
		state:  e.runtime.Start(),
	}
}

// Solve walks the grid through the selected face and returns the output sequence.
func (e *Engine) Solve(ctx context.Context, style Style, grid domain.Grid) ([]string, error) {
	switch style {
	case StyleObject, "":
		w := e.NewWalker(grid)
		if err := w.Run(ctx); err != nil {
			return nil, err
		}
		return w.Output(), nil
	case StyleFunction:
		state, err := e.Walk(ctx, grid)
		if err != nil {
			return nil, err
		}
		return state.Output, nil
	}
	return nil, fmt.Errorf("unknown style %q", style)
}

// Traverse returns the ordered payloads emitted by walking grid.
// It is the stateless face of the engine.
func Traverse(grid domain.Grid) []string {
	state, err := defaultEngine.Walk(context.Background(), grid)
	if err != nil {
		// A Grid built by domain.NewGrid is rectangular, so the runtime
		// cannot read out of bounds.
		panic(err)
	}
	return state.Output
}

// TraverseMatrix builds a grid from rows, walks it and joins the output with ", ".
func TraverseMatrix(rows [][]string) (string, error) {
	grid, err := domain.NewGrid(rows)
	if err != nil {
		return "", err
	}
	return domain.Join(Traverse(grid)), nil
}
