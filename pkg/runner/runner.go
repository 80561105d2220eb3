package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/gridwalk"
	"github.com/aretw0/gridwalk/pkg/domain"
	"github.com/aretw0/gridwalk/pkg/ports"
)

// ErrMismatch is returned by Run when a fixture's result differs from its expectation.
var ErrMismatch = errors.New("result does not match expectation")

// Runner walks named fixtures and reports each result through a Handler.
type Runner struct {
	// Handler presents results. Defaults to a TextHandler on stdout.
	Handler OutputHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Style selects the API face. Defaults to gridwalk.StyleObject.
	Style gridwalk.Style

	// FailFast stops at the first mismatch instead of reporting every fixture.
	FailFast bool

	engine *gridwalk.Engine
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdout)
	}
	if r.Style == "" {
		r.Style = gridwalk.StyleObject
	}
	if r.engine == nil {
		r.engine = gridwalk.New(gridwalk.WithLogger(r.Logger))
	}
	return r
}

// Run walks the named fixtures, or every fixture of the loader when names is empty.
// Each result is passed to the Handler as soon as it is available.
// Mismatches are reported together as ErrMismatch after all fixtures ran
// (or immediately with FailFast).
func (r *Runner) Run(ctx context.Context, loader ports.GridLoader, names ...string) ([]Result, error) {
	if len(names) == 0 {
		var err error
		names, err = loader.ListGrids(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list grids: %w", err)
		}
	}

	results := make([]Result, 0, len(names))
	mismatches := 0
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		fx, err := loader.GetFixture(ctx, name)
		if err != nil {
			return results, err
		}

		res, err := r.Walk(ctx, fx)
		if err != nil {
			return results, fmt.Errorf("grid %s: %w", name, err)
		}
		results = append(results, res)

		if err := r.Handler.Output(ctx, res); err != nil {
			return results, fmt.Errorf("output error: %w", err)
		}

		if !res.Match {
			mismatches++
			r.Logger.Warn("fixture mismatch", "grid", name, "expect", res.Expect, "got", res.Result)
			if r.FailFast {
				return results, fmt.Errorf("%w: %s", ErrMismatch, name)
			}
		}
	}

	if mismatches > 0 {
		return results, fmt.Errorf("%w: %d of %d grids", ErrMismatch, mismatches, len(results))
	}
	return results, nil
}

// Walk runs a single fixture through the configured style.
func (r *Runner) Walk(ctx context.Context, fx domain.Fixture) (Result, error) {
	var state *domain.State
	var err error

	if tracer, ok := r.Handler.(StepTracer); ok {
		state, err = r.trace(ctx, fx, tracer)
	} else {
		state, err = r.walk(ctx, fx.Grid)
	}
	if err != nil {
		return Result{}, err
	}

	r.Logger.Debug("grid walked", "grid", fx.Name, "style", r.Style, "status", state.Status, "steps", state.Steps)

	res := Result{
		Name:   fx.Name,
		Style:  string(r.Style),
		Output: state.Output,
		Result: state.Result(),
		Status: state.Status,
		Steps:  state.Steps,
		Expect: fx.Expect,
	}
	res.Match = !res.Checked() || res.Expect == res.Result
	return res, nil
}

func (r *Runner) walk(ctx context.Context, grid domain.Grid) (*domain.State, error) {
	switch r.Style {
	case gridwalk.StyleObject:
		w := r.engine.NewWalker(grid)
		if err := w.Run(ctx); err != nil {
			return nil, err
		}
		return w.State(), nil
	case gridwalk.StyleFunction:
		return r.engine.Walk(ctx, grid)
	}
	return nil, fmt.Errorf("unknown style %q", r.Style)
}

// trace drives the pure Step transition so that every intermediate state is
// available for diffing. The first diff describes the initial state.
func (r *Runner) trace(ctx context.Context, fx domain.Fixture, tracer StepTracer) (*domain.State, error) {
	state := r.engine.Start()
	if err := tracer.Trace(ctx, fx.Name, domain.Diff(nil, state)); err != nil {
		return nil, err
	}

	for !state.Terminated() {
		next, err := r.engine.Step(ctx, fx.Grid, state)
		if err != nil {
			return nil, err
		}
		if diff := domain.Diff(state, next); diff != nil {
			if err := tracer.Trace(ctx, fx.Name, diff); err != nil {
				return nil, err
			}
		}
		state = next
	}
	return state, nil
}
