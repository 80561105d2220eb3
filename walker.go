package gridwalk

import (
	"context"
	"errors"

	"github.com/aretw0/gridwalk/internal/runtime"
	"github.com/aretw0/gridwalk/pkg/domain"
)

// Walker is the stateful face of the engine: it owns one walk's cursor,
// heading, visited set and output, and advances them in place.
// A Walker is not safe for concurrent use; the Grid it reads is.
type Walker struct {
	engine *runtime.Engine
	grid   domain.Grid
	state  *domain.State
}

var errNoWalk = errors.New("gridwalk: Walker was not created by NewWalker")

// NewWalker creates a Walker over grid using the default (silent) engine.
func NewWalker(grid domain.Grid) *Walker {
	return defaultEngine.NewWalker(grid)
}

// Step advances the walk by one cell. It returns false once the walk has
// terminated (including on the call that terminates it).
// It panics if the engine fails, like Traverse.
func (w *Walker) Step(ctx context.Context) bool {
	if w.state != nil && w.state.Terminated() {
		return false
	}
	if err := w.advance(ctx); err != nil {
		panic(err)
	}
	return !w.state.Terminated()
}

// Run steps until the walk terminates.
func (w *Walker) Run(ctx context.Context) error {
	if w.engine == nil || w.state == nil {
		return errNoWalk
	}
	for !w.state.Terminated() {
		if err := w.engine.Advance(ctx, w.grid, w.state); err != nil {
			return err
		}
	}
	return nil
}

// Parse runs the walk to completion and returns the joined output.
// It panics if the engine fails, like Traverse.
func (w *Walker) Parse() string {
	if err := w.Run(context.Background()); err != nil {
		panic(err)
	}
	return w.state.Result()
}

func (w *Walker) advance(ctx context.Context) error {
	if w.engine == nil || w.state == nil {
		return errNoWalk
	}
	return w.engine.Advance(ctx, w.grid, w.state)
}

// Done reports whether the walk has terminated.
func (w *Walker) Done() bool { return w.state.Terminated() }

// Position returns the cell the cursor will read next.
func (w *Walker) Position() domain.Position { return w.state.Position }

// Heading returns the current heading.
func (w *Walker) Heading() domain.Heading { return w.state.Heading }

// Status returns the walk status.
func (w *Walker) Status() domain.Status { return w.state.Status }

// Output returns a copy of the payloads emitted so far.
func (w *Walker) Output() []string {
	out := make([]string, len(w.state.Output))
	copy(out, w.state.Output)
	return out
}

// State returns a snapshot of the walk that the caller may keep or mutate.
func (w *Walker) State() *domain.State { return w.state.Clone() }
