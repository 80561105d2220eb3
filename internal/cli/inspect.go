package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/gridwalk"
	"github.com/aretw0/gridwalk/internal/presentation/graph"
	"github.com/aretw0/gridwalk/internal/presentation/tui"
	"github.com/aretw0/gridwalk/internal/validator"
	"github.com/aretw0/gridwalk/pkg/domain"
)

// walkState walks grid through the selected face and returns the final state.
func walkState(ctx context.Context, engine *gridwalk.Engine, style gridwalk.Style, grid domain.Grid) (*domain.State, error) {
	if style == gridwalk.StyleObject {
		w := engine.NewWalker(grid)
		if err := w.Run(ctx); err != nil {
			return nil, err
		}
		return w.State(), nil
	}
	return engine.Walk(ctx, grid)
}

// Show prints the named grid as a table annotated with the visit order, then the result.
func Show(ctx context.Context, fixtures, name string, style gridwalk.Style, w io.Writer, logger *slog.Logger) error {
	loader, err := OpenLoader(fixtures)
	if err != nil {
		return err
	}
	fx, err := loader.GetFixture(ctx, name)
	if err != nil {
		return err
	}

	state, err := walkState(ctx, NewEngine(logger, nil), style, fx.Grid)
	if err != nil {
		return err
	}

	tui.RenderGrid(w, fx.Grid, state)
	fmt.Fprintf(w, "%s (%s after %d steps)\n", state.Result(), state.Status, state.Steps)
	return nil
}

// Graph prints a Mermaid flowchart of the named grid and its walk.
func Graph(ctx context.Context, fixtures, name string, w io.Writer, logger *slog.Logger) error {
	loader, err := OpenLoader(fixtures)
	if err != nil {
		return err
	}
	fx, err := loader.GetFixture(ctx, name)
	if err != nil {
		return err
	}

	state, err := NewEngine(logger, nil).Walk(ctx, fx.Grid)
	if err != nil {
		return err
	}
	fmt.Fprint(w, graph.GenerateMermaid(fx.Grid, state))
	return nil
}

// Validate checks every fixture and reports a summary line on success.
func Validate(ctx context.Context, fixtures string, w io.Writer) error {
	loader, err := OpenLoader(fixtures)
	if err != nil {
		return err
	}
	if err := validator.ValidateFixtures(ctx, loader); err != nil {
		return err
	}

	names, err := loader.ListGrids(ctx)
	if err != nil {
		return err
	}
	printSystemMessage(w, "%d grids valid.", len(names))
	return nil
}
