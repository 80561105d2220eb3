package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/gridwalk"
	"github.com/aretw0/gridwalk/internal/presentation/tui"
	"github.com/aretw0/gridwalk/pkg/adapters/memory"
	"github.com/aretw0/gridwalk/pkg/ports"
	"github.com/aretw0/gridwalk/pkg/runner"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Fixtures string
	Grids    []string
	Style    gridwalk.Style
	JSON     bool
	Trace    bool
	Report   bool
	Names    bool
	FailFast bool
}

// Run walks fixtures and prints one result per grid to w.
// Without explicit grids, the built-in samples run in their demo order.
func Run(ctx context.Context, opts RunOptions, w io.Writer, logger *slog.Logger) error {
	loader, err := OpenLoader(opts.Fixtures)
	if err != nil {
		return err
	}

	grids := opts.Grids
	if len(grids) == 0 && opts.Fixtures == "" {
		grids = memory.SampleNames()
	}

	if opts.Report {
		return runReport(ctx, loader, grids, opts.Style, w, logger)
	}

	r := runner.NewRunner(
		runner.WithEngine(NewEngine(logger, nil)),
		runner.WithLogger(logger),
		runner.WithStyle(opts.Style),
		runner.WithHandler(newHandler(opts, w)),
		runner.WithFailFast(opts.FailFast),
	)
	_, err = r.Run(ctx, loader, grids...)
	return err
}

func newHandler(opts RunOptions, w io.Writer) runner.OutputHandler {
	switch {
	case opts.Trace:
		return runner.NewTraceHandler(w)
	case opts.JSON:
		return runner.NewJSONHandler(w)
	case opts.Names:
		return runner.NewTextHandler(w, runner.WithNames())
	default:
		return runner.NewTextHandler(w)
	}
}

// runReport prints a markdown report per grid, rendered for the terminal when w is one.
func runReport(ctx context.Context, loader ports.GridLoader, grids []string, style gridwalk.Style, w io.Writer, logger *slog.Logger) error {
	if len(grids) == 0 {
		var err error
		if grids, err = loader.ListGrids(ctx); err != nil {
			return err
		}
	}

	var render func(string) (string, error)
	if IsTerminal(w) {
		render = tui.NewRenderer(TerminalWidth(w, 80))
	}

	engine := NewEngine(logger, nil)
	for _, name := range grids {
		fx, err := loader.GetFixture(ctx, name)
		if err != nil {
			return err
		}

		state, err := walkState(ctx, engine, style, fx.Grid)
		if err != nil {
			return fmt.Errorf("grid %s: %w", name, err)
		}

		md := tui.Report(name, fx.Grid, state)
		if render != nil {
			if out, err := render(md); err == nil {
				md = out
			}
		}
		fmt.Fprintln(w, md)
	}
	return nil
}
