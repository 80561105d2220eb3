/*
Package runner implements batch execution of gridwalk fixtures.

It acts as the bridge between the engine and the outside world: the Runner
pulls named fixtures from a ports.GridLoader, walks each one through the
selected API face and hands a Result to a pluggable OutputHandler.

# Key Components

  - Runner: walks fixtures and checks them against their expected output.
  - OutputHandler: decouples how results are presented (text, JSON).
  - TextHandler: one joined line per grid, for humans and shell pipelines.
  - JSONHandler: NDJSON records, optionally with a per-step trace.

# Usage

	r := runner.NewRunner(
		runner.WithStyle(gridwalk.StyleFunction),
		runner.WithHandler(runner.NewTextHandler(os.Stdout, runner.WithNames())),
	)

	results, err := r.Run(ctx, memory.NewSampleLoader())
*/
package runner
