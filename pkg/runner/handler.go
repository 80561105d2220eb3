package runner

import (
	"context"

	"github.com/aretw0/gridwalk/pkg/domain"
)

// OutputHandler defines the strategy for presenting walk results.
// This allows switching between Text (CLI) and JSON (Structured) modes.
type OutputHandler interface {
	// Output presents the result of one walk.
	Output(ctx context.Context, result Result) error
}

// StepTracer is implemented by handlers that want every intermediate state.
// When the configured handler is a StepTracer, the Runner walks step by step
// and calls Trace with the diff produced by each transition.
type StepTracer interface {
	Trace(ctx context.Context, name string, diff *domain.StateDiff) error
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// Result is the outcome of walking one fixture.
type Result struct {
	Name   string        `json:"name"`
	Style  string        `json:"style"`
	Output []string      `json:"output"`
	Result string        `json:"result"`
	Status domain.Status `json:"status"`
	Steps  int           `json:"steps"`

	// Expect is the fixture's expected result, if it declares one.
	Expect string `json:"expect,omitempty"`
	// Match is false only when Expect is set and differs from Result.
	Match bool `json:"match"`
}

// Checked reports whether the fixture declared an expectation.
func (r Result) Checked() bool {
	return r.Expect != ""
}
