package runner

import (
	"log/slog"

	"github.com/aretw0/gridwalk"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithHandler configures a custom OutputHandler.
func WithHandler(handler OutputHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithStyle selects the API face used for every walk.
func WithStyle(style gridwalk.Style) Option {
	return func(r *Runner) {
		r.Style = style
	}
}

// WithEngine configures the gridwalk engine (and therefore its hooks).
func WithEngine(engine *gridwalk.Engine) Option {
	return func(r *Runner) {
		r.engine = engine
	}
}

// WithFailFast stops Run at the first fixture whose result misses its expectation.
func WithFailFast(enabled bool) Option {
	return func(r *Runner) {
		r.FailFast = enabled
	}
}
