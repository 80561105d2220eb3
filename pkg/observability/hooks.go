package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/gridwalk/pkg/domain"
)

// LoggingHooks logs every step at Debug and every termination at Info.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			logger.DebugContext(ctx, "step",
				"position", e.Position.String(),
				"token", e.Token,
				"heading", e.To.String(),
				"turned", e.Turned(),
			)
		},
		OnTerminate: func(ctx context.Context, e *domain.TerminateEvent) {
			logger.InfoContext(ctx, "walk finished",
				"status", string(e.Status),
				"steps", e.Steps,
				"emitted", e.Emitted,
			)
		},
	}
}

// Combine fans every event out to each hooks value in order. Nil callbacks are skipped.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			for _, h := range hooks {
				if h.OnStep != nil {
					h.OnStep(ctx, e)
				}
			}
		},
		OnTerminate: func(ctx context.Context, e *domain.TerminateEvent) {
			for _, h := range hooks {
				if h.OnTerminate != nil {
					h.OnTerminate(ctx, e)
				}
			}
		},
	}
}
