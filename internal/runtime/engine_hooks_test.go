package runtime_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/aretw0/gridwalk/internal/runtime"
	"github.com/aretw0/gridwalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_LifecycleHooks(t *testing.T) {
	grid := domain.MustGrid([][]string{
		{"HI", "v1"},
		{"x", "<2"},
	})

	var steps []*domain.StepEvent
	var terms []*domain.TerminateEvent
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	engine := runtime.NewEngine(
		runtime.WithClock(func() time.Time { return fixed }),
		runtime.WithLifecycleHooks(domain.LifecycleHooks{
			OnStep: func(ctx context.Context, e *domain.StepEvent) {
				steps = append(steps, e)
			},
			OnTerminate: func(ctx context.Context, e *domain.TerminateEvent) {
				terms = append(terms, e)
			},
		}),
	)

	state, err := engine.Run(context.Background(), grid)
	require.NoError(t, err)
	assert.Equal(t, "HI, 1, 2, x", state.Result())

	require.Len(t, steps, 4)
	assert.Equal(t, domain.Origin, steps[0].Position)
	assert.False(t, steps[0].Turned())
	assert.Equal(t, "v1", steps[1].Token)
	assert.Equal(t, "1", steps[1].Payload)
	assert.True(t, steps[1].Turned())
	assert.Equal(t, domain.Down, steps[1].To)
	assert.Equal(t, domain.Left, steps[2].To)
	assert.Equal(t, fixed, steps[0].Timestamp)
	assert.Equal(t, domain.EventStep, steps[0].Type)

	require.Len(t, terms, 1)
	assert.Equal(t, domain.StatusExited, terms[0].Status)
	assert.Equal(t, domain.Position{Row: 1, Col: -1}, terms[0].Position)
	assert.Equal(t, 5, terms[0].Steps)
	assert.Equal(t, 4, terms[0].Emitted)
}

func TestEngine_LoopEventExcludesSentinel(t *testing.T) {
	grid := domain.MustGrid([][]string{{">a", "<b"}})

	var term *domain.TerminateEvent
	engine := runtime.NewEngine(runtime.WithLifecycleHooks(domain.LifecycleHooks{
		OnTerminate: func(ctx context.Context, e *domain.TerminateEvent) { term = e },
	}))

	_, err := engine.Run(context.Background(), grid)
	require.NoError(t, err)
	require.NotNil(t, term)
	assert.Equal(t, domain.StatusLooped, term.Status)
	assert.Equal(t, 2, term.Emitted)
}

func TestEngine_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := runtime.NewEngine(runtime.WithLogger(logger)).Run(context.Background(), domain.MustGrid([][]string{{"HI"}}))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "walk started")
	assert.Contains(t, out, "cell visited")
	assert.Contains(t, out, "status=exited")
}
