package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/aretw0/gridwalk"
	"github.com/aretw0/gridwalk/pkg/adapters/memory"
	"github.com/aretw0/gridwalk/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Samples(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	engine := gridwalk.New(gridwalk.WithLifecycleHooks(m.Hooks()))
	for _, fx := range memory.Samples() {
		_, err := engine.Walk(context.Background(), fx.Grid)
		require.NoError(t, err)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Walks.WithLabelValues("looped")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.Walks.WithLabelValues("exited")))
	// 15 + 15 + 7 + 1 + 6 payloads read.
	assert.Equal(t, float64(44), testutil.ToFloat64(m.Cells))
	assert.Greater(t, testutil.ToFloat64(m.HeadingChanges), float64(0))
	assert.Equal(t, 5, testutil.CollectAndCount(reg))
}

func TestMetrics_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)
	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)

	m, err := observability.NewMetrics(nil)
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestCombine_LoggingAndMetrics(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m, err := observability.NewMetrics(nil)
	require.NoError(t, err)

	hooks := observability.Combine(observability.LoggingHooks(logger), m.Hooks(), observability.Combine())
	engine := gridwalk.New(gridwalk.WithLifecycleHooks(hooks))

	out, err := engine.Solve(context.Background(), gridwalk.StyleObject, memory.Samples()[3].Grid)
	require.NoError(t, err)
	assert.Equal(t, []string{"HI"}, out)

	logs := buf.String()
	assert.Contains(t, logs, "msg=step")
	assert.Contains(t, logs, "token=HI")
	assert.Contains(t, logs, `msg="walk finished" status=exited steps=2 emitted=1`)
	assert.Equal(t, 1, strings.Count(logs, "msg=step"))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Walks.WithLabelValues("exited")))
}
