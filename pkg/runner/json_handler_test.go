package runner_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/gridwalk/pkg/adapters/memory"
	"github.com/aretw0/gridwalk/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, data []byte) []map[string]any {
	t.Helper()
	var lines []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &m), scanner.Text())
		lines = append(lines, m)
	}
	return lines
}

func TestJSONHandler_Output(t *testing.T) {
	var out bytes.Buffer
	r := runner.NewRunner(runner.WithHandler(runner.NewJSONHandler(&out)))

	_, err := r.Run(context.Background(), memory.NewSampleLoader(), "exit-at-4", "single")
	require.NoError(t, err)

	lines := decodeLines(t, out.Bytes())
	require.Len(t, lines, 2)
	assert.Equal(t, "exit-at-4", lines[0]["name"])
	assert.Equal(t, "HI, 1, 2, 11, 12, 3, 4", lines[0]["result"])
	assert.Equal(t, "exited", lines[0]["status"])
	assert.Equal(t, true, lines[0]["match"])
	assert.Equal(t, []any{"HI"}, lines[1]["output"])
}

func TestTraceHandler(t *testing.T) {
	var out bytes.Buffer
	r := runner.NewRunner(runner.WithHandler(runner.NewTraceHandler(&out)))

	results, err := r.Run(context.Background(), memory.NewSampleLoader(), "single")
	require.NoError(t, err)
	require.Len(t, results, 1)

	lines := decodeLines(t, out.Bytes())
	require.Len(t, lines, 4)

	// Initial state.
	assert.Equal(t, "single", lines[0]["grid"])
	assert.Equal(t, float64(0), lines[0]["step"])
	assert.Equal(t, "right", lines[0]["heading"])
	assert.Equal(t, "active", lines[0]["status"])

	// Cell (0,0) read, cursor moved right.
	assert.Equal(t, float64(1), lines[1]["step"])
	assert.Equal(t, []any{"HI"}, lines[1]["emitted"])
	assert.Equal(t, map[string]any{"row": float64(0), "col": float64(1)}, lines[1]["position"])
	assert.NotContains(t, lines[1], "heading")

	// Bounds exit.
	assert.Equal(t, float64(2), lines[2]["step"])
	assert.Equal(t, "exited", lines[2]["status"])
	assert.NotContains(t, lines[2], "emitted")

	// Final result.
	assert.Equal(t, "HI", lines[3]["result"])
}
