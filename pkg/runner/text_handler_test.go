package runner

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandler_Output(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(outBuf, WithTextHandlerRenderer(func(s string) (string, error) {
		return "Rendered: " + s + "\n\n", nil
	}))

	err := handler.Output(context.Background(), Result{Name: "g", Result: "a, b", Match: true})
	require.NoError(t, err)
	assert.Equal(t, "Rendered: a, b\n", outBuf.String())
}

func TestTextHandler_Names(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(outBuf, WithNames())

	require.NoError(t, handler.Output(context.Background(), Result{Name: "g", Result: "a", Match: true}))
	require.NoError(t, handler.Output(context.Background(), Result{Name: "h", Result: "a", Expect: "b", Match: false}))
	assert.Equal(t, "g: a\nh: a (expected: b)\n", outBuf.String())
}

func TestResult_Checked(t *testing.T) {
	assert.False(t, Result{}.Checked())
	assert.True(t, Result{Expect: "x"}.Checked())
}
