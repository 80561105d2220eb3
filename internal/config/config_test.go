package config

import (
	"log/slog"
	"testing"

	"github.com/aretw0/gridwalk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, gridwalk.StyleObject, cfg.WalkStyle())
	assert.Empty(t, cfg.Fixtures)
	assert.True(t, cfg.Metrics)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("GRIDWALK_LOG_LEVEL", "debug")
	t.Setenv("GRIDWALK_LOG_FORMAT", "json")
	t.Setenv("GRIDWALK_ADDR", "127.0.0.1:9000")
	t.Setenv("GRIDWALK_STYLE", "functional")
	t.Setenv("GRIDWALK_FIXTURES", "testdata/grids.yaml")
	t.Setenv("GRIDWALK_METRICS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, gridwalk.StyleFunction, cfg.WalkStyle())
	assert.Equal(t, "testdata/grids.yaml", cfg.Fixtures)
	assert.False(t, cfg.Metrics)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
	}{
		{name: "style", environ: map[string]string{"GRIDWALK_STYLE": "sideways"}},
		{name: "format", environ: map[string]string{"GRIDWALK_LOG_FORMAT": "xml"}},
		{name: "bool", environ: map[string]string{"GRIDWALK_METRICS": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.environ)
			assert.Error(t, err)
		})
	}
}

func TestParse_DefersValidation(t *testing.T) {
	cfg, err := ParseFrom(map[string]string{"GRIDWALK_STYLE": "sideways"})
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	cfg.Style = "function"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, gridwalk.StyleFunction, cfg.WalkStyle())

	_, err = ParseFrom(map[string]string{"GRIDWALK_METRICS": "maybe"})
	assert.Error(t, err)
}
