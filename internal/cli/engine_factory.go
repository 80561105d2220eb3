package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/gridwalk"
	"github.com/aretw0/gridwalk/pkg/adapters/file"
	"github.com/aretw0/gridwalk/pkg/adapters/memory"
	"github.com/aretw0/gridwalk/pkg/domain"
	"github.com/aretw0/gridwalk/pkg/observability"
	"github.com/aretw0/gridwalk/pkg/ports"
)

// NewEngine initializes a gridwalk engine with standard CLI conventions:
// the shared logger, debug logging hooks and optional metrics hooks.
func NewEngine(logger *slog.Logger, metrics *observability.Metrics) *gridwalk.Engine {
	hooks := []domain.LifecycleHooks{observability.LoggingHooks(logger)}
	if metrics != nil {
		hooks = append(hooks, metrics.Hooks())
	}

	return gridwalk.New(
		gridwalk.WithLogger(logger),
		gridwalk.WithLifecycleHooks(observability.Combine(hooks...)),
	)
}

// OpenLoader returns the fixtures at path, or the built-in samples when path is empty.
func OpenLoader(path string) (ports.GridLoader, error) {
	if path == "" {
		return memory.NewSampleLoader(), nil
	}
	loader, err := file.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading fixtures: %w", err)
	}
	return loader, nil
}
