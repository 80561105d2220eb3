package ports

import (
	"context"

	"github.com/aretw0/gridwalk/pkg/domain"
)

// GridLoader defines how callers retrieve named grids.
// This allows the source (memory, YAML/JSON/text files) to be decoupled.
type GridLoader interface {
	// ListGrids returns the available fixture names in a stable (sorted) order.
	ListGrids(ctx context.Context) ([]string, error)

	// GetFixture retrieves a fixture by name.
	// Returns domain.ErrGridNotFound if the name is unknown.
	GetFixture(ctx context.Context, name string) (domain.Fixture, error)
}
