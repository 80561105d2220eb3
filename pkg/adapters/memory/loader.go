package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/gridwalk/pkg/domain"
)

// Loader implements ports.GridLoader using an in-memory map.
// Safe for concurrent use.
type Loader struct {
	fixtures map[string]domain.Fixture
	mu       sync.RWMutex
}

// NewLoader creates an empty in-memory loader.
func NewLoader() *Loader {
	return &Loader{
		fixtures: make(map[string]domain.Fixture),
	}
}

// NewFromFixtures creates a loader preloaded with fixtures.
func NewFromFixtures(fixtures ...domain.Fixture) (*Loader, error) {
	l := NewLoader()
	for _, fx := range fixtures {
		if err := l.Add(fx); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// NewFromRows creates a loader from raw rows keyed by name.
func NewFromRows(data map[string][][]string) (*Loader, error) {
	l := NewLoader()
	for name, rows := range data {
		grid, err := domain.NewGrid(rows)
		if err != nil {
			return nil, fmt.Errorf("grid %s: %w", name, err)
		}
		if err := l.Add(domain.Fixture{Name: name, Grid: grid}); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Add registers a fixture. Names must be non-empty and unique.
func (l *Loader) Add(fx domain.Fixture) error {
	if fx.Name == "" {
		return fmt.Errorf("fixture missing name")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.fixtures[fx.Name]; exists {
		return fmt.Errorf("duplicate fixture %q", fx.Name)
	}
	l.fixtures[fx.Name] = fx
	return nil
}

// ListGrids returns all fixture names.
func (l *Loader) ListGrids(ctx context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.fixtures))
	for name := range l.fixtures {
		names = append(names, name)
	}
	sort.Strings(names) // Deterministic order
	return names, nil
}

// GetFixture retrieves a fixture by name.
// Grids are immutable, so the returned value shares nothing mutable with the loader.
func (l *Loader) GetFixture(ctx context.Context, name string) (domain.Fixture, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	fx, ok := l.fixtures[name]
	if !ok {
		return domain.Fixture{}, fmt.Errorf("%w: %s", domain.ErrGridNotFound, name)
	}
	return fx, nil
}
