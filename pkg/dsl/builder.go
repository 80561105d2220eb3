package dsl

import (
	"fmt"

	"github.com/aretw0/gridwalk/pkg/adapters/memory"
	"github.com/aretw0/gridwalk/pkg/domain"
)

// Builder manages the grid construction.
type Builder struct {
	name   string
	expect string
	rows   [][]string
}

// New creates a new grid builder.
func New() *Builder {
	return &Builder{}
}

// Named sets the fixture name used by Fixture and Loader.
func (b *Builder) Named(name string) *Builder {
	b.name = name
	return b
}

// Expect records the expected joined output for the fixture.
func (b *Builder) Expect(result string) *Builder {
	b.expect = result
	return b
}

// Row appends a row of cells.
func (b *Builder) Row(cells ...Token) *Builder {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = c.String()
	}
	b.rows = append(b.rows, row)
	return b
}

// Raw appends a row of literal tokens.
func (b *Builder) Raw(tokens ...string) *Builder {
	b.rows = append(b.rows, append([]string(nil), tokens...))
	return b
}

// Build validates the rows and returns the grid.
func (b *Builder) Build() (domain.Grid, error) {
	return domain.NewGrid(b.rows)
}

// Fixture builds the grid and wraps it with the builder's name and expectation.
func (b *Builder) Fixture() (domain.Fixture, error) {
	grid, err := b.Build()
	if err != nil {
		return domain.Fixture{}, fmt.Errorf("grid %s: %w", b.name, err)
	}
	return domain.Fixture{Name: b.name, Grid: grid, Expect: b.expect}, nil
}

// Loader compiles named builders into a memory loader.
func Loader(builders ...*Builder) (*memory.Loader, error) {
	fixtures := make([]domain.Fixture, 0, len(builders))
	for _, b := range builders {
		fx, err := b.Fixture()
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, fx)
	}

	loader, err := memory.NewFromFixtures(fixtures...)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return loader, nil
}
