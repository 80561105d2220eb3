package ports

import (
	"context"
	"sort"
	"testing"

	"github.com/aretw0/gridwalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunGridLoaderContract runs a suite of tests to verify that a GridLoader
// implementation adheres to the defined interface contract.
// The loader must hold at least one fixture.
func RunGridLoaderContract(t *testing.T, loader GridLoader) {
	t.Helper()
	ctx := context.Background()

	names, err := loader.ListGrids(ctx)
	require.NoError(t, err, "ListGrids should not return error")
	require.NotEmpty(t, names, "contract requires at least one fixture")

	t.Run("List Is Sorted And Unique", func(t *testing.T) {
		assert.True(t, sort.StringsAreSorted(names), "names should be sorted: %v", names)
		seen := make(map[string]bool, len(names))
		for _, n := range names {
			assert.False(t, seen[n], "duplicate name %q", n)
			seen[n] = true
		}
	})

	t.Run("Get Every Listed Fixture", func(t *testing.T) {
		for _, name := range names {
			fx, err := loader.GetFixture(ctx, name)
			require.NoError(t, err, "GetFixture(%q)", name)
			assert.Equal(t, name, fx.Name)
		}
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := loader.GetFixture(ctx, "non-existent-grid")
		assert.ErrorIs(t, err, domain.ErrGridNotFound)
	})

	t.Run("Fixtures Are Isolated", func(t *testing.T) {
		fx, err := loader.GetFixture(ctx, names[0])
		require.NoError(t, err)
		if fx.Grid.Empty() {
			return
		}
		cells := fx.Grid.Cells()
		cells[0][0] = "mutated"

		again, err := loader.GetFixture(ctx, names[0])
		require.NoError(t, err)
		tok, err := again.Grid.At(domain.Origin)
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", tok)
	})
}
