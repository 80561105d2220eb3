package compiler_test

import (
	"testing"

	"github.com/aretw0/gridwalk/internal/compiler"
	"github.com/aretw0/gridwalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	src := []byte(`# exits at 4
HI  1    v2   >3   4

v9  <10  >11  ^12  13
	14  ^15  16   17   <18
`)
	grid, err := compiler.NewParser().Parse(src)
	require.NoError(t, err)
	assert.Equal(t, 3, grid.Rows())
	assert.Equal(t, 5, grid.Cols())

	tok, err := grid.At(domain.Position{Row: 2, Col: 4})
	require.NoError(t, err)
	assert.Equal(t, "<18", tok)
}

func TestParser_Parse_Ragged(t *testing.T) {
	_, err := compiler.NewParser().Parse([]byte("a b\nc\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidGrid)
}

func TestParser_Parse_Empty(t *testing.T) {
	grid, err := compiler.NewParser().Parse([]byte("# nothing here\n\n"))
	require.NoError(t, err)
	assert.True(t, grid.Empty())
}

func TestParser_FormatRoundTrip(t *testing.T) {
	p := compiler.NewParser()
	grid := domain.MustGrid([][]string{
		{"HI", "1", "vv%"},
		{">#$T", "10", "x"},
	})

	out := p.Format(grid)
	assert.Equal(t, "HI   1  vv%\n>#$T 10 x\n", string(out))

	back, err := p.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, grid.Cells(), back.Cells())
}
