package domain

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Grid is an immutable rectangular table of tokens.
// It is safe for concurrent readers since nothing mutates it after NewGrid.
type Grid struct {
	cells [][]string
	rows  int
	cols  int
}

// NewGrid copies rows into a Grid.
// Every row must have the same length and every token must be non-empty;
// all violations are reported together, each wrapping ErrInvalidGrid.
// Zero rows (or rows with zero columns) produce a valid empty grid.
func NewGrid(rows [][]string) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, nil
	}

	cols := len(rows[0])
	var result *multierror.Error
	cells := make([][]string, len(rows))
	for r, row := range rows {
		if len(row) != cols {
			result = multierror.Append(result,
				fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidGrid, r, len(row), cols))
		}
		for c, token := range row {
			if token == "" {
				result = multierror.Append(result,
					fmt.Errorf("%w: empty token at %s", ErrInvalidGrid, Position{Row: r, Col: c}))
			}
		}
		cells[r] = append([]string(nil), row...)
	}
	if err := result.ErrorOrNil(); err != nil {
		return Grid{}, err
	}

	if cols == 0 {
		return Grid{}, nil
	}
	return Grid{cells: cells, rows: len(rows), cols: cols}, nil
}

// MustGrid is like NewGrid but panics on invalid input. Intended for fixtures.
func MustGrid(rows [][]string) Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the row count R.
func (g Grid) Rows() int { return g.rows }

// Cols returns the column count C.
func (g Grid) Cols() int { return g.cols }

// Size returns R×C, the upper bound on emitted payloads.
func (g Grid) Size() int { return g.rows * g.cols }

// Empty reports whether the grid has no cells.
func (g Grid) Empty() bool { return g.Size() == 0 }

// Contains reports whether p lies within [0,R)×[0,C).
func (g Grid) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the token at p.
func (g Grid) At(p Position) (string, error) {
	if !g.Contains(p) {
		return "", fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfRange, p, g.rows, g.cols)
	}
	return g.cells[p.Row][p.Col], nil
}

// Cells returns a copy of the underlying table.
func (g Grid) Cells() [][]string {
	out := make([][]string, len(g.cells))
	for i, row := range g.cells {
		out[i] = append([]string(nil), row...)
	}
	return out
}
