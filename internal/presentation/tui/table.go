package tui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/gridwalk/pkg/domain"
	"github.com/olekukonko/tablewriter"
)

// RenderGrid writes the grid as a table. When state is non-nil, every
// visited cell is suffixed with its 1-based visit order, e.g. "v4 #5".
func RenderGrid(w io.Writer, grid domain.Grid, state *domain.State) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	header := make([]string, grid.Cols()+1)
	for c := 0; c < grid.Cols(); c++ {
		header[c+1] = strconv.Itoa(c)
	}
	table.SetHeader(header)

	for r, row := range CellLabels(grid, state) {
		table.Append(append([]string{strconv.Itoa(r)}, row...))
	}
	table.Render()
}

// CellLabels returns the grid tokens, with visited cells annotated by visit order.
func CellLabels(grid domain.Grid, state *domain.State) [][]string {
	cells := grid.Cells()
	if state == nil {
		return cells
	}
	for i, p := range state.Path {
		if grid.Contains(p) {
			cells[p.Row][p.Col] = fmt.Sprintf("%s #%d", cells[p.Row][p.Col], i+1)
		}
	}
	return cells
}
