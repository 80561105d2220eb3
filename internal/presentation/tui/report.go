package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/gridwalk/pkg/domain"
)

// Report builds a markdown summary of a finished walk: result, status and
// the grid with the visit order of each cell.
func Report(name string, grid domain.Grid, state *domain.State) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", name)
	fmt.Fprintf(&sb, "- **Size:** %d×%d\n", grid.Rows(), grid.Cols())
	fmt.Fprintf(&sb, "- **Status:** %s\n", state.Status)
	fmt.Fprintf(&sb, "- **Steps:** %d\n", state.Steps)
	fmt.Fprintf(&sb, "- **Result:** `%s`\n", state.Result())

	if grid.Empty() {
		return sb.String()
	}

	sb.WriteString("\n|   |")
	for c := 0; c < grid.Cols(); c++ {
		fmt.Fprintf(&sb, " %d |", c)
	}
	sb.WriteString("\n|---|")
	sb.WriteString(strings.Repeat("---|", grid.Cols()))
	sb.WriteString("\n")

	for r, row := range CellLabels(grid, state) {
		fmt.Fprintf(&sb, "| %d |", r)
		for _, cell := range row {
			fmt.Fprintf(&sb, " %s |", escapeMarkdown(cell))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func escapeMarkdown(s string) string {
	return strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`, "`", "\\`", "<", "&lt;", ">", "&gt;").Replace(s)
}
