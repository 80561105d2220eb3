package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/gridwalk/pkg/domain"
)

const exitNodeID = "exit"

// GenerateMermaid produces a Mermaid flowchart of a grid and, when state is
// non-nil, of the walk recorded in it.
// It applies semantic styling:
// - Origin: ((Circle))
// - Turning cell (glyph): {{Hexagon}}
// - Default: [Rectangle]
// Steps become edges in visit order. A loop adds a dotted LOOP edge back to
// the revisited cell; a bounds exit adds a terminal exit node.
func GenerateMermaid(grid domain.Grid, state *domain.State) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	cells := grid.Cells()
	for r, row := range cells {
		for c, token := range row {
			p := domain.Position{Row: r, Col: c}

			opener, closer := "[", "]"
			switch {
			case p == domain.Origin:
				opener, closer = "((", "))"
			default:
				if _, turns := domain.DirectionFor(token); turns {
					opener, closer = "{{", "}}"
				}
			}
			sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", nodeID(p), opener, escapeLabel(token), closer))
		}
	}

	if state == nil {
		return sb.String()
	}

	for i := 1; i < len(state.Path); i++ {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", nodeID(state.Path[i-1]), nodeID(state.Path[i])))
	}

	current := ""
	if n := len(state.Path); n > 0 {
		last := nodeID(state.Path[n-1])
		switch state.Status {
		case domain.StatusLooped:
			current = nodeID(state.Position)
			sb.WriteString(fmt.Sprintf("    %s -. %s .-> %s\n", last, domain.LoopSentinel, current))
		case domain.StatusExited:
			current = exitNodeID
			sb.WriteString(fmt.Sprintf("    %s(((\"exit\")))\n", exitNodeID))
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", last, exitNodeID))
		default:
			current = nodeID(state.Position)
		}
	}

	// Overlay Styles
	sb.WriteString("\n    %% Overlay Styles\n")
	sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
	for _, p := range state.Path {
		sb.WriteString(fmt.Sprintf("    class %s visited;\n", nodeID(p)))
	}
	if current != "" {
		sb.WriteString(fmt.Sprintf("    class %s current;\n", current))
	}

	return sb.String()
}

func nodeID(p domain.Position) string {
	return fmt.Sprintf("c%d_%d", p.Row, p.Col)
}

func escapeLabel(s string) string {
	return strings.NewReplacer(`"`, "#quot;", "<", "#lt;", ">", "#gt;").Replace(s)
}
