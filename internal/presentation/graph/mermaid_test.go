package graph_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/gridwalk"
	"github.com/aretw0/gridwalk/internal/presentation/graph"
	"github.com/aretw0/gridwalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walk(t *testing.T, rows [][]string) (domain.Grid, *domain.State) {
	t.Helper()
	grid := domain.MustGrid(rows)
	state, err := gridwalk.New().Walk(context.Background(), grid)
	require.NoError(t, err)
	return grid, state
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name        string
		rows        [][]string
		contains    []string
		notContains []string
	}{
		{
			name: "Loop",
			rows: [][]string{{">a", "v"}, {"^c", "<b"}},
			contains: []string{
				"graph TD\n",
				`    c0_0(("#gt;a"))`,
				`    c0_1{{"v"}}`,
				`    c1_1{{"#lt;b"}}`,
				"    c0_0 --> c0_1\n",
				"    c0_1 --> c1_1\n",
				"    c1_1 --> c1_0\n",
				"    c1_0 -. LOOP .-> c0_0\n",
				"    class c1_0 visited;\n",
				"    class c0_0 current;\n",
			},
			notContains: []string{"exit"},
		},
		{
			name: "Exit",
			rows: [][]string{{"a", "b"}, {"c", "d"}},
			contains: []string{
				`    c0_1["b"]`,
				`    exit((("exit")))`,
				"    c0_1 --> exit\n",
				"    class exit current;\n",
			},
			notContains: []string{"class c1_0 visited", "LOOP"},
		},
		{
			name:     "Label Escaping",
			rows:     [][]string{{`say"hi"`}},
			contains: []string{`c0_0(("say#quot;hi#quot;"))`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, state := walk(t, tt.rows)
			out := graph.GenerateMermaid(grid, state)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestGenerateMermaid_NoState(t *testing.T) {
	grid := domain.MustGrid([][]string{{"HI", "v1"}})
	out := graph.GenerateMermaid(grid, nil)

	assert.Equal(t, "graph TD\n    c0_0((\"HI\"))\n    c0_1{{\"v1\"}}\n", out)
	assert.False(t, strings.Contains(out, "classDef"))
}

func TestGenerateMermaid_EmptyGrid(t *testing.T) {
	grid, state := walk(t, nil)
	out := graph.GenerateMermaid(grid, state)
	assert.Contains(t, out, "graph TD\n")
	assert.NotContains(t, out, "-->")
	assert.NotContains(t, out, "class ")
}
