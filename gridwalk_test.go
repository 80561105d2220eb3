package gridwalk_test

import (
	"context"
	"testing"

	"github.com/aretw0/gridwalk"
	"github.com/aretw0/gridwalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtures are the acceptance cases for both faces.
var fixtures = []struct {
	name string
	rows [][]string
	want string
}{
	{
		name: "visits all elements and loops v1",
		rows: [][]string{
			{"HI", "1", "2", "3", "v4"},
			{">9", "10", "11", "v12", "13"},
			{"^14", "15", "16", "17", "<18"},
		},
		want: "HI, 1, 2, 3, 4, 13, 18, 17, 16, 15, 14, 9, 10, 11, 12, LOOP",
	},
	{
		name: "visits all elements and loops v2",
		rows: [][]string{
			{"HI", "1", "v2", ">3", "v4"},
			{"v9", "<10", ">11", "^12", "13"},
			{">14", "^15", "16", "17", "<18"},
		},
		want: "HI, 1, 2, 11, 12, 3, 4, 13, 18, 17, 16, 15, 10, 9, 14, LOOP",
	},
	{
		name: "visits select elements and exits at 4",
		rows: [][]string{
			{"HI", "1", "v2", ">3", "4"},
			{"v9", "<10", ">11", "^12", "13"},
			{"14", "^15", "16", "17", "<18"},
		},
		want: "HI, 1, 2, 11, 12, 3, 4",
	},
	{
		name: "visits single element and exits",
		rows: [][]string{{"HI"}},
		want: "HI",
	},
	{
		name: "visits arbitrary strings",
		rows: [][]string{
			{"HI", "$", "vv%", ">3", "4"},
			{"v9", "<10", ">#$T", "&*JJ", "t"},
			{"14", "^15", "16", "17", "<18"},
		},
		want: "HI, $, v%, #$T, &*JJ, t",
	},
}

func TestFaces_Fixtures(t *testing.T) {
	for _, tt := range fixtures {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := domain.NewGrid(tt.rows)
			require.NoError(t, err)

			objectResult := gridwalk.NewWalker(grid).Parse()
			functionResult, err := gridwalk.TraverseMatrix(tt.rows)
			require.NoError(t, err)

			assert.Equal(t, tt.want, objectResult)
			assert.Equal(t, tt.want, functionResult)
		})
	}
}

func TestTraverseMatrix_InvalidGrid(t *testing.T) {
	_, err := gridwalk.TraverseMatrix([][]string{{"a", "b"}, {"c"}})
	assert.ErrorIs(t, err, domain.ErrInvalidGrid)
}

func TestTraverse_EmptyGrid(t *testing.T) {
	assert.Empty(t, gridwalk.Traverse(domain.Grid{}))
	assert.Equal(t, "", gridwalk.NewWalker(domain.Grid{}).Parse())
}

func TestEngine_Solve(t *testing.T) {
	eng := gridwalk.New()
	grid := domain.MustGrid(fixtures[0].rows)
	ctx := context.Background()

	object, err := eng.Solve(ctx, gridwalk.StyleObject, grid)
	require.NoError(t, err)
	function, err := eng.Solve(ctx, gridwalk.StyleFunction, grid)
	require.NoError(t, err)

	assert.Equal(t, object, function)
	assert.Equal(t, fixtures[0].want, domain.Join(object))

	_, err = eng.Solve(ctx, gridwalk.Style("diagonal"), grid)
	assert.Error(t, err)
}

func TestEngine_StepAndWalk(t *testing.T) {
	eng := gridwalk.New()
	grid := domain.MustGrid([][]string{{"HI", "v1"}, {"x", "<2"}})
	ctx := context.Background()

	state := eng.Start()
	for !state.Terminated() {
		var err error
		state, err = eng.Step(ctx, grid, state)
		require.NoError(t, err)
	}

	walked, err := eng.Walk(ctx, grid)
	require.NoError(t, err)
	assert.Equal(t, walked.Result(), state.Result())
}

func TestEngine_HooksFireForBothFaces(t *testing.T) {
	var terminated []domain.Status
	eng := gridwalk.New(gridwalk.WithLifecycleHooks(domain.LifecycleHooks{
		OnTerminate: func(ctx context.Context, e *domain.TerminateEvent) {
			terminated = append(terminated, e.Status)
		},
	}))
	grid := domain.MustGrid(fixtures[2].rows)

	for _, style := range []gridwalk.Style{gridwalk.StyleObject, gridwalk.StyleFunction} {
		_, err := eng.Solve(context.Background(), style, grid)
		require.NoError(t, err)
	}
	assert.Equal(t, []domain.Status{domain.StatusExited, domain.StatusExited}, terminated)
}

func TestParseStyle(t *testing.T) {
	for in, want := range map[string]gridwalk.Style{
		"":           gridwalk.StyleObject,
		"object":     gridwalk.StyleObject,
		"OO":         gridwalk.StyleObject,
		"function":   gridwalk.StyleFunction,
		"functional": gridwalk.StyleFunction,
	} {
		got, err := gridwalk.ParseStyle(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := gridwalk.ParseStyle("recursive")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, gridwalk.Version)
}
