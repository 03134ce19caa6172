package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/bfs"
	"github.com/katalvlaran/gridstar/builder"
	"github.com/katalvlaran/gridstar/grid"
)

func countWalls(t *testing.T, g *grid.Grid) int {
	t.Helper()
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			ok, err := g.Passable(grid.Point{X: x, Y: y})
			require.NoError(t, err)
			if !ok {
				n++
			}
		}
	}
	return n
}

func TestBuildGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		bo   []builder.BuilderOption
		cons []builder.Constructor
		want error
	}{
		{"BadDimensions", 0, 3, nil, nil, grid.ErrBadDimensions},
		{"NilConstructor", 3, 3, nil, []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"RectOutside", 3, 3, nil, []builder.Constructor{builder.Rect(0, 0, 3, 0, 1)}, builder.ErrBadSize},
		{"NegativeProbability", 3, 3, []builder.BuilderOption{builder.WithSeed(1)}, []builder.Constructor{builder.RandomWalls(-0.1)}, builder.ErrInvalidProbability},
		{"RandomWallsNoRNG", 3, 3, nil, []builder.Constructor{builder.RandomWalls(0.5)}, builder.ErrNeedRandSource},
		{"TerrainNoRNG", 3, 3, nil, []builder.Constructor{builder.Terrain()}, builder.ErrNeedRandSource},
		{"MazeEven", 4, 5, []builder.BuilderOption{builder.WithSeed(1)}, []builder.Constructor{builder.Maze()}, builder.ErrBadSize},
		{"MazeTooSmall", 1, 5, []builder.BuilderOption{builder.WithSeed(1)}, []builder.Constructor{builder.Maze()}, builder.ErrBadSize},
		{"MazeNoRNG", 5, 5, nil, []builder.Constructor{builder.Maze()}, builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGrid(tc.w, tc.h, nil, tc.bo, tc.cons...)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.ErrorIs(t, builder.Apply(nil, nil), builder.ErrConstructFailed)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.UniformWeight(10, 5) })
}

func TestBorderAndRect(t *testing.T) {
	g, err := builder.BuildGrid(5, 4, nil, nil,
		builder.Border(),
		builder.Rect(3, 2, 2, 1, 40), // corners in any order
	)
	require.NoError(t, err)
	assert.Equal(t, 2*5+2*2, countWalls(t, g))

	for _, p := range []grid.Point{{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 2}} {
		w, _ := g.Weight(p)
		assert.Equal(t, uint8(40), w, "at %v", p)
	}
	w, _ := g.Weight(grid.Point{X: 1, Y: 1})
	assert.Equal(t, uint8(0), w)
}

func TestRandomWalls_Deterministic(t *testing.T) {
	build := func(seed int64) *grid.Grid {
		g, err := builder.BuildGrid(40, 40, nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomWalls(0.3))
		require.NoError(t, err)
		return g
	}
	a, b := build(9), build(9)
	assert.Equal(t, a.Snapshot(), b.Snapshot())

	walls := countWalls(t, a)
	assert.InDelta(t, 0.3*1600, walls, 160, "density near p")

	none, err := builder.BuildGrid(10, 10, nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomWalls(0))
	require.NoError(t, err)
	assert.Equal(t, 0, countWalls(t, none))

	all, err := builder.BuildGrid(10, 10, nil, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(1)))}, builder.RandomWalls(1))
	require.NoError(t, err)
	assert.Equal(t, 100, countWalls(t, all))
}

func TestTerrain_KeepsWalls(t *testing.T) {
	g, err := builder.BuildGrid(6, 6, nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightFn(builder.ConstantWeight(grid.Impassable))},
		builder.Border(),
		builder.Terrain(),
	)
	require.NoError(t, err)
	assert.Equal(t, 20, countWalls(t, g), "terrain never adds walls")
	w, _ := g.Weight(grid.Point{X: 2, Y: 2})
	assert.Equal(t, grid.Impassable-1, w)

	g, err = builder.BuildGrid(8, 8, nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightFn(builder.UniformWeight(10, 20))},
		builder.Terrain(),
	)
	require.NoError(t, err)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			w, _ := g.Weight(grid.Point{X: x, Y: y})
			assert.GreaterOrEqual(t, w, uint8(10))
			assert.LessOrEqual(t, w, uint8(20))
		}
	}
}

// TestMaze_IsSpanningTree checks that every open cell is reachable and that
// open cells form a tree: open cells = rooms + (rooms - 1) passages.
func TestMaze_IsSpanningTree(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		const w, h = 21, 15
		g, err := builder.BuildGrid(w, h, nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.Maze())
		require.NoError(t, err)

		rooms := ((w - 1) / 2) * ((h - 1) / 2)
		open := w*h - countWalls(t, g)
		assert.Equal(t, 2*rooms-1, open)
		assert.Len(t, g.Regions(), 1)

		res, err := bfs.BFS(g, grid.Point{X: 1, Y: 1})
		require.NoError(t, err)
		assert.Len(t, res.Order, open)
	}
}
