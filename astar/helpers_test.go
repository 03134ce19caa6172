package astar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/grid"
)

const X = grid.Impassable

func pt(x, y int) grid.Point { return grid.Point{X: x, Y: y} }

// mustGrid builds a grid from rows or fails the test.
func mustGrid(t testing.TB, t8 grid.Topology, rows [][]uint8) *grid.Grid {
	t.Helper()
	g, err := grid.From2D(rows, t8)
	require.NoError(t, err)
	return g
}

// randomGrid returns a w×h grid with roughly wallPct percent walls.
func randomGrid(t testing.TB, rng *rand.Rand, w, h, wallPct int, topo grid.Topology) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h, grid.WithTopology(topo))
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Intn(100) < wallPct {
				require.NoError(t, g.SetWeight(pt(x, y), X))
			} else {
				require.NoError(t, g.SetWeight(pt(x, y), uint8(rng.Intn(200))))
			}
		}
	}
	return g
}

// randomOpenCell picks a passable cell, or false if there is none.
func randomOpenCell(rng *rand.Rand, g *grid.Grid) (grid.Point, bool) {
	for tries := 0; tries < 1000; tries++ {
		p := pt(rng.Intn(g.Width), rng.Intn(g.Height))
		if ok, _ := g.Passable(p); ok {
			return p, true
		}
	}
	return grid.Point{}, false
}

// requireValidPath checks endpoints, adjacency under the topology and that no
// cell on the path is a wall.
func requireValidPath(t testing.TB, g *grid.Grid, res *astar.Result, start, goal grid.Point) {
	t.Helper()
	require.True(t, res.Found)
	require.NotEmpty(t, res.Path)
	require.Equal(t, start, res.Path[0])
	require.Equal(t, goal, res.Path[len(res.Path)-1])
	for _, p := range res.Path {
		ok, err := g.Passable(p)
		require.NoError(t, err)
		require.True(t, ok, "wall %v on path", p)
	}
	require.InDelta(t, res.Cost, astar.PathCost(g.Topology(), res.Path), 1e-9, "path %v", res.Path)
}
