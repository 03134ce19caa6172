package astar_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/builder"
	"github.com/katalvlaran/gridstar/grid"
)

func benchGrid(b *testing.B, topo grid.Topology) *grid.Grid {
	rng := rand.New(rand.NewSource(1))
	g := randomGrid(b, rng, 256, 256, 20, topo)
	_ = g.SetWeight(pt(0, 0), 0)
	_ = g.SetWeight(pt(255, 255), 0)
	return g
}

func BenchmarkFindPath_Conn4(b *testing.B) {
	g := benchGrid(b, grid.Conn4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(g, pt(0, 0), pt(255, 255))
	}
}

func BenchmarkFindPath_Conn8(b *testing.B) {
	g := benchGrid(b, grid.Conn8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(g, pt(0, 0), pt(255, 255))
	}
}

func BenchmarkFindPath_Greedy(b *testing.B) {
	g := benchGrid(b, grid.Conn8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(g, pt(0, 0), pt(255, 255), astar.WithMultiplier(2))
	}
}

func BenchmarkFindPaths(b *testing.B) {
	g := benchGrid(b, grid.Conn8)
	reqs := make([]astar.Request, 16)
	for i := range reqs {
		reqs[i] = astar.Request{Start: pt(0, 0), Goal: pt(255, 255)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPaths(context.Background(), g, reqs)
	}
}

func BenchmarkFindPath_Maze(b *testing.B) {
	g, err := builder.BuildGrid(255, 255, nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.Maze())
	if err != nil {
		b.Fatalf("setup BuildGrid failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(g, pt(1, 1), pt(253, 253))
	}
}
