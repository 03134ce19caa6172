package bfs_test

import (
	"testing"

	"github.com/katalvlaran/gridstar/bfs"
	"github.com/katalvlaran/gridstar/grid"
)

// BenchmarkBFS_OpenGrid measures BFS over an open 256×256 grid.
func BenchmarkBFS_OpenGrid(b *testing.B) {
	const n = 256
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, grid.Point{})
	}
}
