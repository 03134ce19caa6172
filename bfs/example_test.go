package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridstar/bfs"
	"github.com/katalvlaran/gridstar/grid"
)

// ExampleBFS_GridTraversal demonstrates BFS layering on an open 3×3 grid.
// The start is (0,0); each following layer is one Manhattan step further.
func ExampleBFS_gridTraversal() {
	g, _ := grid.New(3, 3)

	res, err := bfs.BFS(g, grid.Point{X: 0, Y: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [{0 0} {1 0} {0 1} {2 0} {1 1} {0 2} {2 1} {1 2} {2 2}]
}
