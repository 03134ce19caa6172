// Package dijkstra_test provides examples demonstrating grid Dijkstra.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridstar/dijkstra"
	"github.com/katalvlaran/gridstar/grid"
)

// ExampleDijkstra walks around a wall on a 3×3 grid.
//
//	S # .
//	. # .
//	. . .
func ExampleDijkstra() {
	g, _ := grid.From2D([][]uint8{
		{0, grid.Impassable, 0},
		{0, grid.Impassable, 0},
		{0, 0, 0},
	}, grid.Conn4)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.Point{X: 0, Y: 0}), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	goal := grid.Point{X: 2, Y: 0}
	fmt.Println("distance:", dist[goal])
	fmt.Println("path:", dijkstra.PathTo(dist, prev, goal))
	// Output:
	// distance: 6
	// path: [{0 0} {0 1} {0 2} {1 2} {2 2} {2 1} {2 0}]
}
