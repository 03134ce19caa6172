package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/grid"
)

// ExampleFindPath routes around a wall on a 4-connected grid.
func ExampleFindPath() {
	g, _ := grid.From2D([][]uint8{
		{0, grid.Impassable, 0},
		{0, grid.Impassable, 0},
		{0, 0, 0},
	}, grid.Conn4)

	res, err := astar.FindPath(g, grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", res.Found)
	fmt.Println("cost:", res.Cost)
	fmt.Println("path:", res.Path)
	// Output:
	// found: true
	// cost: 6
	// path: [{0 0} {0 1} {0 2} {1 2} {2 2} {2 1} {2 0}]
}

// ExampleFindPath_noPath shows that an unreachable goal is a result, not an error.
func ExampleFindPath_noPath() {
	g, _ := grid.From2D([][]uint8{
		{0, grid.Impassable, 0},
		{0, grid.Impassable, 0},
	}, grid.Conn8)

	res, err := astar.FindPath(g, grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 1})
	fmt.Println(res.Found, res.Path, err)
	// Output:
	// false [] <nil>
}

// ExampleSearch drives a search one expansion at a time.
func ExampleSearch() {
	g, _ := grid.New(3, 1)
	s, _ := astar.NewSearch(g, grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 0})
	for !s.Done() {
		if _, err := s.Step(); err != nil {
			fmt.Println("error:", err)
			return
		}
		p, _ := s.Current()
		sc, _ := s.State().Lookup(p)
		fmt.Printf("%v g=%.0f h=%.0f\n", p, sc.G, sc.H)
	}
	// Output:
	// {0 0} g=0 h=2
	// {1 0} g=1 h=1
	// {2 0} g=2 h=0
}
