package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridstar/grid"
)

// ExampleGrid_Regions lists the passable regions of a small map, then opens a
// wall and lists them again. Toggling a tile does not rebuild adjacency; the
// wall is simply skipped while it is impassable.
func ExampleGrid_Regions() {
	const X = grid.Impassable
	g, _ := grid.From2D([][]uint8{
		{0, X, 0},
		{0, X, 0},
		{X, X, 0},
	}, grid.Conn4)

	show := func() {
		regions := g.Regions()
		fmt.Println("regions:", len(regions))
		for i, r := range regions {
			fmt.Printf("region %d:", i)
			for _, idx := range r {
				p := g.Point(idx)
				fmt.Printf(" (%d,%d)", p.X, p.Y)
			}
			fmt.Println()
		}
	}

	show()
	_, _ = g.Toggle(grid.Point{X: 1, Y: 1})
	show()

	// Output:
	// regions: 2
	// region 0: (0,0) (0,1)
	// region 1: (2,0) (2,1) (2,2)
	// regions: 1
	// region 0: (0,0) (0,1) (1,1) (2,1) (2,0) (2,2)
}

// ExampleGrid_Neighbors shows the fixed neighbor order of each topology.
func ExampleGrid_Neighbors() {
	g, _ := grid.New(3, 3)
	nb4, _ := g.Neighbors(grid.Point{X: 1, Y: 1})
	fmt.Println("conn4:", nb4)

	_ = g.SetTopology(grid.Conn8)
	nb8, _ := g.Neighbors(grid.Point{X: 1, Y: 1})
	fmt.Println("conn8:", nb8)

	// Output:
	// conn4: [{1 0} {2 1} {1 2} {0 1}]
	// conn8: [{1 0} {2 0} {2 1} {2 2} {1 2} {0 2} {0 1} {0 0}]
}
