// Package gridstar is shortest-path search for tile grids: a weighted 2D
// grid with 4- or 8-connected adjacency, an A* pathfinder over it, and the
// indexed priority queue that drives the search.
//
// Packages:
//
//	grid/      Grid, Point, Topology, immutable Snapshots, passable regions
//	frontier/  indexed binary min-heap with decrease-key and FIFO ties
//	astar/     FindPath, step-wise Search, heuristics, concurrent FindPaths
//	dijkstra/  single-source uniform-cost distances over a grid
//	bfs/       breadth-first traversal with hooks and depth limits
//	gridmap/   YAML layout files and a file watcher for hot reload
//
// Model:
//
//   - Every cell carries a weight 0..255; 255 (grid.Impassable) is a wall.
//     Other weights only gate passability unless astar.WithTerrainCost is set.
//   - Adjacency is computed once per topology. Toggling a wall only flips a
//     weight; searches skip impassable neighbors as they go.
//   - A search runs over a Snapshot of the grid and keeps its own g/h/f
//     bookkeeping, so tiles may be edited between searches and independent
//     searches may run at the same time.
//
// Quick example:
//
//	g, _ := grid.New(16, 16, grid.WithTopology(grid.Conn8))
//	_, _ = g.Toggle(grid.Point{X: 5, Y: 5})
//	res, err := astar.FindPath(g, grid.Point{X: 0, Y: 0}, grid.Point{X: 15, Y: 15})
//	if err == nil && res.Found {
//		fmt.Println(res.Cost, res.Path)
//	}
//
//	go get github.com/katalvlaran/gridstar
package gridstar
