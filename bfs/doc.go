// Package bfs provides breadth-first search over a grid.Grid, returning hop
// distances, parent links and visit order.
//
// What
//
//   - Explore passable cells in non-decreasing hop count from a start cell,
//     following the grid's Conn4 or Conn8 adjacency.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from cell → hops from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual steps via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Reachability and fewest-step routes on unit-cost grids.
//   - An exhaustive, heuristic-free reference for heuristic searches.
//
// Determinism
//
//	Neighbors are enqueued in the grid's fixed adjacency order, so the visit
//	sequence is fully reproducible.
//
// Complexity (N = cells, d = 4 or 8)
//
//   - Time:   O(N·d)
//   - Memory: O(N)
package bfs
