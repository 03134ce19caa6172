// Package astar implements A* search over a grid.Grid.
//
// Overview:
//
//   - FindPath computes a minimum-cost path between two cells, or reports that
//     none exists (Result.Found == false, nil error). NoPathFound is an
//     outcome, not a fault.
//   - Each search runs over a grid.Snapshot, so the caller may keep toggling
//     tiles on the live grid; the search never observes a half-applied change.
//   - Per-search bookkeeping (g, h, f and predecessor) lives in a SearchState
//     that belongs to one search. Cells never carry search data, so repeated
//     and concurrent searches over the same grid do not interfere.
//   - The open set is a frontier.Frontier keyed by cell index: O(log n)
//     insert, extract-min and decrease-key. The closed set is a membership set.
//
// Costs and heuristics:
//
//   - The step cost between adjacent cells is the topology metric: 1 for every
//     Conn4 step; 1 or √2 for Conn8 steps. Terrain weight only gates
//     passability (weight 255 is a wall); it does not scale cost unless
//     WithTerrainCost is given.
//   - The default heuristic is ForTopology(g.Topology()): Manhattan for Conn4,
//     Euclidean for Conn8. WithMultiplier scales it at call time:
//     0 degrades to uniform-cost search, 1 is admissible, >1 trades
//     optimality for fewer expansions.
//
// Determinism:
//
//	Neighbors are expanded in the grid's fixed adjacency order and the
//	frontier breaks ties by insertion order, so identical inputs always yield
//	the identical path.
//
// Endpoints:
//
//	start == goal returns a one-cell path of cost 0. A start or goal cell
//	that is impassable is rejected with ErrBlockedEndpoint before any search.
//
// Cancellation:
//
//	WithContext is checked once per expansion, bounding latency on large grids.
//
// Introspection:
//
//	Search exposes the stepwise form of FindPath: call Step until done and read
//	State().Lookup(p) at any point for the live g/h/f of a cell. The OnExpand
//	and OnRelax hooks report the same data as it changes.
//
// Complexity (N = cells, d = 4 or 8):
//
//   - Time:  O(N·d·log N) worst case.
//   - Space: O(N) for SearchState and the frontier.
package astar
