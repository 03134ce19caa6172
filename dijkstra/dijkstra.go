// Package dijkstra implements Dijkstra's shortest-path algorithm on grids.
//
// It processes cells in order of increasing distance using a min-heap
// priority queue, relaxing neighbors and updating distances accordingly.
// Being heuristic-free it is the exhaustive reference against which
// heuristic searches can be checked.
//
// Notes on implementation choices:
//
//   - We treat any cell with weight ≥ ImpassableThreshold as a wall.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridstar/grid"
)

// Dijkstra computes shortest distances from Options.Source to every
// reachable cell of g.
//
// Returns:
//
//   - dist: map from cell to minimum distance; unreachable cells are absent.
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//   - err:  error if inputs are invalid.
//
// A source cell that is itself a wall yields dist == {source: 0} and no
// further exploration.
//
// Complexity:
//
//   - Time:  O(N·d·log N)
//   - Space: O(N)
func Dijkstra(g *grid.Grid, opts ...Option) (map[grid.Point]float64, map[grid.Point]grid.Point, error) {
	// 1) Build Options
	cfg := DefaultOptions(grid.Point{})
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate grid is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 3) Validate Source lies in the grid
	snap := g.Snapshot()
	src, err := snap.Index(cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrVertexNotFound, err)
	}

	r := &runner{
		snap:    snap,
		options: cfg,
		dist:    make([]float64, snap.Len()),
		prev:    make([]int, snap.Len()),
		visited: make([]bool, snap.Len()),
		reached: make([]bool, snap.Len()),
		pq:      make(nodePQ, 0, snap.Len()),
	}
	r.init(src)
	r.process()

	// Translate index-based state into coordinate maps.
	dist := make(map[grid.Point]float64)
	var prev map[grid.Point]grid.Point
	if cfg.ReturnPath {
		prev = make(map[grid.Point]grid.Point)
	}
	for i, ok := range r.reached {
		if !ok {
			continue
		}
		p := snap.Point(i)
		dist[p] = r.dist[i]
		if prev != nil && r.prev[i] >= 0 {
			prev[p] = snap.Point(r.prev[i])
		}
	}

	return dist, prev, nil
}

// PathTo rebuilds the source→dest path from a predecessor map returned with
// WithReturnPath. Returns nil if dest is not in dist.
func PathTo(dist map[grid.Point]float64, prev map[grid.Point]grid.Point, dest grid.Point) []grid.Point {
	if _, ok := dist[dest]; !ok {
		return nil
	}
	path := []grid.Point{dest}
	for cur := dest; ; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	snap    *grid.Snapshot // Read-only view of the grid.
	options Options        // Configuration options.
	dist    []float64      // Cell index → current best distance from Source.
	prev    []int          // Cell index → predecessor index, -1 if none.
	visited []bool         // Tracks if a cell's distance is finalized.
	reached []bool         // Tracks if a cell has any finite distance.
	pq      nodePQ         // Min-heap of *nodeItem for lazy priority queue.
}

// init sets up predecessors and pushes Source=0 into the heap.
func (r *runner) init(src int) {
	for i := range r.prev {
		r.prev[i] = -1
	}
	r.dist[src] = 0
	r.reached[src] = true
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
}

// process repeatedly extracts the cell with the minimum distance and relaxes
// its neighbors, until the heap is empty or the minimum exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		// A wall source is reported but never expanded.
		if r.blocked(u) {
			continue
		}
		r.relax(u)
	}
}

func (r *runner) blocked(i int) bool {
	return r.snap.WeightAt(i) >= r.options.ImpassableThreshold
}

// relax attempts to improve distances to every open neighbor of u.
func (r *runner) relax(u int) {
	for _, v := range r.snap.Adjacent(u) {
		if r.visited[v] || r.blocked(v) {
			continue
		}
		newDist := r.dist[u] + r.snap.StepCost(u, v)
		if newDist > r.options.MaxDistance {
			continue
		}
		// strict “<” avoids pushing duplicates on equal distances
		if r.reached[v] && newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.reached[v] = true
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a cell and its current distance from the source.
type nodeItem struct {
	id   int     // cell index
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
