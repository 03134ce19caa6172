package grid

import "fmt"

// Snapshot is an immutable view of a Grid taken at one instant.
// Reads take no locks; it is safe to share between goroutines.
type Snapshot struct {
	width, height int
	topology      Topology
	weights       []uint8
	adj           [][]int
}

// Snapshot copies the current weights and captures the current adjacency.
// Later SetWeight, Toggle or SetTopology calls on g do not affect it.
// Complexity: O(W×H).
func (g *Grid) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	weights := make([]uint8, len(g.weights))
	copy(weights, g.weights)
	return &Snapshot{
		width:    g.Width,
		height:   g.Height,
		topology: g.topology,
		weights:  weights,
		adj:      g.adj,
	}
}

// Width returns the number of columns.
func (s *Snapshot) Width() int { return s.width }

// Height returns the number of rows.
func (s *Snapshot) Height() int { return s.height }

// Topology returns the topology the adjacency was built for.
func (s *Snapshot) Topology() Topology { return s.topology }

// Len returns the number of cells.
func (s *Snapshot) Len() int { return len(s.weights) }

// InBounds reports whether (x,y) lies within the snapshot.
func (s *Snapshot) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Index maps p to its row-major index, or ErrInvalidCoordinate.
func (s *Snapshot) Index(p Point) (int, error) {
	if !s.InBounds(p.X, p.Y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrInvalidCoordinate, p.X, p.Y, s.width, s.height)
	}
	return p.Y*s.width + p.X, nil
}

// Point converts a row-major index to its coordinate.
func (s *Snapshot) Point(i int) Point {
	return Point{X: i % s.width, Y: i / s.width}
}

// WeightAt returns the weight of cell i.
func (s *Snapshot) WeightAt(i int) uint8 { return s.weights[i] }

// PassableAt reports whether cell i is not a wall.
func (s *Snapshot) PassableAt(i int) bool { return s.weights[i] != Impassable }

// Adjacent returns the neighbor indices of cell i. The slice must not be modified.
func (s *Snapshot) Adjacent(i int) []int { return s.adj[i] }

// StepCost returns the cost of moving between adjacent cells from and to:
// the topology metric, independent of terrain weight.
func (s *Snapshot) StepCost(from, to int) float64 {
	return s.topology.Distance(s.Point(from), s.Point(to))
}
