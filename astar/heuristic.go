package astar

import (
	"math"

	"github.com/katalvlaran/gridstar/grid"
)

// Heuristic estimates the remaining cost from a to b.
type Heuristic func(a, b grid.Point) float64

// Manhattan is |dx| + |dy|; admissible for Conn4.
func Manhattan(a, b grid.Point) float64 { return grid.Manhattan(a, b) }

// Euclidean is sqrt(dx² + dy²); admissible for Conn8.
func Euclidean(a, b grid.Point) float64 { return grid.Euclidean(a, b) }

// Chebyshev is max(|dx|, |dy|); admissible for both topologies.
func Chebyshev(a, b grid.Point) float64 {
	return math.Max(math.Abs(float64(a.X-b.X)), math.Abs(float64(a.Y-b.Y)))
}

// Octile is the exact Conn8 distance on an open grid:
// (max - min) + √2·min of |dx|, |dy|.
func Octile(a, b grid.Point) float64 {
	dx, dy := math.Abs(float64(a.X-b.X)), math.Abs(float64(a.Y-b.Y))
	lo, hi := math.Min(dx, dy), math.Max(dx, dy)
	return hi - lo + math.Sqrt2*lo
}

// Zero always returns 0; A* with it is uniform-cost search.
func Zero(_, _ grid.Point) float64 { return 0 }

// ForTopology returns the heuristic paired with t: Manhattan for Conn4,
// Euclidean for Conn8.
func ForTopology(t grid.Topology) Heuristic {
	if t == grid.Conn8 {
		return Euclidean
	}
	return Manhattan
}

// Scaled returns h multiplied by m.
func Scaled(h Heuristic, m float64) Heuristic {
	if m == 1 {
		return h
	}
	return func(a, b grid.Point) float64 { return m * h(a, b) }
}
