// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted grids.
//
// Dijkstra computes the minimum-cost path from a single source cell to all
// other reachable cells. Step cost between adjacent cells is the grid
// topology metric (1 for orthogonal steps, √2 for diagonal Conn8 steps).
//
// Options:
//
//	– Source:                 starting cell (must lie inside the grid).
//	– ReturnPath:             if true, return the predecessor map for path reconstruction.
//	– MaxDistance:            optional cap on distances to explore; cells beyond it are skipped.
//	– ImpassableThreshold:    cells with weight ≥ this threshold are walls.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided grid pointer is nil.
//	– ErrVertexNotFound    if the source cell lies outside the grid.
//	– ErrBadMaxDistance    if MaxDistance < 0.
//	– ErrBadThreshold      if ImpassableThreshold == 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridstar/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *grid.Grid was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: grid is nil")

	// ErrVertexNotFound indicates that the source cell is outside the grid.
	ErrVertexNotFound = errors.New("dijkstra: source cell not in grid")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadThreshold indicates that ImpassableThreshold was set to zero,
	// which would treat every cell as a wall.
	ErrBadThreshold = errors.New("dijkstra: ImpassableThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source              – starting cell.
// ReturnPath          – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance         – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// ImpassableThreshold – treat cells with weight ≥ this threshold as walls.
//
//	Must be > 0. Default is grid.Impassable.
type Options struct {
	Source              grid.Point // The source cell
	ReturnPath          bool       // Whether to return the predecessor map
	MaxDistance         float64    // Maximum distance to explore
	ImpassableThreshold uint8      // Weight at and above which cells are walls
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given cell.
func Source(p grid.Point) Option {
	return func(o *Options) {
		o.Source = p
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithImpassableThreshold defines the weight at and above which cells are
// treated as walls. Zero panics with ErrBadThreshold.
func WithImpassableThreshold(w uint8) Option {
	return func(o *Options) {
		if w == 0 {
			panic(ErrBadThreshold.Error())
		}
		o.ImpassableThreshold = w
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source cell.
//
// Defaults:
//   - Source:              <as passed> (validated in Dijkstra).
//   - ReturnPath:          false.
//   - MaxDistance:         +Inf.
//   - ImpassableThreshold: grid.Impassable.
func DefaultOptions(source grid.Point) Options {
	return Options{
		Source:              source,
		ReturnPath:          false,
		MaxDistance:         math.Inf(1),
		ImpassableThreshold: grid.Impassable,
	}
}
