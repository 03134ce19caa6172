package grid

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownTopology indicates a Topology value outside Conn4/Conn8.
	ErrUnknownTopology = errors.New("grid: unknown topology")
	// ErrInvalidCoordinate indicates a lookup outside [0,Width)×[0,Height).
	ErrInvalidCoordinate = errors.New("grid: coordinate out of bounds")
)

// Impassable is the weight sentinel for a wall cell.
const Impassable uint8 = 255

// Topology selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Topology int

const (
	// Conn4 is the von Neumann neighborhood: N, E, S, W.
	Conn4 Topology = iota
	// Conn8 is the Moore neighborhood: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Valid reports whether t is a known topology.
func (t Topology) Valid() bool {
	return t == Conn4 || t == Conn8
}

// String returns "conn4" or "conn8".
func (t Topology) String() string {
	switch t {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return "unknown"
	}
}

// Distance returns the metric paired with t: Manhattan for Conn4,
// Euclidean for Conn8. For adjacent cells it is also the step cost.
func (t Topology) Distance(a, b Point) float64 {
	if t == Conn8 {
		return Euclidean(a, b)
	}
	return Manhattan(a, b)
}

// offsets returns the neighbor offsets for t in clockwise order from north.
func (t Topology) offsets() [][2]int {
	if t == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Manhattan returns |dx| + |dy|.
func Manhattan(a, b Point) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// Euclidean returns sqrt(dx² + dy²).
func Euclidean(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// Cell is a read-only view of one grid position. It carries no search state.
type Cell struct {
	Point
	Weight    uint8   // traversal weight; Impassable marks a wall
	Neighbors []Point // adjacency under the grid's current topology
}

// Passable reports whether the cell can be entered.
func (c Cell) Passable() bool {
	return c.Weight != Impassable
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Topology chooses 4- or 8-directional connectivity.
	Topology Topology
	// Fill is the initial weight of every cell.
	Fill uint8
}

// Option configures New.
type Option func(*Options)

// WithTopology sets the neighborhood topology.
func WithTopology(t Topology) Option {
	return func(o *Options) {
		o.Topology = t
	}
}

// WithFill sets the initial weight of every cell.
func WithFill(w uint8) Option {
	return func(o *Options) {
		o.Fill = w
	}
}

// DefaultOptions returns Options with Topology=Conn4 and Fill=0.
func DefaultOptions() Options {
	return Options{
		Topology: Conn4,
		Fill:     0,
	}
}

// Grid treats a 2D weighted grid as a graph. Width and Height are fixed at
// construction; weights and topology may change under the grid's lock.
// weights is row-major; adj[i] holds the row-major indices adjacent to i.
// adj slices are replaced wholesale on SetTopology and never mutated in place,
// so snapshots may share them.
type Grid struct {
	Width, Height int

	mu       sync.RWMutex
	topology Topology
	weights  []uint8
	adj      [][]int
}
