package astar

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/gridstar/grid"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidCoordinate indicates start or goal lies outside the grid.
	ErrInvalidCoordinate = errors.New("astar: endpoint out of bounds")

	// ErrBlockedEndpoint indicates start or goal is an impassable cell.
	ErrBlockedEndpoint = errors.New("astar: endpoint is impassable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit indicates the search gave up after MaxExpansions.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Options configures a single search.
type Options struct {
	// Ctx allows cancellation; checked once per expansion.
	Ctx context.Context

	// Heuristic estimates the remaining cost; nil selects ForTopology.
	Heuristic Heuristic

	// Multiplier scales the heuristic. Must be finite and ≥ 0. Default 1.
	Multiplier float64

	// TerrainCost scales each step by (1 + weight/254) of the entered cell.
	TerrainCost bool

	// NoCornerCutting forbids a diagonal step unless both orthogonal cells
	// it passes between are passable. Only meaningful for Conn8.
	NoCornerCutting bool

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit after
	// that many cells have been expanded.
	MaxExpansions int

	// OnExpand is called when a cell is taken from the frontier.
	OnExpand func(p grid.Point, s Scores)

	// OnRelax is called when a cell receives a better g via from.
	OnRelax func(from, to grid.Point, s Scores)

	// internal error recorded during option parsing
	err error
}

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*Options)

// DefaultOptions returns Options with a background context, the topology
// heuristic, multiplier 1 and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Multiplier: 1,
		OnExpand:   func(grid.Point, Scores) {},
		OnRelax:    func(grid.Point, grid.Point, Scores) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic replaces the topology default heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMultiplier scales the heuristic.
//
//	m == 0: uniform-cost search (Dijkstra)
//	m == 1: admissible A* for the paired metric
//	m > 1:  greedy-leaning, may return a longer path
//	m < 0, NaN or +Inf: invalid option → ErrOptionViolation
func WithMultiplier(m float64) Option {
	return func(o *Options) {
		if m < 0 || math.IsNaN(m) || math.IsInf(m, 1) {
			o.err = fmt.Errorf("%w: multiplier must be finite and non-negative (%g)", ErrOptionViolation, m)
			return
		}
		o.Multiplier = m
	}
}

// WithTerrainCost makes passable weights scale step cost by (1 + weight/254).
// Without it weights only decide passability.
func WithTerrainCost() Option {
	return func(o *Options) {
		o.TerrainCost = true
	}
}

// WithNoCornerCutting forbids diagonal steps that squeeze between two cells
// when either of them is a wall.
func WithNoCornerCutting() Option {
	return func(o *Options) {
		o.NoCornerCutting = true
	}
}

// WithMaxExpansions bounds the number of expanded cells.
//
//	n > 0:  limit
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run when a cell is expanded.
func WithOnExpand(fn func(p grid.Point, s Scores)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback run when a cell's g improves.
func WithOnRelax(fn func(from, to grid.Point, s Scores)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Scores is the read-only view of one cell's search bookkeeping.
type Scores struct {
	G, H, F   float64    // cost from start, heuristic to goal, G + H
	Parent    grid.Point // predecessor on the best known path
	HasParent bool       // false for the start cell
}

// Result holds the outcome of a search:
//   - Path: cells from start to goal inclusive; nil when not found.
//   - Cost: total step cost of Path.
//   - Found: false means no path exists (not an error).
//   - Expanded: number of cells taken from the frontier.
//   - State: the search bookkeeping, for introspection after the fact.
type Result struct {
	Path     []grid.Point
	Cost     float64
	Found    bool
	Expanded int
	State    *SearchState
}

// node is the per-cell bookkeeping of one search.
type node struct {
	g, h   float64
	parent int // -1 for the start cell
}

// SearchState maps cell index to bookkeeping for one search. It is never
// shared between searches.
type SearchState struct {
	snap   *grid.Snapshot
	nodes  map[int]*node
	closed map[int]struct{}
}

func newSearchState(snap *grid.Snapshot) *SearchState {
	return &SearchState{
		snap:   snap,
		nodes:  make(map[int]*node),
		closed: make(map[int]struct{}),
	}
}

// Lookup returns the current scores of p, or false if p was never reached.
func (s *SearchState) Lookup(p grid.Point) (Scores, bool) {
	i, err := s.snap.Index(p)
	if err != nil {
		return Scores{}, false
	}
	n, ok := s.nodes[i]
	if !ok {
		return Scores{}, false
	}
	return s.scores(n), true
}

// Closed reports whether p's cost has been finalized.
func (s *SearchState) Closed(p grid.Point) bool {
	i, err := s.snap.Index(p)
	if err != nil {
		return false
	}
	_, ok := s.closed[i]
	return ok
}

// Visited returns every reached cell in row-major order.
func (s *SearchState) Visited() []grid.Point {
	idx := make([]int, 0, len(s.nodes))
	for i := range s.nodes {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	out := make([]grid.Point, len(idx))
	for k, i := range idx {
		out[k] = s.snap.Point(i)
	}
	return out
}

// Len returns the number of reached cells.
func (s *SearchState) Len() int { return len(s.nodes) }

func (s *SearchState) scores(n *node) Scores {
	sc := Scores{G: n.g, H: n.h, F: n.g + n.h}
	if n.parent >= 0 {
		sc.Parent = s.snap.Point(n.parent)
		sc.HasParent = true
	}
	return sc
}

// path walks predecessor links from goal back to the start and reverses.
func (s *SearchState) path(goal int) []grid.Point {
	var out []grid.Point
	for at := goal; at >= 0; at = s.nodes[at].parent {
		out = append(out, s.snap.Point(at))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
