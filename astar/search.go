package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridstar/frontier"
	"github.com/katalvlaran/gridstar/grid"
)

// Search is one A* run that can be advanced an expansion at a time.
// It is not safe for concurrent use; independent Searches may run in parallel.
type Search struct {
	snap      *grid.Snapshot
	opts      Options
	heuristic Heuristic

	start, goal int
	goalPt      grid.Point

	state *SearchState
	open  *frontier.Frontier[int]

	current  int // last expanded cell, -1 before the first Step
	expanded int
	cost     float64
	done     bool
	found    bool
}

// NewSearch validates the inputs and prepares a search from start to goal
// over a snapshot of g. No cell is expanded until Step or Run is called,
// except when start == goal, which completes immediately.
//
// Validation order:
//  1. Options (ErrOptionViolation).
//  2. g non-nil (ErrNilGrid).
//  3. start and goal inside the grid (ErrInvalidCoordinate).
//  4. start and goal passable (ErrBlockedEndpoint).
func NewSearch(g *grid.Grid, start, goal grid.Point, opts ...Option) (*Search, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	return newSearch(g.Snapshot(), start, goal, o)
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

func newSearch(snap *grid.Snapshot, start, goal grid.Point, o Options) (*Search, error) {
	si, err := snap.Index(start)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %w", ErrInvalidCoordinate, err)
	}
	gi, err := snap.Index(goal)
	if err != nil {
		return nil, fmt.Errorf("%w: goal: %w", ErrInvalidCoordinate, err)
	}
	if !snap.PassableAt(si) {
		return nil, fmt.Errorf("%w: start (%d,%d)", ErrBlockedEndpoint, start.X, start.Y)
	}
	if !snap.PassableAt(gi) {
		return nil, fmt.Errorf("%w: goal (%d,%d)", ErrBlockedEndpoint, goal.X, goal.Y)
	}

	h := o.Heuristic
	if h == nil {
		h = ForTopology(snap.Topology())
	}
	s := &Search{
		snap:      snap,
		opts:      o,
		heuristic: Scaled(h, o.Multiplier),
		start:     si,
		goal:      gi,
		goalPt:    goal,
		state:     newSearchState(snap),
		open:      frontier.New[int](64),
		current:   -1,
	}

	root := &node{g: 0, h: s.heuristic(start, goal), parent: -1}
	s.state.nodes[si] = root
	if si == gi {
		s.done, s.found = true, true
		return s, nil
	}
	s.open.Push(si, root.g+root.h)

	return s, nil
}

// Done reports whether the search has finished, found or not.
func (s *Search) Done() bool { return s.done }

// Current returns the most recently expanded cell.
func (s *Search) Current() (grid.Point, bool) {
	if s.current < 0 {
		return grid.Point{}, false
	}
	return s.snap.Point(s.current), true
}

// State returns the live bookkeeping of this search.
func (s *Search) State() *SearchState { return s.state }

// Step expands one cell. It returns done == true once the goal is reached or
// the frontier is exhausted. Errors (cancellation, expansion limit) also
// finish the search.
func (s *Search) Step() (bool, error) {
	if s.done {
		return true, nil
	}
	// cancellation check (once per loop)
	select {
	case <-s.opts.Ctx.Done():
		s.done = true
		return true, s.opts.Ctx.Err()
	default:
	}
	if s.open.Len() == 0 {
		s.done = true
		return true, nil
	}
	if s.opts.MaxExpansions > 0 && s.expanded >= s.opts.MaxExpansions {
		s.done = true
		return true, fmt.Errorf("%w: %d", ErrExpansionLimit, s.opts.MaxExpansions)
	}

	cur, _, err := s.open.ExtractMin()
	if err != nil {
		return true, err
	}
	s.current = cur
	s.expanded++
	n := s.state.nodes[cur]
	s.opts.OnExpand(s.snap.Point(cur), s.state.scores(n))

	if cur == s.goal {
		s.done, s.found = true, true
		s.cost = n.g
		return true, nil
	}
	s.state.closed[cur] = struct{}{}
	s.relax(cur, n)

	return false, nil
}

// relax examines every open neighbor of cur and records cheaper routes.
func (s *Search) relax(cur int, n *node) {
	for _, nb := range s.snap.Adjacent(cur) {
		if _, closed := s.state.closed[nb]; closed {
			continue
		}
		if !s.snap.PassableAt(nb) {
			continue
		}
		if s.opts.NoCornerCutting && s.cutsCorner(cur, nb) {
			continue
		}
		tentative := n.g + s.stepCost(cur, nb)
		m, seen := s.state.nodes[nb]
		if seen && tentative >= m.g {
			continue
		}
		if !seen {
			m = &node{h: s.heuristic(s.snap.Point(nb), s.goalPt)}
			s.state.nodes[nb] = m
		}
		m.g = tentative
		m.parent = cur
		s.open.Push(nb, m.g+m.h)
		s.opts.OnRelax(s.snap.Point(cur), s.snap.Point(nb), s.state.scores(m))
	}
}

// stepCost is the topology metric, optionally scaled by the entered cell's weight.
func (s *Search) stepCost(from, to int) float64 {
	c := s.snap.StepCost(from, to)
	if s.opts.TerrainCost {
		c *= 1 + float64(s.snap.WeightAt(to))/float64(grid.Impassable-1)
	}
	return c
}

// cutsCorner reports whether a diagonal step from→to passes a wall corner.
func (s *Search) cutsCorner(from, to int) bool {
	a, b := s.snap.Point(from), s.snap.Point(to)
	if a.X == b.X || a.Y == b.Y {
		return false
	}
	side1 := b.Y*s.snap.Width() + a.X
	side2 := a.Y*s.snap.Width() + b.X
	return !s.snap.PassableAt(side1) || !s.snap.PassableAt(side2)
}

// Run steps until the search finishes and returns its Result.
func (s *Search) Run() (*Result, error) {
	for {
		done, err := s.Step()
		if err != nil {
			return nil, err
		}
		if done {
			return s.Result(), nil
		}
	}
}

// Result reports the outcome so far. Path is set only once the goal is found.
func (s *Search) Result() *Result {
	r := &Result{
		Found:    s.found,
		Expanded: s.expanded,
		State:    s.state,
	}
	if s.found {
		r.Path = s.state.path(s.goal)
		r.Cost = s.cost
	}
	return r
}

// PathCost sums the topology step costs along path, without terrain scaling.
// Returns +Inf if two consecutive cells are not adjacent under t.
func PathCost(t grid.Topology, path []grid.Point) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
		if dx > 1 || dy > 1 || dx+dy == 0 || (t == grid.Conn4 && dx+dy != 1) {
			return math.Inf(1)
		}
		total += t.Distance(a, b)
	}
	return total
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
