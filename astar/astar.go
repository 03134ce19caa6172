package astar

import (
	"github.com/katalvlaran/gridstar/grid"
)

// FindPath computes a minimum-cost path from start to goal over a snapshot
// of g. It accepts functional options to customize behavior (heuristic,
// multiplier, cancellation, hooks).
//
// Returns:
//
//   - *Result with Found == true, the path and its cost, or
//   - *Result with Found == false and nil error when no path exists, or
//   - an error for invalid input (ErrOptionViolation, ErrNilGrid,
//     ErrInvalidCoordinate, ErrBlockedEndpoint), cancellation
//     (ctx.Err()) or ErrExpansionLimit.
//
// Algorithm:
//  1. Seed the frontier with start: g = 0, f = h(start, goal).
//  2. Extract the cell with minimum f; stop if it is goal.
//  3. Close it and relax each passable, unclosed neighbor: on a strictly
//     smaller tentative g, record g, h and predecessor, then insert or
//     decrease-key in the frontier.
//  4. An exhausted frontier means no path.
//
// Complexity:
//
//   - Time:  O(N·d·log N)
//   - Space: O(N)
func FindPath(g *grid.Grid, start, goal grid.Point, opts ...Option) (*Result, error) {
	s, err := NewSearch(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	return s.Run()
}
