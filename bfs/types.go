package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridstar/grid"
)

var (
	// ErrStartVertexNotFound reports a start cell off the grid.
	ErrStartVertexNotFound = errors.New("bfs: start cell not in grid")

	// ErrGraphNil reports a nil *grid.Grid.
	ErrGraphNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation wraps every rejected Option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option adjusts one field of BFSOptions. A bad value does not panic; BFS
// returns it wrapped in ErrOptionViolation before touching the grid.
type Option func(*BFSOptions)

// BFSOptions is the resolved configuration of one BFS call.
type BFSOptions struct {
	// Ctx is checked once per dequeued cell.
	Ctx context.Context

	// OnEnqueue sees each cell as it joins the queue, with its hop count.
	OnEnqueue func(p grid.Point, depth int)

	// OnDequeue sees each cell as it leaves the queue.
	OnDequeue func(p grid.Point, depth int)

	// OnVisit runs after the cell is appended to Order. A non-nil error
	// ends the walk and is returned wrapped.
	OnVisit func(p grid.Point, depth int) error

	// MaxDepth caps the hop count of enqueued cells. 0 means unbounded.
	MaxDepth int

	// FilterNeighbor vetoes a step between two passable neighbors.
	FilterNeighbor func(curr, neighbor grid.Point) bool

	err error
}

// DefaultOptions is an unbounded, unfiltered walk with no-op hooks under
// context.Background.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(grid.Point, int) {},
		OnDequeue:      func(grid.Point, int) {},
		OnVisit:        func(grid.Point, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ grid.Point) bool { return true },
		err:            nil,
	}
}

// WithContext cancels the walk when ctx is done. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue sets OnEnqueue. nil keeps the no-op.
func WithOnEnqueue(fn func(p grid.Point, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue sets OnDequeue. nil keeps the no-op.
func WithOnDequeue(fn func(p grid.Point, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit sets OnVisit. nil keeps the no-op.
func WithOnVisit(fn func(p grid.Point, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth keeps cells at most d hops from the start; cells exactly d
// hops away are still visited. d == 0 lifts the cap, and d < 0 is rejected
// with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor drops the step curr→neighbor whenever fn returns false,
// on top of the grid's own passability.
func WithFilterNeighbor(fn func(curr, neighbor grid.Point) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult is the tree a walk grew. Order lists cells as they were visited.
// Depth holds the hop count for every reached cell. Parent points each
// reached cell, except the start, one hop back toward the start.
type BFSResult struct {
	Order  []grid.Point
	Depth  map[grid.Point]int
	Parent map[grid.Point]grid.Point
}

// PathTo follows Parent back from dest and returns the cells from the start
// to dest inclusive. It fails if the walk never reached dest.
func (r *BFSResult) PathTo(dest grid.Point) ([]grid.Point, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to (%d,%d)", dest.X, dest.Y)
	}
	path := []grid.Point{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
