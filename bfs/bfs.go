package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridstar/grid"
)

// queueItem pairs a cell index with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	snap    *grid.Snapshot
	opts    BFSOptions
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
// A wall start cell is visited but never expanded.
func BFS(g *grid.Grid, start grid.Point, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	snap := g.Snapshot()
	si, err := snap.Index(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, err)
	}

	n := snap.Len()
	w := &walker{
		snap:    snap,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]grid.Point, 0, n),
			Depth:  make(map[grid.Point]int, n),
			Parent: make(map[grid.Point]grid.Point, n),
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(si, 0, -1)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	p := w.snap.Point(id)
	w.visited[id] = true
	w.res.Depth[p] = d
	if parent >= 0 {
		w.res.Parent[p] = w.snap.Point(parent)
	}
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(w.snap.Point(item.id), item.depth)
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	p := w.snap.Point(item.id)
	w.res.Order = append(w.res.Order, p)
	if err := w.opts.OnVisit(p, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at (%d,%d): %w", p.X, p.Y, err)
	}
	return nil
}

// enqueueNeighbors applies passability, filtering and MaxDepth, and enqueues
// each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	if !w.snap.PassableAt(item.id) {
		return
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	cur := w.snap.Point(item.id)
	for _, nb := range w.snap.Adjacent(item.id) {
		if w.visited[nb] || !w.snap.PassableAt(nb) {
			continue
		}
		if !w.opts.FilterNeighbor(cur, w.snap.Point(nb)) {
			continue
		}
		w.enqueue(nb, nextDepth, item.id)
	}
}
