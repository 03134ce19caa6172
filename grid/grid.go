package grid

import (
	"fmt"
)

// New constructs a Width×Height grid with every cell set to the Fill weight
// and adjacency precomputed for the chosen topology.
// Returns ErrBadDimensions or ErrUnknownTopology on invalid input.
// Algorithmic complexity: O(W×H×d) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadDimensions, width, height)
	}
	if !o.Topology.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTopology, o.Topology)
	}
	weights := make([]uint8, width*height)
	if o.Fill != 0 {
		for i := range weights {
			weights[i] = o.Fill
		}
	}
	g := &Grid{
		Width:    width,
		Height:   height,
		topology: o.Topology,
		weights:  weights,
	}
	g.adj = buildAdjacency(width, height, o.Topology)

	return g, nil
}

// From2D constructs a Grid from a non-empty, rectangular 2D slice of weights
// indexed [y][x]. The input is copied.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D(values [][]uint8, t Topology) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(w, h, WithTopology(t))
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		copy(g.weights[y*w:(y+1)*w], values[y])
	}

	return g, nil
}

// buildAdjacency computes the row-major neighbor index lists for every cell,
// clipped at the grid boundary.
func buildAdjacency(width, height int, t Topology) [][]int {
	offsets := t.offsets()
	adj := make([][]int, width*height)
	// one backing array for all lists keeps the adjacency compact
	backing := make([]int, 0, width*height*len(offsets))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			start := len(backing)
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				backing = append(backing, ny*width+nx)
			}
			adj[y*width+x] = backing[start:len(backing):len(backing)]
		}
	}

	return adj
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps p to its row-major index y*Width + x.
// Returns ErrInvalidCoordinate if p is outside the grid.
func (g *Grid) Index(p Point) (int, error) {
	if !g.InBounds(p.X, p.Y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrInvalidCoordinate, p.X, p.Y, g.Width, g.Height)
	}
	return p.Y*g.Width + p.X, nil
}

// Point converts a row-major index back to its coordinate.
// Complexity: O(1).
func (g *Grid) Point(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// Topology returns the current neighborhood topology.
func (g *Grid) Topology() Topology {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.topology
}

// SetTopology switches the neighborhood topology and recomputes every
// adjacency list. Snapshots taken earlier keep their old adjacency.
func (g *Grid) SetTopology(t Topology) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTopology, t)
	}
	adj := buildAdjacency(g.Width, g.Height, t)
	g.mu.Lock()
	g.topology = t
	g.adj = adj
	g.mu.Unlock()

	return nil
}

// Weight returns the traversal weight at p.
func (g *Grid) Weight(p Point) (uint8, error) {
	i, err := g.Index(p)
	if err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.weights[i], nil
}

// SetWeight sets the traversal weight at p. Adjacency is not touched.
func (g *Grid) SetWeight(p Point, w uint8) error {
	i, err := g.Index(p)
	if err != nil {
		return err
	}
	g.mu.Lock()
	g.weights[i] = w
	g.mu.Unlock()

	return nil
}

// SetWeights replaces every weight in one step; values is indexed [y][x]
// and must match the grid dimensions. A concurrent Snapshot sees either the
// old weights or the new ones, never a mix.
func (g *Grid) SetWeights(values [][]uint8) error {
	if len(values) != g.Height {
		return fmt.Errorf("%w: %d rows for height %d", ErrBadDimensions, len(values), g.Height)
	}
	for y, row := range values {
		if len(row) != g.Width {
			return fmt.Errorf("%w: row %d has %d cells for width %d", ErrNonRectangular, y, len(row), g.Width)
		}
	}
	g.mu.Lock()
	for y, row := range values {
		copy(g.weights[y*g.Width:(y+1)*g.Width], row)
	}
	g.mu.Unlock()

	return nil
}

// Toggle flips the cell at p between passable (0) and Impassable and
// returns the new weight. A passable cell of any weight becomes a wall.
func (g *Grid) Toggle(p Point) (uint8, error) {
	i, err := g.Index(p)
	if err != nil {
		return 0, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.weights[i] == Impassable {
		g.weights[i] = 0
	} else {
		g.weights[i] = Impassable
	}
	return g.weights[i], nil
}

// Passable reports whether the cell at p is not a wall.
func (g *Grid) Passable(p Point) (bool, error) {
	w, err := g.Weight(p)
	if err != nil {
		return false, err
	}
	return w != Impassable, nil
}

// Neighbors returns the coordinates adjacent to p under the current topology.
func (g *Grid) Neighbors(p Point) ([]Point, error) {
	i, err := g.Index(p)
	if err != nil {
		return nil, err
	}
	g.mu.RLock()
	adj := g.adj[i]
	g.mu.RUnlock()

	out := make([]Point, len(adj))
	for k, j := range adj {
		out[k] = g.Point(j)
	}
	return out, nil
}

// Cell returns a read-only view of the cell at p.
func (g *Grid) Cell(p Point) (Cell, error) {
	nbs, err := g.Neighbors(p)
	if err != nil {
		return Cell{}, err
	}
	w, err := g.Weight(p)
	if err != nil {
		return Cell{}, err
	}
	return Cell{Point: p, Weight: w, Neighbors: nbs}, nil
}
