package grid

// Regions finds all contiguous regions of passable cells (weight != Impassable)
// under the grid's topology. Each region is a slice of row-major indices in
// BFS discovery order; regions are ordered by their lowest index.
//
// To convert an index back to (x,y), use Point(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]int {
	return g.Snapshot().Regions()
}

// Regions is the lock-free form of Grid.Regions.
func (s *Snapshot) Regions() [][]int {
	seen := make([]bool, s.Len())
	var regions [][]int

	for i0 := range s.weights {
		if seen[i0] || !s.PassableAt(i0) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range s.adj[u] {
				if seen[v] || !s.PassableAt(v) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

// Connected reports whether a and b are passable and lie in the same region.
// Returns ErrInvalidCoordinate if either point is outside the grid.
// Complexity: O(W·H·d) worst case; stops as soon as b is reached.
func (g *Grid) Connected(a, b Point) (bool, error) {
	s := g.Snapshot()
	ia, err := s.Index(a)
	if err != nil {
		return false, err
	}
	ib, err := s.Index(b)
	if err != nil {
		return false, err
	}
	if !s.PassableAt(ia) || !s.PassableAt(ib) {
		return false, nil
	}
	seen := make([]bool, s.Len())
	queue := []int{ia}
	seen[ia] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == ib {
			return true, nil
		}
		for _, v := range s.adj[u] {
			if !seen[v] && s.PassableAt(v) {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return false, nil
}
