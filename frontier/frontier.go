package frontier

import "fmt"

// New returns an empty Frontier. capacityHint pre-sizes the backing store;
// it is not a limit.
func New[K comparable](capacityHint int) *Frontier[K] {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Frontier[K]{
		items: make([]entry[K], 0, capacityHint),
		pos:   make(map[K]int, capacityHint),
	}
}

// Len returns the number of queued keys.
func (f *Frontier[K]) Len() int { return len(f.items) }

// Contains reports whether k is queued.
func (f *Frontier[K]) Contains(k K) bool {
	_, ok := f.pos[k]
	return ok
}

// Priority returns the current priority of k, if queued.
func (f *Frontier[K]) Priority(k K) (float64, bool) {
	i, ok := f.pos[k]
	if !ok {
		return 0, false
	}
	return f.items[i].priority, true
}

// Insert queues k with the given priority.
// Returns ErrDuplicate if k is already queued.
func (f *Frontier[K]) Insert(k K, priority float64) error {
	if _, ok := f.pos[k]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicate, k)
	}
	f.items = append(f.items, entry[K]{key: k, priority: priority, seq: f.seq})
	f.seq++
	i := len(f.items) - 1
	f.pos[k] = i
	f.siftUp(i)

	return nil
}

// Peek returns the minimum key and its priority without removing it.
func (f *Frontier[K]) Peek() (K, float64, error) {
	if len(f.items) == 0 {
		var zero K
		return zero, 0, ErrEmpty
	}
	return f.items[0].key, f.items[0].priority, nil
}

// ExtractMin removes and returns the key with the smallest priority.
// Among equal priorities the earliest inserted key wins.
// Returns ErrEmpty when nothing is queued.
func (f *Frontier[K]) ExtractMin() (K, float64, error) {
	if len(f.items) == 0 {
		var zero K
		return zero, 0, ErrEmpty
	}
	top := f.items[0]
	last := len(f.items) - 1
	f.swap(0, last)
	f.items = f.items[:last]
	delete(f.pos, top.key)
	if last > 0 {
		f.siftDown(0)
	}

	return top.key, top.priority, nil
}

// DecreaseKey lowers the priority of a queued key and restores heap order.
// An equal priority is a no-op. The key keeps its original insertion
// sequence for tie-breaking.
func (f *Frontier[K]) DecreaseKey(k K, priority float64) error {
	i, ok := f.pos[k]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, k)
	}
	cur := f.items[i].priority
	if priority > cur {
		return fmt.Errorf("%w: %v (%g > %g)", ErrPriorityIncrease, k, priority, cur)
	}
	if priority == cur {
		return nil
	}
	f.items[i].priority = priority
	f.siftUp(i)

	return nil
}

// Push inserts k, or lowers its priority if k is already queued with a
// higher one. It never raises a priority. Reports whether k was newly inserted.
func (f *Frontier[K]) Push(k K, priority float64) bool {
	if i, ok := f.pos[k]; ok {
		if priority < f.items[i].priority {
			f.items[i].priority = priority
			f.siftUp(i)
		}
		return false
	}
	// cannot fail: k is not queued
	_ = f.Insert(k, priority)
	return true
}

// Reset empties the frontier, keeping allocated capacity.
func (f *Frontier[K]) Reset() {
	f.items = f.items[:0]
	clear(f.pos)
	f.seq = 0
}

// less orders by priority, then by insertion sequence.
func (f *Frontier[K]) less(i, j int) bool {
	a, b := &f.items[i], &f.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

func (f *Frontier[K]) swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.pos[f.items[i].key] = i
	f.pos[f.items[j].key] = j
}

func (f *Frontier[K]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !f.less(i, parent) {
			return
		}
		f.swap(i, parent)
		i = parent
	}
}

// siftDown moves item i down until both existing children order after it.
// A node with only a left child is a valid shape at the last level; the
// right child is compared only when it exists.
func (f *Frontier[K]) siftDown(i int) {
	n := len(f.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && f.less(right, left) {
			smallest = right
		}
		if !f.less(smallest, i) {
			return
		}
		f.swap(i, smallest)
		i = smallest
	}
}

// verify checks the heap ordering and the position index.
func (f *Frontier[K]) verify() error {
	if len(f.pos) != len(f.items) {
		return fmt.Errorf("%w: index has %d keys, heap has %d", errHeapInvariant, len(f.pos), len(f.items))
	}
	for i := range f.items {
		if f.pos[f.items[i].key] != i {
			return fmt.Errorf("%w: stale index for slot %d", errHeapInvariant, i)
		}
		for _, c := range [2]int{2*i + 1, 2*i + 2} {
			if c < len(f.items) && f.less(c, i) {
				return fmt.Errorf("%w: child %d orders before parent %d", errHeapInvariant, c, i)
			}
		}
	}
	return nil
}
