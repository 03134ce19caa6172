package frontier

import "errors"

// Sentinel errors for frontier operations.
var (
	// ErrEmpty indicates ExtractMin or Peek was called on an empty frontier.
	ErrEmpty = errors.New("frontier: empty")

	// ErrDuplicate indicates Insert was called for a key already queued.
	ErrDuplicate = errors.New("frontier: key already queued")

	// ErrNotFound indicates DecreaseKey was called for a key not queued.
	ErrNotFound = errors.New("frontier: key not queued")

	// ErrPriorityIncrease indicates DecreaseKey was asked to raise a priority.
	ErrPriorityIncrease = errors.New("frontier: new priority is greater than current")

	// errHeapInvariant reports a parent ordered after one of its children.
	errHeapInvariant = errors.New("frontier: heap invariant violated")
)

// entry is one queued key. seq is assigned at Insert and breaks priority ties.
type entry[K comparable] struct {
	key      K
	priority float64
	seq      uint64
}

// Frontier is a binary min-heap of keys ordered by (priority, seq),
// stored 0-indexed: children of i live at 2i+1 and 2i+2.
type Frontier[K comparable] struct {
	items []entry[K]
	pos   map[K]int // key → index into items
	seq   uint64    // next insertion sequence number
}
