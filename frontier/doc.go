// Package frontier provides an indexed binary min-heap used as the open set
// of best-first searches such as A* and Dijkstra.
//
// What:
//
//   - Frontier[K] orders keys by ascending float64 priority.
//   - A position index (map[K]int) gives O(1) Contains and lets DecreaseKey
//     find a queued key without scanning.
//   - Equal priorities leave in insertion order, so searches built on it are
//     reproducible run to run.
//
// Complexity:
//
//   - Insert, ExtractMin, DecreaseKey, Push: O(log n).
//   - Peek, Contains, Priority, Len: O(1).
//   - Memory: O(n); the backing slice grows on demand, there is no capacity limit.
//
// Errors:
//
//   - ErrEmpty: ExtractMin or Peek on an empty frontier.
//   - ErrDuplicate: Insert of a key that is already queued.
//   - ErrNotFound: DecreaseKey of a key that is not queued.
//   - ErrPriorityIncrease: DecreaseKey with a larger priority than the current one.
//
// Thread safety: a Frontier is owned by a single search and is not safe for
// concurrent use.
package frontier
