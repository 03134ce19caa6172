// Package grid models a rectangular 2D grid of weighted cells as a graph
// for path search.
//
// What:
//
//   - Grid owns Width×Height cells, each with a traversal weight in [0,255].
//     Weight 255 (Impassable) marks a wall; any other weight is passable.
//   - Adjacency lists are precomputed once per topology: Conn4 (von Neumann,
//     N/E/S/W) or Conn8 (Moore, adds diagonals). They are clipped at the
//     grid boundary and never depend on weights.
//   - Snapshot freezes the weights so a search can read them without locks
//     while the owner keeps toggling tiles on the live Grid.
//   - Regions/Connected report connected components of passable cells.
//
// Why:
//
//   - Game maps: tile toggling between searches without rebuilding adjacency.
//   - Repeated or concurrent searches over one immutable view of the map.
//
// Complexity:
//
//   - New, From2D, SetTopology: O(W×H×d) time and memory (d = 4 or 8).
//   - SetWeight, Toggle, Weight, Index: O(1).
//   - Snapshot: O(W×H) copy of the weights; adjacency is shared.
//   - Regions: O(W×H×d).
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive.
//   - ErrEmptyGrid: input rows are empty.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownTopology: topology is neither Conn4 nor Conn8.
//   - ErrInvalidCoordinate: a coordinate or index lies outside the grid.
package grid
