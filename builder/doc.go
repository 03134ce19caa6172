// Package builder assembles deterministic grid fixtures from composable
// constructors: borders, rectangles, random walls, terrain noise and mazes.
//
// A fixture is built by BuildGrid, which creates a grid.Grid and applies each
// Constructor in order:
//
//	g, err := builder.BuildGrid(31, 21,
//		[]grid.Option{grid.WithTopology(grid.Conn4)},
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Maze(),
//		builder.Rect(10, 10, 12, 12, 0),
//	)
//
// Determinism: the same size, options, seed and constructor order always
// produce the same grid.
//
// Errors:
//
//   - ErrBadSize             a rectangle outside the grid, or a maze on even sizes.
//   - ErrInvalidProbability  a wall density outside [0,1].
//   - ErrNeedRandSource      a stochastic constructor without WithSeed/WithRand.
//   - ErrConstructFailed     a nil constructor.
//
// Option constructors panic on meaningless values (nil RNG, nil weight
// function); constructors themselves never panic.
package builder
