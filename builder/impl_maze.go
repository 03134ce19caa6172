// SPDX-License-Identifier: MIT
// Package: gridstar/builder
//
// impl_maze.go - perfect maze carved by randomized depth-first search.
//
// Model:
//   • Rooms sit at odd coordinates; everything else starts as a wall.
//   • From room (1,1) the carver walks to a random unvisited room two cells
//     away, opening the wall between them, and backtracks when stuck.
//   • The result is a spanning tree of rooms: under Conn4 exactly one simple
//     path joins any two open cells.
//
// Complexity: O(W×H) time, O(W×H) stack in the worst case.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridstar/grid"
)

const minMazeDim = 3

// mazeSteps are the four room-to-room moves, in N/E/S/W order.
var mazeSteps = [4]grid.Point{{X: 0, Y: -2}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: -2, Y: 0}}

// Maze returns a Constructor that overwrites g with a perfect maze.
// Width and height must be odd and at least 3 (ErrBadSize). Requires an RNG.
func Maze() Constructor {
	return func(g *grid.Grid, cfg builderConfig) error {
		if g.Width < minMazeDim || g.Height < minMazeDim || g.Width%2 == 0 || g.Height%2 == 0 {
			return fmt.Errorf("%s: %d×%d (odd sizes ≥ %d required): %w",
				methodMaze, g.Width, g.Height, minMazeDim, ErrBadSize)
		}
		if err := requireRNG(methodMaze, cfg); err != nil {
			return err
		}

		t := make([][]uint8, g.Height)
		for y := range t {
			t[y] = make([]uint8, g.Width)
			for x := range t[y] {
				t[y][x] = grid.Impassable
			}
		}

		start := grid.Point{X: 1, Y: 1}
		t[start.Y][start.X] = 0
		stack := []grid.Point{start}
		next := make([]grid.Point, 0, len(mazeSteps))
		for len(stack) > 0 {
			cur := stack[len(stack)-1]

			next = next[:0]
			for _, d := range mazeSteps {
				n := grid.Point{X: cur.X + d.X, Y: cur.Y + d.Y}
				if n.X > 0 && n.X < g.Width-1 && n.Y > 0 && n.Y < g.Height-1 && t[n.Y][n.X] == grid.Impassable {
					next = append(next, n)
				}
			}
			if len(next) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}

			n := next[cfg.rng.Intn(len(next))]
			t[(cur.Y+n.Y)/2][(cur.X+n.X)/2] = 0
			t[n.Y][n.X] = 0
			stack = append(stack, n)
		}

		return commit(methodMaze, g, t)
	}
}
