// SPDX-License-Identifier: MIT
// Package: gridstar/builder
//
// impl_walls.go - Border, Rect, RandomWalls and Terrain constructors.
//
// Determinism: cells are visited in row-major order, so a fixed seed draws
// the same sequence of random numbers for the same grid.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridstar/grid"
)

// Border returns a Constructor that walls off the outermost ring.
// Complexity: O(W×H) for the table copy.
func Border() Constructor {
	return func(g *grid.Grid, _ builderConfig) error {
		t := table(g)
		last := g.Height - 1
		for x := 0; x < g.Width; x++ {
			t[0][x], t[last][x] = grid.Impassable, grid.Impassable
		}
		for y := 0; y < g.Height; y++ {
			t[y][0], t[y][g.Width-1] = grid.Impassable, grid.Impassable
		}
		return commit(methodBorder, g, t)
	}
}

// Rect returns a Constructor that sets the inclusive rectangle
// [x0,x1]×[y0,y1] to weight w. Corners may be given in any order.
// Returns ErrBadSize if any corner lies outside the grid.
func Rect(x0, y0, x1, y1 int, w uint8) Constructor {
	return func(g *grid.Grid, _ builderConfig) error {
		if !g.InBounds(x0, y0) || !g.InBounds(x1, y1) {
			return fmt.Errorf("%s: (%d,%d)-(%d,%d) outside %d×%d: %w",
				methodRect, x0, y0, x1, y1, g.Width, g.Height, ErrBadSize)
		}
		lx, hx := min(x0, x1), max(x0, x1)
		ly, hy := min(y0, y1), max(y0, y1)
		t := table(g)
		for y := ly; y <= hy; y++ {
			for x := lx; x <= hx; x++ {
				t[y][x] = w
			}
		}
		return commit(methodRect, g, t)
	}
}

// RandomWalls returns a Constructor that turns each passable cell into a wall
// with probability p. Requires an RNG.
func RandomWalls(p float64) Constructor {
	return func(g *grid.Grid, cfg builderConfig) error {
		if err := validateProbability(methodRandomWalls, p); err != nil {
			return err
		}
		if err := requireRNG(methodRandomWalls, cfg); err != nil {
			return err
		}
		t := table(g)
		for y := range t {
			for x := range t[y] {
				if t[y][x] != grid.Impassable && cfg.rng.Float64() < p {
					t[y][x] = grid.Impassable
				}
			}
		}
		return commit(methodRandomWalls, g, t)
	}
}

// Terrain returns a Constructor that assigns cfg.weightFn to every passable
// cell. Walls stay walls and no new walls are created. Requires an RNG.
func Terrain() Constructor {
	return func(g *grid.Grid, cfg builderConfig) error {
		if err := requireRNG(methodTerrain, cfg); err != nil {
			return err
		}
		t := table(g)
		for y := range t {
			for x := range t[y] {
				if t[y][x] == grid.Impassable {
					continue
				}
				w := cfg.weightFn(cfg.rng)
				if w == grid.Impassable {
					w = grid.Impassable - 1
				}
				t[y][x] = w
			}
		}
		return commit(methodTerrain, g, t)
	}
}
