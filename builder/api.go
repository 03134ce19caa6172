// SPDX-License-Identifier: MIT
// Package: gridstar/builder
//
// api.go - public entry point and constructor declarations.
//
// Design contract:
//   • One orchestrator: BuildGrid(w, h, gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   • Constructors are implemented in impl_*.go.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical grids.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridstar/grid"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate their parameters first and leave g
// untouched when they return an error.
type Constructor func(g *grid.Grid, cfg builderConfig) error

// BuildGrid creates a width×height grid with gopts, resolves the builder
// configuration from bopts and applies every constructor in order.
// Constructor errors are wrapped as "BuildGrid: %w".
func BuildGrid(width, height int, gopts []grid.Option, bopts []BuilderOption, cons ...Constructor) (*grid.Grid, error) {
	g, err := grid.New(width, height, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGrid: %w", err)
	}
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}
	return g, nil
}

// Apply runs constructors against an existing grid.
func Apply(g *grid.Grid, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildGrid: nil grid: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGrid: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGrid: %w", err)
		}
	}
	return nil
}

// Border walls off the outermost ring of cells.
//func Border() Constructor

// Rect sets every cell of the inclusive rectangle [x0,x1]×[y0,y1] to w.
//func Rect(x0, y0, x1, y1 int, w uint8) Constructor

// RandomWalls turns each passable cell into a wall with probability p.
//func RandomWalls(p float64) Constructor

// Terrain gives every passable cell a weight from cfg.weightFn.
//func Terrain() Constructor

// Maze carves a perfect maze with randomized depth-first search.
//func Maze() Constructor
