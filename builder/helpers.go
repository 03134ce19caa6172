// SPDX-License-Identifier: MIT
// Package: gridstar/builder
//
// helpers.go - shared validation and weight-table plumbing.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridstar/grid"
)

// Method tags used as error context.
const (
	methodBorder      = "Border"
	methodRect        = "Rect"
	methodRandomWalls = "RandomWalls"
	methodTerrain     = "Terrain"
	methodMaze        = "Maze"
)

// table copies g's weights into a [y][x] table for editing.
// Complexity: O(W×H).
func table(g *grid.Grid) [][]uint8 {
	s := g.Snapshot()
	t := make([][]uint8, s.Height())
	for y := range t {
		t[y] = make([]uint8, s.Width())
		for x := range t[y] {
			t[y][x] = s.WeightAt(y*s.Width() + x)
		}
	}
	return t
}

// commit writes an edited table back in one step.
func commit(method string, g *grid.Grid, t [][]uint8) error {
	if err := g.SetWeights(t); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// validateProbability ensures p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < 0 || p > 1 || p != p {
		return fmt.Errorf("%s: p=%g: %w", method, p, ErrInvalidProbability)
	}
	return nil
}

// requireRNG ensures a seeded RNG is configured.
func requireRNG(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}
	return nil
}
