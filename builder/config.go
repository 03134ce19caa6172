// SPDX-License-Identifier: MIT
// Package: gridstar/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil             (pure/deterministic unless seeded)
//   • weightFn = uniform [0,254] (drawn from rng; used by Terrain only)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/gridstar/grid"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for passable cells; must never return grid.Impassable.
	weightFn func(*rand.Rand) uint8
}

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: UniformWeight(0, grid.Impassable-1),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// UniformWeight draws a passable weight uniformly from [lo, hi].
// hi is capped at grid.Impassable-1. Panics if lo > hi.
func UniformWeight(lo, hi uint8) func(*rand.Rand) uint8 {
	if hi >= grid.Impassable {
		hi = grid.Impassable - 1
	}
	if lo > hi {
		panic("builder: UniformWeight(lo>hi)")
	}
	span := int(hi-lo) + 1
	return func(r *rand.Rand) uint8 {
		return lo + uint8(r.Intn(span))
	}
}

// ConstantWeight always yields w.
func ConstantWeight(w uint8) func(*rand.Rand) uint8 {
	return func(*rand.Rand) uint8 { return w }
}
