// SPDX-License-Identifier: MIT
// Package: gridstar/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Seeding is explicit via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes the builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the terrain weight generator. Results equal to
// grid.Impassable are lowered to grid.Impassable-1 so terrain never adds
// walls. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) uint8) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
