// SPDX-License-Identifier: MIT
// Package: gridstar/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w; sentinels carry no parameters.

package builder

import "errors"

// ErrBadSize indicates a size or rectangle that the constructor cannot place
// on the grid.
var ErrBadSize = errors.New("builder: invalid size")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed.
var ErrConstructFailed = errors.New("builder: construction failed")
