// SPDX-License-Identifier: MIT
// Package: stochlab/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with %w wrapping.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n) is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction failure that is not a
// parameter problem (nil constructor, core rejected a mutation).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrGraphGenerationTimeout indicates that rejection sampling exhausted its
// attempt budget without drawing a connected graph. Typical for p close to 0
// with large n; raise WithMaxAttempts, raise p, or use ConnectedSparse.
var ErrGraphGenerationTimeout = errors.New("builder: connected graph generation timed out")
