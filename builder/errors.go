// SPDX-License-Identifier: MIT
// Package: planarcolor/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, min, max) is smaller
// than the allowed minimum, or an empty range (max < min).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction could not proceed
// (e.g., a nil constructor was handed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps an inner message with the given method context and
// sentinel. It returns an error of the form "<Method>: <message>: <sentinel>".
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
