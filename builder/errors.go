// SPDX-License-Identifier: MIT
// Package: npgraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.
//   • Constructors do not panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n) is smaller than the
// minimum allowed for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that an edge probability lies outside (0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that AddRandomNode was called without a Source.
var ErrNeedRandSource = errors.New("builder: random source is required")

// ErrConstructFailed indicates a construction step that could not complete,
// e.g. a nil Constructor passed to BuildGraph or a nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")
