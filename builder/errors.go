// SPDX-License-Identifier: MIT
// Package: liealg/builder
//
// errors.go — sentinel errors for the factory catalog.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Factories attach context via %w wrapping with the Method* constants;
//     sentinels themselves never carry parameter values.
//   - Every failure is an invalid-argument condition detected synchronously
//     at the call site; nothing is retried or recovered locally.

package builder

import "errors"

// ErrNilRing indicates a factory was called without a coefficient ring.
var ErrNilRing = errors.New("builder: nil coefficient ring")

// ErrUnsupportedRank indicates a rank or dimension parameter outside the
// supported range for the requested family (negative rank, rank > 3 for the
// 3-dimensional classification, n < 1 triangular spaces, ...).
// Usage: if errors.Is(err, ErrUnsupportedRank) { /* fix the rank */ }.
var ErrUnsupportedRank = errors.New("builder: unsupported rank")

// ErrMissingDeformation indicates the chosen case needs a deformation
// parameter (rank 2 of the 3-dimensional family) and WithDeformation was
// not supplied.
var ErrMissingDeformation = errors.New("builder: deformation parameter required")

// ErrUnknownRepresentation indicates an unrecognized representation
// selector. Each factory documents the selectors it accepts.
var ErrUnknownRepresentation = errors.New("builder: unknown representation")

// ErrNotImplemented indicates an explicitly unimplemented specialization,
// e.g. SL(R, n) for n ≠ 2. The general classical families are out of scope
// on purpose; this failure is the documented behavior, not a gap.
var ErrNotImplemented = errors.New("builder: not implemented")

// ErrBadNames indicates an unusable generator-name parameter: wrong count
// for the family, an empty name after normalization, or duplicates.
var ErrBadNames = errors.New("builder: invalid generator names")

// ErrBadCoefficient indicates a nil ring element passed as a structural
// parameter (the a,b,c,d of the 3-dimensional family).
var ErrBadCoefficient = errors.New("builder: nil coefficient")
