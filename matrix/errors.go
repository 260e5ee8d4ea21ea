// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrNilRing is returned when a space is requested over a nil ring.
	ErrNilRing = errors.New("matrix: nil coefficient ring")

	// ErrBadShape is returned when a requested shape is invalid (n <= 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At, Unit, FromEntries) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operands: different sizes,
	// or matrices from spaces over different rings.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadEntry indicates a nil ring element supplied as a matrix entry.
	ErrBadEntry = errors.New("matrix: nil entry")
)
