// SPDX-License-Identifier: MIT

// Package ring defines the coefficient-ring abstraction every algebra in this
// module is generic over, together with three concrete rings: the integers,
// the rationals, and the integers modulo m.
//
// Design contract (strict):
//   - Elements are opaque values owned by their Ring; callers never touch the
//     underlying representation and never mutate an Element in place.
//   - Every operation returns a fresh Element; inputs are never aliased into
//     outputs. Determinism: equal inputs ⇒ equal (Equal) outputs, always.
//   - Rings are comparable by identity: Integers() and Rationals() return
//     process-wide singletons, so r1 == r2 answers "same ring".
//   - Passing an Element of one ring to another ring is a programmer error
//     and panics with a descriptive message (mirrors option-validation rules:
//     panics are reserved for misuse that cannot occur in correct code).
//
// Arithmetic is exact: big.Int for the integers, big.Rat for the rationals,
// and uint64 residues for the modular ring. No floats, no rounding, no NaN.
package ring
