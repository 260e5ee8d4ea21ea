// SPDX-License-Identifier: MIT

// Package builder is the factory catalog of named Lie algebra constructions.
//
// Each factory selects structural data — a closed-form bracket table or a
// generating set inside a matrix space — validates its parameters, and
// delegates construction to the engines in liealg/lie. The catalog:
//
//	ThreeDimensional(R, a, b, c, d)         [X,Y]=aZ+dY, [Y,Z]=bX, [Z,X]=cY−dZ
//	CrossProduct(R)                         ℝ³ under the cross product
//	ThreeDimensionalByRank(R, n)            rank 0..3, rank 2 needs WithDeformation
//	SL(R, 2)                                sl2; WithRepresentation(RepMatrix) for 2×2 matrices
//	AffineTransformationsLine(R)            [X,Y]=Y; matrix representation available
//	Abelian(R, "x, y, z")                   all brackets zero
//	Heisenberg(R, n)                        rank n; RepMatrix and Infinity variants
//	RegularVectorFields(R)                  the Witt algebra [d_i,d_j]=(j−i)d_{i+j}
//	UpperTriangularMatrices(R, n)           commutators of n×n upper triangular matrices
//	StrictlyUpperTriangularMatrices(R, n)   the strictly upper triangular variant
//
// Design contract (strict):
//   - Factories validate parameters early and return sentinel errors; they
//     never panic. Branch with errors.Is against the builder sentinels
//     (ErrUnsupportedRank, ErrMissingDeformation, ErrUnknownRepresentation,
//     ErrNotImplemented, ErrBadNames, ...).
//   - Generator names arrive either as a single comma-delimited string or as
//     an explicit sequence (WithNames("X,Y,Z") ≡ WithNames("X","Y","Z"));
//     both are normalized to the same ordered form before use.
//   - Results are immutable algebra objects carrying a descriptive display
//     name; construction either fully succeeds or fails outright.
//   - Determinism: same ring, parameters and options ⇒ an identical algebra.
//
// Unimplemented specializations are explicit: SL for n≠2 fails with
// ErrNotImplemented rather than guessing at the general classical families.
package builder
