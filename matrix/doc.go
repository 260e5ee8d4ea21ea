// SPDX-License-Identifier: MIT

// Package matrix implements square matrix spaces over an arbitrary
// coefficient ring, with dense and sparse entry representations.
//
// The package exists to serve the from-associative bracket engine: a matrix
// space is the ambient associative algebra whose commutator ab−ba becomes a
// Lie bracket. It therefore stays deliberately small: construction (units,
// entry maps, row data), ring-linear arithmetic (Add/Sub/Neg/Scale), the
// associative product (Mul), and the derived Commutator.
//
// Design contract (strict):
//   - Matrices are immutable once constructed; every operation returns a
//     fresh matrix and never aliases input storage.
//   - All validation errors are package sentinels branched with errors.Is
//     (ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrNilRing,
//     ErrBadEntry); methods never panic on user input.
//   - Determinism: String renders entries in row-major order; sparse and
//     dense matrices with equal entries compare Equal and print identically.
//   - Sparse spaces (WithSparse) store only nonzero entries; arithmetic
//     preserves sparsity where the operands allow it.
package matrix
