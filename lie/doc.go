// SPDX-License-Identifier: MIT

// Package lie implements the bracket engines behind the builder catalog:
//
//   - StructureAlgebra — a Lie algebra presented by structure coefficients:
//     a table expressing each basis bracket [e_i, e_j] as a linear
//     combination of basis elements. The constructor normalizes every
//     supplied key into basis order (folding [e_j, e_i] into −[e_i, e_j])
//     and drops zero terms, so the stored table is canonical. Jacobi
//     verification is available via VerifyJacobi and can be enforced at
//     construction with WithVerify.
//   - FromAssociative — a Lie algebra derived from a generating set inside
//     a matrix space; the bracket is the commutator ab−ba of the ambient
//     associative product.
//   - InfiniteHeisenberg and RegularVectorFields — rule-based algebras over
//     an unbounded basis (p_i/q_i/z canonical commutation relations, and the
//     Witt relations [d_i, d_j] = (j−i) d_{i+j} respectively).
//
// Every constructed algebra is immutable apart from Rename, which sets the
// human-readable display name returned by String. All validation failures
// are package sentinels branched with errors.Is; nothing here panics on
// user input, performs I/O, or shares mutable state between calls.
package lie
