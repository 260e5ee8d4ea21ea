// SPDX-License-Identifier: MIT
// Package: liealg/builder
//
// impl_triangular.go — (strictly) upper triangular matrix Lie algebras.
//
// Contract:
//   - Both factories derive the bracket as the matrix commutator in the
//     sparse n×n space; generators are emitted in a stable order.
//   - UpperTriangularMatrices(r, n), n ≥ 1: the superdiagonal units
//     E(i,i+1) named n0..n(n−2), then the diagonal units E(i,i) named
//     t0..t(n−1) — 2n−1 generators, each with its own name.
//   - StrictlyUpperTriangularMatrices(r, n), n ≥ 2: the superdiagonal units
//     only, named n0..n(n−2).
//   - Smaller n leaves no generating set and is ErrUnsupportedRank.

package builder

import (
	"fmt"

	"github.com/katalvlaran/liealg/lie"
	"github.com/katalvlaran/liealg/matrix"
	"github.com/katalvlaran/liealg/ring"
)

// UpperTriangularMatrices builds the Lie algebra of n×n upper triangular
// matrices, generated by the superdiagonal and diagonal matrix units.
func UpperTriangularMatrices(r ring.Ring, n int) (*lie.FromAssociative, error) {
	const method = MethodUpperTriangularMatrices

	if r == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilRing)
	}
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", method, n, ErrUnsupportedRank)
	}

	// The ambient space is sparse: every generator has exactly one nonzero
	// cell.
	space, err := matrix.NewSpace(r, n, matrix.WithSparse())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	// Emit generators in stable order: superdiagonal units first, then the
	// diagonal, each with its own name.
	gens := make([]*matrix.Matrix, 0, 2*n-1)
	names := make([]string, 0, 2*n-1)
	for i := 0; i < n-1; i++ {
		// n<i> = E(i, i+1), the i-th superdiagonal unit.
		g, uerr := space.Unit(i, i+1)
		if uerr != nil {
			return nil, fmt.Errorf("%s: %w", method, uerr)
		}
		gens = append(gens, g)
		names = append(names, fmt.Sprintf("n%d", i))
	}
	for i := 0; i < n; i++ {
		// t<i> = E(i, i), the i-th diagonal unit.
		g, uerr := space.Unit(i, i)
		if uerr != nil {
			return nil, fmt.Errorf("%s: %w", method, uerr)
		}
		gens = append(gens, g)
		names = append(names, fmt.Sprintf("t%d", i))
	}

	L, err := lie.NewFromAssociative(r, space, gens, names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	L.Rename(fmt.Sprintf("Lie algebra of %d-dimensional upper triangular matrices over %s", n, r))
	return L, nil
}

// StrictlyUpperTriangularMatrices builds the Lie algebra of strictly upper
// triangular n×n matrices, generated by the superdiagonal matrix units.
func StrictlyUpperTriangularMatrices(r ring.Ring, n int) (*lie.FromAssociative, error) {
	const method = MethodStrictlyUpperTriangularMatrices

	if r == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilRing)
	}
	if n < 2 {
		return nil, fmt.Errorf("%s: n=%d: %w", method, n, ErrUnsupportedRank)
	}

	// Sparse ambient space; the generating set is the superdiagonal alone.
	space, err := matrix.NewSpace(r, n, matrix.WithSparse())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	// Emit n<i> = E(i, i+1) in ascending i.
	gens := make([]*matrix.Matrix, 0, n-1)
	names := make([]string, 0, n-1)
	for i := 0; i < n-1; i++ {
		g, uerr := space.Unit(i, i+1)
		if uerr != nil {
			return nil, fmt.Errorf("%s: %w", method, uerr)
		}
		gens = append(gens, g)
		names = append(names, fmt.Sprintf("n%d", i))
	}

	L, err := lie.NewFromAssociative(r, space, gens, names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	L.Rename(fmt.Sprintf("Lie algebra of %d-dimensional strictly upper triangular matrices over %s", n, r))
	return L, nil
}
