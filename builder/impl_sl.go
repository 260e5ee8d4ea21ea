// SPDX-License-Identifier: MIT
// Package: liealg/builder
//
// impl_sl.go — the special linear family.
//
// Contract:
//   - Only n = 2 is implemented; every other n is ErrNotImplemented (the
//     general classical families are explicitly out of scope).
//   - Representations: RepBracket (default) delegates to the rank-3 case of
//     the 3-dimensional classification; RepMatrix builds the 2×2 matrix
//     realization with generators E = E(0,1), F = E(1,0), H = diag(1,−1).
//   - Any other selector is ErrUnknownRepresentation.

package builder

import (
	"fmt"

	"github.com/katalvlaran/liealg/lie"
	"github.com/katalvlaran/liealg/matrix"
	"github.com/katalvlaran/liealg/ring"
)

// slSize is the only implemented matrix size of the family.
const slSize = 2

// defaultSLNames is the basis of the n = 2 presentation.
var defaultSLNames = []string{"E", "F", "H"}

// SL builds the special linear Lie algebra sl_n. Only n = 2 is implemented.
func SL(r ring.Ring, n int, opts ...Option) (lie.Algebra, error) {
	const method = MethodSL

	if r == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilRing)
	}
	if n != slSize {
		return nil, fmt.Errorf("%s: n=%d: only n=2 is implemented: %w", method, n, ErrNotImplemented)
	}

	cfg := newBuilderConfig(opts...)
	switch cfg.repOrDefault(RepBracket) {
	case RepBracket:
		return ThreeDimensionalByRank(r, 3, opts...)

	case RepMatrix:
		names, err := normalizeNames(method, cfg.names, threeDimGenerators, defaultSLNames)
		if err != nil {
			return nil, err
		}
		L, err := slMatrix(r, names)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		return L, nil
	}

	return nil, fmt.Errorf("%s: %q: %w", method, cfg.rep, ErrUnknownRepresentation)
}

// slMatrix assembles the 2×2 generating set and derives the algebra.
func slMatrix(r ring.Ring, names []string) (*lie.FromAssociative, error) {
	space, err := matrix.NewSpace(r, slSize)
	if err != nil {
		return nil, err
	}
	// E and F are the off-diagonal matrix units; H is the Cartan generator
	// diag(1, -1), so [E,F] = H holds as a commutator.
	e, err := space.Unit(0, 1)
	if err != nil {
		return nil, err
	}
	f, err := space.Unit(1, 0)
	if err != nil {
		return nil, err
	}
	h, err := space.FromRows([][]ring.Element{
		{r.One(), r.Zero()},
		{r.Zero(), r.Neg(r.One())},
	})
	if err != nil {
		return nil, err
	}

	L, err := lie.NewFromAssociative(r, space, []*matrix.Matrix{e, f, h}, names)
	if err != nil {
		return nil, err
	}
	L.Rename(fmt.Sprintf("sl2 as a matrix Lie algebra over %s", r))
	return L, nil
}
