// SPDX-License-Identifier: MIT
// Package: liealg/builder
//
// impl_affine.go — the Lie algebra of affine transformations of the line.
//
// Contract:
//   - Two generators, default X, Y, relation [X,Y] = Y.
//   - RepBracket (default) uses structure coefficients; RepMatrix realizes
//     X, Y as the sparse 2×2 matrices E(0,0), E(0,1), whose commutator is
//     exactly E(0,1).
//   - Any other selector is ErrUnknownRepresentation.

package builder

import (
	"fmt"

	"github.com/katalvlaran/liealg/lie"
	"github.com/katalvlaran/liealg/matrix"
	"github.com/katalvlaran/liealg/ring"
)

// affineGenerators is the fixed basis size of the family.
const affineGenerators = 2

// defaultPair is the family's default basis.
var defaultPair = []string{"X", "Y"}

// AffineTransformationsLine builds the Lie algebra of affine
// transformations of the line: [X, Y] = Y.
func AffineTransformationsLine(r ring.Ring, opts ...Option) (lie.Algebra, error) {
	const method = MethodAffineTransformationsLine

	if r == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilRing)
	}
	cfg := newBuilderConfig(opts...)
	names, err := normalizeNames(method, cfg.names, affineGenerators, defaultPair)
	if err != nil {
		return nil, err
	}

	switch cfg.repOrDefault(RepBracket) {
	case RepBracket:
		x, y := names[0], names[1]
		coeffs := map[lie.BracketKey]map[string]ring.Element{
			{Left: x, Right: y}: {y: r.One()},
		}
		L, serr := lie.NewStructureAlgebra(r, coeffs, names)
		if serr != nil {
			return nil, fmt.Errorf("%s: %w", method, serr)
		}
		L.Rename(fmt.Sprintf("Lie algebra of affine transformations of a line over %s", r))
		return L, nil

	case RepMatrix:
		space, serr := matrix.NewSpace(r, affineGenerators, matrix.WithSparse())
		if serr != nil {
			return nil, fmt.Errorf("%s: %w", method, serr)
		}
		gens := make([]*matrix.Matrix, 0, affineGenerators)
		for i := 0; i < affineGenerators; i++ {
			g, uerr := space.Unit(0, i)
			if uerr != nil {
				return nil, fmt.Errorf("%s: %w", method, uerr)
			}
			gens = append(gens, g)
		}
		L, ferr := lie.NewFromAssociative(r, space, gens, names)
		if ferr != nil {
			return nil, fmt.Errorf("%s: %w", method, ferr)
		}
		L.Rename(fmt.Sprintf("Lie algebra of affine transformations of a line over %s as a matrix Lie algebra", r))
		return L, nil
	}

	return nil, fmt.Errorf("%s: %q: %w", method, cfg.rep, ErrUnknownRepresentation)
}
