// SPDX-License-Identifier: MIT
// Package: liealg/builder
//
// impl_three_dimensional.go — the 3-dimensional family: the general
// (a,b,c,d) table, the cross product, and the rank classification.
//
// Contract:
//   - ThreeDimensional emits [X,Y] = aZ+dY, [Y,Z] = bX, [Z,X] = cY−dZ over
//     the (possibly renamed) basis X, Y, Z; nil coefficients are
//     ErrBadCoefficient.
//   - ThreeDimensionalByRank classifies by rank 0..3; rank 2 requires
//     WithDeformation (ErrMissingDeformation), anything outside 0..3 is
//     ErrUnsupportedRank.
//   - The [Z,X] key is handed to the engine as-is; normalization into
//     [X,Z] = −cY+dZ is the engine's antisymmetry fold, not ours.
//
// Complexity: O(1) table assembly plus engine construction.

package builder

import (
	"fmt"

	"github.com/katalvlaran/liealg/lie"
	"github.com/katalvlaran/liealg/ring"
)

// threeDimGenerators is the fixed basis size of the family.
const threeDimGenerators = 3

// defaultTriple is the family's default basis.
var defaultTriple = []string{"X", "Y", "Z"}

// ThreeDimensional builds the 3-dimensional Lie algebra with the relations
//
//	[X, Y] = aZ + dY,  [Y, Z] = bX,  [Z, X] = cY − dZ
//
// for a, b, c, d in r.
func ThreeDimensional(r ring.Ring, a, b, c, d ring.Element, opts ...Option) (*lie.StructureAlgebra, error) {
	const method = MethodThreeDimensional

	// Validate parameter domain early (fail fast, no work on invalid input).
	if r == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilRing)
	}
	for i, coeff := range []ring.Element{a, b, c, d} {
		if coeff == nil {
			return nil, fmt.Errorf("%s: parameter %c: %w", method, 'a'+rune(i), ErrBadCoefficient)
		}
	}

	// Resolve options and the basis names (defaults X, Y, Z; exactly 3).
	cfg := newBuilderConfig(opts...)
	names, err := normalizeNames(method, cfg.names, threeDimGenerators, defaultTriple)
	if err != nil {
		return nil, err
	}
	x, y, z := names[0], names[1], names[2]

	// Assemble the closed-form table; the [Z,X] key keeps the family's
	// traditional orientation and is folded by the engine.
	coeffs := map[lie.BracketKey]map[string]ring.Element{
		{Left: x, Right: y}: {z: a, y: d},
		{Left: y, Right: z}: {x: b},
		{Left: z, Right: x}: {y: c, z: r.Neg(d)},
	}
	L, err := lie.NewStructureAlgebra(r, coeffs, names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return L, nil
}

// CrossProduct builds the Lie algebra of ℝ³ under the usual cross product:
// ThreeDimensional(r, 1, 1, 1, 0) with a descriptive display name.
func CrossProduct(r ring.Ring, opts ...Option) (*lie.StructureAlgebra, error) {
	const method = MethodCrossProduct

	if r == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilRing)
	}
	L, err := ThreeDimensional(r, r.One(), r.One(), r.One(), r.Zero(), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	L.Rename(fmt.Sprintf("Lie algebra of RR^3 under cross product over %s", r))
	return L, nil
}

// ThreeDimensionalByRank builds the 3-dimensional Lie algebra of the given
// rank:
//
//	0 — the abelian algebra on 3 generators;
//	1 — 3×3 strictly upper triangular matrices ([Y,Z] = X);
//	2 — requires WithDeformation(a): the degenerate case for a = 0, the
//	    rank-2 case with parameter a otherwise;
//	3 — sl2 in the (E,F,H) presentation.
//
// Any other rank is ErrUnsupportedRank.
func ThreeDimensionalByRank(r ring.Ring, rank int, opts ...Option) (*lie.StructureAlgebra, error) {
	const method = MethodThreeDimensionalByRank

	if r == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilRing)
	}
	cfg := newBuilderConfig(opts...)
	names, err := normalizeNames(method, cfg.names, threeDimGenerators, defaultTriple)
	if err != nil {
		return nil, err
	}

	switch rank {
	case 0:
		// Rank 0: every bracket vanishes; delegate to the dedicated abelian
		// constructor, which also sets the display name.
		L, aerr := lie.NewAbelian(r, names)
		if aerr != nil {
			return nil, fmt.Errorf("%s: %w", method, aerr)
		}
		return L, nil

	case 1:
		// Rank 1: the single relation [Y,Z] = X, i.e. the (a,b,c,d) family
		// at (0,1,0,0). Forward the resolved names to keep overrides intact.
		L, terr := ThreeDimensional(r, r.Zero(), r.One(), r.Zero(), r.Zero(), WithNames(names...))
		if terr != nil {
			return nil, fmt.Errorf("%s: %w", method, terr)
		}
		// Replace the generic family name with the rank-1 description.
		L.Rename(fmt.Sprintf("Lie algebra of 3x3 strictly upper triangular matrices over %s", r))
		return L, nil

	case 2:
		// Rank 2 is a parameterized family; the deformation element must
		// arrive via WithDeformation (absence is a caller error, not a
		// default).
		a := cfg.deformation
		if a == nil {
			return nil, fmt.Errorf("%s: rank 2: %w", method, ErrMissingDeformation)
		}
		x, y, z := names[0], names[1], names[2]
		var coeffs map[lie.BracketKey]map[string]ring.Element
		var display string
		if r.IsZero(a) {
			// a = 0 degenerates: [X,Z] collapses to zero, leaving [X,Y] = Y.
			coeffs = map[lie.BracketKey]map[string]ring.Element{
				{Left: x, Right: y}: {y: r.One()},
				{Left: x, Right: z}: {y: a},
			}
			display = fmt.Sprintf("Degenerate Lie algebra of dimension 3 and rank 2 over %s", r)
		} else {
			// a ≠ 0: [X,Y] = Y and [X,Z] = Y + Z, with a recorded in the
			// display name.
			coeffs = map[lie.BracketKey]map[string]ring.Element{
				{Left: x, Right: y}: {y: r.One()},
				{Left: x, Right: z}: {y: r.One(), z: r.One()},
			}
			display = fmt.Sprintf("Lie algebra of dimension 3 and rank 2 with parameter %s over %s", r.Format(a), r)
		}
		L, serr := lie.NewStructureAlgebra(r, coeffs, names)
		if serr != nil {
			return nil, fmt.Errorf("%s: %w", method, serr)
		}
		L.Rename(display)
		return L, nil

	case 3:
		// Rank 3 is sl2: [E,F] = H, [H,E] = 2E, [H,F] = -2F. The reversed
		// (H,·) keys are handed as-is; the engine folds them.
		e, f, h := names[0], names[1], names[2]
		coeffs := map[lie.BracketKey]map[string]ring.Element{
			{Left: e, Right: f}: {h: r.One()},
			{Left: h, Right: e}: {e: r.FromInt(2)},
			{Left: h, Right: f}: {f: r.FromInt(-2)},
		}
		L, serr := lie.NewStructureAlgebra(r, coeffs, names)
		if serr != nil {
			return nil, fmt.Errorf("%s: %w", method, serr)
		}
		L.Rename(fmt.Sprintf("sl2 over %s", r))
		return L, nil
	}

	// Every supported rank returned above; anything else is out of range.
	return nil, fmt.Errorf("%s: rank %d: %w", method, rank, ErrUnsupportedRank)
}
