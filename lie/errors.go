// SPDX-License-Identifier: MIT
// Package lie: sentinel error set (unified, consistent).
// Constructors and methods return ONLY these sentinels, wrapped with
// method context via %w; callers branch with errors.Is. Nothing panics on
// user-triggered conditions.

package lie

import "errors"

var (
	// ErrNilRing is returned when an algebra is requested over a nil ring.
	ErrNilRing = errors.New("lie: nil coefficient ring")

	// ErrBadBasis indicates an unusable basis-name sequence: empty, an empty
	// name, or duplicate names.
	ErrBadBasis = errors.New("lie: invalid basis names")

	// ErrUnknownGenerator indicates a reference to a generator outside the
	// algebra's basis (an unknown name in a coefficient table, an index out
	// of range, or an unparsable rule-based generator label).
	ErrUnknownGenerator = errors.New("lie: unknown generator")

	// ErrBadCoefficient indicates a nil ring element supplied as a structure
	// coefficient.
	ErrBadCoefficient = errors.New("lie: nil coefficient")

	// ErrDuplicateBracket indicates the same basis pair was supplied twice,
	// counting a (Y,X) key as a duplicate of (X,Y): the two orientations
	// determine each other by antisymmetry and must not both appear.
	ErrDuplicateBracket = errors.New("lie: duplicate bracket key")

	// ErrSelfBracket indicates a nonzero coefficient table for [e, e], which
	// antisymmetry forces to zero.
	ErrSelfBracket = errors.New("lie: nonzero self bracket")

	// ErrJacobiViolation is returned by VerifyJacobi (and by construction
	// under WithVerify) when the table fails the Jacobi identity.
	ErrJacobiViolation = errors.New("lie: Jacobi identity violated")

	// ErrMixedAlgebras indicates element arithmetic across two different
	// algebra instances.
	ErrMixedAlgebras = errors.New("lie: elements of different algebras")

	// ErrBadGenerators indicates an unusable generating set for a derived
	// algebra: empty, a nil matrix, a matrix from a different space, or a
	// name count that does not match the generator count.
	ErrBadGenerators = errors.New("lie: invalid generating set")

	// ErrBadRank indicates a negative rank for a Heisenberg construction.
	ErrBadRank = errors.New("lie: invalid rank")
)
