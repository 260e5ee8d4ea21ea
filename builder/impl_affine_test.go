// SPDX-License-Identifier: MIT
package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/liealg/builder"
	"github.com/katalvlaran/liealg/lie"
	"github.com/katalvlaran/liealg/ring"
)

// TestAffineTransformationsLine_Bracket pins the structure form: [X,Y] = Y.
func TestAffineTransformationsLine_Bracket(t *testing.T) {
	t.Parallel()

	r := ring.Rationals()
	A, err := builder.AffineTransformationsLine(r)
	require.NoError(t, err)

	L, ok := A.(*lie.StructureAlgebra)
	require.True(t, ok)
	assert.Equal(t, "{[X, Y]: ((Y, 1))}", L.CoefficientsString())
	assert.Equal(t, "Lie algebra of affine transformations of a line over Rational Field", L.String())
	assert.NoError(t, L.VerifyJacobi())

	// Custom names via the delimited form.
	B, err := builder.AffineTransformationsLine(r, builder.WithNames("a, b"))
	require.NoError(t, err)
	assert.Equal(t, "{[a, b]: ((b, 1))}", B.(*lie.StructureAlgebra).CoefficientsString())
}

// TestAffineTransformationsLine_Matrix checks the 2×2 realization: with
// X = E(0,0) and Y = E(0,1) the commutator [X,Y] is exactly Y.
func TestAffineTransformationsLine_Matrix(t *testing.T) {
	t.Parallel()

	r := ring.Integers()
	A, err := builder.AffineTransformationsLine(r, builder.WithRepresentation(builder.RepMatrix))
	require.NoError(t, err)

	L, ok := A.(*lie.FromAssociative)
	require.True(t, ok)
	assert.Equal(t,
		"Lie algebra of affine transformations of a line over Integer Ring as a matrix Lie algebra",
		L.String())

	x, err := L.Generator(0)
	require.NoError(t, err)
	y, err := L.Generator(1)
	require.NoError(t, err)

	xy, err := L.Bracket(x, y)
	require.NoError(t, err)
	assert.True(t, xy.Equal(y), "[X, Y] = Y")

	yx, err := L.Bracket(y, x)
	require.NoError(t, err)
	assert.True(t, yx.Equal(y.Neg()), "[Y, X] = -Y")
}

// TestAffineTransformationsLine_Validation.
func TestAffineTransformationsLine_Validation(t *testing.T) {
	t.Parallel()

	_, err := builder.AffineTransformationsLine(nil)
	assert.True(t, errors.Is(err, builder.ErrNilRing))

	r := ring.Integers()
	_, err = builder.AffineTransformationsLine(r, builder.WithNames("only"))
	assert.True(t, errors.Is(err, builder.ErrBadNames))

	_, err = builder.AffineTransformationsLine(r, builder.WithRepresentation("graph"))
	assert.True(t, errors.Is(err, builder.ErrUnknownRepresentation))
}
