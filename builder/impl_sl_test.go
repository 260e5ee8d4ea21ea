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

// TestSL_Bracket checks the default representation: the rank-3 case of the
// 3-dimensional classification.
func TestSL_Bracket(t *testing.T) {
	t.Parallel()

	r := ring.Rationals()
	A, err := builder.SL(r, 2, builder.WithNames("E", "F", "H"))
	require.NoError(t, err)

	L, ok := A.(*lie.StructureAlgebra)
	require.True(t, ok, "bracket representation returns the structure-coefficient form")
	assert.Equal(t, "sl2 over Rational Field", L.String())
	assert.Equal(t,
		"{[E, F]: ((H, 1)), [E, H]: ((E, -2)), [F, H]: ((F, 2))}",
		L.CoefficientsString())
	assert.NoError(t, L.VerifyJacobi())
}

// TestSL_Matrix checks the 2×2 realization: [E,F] = H, [H,E] = 2E,
// [H,F] = −2F as genuine matrix commutators.
func TestSL_Matrix(t *testing.T) {
	t.Parallel()

	r := ring.Rationals()
	A, err := builder.SL(r, 2, builder.WithRepresentation(builder.RepMatrix))
	require.NoError(t, err)

	L, ok := A.(*lie.FromAssociative)
	require.True(t, ok, "matrix representation returns the associative form")
	assert.Equal(t, "sl2 as a matrix Lie algebra over Rational Field", L.String())
	assert.Equal(t, []string{"E", "F", "H"}, L.GeneratorNames())

	e, err := L.GeneratorByName("E")
	require.NoError(t, err)
	f, err := L.GeneratorByName("F")
	require.NoError(t, err)
	h, err := L.GeneratorByName("H")
	require.NoError(t, err)

	ef, err := L.Bracket(e, f)
	require.NoError(t, err)
	assert.True(t, ef.Equal(h), "[E, F] = H")

	he, err := L.Bracket(h, e)
	require.NoError(t, err)
	twoE, err := e.Scale(r.FromInt(2))
	require.NoError(t, err)
	assert.True(t, he.Equal(twoE), "[H, E] = 2E")

	hf, err := L.Bracket(h, f)
	require.NoError(t, err)
	minusTwoF, err := f.Scale(r.FromInt(-2))
	require.NoError(t, err)
	assert.True(t, hf.Equal(minusTwoF), "[H, F] = -2F")
}

// TestSL_Validation walks the unsupported sizes and selectors.
func TestSL_Validation(t *testing.T) {
	t.Parallel()

	r := ring.Rationals()

	for _, n := range []int{0, 1, 3, 5} {
		_, err := builder.SL(r, n)
		assert.True(t, errors.Is(err, builder.ErrNotImplemented), "n=%d", n)
	}

	_, err := builder.SL(r, 2, builder.WithRepresentation("polynomial"))
	assert.True(t, errors.Is(err, builder.ErrUnknownRepresentation))

	_, err = builder.SL(nil, 2)
	assert.True(t, errors.Is(err, builder.ErrNilRing))
}
