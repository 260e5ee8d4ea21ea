// SPDX-License-Identifier: MIT
// Package builder_test contains functional tests for the 3-dimensional
// family: exact structure-coefficient tables, the rank classification, and
// the validation sentinels.
package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/liealg/builder"
	"github.com/katalvlaran/liealg/ring"
)

// TestThreeDimensional_Tables pins the canonical display of the (a,b,c,d)
// family, including zero-coefficient terms being omitted.
func TestThreeDimensional_Tables(t *testing.T) {
	t.Parallel()

	r := ring.Rationals()
	tests := []struct {
		name       string
		a, b, c, d int64
		want       string
	}{
		{
			name: "generic (4,1,-1,2)",
			a:    4, b: 1, c: -1, d: 2,
			want: "{[X, Y]: ((Y, 2), (Z, 4)), [X, Z]: ((Y, 1), (Z, 2)), [Y, Z]: ((X, 1))}",
		},
		{
			name: "only a (1,0,0,0)",
			a:    1, b: 0, c: 0, d: 0,
			want: "{[X, Y]: ((Z, 1))}",
		},
		{
			name: "degenerate (0,0,-1,-1)",
			a:    0, b: 0, c: -1, d: -1,
			want: "{[X, Y]: ((Y, -1)), [X, Z]: ((Y, 1), (Z, -1))}",
		},
		{
			name: "only b (0,1,0,0)",
			a:    0, b: 1, c: 0, d: 0,
			want: "{[Y, Z]: ((X, 1))}",
		},
		{
			name: "all zero",
			a:    0, b: 0, c: 0, d: 0,
			want: "{}",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			L, err := builder.ThreeDimensional(r,
				r.FromInt(tc.a), r.FromInt(tc.b), r.FromInt(tc.c), r.FromInt(tc.d))
			require.NoError(t, err)
			assert.Equal(t, tc.want, L.CoefficientsString())
			assert.Equal(t, []string{"X", "Y", "Z"}, L.GeneratorNames())
		})
	}
}

// TestThreeDimensional_Validation walks nil rings, nil coefficients and
// name arity.
func TestThreeDimensional_Validation(t *testing.T) {
	t.Parallel()

	r := ring.Integers()
	one := r.One()

	_, err := builder.ThreeDimensional(nil, one, one, one, one)
	assert.True(t, errors.Is(err, builder.ErrNilRing))

	_, err = builder.ThreeDimensional(r, one, nil, one, one)
	assert.True(t, errors.Is(err, builder.ErrBadCoefficient))

	_, err = builder.ThreeDimensional(r, one, one, one, one, builder.WithNames("X", "Y"))
	assert.True(t, errors.Is(err, builder.ErrBadNames))

	_, err = builder.ThreeDimensional(r, one, one, one, one, builder.WithNames("X", "X", "Z"))
	assert.True(t, errors.Is(err, builder.ErrBadNames))
}

// TestCrossProduct checks the so(3) table over several rings with a unit.
func TestCrossProduct(t *testing.T) {
	t.Parallel()

	mod5, err := ring.Modular(5)
	require.NoError(t, err)

	for _, r := range []ring.Ring{ring.Integers(), ring.Rationals(), mod5} {
		L, err := builder.CrossProduct(r)
		require.NoError(t, err, "ring %s", r)

		// -1 renders per the ring: "4" modulo 5, "-1" otherwise.
		minusOne := r.Format(r.Neg(r.One()))
		assert.Equal(t,
			"{[X, Y]: ((Z, 1)), [X, Z]: ((Y, "+minusOne+")), [Y, Z]: ((X, 1))}",
			L.CoefficientsString())
		assert.Equal(t, "Lie algebra of RR^3 under cross product over "+r.String(), L.String())
		assert.NoError(t, L.VerifyJacobi())
	}
}

// TestThreeDimensionalByRank_Cases pins each supported rank.
func TestThreeDimensionalByRank_Cases(t *testing.T) {
	t.Parallel()

	r := ring.Rationals()

	// Rank 0: the abelian algebra on 3 generators, all brackets empty.
	L0, err := builder.ThreeDimensionalByRank(r, 0)
	require.NoError(t, err)
	assert.True(t, L0.IsAbelian())
	assert.Equal(t, "{}", L0.CoefficientsString())
	assert.Equal(t, "Abelian Lie algebra on 3 generators (X, Y, Z) over Rational Field", L0.String())

	// Rank 1: strictly upper triangular 3×3 relations.
	L1, err := builder.ThreeDimensionalByRank(r, 1)
	require.NoError(t, err)
	assert.Equal(t, "{[Y, Z]: ((X, 1))}", L1.CoefficientsString())
	assert.Equal(t, "Lie algebra of 3x3 strictly upper triangular matrices over Rational Field", L1.String())

	// Rank 2 with nonzero deformation.
	L2, err := builder.ThreeDimensionalByRank(r, 2, builder.WithDeformation(r.FromInt(4)))
	require.NoError(t, err)
	assert.Equal(t, "{[X, Y]: ((Y, 1)), [X, Z]: ((Y, 1), (Z, 1))}", L2.CoefficientsString())
	assert.Equal(t, "Lie algebra of dimension 3 and rank 2 with parameter 4 over Rational Field", L2.String())

	// Rank 2 with zero deformation: the degenerate case.
	L2d, err := builder.ThreeDimensionalByRank(r, 2, builder.WithDeformation(r.Zero()))
	require.NoError(t, err)
	assert.Equal(t, "{[X, Y]: ((Y, 1))}", L2d.CoefficientsString())
	assert.Equal(t, "Degenerate Lie algebra of dimension 3 and rank 2 over Rational Field", L2d.String())

	// Rank 3: sl2 (default basis names X, Y, Z play the roles E, F, H).
	L3, err := builder.ThreeDimensionalByRank(r, 3)
	require.NoError(t, err)
	assert.Equal(t, "sl2 over Rational Field", L3.String())
	assert.Equal(t, "{[X, Y]: ((Z, 1)), [X, Z]: ((X, -2)), [Y, Z]: ((Y, 2))}", L3.CoefficientsString())
	assert.NoError(t, L3.VerifyJacobi())
}

// TestThreeDimensionalByRank_Validation walks the failure branches.
func TestThreeDimensionalByRank_Validation(t *testing.T) {
	t.Parallel()

	r := ring.Rationals()

	// Rank 2 without a deformation parameter.
	_, err := builder.ThreeDimensionalByRank(r, 2)
	assert.True(t, errors.Is(err, builder.ErrMissingDeformation))

	// Out-of-range ranks.
	for _, rank := range []int{4, -1, 100} {
		_, err = builder.ThreeDimensionalByRank(r, rank)
		assert.True(t, errors.Is(err, builder.ErrUnsupportedRank), "rank %d", rank)
	}

	_, err = builder.ThreeDimensionalByRank(nil, 0)
	assert.True(t, errors.Is(err, builder.ErrNilRing))
}

// TestThreeDimensionalByRank_CustomNames checks that name overrides flow
// into every rank, in both input forms.
func TestThreeDimensionalByRank_CustomNames(t *testing.T) {
	t.Parallel()

	r := ring.Integers()

	seq, err := builder.ThreeDimensionalByRank(r, 3, builder.WithNames("E", "F", "H"))
	require.NoError(t, err)
	str, err := builder.ThreeDimensionalByRank(r, 3, builder.WithNames("E, F, H"))
	require.NoError(t, err)

	want := "{[E, F]: ((H, 1)), [E, H]: ((E, -2)), [F, H]: ((F, 2))}"
	assert.Equal(t, want, seq.CoefficientsString())
	assert.Equal(t, want, str.CoefficientsString())
	assert.Equal(t, seq.GeneratorNames(), str.GeneratorNames())
}
