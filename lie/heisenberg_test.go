// SPDX-License-Identifier: MIT
// Package lie_test: the three Heisenberg realizations.
package lie_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/liealg/lie"
	"github.com/katalvlaran/liealg/ring"
)

// TestHeisenberg_Structure checks basis order and the canonical relations.
func TestHeisenberg_Structure(t *testing.T) {
	t.Parallel()

	r := ring.Rationals()
	L, err := lie.NewHeisenberg(r, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"p1", "p2", "q1", "q2", "z"}, L.GeneratorNames())
	assert.Equal(t, "{[p1, q1]: ((z, 1)), [p2, q2]: ((z, 1))}", L.CoefficientsString())
	assert.Equal(t, "Heisenberg algebra of rank 2 over Rational Field", L.String())
	assert.NoError(t, L.VerifyJacobi())

	// [p1, q2] = 0; [p1, q1] = z.
	p1, err := L.Generator("p1")
	require.NoError(t, err)
	q1, err := L.Generator("q1")
	require.NoError(t, err)
	q2, err := L.Generator("q2")
	require.NoError(t, err)
	z, err := L.Generator("z")
	require.NoError(t, err)

	zero, err := p1.Bracket(q2)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	central, err := p1.Bracket(q1)
	require.NoError(t, err)
	assert.True(t, central.Equal(z))
}

// TestHeisenberg_RankZeroAndErrors covers the degenerate rank and ErrBadRank.
func TestHeisenberg_RankZeroAndErrors(t *testing.T) {
	t.Parallel()

	r := ring.Integers()

	L, err := lie.NewHeisenberg(r, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, L.GeneratorNames())
	assert.True(t, L.IsAbelian())

	_, err = lie.NewHeisenberg(r, -3)
	assert.True(t, errors.Is(err, lie.ErrBadRank))
	_, err = lie.NewHeisenbergMatrix(r, -1)
	assert.True(t, errors.Is(err, lie.ErrBadRank))
	_, err = lie.NewHeisenberg(nil, 1)
	assert.True(t, errors.Is(err, lie.ErrNilRing))
	_, err = lie.NewHeisenbergMatrix(nil, 1)
	assert.True(t, errors.Is(err, lie.ErrNilRing))
	_, err = lie.NewInfiniteHeisenberg(nil)
	assert.True(t, errors.Is(err, lie.ErrNilRing))
}

// TestHeisenbergMatrix_Commutators verifies [p_i, q_j] = δ_ij z by direct
// matrix computation, and that z is central.
func TestHeisenbergMatrix_Commutators(t *testing.T) {
	t.Parallel()

	r := ring.Rationals()
	const n = 3
	L, err := lie.NewHeisenbergMatrix(r, n)
	require.NoError(t, err)

	assert.Equal(t, n+2, L.Space().Size())
	assert.Equal(t, 2*n+1, L.NumGenerators())

	z, err := L.GeneratorByName("z")
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// Generators are ordered p1..pn, q1..qn, z.
			comm, err := L.GeneratorBracket(i, n+j)
			require.NoError(t, err)
			if i == j {
				assert.True(t, comm.Equal(z), "[p%d, q%d] must be z", i+1, j+1)
			} else {
				assert.True(t, comm.IsZero(), "[p%d, q%d] must vanish", i+1, j+1)
			}
		}
	}

	// The center commutes with everything.
	for i := 0; i < L.NumGenerators(); i++ {
		comm, err := L.GeneratorBracket(2*n, i)
		require.NoError(t, err)
		assert.True(t, comm.IsZero())
	}
}

// TestInfiniteHeisenberg_Rule checks the label-based bracket rule.
func TestInfiniteHeisenberg_Rule(t *testing.T) {
	t.Parallel()

	r := ring.Integers()
	L, err := lie.NewInfiniteHeisenberg(r)
	require.NoError(t, err)
	assert.Equal(t, "Infinite Heisenberg algebra over Integer Ring", L.String())

	// [p7, q7] = z.
	out, err := L.BracketGenerators("p7", "q7")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, r.Equal(out["z"], r.One()))

	// [q7, p7] = -z.
	out, err = L.BracketGenerators("q7", "p7")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, r.Equal(out["z"], r.FromInt(-1)))

	// Mismatched indices and the center bracket to zero.
	for _, pair := range [][2]string{{"p1", "q2"}, {"p3", "p4"}, {"z", "q9"}, {"z", "z"}} {
		out, err = L.BracketGenerators(pair[0], pair[1])
		require.NoError(t, err)
		assert.Empty(t, out, "[%s, %s]", pair[0], pair[1])
	}

	// Bad labels fail with ErrUnknownGenerator.
	for _, label := range []string{"p0", "q-1", "w3", "p", "", "p+2"} {
		_, err = L.BracketGenerators(label, "z")
		assert.True(t, errors.Is(err, lie.ErrUnknownGenerator), "label %q", label)
	}
}
