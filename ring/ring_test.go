// SPDX-License-Identifier: MIT
// Package ring_test verifies the concrete rings: exact arithmetic, canonical
// formatting, ring identity, and the Modular validation contract.
package ring_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/liealg/ring"
)

// TestRings_Arithmetic runs the same algebraic identities over every ring.
func TestRings_Arithmetic(t *testing.T) {
	t.Parallel()

	mod7, err := ring.Modular(7)
	require.NoError(t, err)

	rings := []struct {
		name string
		r    ring.Ring
	}{
		{name: "Integers", r: ring.Integers()},
		{name: "Rationals", r: ring.Rationals()},
		{name: "Modular(7)", r: mod7},
	}

	for _, tc := range rings {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := tc.r

			two := r.FromInt(2)
			three := r.FromInt(3)

			// 2+3 = 5, 2*3 = 6, 3-2 = 1, -( -2 ) = 2.
			assert.True(t, r.Equal(r.Add(two, three), r.FromInt(5)))
			assert.True(t, r.Equal(r.Mul(two, three), r.FromInt(6)))
			assert.True(t, r.Equal(r.Sub(three, two), r.One()))
			assert.True(t, r.Equal(r.Neg(r.Neg(two)), two))

			// Zero behaves like zero.
			assert.True(t, r.IsZero(r.Zero()))
			assert.True(t, r.IsZero(r.Sub(two, two)))
			assert.False(t, r.IsZero(r.One()))

			// One behaves like one.
			assert.True(t, r.Equal(r.Mul(r.One(), three), three))
		})
	}
}

// TestRings_NegativeImages checks FromInt on negative arguments.
func TestRings_NegativeImages(t *testing.T) {
	t.Parallel()

	z := ring.Integers()
	assert.Equal(t, "-4", z.Format(z.FromInt(-4)))

	q := ring.Rationals()
	assert.Equal(t, "-4", q.Format(q.FromInt(-4)))

	m5, err := ring.Modular(5)
	require.NoError(t, err)
	// -4 ≡ 1 (mod 5).
	assert.True(t, m5.Equal(m5.FromInt(-4), m5.One()))
	assert.Equal(t, "1", m5.Format(m5.FromInt(-4)))
}

// TestModular_Validation checks the ErrBadModulus contract.
func TestModular_Validation(t *testing.T) {
	t.Parallel()

	for _, m := range []uint64{0, 1} {
		_, err := ring.Modular(m)
		assert.True(t, errors.Is(err, ring.ErrBadModulus), "Modular(%d) must reject", m)
	}

	r, err := ring.Modular(2)
	require.NoError(t, err)
	assert.Equal(t, "Ring of integers modulo 2", r.String())
}

// TestModular_LargeModulus exercises the overflow-safe add/mul paths.
func TestModular_LargeModulus(t *testing.T) {
	t.Parallel()

	const big = ^uint64(0) - 58 // a modulus close to 2^64
	r, err := ring.Modular(big)
	require.NoError(t, err)

	a := r.FromInt(-1) // big-1, the largest residue
	sum := r.Add(a, a) // 2*(big-1) mod big = big-2
	assert.True(t, r.Equal(sum, r.FromInt(-2)))

	prod := r.Mul(a, a) // (big-1)^2 mod big = 1
	assert.True(t, r.Equal(prod, r.One()))

	// Magnitudes beyond 2^64-big must still reduce into [0, big).
	c := r.FromInt(-100)
	assert.True(t, r.Equal(r.Add(c, r.FromInt(100)), r.Zero()))
	assert.Equal(t, "100", r.Format(r.FromInt(100)))
}

// TestRings_Identity checks singleton semantics and display names.
func TestRings_Identity(t *testing.T) {
	t.Parallel()

	assert.True(t, ring.Integers() == ring.Integers())
	assert.True(t, ring.Rationals() == ring.Rationals())
	assert.Equal(t, "Integer Ring", ring.Integers().String())
	assert.Equal(t, "Rational Field", ring.Rationals().String())

	m3a, err := ring.Modular(3)
	require.NoError(t, err)
	m3b, err := ring.Modular(3)
	require.NoError(t, err)
	assert.True(t, m3a == m3b, "equal moduli must compare as the same ring")
}

// TestRationals_Format checks canonical fraction rendering.
func TestRationals_Format(t *testing.T) {
	t.Parallel()

	q := ring.Rationals()

	// Integral values render without a denominator; products stay reduced.
	assert.Equal(t, "2", q.Format(q.Sub(q.FromInt(5), q.FromInt(3))))
	assert.Equal(t, "-6", q.Format(q.Mul(q.FromInt(2), q.FromInt(-3))))
}
