// SPDX-License-Identifier: MIT
// Package: liealg/ring
//
// modular.go — the ring ℤ/mℤ of integers modulo m.
//
// Contract:
//   - m ≥ 2 (else ErrBadModulus).
//   - Elements are canonical residues in [0, m); every operation re-reduces.
//   - Multiplication is overflow-safe for any uint64 modulus (128-bit product
//     via math/bits before reduction).
//   - Two Modular rings are the same ring iff their moduli are equal; the
//     returned value is comparable, so r1 == r2 keeps working.

package ring

import (
	"fmt"
	"math/bits"
	"strconv"
)

// modularRing implements Ring over uint64 residues modulo m.
type modularRing struct {
	m uint64
}

// Modular returns the ring of integers modulo m, or ErrBadModulus if m < 2.
func Modular(m uint64) (Ring, error) {
	if m < 2 {
		return nil, ErrBadModulus
	}
	return modularRing{m: m}, nil
}

// asResidue coerces an Element into a canonical residue or panics on
// foreign elements.
func (r modularRing) asResidue(a Element) uint64 {
	u, ok := a.(uint64)
	if !ok {
		panic(fmt.Sprintf("ring: %T is not a residue modulo %d", a, r.m))
	}
	return u % r.m
}

func (r modularRing) Zero() Element { return uint64(0) }
func (r modularRing) One() Element  { return uint64(1) % r.m }

// FromInt reduces n into [0, m), mapping negatives to their positive
// residue. Reduction happens in uint64 so moduli above 2^63 stay exact.
func (r modularRing) FromInt(n int64) Element {
	if n >= 0 {
		return uint64(n) % r.m
	}
	// |n| without overflowing on MinInt64.
	mag := uint64(-(n + 1)) + 1
	rem := mag % r.m
	if rem == 0 {
		return uint64(0)
	}
	return r.m - rem
}

func (r modularRing) Add(a, b Element) Element {
	x, y := r.asResidue(a), r.asResidue(b)
	// (x+y) mod m without overflow: both operands are already < m ≤ 2^64-1,
	// so detect wraparound explicitly.
	s := x + y
	if s < x || s >= r.m {
		s -= r.m
	}
	return s
}

func (r modularRing) Neg(a Element) Element {
	x := r.asResidue(a)
	if x == 0 {
		return uint64(0)
	}
	return r.m - x
}

func (r modularRing) Sub(a, b Element) Element { return r.Add(a, r.Neg(b)) }

func (r modularRing) Mul(a, b Element) Element {
	hi, lo := bits.Mul64(r.asResidue(a), r.asResidue(b))
	_, rem := bits.Div64(hi, lo, r.m)
	return rem
}

func (r modularRing) IsZero(a Element) bool { return r.asResidue(a) == 0 }

func (r modularRing) Equal(a, b Element) bool { return r.asResidue(a) == r.asResidue(b) }

func (r modularRing) Format(a Element) string {
	return strconv.FormatUint(r.asResidue(a), 10)
}

func (r modularRing) String() string {
	return fmt.Sprintf("Ring of integers modulo %d", r.m)
}
