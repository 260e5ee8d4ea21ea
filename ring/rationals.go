// SPDX-License-Identifier: MIT
// Package: liealg/ring
//
// rationals.go — the field of rationals ℚ, backed by math/big.Rat.
//
// Contract:
//   - Exact arithmetic; elements are always stored in lowest terms (big.Rat
//     normalizes on every operation), so Format is canonical.
//   - Rationals() returns a process-wide singleton.

package ring

import (
	"fmt"
	"math/big"
)

// rationalRing implements Ring over *big.Rat elements.
type rationalRing struct{}

var theRationals Ring = rationalRing{}

// Rationals returns the field of rational numbers ℚ.
func Rationals() Ring { return theRationals }

// asRat coerces an Element into *big.Rat or panics on foreign elements.
func asRat(a Element) *big.Rat {
	q, ok := a.(*big.Rat)
	if !ok {
		panic(fmt.Sprintf("ring: %T is not a Rational Field element", a))
	}
	return q
}

func (rationalRing) Zero() Element { return new(big.Rat) }
func (rationalRing) One() Element  { return big.NewRat(1, 1) }

func (rationalRing) FromInt(n int64) Element { return big.NewRat(n, 1) }

func (rationalRing) Add(a, b Element) Element {
	return new(big.Rat).Add(asRat(a), asRat(b))
}

func (rationalRing) Neg(a Element) Element {
	return new(big.Rat).Neg(asRat(a))
}

func (rationalRing) Sub(a, b Element) Element {
	return new(big.Rat).Sub(asRat(a), asRat(b))
}

func (rationalRing) Mul(a, b Element) Element {
	return new(big.Rat).Mul(asRat(a), asRat(b))
}

func (rationalRing) IsZero(a Element) bool { return asRat(a).Sign() == 0 }

func (rationalRing) Equal(a, b Element) bool { return asRat(a).Cmp(asRat(b)) == 0 }

// Format prints integers without a denominator ("2") and proper fractions
// with one ("-1/3"); big.Rat.RatString already follows that convention.
func (rationalRing) Format(a Element) string { return asRat(a).RatString() }

func (rationalRing) String() string { return "Rational Field" }
