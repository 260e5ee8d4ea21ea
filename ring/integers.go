// SPDX-License-Identifier: MIT
// Package: liealg/ring
//
// integers.go — the ring of integers ℤ, backed by math/big.Int.
//
// Contract:
//   - Exact arbitrary-precision arithmetic; no overflow.
//   - Elements are *big.Int values treated as immutable after creation.
//   - Integers() returns a process-wide singleton, so == identifies the ring.

package ring

import (
	"fmt"
	"math/big"
)

// integerRing implements Ring over *big.Int elements.
type integerRing struct{}

// theIntegers is the shared singleton; see doc.go on ring identity.
var theIntegers Ring = integerRing{}

// Integers returns the ring of integers ℤ.
func Integers() Ring { return theIntegers }

// asInt coerces an Element into *big.Int or panics on foreign elements
// (programmer error: mixing rings is never valid).
func asInt(a Element) *big.Int {
	n, ok := a.(*big.Int)
	if !ok {
		panic(fmt.Sprintf("ring: %T is not an Integer Ring element", a))
	}
	return n
}

func (integerRing) Zero() Element         { return big.NewInt(0) }
func (integerRing) One() Element          { return big.NewInt(1) }
func (integerRing) FromInt(n int64) Element { return big.NewInt(n) }

func (integerRing) Add(a, b Element) Element {
	return new(big.Int).Add(asInt(a), asInt(b))
}

func (integerRing) Neg(a Element) Element {
	return new(big.Int).Neg(asInt(a))
}

func (integerRing) Sub(a, b Element) Element {
	return new(big.Int).Sub(asInt(a), asInt(b))
}

func (integerRing) Mul(a, b Element) Element {
	return new(big.Int).Mul(asInt(a), asInt(b))
}

func (integerRing) IsZero(a Element) bool { return asInt(a).Sign() == 0 }

func (integerRing) Equal(a, b Element) bool { return asInt(a).Cmp(asInt(b)) == 0 }

func (integerRing) Format(a Element) string { return asInt(a).String() }

func (integerRing) String() string { return "Integer Ring" }
