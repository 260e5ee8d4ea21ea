// SPDX-License-Identifier: MIT
// Package: liealg/ring
//
// ring.go — the Ring interface and the opaque Element type.
//
// Contract:
//   - All methods are total for elements of the receiver ring.
//   - Methods never mutate their arguments and never return an argument.
//   - Format produces a canonical, stable string per element ("2", "-1/3").
//   - String produces the ring's display name ("Rational Field").

package ring

// Element is an opaque ring element. It is created by a Ring (Zero, One,
// FromInt) and handled only through that same Ring's methods.
type Element interface{}

// Ring is the minimal coefficient-ring surface the algebra engines consume:
// a commutative ring with a distinguished zero and unit.
type Ring interface {
	// Zero returns the additive identity.
	Zero() Element

	// One returns the multiplicative identity.
	One() Element

	// FromInt returns the canonical image of n in the ring.
	FromInt(n int64) Element

	// Add returns a+b.
	Add(a, b Element) Element

	// Neg returns -a.
	Neg(a Element) Element

	// Sub returns a-b.
	Sub(a, b Element) Element

	// Mul returns a*b.
	Mul(a, b Element) Element

	// IsZero reports whether a is the additive identity.
	IsZero(a Element) bool

	// Equal reports whether a and b are the same ring element.
	Equal(a, b Element) bool

	// Format renders a as a canonical, stable string.
	Format(a Element) string

	// String returns the ring's human-readable display name.
	String() string
}
