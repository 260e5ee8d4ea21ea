// SPDX-License-Identifier: MIT
// Package: liealg/lie
//
// element.go — elements of a structure-coefficient algebra and the bilinear
// bracket on them.
//
// Contract:
//   - Elements are immutable values tied to their algebra; arithmetic across
//     two algebra instances is ErrMixedAlgebras.
//   - Bracket extends the basis table bilinearly; antisymmetry on elements
//     follows from the normalized table, no special-casing needed.

package lie

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/liealg/ring"
)

// Element is a linear combination of basis generators of one algebra.
type Element struct {
	alg    *StructureAlgebra
	coeffs []ring.Element
}

// Zero returns the zero element.
func (L *StructureAlgebra) Zero() Element {
	return Element{alg: L, coeffs: zeroVec(L.r, len(L.names))}
}

// Generator returns the basis element with the given name.
func (L *StructureAlgebra) Generator(name string) (Element, error) {
	i, ok := L.index[name]
	if !ok {
		return Element{}, fmt.Errorf("Generator: %q: %w", name, ErrUnknownGenerator)
	}
	e := L.Zero()
	e.coeffs[i] = L.r.One()
	return e, nil
}

// NewElement builds Σ coeffs[name]·name. Unknown names are
// ErrUnknownGenerator; nil coefficients are ErrBadCoefficient.
func (L *StructureAlgebra) NewElement(coeffs map[string]ring.Element) (Element, error) {
	const method = "NewElement"

	e := L.Zero()
	for name, c := range coeffs {
		i, ok := L.index[name]
		if !ok {
			return Element{}, fmt.Errorf("%s: %q: %w", method, name, ErrUnknownGenerator)
		}
		if c == nil {
			return Element{}, fmt.Errorf("%s: %q: %w", method, name, ErrBadCoefficient)
		}
		e.coeffs[i] = c
	}
	return e, nil
}

// Coefficient returns the coefficient of the named generator.
func (e Element) Coefficient(name string) (ring.Element, error) {
	i, ok := e.alg.index[name]
	if !ok {
		return nil, fmt.Errorf("Coefficient: %q: %w", name, ErrUnknownGenerator)
	}
	return e.coeffs[i], nil
}

// sameAlgebra validates that o lives in the same algebra instance as e.
func (e Element) sameAlgebra(method string, o Element) error {
	if e.alg != o.alg {
		return fmt.Errorf("%s: %w", method, ErrMixedAlgebras)
	}
	return nil
}

// Add returns e+o.
func (e Element) Add(o Element) (Element, error) {
	if err := e.sameAlgebra("Add", o); err != nil {
		return Element{}, err
	}
	out := e.alg.Zero()
	for k := range out.coeffs {
		out.coeffs[k] = e.alg.r.Add(e.coeffs[k], o.coeffs[k])
	}
	return out, nil
}

// Neg returns −e.
func (e Element) Neg() Element {
	out := e.alg.Zero()
	for k, c := range e.coeffs {
		out.coeffs[k] = e.alg.r.Neg(c)
	}
	return out
}

// Scale returns c·e. A nil scalar is ErrBadCoefficient.
func (e Element) Scale(c ring.Element) (Element, error) {
	if c == nil {
		return Element{}, fmt.Errorf("Scale: %w", ErrBadCoefficient)
	}
	out := e.alg.Zero()
	for k, v := range e.coeffs {
		out.coeffs[k] = e.alg.r.Mul(c, v)
	}
	return out, nil
}

// Bracket returns [e, o], extending the structure table bilinearly.
func (e Element) Bracket(o Element) (Element, error) {
	if err := e.sameAlgebra("Bracket", o); err != nil {
		return Element{}, err
	}
	r := e.alg.r
	out := e.alg.Zero()
	for i, a := range e.coeffs {
		if r.IsZero(a) {
			continue
		}
		partial := e.alg.bracketWithVec(i, o.coeffs)
		for k, c := range partial {
			if !r.IsZero(c) {
				out.coeffs[k] = r.Add(out.coeffs[k], r.Mul(a, c))
			}
		}
	}
	return out, nil
}

// IsZero reports whether e is the zero element.
func (e Element) IsZero() bool { return allZero(e.alg.r, e.coeffs) }

// Equal reports equality; elements of different algebras are never equal.
func (e Element) Equal(o Element) bool {
	if e.alg != o.alg {
		return false
	}
	for k := range e.coeffs {
		if !e.alg.r.Equal(e.coeffs[k], o.coeffs[k]) {
			return false
		}
	}
	return true
}

// String renders the combination in basis order: "X - 2*Z"; zero is "0".
func (e Element) String() string {
	var parts []string
	for k, c := range e.coeffs {
		if e.alg.r.IsZero(c) {
			continue
		}
		cs := e.alg.r.Format(c)
		switch cs {
		case "1":
			parts = append(parts, e.alg.names[k])
		case "-1":
			parts = append(parts, "-"+e.alg.names[k])
		default:
			parts = append(parts, cs+"*"+e.alg.names[k])
		}
	}
	if len(parts) == 0 {
		return "0"
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if strings.HasPrefix(p, "-") {
			b.WriteString(" - ")
			b.WriteString(p[1:])
		} else {
			b.WriteString(" + ")
			b.WriteString(p)
		}
	}
	return b.String()
}
