// SPDX-License-Identifier: MIT
// Package: liealg/lie
//
// types.go — shared domain types: the Algebra interface, bracket keys,
// display terms, and basis-name validation.

package lie

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/liealg/ring"
)

// Algebra is the behavior every construction in this module shares,
// regardless of realization (structure coefficients, matrix commutators,
// or rule-based infinite bases). Factories that switch realizations return
// this interface; fixed-realization factories return concrete types.
type Algebra interface {
	// Ring returns the coefficient ring of the algebra.
	Ring() ring.Ring

	// String returns the display name ("sl2 over Rational Field").
	String() string

	// Rename replaces the display name. It is the only mutation an algebra
	// permits after construction.
	Rename(name string)
}

// BracketKey identifies the bracket [Left, Right] of two basis generators.
// In canonical (normalized) form Left precedes Right in basis order.
type BracketKey struct {
	Left  string
	Right string
}

// String renders the key the way brackets are written: "[X, Y]".
func (k BracketKey) String() string {
	return fmt.Sprintf("[%s, %s]", k.Left, k.Right)
}

// Term is one summand of a bracket expansion: Coeff·Generator.
type Term struct {
	Generator string
	Coeff     ring.Element
}

// validateNames checks a basis-name sequence: non-empty, no empty names,
// no duplicates. Returns a defensive copy so callers cannot mutate the
// algebra's basis afterwards.
func validateNames(method string, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: empty basis: %w", method, ErrBadBasis)
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%s: empty name at index %d: %w", method, i, ErrBadBasis)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%s: duplicate name %q: %w", method, name, ErrBadBasis)
		}
		seen[name] = struct{}{}
		out[i] = name
	}
	return out, nil
}

// joinNames renders a basis for display: "X, Y, Z".
func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
