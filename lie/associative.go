// SPDX-License-Identifier: MIT
// Package: liealg/lie
//
// associative.go — the from-associative engine: a Lie algebra whose bracket
// is the commutator of an ambient matrix space's product.
//
// Contract:
//   - The generating set and the name sequence must have equal length; every
//     generator must be a non-nil matrix of the ambient space (same size and
//     ring), else ErrBadGenerators.
//   - Antisymmetry and Jacobi hold automatically for commutators, so no
//     verification step exists here.
//   - Generators are exposed as the space's immutable matrices; there is
//     nothing to defensively copy.

package lie

import (
	"fmt"

	"github.com/katalvlaran/liealg/matrix"
	"github.com/katalvlaran/liealg/ring"
)

// FromAssociative is a Lie algebra generated by matrices inside an ambient
// associative matrix space, with the commutator as the bracket.
type FromAssociative struct {
	r     ring.Ring
	space *matrix.Space
	gens  []*matrix.Matrix
	names []string
	index map[string]int
	name  string
}

// NewFromAssociative derives a Lie algebra from a generating set inside the
// ambient space. Names identify the generators in order.
func NewFromAssociative(r ring.Ring, space *matrix.Space, gens []*matrix.Matrix, names []string) (*FromAssociative, error) {
	const method = "NewFromAssociative"

	if r == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilRing)
	}
	if space == nil {
		return nil, fmt.Errorf("%s: nil space: %w", method, ErrBadGenerators)
	}
	if space.Ring() != r {
		return nil, fmt.Errorf("%s: space over %s, want %s: %w", method, space.Ring(), r, ErrBadGenerators)
	}
	if len(gens) == 0 {
		return nil, fmt.Errorf("%s: empty generating set: %w", method, ErrBadGenerators)
	}
	basis, err := validateNames(method, names)
	if err != nil {
		return nil, err
	}
	if len(basis) != len(gens) {
		return nil, fmt.Errorf("%s: %d names for %d generators: %w", method, len(basis), len(gens), ErrBadGenerators)
	}
	for i, g := range gens {
		if g == nil {
			return nil, fmt.Errorf("%s: nil generator %q: %w", method, basis[i], ErrBadGenerators)
		}
		if g.Space().Size() != space.Size() || g.Space().Ring() != r {
			return nil, fmt.Errorf("%s: generator %q outside the ambient space: %w", method, basis[i], ErrBadGenerators)
		}
	}

	L := &FromAssociative{
		r:     r,
		space: space,
		gens:  append([]*matrix.Matrix(nil), gens...),
		names: basis,
		index: make(map[string]int, len(basis)),
	}
	for i, name := range basis {
		L.index[name] = i
	}
	return L, nil
}

// Ring returns the coefficient ring.
func (L *FromAssociative) Ring() ring.Ring { return L.r }

// Space returns the ambient matrix space.
func (L *FromAssociative) Space() *matrix.Space { return L.space }

// NumGenerators returns the size of the generating set.
func (L *FromAssociative) NumGenerators() int { return len(L.gens) }

// GeneratorNames returns the ordered generator names (a copy).
func (L *FromAssociative) GeneratorNames() []string {
	out := make([]string, len(L.names))
	copy(out, L.names)
	return out
}

// Generator returns the i-th generator matrix.
func (L *FromAssociative) Generator(i int) (*matrix.Matrix, error) {
	if i < 0 || i >= len(L.gens) {
		return nil, fmt.Errorf("Generator(%d): %d generators: %w", i, len(L.gens), ErrUnknownGenerator)
	}
	return L.gens[i], nil
}

// GeneratorByName returns the generator matrix with the given name.
func (L *FromAssociative) GeneratorByName(name string) (*matrix.Matrix, error) {
	i, ok := L.index[name]
	if !ok {
		return nil, fmt.Errorf("GeneratorByName: %q: %w", name, ErrUnknownGenerator)
	}
	return L.gens[i], nil
}

// Bracket returns [a, b] = ab − ba in the ambient space.
func (L *FromAssociative) Bracket(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	return a.Commutator(b)
}

// GeneratorBracket returns the commutator of the i-th and j-th generators.
func (L *FromAssociative) GeneratorBracket(i, j int) (*matrix.Matrix, error) {
	a, err := L.Generator(i)
	if err != nil {
		return nil, err
	}
	b, err := L.Generator(j)
	if err != nil {
		return nil, err
	}
	return a.Commutator(b)
}

// Rename sets the display name.
func (L *FromAssociative) Rename(name string) { L.name = name }

// String returns the display name, or a generic description.
func (L *FromAssociative) String() string {
	if L.name != "" {
		return L.name
	}
	n := L.space.Size()
	return fmt.Sprintf("Lie algebra generated by (%s) in %dx%d matrices over %s", joinNames(L.names), n, n, L.r)
}
