// SPDX-License-Identifier: MIT
// Package: liealg/lie
//
// heisenberg.go — the three Heisenberg realizations: structure coefficients,
// strictly-upper-triangular matrices, and the infinite-rank rule-based form.
//
// Contract:
//   - Rank n ≥ 0 (else ErrBadRank). Basis order is p1..pn, q1..qn, z; the
//     only nonzero basis brackets are [p_i, q_i] = z.
//   - The matrix realization lives in the sparse (n+2)×(n+2) space with
//     p_i = E(0,i), q_i = E(i,n+1), z = E(0,n+1); direct computation gives
//     [p_i, q_j] = δ_ij z, so both finite realizations share one
//     isomorphism type under the shared generator names.
//   - The infinite variant exposes the bracket as a rule on generator
//     labels "p<i>", "q<i>" (i ≥ 1) and the central "z".

package lie

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/liealg/matrix"
	"github.com/katalvlaran/liealg/ring"
)

// heisenbergNames returns the ordered basis p1..pn, q1..qn, z.
func heisenbergNames(n int) []string {
	names := make([]string, 0, 2*n+1)
	for i := 1; i <= n; i++ {
		names = append(names, fmt.Sprintf("p%d", i))
	}
	for i := 1; i <= n; i++ {
		names = append(names, fmt.Sprintf("q%d", i))
	}
	return append(names, "z")
}

// NewHeisenberg builds the rank-n Heisenberg algebra with structure
// coefficients: [p_i, q_i] = z, all other basis brackets zero. Rank 0 is
// the one-dimensional algebra spanned by the center alone.
func NewHeisenberg(r ring.Ring, n int) (*StructureAlgebra, error) {
	const method = "NewHeisenberg"

	if r == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilRing)
	}
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", method, n, ErrBadRank)
	}

	coeffs := make(map[BracketKey]map[string]ring.Element, n)
	for i := 1; i <= n; i++ {
		key := BracketKey{Left: fmt.Sprintf("p%d", i), Right: fmt.Sprintf("q%d", i)}
		coeffs[key] = map[string]ring.Element{"z": r.One()}
	}
	L, err := NewStructureAlgebra(r, coeffs, heisenbergNames(n))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	L.Rename(fmt.Sprintf("Heisenberg algebra of rank %d over %s", n, r))
	return L, nil
}

// NewHeisenbergMatrix builds the rank-n Heisenberg algebra as matrices in
// the sparse (n+2)×(n+2) space.
func NewHeisenbergMatrix(r ring.Ring, n int) (*FromAssociative, error) {
	const method = "NewHeisenbergMatrix"

	if r == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilRing)
	}
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", method, n, ErrBadRank)
	}

	space, err := matrix.NewSpace(r, n+2, matrix.WithSparse())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	gens := make([]*matrix.Matrix, 0, 2*n+1)
	for i := 1; i <= n; i++ {
		p, uerr := space.Unit(0, i)
		if uerr != nil {
			return nil, fmt.Errorf("%s: %w", method, uerr)
		}
		gens = append(gens, p)
	}
	for i := 1; i <= n; i++ {
		q, uerr := space.Unit(i, n+1)
		if uerr != nil {
			return nil, fmt.Errorf("%s: %w", method, uerr)
		}
		gens = append(gens, q)
	}
	z, uerr := space.Unit(0, n+1)
	if uerr != nil {
		return nil, fmt.Errorf("%s: %w", method, uerr)
	}
	gens = append(gens, z)

	L, err := NewFromAssociative(r, space, gens, heisenbergNames(n))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	L.Rename(fmt.Sprintf("Heisenberg algebra of rank %d over %s as a matrix Lie algebra", n, r))
	return L, nil
}

// InfiniteHeisenberg is the Heisenberg algebra of infinite rank: countably
// many pairs p_i, q_i (i ≥ 1) around a single center z, with the bracket
// given as a rule on generator labels.
type InfiniteHeisenberg struct {
	r    ring.Ring
	name string
}

// NewInfiniteHeisenberg builds the infinite-rank Heisenberg algebra over r.
func NewInfiniteHeisenberg(r ring.Ring) (*InfiniteHeisenberg, error) {
	if r == nil {
		return nil, fmt.Errorf("NewInfiniteHeisenberg: %w", ErrNilRing)
	}
	return &InfiniteHeisenberg{
		r:    r,
		name: fmt.Sprintf("Infinite Heisenberg algebra over %s", r),
	}, nil
}

// Ring returns the coefficient ring.
func (L *InfiniteHeisenberg) Ring() ring.Ring { return L.r }

// Rename sets the display name.
func (L *InfiniteHeisenberg) Rename(name string) { L.name = name }

// String returns the display name.
func (L *InfiniteHeisenberg) String() string { return L.name }

// hGen is a parsed infinite-Heisenberg generator label.
type hGen struct {
	kind  byte // 'p', 'q' or 'z'
	index int  // ≥ 1 for p/q, unused for z
}

// parseHeisenbergGen parses "p<i>", "q<i>" (i ≥ 1) or "z".
func parseHeisenbergGen(label string) (hGen, error) {
	if label == "z" {
		return hGen{kind: 'z'}, nil
	}
	if len(label) >= 2 && (label[0] == 'p' || label[0] == 'q') {
		i, err := strconv.Atoi(label[1:])
		if err == nil && i >= 1 && !strings.HasPrefix(label[1:], "+") {
			return hGen{kind: label[0], index: i}, nil
		}
	}
	return hGen{}, fmt.Errorf("%q: %w", label, ErrUnknownGenerator)
}

// BracketGenerators returns [a, b] for two generator labels, as a sparse
// label→coefficient map. The only nonzero values are [p_i, q_i] = z and its
// negative; the empty map is the zero element.
func (L *InfiniteHeisenberg) BracketGenerators(a, b string) (map[string]ring.Element, error) {
	const method = "BracketGenerators"

	ga, err := parseHeisenbergGen(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	gb, err := parseHeisenbergGen(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	out := make(map[string]ring.Element)
	switch {
	case ga.kind == 'p' && gb.kind == 'q' && ga.index == gb.index:
		out["z"] = L.r.One()
	case ga.kind == 'q' && gb.kind == 'p' && ga.index == gb.index:
		out["z"] = L.r.Neg(L.r.One())
	}
	return out, nil
}
