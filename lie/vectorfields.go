// SPDX-License-Identifier: MIT
// Package: liealg/lie
//
// vectorfields.go — the Witt algebra of regular vector fields on ℂ^×.
//
// Contract:
//   - Basis d_i for every integer i (negative included); the bracket rule is
//     [d_i, d_j] = (j − i) d_{i+j}.
//   - Generator labels are "d<i>": "d0", "d3", "d-2".

package lie

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/liealg/ring"
)

// RegularVectorFields is the Lie algebra of regular vector fields on the
// punctured complex line, presented as a bracket rule over the unbounded
// basis {d_i : i ∈ ℤ}.
type RegularVectorFields struct {
	r    ring.Ring
	name string
}

// NewRegularVectorFields builds the algebra of regular vector fields over r.
func NewRegularVectorFields(r ring.Ring) (*RegularVectorFields, error) {
	if r == nil {
		return nil, fmt.Errorf("NewRegularVectorFields: %w", ErrNilRing)
	}
	return &RegularVectorFields{
		r:    r,
		name: fmt.Sprintf("The Lie algebra of regular vector fields over %s", r),
	}, nil
}

// Ring returns the coefficient ring.
func (L *RegularVectorFields) Ring() ring.Ring { return L.r }

// Rename sets the display name.
func (L *RegularVectorFields) Rename(name string) { L.name = name }

// String returns the display name.
func (L *RegularVectorFields) String() string { return L.name }

// parseWittGen parses a "d<i>" label into its integer degree.
func parseWittGen(label string) (int, error) {
	if len(label) >= 2 && label[0] == 'd' && !strings.HasPrefix(label[1:], "+") {
		if i, err := strconv.Atoi(label[1:]); err == nil {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", label, ErrUnknownGenerator)
}

// BracketGenerators returns [d_i, d_j] = (j−i)·d_{i+j} as a sparse
// label→coefficient map; the empty map is the zero element.
func (L *RegularVectorFields) BracketGenerators(a, b string) (map[string]ring.Element, error) {
	const method = "BracketGenerators"

	i, err := parseWittGen(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	j, err := parseWittGen(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	out := make(map[string]ring.Element)
	c := L.r.FromInt(int64(j) - int64(i))
	if !L.r.IsZero(c) {
		out[fmt.Sprintf("d%d", i+j)] = c
	}
	return out, nil
}
