// SPDX-License-Identifier: MIT
// Package: liealg/builder
//
// impl_abelian.go — abelian Lie algebras on arbitrary generating sets.
//
// Contract:
//   - Names are mandatory and arrive as an explicit sequence or a single
//     delimited string: Abelian(R, "x", "y", "z") ≡ Abelian(R, "x, y, z").
//   - Every bracket of the result is identically zero.

package builder

import (
	"fmt"

	"github.com/katalvlaran/liealg/lie"
	"github.com/katalvlaran/liealg/ring"
)

// Abelian builds the abelian Lie algebra generated by the given names.
func Abelian(r ring.Ring, names ...string) (*lie.StructureAlgebra, error) {
	const method = MethodAbelian

	if r == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilRing)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: no generator names: %w", method, ErrBadNames)
	}
	basis, err := normalizeNames(method, names, anyArity, nil)
	if err != nil {
		return nil, err
	}

	L, err := lie.NewAbelian(r, basis)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return L, nil
}
