// SPDX-License-Identifier: MIT
// Package: liealg/builder
//
// impl_vector_fields.go — the Witt algebra of regular vector fields.

package builder

import (
	"fmt"

	"github.com/katalvlaran/liealg/lie"
	"github.com/katalvlaran/liealg/ring"
)

// RegularVectorFields builds the Lie algebra of regular vector fields on
// ℂ^×: basis d_i for i ∈ ℤ with [d_i, d_j] = (j−i) d_{i+j}.
func RegularVectorFields(r ring.Ring) (*lie.RegularVectorFields, error) {
	const method = MethodRegularVectorFields

	if r == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilRing)
	}
	L, err := lie.NewRegularVectorFields(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return L, nil
}
