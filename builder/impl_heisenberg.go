// SPDX-License-Identifier: MIT
// Package: liealg/builder
//
// impl_heisenberg.go — the Heisenberg family.
//
// Contract:
//   - Heisenberg(r, Infinity) returns the dedicated infinite-rank variant;
//     the representation selector does not apply there and is ignored, the
//     infinity check deliberately coming first.
//   - Finite rank n ≥ 0: RepStructure (default) builds the
//     structure-coefficient realization, RepMatrix the (n+2)×(n+2)
//     strictly-upper-triangular one. Both satisfy [p_i, q_j] = δ_ij z under
//     the shared generator names, so they present one isomorphism type.
//   - Negative finite rank is ErrUnsupportedRank; an unrecognized selector
//     is ErrUnknownRepresentation.

package builder

import (
	"fmt"

	"github.com/katalvlaran/liealg/lie"
	"github.com/katalvlaran/liealg/ring"
)

// Heisenberg builds the rank-n Heisenberg algebra in the chosen
// representation, or the infinite-rank variant for rank Infinity.
func Heisenberg(r ring.Ring, rank int, opts ...Option) (lie.Algebra, error) {
	const method = MethodHeisenberg

	if r == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilRing)
	}
	// The infinity check precedes the negative-rank check: Infinity is a
	// negative sentinel and must never surface as ErrUnsupportedRank.
	if rank == Infinity {
		L, err := lie.NewInfiniteHeisenberg(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		return L, nil
	}
	if rank < 0 {
		return nil, fmt.Errorf("%s: rank %d: %w", method, rank, ErrUnsupportedRank)
	}

	cfg := newBuilderConfig(opts...)
	switch cfg.repOrDefault(RepStructure) {
	case RepStructure:
		L, err := lie.NewHeisenberg(r, rank)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		return L, nil

	case RepMatrix:
		L, err := lie.NewHeisenbergMatrix(r, rank)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		return L, nil
	}

	return nil, fmt.Errorf("%s: %q: %w", method, cfg.rep, ErrUnknownRepresentation)
}
