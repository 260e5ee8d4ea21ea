// SPDX-License-Identifier: MIT
// Package: liealg/matrix
//
// options.go — functional options for space construction.
//
// Contract (strict):
//   - Options are functional (type Option func(*spaceConfig)).
//   - Option constructors validate and panic on meaningless inputs; space
//     constructors themselves return sentinel errors only.
//   - No hidden globals; everything flows through spaceConfig.

package matrix

// spaceConfig aggregates construction knobs for NewSpace.
type spaceConfig struct {
	// sparse selects map-backed storage for new matrices of the space.
	sparse bool
}

// Option customizes a matrix space before construction begins.
type Option func(*spaceConfig)

// WithSparse switches the space to the sparse entry representation: matrices
// store only nonzero entries. Preferred for matrix-unit generating sets
// (triangular and Heisenberg realizations) where almost all cells are zero.
func WithSparse() Option {
	return func(c *spaceConfig) {
		c.sparse = true
	}
}

// newSpaceConfig resolves options in order with deterministic defaults
// (dense storage). Complexity: O(len(opts)).
func newSpaceConfig(opts ...Option) spaceConfig {
	cfg := spaceConfig{sparse: false}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
