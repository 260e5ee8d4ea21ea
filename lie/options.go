// SPDX-License-Identifier: MIT
// Package: liealg/lie
//
// options.go — functional options for structure-algebra construction.

package lie

// structureConfig aggregates construction knobs for NewStructureAlgebra.
type structureConfig struct {
	// verify runs VerifyJacobi as the last construction step.
	verify bool
}

// StructureOption customizes structure-algebra construction.
type StructureOption func(*structureConfig)

// WithVerify makes NewStructureAlgebra fail with ErrJacobiViolation when the
// supplied table is not a genuine Lie bracket. Off by default: the catalog
// emits closed-form tables and mirrors the original behavior of trusting
// them, but callers constructing their own tables should turn this on.
func WithVerify() StructureOption {
	return func(c *structureConfig) {
		c.verify = true
	}
}

// newStructureConfig resolves options in order (last wins).
func newStructureConfig(opts ...StructureOption) structureConfig {
	cfg := structureConfig{verify: false}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
