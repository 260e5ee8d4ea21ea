// SPDX-License-Identifier: MIT
// Package: liealg/builder
//
// options.go — functional options for the factory catalog.
//
// Contract (strict):
//   - Options are functional (type Option func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs
//     (nil element, zero arguments); factories themselves never panic and
//     surface user-level problems as sentinel errors instead.
//   - No hidden globals; everything flows through builderConfig.

package builder

import (
	"github.com/katalvlaran/liealg/ring"
)

// Option customizes a factory call by mutating a builderConfig instance
// before construction begins.
type Option func(*builderConfig)

// WithNames overrides the default generator names of a family. Accepts an
// explicit sequence — WithNames("X", "Y", "Z") — or a single delimited
// string — WithNames("X,Y,Z"); both normalize identically. Name count and
// distinctness are validated by the factory (ErrBadNames), since the
// required arity depends on the family.
// Panics on zero arguments (programmer error).
func WithNames(names ...string) Option {
	if len(names) == 0 {
		// Fail fast: an empty override can never be meant.
		panic("builder: WithNames() without names")
	}
	return func(c *builderConfig) {
		c.names = names
	}
}

// WithDeformation supplies the deformation parameter required by rank 2 of
// the 3-dimensional family. Zero selects the degenerate case.
// Panics on nil (programmer error); absence is expressed by not passing
// the option at all.
func WithDeformation(a ring.Element) Option {
	if a == nil {
		panic("builder: WithDeformation(nil)")
	}
	return func(c *builderConfig) {
		c.deformation = a
	}
}

// WithRepresentation selects the realization of a family that has more than
// one (SL, Heisenberg, AffineTransformationsLine). Unrecognized selectors
// surface as ErrUnknownRepresentation from the factory, not here: the set
// of valid selectors is per-family.
// Panics on the empty string (programmer error).
func WithRepresentation(rep Representation) Option {
	if rep == "" {
		panic("builder: WithRepresentation(\"\")")
	}
	return func(c *builderConfig) {
		c.rep = rep
	}
}
