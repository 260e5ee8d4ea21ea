// SPDX-License-Identifier: MIT
// Package: liealg/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all factory knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   - names       = nil  (factory supplies its family default)
//   - deformation = nil  (unset; rank 2 rejects with ErrMissingDeformation)
//   - rep         = ""   (factory supplies its family default)

package builder

import (
	"github.com/katalvlaran/liealg/ring"
)

// builderConfig aggregates all knobs used by factories.
// It is passed by VALUE inside the package (immutable to callers).
type builderConfig struct {
	// Raw name override; normalized (split/trim/validate) per factory.
	names []string
	// Deformation parameter for families that take one; nil means unset.
	deformation ring.Element
	// Representation selector; empty means the family default.
	rep Representation
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order. Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// repOrDefault resolves the representation selector against the family
// default, keeping factory code branch-light.
func (c builderConfig) repOrDefault(def Representation) Representation {
	if c.rep == "" {
		return def
	}
	return c.rep
}
