// SPDX-License-Identifier: MIT
// Package: liealg/builder
//
// names.go — generator-name normalization shared by all factories.
//
// Contract:
//   - Input may mix explicit entries and comma-delimited strings; every
//     entry is split on "," and whitespace-trimmed.
//   - After normalization: no empty tokens, no duplicates, and — when the
//     family fixes an arity — exactly that many names (else ErrBadNames).
//   - nil input resolves to the family default (copied, never aliased).

package builder

import (
	"fmt"
	"strings"
)

// anyArity disables the arity check for families with a free generator count.
const anyArity = 0

// normalizeNames resolves a raw name override into the canonical ordered
// form. want is the family's fixed generator count, or anyArity.
func normalizeNames(method string, raw []string, want int, defaults []string) ([]string, error) {
	if raw == nil {
		out := make([]string, len(defaults))
		copy(out, defaults)
		return out, nil
	}

	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, token := range strings.Split(entry, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				return nil, fmt.Errorf("%s: empty generator name: %w", method, ErrBadNames)
			}
			out = append(out, token)
		}
	}

	seen := make(map[string]struct{}, len(out))
	for _, name := range out {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%s: duplicate generator name %q: %w", method, name, ErrBadNames)
		}
		seen[name] = struct{}{}
	}

	if want != anyArity && len(out) != want {
		return nil, fmt.Errorf("%s: %d generator names, want %d: %w", method, len(out), want, ErrBadNames)
	}
	return out, nil
}
