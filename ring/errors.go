// SPDX-License-Identifier: MIT
// Package ring: sentinel error set.
// All constructors return these sentinels; callers branch with errors.Is.

package ring

import "errors"

// ErrBadModulus is returned by Modular when the modulus is smaller than 2:
// m = 0 has no residues and m = 1 is the zero ring, which has no unit
// distinct from zero and is rejected on purpose.
var ErrBadModulus = errors.New("ring: modulus must be at least 2")
