// SPDX-License-Identifier: MIT
// Package: liealg/lie
//
// structure.go — the structure-coefficient engine.
//
// Contract:
//   - NewStructureAlgebra(r, coeffs, names) normalizes every key into basis
//     order: a key (e_j, e_i) with i before j is folded into (e_i, e_j) with
//     negated coefficients, which is exactly the antisymmetry relation.
//     Supplying both orientations of one pair is ErrDuplicateBracket.
//   - Zero rows and zero terms are dropped; the stored table is canonical
//     and StructureCoefficients reads it back ordered by basis position.
//   - VerifyJacobi checks [e_i,[e_j,e_k]] + [e_j,[e_k,e_i]] + [e_k,[e_i,e_j]]
//     over all i<j<k; WithVerify runs it during construction.
//
// Complexity (n = dimension, m = table entries):
//   - Construction: O(m·n). VerifyJacobi: O(n⁴) worst case — fine for the
//     low-dimensional catalog this engine serves.
//   - StructureCoefficients: O(m·n).

package lie

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/liealg/ring"
)

// pairKey is an ordered basis-index pair with i < j, the canonical key of
// the internal table.
type pairKey struct {
	i int
	j int
}

// StructureAlgebra is a Lie algebra presented by structure coefficients
// over a fixed ordered basis. Immutable after construction except Rename.
type StructureAlgebra struct {
	r     ring.Ring
	names []string
	index map[string]int
	// table maps i<j pairs to a dense coefficient row of length len(names).
	// Rows are non-nil and contain at least one nonzero entry.
	table map[pairKey][]ring.Element
	name  string
}

// NewStructureAlgebra builds a Lie algebra from a bracket table. The coeffs
// argument maps a basis pair to the expansion of its bracket: coefficients
// keyed by generator name. Keys in either orientation are accepted and
// normalized; see the file contract for the full validation rules.
func NewStructureAlgebra(r ring.Ring, coeffs map[BracketKey]map[string]ring.Element, names []string, opts ...StructureOption) (*StructureAlgebra, error) {
	const method = "NewStructureAlgebra"

	if r == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilRing)
	}
	basis, err := validateNames(method, names)
	if err != nil {
		return nil, err
	}

	L := &StructureAlgebra{
		r:     r,
		names: basis,
		index: make(map[string]int, len(basis)),
		table: make(map[pairKey][]ring.Element, len(coeffs)),
	}
	for i, name := range basis {
		L.index[name] = i
	}

	// Duplicate detection runs against every folded key, not the stored
	// table: zero rows are dropped from the table but still claim their
	// pair, so the check cannot depend on map iteration order.
	seen := make(map[pairKey]struct{}, len(coeffs))
	for key, row := range coeffs {
		li, ok := L.index[key.Left]
		if !ok {
			return nil, fmt.Errorf("%s: %s: %q: %w", method, key, key.Left, ErrUnknownGenerator)
		}
		rj, ok := L.index[key.Right]
		if !ok {
			return nil, fmt.Errorf("%s: %s: %q: %w", method, key, key.Right, ErrUnknownGenerator)
		}

		vec, err := L.expandRow(method, key, row)
		if err != nil {
			return nil, err
		}

		// [e, e] must vanish; a nonzero row here cannot be normalized away.
		if li == rj {
			if !allZero(r, vec) {
				return nil, fmt.Errorf("%s: %s: %w", method, key, ErrSelfBracket)
			}
			continue
		}

		// Fold into basis order, negating when the key arrived reversed.
		pk := pairKey{i: li, j: rj}
		if li > rj {
			pk = pairKey{i: rj, j: li}
			for k, c := range vec {
				vec[k] = r.Neg(c)
			}
		}
		if _, dup := seen[pk]; dup {
			return nil, fmt.Errorf("%s: %s: %w", method, key, ErrDuplicateBracket)
		}
		seen[pk] = struct{}{}
		if !allZero(r, vec) {
			L.table[pk] = vec
		}
	}

	if cfg := newStructureConfig(opts...); cfg.verify {
		if err := L.VerifyJacobi(); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}
	return L, nil
}

// NewAbelian builds the abelian Lie algebra on the given generators: every
// bracket is identically zero.
func NewAbelian(r ring.Ring, names []string) (*StructureAlgebra, error) {
	const method = "NewAbelian"

	if r == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilRing)
	}
	basis, err := validateNames(method, names)
	if err != nil {
		return nil, err
	}

	L := &StructureAlgebra{
		r:     r,
		names: basis,
		index: make(map[string]int, len(basis)),
		table: make(map[pairKey][]ring.Element),
		name:  fmt.Sprintf("Abelian Lie algebra on %d generators (%s) over %s", len(basis), joinNames(basis), r),
	}
	for i, name := range basis {
		L.index[name] = i
	}
	return L, nil
}

// expandRow converts a name-keyed coefficient map into a dense row.
func (L *StructureAlgebra) expandRow(method string, key BracketKey, row map[string]ring.Element) ([]ring.Element, error) {
	vec := make([]ring.Element, len(L.names))
	for k := range vec {
		vec[k] = L.r.Zero()
	}
	for gname, c := range row {
		k, ok := L.index[gname]
		if !ok {
			return nil, fmt.Errorf("%s: %s: %q: %w", method, key, gname, ErrUnknownGenerator)
		}
		if c == nil {
			return nil, fmt.Errorf("%s: %s: %q: %w", method, key, gname, ErrBadCoefficient)
		}
		vec[k] = c
	}
	return vec, nil
}

// Ring returns the coefficient ring.
func (L *StructureAlgebra) Ring() ring.Ring { return L.r }

// Dimension returns the number of basis generators.
func (L *StructureAlgebra) Dimension() int { return len(L.names) }

// GeneratorNames returns the ordered basis names (a copy).
func (L *StructureAlgebra) GeneratorNames() []string {
	out := make([]string, len(L.names))
	copy(out, L.names)
	return out
}

// IsAbelian reports whether every basis bracket vanishes.
func (L *StructureAlgebra) IsAbelian() bool { return len(L.table) == 0 }

// Rename sets the display name.
func (L *StructureAlgebra) Rename(name string) { L.name = name }

// String returns the display name, or a generic description when no factory
// has named the algebra.
func (L *StructureAlgebra) String() string {
	if L.name != "" {
		return L.name
	}
	return fmt.Sprintf("Lie algebra on %d generators (%s) over %s", len(L.names), joinNames(L.names), L.r)
}

// StructureCoefficients returns the canonical displayable table: one entry
// per basis pair with a nonzero bracket, keyed in basis order, terms ordered
// by basis position, zero terms omitted.
func (L *StructureAlgebra) StructureCoefficients() map[BracketKey][]Term {
	out := make(map[BracketKey][]Term, len(L.table))
	for pk, vec := range L.table {
		key := BracketKey{Left: L.names[pk.i], Right: L.names[pk.j]}
		terms := make([]Term, 0, 2)
		for k, c := range vec {
			if !L.r.IsZero(c) {
				terms = append(terms, Term{Generator: L.names[k], Coeff: c})
			}
		}
		out[key] = terms
	}
	return out
}

// CoefficientsString renders the canonical table deterministically:
// "{[X, Y]: ((Y, 2), (Z, 4)), [Y, Z]: ((X, 1))}". The empty table is "{}".
func (L *StructureAlgebra) CoefficientsString() string {
	keys := make([]pairKey, 0, len(L.table))
	for pk := range L.table {
		keys = append(keys, pk)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].i != keys[b].i {
			return keys[a].i < keys[b].i
		}
		return keys[a].j < keys[b].j
	})

	var b strings.Builder
	b.WriteByte('{')
	for n, pk := range keys {
		if n > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "[%s, %s]: (", L.names[pk.i], L.names[pk.j])
		first := true
		for k, c := range L.table[pk] {
			if L.r.IsZero(c) {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "(%s, %s)", L.names[k], L.r.Format(c))
			first = false
		}
		b.WriteByte(')')
	}
	b.WriteByte('}')
	return b.String()
}

// VerifyJacobi checks the Jacobi identity over every basis triple and
// returns ErrJacobiViolation (with the offending triple) on failure.
func (L *StructureAlgebra) VerifyJacobi() error {
	n := len(L.names)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				// [e_i,[e_j,e_k]] + [e_j,[e_k,e_i]] + [e_k,[e_i,e_j]].
				sum := L.bracketWithVec(i, L.bracketBasis(j, k))
				addInto(L.r, sum, L.bracketWithVec(j, L.bracketBasis(k, i)))
				addInto(L.r, sum, L.bracketWithVec(k, L.bracketBasis(i, j)))
				if !allZero(L.r, sum) {
					return fmt.Errorf("VerifyJacobi: (%s, %s, %s): %w",
						L.names[i], L.names[j], L.names[k], ErrJacobiViolation)
				}
			}
		}
	}
	return nil
}

// bracketBasis returns [e_i, e_j] as a fresh dense coefficient row.
func (L *StructureAlgebra) bracketBasis(i, j int) []ring.Element {
	out := zeroVec(L.r, len(L.names))
	if i == j {
		return out
	}
	pk, negate := pairKey{i: i, j: j}, false
	if i > j {
		pk, negate = pairKey{i: j, j: i}, true
	}
	vec, ok := L.table[pk]
	if !ok {
		return out
	}
	for k, c := range vec {
		if negate {
			out[k] = L.r.Neg(c)
		} else {
			out[k] = c
		}
	}
	return out
}

// bracketWithVec returns [e_i, v] for a dense coefficient row v, extending
// the basis bracket bilinearly.
func (L *StructureAlgebra) bracketWithVec(i int, v []ring.Element) []ring.Element {
	out := zeroVec(L.r, len(L.names))
	for k, c := range v {
		if L.r.IsZero(c) {
			continue
		}
		bk := L.bracketBasis(i, k)
		for t, bc := range bk {
			if !L.r.IsZero(bc) {
				out[t] = L.r.Add(out[t], L.r.Mul(c, bc))
			}
		}
	}
	return out
}

// zeroVec allocates a dense all-zero coefficient row.
func zeroVec(r ring.Ring, n int) []ring.Element {
	out := make([]ring.Element, n)
	zero := r.Zero()
	for k := range out {
		out[k] = zero
	}
	return out
}

// addInto accumulates src into dst componentwise.
func addInto(r ring.Ring, dst, src []ring.Element) {
	for k, c := range src {
		if !r.IsZero(c) {
			dst[k] = r.Add(dst[k], c)
		}
	}
}

// allZero reports whether every entry of the row is zero.
func allZero(r ring.Ring, vec []ring.Element) bool {
	for _, c := range vec {
		if !r.IsZero(c) {
			return false
		}
	}
	return true
}
