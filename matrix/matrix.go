// SPDX-License-Identifier: MIT
// Package: liealg/matrix
//
// matrix.go — the Matrix type: immutable entries, ring-linear arithmetic,
// the associative product, and the derived commutator.
//
// Contract:
//   - Matrices are immutable after construction; set is construction-only.
//   - Binary operations require equal sizes and the same coefficient ring
//     (ErrDimensionMismatch otherwise); results live in the receiver's space.
//   - Determinism: ring addition is exact and commutative, so map-order
//     iteration in sparse products cannot change results.
//
// Complexity:
//   - At/set: O(1). Add/Sub/Neg/Scale/Equal: O(n²) dense, O(nnz) sparse.
//   - Mul: O(n³) dense, O(nnz(a)·n) sparse. Commutator: two Mul + one Sub.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/liealg/ring"
)

// Matrix is an immutable n×n matrix tied to its Space. Exactly one of the
// two storages is non-nil, matching Space.Sparse().
type Matrix struct {
	space   *Space
	dense   [][]ring.Element
	entries map[Index]ring.Element
}

// Space returns the space the matrix belongs to.
func (m *Matrix) Space() *Space { return m.space }

// At returns the entry at (i,j), or ErrOutOfRange for invalid indices.
func (m *Matrix) At(i, j int) (ring.Element, error) {
	n := m.space.n
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, fmt.Errorf("At(%d,%d): size=%d: %w", i, j, n, ErrOutOfRange)
	}
	return m.at(i, j), nil
}

// at is the unchecked accessor used by arithmetic after validation.
func (m *Matrix) at(i, j int) ring.Element {
	if m.entries != nil {
		if v, ok := m.entries[Index{Row: i, Col: j}]; ok {
			return v
		}
		return m.space.r.Zero()
	}
	return m.dense[i][j]
}

// set stores an entry during construction. Sparse storage drops zeros so
// nnz stays honest.
func (m *Matrix) set(i, j int, v ring.Element) {
	if m.entries != nil {
		if m.space.r.IsZero(v) {
			delete(m.entries, Index{Row: i, Col: j})
			return
		}
		m.entries[Index{Row: i, Col: j}] = v
		return
	}
	m.dense[i][j] = v
}

// forEachNonzero visits every nonzero cell. Visit order is unspecified;
// callers must be order-insensitive (exact ring addition guarantees this).
func (m *Matrix) forEachNonzero(visit func(i, j int, v ring.Element)) {
	if m.entries != nil {
		for idx, v := range m.entries {
			visit(idx.Row, idx.Col, v)
		}
		return
	}
	for i := range m.dense {
		for j, v := range m.dense[i] {
			if !m.space.r.IsZero(v) {
				visit(i, j, v)
			}
		}
	}
}

// compat validates that o can combine with m: equal sizes, same ring.
func (m *Matrix) compat(method string, o *Matrix) error {
	if o == nil {
		return fmt.Errorf("%s: nil operand: %w", method, ErrDimensionMismatch)
	}
	if m.space.n != o.space.n || m.space.r != o.space.r {
		return fmt.Errorf("%s: %dx%d over %s vs %dx%d over %s: %w",
			method, m.space.n, m.space.n, m.space.r, o.space.n, o.space.n, o.space.r, ErrDimensionMismatch)
	}
	return nil
}

// Add returns m+o.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	if err := m.compat("Add", o); err != nil {
		return nil, err
	}
	r := m.space.r
	out := m.space.blank()
	for i := 0; i < m.space.n; i++ {
		for j := 0; j < m.space.n; j++ {
			out.set(i, j, r.Add(m.at(i, j), o.at(i, j)))
		}
	}
	return out, nil
}

// Sub returns m−o.
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) {
	if err := m.compat("Sub", o); err != nil {
		return nil, err
	}
	r := m.space.r
	out := m.space.blank()
	for i := 0; i < m.space.n; i++ {
		for j := 0; j < m.space.n; j++ {
			out.set(i, j, r.Sub(m.at(i, j), o.at(i, j)))
		}
	}
	return out, nil
}

// Neg returns −m.
func (m *Matrix) Neg() *Matrix {
	out := m.space.blank()
	m.forEachNonzero(func(i, j int, v ring.Element) {
		out.set(i, j, m.space.r.Neg(v))
	})
	return out
}

// Scale returns c·m. A nil scalar is ErrBadEntry.
func (m *Matrix) Scale(c ring.Element) (*Matrix, error) {
	if c == nil {
		return nil, fmt.Errorf("Scale: %w", ErrBadEntry)
	}
	out := m.space.blank()
	m.forEachNonzero(func(i, j int, v ring.Element) {
		out.set(i, j, m.space.r.Mul(c, v))
	})
	return out, nil
}

// Mul returns the associative product m·o.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if err := m.compat("Mul", o); err != nil {
		return nil, err
	}
	r := m.space.r
	out := m.space.blank()
	// Accumulate over the nonzero cells of m only; for sparse generating
	// sets (matrix units) this touches a handful of cells.
	m.forEachNonzero(func(i, k int, a ring.Element) {
		for j := 0; j < m.space.n; j++ {
			b := o.at(k, j)
			if r.IsZero(b) {
				continue
			}
			out.set(i, j, r.Add(out.at(i, j), r.Mul(a, b)))
		}
	})
	return out, nil
}

// Commutator returns the Lie bracket m·o − o·m of the associative product.
func (m *Matrix) Commutator(o *Matrix) (*Matrix, error) {
	if err := m.compat("Commutator", o); err != nil {
		return nil, err
	}
	mo, err := m.Mul(o)
	if err != nil {
		return nil, err
	}
	om, err := o.Mul(m)
	if err != nil {
		return nil, err
	}
	return mo.Sub(om)
}

// IsZero reports whether every entry is zero.
func (m *Matrix) IsZero() bool {
	zero := true
	m.forEachNonzero(func(int, int, ring.Element) { zero = false })
	return zero
}

// Equal reports entrywise equality. Matrices of different sizes or rings
// are never equal; representation (dense vs sparse) is irrelevant.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || m.space.n != o.space.n || m.space.r != o.space.r {
		return false
	}
	for i := 0; i < m.space.n; i++ {
		for j := 0; j < m.space.n; j++ {
			if !m.space.r.Equal(m.at(i, j), o.at(i, j)) {
				return false
			}
		}
	}
	return true
}

// String renders the matrix row-major: "[[0, 1], [0, 0]]". Deterministic for
// equal entries regardless of representation.
func (m *Matrix) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.space.n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for j := 0; j < m.space.n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.space.r.Format(m.at(i, j)))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}
