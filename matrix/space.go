// SPDX-License-Identifier: MIT
// Package: liealg/matrix
//
// space.go — the Space type: an n×n matrix algebra over a coefficient ring.
//
// Contract:
//   - NewSpace validates (r != nil, n ≥ 1) and returns sentinel errors.
//   - A Space is immutable; it only manufactures matrices.
//   - Every matrix manufactured by a space uses the space's representation
//     (dense by default, sparse under WithSparse), so arithmetic never has
//     to guess where results should live.
//
// Complexity:
//   - Zero/Unit: O(n²) dense, O(1) sparse.
//   - FromEntries: O(len(entries)) sparse, O(n²) dense.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/liealg/ring"
)

// Index addresses a matrix cell (zero-based row and column).
type Index struct {
	Row int
	Col int
}

// Space is an n×n matrix space over a fixed coefficient ring. It is the
// ambient associative algebra consumed by the from-associative bracket
// engine.
type Space struct {
	r      ring.Ring
	n      int
	sparse bool
}

// NewSpace returns the space of n×n matrices over r.
func NewSpace(r ring.Ring, n int, opts ...Option) (*Space, error) {
	if r == nil {
		return nil, fmt.Errorf("NewSpace: %w", ErrNilRing)
	}
	if n < 1 {
		return nil, fmt.Errorf("NewSpace: n=%d: %w", n, ErrBadShape)
	}
	cfg := newSpaceConfig(opts...)
	return &Space{r: r, n: n, sparse: cfg.sparse}, nil
}

// Ring returns the coefficient ring of the space.
func (s *Space) Ring() ring.Ring { return s.r }

// Size returns n for the n×n space.
func (s *Space) Size() int { return s.n }

// Sparse reports whether matrices of this space use sparse storage.
func (s *Space) Sparse() bool { return s.sparse }

// Zero returns the zero matrix of the space.
func (s *Space) Zero() *Matrix { return s.blank() }

// Identity returns the identity matrix of the space.
func (s *Space) Identity() *Matrix {
	m := s.blank()
	one := s.r.One()
	for i := 0; i < s.n; i++ {
		m.set(i, i, one)
	}
	return m
}

// Unit returns the matrix unit E(i,j): 1 in cell (i,j), 0 elsewhere.
// Returns ErrOutOfRange for indices outside [0, n).
func (s *Space) Unit(i, j int) (*Matrix, error) {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return nil, fmt.Errorf("Unit(%d,%d): size=%d: %w", i, j, s.n, ErrOutOfRange)
	}
	m := s.blank()
	m.set(i, j, s.r.One())
	return m, nil
}

// FromEntries builds a matrix from a cell→value map; absent cells are zero.
// A nil value is ErrBadEntry; an index outside [0, n) is ErrOutOfRange.
func (s *Space) FromEntries(entries map[Index]ring.Element) (*Matrix, error) {
	m := s.blank()
	for idx, v := range entries {
		if idx.Row < 0 || idx.Row >= s.n || idx.Col < 0 || idx.Col >= s.n {
			return nil, fmt.Errorf("FromEntries(%d,%d): size=%d: %w", idx.Row, idx.Col, s.n, ErrOutOfRange)
		}
		if v == nil {
			return nil, fmt.Errorf("FromEntries(%d,%d): %w", idx.Row, idx.Col, ErrBadEntry)
		}
		m.set(idx.Row, idx.Col, v)
	}
	return m, nil
}

// FromRows builds a matrix from full row data: n rows of n entries each.
// A shape mismatch is ErrBadShape; a nil entry is ErrBadEntry.
func (s *Space) FromRows(rows [][]ring.Element) (*Matrix, error) {
	if len(rows) != s.n {
		return nil, fmt.Errorf("FromRows: %d rows, want %d: %w", len(rows), s.n, ErrBadShape)
	}
	m := s.blank()
	for i, row := range rows {
		if len(row) != s.n {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(row), s.n, ErrBadShape)
		}
		for j, v := range row {
			if v == nil {
				return nil, fmt.Errorf("FromRows(%d,%d): %w", i, j, ErrBadEntry)
			}
			m.set(i, j, v)
		}
	}
	return m, nil
}

// blank allocates an all-zero matrix in the space's representation.
func (s *Space) blank() *Matrix {
	if s.sparse {
		return &Matrix{space: s, entries: make(map[Index]ring.Element)}
	}
	zero := s.r.Zero()
	dense := make([][]ring.Element, s.n)
	for i := range dense {
		dense[i] = make([]ring.Element, s.n)
		for j := range dense[i] {
			dense[i][j] = zero
		}
	}
	return &Matrix{space: s, dense: dense}
}
