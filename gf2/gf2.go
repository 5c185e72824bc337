// SPDX-License-Identifier: MIT
// Package gf2: dense GF(2) matrices and the elimination routines shared by
// the operator push, the erasure recoverability check and the coset decoder.
package gf2

import "errors"

var (
	// ErrBadShape is returned when a matrix has zero columns, or rows of
	// differing lengths.
	ErrBadShape = errors.New("gf2: invalid matrix shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Solve where len(b) != rows of A.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")
)

// Matrix is a dense row-major GF(2) matrix. Entries must be 0 or 1.
// The zero-row matrix (no rows) is valid and has rank 0.
type Matrix [][]uint8

// NewMatrix allocates an r×c zero matrix.
// Complexity: O(r·c).
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]uint8, cols)
	}
	return m
}

// Clone returns a deep copy of m.
// Complexity: O(r·c).
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]uint8(nil), row...)
	}
	return out
}

// cols returns the column count of m, or -1 when rows disagree.
func (m Matrix) cols() int {
	if len(m) == 0 {
		return 0
	}
	c := len(m[0])
	for _, row := range m[1:] {
		if len(row) != c {
			return -1
		}
	}
	return c
}

// validate checks rectangularity.
func (m Matrix) validate() error {
	if m.cols() < 0 {
		return ErrBadShape
	}
	return nil
}

// Transpose returns mᵀ as a fresh matrix.
// Complexity: O(r·c).
func Transpose(m Matrix) (Matrix, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	cols := m.cols()
	out := NewMatrix(cols, len(m))
	for i, row := range m {
		for j, bit := range row {
			out[j][i] = bit
		}
	}
	return out, nil
}

// AddRow adds (XOR) row src into row dst in place.
// Complexity: O(c).
func AddRow(dst, src []uint8) {
	for j := range src {
		dst[j] ^= src[j]
	}
}

// RowReduce brings m to reduced row-echelon form in place and returns the
// pivot column of each nonzero row, in row order. Rows below the rank are
// zeroed but not removed, so callers can detect dependent rows by index.
//
// Stage 1 (Validate): rectangularity.
// Stage 2 (Eliminate): forward sweep with full back-substitution.
// Complexity: O(r·c·min(r,c)) time, O(1) extra memory.
func RowReduce(m Matrix) ([]int, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	cols := m.cols()

	pivots := make([]int, 0, len(m))
	rank := 0
	for col := 0; col < cols && rank < len(m); col++ {
		// Find a pivot at or below the current rank row.
		pivot := -1
		for i := rank; i < len(m); i++ {
			if m[i][col] == 1 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		m[rank], m[pivot] = m[pivot], m[rank]

		// Clear the pivot column everywhere else (full RREF).
		for i := range m {
			if i != rank && m[i][col] == 1 {
				AddRow(m[i], m[rank])
			}
		}
		pivots = append(pivots, col)
		rank++
	}
	return pivots, nil
}

// Rank returns the GF(2) rank of m without mutating it.
// Complexity: O(r·c·min(r,c)) time, O(r·c) memory for the working copy.
func Rank(m Matrix) (int, error) {
	work := m.Clone()
	pivots, err := RowReduce(work)
	if err != nil {
		return 0, err
	}
	return len(pivots), nil
}

// InRowSpan reports whether v lies in the row space of m.
// m must already be rectangular; v must match m's column count (a v of
// different length yields ErrDimensionMismatch).
// Complexity: one reduction of m plus O(r·c) for the residual sweep.
func InRowSpan(m Matrix, v []uint8) (bool, error) {
	work := m.Clone()
	pivots, err := RowReduce(work)
	if err != nil {
		return false, err
	}
	if len(m) > 0 && len(v) != len(m[0]) {
		return false, ErrDimensionMismatch
	}

	residual := append([]uint8(nil), v...)
	for i, col := range pivots {
		if residual[col] == 1 {
			AddRow(residual, work[i])
		}
	}
	for _, bit := range residual {
		if bit == 1 {
			return false, nil
		}
	}
	return true, nil
}

// Solve finds any x with xᵀ·A = b over GF(2), treating the rows of A as the
// generating set (i.e., b must be a combination of A's rows). It returns the
// selecting coefficient vector x (length len(A)) and ok=false when b is not
// in the row space. A is not mutated.
//
// Complexity: one reduction over an augmented copy, O(r·(c+r)·min(r,c)).
func Solve(a Matrix, b []uint8) ([]uint8, bool, error) {
	if err := a.validate(); err != nil {
		return nil, false, err
	}
	cols := a.cols()
	if len(b) != cols {
		return nil, false, ErrDimensionMismatch
	}

	// Augment each row with an identity tail that tracks row combinations.
	work := make(Matrix, len(a))
	for i, row := range a {
		work[i] = make([]uint8, cols+len(a))
		copy(work[i], row)
		work[i][cols+i] = 1
	}

	// Reduce only over the original columns; the tail records coefficients.
	pivots := make([]int, 0, len(work))
	rank := 0
	for col := 0; col < cols && rank < len(work); col++ {
		pivot := -1
		for i := rank; i < len(work); i++ {
			if work[i][col] == 1 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		work[rank], work[pivot] = work[pivot], work[rank]
		for i := range work {
			if i != rank && work[i][col] == 1 {
				AddRow(work[i], work[rank])
			}
		}
		pivots = append(pivots, col)
		rank++
	}

	residual := append([]uint8(nil), b...)
	coeff := make([]uint8, len(a))
	for i, col := range pivots {
		if residual[col] == 1 {
			for j := 0; j < cols; j++ {
				residual[j] ^= work[i][j]
			}
			for j := 0; j < len(a); j++ {
				coeff[j] ^= work[i][cols+j]
			}
		}
	}
	for _, bit := range residual {
		if bit == 1 {
			return nil, false, nil
		}
	}
	return coeff, true, nil
}

// NullspaceBasis returns a basis of {x : xᵀ·A = 0} over GF(2), i.e. the
// left-nullspace of A expressed as coefficient vectors over A's rows.
// The basis vectors have length len(A). A is not mutated.
//
// Complexity: one reduction of Aᵀ augmented with identity,
// O((r+c)·r·min(r,c)).
func NullspaceBasis(a Matrix) (Matrix, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	rows := len(a)
	cols := a.cols()

	// Work on Aᵀ so row operations act on coefficient space directly:
	// reduce [Aᵀ | I]ᵀ-style by building rows = (a's row, identity tag).
	work := make(Matrix, rows)
	for i, row := range a {
		work[i] = make([]uint8, cols+rows)
		copy(work[i], row)
		work[i][cols+i] = 1
	}

	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		pivot := -1
		for i := rank; i < rows; i++ {
			if work[i][col] == 1 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		work[rank], work[pivot] = work[pivot], work[rank]
		for i := range work {
			if i != rank && work[i][col] == 1 {
				AddRow(work[i], work[rank])
			}
		}
		rank++
	}

	// Rows whose original part eliminated to zero span the left-nullspace.
	basis := make(Matrix, 0, rows-rank)
	for i := rank; i < rows; i++ {
		zero := true
		for j := 0; j < cols; j++ {
			if work[i][j] == 1 {
				zero = false
				break
			}
		}
		if zero {
			basis = append(basis, append([]uint8(nil), work[i][cols:]...))
		}
	}
	return basis, nil
}
