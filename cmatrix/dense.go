// SPDX-License-Identifier: MIT

package cmatrix

import (
	"fmt"
	"strings"
)

// CDense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major
// order. The zero value is not usable; construct via NewCDense or
// FromSlice.
type CDense struct {
	r, c int          // number of rows and columns
	data []complex128 // flat backing storage, length == r*c
}

// NewCDense creates an r×c CDense matrix initialized to zeros.
//
// Implementation:
//   - Stage 1: validate rows and cols > 0.
//   - Stage 2: allocate flat backing slice and return.
//
// Errors: ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewCDense(rows, cols int) (*CDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewCDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &CDense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// FromSlice creates an r×c CDense from row-major data, copying it.
// The input slice length must equal rows*cols.
//
// Errors: ErrBadShape.
// Complexity: O(r*c).
func FromSlice(rows, cols int, data []complex128) (*CDense, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("FromSlice(%d,%d,len=%d): %w", rows, cols, len(data), ErrBadShape)
	}
	cp := make([]complex128, len(data))
	copy(cp, data)

	return &CDense{r: rows, c: cols, data: cp}, nil
}

// Identity creates the n×n identity matrix.
// Errors: ErrBadShape. Complexity: O(n²).
func Identity(n int) (*CDense, error) {
	m, err := NewCDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *CDense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *CDense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *CDense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("CDense.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *CDense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *CDense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy. Complexity: O(r*c).
func (m *CDense) Clone() *CDense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &CDense{r: m.r, c: m.c, data: cp}
}

// Data returns a row-major copy of the backing storage.
// Complexity: O(r*c).
func (m *CDense) Data() []complex128 {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return cp
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *CDense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
