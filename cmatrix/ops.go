// SPDX-License-Identifier: MIT
// Package cmatrix: elementwise and multiplicative kernels.
// All kernels validate eagerly, allocate exactly one result, and never
// mutate their operands. Loop orders are fixed for determinism.

package cmatrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opScale         = "Scale"
	opConjTranspose = "ConjTranspose"
	opTranspose     = "Transpose"
	opLU            = "LU"
	opInverse       = "Inverse"
)

// kernelErrorf wraps err with an operation tag, preserving the
// underlying sentinel for errors.Is. Call only with err != nil.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, −1}.
// Shared validation/allocation for Add and Sub; single flat loop.
func addSub(a, b *CDense, sign complex128, tag string) (*CDense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, kernelErrorf(tag, err)
	}
	res, err := NewCDense(a.r, a.c)
	if err != nil {
		return nil, kernelErrorf(tag, err)
	}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh CDense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time and space.
func Add(a, b *CDense) (*CDense, error) { return addSub(a, b, 1, opAdd) }

// Sub computes the element-wise difference C = A − B into a fresh CDense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time and space.
func Sub(a, b *CDense) (*CDense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a fresh matrix with elements alpha * m[i,j].
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m *CDense, alpha complex128) (*CDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, kernelErrorf(opScale, err)
	}
	res, err := NewCDense(m.r, m.c)
	if err != nil {
		return nil, kernelErrorf(opScale, err)
	}
	for idx := range res.data {
		res.data[idx] = alpha * m.data[idx]
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate operands and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j row-major triple loop with zero-skip on A[i,k].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Determinism: fixed loop order, stable accumulation.
// Complexity: O(r*n*c) time, O(r*c) space.
func Mul(a, b *CDense) (*CDense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, kernelErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewCDense(aRows, bCols)
	if err != nil {
		return nil, kernelErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 complex128
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// ConjTranspose returns the conjugate transpose Aᴴ as a fresh matrix.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ConjTranspose(m *CDense) (*CDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, kernelErrorf(opConjTranspose, err)
	}
	res, err := NewCDense(m.c, m.r) // dims flipped
	if err != nil {
		return nil, kernelErrorf(opConjTranspose, err)
	}
	var i, j, baseSrc int
	var v complex128
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			v = m.data[baseSrc+j]
			res.data[j*m.r+i] = complex(real(v), -imag(v))
		}
	}

	return res, nil
}

// Transpose returns the plain transpose Aᵀ as a fresh matrix.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m *CDense) (*CDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, kernelErrorf(opTranspose, err)
	}
	res, err := NewCDense(m.c, m.r)
	if err != nil {
		return nil, kernelErrorf(opTranspose, err)
	}
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}
