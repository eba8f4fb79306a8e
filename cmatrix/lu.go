// SPDX-License-Identifier: MIT
// Package cmatrix: LU factorization and inversion.
// Complex Doolittle LU with partial pivoting by maximum modulus.
// Pivot selection is deterministic (first maximal row wins), so
// identical inputs always produce identical factors and inverses.

package cmatrix

import (
	"fmt"
	"math/cmplx"
)

// LU computes a row-pivoted Doolittle factorization P*A = L*U.
//
// Implementation:
//   - Stage 1: validate m (non-nil, square); clone into packed storage.
//   - Stage 2: for each column k, pick the row r ≥ k maximizing
//     |A[r,k]|, swap rows k↔r, then eliminate below the pivot.
//
// Returns:
//   - *CDense: packed factors — U on and above the diagonal, the unit
//     lower triangle of L strictly below it.
//   - []int  : perm, where perm[k] is the source row of pivot k.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation).
//   - ErrSingular when the best available pivot is exactly zero.
//
// Complexity: O(n³) time, O(n²) space.
func LU(m *CDense) (*CDense, []int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, kernelErrorf(opLU, err)
	}

	n := m.r
	lu := m.Clone()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, pivRow int
		best, mag       float64
		piv, factor     complex128
	)
	for k = 0; k < n; k++ {
		// Partial pivot: first row with maximal |A[i,k]| among i ≥ k.
		pivRow, best = k, cmplx.Abs(lu.data[k*n+k])
		for i = k + 1; i < n; i++ {
			mag = cmplx.Abs(lu.data[i*n+k])
			if mag > best {
				pivRow, best = i, mag
			}
		}
		if best == 0 {
			return nil, nil, kernelErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if pivRow != k {
			swapRows(lu, k, pivRow)
			perm[k], perm[pivRow] = perm[pivRow], perm[k]
		}

		// Eliminate below the pivot; store multipliers in L's slot.
		piv = lu.data[k*n+k]
		for i = k + 1; i < n; i++ {
			factor = lu.data[i*n+k] / piv
			lu.data[i*n+k] = factor
			for j = k + 1; j < n; j++ {
				lu.data[i*n+j] -= factor * lu.data[k*n+j]
			}
		}
	}

	return lu, perm, nil
}

// swapRows exchanges rows a and b of m in place.
func swapRows(m *CDense, a, b int) {
	baseA, baseB := a*m.c, b*m.c
	for j := 0; j < m.c; j++ {
		m.data[baseA+j], m.data[baseB+j] = m.data[baseB+j], m.data[baseA+j]
	}
}

// Inverse computes A⁻¹ via the pivoted LU factors.
//
// Implementation:
//   - Stage 1: factorize P*A = L*U (LU above).
//   - Stage 2: for each canonical basis column e_col, permute by P,
//     forward-solve L*y = P*e_col, back-solve U*x = y, and write x into
//     column col of the result.
//
// Behavior highlights:
//   - Input m is read-only; one fresh result matrix is allocated.
//   - Deterministic: fixed column/row orders, deterministic pivoting.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(n³) time, O(n²) space.
func Inverse(m *CDense) (*CDense, error) {
	lu, perm, err := LU(m)
	if err != nil {
		return nil, kernelErrorf(opInverse, err)
	}

	n := m.r
	inv, err := NewCDense(n, n)
	if err != nil {
		return nil, kernelErrorf(opInverse, err)
	}

	var (
		col, i, k int
		sum, piv  complex128
		y         = make([]complex128, n) // forward substitution workspace
		x         = make([]complex128, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = P*e_col (unit lower triangle).
		for i = 0; i < n; i++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += lu.data[i*n+k] * y[k]
			}
			if perm[i] == col {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y.
		for i = n - 1; i >= 0; i-- {
			sum = 0
			for k = i + 1; k < n; k++ {
				sum += lu.data[i*n+k] * x[k]
			}
			piv = lu.data[i*n+i]
			if piv == 0 {
				return nil, kernelErrorf(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / piv
		}
		// Write x into column col of the inverse.
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
