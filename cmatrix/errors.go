// SPDX-License-Identifier: MIT
// Package cmatrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// cmatrix package. Kernels return these sentinels (wrapped with %w at
// facades for context) and tests check them via errors.Is.

package cmatrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows ≤ 0, cols ≤ 0, frames ≤ 0, or a data slice of wrong length).
	ErrBadShape = errors.New("cmatrix: invalid shape")

	// ErrOutOfRange indicates an index outside valid bounds.
	// Public indexers (At/Set) return this, they do not panic.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add with different shapes or Mul with inner
	// dimension disagreement.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("cmatrix: matrix is not square")

	// ErrSingular is returned when no usable pivot exists during
	// LU factorization or inversion.
	ErrSingular = errors.New("cmatrix: singular matrix")

	// ErrNilMatrix indicates a nil receiver or argument.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")
)
