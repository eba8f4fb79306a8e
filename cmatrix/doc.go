// SPDX-License-Identifier: MIT

// Package cmatrix provides complex-valued dense linear algebra
// primitives for frequency-batched network computations.
//
// The package offers two storage types and a small kernel set:
//
//   - CDense  — a row-major complex128 matrix with bounds-checked
//     access and deterministic kernels (Mul, Add, Sub, Scale,
//     ConjTranspose, LU, Inverse).
//   - CTensor — an explicit 3-D stack of F square N×N frames, the
//     shape-checked carrier for frequency-indexed S/Z/Y data. No
//     implicit broadcasting: every frame is addressed explicitly.
//
// Kernels never mutate their operands and allocate exactly one result.
// LU/Inverse use partial pivoting by maximum modulus — the pivot choice
// is deterministic, so identical inputs produce identical results.
// Singularity surfaces as ErrSingular; callers attach frequency context.
package cmatrix
