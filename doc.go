// Package rfnet is an in-memory algebra for linear, multi-port microwave
// networks described by frequency-indexed scattering (S) parameters.
//
// 🚀 What is rfnet?
//
//	A deterministic, value-semantics library that brings together:
//		• Frequency axes: ordered, immutable, unit-aware frequency grids
//		• Networks: [F,N,N] S-tensors with per-port complex reference impedances
//		• Connection algebra: connect / innerconnect entirely in the S-domain,
//		  numerically valid for opens, shorts and lossless resonators
//		• Renormalization: traveling, pseudo and power wave definitions,
//		  correct for complex reference impedances
//		• Mixed-mode: single-ended ↔ differential/common conversion via a
//		  fixed orthogonal basis with per-port mode tracking
//		• Conversions: S ↔ Z/Y (any port count), S ↔ ABCD/T (two-port)
//
// ✨ Why choose rfnet?
//
//   - Pure transforms – every operation returns a fresh Network; operands
//     are never mutated, so concurrent readers need no locks
//   - Fail-fast – eager shape/precondition validation, sentinel errors,
//     per-frequency singularities reported with the exact frequency
//   - No hidden coercion – explicit 3-D tensors, no implicit broadcasting
//
// Everything is organized under four subpackages:
//
//	frequency/  — ordered frequency axis (value + display unit)
//	cmatrix/    — complex dense matrix and tensor kernels (LU, inverse)
//	network/    — the Network aggregate and its algebra
//	touchstone/ — Touchstone v1 reader/writer collaborator
//
// Quick ASCII example:
//
//	    ┌────────┐        ┌────────┐
//	 0──┤   A    ├─1────0─┤   B    ├──1
//	    └────────┘        └────────┘
//
//	Connect(A, 1, B, 0) joins A's port 1 to B's port 0 and yields a
//	two-port network of the remaining outer ports.
//
//	go get github.com/katalvlaran/rfnet/network
package rfnet
