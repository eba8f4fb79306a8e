// SPDX-License-Identifier: MIT

// Package network implements the algebra of linear multi-port microwave
// networks over frequency-indexed scattering parameters.
//
// A Network is an immutable value: a Frequency axis, an [F,N,N] complex
// S-tensor, a per-frequency per-port reference impedance z0, and a mode
// tag per port. Every operation — Connect, InnerConnect, Renormalize,
// SE2GMM/GMM2SE, the parameter conversions — returns a fresh Network
// and never mutates an operand, so concurrent callers sharing inputs
// need no synchronization.
//
// The three engines:
//
//   - Connection: joins ports of two networks (Connect) or of one
//     network (InnerConnect) by S-domain port-pair elimination. The
//     reduction never leaves the S-domain, so it stays numerically
//     valid for opens, shorts and lossless resonators whose Z or Y
//     matrices do not exist.
//   - Renormalization: changes per-port reference impedance under one
//     of three wave definitions (Traveling, Pseudo, Power). The three
//     agree whenever old and new z0 are real; for complex z0 the Power
//     definition follows Kurokawa — a perfect short deliberately does
//     not map to −1.
//   - Mixed-mode: converts leading port pairs between single-ended and
//     differential/common representation through a fixed real
//     orthogonal basis; the inverse is the exact transpose conjugation.
//
// Preconditions are validated eagerly, before any tensor math runs.
// Per-frequency singularities (resonant connections, non-invertible
// conversion matrices) are reported through PointError carrying the
// exact frequency index and value; NaN is never produced unless the
// caller opts in with WithPermissive.
package network
