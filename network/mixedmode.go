// SPDX-License-Identifier: MIT
// Package network: single-ended ↔ generalized mixed-mode conversion.
// The transform is a real orthogonal change of basis, so SE2GMM and
// GMM2SE invert each other exactly (no linear solve, no tolerance).

package network

import (
	"fmt"

	"gonum.org/v1/gonum/cmplxs/cscalar"
)

// SE2GMM converts the first 2·pairCount single-ended ports, taken as
// consecutive pairs in ascending index order (ports 0&1 → mixed pair
// 0, ports 2&3 → mixed pair 1, …), to differential/common modes. The
// result's ports 0..P−1 are the differential modes in pair order,
// P..2P−1 the common modes, and ports beyond 2P−1 stay single-ended in
// place.
//
// Implementation:
//   - Stage 1: validate the network, 2P ≤ N, single-ended tags on the
//     converted ports, and per-pair z0 equality.
//   - Stage 2: build the orthogonal modal matrix M — the differential
//     row of pair k is (e_2k − e_2k+1)/√2, the common row
//     (e_2k + e_2k+1)/√2, remaining ports map to themselves — and apply
//     S_mm = M·S·Mᵀ at every frequency.
//
// Reference impedances: a pair with shared single-ended z0 yields
// differential z0 = 2·z0 and common z0 = z0/2 (the convention that
// makes GMM2SE an exact inverse).
//
// Errors: ErrNilNetwork, ErrModeConversion (pairCount < 1, 2P > N, a
// leg not single-ended, or a pair whose legs disagree on z0).
//
// Complexity: O(F*N²) — M has at most two nonzeros per row.
func SE2GMM(net *Network, pairCount int, opts ...Option) (*Network, error) {
	const tag = "SE2GMM"
	if err := validateNotNil(tag, net); err != nil {
		return nil, err
	}
	if pairCount < 1 || 2*pairCount > net.n {
		return nil, fmt.Errorf("%s: %d pairs for %d ports: %w", tag, pairCount, net.n, ErrModeConversion)
	}
	o := gatherOptions(opts...)

	for p := 0; p < 2*pairCount; p++ {
		if net.modes[p] != ModeSingleEnded {
			return nil, fmt.Errorf("%s: port %d is %s, not single-ended: %w", tag, p, string(net.modes[p]), ErrModeConversion)
		}
	}
	// Both legs of a pair must share z0 at every frequency; the modal
	// impedances 2·z0 and z0/2 are only defined on that premise.
	nF := net.freq.Count()
	for k := 0; k < pairCount; k++ {
		for f := 0; f < nF; f++ {
			zp, zn := net.z0At(f, 2*k), net.z0At(f, 2*k+1)
			if !cscalar.EqualWithinAbsOrRel(zp, zn, o.z0Tol, o.z0Tol) {
				return nil, fmt.Errorf("%s: pair %d legs z0 %v ≠ %v at frequency[%d]: %w", tag, k, zp, zn, f, ErrModeConversion)
			}
		}
	}

	s := applyCongruence(net, modalMatrix(net.n, pairCount))

	modes := make([]PortMode, net.n)
	z0 := make([]complex128, nF*net.n)
	for k := 0; k < pairCount; k++ {
		modes[k], modes[pairCount+k] = ModeDifferential, ModeCommon
		for f := 0; f < nF; f++ {
			z0[f*net.n+k] = 2 * net.z0At(f, 2*k)              // differential
			z0[f*net.n+pairCount+k] = net.z0At(f, 2*k) / 2    // common
		}
	}
	for p := 2 * pairCount; p < net.n; p++ {
		modes[p] = net.modes[p]
		for f := 0; f < nF; f++ {
			z0[f*net.n+p] = net.z0At(f, p)
		}
	}

	return &Network{freq: net.freq, n: net.n, s: s, z0: z0, modes: modes, names: nil}, nil
}

// GMM2SE is the exact inverse of SE2GMM for the same pairCount: the
// differential modes at 0..P−1 and common modes at P..2P−1 (validated
// through the mode tags) become single-ended ports 0..2P−1 in the
// original interleaved order.
//
// Because the basis change is orthogonal, the inverse is the plain
// transpose: S_se = Mᵀ·S_mm·M with the forward M. A forward/inverse
// round trip therefore reproduces the original network exactly.
//
// Reference impedances: each pair must satisfy z_diff = 4·z_common at
// every frequency (the SE2GMM invariant); both restored legs get
// z_diff/2.
//
// Errors: ErrNilNetwork, ErrModeConversion (pairCount < 1, 2P > N, a
// modal slot whose tag is not differential/common respectively, or a
// pair violating the 4:1 impedance ratio).
//
// Complexity: O(F*N²).
func GMM2SE(net *Network, pairCount int, opts ...Option) (*Network, error) {
	const tag = "GMM2SE"
	if err := validateNotNil(tag, net); err != nil {
		return nil, err
	}
	if pairCount < 1 || 2*pairCount > net.n {
		return nil, fmt.Errorf("%s: %d pairs for %d ports: %w", tag, pairCount, net.n, ErrModeConversion)
	}
	o := gatherOptions(opts...)

	nF := net.freq.Count()
	for k := 0; k < pairCount; k++ {
		if net.modes[k] != ModeDifferential {
			return nil, fmt.Errorf("%s: port %d is %s, not differential: %w", tag, k, string(net.modes[k]), ErrModeConversion)
		}
		if net.modes[pairCount+k] != ModeCommon {
			return nil, fmt.Errorf("%s: port %d is %s, not common: %w", tag, pairCount+k, string(net.modes[pairCount+k]), ErrModeConversion)
		}
		for f := 0; f < nF; f++ {
			zd, zc := net.z0At(f, k), net.z0At(f, pairCount+k)
			if !cscalar.EqualWithinAbsOrRel(zd, 4*zc, o.z0Tol, o.z0Tol) {
				return nil, fmt.Errorf("%s: pair %d z0 %v ≠ 4·%v at frequency[%d]: %w", tag, k, zd, zc, f, ErrModeConversion)
			}
		}
	}

	// Apply the transpose of the forward basis:
	// S_se = Mᵀ·S_mm·(Mᵀ)ᵀ.
	s := applyCongruence(net, transposeFlat(modalMatrix(net.n, pairCount), net.n))

	modes := make([]PortMode, net.n)
	z0 := make([]complex128, nF*net.n)
	for k := 0; k < pairCount; k++ {
		modes[2*k], modes[2*k+1] = ModeSingleEnded, ModeSingleEnded
		for f := 0; f < nF; f++ {
			zse := net.z0At(f, k) / 2
			z0[f*net.n+2*k], z0[f*net.n+2*k+1] = zse, zse
		}
	}
	for p := 2 * pairCount; p < net.n; p++ {
		modes[p] = net.modes[p]
		for f := 0; f < nF; f++ {
			z0[f*net.n+p] = net.z0At(f, p)
		}
	}

	return &Network{freq: net.freq, n: net.n, s: s, z0: z0, modes: modes, names: nil}, nil
}

// modalMatrix builds the real orthogonal basis-change matrix M of
// SE2GMM as a flat n×n slice: row k is (e_2k − e_2k+1)/√2, row p+k is
// (e_2k + e_2k+1)/√2, identity beyond row 2p−1.
func modalMatrix(n, pairCount int) []complex128 {
	const invSqrt2 = 0.7071067811865476
	m := make([]complex128, n*n)
	for k := 0; k < pairCount; k++ {
		m[k*n+2*k] = complex(invSqrt2, 0)
		m[k*n+2*k+1] = complex(-invSqrt2, 0)
		m[(pairCount+k)*n+2*k] = complex(invSqrt2, 0)
		m[(pairCount+k)*n+2*k+1] = complex(invSqrt2, 0)
	}
	for p := 2 * pairCount; p < n; p++ {
		m[p*n+p] = 1
	}

	return m
}

// transposeFlat returns the transpose of a flat n×n matrix.
func transposeFlat(m []complex128, n int) []complex128 {
	t := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t[j*n+i] = m[i*n+j]
		}
	}

	return t
}

// applyCongruence computes M·S·Mᵀ frame by frame, exploiting the
// sparsity of M (at most two nonzeros per row).
func applyCongruence(net *Network, m []complex128) []complex128 {
	nF, n := net.freq.Count(), net.n
	out := make([]complex128, nF*n*n)
	tmp := make([]complex128, n*n)

	var (
		f, i, j, k int
		mv, acc    complex128
	)
	for f = 0; f < nF; f++ {
		// tmp = M·S (skip zero entries of M).
		for i = 0; i < n*n; i++ {
			tmp[i] = 0
		}
		for i = 0; i < n; i++ {
			for k = 0; k < n; k++ {
				mv = m[i*n+k]
				if mv == 0 {
					continue
				}
				for j = 0; j < n; j++ {
					tmp[i*n+j] += mv * net.sAt(f, k, j)
				}
			}
		}
		// out = tmp·Mᵀ: out[i,j] = Σ_k tmp[i,k]·M[j,k].
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				acc = 0
				for k = 0; k < n; k++ {
					mv = m[j*n+k]
					if mv == 0 {
						continue
					}
					acc += tmp[i*n+k] * mv
				}
				out[(f*n+i)*n+j] = acc
			}
		}
	}

	return out
}
