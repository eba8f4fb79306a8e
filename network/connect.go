// SPDX-License-Identifier: MIT
// Package network: the connection engine.
// Joins ports by closed-form S-domain port-pair elimination (Filipsson
// reduction). The computation never leaves the S-domain, so it remains
// valid for sub-networks whose Z or Y matrices are singular — opens,
// shorts, lossless resonators.

package network

import (
	"fmt"
	"math/cmplx"
)

// Connect joins portA of network a to portB of network b and returns
// the composite network with N_a + N_b − 2 ports: a's remaining ports
// first, in their original relative order, then b's.
//
// Implementation:
//   - Stage 1: validate operands, identical frequency grids (by value),
//     port indices, joined-port z0 equality, and a positive resulting
//     port count.
//   - Stage 2: embed a and b as one block-diagonal S-matrix over
//     N_a + N_b ports (off-diagonal blocks zero — no connection yet),
//     then eliminate the joined pair (portA, N_a + portB).
//
// Behavior highlights:
//   - Pure transform: a fresh Network, no aliasing with either operand.
//   - A resonant pair at some frequency fails with PointError wrapping
//     ErrSingularConnection (or fills NaN under WithPermissive).
//
// Errors:
//   - ErrNilNetwork, ErrFrequencyMismatch, ErrInvalidPortIndex,
//     ErrZ0Mismatch, ErrShapeMismatch (result would have no ports),
//     ErrSingularConnection (per frequency, via PointError).
//
// Complexity: O(F * (N_a+N_b)²) time and space.
func Connect(a *Network, portA int, b *Network, portB int, opts ...Option) (*Network, error) {
	const tag = "Connect"
	if err := validateNotNil(tag, a, b); err != nil {
		return nil, err
	}
	if err := validateSameFrequency(tag, a, b); err != nil {
		return nil, err
	}
	if err := validatePort(tag, a, portA); err != nil {
		return nil, err
	}
	if err := validatePort(tag, b, portB); err != nil {
		return nil, err
	}
	if a.n+b.n-2 < 1 {
		return nil, fmt.Errorf("%s: joining a %d-port to a %d-port leaves no ports: %w", tag, a.n, b.n, ErrShapeMismatch)
	}
	o := gatherOptions(opts...)
	if err := validateJoinedZ0(tag, a, portA, b, portB, o.z0Tol); err != nil {
		return nil, err
	}

	return reduce(embed(a, b), portA, a.n+portB, o)
}

// InnerConnect joins ports k and l of one network (a self loop),
// reducing its port count by exactly 2. This is the primitive for
// closing feedback paths.
//
// Errors: ErrNilNetwork, ErrInvalidPortIndex (out of range, equal, or
// the network has fewer than 3 ports), ErrZ0Mismatch,
// ErrSingularConnection (per frequency, via PointError).
//
// Complexity: O(F*N²).
func InnerConnect(net *Network, k, l int, opts ...Option) (*Network, error) {
	const tag = "InnerConnect"
	if err := validateNotNil(tag, net); err != nil {
		return nil, err
	}
	if err := validateDistinctPorts(tag, net, k, l); err != nil {
		return nil, err
	}
	if net.n < 3 {
		return nil, fmt.Errorf("%s: self-loop on a %d-port leaves no ports: %w", tag, net.n, ErrInvalidPortIndex)
	}
	o := gatherOptions(opts...)
	if err := validateJoinedZ0(tag, net, k, net, l, o.z0Tol); err != nil {
		return nil, err
	}

	return reduce(net, k, l, o)
}

// MultiConnect joins several port pairs between a and b in one call:
// aPorts[i] is joined to bPorts[i]. Equivalent to one Connect followed
// by repeated InnerConnect, with the engine tracking the index
// remapping explicitly — every removal shifts all higher indices down
// by the count of ports already removed.
//
// Errors: as Connect, plus ErrInvalidPortIndex for empty or unequal
// pair lists or duplicated ports.
//
// Complexity: O(P * F * (N_a+N_b)²) for P pairs.
func MultiConnect(a *Network, aPorts []int, b *Network, bPorts []int, opts ...Option) (*Network, error) {
	const tag = "MultiConnect"
	if err := validateNotNil(tag, a, b); err != nil {
		return nil, err
	}
	if len(aPorts) == 0 || len(aPorts) != len(bPorts) {
		return nil, fmt.Errorf("%s: %d/%d pair lists: %w", tag, len(aPorts), len(bPorts), ErrInvalidPortIndex)
	}
	if err := validateSameFrequency(tag, a, b); err != nil {
		return nil, err
	}
	if err := validateDistinctPorts(tag, a, aPorts...); err != nil {
		return nil, err
	}
	if err := validateDistinctPorts(tag, b, bPorts...); err != nil {
		return nil, err
	}
	if a.n+b.n-2*len(aPorts) < 1 {
		return nil, fmt.Errorf("%s: %d pairs leave no ports: %w", tag, len(aPorts), ErrShapeMismatch)
	}
	o := gatherOptions(opts...)

	// Embed once, then eliminate pair by pair. remap[i] tracks where
	// original combined index i lives now (−1 once eliminated).
	cur := embed(a, b)
	remap := make([]int, a.n+b.n)
	for i := range remap {
		remap[i] = i
	}

	var err error
	for p := range aPorts {
		k := remap[aPorts[p]]
		l := remap[a.n+bPorts[p]]
		if err = validateJoinedZ0(tag, cur, k, cur, l, o.z0Tol); err != nil {
			return nil, err
		}
		if cur, err = reduce(cur, k, l, o); err != nil {
			return nil, err
		}
		// Each removal shifts all higher indices down; eliminated
		// entries drop out of the mapping entirely.
		for i, m := range remap {
			switch {
			case m == k || m == l:
				remap[i] = -1
			case m >= 0:
				d := 0
				if m > k {
					d++
				}
				if m > l {
					d++
				}
				remap[i] = m - d
			}
		}
	}

	return cur, nil
}

// embed stacks a and b into one block-diagonal network over
// N_a + N_b ports. No connection exists yet: the off-diagonal blocks
// are zero. Frequency grids are validated equal by the callers.
func embed(a, b *Network) *Network {
	nF := a.freq.Count()
	nT := a.n + b.n

	s := make([]complex128, nF*nT*nT)
	z0 := make([]complex128, nF*nT)
	for f := 0; f < nF; f++ {
		base := f * nT * nT
		for i := 0; i < a.n; i++ {
			for j := 0; j < a.n; j++ {
				s[base+i*nT+j] = a.sAt(f, i, j)
			}
		}
		for i := 0; i < b.n; i++ {
			for j := 0; j < b.n; j++ {
				s[base+(a.n+i)*nT+(a.n+j)] = b.sAt(f, i, j)
			}
		}
		copy(z0[f*nT:f*nT+a.n], a.z0[f*a.n:(f+1)*a.n])
		copy(z0[f*nT+a.n:(f+1)*nT], b.z0[f*b.n:(f+1)*b.n])
	}

	modes := make([]PortMode, 0, nT)
	modes = append(modes, a.modes...)
	modes = append(modes, b.modes...)

	var names []string
	if a.names != nil && b.names != nil {
		names = make([]string, 0, nT)
		names = append(names, a.names...)
		names = append(names, b.names...)
	}

	return &Network{freq: a.freq, n: nT, s: s, z0: z0, modes: modes, names: names}
}

// reduce eliminates the port pair (k, l) of net by the closed-form
// S-domain reduction, evaluated independently at each frequency:
//
//	S'[i,j] = S[i,j] + ( S[k,j]·S[i,l]·(1 − S[l,k])
//	                   + S[l,j]·S[i,k]·(1 − S[k,l])
//	                   + S[k,j]·S[l,l]·S[i,k]
//	                   + S[l,j]·S[k,k]·S[i,l] ) / den
//	den     = (1 − S[k,l])·(1 − S[l,k]) − S[k,k]·S[l,l]
//
// then drops rows/columns k and l. |den| ≤ eps marks a physically
// resonant, ill-posed connection at that single frequency: reported as
// PointError{ErrSingularConnection} by default, NaN-filled under the
// permissive option.
func reduce(net *Network, k, l int, o Options) (*Network, error) {
	nF := net.freq.Count()
	nOld := net.n
	nNew := nOld - 2

	// keep[i] is the output index of input port i, −1 for k and l.
	keep := make([]int, nOld)
	out := 0
	for i := 0; i < nOld; i++ {
		if i == k || i == l {
			keep[i] = -1
			continue
		}
		keep[i] = out
		out++
	}

	s := make([]complex128, nF*nNew*nNew)
	z0 := make([]complex128, nF*nNew)
	nan := cmplx.NaN()

	var (
		f, i, j          int
		skk, sll         complex128
		skl, slk         complex128
		oneMLK, oneMKL   complex128
		den, sik, sil    complex128
		skj, slj, numVal complex128
	)
	for f = 0; f < nF; f++ {
		skk, sll = net.sAt(f, k, k), net.sAt(f, l, l)
		skl, slk = net.sAt(f, k, l), net.sAt(f, l, k)
		oneMKL, oneMLK = 1-skl, 1-slk
		den = oneMKL*oneMLK - skk*sll

		if cmplx.Abs(den) <= o.eps {
			if !o.permissive {
				return nil, pointErr(net, f, ErrSingularConnection)
			}
			// Permissive mode: this frequency slice becomes NaN.
			for i = 0; i < nNew*nNew; i++ {
				s[f*nNew*nNew+i] = nan
			}
		} else {
			for i = 0; i < nOld; i++ {
				if keep[i] < 0 {
					continue
				}
				sik, sil = net.sAt(f, i, k), net.sAt(f, i, l)
				for j = 0; j < nOld; j++ {
					if keep[j] < 0 {
						continue
					}
					skj, slj = net.sAt(f, k, j), net.sAt(f, l, j)
					numVal = skj*sil*oneMLK + slj*sik*oneMKL + skj*sll*sik + slj*skk*sil
					s[(f*nNew+keep[i])*nNew+keep[j]] = net.sAt(f, i, j) + numVal/den
				}
			}
		}

		for i = 0; i < nOld; i++ {
			if keep[i] >= 0 {
				z0[f*nNew+keep[i]] = net.z0At(f, i)
			}
		}
	}

	modes := make([]PortMode, 0, nNew)
	var names []string
	if net.names != nil {
		names = make([]string, 0, nNew)
	}
	for i = 0; i < nOld; i++ {
		if keep[i] < 0 {
			continue
		}
		modes = append(modes, net.modes[i])
		if names != nil {
			names = append(names, net.names[i])
		}
	}

	return &Network{freq: net.freq, n: nNew, s: s, z0: z0, modes: modes, names: names}, nil
}
