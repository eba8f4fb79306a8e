// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"gonum.org/v1/gonum/cmplxs/cscalar"

	"github.com/katalvlaran/rfnet/cmatrix"
	"github.com/katalvlaran/rfnet/frequency"
)

// New constructs a Network from a frequency axis, an S-tensor and a
// reference impedance.
//
// Implementation:
//   - Stage 1: validate axis/tensor presence, frame count F, port
//     count N ≥ 1, metadata lengths.
//   - Stage 2: broadcast z0 (scalar → every port, length N → every
//     frequency, length F*N → as-is) and defensively copy everything.
//
// Inputs:
//   - freq: frequency axis (shared by reference — it is immutable).
//   - s   : S-tensor with F frames of N×N; copied.
//   - z0  : reference impedance, length 1, N, or F*N (flat f*N+p).
//   - opts: WithPortNames, WithPortModes.
//
// Errors:
//   - ErrNilNetwork (nil axis or tensor), ErrShapeMismatch (frame
//     count, z0 length, metadata length, or an unknown mode tag).
//
// Complexity: O(F*N²).
func New(freq *frequency.Frequency, s *cmatrix.CTensor, z0 []complex128, opts ...Option) (*Network, error) {
	if freq == nil || s == nil {
		return nil, fmt.Errorf("New: %w", ErrNilNetwork)
	}
	o := gatherOptions(opts...)

	nPorts := s.Dim()
	nFreqs := freq.Count()
	if s.Frames() != nFreqs {
		return nil, fmt.Errorf("New: %d S frames for %d frequency points: %w", s.Frames(), nFreqs, ErrShapeMismatch)
	}

	// Broadcast the reference impedance to the full F×N layout.
	z0Full := make([]complex128, nFreqs*nPorts)
	switch len(z0) {
	case 1:
		for i := range z0Full {
			z0Full[i] = z0[0]
		}
	case nPorts:
		for f := 0; f < nFreqs; f++ {
			copy(z0Full[f*nPorts:(f+1)*nPorts], z0)
		}
	case nFreqs * nPorts:
		copy(z0Full, z0)
	default:
		return nil, fmt.Errorf("New: z0 length %d (want 1, %d, or %d): %w", len(z0), nPorts, nFreqs*nPorts, ErrShapeMismatch)
	}

	// Per-port mode tags: default single-ended.
	modes := make([]PortMode, nPorts)
	if o.modes != nil {
		if len(o.modes) != nPorts {
			return nil, fmt.Errorf("New: %d mode tags for %d ports: %w", len(o.modes), nPorts, ErrShapeMismatch)
		}
		for i, m := range o.modes {
			switch m {
			case ModeSingleEnded, ModeDifferential, ModeCommon:
				modes[i] = m
			default:
				return nil, fmt.Errorf("New: unknown port mode %q: %w", string(m), ErrShapeMismatch)
			}
		}
	} else {
		for i := range modes {
			modes[i] = ModeSingleEnded
		}
	}

	// Optional port names.
	var names []string
	if o.names != nil {
		if len(o.names) != nPorts {
			return nil, fmt.Errorf("New: %d port names for %d ports: %w", len(o.names), nPorts, ErrShapeMismatch)
		}
		names = make([]string, nPorts)
		copy(names, o.names)
	}

	return &Network{
		freq:  freq,
		n:     nPorts,
		s:     s.Data(), // Data() already copies
		z0:    z0Full,
		modes: modes,
		names: names,
	}, nil
}

// NumPorts returns the port count N. Complexity: O(1).
func (net *Network) NumPorts() int { return net.n }

// NumFreqs returns the frequency point count F. Complexity: O(1).
func (net *Network) NumFreqs() int { return net.freq.Count() }

// Frequency returns the shared, immutable frequency axis.
// Complexity: O(1).
func (net *Network) Frequency() *frequency.Frequency { return net.freq }

// S returns a copy of the S-tensor (F frames of N×N).
// Complexity: O(F*N²).
func (net *Network) S() *cmatrix.CTensor {
	t, _ := cmatrix.TensorFromSlice(net.freq.Count(), net.n, net.s) // shapes are internally consistent
	return t
}

// SAt returns S[f,i,j] with bounds checking.
// Errors: ErrInvalidPortIndex. Complexity: O(1).
func (net *Network) SAt(f, i, j int) (complex128, error) {
	if f < 0 || f >= net.freq.Count() || i < 0 || i >= net.n || j < 0 || j >= net.n {
		return 0, fmt.Errorf("SAt(%d,%d,%d): %w", f, i, j, ErrInvalidPortIndex)
	}

	return net.sAt(f, i, j), nil
}

// Z0 returns a flat F×N copy of the reference impedance (index f*N+p).
// Complexity: O(F*N).
func (net *Network) Z0() []complex128 {
	cp := make([]complex128, len(net.z0))
	copy(cp, net.z0)

	return cp
}

// Z0At returns z0[f,p] with bounds checking.
// Errors: ErrInvalidPortIndex. Complexity: O(1).
func (net *Network) Z0At(f, p int) (complex128, error) {
	if f < 0 || f >= net.freq.Count() || p < 0 || p >= net.n {
		return 0, fmt.Errorf("Z0At(%d,%d): %w", f, p, ErrInvalidPortIndex)
	}

	return net.z0At(f, p), nil
}

// PortModes returns a copy of the per-port mode tags.
// Complexity: O(N).
func (net *Network) PortModes() []PortMode {
	cp := make([]PortMode, len(net.modes))
	copy(cp, net.modes)

	return cp
}

// PortNames returns a copy of the per-port names, or nil when unset.
// Complexity: O(N).
func (net *Network) PortNames() []string {
	if net.names == nil {
		return nil
	}
	cp := make([]string, len(net.names))
	copy(cp, net.names)

	return cp
}

// Equals reports whether two networks are element-wise equal within the
// given relative/absolute tolerance: same frequency grid (exact, by
// value), same port count and mode tags, and every S and z0 entry
// within tolerance. Exact equality is not meaningful for measured or
// derived data, hence the mandatory tolerances.
//
// Complexity: O(F*N²).
func Equals(a, b *Network, relTol, absTol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.n != b.n || !a.freq.Equal(b.freq) {
		return false
	}
	for i := range a.modes {
		if a.modes[i] != b.modes[i] {
			return false
		}
	}
	for i := range a.z0 {
		if !cscalar.EqualWithinAbsOrRel(a.z0[i], b.z0[i], absTol, relTol) {
			return false
		}
	}
	for i := range a.s {
		if !cscalar.EqualWithinAbsOrRel(a.s[i], b.s[i], absTol, relTol) {
			return false
		}
	}

	return true
}
