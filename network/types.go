// SPDX-License-Identifier: MIT

package network

import (
	"github.com/katalvlaran/rfnet/frequency"
)

// PortMode tags the excitation mode a port is expressed in.
type PortMode string

// Port modes. Freshly constructed networks are single-ended on every
// port unless WithPortModes says otherwise; SE2GMM/GMM2SE move ports
// between single-ended and differential/common.
const (
	ModeSingleEnded  PortMode = "single-ended"
	ModeDifferential PortMode = "differential"
	ModeCommon       PortMode = "common"
)

// WaveDefinition selects the mathematical definition of wave amplitude
// used by Renormalize. The three definitions coincide for real
// reference impedances and deliberately diverge for complex ones.
type WaveDefinition string

const (
	// Traveling is the classical bilinear reflection-coefficient
	// transform. Only physically meaningful for real z0; complex z0 is
	// accepted and treated through the principal branch of √z0.
	Traveling WaveDefinition = "traveling"

	// Pseudo is the Marks–Williams pseudo-wave definition, safe for
	// complex z0 and reducing to Traveling when z0 is real.
	Pseudo WaveDefinition = "pseudo"

	// Power is Kurokawa's power-wave definition: p = |a|² − |b|² holds
	// exactly for complex z0, at the price of a reflection coefficient
	// Γ = (Z_load − z0*)/(Z_load + z0) that is not the naive bilinear
	// map — a perfect short does not sit at −1 on the Smith chart.
	Power WaveDefinition = "power"
)

// Network is the immutable aggregate of a frequency axis, an [F,N,N]
// S-tensor, a per-frequency per-port reference impedance, and per-port
// metadata. All algebra operations produce new Networks; none mutates
// the receiver.
//
// Construct via New (or the FromZ/FromY/FromABCD/FromT converters).
type Network struct {
	freq  *frequency.Frequency // shared by reference; immutable
	n     int                  // port count N
	s     []complex128         // S-tensor, flat F×N×N (f*N*N + i*N + j)
	z0    []complex128         // reference impedance, flat F×N (f*N + p)
	modes []PortMode           // per-port mode tag, length N
	names []string             // optional per-port names, length N or nil
}

// sAt reads S[f,i,j] from the flat tensor without bounds checks;
// callers stay inside validated loop ranges.
func (net *Network) sAt(f, i, j int) complex128 {
	return net.s[(f*net.n+i)*net.n+j]
}

// z0At reads z0[f,p] from the flat tensor without bounds checks.
func (net *Network) z0At(f, p int) complex128 {
	return net.z0[f*net.n+p]
}
