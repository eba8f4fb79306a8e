// SPDX-License-Identifier: MIT
// Package network: reference-impedance renormalization.
// Re-expresses an S-tensor against new port impedances under an
// explicit wave-amplitude definition. The three definitions coincide
// for real impedances and deliberately diverge for complex ones, so
// the caller always names one — there is no default.

package network

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/rfnet/cmatrix"
)

// Renormalize returns net re-expressed against newZ0 under the given
// wave-amplitude definition. newZ0 broadcasts exactly like the z0
// argument of New: length 1 (every port, every frequency), N (per
// port), or F*N (flat f*N+p).
//
// Implementation:
//   - Stage 1: validate the network, the definition tag, and the newZ0
//     length; broadcast to the full F×N layout.
//   - Stage 2: per frequency, express incident and reflected waves of
//     the new normalization as linear combinations of the old ones
//     (a' = Ka·a, b' = Kb·a via V/I recovery), then S' = Kb·Ka⁻¹.
//
// Wave model: a = u·(V + z·I), b = w·(V − z_b·I) with per-definition
// coefficients
//   - Traveling: u = w = 1/(2√z),           z_b = z
//   - Pseudo   : u = w = √(Re z)/(2|z|),    z_b = z
//   - Power    : u = w = 1/(2√(Re z)),      z_b = conj(z)
//
// √z is the principal branch; Traveling with complex z0 is accepted on
// that basis rather than rejected.
//
// Behavior highlights:
//   - Pure transform: fresh Network, modes and names carried over.
//   - A non-invertible Ka at some frequency fails with PointError
//     wrapping ErrSingularMatrix (or NaN-fills under WithPermissive).
//
// Errors: ErrNilNetwork, ErrUnsupportedWaveDefinition,
// ErrShapeMismatch (newZ0 length), ErrSingularMatrix (per frequency,
// via PointError).
//
// Complexity: O(F*N³).
func Renormalize(net *Network, newZ0 []complex128, def WaveDefinition, opts ...Option) (*Network, error) {
	const tag = "Renormalize"
	if err := validateNotNil(tag, net); err != nil {
		return nil, err
	}
	switch def {
	case Traveling, Pseudo, Power:
	default:
		return nil, fmt.Errorf("%s: %q: %w", tag, string(def), ErrUnsupportedWaveDefinition)
	}
	o := gatherOptions(opts...)

	nF, nP := net.freq.Count(), net.n

	// Broadcast the target impedance to the full F×N layout.
	z0New := make([]complex128, nF*nP)
	switch len(newZ0) {
	case 1:
		for i := range z0New {
			z0New[i] = newZ0[0]
		}
	case nP:
		for f := 0; f < nF; f++ {
			copy(z0New[f*nP:(f+1)*nP], newZ0)
		}
	case nF * nP:
		copy(z0New, newZ0)
	default:
		return nil, fmt.Errorf("%s: newZ0 length %d (want 1, %d, or %d): %w", tag, len(newZ0), nP, nF*nP, ErrShapeMismatch)
	}

	s := make([]complex128, nF*nP*nP)
	nan := cmplx.NaN()

	// Per-port scalar workspaces, reused across frequencies.
	uNew := make([]complex128, nP)   // u' = w' of the target normalization
	zbNew := make([]complex128, nP)  // z_b' of the target normalization
	minv := make([]complex128, nP)   // 1/u of the source normalization
	d := make([]complex128, nP)      // 1/(z + z_b) of the source
	zOld := make([]complex128, nP)   // source impedance
	kaData := make([]complex128, nP*nP)
	kbData := make([]complex128, nP*nP)

	var (
		f, i, j          int
		aDiag, aOff      complex128
		bDiag, bOff      complex128
		u, zb, zN        complex128
	)
	for f = 0; f < nF; f++ {
		for i = 0; i < nP; i++ {
			zOld[i] = net.z0At(f, i)
			u, zb = waveCoefficients(def, zOld[i])
			minv[i] = 1 / u
			d[i] = 1 / (zOld[i] + zb)
			uNew[i], zbNew[i] = waveCoefficients(def, z0New[f*nP+i])
		}

		// Row i of Ka/Kb mixes the diagonal V/I recovery term with the
		// S-coupled reflected-wave term. u = w per definition, so the
		// same 1/u serves both inverse coefficients.
		for i = 0; i < nP; i++ {
			zN = z0New[f*nP+i]
			aDiag = uNew[i] * (1 - (zOld[i]-zN)*d[i]) * minv[i]
			aOff = uNew[i] * (zOld[i] - zN) * d[i] * minv[i]
			bDiag = uNew[i] * (1 - (zOld[i]+zbNew[i])*d[i]) * minv[i]
			bOff = uNew[i] * (zOld[i] + zbNew[i]) * d[i] * minv[i]
			for j = 0; j < nP; j++ {
				kaData[i*nP+j] = aOff * net.sAt(f, i, j)
				kbData[i*nP+j] = bOff * net.sAt(f, i, j)
			}
			kaData[i*nP+i] += aDiag
			kbData[i*nP+i] += bDiag
		}

		frame, err := renormFrame(kaData, kbData, nP)
		if err != nil {
			if !o.permissive {
				return nil, pointErr(net, f, ErrSingularMatrix)
			}
			for i = 0; i < nP*nP; i++ {
				s[f*nP*nP+i] = nan
			}

			continue
		}
		copy(s[f*nP*nP:(f+1)*nP*nP], frame)
	}

	modes := make([]PortMode, nP)
	copy(modes, net.modes)
	var names []string
	if net.names != nil {
		names = make([]string, nP)
		copy(names, net.names)
	}

	return &Network{freq: net.freq, n: nP, s: s, z0: z0New, modes: modes, names: names}, nil
}

// waveCoefficients returns the wave scale u (= w) and the backward-wave
// impedance z_b for one port impedance under the given definition.
func waveCoefficients(def WaveDefinition, z complex128) (u, zb complex128) {
	switch def {
	case Power:
		return complex(1/(2*math.Sqrt(real(z))), 0), cmplx.Conj(z)
	case Pseudo:
		return complex(math.Sqrt(real(z))/(2*cmplx.Abs(z)), 0), z
	default: // Traveling
		return 1 / (2 * cmplx.Sqrt(z)), z
	}
}

// renormFrame computes Kb·Ka⁻¹ for one frequency frame.
func renormFrame(kaData, kbData []complex128, n int) ([]complex128, error) {
	ka, err := cmatrix.FromSlice(n, n, kaData)
	if err != nil {
		return nil, err
	}
	kb, err := cmatrix.FromSlice(n, n, kbData)
	if err != nil {
		return nil, err
	}
	kaInv, err := cmatrix.Inverse(ka)
	if err != nil {
		return nil, err
	}
	prod, err := cmatrix.Mul(kb, kaInv)
	if err != nil {
		return nil, err
	}

	return prod.Data(), nil
}
