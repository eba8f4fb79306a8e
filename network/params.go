// SPDX-License-Identifier: MIT
// Package network: immittance and cascade parameter conversions.
// S ↔ Z, S ↔ Y for any port count; S ↔ ABCD, S ↔ T for two-ports.
// All conversions scale through G = diag(√z0) per frequency (principal
// branch of the square root), so they remain consistent with per-port,
// per-frequency reference impedances.

package network

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/rfnet/cmatrix"
	"github.com/katalvlaran/rfnet/frequency"
)

// ZParameters converts the S-tensor to impedance parameters:
// Z = G·(I+S)·(I−S)⁻¹·G with G = diag(√z0) at each frequency.
//
// Errors: ErrSingularMatrix via PointError when (I−S) is not
// invertible at some frequency (an ideal open/short combination); NaN
// frame under WithPermissive.
//
// Complexity: O(F*N³).
func (net *Network) ZParameters(opts ...Option) (*cmatrix.CTensor, error) {
	if err := validateNotNil("ZParameters", net); err != nil {
		return nil, err
	}

	return net.immittance("ZParameters", true, gatherOptions(opts...))
}

// YParameters converts the S-tensor to admittance parameters:
// Y = G⁻¹·(I−S)·(I+S)⁻¹·G⁻¹ with G = diag(√z0) at each frequency.
//
// Errors: ErrSingularMatrix via PointError when (I+S) is not
// invertible at some frequency; NaN frame under WithPermissive.
//
// Complexity: O(F*N³).
func (net *Network) YParameters(opts ...Option) (*cmatrix.CTensor, error) {
	if err := validateNotNil("YParameters", net); err != nil {
		return nil, err
	}

	return net.immittance("YParameters", false, gatherOptions(opts...))
}

// immittance is the shared S→Z / S→Y kernel. toZ selects the numerator
// and denominator signs and whether G multiplies or divides.
func (net *Network) immittance(tag string, toZ bool, o Options) (*cmatrix.CTensor, error) {
	nF, n := net.freq.Count(), net.n
	out, err := cmatrix.NewCTensor(nF, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	g := make([]complex128, n)
	nan := cmplx.NaN()
	for f := 0; f < nF; f++ {
		for p := 0; p < n; p++ {
			g[p] = cmplx.Sqrt(net.z0At(f, p))
		}

		num := make([]complex128, n*n) // I ± S
		den := make([]complex128, n*n) // I ∓ S
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				sv := net.sAt(f, i, j)
				if toZ {
					num[i*n+j], den[i*n+j] = sv, -sv
				} else {
					num[i*n+j], den[i*n+j] = -sv, sv
				}
			}
			num[i*n+i] += 1
			den[i*n+i] += 1
		}

		frame, ferr := mulByInverse(num, den, n)
		if ferr != nil {
			if !o.permissive {
				return nil, pointErr(net, f, ErrSingularMatrix)
			}
			frame = make([]complex128, n*n)
			for i := range frame {
				frame[i] = nan
			}
		}

		// Fold in G (Z) or G⁻¹ (Y) on both sides, element-wise.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if toZ {
					frame[i*n+j] *= g[i] * g[j]
				} else {
					frame[i*n+j] /= g[i] * g[j]
				}
			}
		}

		fm, ferr := cmatrix.FromSlice(n, n, frame)
		if ferr != nil {
			return nil, fmt.Errorf("%s: %w", tag, ferr)
		}
		if ferr = out.SetFrame(f, fm); ferr != nil {
			return nil, fmt.Errorf("%s: %w", tag, ferr)
		}
	}

	return out, nil
}

// FromZ constructs a Network from impedance parameters: per frequency,
// z̃ = G⁻¹·Z·G⁻¹ and S = (z̃−I)·(z̃+I)⁻¹. The z0 argument broadcasts
// like in New (length 1, N, or F*N).
//
// Errors: as New, plus ErrSingularMatrix via PointError when (z̃+I) is
// not invertible at some frequency.
//
// Complexity: O(F*N³).
func FromZ(freq *frequency.Frequency, z *cmatrix.CTensor, z0 []complex128, opts ...Option) (*Network, error) {
	return fromImmittance("FromZ", true, freq, z, z0, opts...)
}

// FromY constructs a Network from admittance parameters: per frequency,
// ỹ = G·Y·G and S = (I−ỹ)·(I+ỹ)⁻¹. The z0 argument broadcasts like in
// New.
//
// Errors: as New, plus ErrSingularMatrix via PointError when (I+ỹ) is
// not invertible at some frequency.
//
// Complexity: O(F*N³).
func FromY(freq *frequency.Frequency, y *cmatrix.CTensor, z0 []complex128, opts ...Option) (*Network, error) {
	return fromImmittance("FromY", false, freq, y, z0, opts...)
}

// fromImmittance is the shared Z→S / Y→S kernel. It builds a Network
// through New first (reusing its z0 broadcast and metadata
// validation), then overwrites the S storage in place with the
// converted frames.
func fromImmittance(tag string, fromZ bool, freq *frequency.Frequency, m *cmatrix.CTensor, z0 []complex128, opts ...Option) (*Network, error) {
	if freq == nil || m == nil {
		return nil, fmt.Errorf("%s: %w", tag, ErrNilNetwork)
	}
	net, err := New(freq, m, z0, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	o := gatherOptions(opts...)

	nF, n := freq.Count(), net.n
	g := make([]complex128, n)
	nan := cmplx.NaN()
	for f := 0; f < nF; f++ {
		for p := 0; p < n; p++ {
			g[p] = cmplx.Sqrt(net.z0At(f, p))
		}

		// Normalize: z̃ = G⁻¹ZG⁻¹ or ỹ = G·Y·G, element-wise.
		num := make([]complex128, n*n)
		den := make([]complex128, n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v := net.sAt(f, i, j) // still holds the raw Z/Y value
				if fromZ {
					v /= g[i] * g[j]
				} else {
					v *= g[i] * g[j]
				}
				if fromZ {
					num[i*n+j], den[i*n+j] = v, v
				} else {
					num[i*n+j], den[i*n+j] = -v, v
				}
			}
			num[i*n+i] -= boolSign(fromZ) // z̃−I (fromZ) vs I−ỹ
			den[i*n+i] += 1               // z̃+I vs I+ỹ
		}

		frame, ferr := mulByInverse(num, den, n)
		if ferr != nil {
			if !o.permissive {
				return nil, pointErr(net, f, ErrSingularMatrix)
			}
			frame = make([]complex128, n*n)
			for i := range frame {
				frame[i] = nan
			}
		}
		copy(net.s[f*n*n:(f+1)*n*n], frame)
	}

	return net, nil
}

// boolSign maps true→1, false→−1 for diagonal adjustments.
func boolSign(b bool) complex128 {
	if b {
		return 1
	}

	return -1
}

// mulByInverse computes num·den⁻¹ for flat n×n frames.
func mulByInverse(num, den []complex128, n int) ([]complex128, error) {
	dm, err := cmatrix.FromSlice(n, n, den)
	if err != nil {
		return nil, err
	}
	inv, err := cmatrix.Inverse(dm)
	if err != nil {
		return nil, err
	}
	nm, err := cmatrix.FromSlice(n, n, num)
	if err != nil {
		return nil, err
	}
	prod, err := cmatrix.Mul(nm, inv)
	if err != nil {
		return nil, err
	}

	return prod.Data(), nil
}

// ABCDParameters converts a two-port S-tensor to chain (ABCD)
// parameters, honoring distinct (possibly complex) port impedances
// z01 and z02 at each frequency.
//
// Errors: ErrShapeMismatch unless N == 2; ErrSingularMatrix via
// PointError when |S21| ≤ eps (no through path); NaN frame under
// WithPermissive.
//
// Complexity: O(F).
func (net *Network) ABCDParameters(opts ...Option) (*cmatrix.CTensor, error) {
	const tag = "ABCDParameters"
	if err := validateNotNil(tag, net); err != nil {
		return nil, err
	}
	if net.n != 2 {
		return nil, fmt.Errorf("%s: %d ports: %w", tag, net.n, ErrShapeMismatch)
	}
	o := gatherOptions(opts...)

	nF := net.freq.Count()
	out, err := cmatrix.NewCTensor(nF, 2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	nan := cmplx.NaN()
	for f := 0; f < nF; f++ {
		s11, s12 := net.sAt(f, 0, 0), net.sAt(f, 0, 1)
		s21, s22 := net.sAt(f, 1, 0), net.sAt(f, 1, 1)
		z01, z02 := net.z0At(f, 0), net.z0At(f, 1)
		g1, g2 := cmplx.Sqrt(z01), cmplx.Sqrt(z02)

		var a, b, c, d complex128
		if cmplx.Abs(s21) <= o.eps {
			if !o.permissive {
				return nil, pointErr(net, f, ErrSingularMatrix)
			}
			a, b, c, d = nan, nan, nan, nan
		} else {
			den := 2 * s21
			a = (g1 / g2) * ((1+s11)*(1-s22) + s12*s21) / den
			b = g1 * g2 * ((1+s11)*(1+s22) - s12*s21) / den
			c = ((1-s11)*(1-s22) - s12*s21) / (g1 * g2 * den)
			d = (g2 / g1) * ((1-s11)*(1+s22) + s12*s21) / den
		}

		fm, ferr := cmatrix.FromSlice(2, 2, []complex128{a, b, c, d})
		if ferr != nil {
			return nil, fmt.Errorf("%s: %w", tag, ferr)
		}
		if ferr = out.SetFrame(f, fm); ferr != nil {
			return nil, fmt.Errorf("%s: %w", tag, ferr)
		}
	}

	return out, nil
}

// FromABCD constructs a two-port Network from chain (ABCD) parameters.
// The z0 argument broadcasts like in New; ports 0 and 1 take z01 and
// z02 from it per frequency.
//
// Errors: as New, plus ErrShapeMismatch unless the tensor is 2×2, and
// ErrSingularMatrix via PointError when the chain denominator
// A·z02 + B + C·z01·z02 + D·z01 vanishes.
//
// Complexity: O(F).
func FromABCD(freq *frequency.Frequency, abcd *cmatrix.CTensor, z0 []complex128, opts ...Option) (*Network, error) {
	const tag = "FromABCD"
	if freq == nil || abcd == nil {
		return nil, fmt.Errorf("%s: %w", tag, ErrNilNetwork)
	}
	if abcd.Dim() != 2 {
		return nil, fmt.Errorf("%s: %d×%d frames: %w", tag, abcd.Dim(), abcd.Dim(), ErrShapeMismatch)
	}
	net, err := New(freq, abcd, z0, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	o := gatherOptions(opts...)

	nF := freq.Count()
	nan := cmplx.NaN()
	for f := 0; f < nF; f++ {
		a, b := net.sAt(f, 0, 0), net.sAt(f, 0, 1) // raw chain values
		c, d := net.sAt(f, 1, 0), net.sAt(f, 1, 1)
		z01, z02 := net.z0At(f, 0), net.z0At(f, 1)
		g12 := cmplx.Sqrt(z01) * cmplx.Sqrt(z02)

		den := a*z02 + b + c*z01*z02 + d*z01
		var s11, s12, s21, s22 complex128
		if cmplx.Abs(den) <= o.eps {
			if !o.permissive {
				return nil, pointErr(net, f, ErrSingularMatrix)
			}
			s11, s12, s21, s22 = nan, nan, nan, nan
		} else {
			s11 = (a*z02 + b - c*z01*z02 - d*z01) / den
			s12 = 2 * (a*d - b*c) * g12 / den
			s21 = 2 * g12 / den
			s22 = (-a*z02 + b - c*z01*z02 + d*z01) / den
		}
		copy(net.s[f*4:(f+1)*4], []complex128{s11, s12, s21, s22})
	}

	return net, nil
}

// TParameters converts a two-port S-tensor to scattering-transfer (T)
// parameters, wave-cascade convention:
//
//	T = (1/S21) · [ −det S   S11 ]
//	              [ −S22     1   ]
//
// so that cascading two-ports multiplies their T matrices.
//
// Errors: ErrShapeMismatch unless N == 2; ErrSingularMatrix via
// PointError when |S21| ≤ eps; NaN frame under WithPermissive.
//
// Complexity: O(F).
func (net *Network) TParameters(opts ...Option) (*cmatrix.CTensor, error) {
	const tag = "TParameters"
	if err := validateNotNil(tag, net); err != nil {
		return nil, err
	}
	if net.n != 2 {
		return nil, fmt.Errorf("%s: %d ports: %w", tag, net.n, ErrShapeMismatch)
	}
	o := gatherOptions(opts...)

	nF := net.freq.Count()
	out, err := cmatrix.NewCTensor(nF, 2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	nan := cmplx.NaN()
	for f := 0; f < nF; f++ {
		s11, s12 := net.sAt(f, 0, 0), net.sAt(f, 0, 1)
		s21, s22 := net.sAt(f, 1, 0), net.sAt(f, 1, 1)

		var t11, t12, t21, t22 complex128
		if cmplx.Abs(s21) <= o.eps {
			if !o.permissive {
				return nil, pointErr(net, f, ErrSingularMatrix)
			}
			t11, t12, t21, t22 = nan, nan, nan, nan
		} else {
			det := s11*s22 - s12*s21
			t11, t12 = -det/s21, s11/s21
			t21, t22 = -s22/s21, 1/s21
		}

		fm, ferr := cmatrix.FromSlice(2, 2, []complex128{t11, t12, t21, t22})
		if ferr != nil {
			return nil, fmt.Errorf("%s: %w", tag, ferr)
		}
		if ferr = out.SetFrame(f, fm); ferr != nil {
			return nil, fmt.Errorf("%s: %w", tag, ferr)
		}
	}

	return out, nil
}

// FromT constructs a two-port Network from scattering-transfer (T)
// parameters (the TParameters convention). The z0 argument broadcasts
// like in New.
//
// Errors: as New, plus ErrShapeMismatch unless the tensor is 2×2, and
// ErrSingularMatrix via PointError when |T22| ≤ eps.
//
// Complexity: O(F).
func FromT(freq *frequency.Frequency, t *cmatrix.CTensor, z0 []complex128, opts ...Option) (*Network, error) {
	const tag = "FromT"
	if freq == nil || t == nil {
		return nil, fmt.Errorf("%s: %w", tag, ErrNilNetwork)
	}
	if t.Dim() != 2 {
		return nil, fmt.Errorf("%s: %d×%d frames: %w", tag, t.Dim(), t.Dim(), ErrShapeMismatch)
	}
	net, err := New(freq, t, z0, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	o := gatherOptions(opts...)

	nF := freq.Count()
	nan := cmplx.NaN()
	for f := 0; f < nF; f++ {
		t11, t12 := net.sAt(f, 0, 0), net.sAt(f, 0, 1) // raw T values
		t21, t22 := net.sAt(f, 1, 0), net.sAt(f, 1, 1)

		var s11, s12, s21, s22 complex128
		if cmplx.Abs(t22) <= o.eps {
			if !o.permissive {
				return nil, pointErr(net, f, ErrSingularMatrix)
			}
			s11, s12, s21, s22 = nan, nan, nan, nan
		} else {
			s11 = t12 / t22
			s12 = (t11*t22 - t12*t21) / t22
			s21 = 1 / t22
			s22 = -t21 / t22
		}
		copy(net.s[f*4:(f+1)*4], []complex128{s11, s12, s21, s22})
	}

	return net, nil
}
