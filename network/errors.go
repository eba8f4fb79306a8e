// SPDX-License-Identifier: MIT
// Package network: sentinel error set (unified, consistent).
// All operations return these sentinels, wrapped with context via %w
// where useful; tests match them with errors.Is. Per-frequency failures
// travel inside PointError so callers can recover the exact point.

package network

import (
	"errors"
	"fmt"
)

var (
	// ErrNilNetwork indicates a nil *Network receiver or argument.
	ErrNilNetwork = errors.New("network: nil network")

	// ErrShapeMismatch indicates inconsistent tensor shapes at
	// construction or a port-count mismatch between operands.
	ErrShapeMismatch = errors.New("network: shape mismatch")

	// ErrFrequencyMismatch indicates that two operands carry different
	// frequency grids. This is a hard precondition failure: operands
	// are never resampled silently.
	ErrFrequencyMismatch = errors.New("network: frequency grid mismatch")

	// ErrInvalidPortIndex indicates an out-of-range or duplicate port
	// index argument.
	ErrInvalidPortIndex = errors.New("network: invalid port index")

	// ErrZ0Mismatch indicates that two ports being joined do not share
	// the same reference impedance. Renormalize first; the connection
	// engine never renormalizes implicitly.
	ErrZ0Mismatch = errors.New("network: reference impedance mismatch at joined ports")

	// ErrSingularMatrix indicates a non-invertible matrix during a
	// Z/Y/ABCD/T conversion or a renormalization solve. Wrapped in a
	// PointError carrying the offending frequency.
	ErrSingularMatrix = errors.New("network: singular matrix")

	// ErrSingularConnection indicates a vanishing denominator in the
	// port-pair elimination — a physically resonant, ill-posed
	// connection at that frequency. Wrapped in a PointError.
	ErrSingularConnection = errors.New("network: singular connection")

	// ErrModeConversion indicates an invalid mixed-mode request:
	// 2p > N, a port pair with mismatched z0, or converting ports whose
	// mode tags do not match the requested direction.
	ErrModeConversion = errors.New("network: invalid mode conversion")

	// ErrUnsupportedWaveDefinition indicates an unknown wave
	// definition tag passed to Renormalize.
	ErrUnsupportedWaveDefinition = errors.New("network: unsupported wave definition")
)

// PointError reports a per-frequency numerical failure together with
// the exact frequency point it occurred at, letting the caller decide
// whether to exclude the point, relax the tolerance, or abort.
//
// It unwraps to the underlying sentinel, so
// errors.Is(err, ErrSingularConnection) keeps working.
type PointError struct {
	// FreqIndex is the index of the offending frequency point.
	FreqIndex int

	// FreqHz is the offending frequency value in hertz.
	FreqHz float64

	// Err is the underlying sentinel (ErrSingularMatrix or
	// ErrSingularConnection).
	Err error
}

// Error implements the error interface.
func (e *PointError) Error() string {
	return fmt.Sprintf("%v (frequency[%d] = %g Hz)", e.Err, e.FreqIndex, e.FreqHz)
}

// Unwrap exposes the underlying sentinel for errors.Is matching.
func (e *PointError) Unwrap() error { return e.Err }

// pointErr builds a PointError for frequency index f of net.
func pointErr(net *Network, f int, sentinel error) error {
	return &PointError{FreqIndex: f, FreqHz: net.freq.PointHz(f), Err: sentinel}
}
