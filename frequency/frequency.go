// SPDX-License-Identifier: MIT

package frequency

import (
	"fmt"
	"math"
)

// Unit names the display unit of a frequency axis. Points are always
// stored in hertz; the unit only affects ScaledPoints and formatting.
type Unit string

// Supported display units and their hertz multipliers.
const (
	Hz  Unit = "Hz"
	KHz Unit = "kHz"
	MHz Unit = "MHz"
	GHz Unit = "GHz"
	THz Unit = "THz"
)

// DefaultUnit is the display unit assumed when callers have no
// preference of their own (Touchstone defaults to GHz as well).
const DefaultUnit = GHz

// Multiplier returns the factor converting one of this unit to hertz.
//
// Returns:
//   - float64: multiplier (e.g. 1e9 for GHz).
//   - error  : ErrUnknownUnit for an unrecognized unit.
//
// Complexity: O(1).
func (u Unit) Multiplier() (float64, error) {
	switch u {
	case Hz:
		return 1.0, nil
	case KHz:
		return 1e3, nil
	case MHz:
		return 1e6, nil
	case GHz:
		return 1e9, nil
	case THz:
		return 1e12, nil
	default:
		return 0, fmt.Errorf("Multiplier(%q): %w", string(u), ErrUnknownUnit)
	}
}

// Frequency is an ordered, immutable axis of strictly increasing
// frequency points, stored in hertz.
//
// The zero value is not usable; construct via New. All accessors return
// copies, so a Frequency can be shared freely across networks and
// goroutines.
type Frequency struct {
	pointsHz []float64 // strictly increasing, finite, ≥ 0; len ≥ 1
	unit     Unit      // display unit, validated at construction
}

// New constructs a Frequency from points expressed in hertz.
//
// Implementation:
//   - Stage 1: validate unit, count, finiteness and strict monotonicity.
//   - Stage 2: defensively copy the points and freeze the value.
//
// Inputs:
//   - pointsHz: frequency points in hertz, strictly increasing, len ≥ 1.
//   - unit    : display unit for ScaledPoints and formatting.
//
// Errors:
//   - ErrUnknownUnit, ErrEmpty, ErrNaNInf, ErrNotMonotonic.
//
// Complexity: O(F) time and space.
func New(pointsHz []float64, unit Unit) (*Frequency, error) {
	if _, err := unit.Multiplier(); err != nil {
		return nil, err
	}
	if len(pointsHz) == 0 {
		return nil, ErrEmpty
	}

	// Single pass: finiteness, sign and strict ordering together.
	var prev float64
	for i, p := range pointsHz {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return nil, fmt.Errorf("point[%d]=%g: %w", i, p, ErrNaNInf)
		}
		if i > 0 && p <= prev {
			return nil, fmt.Errorf("point[%d]=%g ≤ point[%d]=%g: %w", i, p, i-1, prev, ErrNotMonotonic)
		}
		prev = p
	}

	cp := make([]float64, len(pointsHz))
	copy(cp, pointsHz)

	return &Frequency{pointsHz: cp, unit: unit}, nil
}

// NewScaled constructs a Frequency from points expressed in the given
// unit (e.g. {1, 2, 3} in GHz). Convenience over New.
func NewScaled(points []float64, unit Unit) (*Frequency, error) {
	mult, err := unit.Multiplier()
	if err != nil {
		return nil, err
	}
	hz := make([]float64, len(points))
	for i, p := range points {
		hz[i] = p * mult
	}

	return New(hz, unit)
}

// Count returns the number of frequency points F.
// Complexity: O(1).
func (f *Frequency) Count() int { return len(f.pointsHz) }

// Unit returns the display unit.
// Complexity: O(1).
func (f *Frequency) Unit() Unit { return f.unit }

// PointHz returns the i-th point in hertz. It panics on an
// out-of-range index, mirroring slice semantics: the index is always a
// loop variable bounded by Count in practice.
// Complexity: O(1).
func (f *Frequency) PointHz(i int) float64 { return f.pointsHz[i] }

// PointsHz returns a copy of all points in hertz.
// Complexity: O(F).
func (f *Frequency) PointsHz() []float64 {
	cp := make([]float64, len(f.pointsHz))
	copy(cp, f.pointsHz)

	return cp
}

// ScaledPoints returns a copy of all points expressed in the display
// unit. Complexity: O(F).
func (f *Frequency) ScaledPoints() []float64 {
	mult, _ := f.unit.Multiplier() // unit validated at construction
	cp := make([]float64, len(f.pointsHz))
	for i, p := range f.pointsHz {
		cp[i] = p / mult
	}

	return cp
}

// Equal reports whether two axes are equal by value: same point count
// and bit-identical hertz values. Display units are cosmetic and do
// not participate — a 1 GHz point equals a 1e9 Hz point.
//
// Complexity: O(F).
func (f *Frequency) Equal(other *Frequency) bool {
	if f == nil || other == nil {
		return f == other
	}
	if len(f.pointsHz) != len(other.pointsHz) {
		return false
	}
	for i, p := range f.pointsHz {
		if p != other.pointsHz[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer: "201 points, 1-9 GHz" style.
func (f *Frequency) String() string {
	mult, _ := f.unit.Multiplier()
	lo := f.pointsHz[0] / mult
	hi := f.pointsHz[len(f.pointsHz)-1] / mult

	return fmt.Sprintf("%d points, %g-%g %s", len(f.pointsHz), lo, hi, string(f.unit))
}
