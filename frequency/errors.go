// SPDX-License-Identifier: MIT
// Package frequency: sentinel error set.
// All constructors and validators return these sentinels (optionally
// wrapped with context via %w); tests match them with errors.Is.

package frequency

import "errors"

var (
	// ErrEmpty is returned when a frequency axis is constructed from an
	// empty point slice. An axis carries at least one point.
	ErrEmpty = errors.New("frequency: empty point list")

	// ErrNotMonotonic is returned when the supplied points are not
	// strictly increasing. Duplicates count as a violation.
	ErrNotMonotonic = errors.New("frequency: points not strictly increasing")

	// ErrNaNInf is returned when a point is NaN, ±Inf, or negative —
	// a frequency axis holds finite, non-negative hertz values only.
	ErrNaNInf = errors.New("frequency: non-finite or negative point")

	// ErrUnknownUnit is returned for a display unit outside Hz…THz.
	ErrUnknownUnit = errors.New("frequency: unknown unit")
)
