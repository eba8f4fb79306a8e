// SPDX-License-Identifier: MIT

// Package frequency models the ordered, immutable frequency axis shared
// by every network participating in an operation.
//
// A Frequency is a strictly increasing sequence of real points, stored
// internally in hertz, together with a display unit (Hz…THz). Once
// constructed it never changes: accessors hand out copies, so a single
// axis can be shared by reference across many networks and goroutines.
//
// Two axes are interchangeable when they are equal by value — same
// point count and bit-identical hertz values. Binary network operations
// compare axes this way and refuse mismatched grids outright; silent
// resampling is never performed.
package frequency
