// SPDX-License-Identifier: MIT

// Package touchstone reads and writes Touchstone v1 (.sNp) S-parameter
// files as network.Network values.
//
// Supported surface:
//   - `!` comment lines and trailing comments,
//   - the `#` option line (frequency unit, parameter S, format RI/MA/DB,
//     `R <z0>`),
//   - the standard two-port column-order quirk (S11 S21 S12 S22),
//   - row-major data wrapping across physical lines for N ≥ 3.
//
// Out of scope: Touchstone v2 keywords, noise-parameter blocks, and
// parameters other than S.
package touchstone
