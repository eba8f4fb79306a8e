// SPDX-License-Identifier: MIT

package touchstone

import "errors"

var (
	// ErrBadOptionLine indicates a malformed or contradictory `#`
	// option line.
	ErrBadOptionLine = errors.New("touchstone: bad option line")

	// ErrBadRecord indicates a data line with the wrong value count,
	// an unparsable number, or a non-ascending frequency.
	ErrBadRecord = errors.New("touchstone: bad data record")

	// ErrUnsupported indicates a file feature outside the v1 S-parameter
	// subset (other parameter types, v2 keywords, noise data).
	ErrUnsupported = errors.New("touchstone: unsupported feature")
)
