// SPDX-License-Identifier: MIT
// Package network: functional configuration for constructors and
// engines. Options resolve against documented defaults; applying the
// same setter twice is idempotent, last writer wins.

package network

// Numeric policy defaults (single source of truth).
const (
	// DefaultEpsilon is the magnitude below which a connection
	// denominator (or a pivot guard) is considered zero.
	DefaultEpsilon = 1e-12

	// DefaultZ0Tolerance is the relative tolerance used when checking
	// that two joined ports share the same reference impedance.
	DefaultZ0Tolerance = 1e-9

	// DefaultPermissive controls whether per-frequency singularities
	// fail (false) or fill the affected slice with NaN (true).
	DefaultPermissive = false
)

// Option mutates internal options. Public entry points accept
// ...Option and resolve them via gatherOptions.
type Option func(*Options)

// Options stores the effective configuration after applying setters.
// Fields are unexported; construct through the With* setters.
type Options struct {
	// numeric policy
	eps        float64 // ≥ 0; DefaultEpsilon
	z0Tol      float64 // ≥ 0; DefaultZ0Tolerance
	permissive bool    // DefaultPermissive

	// constructor metadata (honored by New only)
	names []string
	modes []PortMode
}

// WithEpsilon sets the singularity tolerance used by the connection
// engine: a denominator with |den| ≤ eps counts as resonant.
//
// Inputs: eps ≥ 0 (negative values are clamped to 0).
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		eps = 0
	}

	return func(o *Options) { o.eps = eps }
}

// WithZ0Tolerance sets the relative tolerance for the joined-port
// reference-impedance equality check in Connect/InnerConnect.
// Complexity: O(1).
func WithZ0Tolerance(tol float64) Option {
	if tol < 0 {
		tol = 0
	}

	return func(o *Options) { o.z0Tol = tol }
}

// WithPermissive switches per-frequency singularity handling from
// fail-fast to NaN-fill: the affected frequency slice of the result is
// set to NaN and the operation continues. Use when sweeping through
// isolated resonances on purpose; the default reports the exact
// frequency and aborts.
// Complexity: O(1).
func WithPermissive() Option {
	return func(o *Options) { o.permissive = true }
}

// WithPortNames attaches per-port names at construction. The slice
// length must equal the port count; New validates it.
// Complexity: O(1) (slice copied by New).
func WithPortNames(names []string) Option {
	return func(o *Options) { o.names = names }
}

// WithPortModes sets per-port mode tags at construction (default:
// single-ended everywhere). The slice length must equal the port
// count; New validates it.
// Complexity: O(1) (slice copied by New).
func WithPortModes(modes []PortMode) Option {
	return func(o *Options) { o.modes = modes }
}

// gatherOptions applies user setters on top of defaults.
// Deterministic: last-writer-wins in argument order.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:        DefaultEpsilon,
		z0Tol:      DefaultZ0Tolerance,
		permissive: DefaultPermissive,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
