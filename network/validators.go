// SPDX-License-Identifier: MIT
// Package network: canonical precondition validators.
// All preconditions run before any tensor computation starts — a
// failed operation never produces a partial result.

package network

import (
	"fmt"

	"gonum.org/v1/gonum/cmplxs/cscalar"
)

// validateNotNil guards against nil networks at facade boundaries.
func validateNotNil(tag string, nets ...*Network) error {
	for _, n := range nets {
		if n == nil {
			return fmt.Errorf("%s: %w", tag, ErrNilNetwork)
		}
	}

	return nil
}

// validatePort checks a single port index against the port count.
func validatePort(tag string, net *Network, port int) error {
	if port < 0 || port >= net.n {
		return fmt.Errorf("%s: port %d of %d: %w", tag, port, net.n, ErrInvalidPortIndex)
	}

	return nil
}

// validateDistinctPorts checks indices are in range and pairwise distinct.
func validateDistinctPorts(tag string, net *Network, ports ...int) error {
	seen := make(map[int]struct{}, len(ports))
	for _, p := range ports {
		if err := validatePort(tag, net, p); err != nil {
			return err
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%s: duplicate port %d: %w", tag, p, ErrInvalidPortIndex)
		}
		seen[p] = struct{}{}
	}

	return nil
}

// validateSameFrequency enforces the hard identical-grid precondition
// for binary operations. Grids compare by value, never by identity;
// mismatch is ErrFrequencyMismatch, not silent resampling.
func validateSameFrequency(tag string, a, b *Network) error {
	if !a.freq.Equal(b.freq) {
		return fmt.Errorf("%s: %w", tag, ErrFrequencyMismatch)
	}

	return nil
}

// validateJoinedZ0 checks that the reference impedances of two ports
// (possibly on different networks) agree within tol at every frequency.
// The connection engine never renormalizes implicitly.
func validateJoinedZ0(tag string, a *Network, portA int, b *Network, portB int, tol float64) error {
	nF := a.freq.Count()
	for f := 0; f < nF; f++ {
		za, zb := a.z0At(f, portA), b.z0At(f, portB)
		if !cscalar.EqualWithinAbsOrRel(za, zb, tol, tol) {
			return fmt.Errorf("%s: z0 %v ≠ %v at frequency[%d]: %w", tag, za, zb, f, ErrZ0Mismatch)
		}
	}

	return nil
}
