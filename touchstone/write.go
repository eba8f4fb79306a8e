// SPDX-License-Identifier: MIT

package touchstone

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"strings"

	"github.com/katalvlaran/rfnet/frequency"
	"github.com/katalvlaran/rfnet/network"
)

// Write serializes net as a Touchstone v1 stream in the given format.
//
// The v1 option line carries a single scalar resistance, so the
// network must hold one uniform, purely real z0 across all ports and
// frequencies; anything else is ErrUnsupported (renormalize first).
//
// Layout: one option line using the network's display unit, then one
// record per frequency point — the two-port column-order quirk on
// output as well, and one matrix row per physical line for N ≥ 3.
//
// Errors: ErrUnsupported (nil network, non-uniform or complex z0,
// unknown format).
//
// Complexity: O(F*N²).
func Write(w io.Writer, net *network.Network, format Format) error {
	if net == nil {
		return fmt.Errorf("Write: nil network: %w", ErrUnsupported)
	}
	switch format {
	case RI, MA, DB:
	default:
		return fmt.Errorf("Write: format %q: %w", string(format), ErrUnsupported)
	}

	z0 := net.Z0()
	ref := z0[0]
	if imag(ref) != 0 {
		return fmt.Errorf("Write: complex z0 %v: %w", ref, ErrUnsupported)
	}
	for _, z := range z0 {
		if z != ref {
			return fmt.Errorf("Write: non-uniform z0: %w", ErrUnsupported)
		}
	}

	freq := net.Frequency()
	unitName, unitMult := optionUnit(freq.Unit())
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s S %s R %g\n", unitName, string(format), real(ref))

	n := net.NumPorts()
	scaled := make([]float64, freq.Count())
	for f, hz := range freq.PointsHz() {
		scaled[f] = hz / unitMult
	}
	for f := 0; f < net.NumFreqs(); f++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%g", scaled[f])
		for e := 0; e < n*n; e++ {
			i, j := entryPosition(n, e)
			v, err := net.SAt(f, i, j)
			if err != nil {
				return fmt.Errorf("Write: %w", err)
			}
			x, y := encodeEntry(format, v)
			fmt.Fprintf(&sb, " %.12g %.12g", x, y)
			// Row-major wrapping: break after each matrix row.
			if n >= 3 && e%n == n-1 && e != n*n-1 {
				sb.WriteByte('\n')
			}
		}
		sb.WriteByte('\n')
		if _, err := bw.WriteString(sb.String()); err != nil {
			return fmt.Errorf("Write: %w", err)
		}
	}

	return bw.Flush()
}

// optionUnit renders a frequency unit as its canonical option-line
// spelling with the matching divisor. Units outside the v1 vocabulary
// (THz) fall back to plain hertz.
func optionUnit(u frequency.Unit) (string, float64) {
	switch u {
	case frequency.KHz:
		return "KHZ", 1e3
	case frequency.MHz:
		return "MHZ", 1e6
	case frequency.GHz:
		return "GHZ", 1e9
	default:
		return "HZ", 1
	}
}

// encodeEntry converts one S-entry to its (x, y) file pair per format.
func encodeEntry(format Format, v complex128) (x, y float64) {
	switch format {
	case RI:
		return real(v), imag(v)
	case DB:
		return 20 * math.Log10(cmplx.Abs(v)), cmplx.Phase(v) * 180 / math.Pi
	default: // MA
		return cmplx.Abs(v), cmplx.Phase(v) * 180 / math.Pi
	}
}
