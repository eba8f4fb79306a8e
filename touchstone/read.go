// SPDX-License-Identifier: MIT

package touchstone

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/katalvlaran/rfnet/cmatrix"
	"github.com/katalvlaran/rfnet/frequency"
	"github.com/katalvlaran/rfnet/network"
)

// Format selects the numeric encoding of S-entries in a file.
type Format string

const (
	// RI encodes entries as real/imaginary pairs.
	RI Format = "RI"

	// MA encodes entries as magnitude and angle in degrees.
	MA Format = "MA"

	// DB encodes entries as 20·log10(magnitude) and angle in degrees.
	DB Format = "DB"
)

// Touchstone v1 defaults, used when the option line omits a field (or
// the whole line is missing).
const (
	defaultUnit   = frequency.GHz
	defaultFormat = MA
	defaultR      = 50.0
)

// options is the parsed `#` line.
type options struct {
	unit   frequency.Unit
	format Format
	r      float64
}

// Read parses a Touchstone v1 stream describing an nPorts-port network.
//
// Implementation:
//   - Stage 1: scan lines, strip `!` comments, parse the single `#`
//     option line, collect all numeric tokens.
//   - Stage 2: chunk tokens into records of 1 + 2·N² values, decode
//     per the declared format (with the two-port column-order quirk),
//     and assemble the Network with the declared reference resistance.
//
// Errors: ErrBadOptionLine, ErrBadRecord, ErrUnsupported, plus
// frequency-axis validation errors (e.g. non-ascending points).
//
// Complexity: O(F*N²).
func Read(r io.Reader, nPorts int) (*network.Network, error) {
	if nPorts < 1 {
		return nil, fmt.Errorf("Read: %d ports: %w", nPorts, ErrBadRecord)
	}

	opt := options{unit: defaultUnit, format: defaultFormat, r: defaultR}
	sawOptions := false
	var tokens []float64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '!'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			if sawOptions {
				return nil, fmt.Errorf("Read: line %d: second option line: %w", lineNo, ErrBadOptionLine)
			}
			sawOptions = true
			var err error
			if opt, err = parseOptionLine(line); err != nil {
				return nil, fmt.Errorf("Read: line %d: %w", lineNo, err)
			}

			continue
		}
		if strings.HasPrefix(line, "[") {
			return nil, fmt.Errorf("Read: line %d: v2 keyword %q: %w", lineNo, line, ErrUnsupported)
		}

		for _, field := range strings.Fields(line) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("Read: line %d: %q: %w", lineNo, field, ErrBadRecord)
			}
			tokens = append(tokens, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	recordLen := 1 + 2*nPorts*nPorts
	if len(tokens) == 0 || len(tokens)%recordLen != 0 {
		return nil, fmt.Errorf("Read: %d values, want a multiple of %d: %w", len(tokens), recordLen, ErrBadRecord)
	}
	nF := len(tokens) / recordLen

	pointsHz := make([]float64, nF)
	data := make([]complex128, nF*nPorts*nPorts)
	mult, err := opt.unit.Multiplier()
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	for f := 0; f < nF; f++ {
		rec := tokens[f*recordLen : (f+1)*recordLen]
		pointsHz[f] = rec[0] * mult
		for e := 0; e < nPorts*nPorts; e++ {
			v, err := decodeEntry(opt.format, rec[1+2*e], rec[2+2*e])
			if err != nil {
				return nil, fmt.Errorf("Read: frequency record %d: %w", f, err)
			}
			i, j := entryPosition(nPorts, e)
			data[(f*nPorts+i)*nPorts+j] = v
		}
	}

	freq, err := frequency.New(pointsHz, opt.unit)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	s, err := cmatrix.TensorFromSlice(nF, nPorts, data)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return network.New(freq, s, []complex128{complex(opt.r, 0)})
}

// parseOptionLine decodes `# <unit> S <format> R <n>`. Every field is
// optional and case-insensitive; order is free-form per the v1 spec.
func parseOptionLine(line string) (options, error) {
	opt := options{unit: defaultUnit, format: defaultFormat, r: defaultR}

	fields := strings.Fields(strings.TrimPrefix(line, "#"))
	for i := 0; i < len(fields); i++ {
		switch tok := strings.ToUpper(fields[i]); tok {
		case "HZ":
			opt.unit = frequency.Hz
		case "KHZ":
			opt.unit = frequency.KHz
		case "MHZ":
			opt.unit = frequency.MHz
		case "GHZ":
			opt.unit = frequency.GHz
		case "S":
			// parameter type: only S is in scope
		case "Y", "Z", "H", "G":
			return opt, fmt.Errorf("parameter type %q: %w", tok, ErrUnsupported)
		case "RI", "MA", "DB":
			opt.format = Format(tok)
		case "R":
			if i+1 >= len(fields) {
				return opt, fmt.Errorf("R without a value: %w", ErrBadOptionLine)
			}
			i++
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil || v <= 0 || math.IsInf(v, 0) {
				return opt, fmt.Errorf("R %q: %w", fields[i], ErrBadOptionLine)
			}
			opt.r = v
		default:
			return opt, fmt.Errorf("token %q: %w", fields[i], ErrBadOptionLine)
		}
	}

	return opt, nil
}

// decodeEntry converts one (x, y) pair to a complex S-entry per format.
func decodeEntry(format Format, x, y float64) (complex128, error) {
	switch format {
	case RI:
		return complex(x, y), nil
	case MA:
		return cmplx.Rect(x, y*math.Pi/180), nil
	case DB:
		return cmplx.Rect(math.Pow(10, x/20), y*math.Pi/180), nil
	default:
		return 0, fmt.Errorf("format %q: %w", string(format), ErrBadOptionLine)
	}
}

// entryPosition maps the e-th entry pair of a record to its matrix
// position. Two-port files use the historical column-major quirk
// (S11 S21 S12 S22); every other size is row-major.
func entryPosition(n, e int) (i, j int) {
	if n == 2 {
		return e % 2, e / 2
	}

	return e / n, e % n
}
