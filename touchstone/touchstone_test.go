// SPDX-License-Identifier: MIT

package touchstone_test

import (
	"bytes"
	"math/cmplx"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rfnet/cmatrix"
	"github.com/katalvlaran/rfnet/frequency"
	"github.com/katalvlaran/rfnet/network"
	"github.com/katalvlaran/rfnet/touchstone"
)

const s2pSample = `! A two-point, two-port sample.
# GHZ S RI R 50
1 0.1 0.0  0.8 -0.1  0.7 -0.2  0.05 0.0  ! record one
2 0.2 0.1  0.7 -0.3  0.6 -0.4  0.10 0.1
`

// sAt reads one S-entry or fails the test.
func sAt(t *testing.T, net *network.Network, f, i, j int) complex128 {
	t.Helper()
	v, err := net.SAt(f, i, j)
	require.NoError(t, err)

	return v
}

// TestRead_TwoPortRI verifies option-line parsing, comment stripping
// and the two-port column-order quirk (second pair is S21).
func TestRead_TwoPortRI(t *testing.T) {
	net, err := touchstone.Read(strings.NewReader(s2pSample), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, net.NumPorts())
	assert.Equal(t, 2, net.NumFreqs())
	assert.Equal(t, 1e9, net.Frequency().PointHz(0))
	assert.Equal(t, frequency.GHz, net.Frequency().Unit())

	z, err := net.Z0At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex(50, 0), z)

	assert.Equal(t, complex(0.1, 0.0), sAt(t, net, 0, 0, 0), "S11")
	assert.Equal(t, complex(0.8, -0.1), sAt(t, net, 0, 1, 0), "second pair is S21")
	assert.Equal(t, complex(0.7, -0.2), sAt(t, net, 0, 0, 1), "third pair is S12")
	assert.Equal(t, complex(0.05, 0.0), sAt(t, net, 0, 1, 1), "S22")
}

// TestRead_OnePortMA decodes magnitude/angle data, defaults included.
func TestRead_OnePortMA(t *testing.T) {
	// No option line: v1 defaults are GHz, MA, R 50.
	net, err := touchstone.Read(strings.NewReader("1 0.5 90\n2 0.5 180\n"), 1)
	require.NoError(t, err)

	assert.InDelta(t, 0, cmplx.Abs(sAt(t, net, 0, 0, 0)-complex(0, 0.5)), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(sAt(t, net, 1, 0, 0)-complex(-0.5, 0)), 1e-12)
}

// TestRead_OnePortDB decodes dB/angle data: −20 dB at 0° is 0.1.
func TestRead_OnePortDB(t *testing.T) {
	net, err := touchstone.Read(strings.NewReader("# MHZ S DB R 75\n100 -20 0\n"), 1)
	require.NoError(t, err)

	assert.Equal(t, 100e6, net.Frequency().PointHz(0))
	assert.InDelta(t, 0, cmplx.Abs(sAt(t, net, 0, 0, 0)-complex(0.1, 0)), 1e-12)

	z, err := net.Z0At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex(75, 0), z)
}

// TestRead_ThreePortWrapped verifies row-major assembly across wrapped
// physical lines for N ≥ 3.
func TestRead_ThreePortWrapped(t *testing.T) {
	src := `# HZ S RI R 50
1000 0.11 0 0.12 0 0.13 0
     0.21 0 0.22 0 0.23 0
     0.31 0 0.32 0 0.33 0
`
	net, err := touchstone.Read(strings.NewReader(src), 3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := complex(float64(i+1)/10+float64(j+1)/100, 0)
			assert.InDelta(t, 0, cmplx.Abs(sAt(t, net, 0, i, j)-want), 1e-12, "S%d%d", i+1, j+1)
		}
	}
}

// TestRead_Invalid covers malformed inputs.
func TestRead_Invalid(t *testing.T) {
	cases := []struct {
		name string
		src  string
		n    int
		want error
	}{
		{"bad token", "# GHZ S RI R 50\n1 abc 0\n", 1, touchstone.ErrBadRecord},
		{"short record", "# GHZ S RI R 50\n1 0.5\n", 2, touchstone.ErrBadRecord},
		{"no data", "# GHZ S RI R 50\n", 1, touchstone.ErrBadRecord},
		{"second option line", "# GHZ S RI R 50\n# GHZ S MA R 50\n1 0 0\n", 1, touchstone.ErrBadOptionLine},
		{"bad R", "# GHZ S RI R x\n1 0 0\n", 1, touchstone.ErrBadOptionLine},
		{"unknown token", "# GHZ S RI R 50 QQ\n1 0 0\n", 1, touchstone.ErrBadOptionLine},
		{"y-parameters", "# GHZ Y RI R 50\n1 0 0\n", 1, touchstone.ErrUnsupported},
		{"v2 keyword", "[Version] 2.0\n# GHZ S RI R 50\n1 0 0\n", 1, touchstone.ErrUnsupported},
		{"zero ports", "1 0 0\n", 0, touchstone.ErrBadRecord},
	}
	for _, tc := range cases {
		_, err := touchstone.Read(strings.NewReader(tc.src), tc.n)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
}

// TestRead_NonAscendingFrequency propagates the axis validation.
func TestRead_NonAscendingFrequency(t *testing.T) {
	_, err := touchstone.Read(strings.NewReader("# GHZ S RI R 50\n2 0 0\n1 0 0\n"), 1)
	assert.ErrorIs(t, err, frequency.ErrNotMonotonic)
}

// TestWriteRead_RoundTrip checks write→read fidelity for every format
// and the one/two/three-port layouts.
func TestWriteRead_RoundTrip(t *testing.T) {
	freq, err := frequency.New([]float64{1e9, 2e9}, frequency.GHz)
	require.NoError(t, err)

	for _, n := range []int{1, 2, 3} {
		data := make([]complex128, 2*n*n)
		for i := range data {
			data[i] = complex(0.02*float64(i+1), -0.01*float64(i))
		}
		s, err := cmatrix.TensorFromSlice(2, n, data)
		require.NoError(t, err)
		net, err := network.New(freq, s, []complex128{50})
		require.NoError(t, err)

		for _, format := range []touchstone.Format{touchstone.RI, touchstone.MA, touchstone.DB} {
			var buf bytes.Buffer
			require.NoError(t, touchstone.Write(&buf, net, format))

			got, err := touchstone.Read(&buf, n)
			require.NoError(t, err)
			assert.True(t, network.Equals(got, net, 1e-9, 1e-12),
				"n=%d format=%s", n, format)
		}
	}
}

// TestWrite_Unsupported rejects what the v1 header cannot express.
func TestWrite_Unsupported(t *testing.T) {
	freq, err := frequency.New([]float64{1e9}, frequency.GHz)
	require.NoError(t, err)
	s, err := cmatrix.TensorFromSlice(1, 2, make([]complex128, 4))
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.ErrorIs(t, touchstone.Write(&buf, nil, touchstone.RI), touchstone.ErrUnsupported)

	complexZ0, err := network.New(freq, s, []complex128{complex(50, 5)})
	require.NoError(t, err)
	assert.ErrorIs(t, touchstone.Write(&buf, complexZ0, touchstone.RI), touchstone.ErrUnsupported)

	unevenZ0, err := network.New(freq, s, []complex128{50, 75})
	require.NoError(t, err)
	assert.ErrorIs(t, touchstone.Write(&buf, unevenZ0, touchstone.RI), touchstone.ErrUnsupported)

	okNet, err := network.New(freq, s, []complex128{50})
	require.NoError(t, err)
	assert.ErrorIs(t, touchstone.Write(&buf, okNet, touchstone.Format("HEX")), touchstone.ErrUnsupported)
}
