// SPDX-License-Identifier: MIT

package network_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rfnet/cmatrix"
	"github.com/katalvlaran/rfnet/frequency"
	"github.com/katalvlaran/rfnet/network"
)

// tensorAt reads one tensor element or fails the test.
func tensorAt(t *testing.T, ct *cmatrix.CTensor, f, i, j int) complex128 {
	t.Helper()
	v, err := ct.At(f, i, j)
	require.NoError(t, err)

	return v
}

// TestZParameters_OnePortLoad: Γ = 1/3 at 50 Ω is a 100 Ω impedance.
func TestZParameters_OnePortLoad(t *testing.T) {
	freq := mkFreq(t, 1e9)
	load := loadNet(t, freq, complex(1.0/3.0, 0))

	z, err := load.ZParameters()
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(tensorAt(t, z, 0, 0, 0)-100), 1e-9)
}

// TestYParameters_OnePortLoad: the same load as an admittance, 10 mS.
func TestYParameters_OnePortLoad(t *testing.T) {
	freq := mkFreq(t, 1e9)
	load := loadNet(t, freq, complex(1.0/3.0, 0))

	y, err := load.YParameters()
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(tensorAt(t, y, 0, 0, 0)-0.01), 1e-12)
}

// TestZ_RoundTrip: S → Z → S must reproduce the network.
func TestZ_RoundTrip(t *testing.T) {
	net := coupledFourPort(t)

	z, err := net.ZParameters()
	require.NoError(t, err)
	back, err := network.FromZ(net.Frequency(), z, []complex128{50})
	require.NoError(t, err)

	assert.True(t, network.Equals(back, net, 1e-9, 1e-9))
}

// TestY_RoundTrip: S → Y → S must reproduce the network.
func TestY_RoundTrip(t *testing.T) {
	net := coupledFourPort(t)

	y, err := net.YParameters()
	require.NoError(t, err)
	back, err := network.FromY(net.Frequency(), y, []complex128{50})
	require.NoError(t, err)

	assert.True(t, network.Equals(back, net, 1e-9, 1e-9))
}

// TestZParameters_SingularOpen: an ideal open (S = +1) has no finite
// impedance representation; the failure names the frequency point.
func TestZParameters_SingularOpen(t *testing.T) {
	freq := mkFreq(t, 1e9, 2e9)
	open := loadNet(t, freq, 1)

	_, err := open.ZParameters()
	require.ErrorIs(t, err, network.ErrSingularMatrix)

	var pe *network.PointError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 0, pe.FreqIndex)

	z, err := open.ZParameters(network.WithPermissive())
	require.NoError(t, err)
	assert.True(t, cmplx.IsNaN(tensorAt(t, z, 0, 0, 0)))
}

// TestYParameters_SingularShort: an ideal short (S = −1) has no finite
// admittance representation.
func TestYParameters_SingularShort(t *testing.T) {
	freq := mkFreq(t, 1e9)
	short := loadNet(t, freq, -1)

	_, err := short.YParameters()
	assert.ErrorIs(t, err, network.ErrSingularMatrix)
}

// TestABCD_MatchedLine: a lossless matched line of length θ at z0 must
// convert to [[cosθ, j·z0·sinθ], [j·sinθ/z0, cosθ]].
func TestABCD_MatchedLine(t *testing.T) {
	freq := mkFreq(t, 1e9)
	theta := math.Pi / 3
	line := lineNet(t, freq, theta)

	abcd, err := line.ABCDParameters()
	require.NoError(t, err)

	cosT, sinT := math.Cos(theta), math.Sin(theta)
	assert.InDelta(t, 0, cmplx.Abs(tensorAt(t, abcd, 0, 0, 0)-complex(cosT, 0)), 1e-12, "A")
	assert.InDelta(t, 0, cmplx.Abs(tensorAt(t, abcd, 0, 0, 1)-complex(0, 50*sinT)), 1e-12, "B")
	assert.InDelta(t, 0, cmplx.Abs(tensorAt(t, abcd, 0, 1, 0)-complex(0, sinT/50)), 1e-12, "C")
	assert.InDelta(t, 0, cmplx.Abs(tensorAt(t, abcd, 0, 1, 1)-complex(cosT, 0)), 1e-12, "D")
}

// TestABCD_RoundTrip: S → ABCD → S must reproduce the network.
func TestABCD_RoundTrip(t *testing.T) {
	freq := mkFreq(t, 1e9, 2e9)
	line := lineNet(t, freq, 0.8)

	abcd, err := line.ABCDParameters()
	require.NoError(t, err)
	back, err := network.FromABCD(freq, abcd, []complex128{50})
	require.NoError(t, err)

	assert.True(t, network.Equals(back, line, 1e-9, 1e-9))
}

// TestABCD_SeriesImpedance: FromABCD of a series impedance Z
// ([[1, Z], [0, 1]]) must show the textbook S11 = Z/(Z+2·z0).
func TestABCD_SeriesImpedance(t *testing.T) {
	freq := mkFreq(t, 1e9)
	z := complex(25, 25)
	abcd := mkTensor(t, 1, 2, []complex128{1, z, 0, 1})

	net, err := network.FromABCD(freq, abcd, []complex128{50})
	require.NoError(t, err)

	want := z / (z + 100)
	assert.InDelta(t, 0, cmplx.Abs(sAt(t, net, 0, 0, 0)-want), 1e-12)
}

// TestABCD_Preconditions: non-two-ports and blocked through paths.
func TestABCD_Preconditions(t *testing.T) {
	freq := mkFreq(t, 1e9)

	_, err := loadNet(t, freq, 0).ABCDParameters()
	assert.ErrorIs(t, err, network.ErrShapeMismatch)

	// S21 = 0: no through path, the chain form does not exist.
	isolated, err := network.New(freq, mkTensor(t, 1, 2, make([]complex128, 4)), []complex128{50})
	require.NoError(t, err)
	_, err = isolated.ABCDParameters()
	assert.ErrorIs(t, err, network.ErrSingularMatrix)
}

// TestT_CascadeIsProduct: the T-matrix of a cascade must equal the
// product of the operands' T-matrices.
func TestT_CascadeIsProduct(t *testing.T) {
	freq := mkFreq(t, 1e9)
	a := lineNet(t, freq, 0.4)
	b := lineNet(t, freq, 1.1)

	cascade, err := network.Connect(a, 1, b, 0)
	require.NoError(t, err)

	ta, err := a.TParameters()
	require.NoError(t, err)
	tb, err := b.TParameters()
	require.NoError(t, err)
	tc, err := cascade.TParameters()
	require.NoError(t, err)

	fa, err := ta.Frame(0)
	require.NoError(t, err)
	fb, err := tb.Frame(0)
	require.NoError(t, err)
	prod, err := cmatrix.Mul(fa, fb)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			got := tensorAt(t, tc, 0, i, j)
			want, err := prod.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, 0, cmplx.Abs(got-want), 1e-12)
		}
	}
}

// TestT_RoundTrip: S → T → S must reproduce the network.
func TestT_RoundTrip(t *testing.T) {
	freq := mkFreq(t, 1e9, 2e9)
	line := lineNet(t, freq, 0.6)

	tt, err := line.TParameters()
	require.NoError(t, err)
	back, err := network.FromT(freq, tt, []complex128{50})
	require.NoError(t, err)

	assert.True(t, network.Equals(back, line, 1e-9, 1e-9))
}

// TestT_Preconditions: arity and S21 = 0 rejections.
func TestT_Preconditions(t *testing.T) {
	freq := mkFreq(t, 1e9)

	_, err := loadNet(t, freq, 0).TParameters()
	assert.ErrorIs(t, err, network.ErrShapeMismatch)

	isolated, err := network.New(freq, mkTensor(t, 1, 2, make([]complex128, 4)), []complex128{50})
	require.NoError(t, err)
	_, err = isolated.TParameters()
	assert.ErrorIs(t, err, network.ErrSingularMatrix)
}

// TestFromZ_OnePort builds a 1-port straight from an impedance.
func TestFromZ_OnePort(t *testing.T) {
	freq, err := frequency.New([]float64{1e9}, frequency.GHz)
	require.NoError(t, err)
	z := mkTensor(t, 1, 1, []complex128{100})

	net, err := network.FromZ(freq, z, []complex128{50})
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(sAt(t, net, 0, 0, 0)-complex(1.0/3.0, 0)), 1e-12)
}

// TestFromT_NilAndShape covers constructor rejections shared by the
// two-port converters.
func TestFromT_NilAndShape(t *testing.T) {
	freq := mkFreq(t, 1e9)

	_, err := network.FromT(nil, mkTensor(t, 1, 2, make([]complex128, 4)), []complex128{50})
	assert.ErrorIs(t, err, network.ErrNilNetwork)

	_, err = network.FromABCD(freq, mkTensor(t, 1, 3, make([]complex128, 9)), []complex128{50})
	assert.ErrorIs(t, err, network.ErrShapeMismatch)
}
