// SPDX-License-Identifier: MIT

package frequency_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rfnet/frequency"
)

// TestNew_Valid verifies construction, count and hertz round-trip.
func TestNew_Valid(t *testing.T) {
	f, err := frequency.New([]float64{1e9, 2e9, 3e9}, frequency.GHz)
	require.NoError(t, err)

	assert.Equal(t, 3, f.Count())
	assert.Equal(t, frequency.GHz, f.Unit())
	assert.Equal(t, 2e9, f.PointHz(1))
	assert.Equal(t, []float64{1e9, 2e9, 3e9}, f.PointsHz())
	assert.Equal(t, []float64{1, 2, 3}, f.ScaledPoints())
}

// TestNew_SinglePoint confirms F = 1 is a valid axis.
func TestNew_SinglePoint(t *testing.T) {
	f, err := frequency.New([]float64{50e6}, frequency.MHz)
	require.NoError(t, err)
	assert.Equal(t, 1, f.Count())
}

// TestNew_Empty ensures an empty point list errors ErrEmpty.
func TestNew_Empty(t *testing.T) {
	_, err := frequency.New(nil, frequency.Hz)
	assert.ErrorIs(t, err, frequency.ErrEmpty)
}

// TestNew_NotMonotonic ensures duplicates and descents are rejected.
func TestNew_NotMonotonic(t *testing.T) {
	_, err := frequency.New([]float64{1e9, 1e9}, frequency.Hz)
	assert.ErrorIs(t, err, frequency.ErrNotMonotonic, "duplicate point must error")

	_, err = frequency.New([]float64{2e9, 1e9}, frequency.Hz)
	assert.ErrorIs(t, err, frequency.ErrNotMonotonic, "descending points must error")
}

// TestNew_NonFinite ensures NaN, Inf and negative points are rejected.
func TestNew_NonFinite(t *testing.T) {
	for _, p := range []float64{math.NaN(), math.Inf(1), -1} {
		_, err := frequency.New([]float64{p}, frequency.Hz)
		assert.ErrorIs(t, err, frequency.ErrNaNInf)
	}
}

// TestNew_UnknownUnit ensures an unrecognized unit errors ErrUnknownUnit.
func TestNew_UnknownUnit(t *testing.T) {
	_, err := frequency.New([]float64{1}, frequency.Unit("PHz"))
	assert.ErrorIs(t, err, frequency.ErrUnknownUnit)
}

// TestNewScaled verifies unit scaling into hertz.
func TestNewScaled(t *testing.T) {
	f, err := frequency.NewScaled([]float64{1, 2}, frequency.GHz)
	require.NoError(t, err)
	assert.Equal(t, []float64{1e9, 2e9}, f.PointsHz())
}

// TestEqual_ByValue verifies value equality across distinct instances
// and display units.
func TestEqual_ByValue(t *testing.T) {
	a, err := frequency.New([]float64{1e9, 2e9}, frequency.GHz)
	require.NoError(t, err)
	b, err := frequency.New([]float64{1e9, 2e9}, frequency.Hz) // other unit, same values
	require.NoError(t, err)
	c, err := frequency.New([]float64{1e9, 2.5e9}, frequency.GHz)
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "units are cosmetic; values match")
	assert.False(t, a.Equal(c), "different values must not compare equal")
}

// TestImmutability confirms accessor slices are defensive copies.
func TestImmutability(t *testing.T) {
	pts := []float64{1e9, 2e9}
	f, err := frequency.New(pts, frequency.GHz)
	require.NoError(t, err)

	pts[0] = 0 // mutate the caller-owned input
	assert.Equal(t, 1e9, f.PointHz(0), "constructor must copy input")

	got := f.PointsHz()
	got[1] = 0 // mutate the returned copy
	assert.Equal(t, 2e9, f.PointHz(1), "accessor must return a copy")
}
