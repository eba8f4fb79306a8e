// SPDX-License-Identifier: MIT

package cmatrix_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rfnet/cmatrix"
)

const eps = 1e-12

// assertCloseMat checks element-wise |got-want| ≤ eps.
func assertCloseMat(t *testing.T, want, got *cmatrix.CDense) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, 0, cmplx.Abs(g-w), eps, "entry (%d,%d): want %v got %v", i, j, w, g)
		}
	}
}

// TestNewCDense_BadShape verifies shape validation at construction.
func TestNewCDense_BadShape(t *testing.T) {
	_, err := cmatrix.NewCDense(0, 3)
	assert.ErrorIs(t, err, cmatrix.ErrBadShape)

	_, err = cmatrix.FromSlice(2, 2, []complex128{1, 2, 3}) // wrong length
	assert.ErrorIs(t, err, cmatrix.ErrBadShape)
}

// TestAtSet_Bounds verifies the bounds-checked indexers.
func TestAtSet_Bounds(t *testing.T) {
	m, err := cmatrix.NewCDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, cmatrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), cmatrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 0, 3+4i))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3+4i, v)
}

// TestAddSubScale exercises the elementwise kernels.
func TestAddSubScale(t *testing.T) {
	a, err := cmatrix.FromSlice(2, 2, []complex128{1, 2i, 3, 4})
	require.NoError(t, err)
	b, err := cmatrix.FromSlice(2, 2, []complex128{4, 3, 2i, 1})
	require.NoError(t, err)

	sum, err := cmatrix.Add(a, b)
	require.NoError(t, err)
	want, _ := cmatrix.FromSlice(2, 2, []complex128{5, 3 + 2i, 3 + 2i, 5})
	assertCloseMat(t, want, sum)

	diff, err := cmatrix.Sub(sum, b)
	require.NoError(t, err)
	assertCloseMat(t, a, diff)

	sc, err := cmatrix.Scale(a, 2i)
	require.NoError(t, err)
	wantSc, _ := cmatrix.FromSlice(2, 2, []complex128{2i, -4, 6i, 8i})
	assertCloseMat(t, wantSc, sc)

	// Shape mismatch is rejected eagerly.
	c, _ := cmatrix.NewCDense(2, 3)
	_, err = cmatrix.Add(a, c)
	assert.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}

// TestMul verifies complex matrix multiplication against a hand result.
func TestMul(t *testing.T) {
	a, _ := cmatrix.FromSlice(2, 2, []complex128{1, 1i, 0, 2})
	b, _ := cmatrix.FromSlice(2, 2, []complex128{3, 0, 1, 1i})

	got, err := cmatrix.Mul(a, b)
	require.NoError(t, err)
	want, _ := cmatrix.FromSlice(2, 2, []complex128{3 + 1i, -1, 2, 2i})
	assertCloseMat(t, want, got)

	// Inner dimension mismatch.
	c, _ := cmatrix.NewCDense(3, 2)
	_, err = cmatrix.Mul(a, c)
	assert.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}

// TestConjTranspose checks Aᴴ entries.
func TestConjTranspose(t *testing.T) {
	a, _ := cmatrix.FromSlice(2, 2, []complex128{1 + 1i, 2, 3i, 4})
	got, err := cmatrix.ConjTranspose(a)
	require.NoError(t, err)
	want, _ := cmatrix.FromSlice(2, 2, []complex128{1 - 1i, -3i, 2, 4})
	assertCloseMat(t, want, got)
}

// TestTranspose checks Aᵀ entries (no conjugation) and that errors
// carry the Transpose operation tag.
func TestTranspose(t *testing.T) {
	a, _ := cmatrix.FromSlice(2, 2, []complex128{1 + 1i, 2, 3i, 4})
	got, err := cmatrix.Transpose(a)
	require.NoError(t, err)
	want, _ := cmatrix.FromSlice(2, 2, []complex128{1 + 1i, 3i, 2, 4})
	assertCloseMat(t, want, got)

	_, err = cmatrix.Transpose(nil)
	assert.ErrorIs(t, err, cmatrix.ErrNilMatrix)
	assert.ErrorContains(t, err, "Transpose:")
}

// TestInverse_Complex inverts a complex matrix and checks A*A⁻¹ = I.
func TestInverse_Complex(t *testing.T) {
	a, _ := cmatrix.FromSlice(2, 2, []complex128{1 + 1i, 2, 3, 4 - 2i})

	inv, err := cmatrix.Inverse(a)
	require.NoError(t, err)

	prod, err := cmatrix.Mul(a, inv)
	require.NoError(t, err)
	eye, _ := cmatrix.Identity(2)
	assertCloseMat(t, eye, prod)
}

// TestInverse_PivotingRequired inverts a matrix with a zero leading
// pivot — only partial pivoting makes this succeed.
func TestInverse_PivotingRequired(t *testing.T) {
	a, _ := cmatrix.FromSlice(2, 2, []complex128{0, 1, 1, 0})

	inv, err := cmatrix.Inverse(a)
	require.NoError(t, err)
	assertCloseMat(t, a, inv) // a permutation matrix is its own inverse
}

// TestInverse_Singular ensures a rank-deficient matrix errors ErrSingular.
func TestInverse_Singular(t *testing.T) {
	a, _ := cmatrix.FromSlice(2, 2, []complex128{1, 2, 2, 4})
	_, err := cmatrix.Inverse(a)
	assert.ErrorIs(t, err, cmatrix.ErrSingular)
}

// TestCTensor_Frames verifies frame round-tripping and shape checks.
func TestCTensor_Frames(t *testing.T) {
	tns, err := cmatrix.NewCTensor(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, tns.Frames())
	assert.Equal(t, 2, tns.Dim())

	m, _ := cmatrix.FromSlice(2, 2, []complex128{1, 2i, 3, 4})
	require.NoError(t, tns.SetFrame(1, m))

	got, err := tns.Frame(1)
	require.NoError(t, err)
	assertCloseMat(t, m, got)

	// Frame 0 stays zero — SetFrame touches one frame only.
	z, err := tns.At(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(0), z)

	// Mutating the extracted frame must not alter the tensor.
	require.NoError(t, got.Set(0, 0, 99))
	v, err := tns.At(1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), v)

	// Shape violations.
	_, err = tns.Frame(5)
	assert.ErrorIs(t, err, cmatrix.ErrOutOfRange)
	bad, _ := cmatrix.NewCDense(3, 3)
	assert.ErrorIs(t, tns.SetFrame(0, bad), cmatrix.ErrDimensionMismatch)
}

// TestTensorFromSlice verifies flat construction copies its input.
func TestTensorFromSlice(t *testing.T) {
	data := []complex128{1, 2, 3, 4, 5, 6, 7, 8}
	tns, err := cmatrix.TensorFromSlice(2, 2, data)
	require.NoError(t, err)

	data[0] = -1 // mutate caller slice
	v, err := tns.At(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), v, "constructor must copy input")

	_, err = cmatrix.TensorFromSlice(2, 2, data[:5])
	assert.ErrorIs(t, err, cmatrix.ErrBadShape)
}
