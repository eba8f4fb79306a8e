// SPDX-License-Identifier: MIT

package cmatrix

import "fmt"

// CTensor is an explicit 3-D stack of F square N×N complex frames,
// stored flat in frame-major, row-major order (index f*N*N + i*N + j).
//
// It is the shape-checked carrier for frequency-indexed matrix data:
// frame f holds the matrix of the f-th frequency point. There is no
// implicit broadcasting — frames are addressed one at a time.
type CTensor struct {
	f, n int          // frame count and square dimension
	data []complex128 // flat storage, length == f*n*n
}

// NewCTensor creates a zero tensor of frames F with N×N frames.
// Errors: ErrBadShape. Complexity: O(F*N²).
func NewCTensor(frames, n int) (*CTensor, error) {
	if frames <= 0 || n <= 0 {
		return nil, fmt.Errorf("NewCTensor(%d,%d): %w", frames, n, ErrBadShape)
	}

	return &CTensor{f: frames, n: n, data: make([]complex128, frames*n*n)}, nil
}

// TensorFromSlice creates an F×N×N tensor from flat frame-major data,
// copying it. The input length must equal frames*n*n.
// Errors: ErrBadShape. Complexity: O(F*N²).
func TensorFromSlice(frames, n int, data []complex128) (*CTensor, error) {
	if frames <= 0 || n <= 0 || len(data) != frames*n*n {
		return nil, fmt.Errorf("TensorFromSlice(%d,%d,len=%d): %w", frames, n, len(data), ErrBadShape)
	}
	cp := make([]complex128, len(data))
	copy(cp, data)

	return &CTensor{f: frames, n: n, data: cp}, nil
}

// Frames returns the frame count F. Complexity: O(1).
func (t *CTensor) Frames() int { return t.f }

// Dim returns the square frame dimension N. Complexity: O(1).
func (t *CTensor) Dim() int { return t.n }

// indexOf computes the flat index for (frame, row, col).
func (t *CTensor) indexOf(method string, f, i, j int) (int, error) {
	if f < 0 || f >= t.f || i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, fmt.Errorf("CTensor.%s(%d,%d,%d): %w", method, f, i, j, ErrOutOfRange)
	}

	return f*t.n*t.n + i*t.n + j, nil
}

// At retrieves element (i, j) of frame f.
// Errors: ErrOutOfRange. Complexity: O(1).
func (t *CTensor) At(f, i, j int) (complex128, error) {
	idx, err := t.indexOf("At", f, i, j)
	if err != nil {
		return 0, err
	}

	return t.data[idx], nil
}

// Set assigns element (i, j) of frame f.
// Errors: ErrOutOfRange. Complexity: O(1).
func (t *CTensor) Set(f, i, j int, v complex128) error {
	idx, err := t.indexOf("Set", f, i, j)
	if err != nil {
		return err
	}
	t.data[idx] = v

	return nil
}

// Frame returns a CDense copy of frame f.
// Errors: ErrOutOfRange. Complexity: O(N²).
func (t *CTensor) Frame(f int) (*CDense, error) {
	if f < 0 || f >= t.f {
		return nil, fmt.Errorf("CTensor.Frame(%d): %w", f, ErrOutOfRange)
	}
	n2 := t.n * t.n

	return FromSlice(t.n, t.n, t.data[f*n2:(f+1)*n2])
}

// SetFrame copies the N×N matrix m into frame f.
// Errors: ErrOutOfRange, ErrDimensionMismatch, ErrNilMatrix.
// Complexity: O(N²).
func (t *CTensor) SetFrame(f int, m *CDense) error {
	if m == nil {
		return fmt.Errorf("CTensor.SetFrame(%d): %w", f, ErrNilMatrix)
	}
	if f < 0 || f >= t.f {
		return fmt.Errorf("CTensor.SetFrame(%d): %w", f, ErrOutOfRange)
	}
	if m.r != t.n || m.c != t.n {
		return fmt.Errorf("CTensor.SetFrame(%d): %dx%d into %dx%d: %w", f, m.r, m.c, t.n, t.n, ErrDimensionMismatch)
	}
	n2 := t.n * t.n
	copy(t.data[f*n2:(f+1)*n2], m.data)

	return nil
}

// Clone returns a deep copy of the tensor. Complexity: O(F*N²).
func (t *CTensor) Clone() *CTensor {
	cp := make([]complex128, len(t.data))
	copy(cp, t.data)

	return &CTensor{f: t.f, n: t.n, data: cp}
}

// Data returns a flat frame-major copy of the storage.
// Complexity: O(F*N²).
func (t *CTensor) Data() []complex128 {
	cp := make([]complex128, len(t.data))
	copy(cp, t.data)

	return cp
}
