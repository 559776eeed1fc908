// Plotpost - Plot.ly REST API Client for Go
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotpost

package plotpost

import "fmt"

// NDArray is a shaped numeric array, the Go counterpart of the numeric
// array objects the other API clients accept as data arguments. It is
// stored as a flat float64 buffer plus a shape and serializes as plain
// nested sequences of numbers, so the server sees no difference between
// an NDArray and hand-built nested slices.
type NDArray struct {
	shape []int
	data  []float64
}

// NewNDArray creates an NDArray with the given shape over data. The
// product of the shape dimensions must equal len(data).
func NewNDArray(shape []int, data []float64) (*NDArray, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("ndarray: shape must have at least one dimension")
	}
	size := 1
	for _, dim := range shape {
		if dim < 0 {
			return nil, fmt.Errorf("ndarray: negative dimension %d in shape %v", dim, shape)
		}
		size *= dim
	}
	if size != len(data) {
		return nil, fmt.Errorf("ndarray: shape %v requires %d elements, got %d", shape, size, len(data))
	}
	a := &NDArray{
		shape: append([]int(nil), shape...),
		data:  append([]float64(nil), data...),
	}
	return a, nil
}

// Vector creates a one-dimensional NDArray.
func Vector(data ...float64) *NDArray {
	a, _ := NewNDArray([]int{len(data)}, data)
	return a
}

// FromRows creates a two-dimensional NDArray from equal-length rows.
func FromRows(rows ...[]float64) (*NDArray, error) {
	if len(rows) == 0 {
		return NewNDArray([]int{0, 0}, nil)
	}
	width := len(rows[0])
	flat := make([]float64, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("ndarray: row %d has %d elements, want %d", i, len(row), width)
		}
		flat = append(flat, row...)
	}
	return NewNDArray([]int{len(rows), width}, flat)
}

// Shape returns a copy of the array's dimensions.
func (a *NDArray) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Len returns the total number of elements.
func (a *NDArray) Len() int {
	return len(a.data)
}

// Nested converts the array to plain nested sequences of numbers: a
// []float64 for the innermost dimension, wrapped in []any per outer
// dimension. This is the form the codec serializes.
func (a *NDArray) Nested() any {
	return nest(a.shape, a.data)
}

func nest(shape []int, data []float64) any {
	if len(shape) == 1 {
		// Non-nil even when empty so a zero-length dimension encodes as
		// [] like its plain counterpart, not null.
		out := make([]float64, len(data))
		copy(out, data)
		return out
	}
	stride := 1
	for _, dim := range shape[1:] {
		stride *= dim
	}
	out := make([]any, shape[0])
	for i := range out {
		out[i] = nest(shape[1:], data[i*stride:(i+1)*stride])
	}
	return out
}
