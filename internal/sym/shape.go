package sym

import "fmt"

// Shape represents the dimensions of an array. A nil or empty shape is a
// scalar (rank 0).
type Shape []int

// NumElements returns the total number of elements for the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that all dimensions are positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("sym: invalid dimension at axis %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// offsetOf converts a multi-index into a flat row-major offset.
// Panics on out-of-bounds indices.
func (s Shape) offsetOf(strides []int, indices ...int) int {
	if len(indices) != len(s) {
		panic(fmt.Sprintf("sym: expected %d indices, got %d", len(s), len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= s[i] {
			panic(fmt.Sprintf("sym: index %d out of bounds for axis %d (size %d)", idx, i, s[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// indexOf converts a flat row-major offset into a multi-index.
func (s Shape) indexOf(offset int) []int {
	indices := make([]int, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		indices[i] = offset % s[i]
		offset /= s[i]
	}
	return indices
}
