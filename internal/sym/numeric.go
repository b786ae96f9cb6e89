package sym

import (
	"fmt"
	"strconv"
	"strings"
)

// NumericArray is the float64 result of evaluating an Array. It is the
// numeric backend of tensor lambdification.
type NumericArray struct {
	shape Shape
	data  []float64
}

// Rank returns the number of axes.
func (a *NumericArray) Rank() int { return len(a.shape) }

// Shape returns a copy of the array's shape.
func (a *NumericArray) Shape() Shape { return a.shape.Clone() }

// Data returns the flat row-major values.
func (a *NumericArray) Data() []float64 { return a.data }

// At returns the value at the given multi-index.
// Panics if indices are out of bounds.
func (a *NumericArray) At(indices ...int) float64 {
	return a.data[a.shape.offsetOf(a.shape.ComputeStrides(), indices...)]
}

// Item returns the single value of a rank-0 array.
// Panics if the array is not a scalar.
func (a *NumericArray) Item() float64 {
	if len(a.shape) != 0 {
		panic(fmt.Sprintf("sym: Item() only works for scalar arrays, got shape %v", a.shape))
	}
	return a.data[0]
}

// String renders the array as nested lists.
func (a *NumericArray) String() string {
	var build func(shape Shape, flat []float64) string
	build = func(shape Shape, flat []float64) string {
		if len(shape) == 0 {
			return strconv.FormatFloat(flat[0], 'g', -1, 64)
		}
		chunk := len(flat) / shape[0]
		parts := make([]string, shape[0])
		for i := range parts {
			parts[i] = build(shape[1:], flat[i*chunk:(i+1)*chunk])
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return build(a.shape, a.data)
}
