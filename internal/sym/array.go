package sym

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Array is an N-dimensional array of symbolic expressions over flat
// row-major storage. Arrays are treated as immutable values: every
// transforming operation allocates a fresh array.
type Array struct {
	shape Shape
	data  []Expr
}

// NewArray creates an array from a shape and flat row-major data.
func NewArray(shape Shape, data []Expr) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("sym: shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}
	for i, e := range data {
		if e == nil {
			return nil, fmt.Errorf("sym: nil expression at offset %d", i)
		}
	}
	return &Array{shape: shape.Clone(), data: data}, nil
}

// Scalar wraps a single expression as a rank-0 array.
func Scalar(e Expr) *Array {
	return &Array{shape: nil, data: []Expr{e}}
}

// FromNested normalizes nested Go data into an Array. Admissible inputs:
// an *Array (returned as is), an Expr, int, int64 or float64 scalars, and
// arbitrarily nested slices of those with consistent extents.
func FromNested(v any) (*Array, error) {
	if a, ok := v.(*Array); ok {
		return a, nil
	}
	var data []Expr
	shape, err := flattenNested(v, &data)
	if err != nil {
		return nil, err
	}
	return &Array{shape: shape, data: data}, nil
}

func flattenNested(v any, out *[]Expr) (Shape, error) {
	switch t := v.(type) {
	case nil:
		return nil, fmt.Errorf("sym: nil is not a valid array element")
	case Expr:
		*out = append(*out, t)
		return nil, nil
	case int:
		*out = append(*out, N(int64(t)))
		return nil, nil
	case int64:
		*out = append(*out, N(t))
		return nil, nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("sym: non-finite float64 %v in nested data", t)
		}
		*out = append(*out, NFloat(t))
		return nil, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("sym: unsupported array element type %T", v)
	}
	n := rv.Len()
	if n == 0 {
		return nil, fmt.Errorf("sym: empty axis in nested data")
	}
	var sub Shape
	for i := 0; i < n; i++ {
		s, err := flattenNested(rv.Index(i).Interface(), out)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			sub = s
		} else if !s.Equal(sub) {
			return nil, fmt.Errorf("sym: ragged nesting: got shapes %v and %v", sub, s)
		}
	}
	return append(Shape{n}, sub...), nil
}

// Rank returns the number of axes.
func (a *Array) Rank() int { return len(a.shape) }

// Shape returns a copy of the array's shape.
func (a *Array) Shape() Shape { return a.shape.Clone() }

// NumElements returns the total number of elements.
func (a *Array) NumElements() int { return len(a.data) }

// Data returns the flat row-major element slice.
//
// WARNING: the slice is shared with the array; treat it as read-only.
func (a *Array) Data() []Expr { return a.data }

// At returns the element at the given multi-index.
// Panics if indices are out of bounds.
func (a *Array) At(indices ...int) Expr {
	return a.data[a.shape.offsetOf(a.shape.ComputeStrides(), indices...)]
}

// Item returns the single element of a rank-0 array.
// Panics if the array is not a scalar.
func (a *Array) Item() Expr {
	if len(a.shape) != 0 {
		panic(fmt.Sprintf("sym: Item() only works for scalar arrays, got shape %v", a.shape))
	}
	return a.data[0]
}

// Simplify returns the array with every element in canonical form.
func (a *Array) Simplify() *Array {
	data := make([]Expr, len(a.data))
	for i, e := range a.data {
		data[i] = e.Simplify()
	}
	return &Array{shape: a.shape.Clone(), data: data}
}

// Subs applies symbol substitutions element-wise.
func (a *Array) Subs(env map[string]Expr) *Array {
	data := make([]Expr, len(a.data))
	for i, e := range a.data {
		data[i] = e.Subs(env)
	}
	return &Array{shape: a.shape.Clone(), data: data}
}

// Eval evaluates every element numerically with the given bindings.
func (a *Array) Eval(env map[string]float64) (*NumericArray, error) {
	data := make([]float64, len(a.data))
	for i, e := range a.data {
		v, err := e.Eval(env)
		if err != nil {
			return nil, err
		}
		data[i] = v
	}
	return &NumericArray{shape: a.shape.Clone(), data: data}, nil
}

// FreeSymbols returns the distinct symbols over all elements, sorted by name.
func (a *Array) FreeSymbols() []*Symbol {
	set := newAtomSet()
	for _, e := range a.data {
		e.collect(set)
	}
	return symbolSlice(set.symbols)
}

// Functions returns the distinct undefined-function names over all
// elements, sorted.
func (a *Array) Functions() []string {
	set := newAtomSet()
	for _, e := range a.data {
		e.collect(set)
	}
	return sortedKeys(set.funcs)
}

// Equal reports symbolic equality: same shape, and every element-wise
// difference simplifies to zero.
func (a *Array) Equal(other *Array) bool {
	if other == nil || !a.shape.Equal(other.shape) {
		return false
	}
	zero := N(0)
	for i := range a.data {
		diff := AddOf(a.data[i], MulOf(N(-1), other.data[i]))
		if !diff.Equal(zero) {
			return false
		}
	}
	return true
}

// String renders the array as nested lists; a scalar renders as its
// single expression.
func (a *Array) String() string {
	return a.render(Expr.String)
}

// LaTeX renders the array as nested bracketed LaTeX lists.
func (a *Array) LaTeX() string {
	return a.render(Expr.LaTeX)
}

func (a *Array) render(f func(Expr) string) string {
	var build func(shape Shape, flat []Expr) string
	build = func(shape Shape, flat []Expr) string {
		if len(shape) == 0 {
			return f(flat[0])
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
