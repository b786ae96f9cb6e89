// Copyright 2025 The grtensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package sym

import (
	"github.com/grtensor/grtensor/internal/sym"
)

// Type aliases for public API

// Expr is a symbolic scalar expression in canonical-form discipline.
type Expr = sym.Expr

// Num is an exact rational constant.
type Num = sym.Num

// Symbol is a named symbolic variable.
type Symbol = sym.Symbol

// Add is an n-ary sum.
type Add = sym.Add

// Mul is an n-ary product.
type Mul = sym.Mul

// Pow is base^exp.
type Pow = sym.Pow

// Func is a named function application, builtin or undefined.
type Func = sym.Func

// Shape represents the dimensions of an array; nil is a scalar.
type Shape = sym.Shape

// Array is an N-dimensional array of expressions.
type Array = sym.Array

// NumericArray is the float64 result of evaluating an Array.
type NumericArray = sym.NumericArray

// Constructors

// N creates an integer constant.
func N(n int64) *Num { return sym.N(n) }

// F creates the fraction p/q. Panics if q is zero.
func F(p, q int64) *Num { return sym.F(p, q) }

// NFloat creates a constant from a float64.
func NFloat(f float64) *Num { return sym.NFloat(f) }

// S creates a symbol with the given name.
func S(name string) *Symbol { return sym.S(name) }

// Symbols creates one symbol per name, in order.
func Symbols(names ...string) []*Symbol { return sym.Symbols(names...) }

// AddOf builds the simplified sum of the given terms.
func AddOf(terms ...Expr) Expr { return sym.AddOf(terms...) }

// MulOf builds the simplified product of the given factors.
func MulOf(factors ...Expr) Expr { return sym.MulOf(factors...) }

// PowOf builds the simplified power base^exp.
func PowOf(base, exp Expr) Expr { return sym.PowOf(base, exp) }

// FuncOf applies the named function to the given arguments. Names
// outside the builtin table create undefined functions.
func FuncOf(name string, args ...Expr) Expr { return sym.FuncOf(name, args...) }

// Elementary function constructors.

func SinOf(arg Expr) Expr  { return sym.SinOf(arg) }
func CosOf(arg Expr) Expr  { return sym.CosOf(arg) }
func TanOf(arg Expr) Expr  { return sym.TanOf(arg) }
func ExpOf(arg Expr) Expr  { return sym.ExpOf(arg) }
func LnOf(arg Expr) Expr   { return sym.LnOf(arg) }
func AbsOf(arg Expr) Expr  { return sym.AbsOf(arg) }
func SqrtOf(arg Expr) Expr { return sym.SqrtOf(arg) }

// Atom scanning

// FreeSymbols returns the distinct symbols of an expression, sorted by name.
func FreeSymbols(e Expr) []*Symbol { return sym.FreeSymbols(e) }

// Functions returns the distinct undefined-function names of an
// expression, sorted.
func Functions(e Expr) []string { return sym.Functions(e) }

// Arrays

// NewArray creates an array from a shape and flat row-major data.
func NewArray(shape Shape, data []Expr) (*Array, error) { return sym.NewArray(shape, data) }

// Scalar wraps a single expression as a rank-0 array.
func Scalar(e Expr) *Array { return sym.Scalar(e) }

// FromNested normalizes nested Go data (slices of expressions, ints and
// floats) into an Array.
func FromNested(v any) (*Array, error) { return sym.FromNested(v) }

// TensorProduct returns the outer product of a and b.
func TensorProduct(a, b *Array) *Array { return sym.TensorProduct(a, b) }

// Contract sums the array over the paired axes, reducing rank by two.
func Contract(a *Array, ax1, ax2 int) *Array { return sym.Contract(a, ax1, ax2) }

// MoveAxis moves the axis at position src to position dst, shifting the
// remaining axes.
func MoveAxis(a *Array, src, dst int) *Array { return sym.MoveAxis(a, src, dst) }

// Serialization

// ToJSON serializes an expression to its exact wire form.
func ToJSON(e Expr) ([]byte, error) { return sym.ToJSON(e) }

// FromJSON deserializes an expression produced by ToJSON.
func FromJSON(data []byte) (Expr, error) { return sym.FromJSON(data) }
