// Copyright 2025 The grtensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides symbolic tensors for general relativity.
//
// # Overview
//
// A Tensor is an immutable N-dimensional array of symbolic expressions
// annotated with an index configuration: one 'u' (upper, contravariant)
// or 'l' (lower, covariant) marker per axis. Raising or lowering an
// index contracts the corresponding axis with the contravariant or
// covariant form of a metric, supplied through the minimal Metric
// interface.
//
// # Basic Usage
//
//	import (
//	    "github.com/grtensor/grtensor/sym"
//	    "github.com/grtensor/grtensor/tensor"
//	)
//
//	func main() {
//	    x, y := sym.S("x"), sym.S("y")
//	    t, err := tensor.New([][]sym.Expr{{x, y}, {y, x}}, "ll")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    raised, err := t.ChangeConfig(metric, "ul")
//	}
//
// # Relativity Metadata
//
// BaseRelativityTensor extends Tensor with the physical bookkeeping
// shared by tensorial quantities in GR: coordinate symbols, free
// variables, undefined functions, an optional parent metric and a name.
// Its Lambdify method turns the symbolic array into a numeric callable:
//
//	base, _ := tensor.NewBase(arr, sym.Symbols("t", "r"), "ll")
//	args, fn := base.Lambdify()
//	vals, err := fn(0, 2.5) // one value per symbol in args
//
// # Immutability
//
// Tensors are values: Subs, Simplify and ChangeConfig return new
// tensors and never mutate the receiver. The only held reference is the
// non-owning parent metric association, whose absence (nil) is the
// normal default.
//
// # Errors
//
// All validation failures surface at construction or at the
// configuration-change entry point, wrapped around ErrInvalidType,
// ErrInvalidConfiguration or ErrInvalidMetadata for errors.Is checks.
package tensor
