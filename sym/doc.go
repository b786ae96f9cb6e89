// Copyright 2025 The grtensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sym provides the symbolic expression kernel and N-dimensional
// symbolic arrays underlying grtensor.
//
// # Expressions
//
// Expressions are immutable values built from exact rational constants,
// named symbols, sums, products, powers and function applications:
//
//	x := sym.S("x")
//	e := sym.AddOf(sym.MulOf(sym.N(2), x), sym.PowOf(x, sym.N(2)))
//
// Constructors simplify on the way in: expressions are kept in a
// deterministic canonical form, so structural Equal on simplified
// expressions is a meaningful comparison and g * g^-1 folds to 1.
//
// Function applications with names outside the builtin table (sin, cos,
// exp, ...) are undefined functions: they survive simplification, fail
// numeric evaluation, and are reported by Functions.
//
// # Arrays
//
// Array is an N-dimensional array of expressions over flat row-major
// storage. TensorProduct, Contract and MoveAxis provide the outer
// product, paired-axis contraction and axis reinsertion that index
// raising and lowering are built from.
//
// # Numeric Evaluation
//
// Eval on an expression or array produces float64 results given a
// symbol binding; it is the numeric backend behind tensor
// lambdification.
package sym
