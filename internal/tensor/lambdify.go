package tensor

import (
	"fmt"

	"github.com/grtensor/grtensor/internal/sym"
)

// TensorFunc is a lambdified tensor: a callable that evaluates the
// whole array numerically for one positional argument per symbol.
type TensorFunc func(vals ...float64) (*sym.NumericArray, error)

// Lambdify produces a numeric function for the tensor's array together
// with the ordered argument list it expects.
//
// With no explicit arguments the order is the coordinate symbols
// followed by the free variables, in that fixed order. An explicit
// argument list is used verbatim as the callable's argument order; no
// check that it covers all free symbols is performed, so a symbol left
// uncovered surfaces as an evaluation error when the callable runs.
//
// Example:
//
//	args, fn := base.Lambdify()
//	vals, err := fn(0, 1.5) // one value per symbol in args
func (t *BaseRelativityTensor) Lambdify(args ...*sym.Symbol) ([]*sym.Symbol, TensorFunc) {
	var order []*sym.Symbol
	if len(args) == 0 {
		order = make([]*sym.Symbol, 0, len(t.syms)+len(t.variables))
		order = append(order, t.syms...)
		order = append(order, t.variables...)
	} else {
		order = append([]*sym.Symbol(nil), args...)
	}

	arr := t.arr
	fn := func(vals ...float64) (*sym.NumericArray, error) {
		if len(vals) != len(order) {
			return nil, fmt.Errorf("tensor: expected %d arguments, got %d", len(order), len(vals))
		}
		env := make(map[string]float64, len(order))
		for i, s := range order {
			env[s.Name()] = vals[i]
		}
		return arr.Eval(env)
	}
	return order, fn
}
