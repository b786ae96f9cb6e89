package tensor

import (
	"fmt"

	"github.com/grtensor/grtensor/internal/sym"
)

// BaseRelativityTensor is a Tensor with the physical metadata shared by
// tensorial quantities in general relativity: the coordinate symbols of
// the spacetime chart, the free variables and undefined functions
// appearing in the array, an optional owning metric, and an optional
// name.
//
// The metric reference is a non-owning association: a tensor may
// outlive its parent metric, and absence (nil) is the normal default.
type BaseRelativityTensor struct {
	Tensor

	syms      []*sym.Symbol
	variables []*sym.Symbol
	functions []string
	parent    Metric
	name      string
}

// BaseOption configures optional BaseRelativityTensor metadata.
type BaseOption func(*baseOptions)

type baseOptions struct {
	parent    Metric
	variables []*sym.Symbol
	functions []string
	name      string
	hasVars   bool
	hasFuncs  bool
}

// WithParentMetric associates the tensor with the metric it was
// derived from.
func WithParentMetric(m Metric) BaseOption {
	return func(o *baseOptions) { o.parent = m }
}

// WithVariables supplies the free-variable list explicitly, bypassing
// auto-computation entirely.
func WithVariables(vars ...*sym.Symbol) BaseOption {
	return func(o *baseOptions) {
		o.variables = vars
		o.hasVars = true
	}
}

// WithFunctions supplies the undefined-function list explicitly,
// bypassing auto-computation entirely.
func WithFunctions(names ...string) BaseOption {
	return func(o *baseOptions) {
		o.functions = names
		o.hasFuncs = true
	}
}

// WithName names the tensor.
func WithName(name string) BaseOption {
	return func(o *baseOptions) { o.name = name }
}

// NewBase creates a BaseRelativityTensor from raw array data, the
// non-empty ordered coordinate symbols of the spacetime chart, and an
// index configuration.
//
// When not supplied via options, free variables are derived by scanning
// the array's symbols and dropping the coordinate symbols, sorted by
// name; undefined functions are derived by scanning the array's
// function applications. Both derivations are deterministic given the
// array.
//
// Example:
//
//	t, r := sym.S("t"), sym.S("r")
//	base, err := tensor.NewBase(arr, []*sym.Symbol{t, r}, "ll",
//	    tensor.WithParentMetric(metric), tensor.WithName("stress-energy"))
func NewBase(arr any, syms []*sym.Symbol, config string, opts ...BaseOption) (*BaseRelativityTensor, error) {
	inner, err := New(arr, config)
	if err != nil {
		return nil, err
	}
	if len(syms) == 0 {
		return nil, fmt.Errorf("%w: coordinate symbols must be a non-empty sequence", ErrInvalidMetadata)
	}
	for i, s := range syms {
		if s == nil {
			return nil, fmt.Errorf("%w: nil coordinate symbol at position %d", ErrInvalidMetadata, i)
		}
	}

	var o baseOptions
	for _, opt := range opts {
		opt(&o)
	}

	t := &BaseRelativityTensor{
		Tensor: *inner,
		syms:   append([]*sym.Symbol(nil), syms...),
		parent: o.parent,
		name:   o.name,
	}
	if o.hasVars {
		t.variables = append([]*sym.Symbol(nil), o.variables...)
	} else {
		t.variables = deriveVariables(inner.arr, t.syms)
	}
	if o.hasFuncs {
		t.functions = append([]string(nil), o.functions...)
	} else {
		t.functions = deriveFunctions(inner.arr)
	}
	return t, nil
}

// deriveVariables scans the array's free symbols and drops the
// coordinate symbols. The result is sorted by name.
func deriveVariables(arr *sym.Array, syms []*sym.Symbol) []*sym.Symbol {
	coords := make(map[string]struct{}, len(syms))
	for _, s := range syms {
		coords[s.Name()] = struct{}{}
	}
	var vars []*sym.Symbol
	for _, s := range arr.FreeSymbols() {
		if _, isCoord := coords[s.Name()]; !isCoord {
			vars = append(vars, s)
		}
	}
	return vars
}

// deriveFunctions scans the array for undefined-function applications.
func deriveFunctions(arr *sym.Array) []string {
	return arr.Functions()
}

// Symbols returns the coordinate symbols defining the spacetime axes.
func (t *BaseRelativityTensor) Symbols() []*sym.Symbol {
	return append([]*sym.Symbol(nil), t.syms...)
}

// Dims returns the spacetime dimension, len(Symbols()).
func (t *BaseRelativityTensor) Dims() int { return len(t.syms) }

// Variables returns the free variables of the array that are not
// coordinate symbols.
func (t *BaseRelativityTensor) Variables() []*sym.Symbol {
	return append([]*sym.Symbol(nil), t.variables...)
}

// Functions returns the undefined-function names appearing in the array.
func (t *BaseRelativityTensor) Functions() []string {
	return append([]string(nil), t.functions...)
}

// ParentMetric returns the metric this tensor was derived from or is
// associated with, if any.
func (t *BaseRelativityTensor) ParentMetric() Metric { return t.parent }

// Name returns the tensor's name, or the empty string.
func (t *BaseRelativityTensor) Name() string { return t.name }

// Subs applies symbol substitutions element-wise. Coordinate symbols,
// parent metric and name carry over; variables and functions are
// re-derived, since substitution may introduce or eliminate symbols.
func (t *BaseRelativityTensor) Subs(env map[string]sym.Expr) *BaseRelativityTensor {
	return t.rewrap(t.Tensor.Subs(env))
}

// Simplify returns the tensor with every element in canonical form,
// preserving all metadata.
func (t *BaseRelativityTensor) Simplify() *BaseRelativityTensor {
	out := t.rewrap(t.Tensor.Simplify())
	out.variables = append([]*sym.Symbol(nil), t.variables...)
	out.functions = append([]string(nil), t.functions...)
	return out
}

// ChangeConfig converts the tensor to the requested index
// configuration. A nil metric falls back to the parent metric.
// Coordinate symbols, parent metric and name carry over; variables and
// functions are re-derived, since contraction with the metric may
// introduce symbols the original array did not contain.
func (t *BaseRelativityTensor) ChangeConfig(metric Metric, newcfg string) (*BaseRelativityTensor, error) {
	if metric == nil {
		metric = t.parent
	}
	inner, err := t.Tensor.ChangeConfig(metric, newcfg)
	if err != nil {
		return nil, err
	}
	return t.rewrap(inner), nil
}

func (t *BaseRelativityTensor) rewrap(inner *Tensor) *BaseRelativityTensor {
	return &BaseRelativityTensor{
		Tensor:    *inner,
		syms:      t.syms,
		variables: deriveVariables(inner.arr, t.syms),
		functions: deriveFunctions(inner.arr),
		parent:    t.parent,
		name:      t.name,
	}
}

// GoString returns a reconstructable-looking debug representation.
func (t *BaseRelativityTensor) GoString() string {
	return fmt.Sprintf("BaseRelativityTensor(%s, %q)", t.arr.String(), t.config)
}
