package tensor

import (
	"fmt"

	"github.com/grtensor/grtensor/internal/sym"
)

// Tensor is an immutable symbolic tensor: an N-dimensional array of
// expressions annotated with an index configuration. All transforming
// operations return a new Tensor; the underlying array is never
// mutated in place.
type Tensor struct {
	arr    *sym.Array
	config string
}

// New creates a Tensor from raw nested data (nested slices of
// expressions, ints or floats), a sym.Expr scalar, or an existing
// *sym.Array, plus an index configuration.
//
// A rank-0 (scalar) array takes the empty configuration and only the
// empty configuration; arrays of rank >= 1 require one 'u'/'l' marker
// per axis.
//
// Example:
//
//	x, y := sym.S("x"), sym.S("y")
//	t, err := tensor.New([][]sym.Expr{{x, y}, {y, x}}, "ll")
func New(arr any, config string) (*Tensor, error) {
	nd, err := normalize(arr)
	if err != nil {
		return nil, err
	}
	if err := checkConfig(config, nd.Rank()); err != nil {
		return nil, err
	}
	return &Tensor{arr: nd, config: config}, nil
}

func normalize(arr any) (*sym.Array, error) {
	if arr == nil {
		return nil, fmt.Errorf("%w: nil array", ErrInvalidType)
	}
	nd, err := sym.FromNested(arr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidType, err)
	}
	return nd, nil
}

func checkConfig(config string, rank int) error {
	if rank == 0 {
		if config != "" {
			return fmt.Errorf("%w: scalar tensor takes the empty configuration, got %q",
				ErrInvalidConfiguration, config)
		}
		return nil
	}
	if !ValidConfig(config) {
		return fmt.Errorf("%w: %q", ErrInvalidConfiguration, config)
	}
	if len(config) != rank {
		return fmt.Errorf("%w: configuration %q has %d markers for a rank-%d array",
			ErrInvalidConfiguration, config, len(config), rank)
	}
	return nil
}

// Array returns the underlying symbolic array.
//
// The array is shared with the tensor; treat it as read-only.
func (t *Tensor) Array() *sym.Array { return t.arr }

// Order returns the tensor's order (rank).
func (t *Tensor) Order() int { return len(t.config) }

// Config returns the index configuration.
func (t *Tensor) Config() string { return t.config }

// At returns the element at the given multi-index.
// Panics if indices are out of bounds.
func (t *Tensor) At(indices ...int) sym.Expr { return t.arr.At(indices...) }

// Subs applies symbol substitutions element-wise, preserving the index
// configuration. Substitution never changes array shape, so the rank
// invariant carries over untouched.
func (t *Tensor) Subs(env map[string]sym.Expr) *Tensor {
	return &Tensor{arr: t.arr.Subs(env), config: t.config}
}

// Simplify returns the tensor with every element in canonical form,
// preserving the index configuration.
func (t *Tensor) Simplify() *Tensor {
	return &Tensor{arr: t.arr.Simplify(), config: t.config}
}

// ChangeConfig converts the tensor to the requested index
// configuration by sequential per-axis contraction with the metric's
// covariant or contravariant form. The receiver is left untouched.
func (t *Tensor) ChangeConfig(metric Metric, newcfg string) (*Tensor, error) {
	arr, err := changeConfig(t.arr, t.config, metric, newcfg)
	if err != nil {
		return nil, err
	}
	return &Tensor{arr: arr, config: newcfg}, nil
}

// String returns a readable dump of the tensor contents.
func (t *Tensor) String() string {
	return "Tensor\n" + t.arr.String()
}

// GoString returns a reconstructable-looking debug representation.
func (t *Tensor) GoString() string {
	return fmt.Sprintf("Tensor(%s, %q)", t.arr.String(), t.config)
}

// LaTeX renders the tensor's array as LaTeX source.
func (t *Tensor) LaTeX() string { return t.arr.LaTeX() }
