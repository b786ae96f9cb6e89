package tensor

import (
	"fmt"

	"github.com/grtensor/grtensor/internal/sym"
)

// Metric is the collaborator supplying both index forms of a rank-2
// metric: the covariant form with configuration "ll" and its inverse,
// the contravariant form, with configuration "uu". It is deliberately
// minimal so richer metric types can satisfy it without this package
// depending on them.
type Metric interface {
	CovariantForm() *sym.Array
	ContravariantForm() *sym.Array
}

// changeConfig converts arr from oldcfg to newcfg by sequential
// per-axis contraction with the appropriate metric form.
//
// For each axis i whose marker changes, the chosen metric form g is
// tensor-multiplied onto the current array and g's second axis is
// contracted against the target axis, which sits at position 2+i of the
// product. The surviving metric axis comes out at position 0 of the
// result and is moved back to position i, so every other axis keeps its
// place. Rank is unchanged throughout.
//
// Converting one axis at a time keeps the bookkeeping identical at any
// rank: the same product-contract-reinsert step applies no matter which
// or how many axes change.
func changeConfig(arr *sym.Array, oldcfg string, metric Metric, newcfg string) (*sym.Array, error) {
	if len(newcfg) != len(oldcfg) {
		return nil, fmt.Errorf("%w: requested configuration %q for a tensor of order %d",
			ErrInvalidConfiguration, newcfg, len(oldcfg))
	}
	if len(oldcfg) == 0 {
		// Scalars have no axes to transform.
		return arr, nil
	}
	if !ValidConfig(newcfg) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidConfiguration, newcfg)
	}

	// The metric forms are fetched once, on first use, so an identity
	// conversion never consults the collaborator.
	var covariant, contravariant *sym.Array

	out := arr
	for i, action := range diffActions(newcfg, oldcfg) {
		if action == NoOp {
			continue
		}
		if metric == nil {
			return nil, fmt.Errorf("%w: configuration change %q -> %q requires a metric",
				ErrInvalidMetadata, oldcfg, newcfg)
		}
		var g *sym.Array
		if action == Raise {
			if contravariant == nil {
				contravariant = metric.ContravariantForm()
			}
			g = contravariant
		} else {
			if covariant == nil {
				covariant = metric.CovariantForm()
			}
			g = covariant
		}
		product := sym.TensorProduct(g, out)
		contracted := sym.Contract(product, 1, 2+i)
		out = sym.MoveAxis(contracted, 0, i).Simplify()
	}
	return out, nil
}
