// Copyright 2025 The grtensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/grtensor/grtensor/internal/sym"
	"github.com/grtensor/grtensor/internal/tensor"
)

// Type aliases for public API

// Tensor is an immutable symbolic tensor: an N-dimensional array of
// expressions plus an index configuration.
type Tensor = tensor.Tensor

// BaseRelativityTensor is a Tensor carrying relativity metadata:
// coordinate symbols, free variables, undefined functions, an optional
// parent metric and a name.
type BaseRelativityTensor = tensor.BaseRelativityTensor

// BaseOption configures optional BaseRelativityTensor metadata.
type BaseOption = tensor.BaseOption

// Metric supplies the covariant ("ll") and contravariant ("uu") forms
// of a rank-2 metric. Any richer metric type can satisfy it.
type Metric = tensor.Metric

// TensorFunc is a lambdified tensor: a numeric callable over the
// tensor's array.
type TensorFunc = tensor.TensorFunc

// Action is the per-axis step of a configuration change.
type Action = tensor.Action

// Per-axis actions.
const (
	NoOp  Action = tensor.NoOp
	Raise Action = tensor.Raise
	Lower Action = tensor.Lower
)

// Validation sentinels, for errors.Is checks.
var (
	ErrInvalidType          = tensor.ErrInvalidType
	ErrInvalidConfiguration = tensor.ErrInvalidConfiguration
	ErrInvalidMetadata      = tensor.ErrInvalidMetadata
)

// New creates a Tensor from raw nested data, a scalar expression or an
// existing *sym.Array, plus an index configuration ('u'/'l' markers,
// one per axis; empty for scalars).
func New(arr any, config string) (*Tensor, error) {
	return tensor.New(arr, config)
}

// NewBase creates a BaseRelativityTensor from raw array data, the
// non-empty ordered coordinate symbols of the spacetime chart, an index
// configuration and optional metadata.
func NewBase(arr any, syms []*sym.Symbol, config string, opts ...BaseOption) (*BaseRelativityTensor, error) {
	return tensor.NewBase(arr, syms, config, opts...)
}

// WithParentMetric associates the tensor with the metric it was
// derived from.
func WithParentMetric(m Metric) BaseOption { return tensor.WithParentMetric(m) }

// WithVariables supplies the free-variable list explicitly, bypassing
// auto-computation.
func WithVariables(vars ...*sym.Symbol) BaseOption { return tensor.WithVariables(vars...) }

// WithFunctions supplies the undefined-function list explicitly,
// bypassing auto-computation.
func WithFunctions(names ...string) BaseOption { return tensor.WithFunctions(names...) }

// WithName names the tensor.
func WithName(name string) BaseOption { return tensor.WithName(name) }

// ValidConfig reports whether config is a well-formed index
// configuration: non-empty, 'u'/'l' markers only.
func ValidConfig(config string) bool { return tensor.ValidConfig(config) }

// LowerConfig returns the all-covariant configuration for the given
// rank: "ll" for rank 2, and so on.
func LowerConfig(rank int) string { return tensor.LowerConfig(rank) }
