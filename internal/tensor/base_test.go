package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grtensor/grtensor/internal/sym"
)

func symNames(syms []*sym.Symbol) []string {
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.Name()
	}
	return names
}

func TestNewBase(t *testing.T) {
	tm, r := sym.S("t"), sym.S("r")
	x, v := sym.S("x"), sym.S("v")
	arr := [][]sym.Expr{
		{sym.MulOf(tm, x), sym.N(0)},
		{sym.N(0), sym.MulOf(r, v)},
	}

	base, err := NewBase(arr, []*sym.Symbol{tm, r}, "ll", WithName("demo"))
	require.NoError(t, err)

	assert.Equal(t, 2, base.Order())
	assert.Equal(t, 2, base.Dims())
	assert.Equal(t, []string{"t", "r"}, symNames(base.Symbols()))
	assert.Equal(t, "demo", base.Name())
	assert.Nil(t, base.ParentMetric())

	// Auto-computed variables exclude coordinate symbols, sorted by name.
	assert.Equal(t, []string{"v", "x"}, symNames(base.Variables()))
	assert.Empty(t, base.Functions())
}

func TestNewBaseDerivesFunctions(t *testing.T) {
	r := sym.S("r")
	arr := []sym.Expr{sym.FuncOf("f", r), sym.SinOf(r), sym.FuncOf("g", sym.FuncOf("f", r))}

	base, err := NewBase(arr, []*sym.Symbol{r}, "l")
	require.NoError(t, err)
	assert.Equal(t, []string{"f", "g"}, base.Functions())
	assert.Empty(t, base.Variables(), "builtin sin introduces no variables beyond r")
}

func TestNewBaseExplicitMetadataBypassesDerivation(t *testing.T) {
	tm, r, x := sym.S("t"), sym.S("r"), sym.S("x")
	arr := []sym.Expr{sym.MulOf(tm, x), r}

	base, err := NewBase(arr, []*sym.Symbol{tm, r}, "l",
		WithVariables(sym.S("q")),
		WithFunctions("h"))
	require.NoError(t, err)

	assert.Equal(t, []string{"q"}, symNames(base.Variables()))
	assert.Equal(t, []string{"h"}, base.Functions())
}

func TestNewBaseErrors(t *testing.T) {
	tm := sym.S("t")

	_, err := NewBase(nil, []*sym.Symbol{tm}, "ll")
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = NewBase([]sym.Expr{tm}, nil, "l")
	assert.ErrorIs(t, err, ErrInvalidMetadata)

	_, err = NewBase([]sym.Expr{tm}, []*sym.Symbol{}, "l")
	assert.ErrorIs(t, err, ErrInvalidMetadata)

	_, err = NewBase([]sym.Expr{tm}, []*sym.Symbol{nil}, "l")
	assert.ErrorIs(t, err, ErrInvalidMetadata)

	_, err = NewBase([]sym.Expr{tm}, []*sym.Symbol{tm}, "lx")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestBaseParentMetric(t *testing.T) {
	tm, r := sym.S("t"), sym.S("r")
	metric := newDiagMetric(t, sym.N(-1), sym.N(1))

	base, err := NewBase(symmetric2x2(tm, r), []*sym.Symbol{tm, r}, "ll",
		WithParentMetric(metric))
	require.NoError(t, err)
	assert.Same(t, metric, base.ParentMetric().(*diagMetric))

	// ChangeConfig with a nil metric falls back to the parent.
	up, err := base.ChangeConfig(nil, "uu")
	require.NoError(t, err)
	assert.Equal(t, "uu", up.Config())
	assert.Same(t, metric, up.ParentMetric().(*diagMetric))
	assert.Equal(t, []string{"t", "r"}, symNames(up.Symbols()))
}

func TestChangeConfigRederivesVariables(t *testing.T) {
	tm, r := sym.S("t"), sym.S("r")
	metric := newDiagMetric(t, sym.S("a"), sym.S("b"))

	base, err := NewBase(symmetric2x2(tm, r), []*sym.Symbol{tm, r}, "ll")
	require.NoError(t, err)
	assert.Empty(t, base.Variables())

	// Contraction with a symbolic metric introduces a and b; the raised
	// tensor's variables must come from the raised array, not carry over.
	up, err := base.ChangeConfig(metric, "uu")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, symNames(up.Variables()))

	// The default lambdified callable binds every symbol of the raised
	// array: T^00 = t/a^2.
	args, fn := up.Lambdify()
	assert.Equal(t, []string{"t", "r", "a", "b"}, symNames(args))
	vals, err := fn(2, 3, 2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, vals.At(0, 0), 1e-12)
	assert.InDelta(t, 1.5, vals.At(0, 1), 1e-12)
	assert.InDelta(t, 2.0, vals.At(1, 1), 1e-12)
}

func TestBaseSubsRederivesVariables(t *testing.T) {
	tm, r, x := sym.S("t"), sym.S("r"), sym.S("x")
	base, err := NewBase([]sym.Expr{sym.MulOf(tm, x), r}, []*sym.Symbol{tm, r}, "l",
		WithName("sub-me"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, symNames(base.Variables()))

	got := base.Subs(map[string]sym.Expr{"x": sym.N(2)})
	assert.Equal(t, "l", got.Config())
	assert.Equal(t, "sub-me", got.Name())
	assert.Empty(t, got.Variables(), "substituted variable should disappear")
	assert.True(t, got.At(0).Equal(sym.MulOf(sym.N(2), tm)))
}

func TestBaseRankInvariantAcrossOperations(t *testing.T) {
	tm, r := sym.S("t"), sym.S("r")
	metric := newDiagMetric(t, sym.N(-1), sym.N(1))
	base, err := NewBase(symmetric2x2(tm, r), []*sym.Symbol{tm, r}, "ll")
	require.NoError(t, err)

	check := func(tt *BaseRelativityTensor) {
		t.Helper()
		assert.Equal(t, tt.Order(), len(tt.Config()))
		assert.Equal(t, tt.Order(), tt.Array().Rank())
	}
	check(base)
	check(base.Subs(map[string]sym.Expr{"r": sym.N(1)}))
	check(base.Simplify())
	up, err := base.ChangeConfig(metric, "ul")
	require.NoError(t, err)
	check(up)
}

func TestBaseGoString(t *testing.T) {
	tm := sym.S("t")
	base, err := NewBase([]sym.Expr{tm}, []*sym.Symbol{tm}, "l")
	require.NoError(t, err)
	assert.Equal(t, `BaseRelativityTensor([t], "l")`, base.GoString())
}

func TestLambdifyDefaultOrder(t *testing.T) {
	tm, r, v := sym.S("t"), sym.S("r"), sym.S("v")
	arr := [][]sym.Expr{
		{tm, r},
		{r, sym.MulOf(tm, v)},
	}
	base, err := NewBase(arr, []*sym.Symbol{tm, r}, "ll")
	require.NoError(t, err)

	args, fn := base.Lambdify()
	assert.Equal(t, []string{"t", "r", "v"}, symNames(args),
		"coordinate symbols first, then free variables")

	vals, err := fn(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, sym.Shape{2, 2}, vals.Shape())
	assert.InDelta(t, 2.0, vals.At(0, 0), 1e-12)
	assert.InDelta(t, 3.0, vals.At(0, 1), 1e-12)
	assert.InDelta(t, 8.0, vals.At(1, 1), 1e-12)
}

func TestLambdifyExplicitArgsVerbatim(t *testing.T) {
	tm, r := sym.S("t"), sym.S("r")
	base, err := NewBase([]sym.Expr{sym.AddOf(tm, r)}, []*sym.Symbol{tm, r}, "l")
	require.NoError(t, err)

	// Reversed order, used verbatim.
	args, fn := base.Lambdify(r, tm)
	assert.Equal(t, []string{"r", "t"}, symNames(args))
	vals, err := fn(10, 1)
	require.NoError(t, err)
	assert.InDelta(t, 11.0, vals.At(0), 1e-12)

	// An argument list that misses a symbol fails at call time.
	_, fn = base.Lambdify(tm)
	_, err = fn(1)
	assert.Error(t, err)
}

func TestLambdifyArgumentCount(t *testing.T) {
	tm := sym.S("t")
	base, err := NewBase([]sym.Expr{tm}, []*sym.Symbol{tm}, "l")
	require.NoError(t, err)

	_, fn := base.Lambdify()
	_, err = fn(1, 2)
	assert.Error(t, err, "wrong arity should fail")
}

func TestLambdifyBuiltinFunctions(t *testing.T) {
	r := sym.S("r")
	base, err := NewBase([]sym.Expr{sym.SinOf(r), sym.ExpOf(r)}, []*sym.Symbol{r}, "l")
	require.NoError(t, err)

	_, fn := base.Lambdify()
	vals, err := fn(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, vals.At(0), 1e-12)
	assert.InDelta(t, 1.0, vals.At(1), 1e-12)
}

func TestLambdifyUndefinedFunctionFails(t *testing.T) {
	r := sym.S("r")
	base, err := NewBase([]sym.Expr{sym.FuncOf("f", r)}, []*sym.Symbol{r}, "l")
	require.NoError(t, err)

	_, fn := base.Lambdify()
	_, err = fn(1)
	assert.Error(t, err, "lambdified undefined function should fail to evaluate")
}
