package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grtensor/grtensor/internal/sym"
)

func symmetric2x2(x, y sym.Expr) [][]sym.Expr {
	return [][]sym.Expr{{x, y}, {y, x}}
}

func TestNewTensor(t *testing.T) {
	x, y := sym.S("x"), sym.S("y")
	tt, err := New(symmetric2x2(x, y), "ll")
	require.NoError(t, err)
	assert.Equal(t, 2, tt.Order())
	assert.Equal(t, "ll", tt.Config())
	assert.True(t, tt.At(0, 1).Equal(y))
	assert.Equal(t, sym.Shape{2, 2}, tt.Array().Shape())
}

func TestNewTensorFromScalars(t *testing.T) {
	tt, err := New(sym.S("phi"), "")
	require.NoError(t, err)
	assert.Equal(t, 0, tt.Order())
	assert.Equal(t, "", tt.Config())

	tt, err = New(5, "")
	require.NoError(t, err)
	assert.True(t, tt.Array().Item().Equal(sym.N(5)))
}

func TestNewTensorErrors(t *testing.T) {
	x := sym.S("x")

	_, err := New(nil, "ll")
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = New("garbage", "ll")
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = New([]any{[]any{1, 2}, []any{3}}, "ll")
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = New(symmetric2x2(x, x), "lx")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = New(symmetric2x2(x, x), "")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	// Length mismatch against the array's rank.
	_, err = New(symmetric2x2(x, x), "lll")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	// Scalars only take the empty configuration.
	_, err = New(sym.N(1), "ll")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestTensorSubsPreservesConfig(t *testing.T) {
	x, y := sym.S("x"), sym.S("y")
	tt, err := New(symmetric2x2(x, y), "ul")
	require.NoError(t, err)

	got := tt.Subs(map[string]sym.Expr{"x": sym.N(2)})
	assert.Equal(t, "ul", got.Config())
	assert.Equal(t, 2, got.Order())
	assert.True(t, got.At(0, 0).Equal(sym.N(2)))

	// The receiver is untouched.
	assert.True(t, tt.At(0, 0).Equal(x))
}

func TestTensorSimplify(t *testing.T) {
	x := sym.S("x")
	tt, err := New([][]sym.Expr{
		{sym.AddOf(x, x), sym.N(0)},
		{sym.N(0), sym.MulOf(x, sym.PowOf(x, sym.N(-1)))},
	}, "ll")
	require.NoError(t, err)

	got := tt.Simplify()
	assert.Equal(t, "ll", got.Config())
	assert.True(t, got.At(0, 0).Equal(sym.MulOf(sym.N(2), x)))
	assert.True(t, got.At(1, 1).Equal(sym.N(1)))
}

func TestTensorString(t *testing.T) {
	a, b := sym.S("a"), sym.S("b")
	tt, err := New([]sym.Expr{a, b}, "l")
	require.NoError(t, err)
	assert.Equal(t, "Tensor\n[a, b]", tt.String())
	assert.Equal(t, `Tensor([a, b], "l")`, tt.GoString())
}
