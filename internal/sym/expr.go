package sym

import (
	"fmt"
	"math/big"
)

// Expr is a symbolic scalar expression.
//
// Expressions are immutable values: Simplify, Subs and the constructor
// functions always return new expressions. Simplify produces a canonical
// form (flattened, constant-folded, deterministically ordered), so
// structural Equal on simplified expressions is a meaningful comparison.
//
// The interface is sealed: all implementations live in this package, which
// keeps canonical forms under the package's control.
type Expr interface {
	// Simplify returns the canonical form of the expression.
	Simplify() Expr

	// Subs applies the given symbol substitutions simultaneously and
	// returns the simplified result. Symbols not present in env are
	// left untouched.
	Subs(env map[string]Expr) Expr

	// Eval evaluates the expression numerically with the given symbol
	// bindings. It fails on unbound symbols and on undefined functions.
	Eval(env map[string]float64) (float64, error)

	// Equal reports structural equality. Compare simplified forms.
	Equal(other Expr) bool

	// String renders the expression in plain text.
	String() string

	// LaTeX renders the expression as LaTeX source.
	LaTeX() string

	// collect gathers symbol and undefined-function atoms.
	collect(set *atomSet)
}

// atomSet accumulates the atoms of an expression tree.
type atomSet struct {
	symbols map[string]struct{}
	funcs   map[string]struct{}
}

func newAtomSet() *atomSet {
	return &atomSet{
		symbols: make(map[string]struct{}),
		funcs:   make(map[string]struct{}),
	}
}

// Num is an exact rational constant.
type Num struct {
	val *big.Rat
}

// N creates an integer constant.
func N(n int64) *Num {
	return &Num{val: new(big.Rat).SetInt64(n)}
}

// F creates the fraction p/q. Panics if q is zero.
func F(p, q int64) *Num {
	if q == 0 {
		panic("sym: denominator is zero")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// NFloat creates a constant from a float64. Panics on NaN and
// infinities, which have no rational value.
func NFloat(f float64) *Num {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		panic(fmt.Sprintf("sym: non-finite float64 %v", f))
	}
	return &Num{val: r}
}

func (n *Num) Simplify() Expr { return n }

func (n *Num) Subs(map[string]Expr) Expr { return n }

func (n *Num) collect(*atomSet) {}

func (n *Num) Eval(map[string]float64) (float64, error) {
	f, _ := n.val.Float64()
	return f, nil
}

func (n *Num) Equal(other Expr) bool {
	o, ok := other.(*Num)
	return ok && n.val.Cmp(o.val) == 0
}

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func (n *Num) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(n.val)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return fmt.Sprintf("%s\\frac{%s}{%s}", sign, v.Num().String(), v.Denom().String())
}

// Float64 returns the nearest float64 value.
func (n *Num) Float64() float64 {
	f, _ := n.val.Float64()
	return f
}

// Rat returns a copy of the underlying rational.
func (n *Num) Rat() *big.Rat { return new(big.Rat).Set(n.val) }

func (n *Num) IsZero() bool { return n.val.Sign() == 0 }

func (n *Num) IsOne() bool { return n.val.Cmp(ratOne) == 0 }

func (n *Num) IsNegOne() bool { return n.val.Cmp(ratNegOne) == 0 }

func (n *Num) IsInteger() bool { return n.val.IsInt() }

func (n *Num) IsNegative() bool { return n.val.Sign() < 0 }

var (
	ratOne    = new(big.Rat).SetInt64(1)
	ratNegOne = new(big.Rat).SetInt64(-1)
)

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Num) *Num    { return &Num{val: new(big.Rat).Neg(a.val)} }

func numRecip(a *Num) *Num {
	if a.IsZero() {
		panic("sym: division by zero")
	}
	return &Num{val: new(big.Rat).Inv(a.val)}
}

// Symbol is a named symbolic variable.
type Symbol struct {
	name string
}

// S creates a symbol with the given name.
func S(name string) *Symbol {
	return &Symbol{name: name}
}

// Symbols creates one symbol per name, in order. Convenient for
// coordinate charts: sym.Symbols("t", "r", "theta", "phi").
func Symbols(names ...string) []*Symbol {
	syms := make([]*Symbol, len(names))
	for i, name := range names {
		syms[i] = S(name)
	}
	return syms
}

// Name returns the symbol's name.
func (s *Symbol) Name() string { return s.name }

func (s *Symbol) Simplify() Expr { return s }

func (s *Symbol) Subs(env map[string]Expr) Expr {
	if v, ok := env[s.name]; ok {
		return v
	}
	return s
}

func (s *Symbol) Eval(env map[string]float64) (float64, error) {
	v, ok := env[s.name]
	if !ok {
		return 0, fmt.Errorf("sym: unbound symbol %q", s.name)
	}
	return v, nil
}

func (s *Symbol) Equal(other Expr) bool {
	o, ok := other.(*Symbol)
	return ok && s.name == o.name
}

func (s *Symbol) String() string { return s.name }
func (s *Symbol) LaTeX() string  { return s.name }

func (s *Symbol) collect(set *atomSet) {
	set.symbols[s.name] = struct{}{}
}

// FreeSymbols returns the distinct symbols of an expression, sorted by name.
func FreeSymbols(e Expr) []*Symbol {
	set := newAtomSet()
	e.collect(set)
	return symbolSlice(set.symbols)
}

// Functions returns the distinct undefined-function names of an
// expression, sorted. Builtin functions (sin, exp, ...) are not reported.
func Functions(e Expr) []string {
	set := newAtomSet()
	e.collect(set)
	return sortedKeys(set.funcs)
}
