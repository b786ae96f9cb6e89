package sym

import (
	"fmt"
	"math"
	"strings"
)

// builtins maps the elementary functions the kernel can evaluate
// numerically. Any other function name is an undefined function: it is
// carried through Simplify and Subs untouched, fails Eval, and is what
// Functions reports.
var builtins = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"exp":   math.Exp,
	"ln":    math.Log,
	"abs":   math.Abs,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"floor": math.Floor,
	"ceil":  math.Ceil,
}

// Func is a named function application, builtin or undefined.
type Func struct {
	name string
	args []Expr
}

// FuncOf applies the named function to the given arguments and
// simplifies. Names outside the builtin table create undefined
// functions, e.g. FuncOf("f", S("r")) for an unknown f(r).
func FuncOf(name string, args ...Expr) Expr {
	return (&Func{name: name, args: args}).Simplify()
}

// Elementary function constructors.

func SinOf(arg Expr) Expr { return FuncOf("sin", arg) }
func CosOf(arg Expr) Expr { return FuncOf("cos", arg) }
func TanOf(arg Expr) Expr { return FuncOf("tan", arg) }
func ExpOf(arg Expr) Expr { return FuncOf("exp", arg) }
func LnOf(arg Expr) Expr  { return FuncOf("ln", arg) }
func AbsOf(arg Expr) Expr { return FuncOf("abs", arg) }

// SqrtOf is arg^(1/2).
func SqrtOf(arg Expr) Expr { return PowOf(arg, F(1, 2)) }

// Name returns the function name.
func (f *Func) Name() string { return f.name }

// Args returns the application's arguments.
func (f *Func) Args() []Expr { return f.args }

// IsUndefined reports whether the function has no builtin meaning.
func (f *Func) IsUndefined() bool {
	_, ok := builtins[f.name]
	return !ok
}

func (f *Func) Simplify() Expr {
	args := make([]Expr, len(f.args))
	for i, a := range f.args {
		args[i] = a.Simplify()
	}
	out := &Func{name: f.name, args: args}
	if len(args) != 1 {
		return out
	}
	n, ok := args[0].(*Num)
	if !ok {
		return out
	}
	// Exact special values only; general numeric evaluation is Eval's job.
	switch f.name {
	case "sin", "tan", "asin", "atan", "sinh", "tanh":
		if n.IsZero() {
			return N(0)
		}
	case "cos", "cosh", "exp":
		if n.IsZero() {
			return N(1)
		}
	case "ln":
		if n.IsOne() {
			return N(0)
		}
	case "abs":
		if n.IsNegative() {
			return numNeg(n)
		}
		return n
	case "floor", "ceil":
		if n.IsInteger() {
			return n
		}
	}
	return out
}

func (f *Func) Subs(env map[string]Expr) Expr {
	args := make([]Expr, len(f.args))
	for i, a := range f.args {
		args[i] = a.Subs(env)
	}
	return FuncOf(f.name, args...)
}

func (f *Func) Eval(env map[string]float64) (float64, error) {
	fn, ok := builtins[f.name]
	if !ok {
		return 0, fmt.Errorf("sym: undefined function %q", f.name)
	}
	if len(f.args) != 1 {
		return 0, fmt.Errorf("sym: %s expects 1 argument, got %d", f.name, len(f.args))
	}
	v, err := f.args[0].Eval(env)
	if err != nil {
		return 0, err
	}
	return fn(v), nil
}

func (f *Func) Equal(other Expr) bool {
	o, ok := other.(*Func)
	if !ok || f.name != o.name || len(f.args) != len(o.args) {
		return false
	}
	for i := range f.args {
		if !f.args[i].Equal(o.args[i]) {
			return false
		}
	}
	return true
}

func (f *Func) String() string {
	parts := make([]string, len(f.args))
	for i, a := range f.args {
		parts[i] = a.String()
	}
	return f.name + "(" + strings.Join(parts, ", ") + ")"
}

func (f *Func) LaTeX() string {
	parts := make([]string, len(f.args))
	for i, a := range f.args {
		parts[i] = a.LaTeX()
	}
	name := f.name
	if !f.IsUndefined() {
		name = "\\" + name
	}
	return name + "\\left(" + strings.Join(parts, ", ") + "\\right)"
}

func (f *Func) collect(set *atomSet) {
	if f.IsUndefined() {
		set.funcs[f.name] = struct{}{}
	}
	for _, a := range f.args {
		a.collect(set)
	}
}
