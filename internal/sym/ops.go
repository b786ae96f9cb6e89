package sym

import (
	"math"
	"sort"
	"strings"
)

// Add is an n-ary sum.
type Add struct {
	terms []Expr
}

// AddOf builds the simplified sum of the given terms.
func AddOf(terms ...Expr) Expr {
	return (&Add{terms: terms}).Simplify()
}

// Terms returns the summands of the canonical form.
func (a *Add) Terms() []Expr { return a.terms }

// Simplify flattens nested sums, folds rational constants and collects
// like terms by their numeric coefficient. Terms are ordered by their
// rendered form, with the constant last, so the result is deterministic.
func (a *Add) Simplify() Expr {
	flat := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		s := t.Simplify()
		if inner, ok := s.(*Add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, s)
		}
	}

	constant := N(0)
	type group struct {
		coeff *Num
		part  Expr
	}
	groups := map[string]*group{}
	order := []string{}
	for _, t := range flat {
		coeff, part := splitCoeff(t)
		if part == nil {
			constant = numAdd(constant, coeff)
			continue
		}
		key := part.String()
		g, seen := groups[key]
		if !seen {
			g = &group{coeff: N(0), part: part}
			groups[key] = g
			order = append(order, key)
		}
		g.coeff = numAdd(g.coeff, coeff)
	}
	sort.Strings(order)

	result := make([]Expr, 0, len(order)+1)
	for _, key := range order {
		g := groups[key]
		switch {
		case g.coeff.IsZero():
		case g.coeff.IsOne():
			result = append(result, g.part)
		default:
			result = append(result, mulCoeff(g.coeff, g.part))
		}
	}
	if !constant.IsZero() {
		result = append(result, constant)
	}

	switch len(result) {
	case 0:
		return N(0)
	case 1:
		return result[0]
	}
	return &Add{terms: result}
}

// splitCoeff splits a simplified term into its numeric coefficient and
// the remaining symbolic part. A pure constant yields a nil part.
func splitCoeff(t Expr) (*Num, Expr) {
	switch v := t.(type) {
	case *Num:
		return v, nil
	case *Mul:
		if c, ok := v.factors[0].(*Num); ok {
			rest := v.factors[1:]
			if len(rest) == 1 {
				return c, rest[0]
			}
			return c, &Mul{factors: rest}
		}
	}
	return N(1), t
}

// mulCoeff attaches a numeric coefficient to an already-simplified part.
func mulCoeff(c *Num, part Expr) Expr {
	if m, ok := part.(*Mul); ok {
		return &Mul{factors: append([]Expr{c}, m.factors...)}
	}
	return &Mul{factors: []Expr{c, part}}
}

func (a *Add) Subs(env map[string]Expr) Expr {
	terms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		terms[i] = t.Subs(env)
	}
	return AddOf(terms...)
}

func (a *Add) Eval(env map[string]float64) (float64, error) {
	acc := 0.0
	for _, t := range a.terms {
		v, err := t.Eval(env)
		if err != nil {
			return 0, err
		}
		acc += v
	}
	return acc, nil
}

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (a *Add) String() string {
	if len(a.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (a *Add) LaTeX() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.LaTeX()
	}
	return strings.Join(parts, " + ")
}

func (a *Add) collect(set *atomSet) {
	for _, t := range a.terms {
		t.collect(set)
	}
}

// Mul is an n-ary product.
type Mul struct {
	factors []Expr
}

// MulOf builds the simplified product of the given factors.
func MulOf(factors ...Expr) Expr {
	return (&Mul{factors: factors}).Simplify()
}

// Factors returns the factors of the canonical form. A numeric
// coefficient, when present, is the first factor.
func (m *Mul) Factors() []Expr { return m.factors }

// Simplify flattens nested products, folds rational constants into a
// single leading coefficient and merges equal bases by summing their
// exponents, so g * g^-1 cancels to 1. Factors are ordered by their
// rendered form.
func (m *Mul) Simplify() Expr {
	flat := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		s := f.Simplify()
		if inner, ok := s.(*Mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, s)
		}
	}

	coeff := N(1)
	type group struct {
		base Expr
		exps []Expr
	}
	groups := map[string]*group{}
	order := []string{}
	for _, f := range flat {
		if v, ok := f.(*Num); ok {
			coeff = numMul(coeff, v)
			continue
		}
		base, exp := splitPow(f)
		key := base.String()
		g, seen := groups[key]
		if !seen {
			g = &group{base: base}
			groups[key] = g
			order = append(order, key)
		}
		g.exps = append(g.exps, exp)
	}
	if coeff.IsZero() {
		return N(0)
	}

	rebuilt := make([]Expr, 0, len(order))
	for _, key := range order {
		g := groups[key]
		var f Expr
		if len(g.exps) == 1 {
			f = PowOf(g.base, g.exps[0])
		} else {
			f = PowOf(g.base, AddOf(g.exps...))
		}
		if v, ok := f.(*Num); ok {
			coeff = numMul(coeff, v)
			continue
		}
		rebuilt = append(rebuilt, f)
	}
	if coeff.IsZero() {
		return N(0)
	}
	if len(rebuilt) == 0 {
		return coeff
	}

	sort.Slice(rebuilt, func(i, j int) bool {
		return rebuilt[i].String() < rebuilt[j].String()
	})

	if coeff.IsOne() {
		if len(rebuilt) == 1 {
			return rebuilt[0]
		}
		return &Mul{factors: rebuilt}
	}
	return &Mul{factors: append([]Expr{coeff}, rebuilt...)}
}

// splitPow views a simplified factor as base^exp.
func splitPow(f Expr) (base, exp Expr) {
	if p, ok := f.(*Pow); ok {
		return p.base, p.exp
	}
	return f, N(1)
}

func (m *Mul) Subs(env map[string]Expr) Expr {
	factors := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		factors[i] = f.Subs(env)
	}
	return MulOf(factors...)
}

func (m *Mul) Eval(env map[string]float64) (float64, error) {
	acc := 1.0
	for _, f := range m.factors {
		v, err := f.Eval(env)
		if err != nil {
			return 0, err
		}
		acc *= v
	}
	return acc, nil
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func (m *Mul) String() string {
	if len(m.factors) == 0 {
		return "1"
	}
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

func (m *Mul) LaTeX() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = "\\left(" + f.LaTeX() + "\\right)"
		} else {
			parts[i] = f.LaTeX()
		}
	}
	return strings.Join(parts, " ")
}

func (m *Mul) collect(set *atomSet) {
	for _, f := range m.factors {
		f.collect(set)
	}
}

// Pow is base^exp.
type Pow struct {
	base, exp Expr
}

// PowOf builds the simplified power base^exp.
func PowOf(base, exp Expr) Expr {
	return (&Pow{base: base, exp: exp}).Simplify()
}

// Base returns the base of the power.
func (p *Pow) Base() Expr { return p.base }

// Exp returns the exponent of the power.
func (p *Pow) Exp() Expr { return p.exp }

func (p *Pow) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()

	if en, ok := exp.(*Num); ok {
		if en.IsZero() {
			return N(1)
		}
		if en.IsOne() {
			return base
		}
	}

	if bn, ok := base.(*Num); ok {
		// 0^0 and 0^negative stay unevaluated.
		if bn.IsZero() {
			if en, ok2 := exp.(*Num); ok2 && (en.IsZero() || en.IsNegative()) {
				return &Pow{base: base, exp: exp}
			}
			return N(0)
		}
		if bn.IsOne() {
			return N(1)
		}
		if en, ok2 := exp.(*Num); ok2 && en.IsInteger() {
			e := en.val.Num().Int64()
			if e >= -maxFoldExp && e <= maxFoldExp {
				result := N(1)
				for i := int64(0); i < absInt64(e); i++ {
					result = numMul(result, bn)
				}
				if e < 0 {
					result = numRecip(result)
				}
				return result
			}
		}
	}

	// (b^m)^n -> b^(m*n)
	if inner, ok := base.(*Pow); ok {
		return PowOf(inner.base, MulOf(inner.exp, exp))
	}

	return &Pow{base: base, exp: exp}
}

// maxFoldExp bounds constant folding of integer powers.
const maxFoldExp = 20

func absInt64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func (p *Pow) Subs(env map[string]Expr) Expr {
	return PowOf(p.base.Subs(env), p.exp.Subs(env))
}

func (p *Pow) Eval(env map[string]float64) (float64, error) {
	b, err := p.base.Eval(env)
	if err != nil {
		return 0, err
	}
	e, err := p.exp.Eval(env)
	if err != nil {
		return 0, err
	}
	return math.Pow(b, e), nil
}

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

func (p *Pow) String() string {
	baseStr := p.base.String()
	switch p.base.(type) {
	case *Add, *Mul, *Pow:
		baseStr = "(" + baseStr + ")"
	}
	expStr := p.exp.String()
	if needsExpParens(p.exp) {
		expStr = "(" + expStr + ")"
	}
	return baseStr + "^" + expStr
}

func needsExpParens(exp Expr) bool {
	switch v := exp.(type) {
	case *Add, *Mul, *Pow:
		return true
	case *Num:
		return v.IsNegative() || !v.IsInteger()
	}
	return false
}

func (p *Pow) LaTeX() string {
	baseStr := p.base.LaTeX()
	switch p.base.(type) {
	case *Add, *Mul, *Pow:
		baseStr = "\\left(" + baseStr + "\\right)"
	}
	return baseStr + "^{" + p.exp.LaTeX() + "}"
}

func (p *Pow) collect(set *atomSet) {
	p.base.collect(set)
	p.exp.collect(set)
}

func symbolSlice(names map[string]struct{}) []*Symbol {
	keys := sortedKeys(names)
	syms := make([]*Symbol, len(keys))
	for i, name := range keys {
		syms[i] = S(name)
	}
	return syms
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
