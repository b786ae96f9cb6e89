package sym

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// jsonExpr is the wire form of an expression node. Exactly one payload
// field is populated per node type.
type jsonExpr struct {
	Type    string      `json:"type"`
	Value   string      `json:"value,omitempty"`   // num
	Name    string      `json:"name,omitempty"`    // sym, func
	Terms   []*jsonExpr `json:"terms,omitempty"`   // add
	Factors []*jsonExpr `json:"factors,omitempty"` // mul
	Base    *jsonExpr   `json:"base,omitempty"`    // pow
	Exp     *jsonExpr   `json:"exp,omitempty"`     // pow
	Args    []*jsonExpr `json:"args,omitempty"`    // func
}

// ToJSON serializes an expression. Round-tripping a simplified
// expression through FromJSON reproduces it exactly: rationals are
// encoded as exact strings, not floats.
func ToJSON(e Expr) ([]byte, error) {
	return json.Marshal(encodeExpr(e))
}

// FromJSON deserializes an expression produced by ToJSON.
func FromJSON(data []byte) (Expr, error) {
	var node jsonExpr
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("sym: decoding expression: %w", err)
	}
	return decodeExpr(&node)
}

func encodeExpr(e Expr) *jsonExpr {
	switch v := e.(type) {
	case *Num:
		return &jsonExpr{Type: "num", Value: v.val.RatString()}
	case *Symbol:
		return &jsonExpr{Type: "sym", Name: v.name}
	case *Add:
		return &jsonExpr{Type: "add", Terms: encodeList(v.terms)}
	case *Mul:
		return &jsonExpr{Type: "mul", Factors: encodeList(v.factors)}
	case *Pow:
		return &jsonExpr{Type: "pow", Base: encodeExpr(v.base), Exp: encodeExpr(v.exp)}
	case *Func:
		return &jsonExpr{Type: "func", Name: v.name, Args: encodeList(v.args)}
	}
	panic(fmt.Sprintf("sym: unknown expression type %T", e))
}

func encodeList(es []Expr) []*jsonExpr {
	out := make([]*jsonExpr, len(es))
	for i, e := range es {
		out[i] = encodeExpr(e)
	}
	return out
}

func decodeExpr(node *jsonExpr) (Expr, error) {
	switch node.Type {
	case "num":
		r, ok := new(big.Rat).SetString(node.Value)
		if !ok {
			return nil, fmt.Errorf("sym: invalid rational %q", node.Value)
		}
		return &Num{val: r}, nil
	case "sym":
		if node.Name == "" {
			return nil, fmt.Errorf("sym: symbol node without a name")
		}
		return S(node.Name), nil
	case "add":
		terms, err := decodeList(node.Terms)
		if err != nil {
			return nil, err
		}
		return AddOf(terms...), nil
	case "mul":
		factors, err := decodeList(node.Factors)
		if err != nil {
			return nil, err
		}
		return MulOf(factors...), nil
	case "pow":
		if node.Base == nil || node.Exp == nil {
			return nil, fmt.Errorf("sym: pow node without base or exp")
		}
		base, err := decodeExpr(node.Base)
		if err != nil {
			return nil, err
		}
		exp, err := decodeExpr(node.Exp)
		if err != nil {
			return nil, err
		}
		return PowOf(base, exp), nil
	case "func":
		if node.Name == "" {
			return nil, fmt.Errorf("sym: func node without a name")
		}
		args, err := decodeList(node.Args)
		if err != nil {
			return nil, err
		}
		return FuncOf(node.Name, args...), nil
	}
	return nil, fmt.Errorf("sym: unknown expression node type %q", node.Type)
}

func decodeList(nodes []*jsonExpr) ([]Expr, error) {
	out := make([]Expr, len(nodes))
	for i, n := range nodes {
		e, err := decodeExpr(n)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
