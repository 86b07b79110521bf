package symbolic

import "math/big"

// Integrate returns a rule-based antiderivative of e with respect to the
// named variable, without the integration constant. It covers the grammar
// the generation pipeline emits: power rule (including 1/u), linear inner
// substitution a*u+b, exponentials, the standard trig set, and the inverse
// trig forms 1/(1+x^2) and 1/sqrt(1-x^2). ok is false when no rule
// applies; the result is then nil and the caller reports the failure
// instead of guessing.
func Integrate(e Expr, variable string) (Expr, bool) {
	switch v := e.Simplify().(type) {
	case *Number:
		return NewProduct(v, Var(variable)), true

	case *Symbol:
		if v.name == variable {
			return NewProduct(Frac(1, 2), NewPower(Var(variable), Int(2))), true
		}
		return NewProduct(v, Var(variable)), true

	case *Power:
		return integratePower(v, variable)

	case *Product:
		return integrateProduct(v, variable)

	case *Sum:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			ti, ok := Integrate(t, variable)
			if !ok {
				return nil, false
			}
			terms[i] = ti
		}
		return NewSum(terms...), true

	case *Call:
		return integrateCall(v, variable)
	}
	return nil, false
}

func integratePower(pw *Power, variable string) (Expr, bool) {
	en := numberOf(pw.exp)

	// u^n for linear u
	if en != nil {
		if a, _, ok := linearIn(pw.base, variable); ok {
			if en.IsNegOne() {
				// 1/(ax+b) -> ln|ax+b| / a
				return NewProduct(numRecip(a), Ln(Abs(pw.base))), true
			}
			next := numAdd(en, Int(1))
			return NewProduct(numRecip(numMul(a, next)), NewPower(pw.base, next)), true
		}

		// 1/(c + x^2) -> atan(x/sqrt(c)) / sqrt(c), exact roots only
		if en.IsNegOne() {
			if c, ok := matchShiftedSquare(pw.base, variable, false); ok {
				root, ok2 := exactSqrt(c)
				if ok2 {
					x := Var(variable)
					return NewProduct(numRecip(root), Atan(NewProduct(numRecip(root), x))), true
				}
			}
		}

		// 1/sqrt(1 - x^2) -> asin(x)
		if en.val.Cmp(big.NewRat(-1, 2)) == 0 {
			if c, ok := matchShiftedSquare(pw.base, variable, true); ok && c.IsOne() {
				return Asin(Var(variable)), true
			}
		}

		// sec(u)^2 and csc(u)^2 for linear u
		if en.IsInteger() && en.val.Num().Int64() == 2 {
			if call, ok := pw.base.(*Call); ok {
				if a, _, ok2 := linearIn(call.arg, variable); ok2 {
					switch call.name {
					case FuncSec:
						return NewProduct(numRecip(a), Tan(call.arg)), true
					case FuncCsc:
						return NewProduct(Int(-1), numRecip(a), Cot(call.arg)), true
					}
				}
			}
		}
	}

	// a^u for linear u: a^u / (k * ln a)
	if bn := numberOf(pw.base); bn != nil && !bn.IsNegative() && !bn.IsZero() && !bn.IsOne() {
		if a, _, ok := linearIn(pw.exp, variable); ok {
			return NewProduct(numRecip(a), pw, NewPower(Ln(bn), Int(-1))), true
		}
	}
	return nil, false
}

func integrateProduct(p *Product, variable string) (Expr, bool) {
	coeff := Int(1)
	rest := make([]Expr, 0, len(p.factors))
	for _, f := range p.factors {
		if n := numberOf(f); n != nil {
			coeff = numMul(coeff, n)
			continue
		}
		rest = append(rest, f)
	}
	if len(rest) == 0 {
		return NewProduct(coeff, Var(variable)), true
	}
	if len(rest) == 1 {
		inner, ok := Integrate(rest[0], variable)
		if !ok {
			return nil, false
		}
		return NewProduct(coeff, inner), true
	}

	// sec(u)*tan(u) -> sec(u)/a, csc(u)*cot(u) -> -csc(u)/a
	if len(rest) == 2 {
		if result, ok := integrateTrigPair(rest[0], rest[1], variable); ok {
			return NewProduct(coeff, result), true
		}
	}
	return nil, false
}

func integrateTrigPair(x, y Expr, variable string) (Expr, bool) {
	cx, okx := x.(*Call)
	cy, oky := y.(*Call)
	if !okx || !oky || !cx.arg.Equal(cy.arg) {
		return nil, false
	}
	a, _, ok := linearIn(cx.arg, variable)
	if !ok {
		return nil, false
	}
	names := cx.name + "/" + cy.name
	switch names {
	case FuncSec + "/" + FuncTan, FuncTan + "/" + FuncSec:
		return NewProduct(numRecip(a), Sec(cx.arg)), true
	case FuncCsc + "/" + FuncCot, FuncCot + "/" + FuncCsc:
		return NewProduct(Int(-1), numRecip(a), Csc(cx.arg)), true
	}
	return nil, false
}

func integrateCall(c *Call, variable string) (Expr, bool) {
	x := Var(variable)

	// Linear inner argument: chain-rule inverse picks up 1/a.
	if a, _, ok := linearIn(c.arg, variable); ok {
		switch c.name {
		case FuncSin:
			return NewProduct(Int(-1), numRecip(a), Cos(c.arg)), true
		case FuncCos:
			return NewProduct(numRecip(a), Sin(c.arg)), true
		case FuncExp:
			return NewProduct(numRecip(a), Exp(c.arg)), true
		case FuncTan:
			// tan u = -ln|cos u| / a
			return NewProduct(Int(-1), numRecip(a), Ln(Abs(Cos(c.arg)))), true
		case FuncSec:
			return NewProduct(numRecip(a), Ln(Abs(NewSum(Sec(c.arg), Tan(c.arg))))), true
		}
	}

	// Remaining rules require the bare variable as argument.
	if sym, ok := c.arg.(*Symbol); !ok || sym.name != variable {
		return nil, false
	}
	switch c.name {
	case FuncLn:
		return NewSum(NewProduct(x, Ln(x)), Neg(x)), true
	case FuncAsin:
		return NewSum(NewProduct(x, Asin(x)), Sqrt(NewSum(Int(1), Neg(NewPower(x, Int(2)))))), true
	case FuncAtan:
		return NewSum(NewProduct(x, Atan(x)), NewProduct(Frac(-1, 2), Ln(NewSum(Int(1), NewPower(x, Int(2)))))), true
	}
	return nil, false
}

// linearIn matches a*variable + b with constant a != 0 and constant b,
// returning the slope.
func linearIn(e Expr, variable string) (a, b *Number, ok bool) {
	a, b = Int(0), Int(0)
	terms := []Expr{e}
	if s, isSum := e.(*Sum); isSum {
		terms = s.terms
	}
	for _, t := range terms {
		switch v := t.(type) {
		case *Number:
			b = numAdd(b, v)
		case *Symbol:
			if v.name != variable {
				return nil, nil, false
			}
			a = numAdd(a, Int(1))
		case *Product:
			c, rest := splitCoefficient(v)
			sym, isSym := rest.(*Symbol)
			if !isSym || sym.name != variable {
				return nil, nil, false
			}
			a = numAdd(a, c)
		default:
			return nil, nil, false
		}
	}
	if a.IsZero() {
		return nil, nil, false
	}
	return a, b, true
}

// matchShiftedSquare matches c + x^2 (negated=false) or c - x^2
// (negated=true) and returns the positive constant c.
func matchShiftedSquare(e Expr, variable string, negated bool) (*Number, bool) {
	s, ok := e.(*Sum)
	if !ok || len(s.terms) != 2 {
		return nil, false
	}
	var c *Number
	var sqTerm Expr
	for _, t := range s.terms {
		if n := numberOf(t); n != nil {
			c = n
			continue
		}
		sqTerm = t
	}
	if c == nil || sqTerm == nil || c.IsNegative() || c.IsZero() {
		return nil, false
	}

	want := sqTerm
	if negated {
		coeff, rest := splitCoefficient(sqTerm)
		if !coeff.IsNegOne() {
			return nil, false
		}
		want = rest
	}
	pw, ok := want.(*Power)
	if !ok {
		return nil, false
	}
	sym, ok := pw.base.(*Symbol)
	if !ok || sym.name != variable {
		return nil, false
	}
	en := numberOf(pw.exp)
	if en == nil || !en.IsInteger() || en.val.Num().Int64() != 2 {
		return nil, false
	}
	return c, true
}

// exactSqrt returns the square root of a non-negative rational when both
// numerator and denominator are perfect squares.
func exactSqrt(n *Number) (*Number, bool) {
	if n.IsNegative() {
		return nil, false
	}
	num := new(big.Int).Sqrt(n.val.Num())
	den := new(big.Int).Sqrt(n.val.Denom())
	check := new(big.Rat).SetFrac(
		new(big.Int).Mul(num, num),
		new(big.Int).Mul(den, den),
	)
	if check.Cmp(n.val) != 0 {
		return nil, false
	}
	return ratNum(new(big.Rat).SetFrac(num, den)), true
}
