package symbolic

// Expand distributes products and integer powers over sums, then
// simplifies. Expansion is the second escalation step when a direct
// difference does not cancel.
func Expand(e Expr) Expr { return expandNode(e).Simplify() }

// expandPowCap bounds how large an integer power is multiplied out.
const expandPowCap = 10

func expandNode(e Expr) Expr {
	switch v := e.(type) {
	case *Product:
		result := Expr(Int(1))
		for _, f := range v.factors {
			result = distribute(result, expandNode(f))
		}
		return result
	case *Sum:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = expandNode(t)
		}
		return NewSum(terms...)
	case *Power:
		if n := numberOf(v.exp); n != nil && n.IsInteger() && !n.IsNegative() {
			k := n.val.Num().Int64()
			if k >= 2 && k <= expandPowCap {
				base := expandNode(v.base)
				result := base
				for i := int64(1); i < k; i++ {
					result = distribute(result, base)
				}
				return result
			}
		}
		return NewPower(expandNode(v.base), expandNode(v.exp))
	case *Call:
		return NewCall(v.name, expandNode(v.arg))
	}
	return e
}

// distribute multiplies two expanded expressions term by term, so the
// result never re-folds into a power of a sum.
func distribute(a, b Expr) Expr {
	at, bt := addends(a), addends(b)
	if len(at) == 1 && len(bt) == 1 {
		return NewProduct(a, b)
	}
	terms := make([]Expr, 0, len(at)*len(bt))
	for _, x := range at {
		for _, y := range bt {
			terms = append(terms, distribute(x, y))
		}
	}
	return NewSum(terms...)
}

func addends(e Expr) []Expr {
	if s, ok := e.(*Sum); ok {
		return s.terms
	}
	return []Expr{e}
}

// Canonicalize expands and fully simplifies an expression.
func Canonicalize(e Expr) Expr { return Expand(e).Simplify() }

// TrigCanonical rewrites trig forms into a sin/cos basis (tan, sec, csc,
// cot eliminated; double angles opened), expands, and collapses
// Pythagorean pairs until stable. This is the third escalation step.
func TrigCanonical(e Expr) Expr {
	curr := Expand(trigBasis(e.Simplify()))
	prev := ""
	for i := 0; i < 10; i++ {
		s := curr.String()
		if s == prev {
			break
		}
		prev = s
		curr = collapsePythagorean(curr).Simplify()
	}
	return curr
}

// trigBasis eliminates tan/sec/csc/cot and opens double angles.
func trigBasis(e Expr) Expr {
	switch v := e.(type) {
	case *Sum:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = trigBasis(t)
		}
		return NewSum(terms...)
	case *Product:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = trigBasis(f)
		}
		return NewProduct(factors...)
	case *Power:
		return NewPower(trigBasis(v.base), trigBasis(v.exp))
	case *Call:
		arg := trigBasis(v.arg)
		switch v.name {
		case FuncTan:
			return NewProduct(Sin(arg), NewPower(Cos(arg), Int(-1)))
		case FuncSec:
			return NewPower(Cos(arg), Int(-1))
		case FuncCsc:
			return NewPower(Sin(arg), Int(-1))
		case FuncCot:
			return NewProduct(Cos(arg), NewPower(Sin(arg), Int(-1)))
		case FuncSin:
			if half, ok := halveDoubleAngle(arg); ok {
				return NewProduct(Int(2), Sin(half), Cos(half))
			}
		case FuncCos:
			if half, ok := halveDoubleAngle(arg); ok {
				return NewSum(NewPower(Cos(half), Int(2)), Neg(NewPower(Sin(half), Int(2))))
			}
		}
		return NewCall(v.name, arg)
	}
	return e
}

// halveDoubleAngle matches an argument of the form 2*u.
func halveDoubleAngle(arg Expr) (Expr, bool) {
	p, ok := arg.(*Product)
	if !ok || len(p.factors) < 2 {
		return nil, false
	}
	c := numberOf(p.factors[0])
	if c == nil || !c.IsInteger() || c.val.Num().Int64() != 2 {
		return nil, false
	}
	rest := p.factors[1:]
	if len(rest) == 1 {
		return rest[0], true
	}
	return &Product{factors: rest}, true
}

// collapsePythagorean replaces c*sin(u)^2 + c*cos(u)^2 with c inside sums,
// recursing into subtrees first.
func collapsePythagorean(e Expr) Expr {
	switch v := e.(type) {
	case *Product:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = collapsePythagorean(f)
		}
		return NewProduct(factors...)
	case *Power:
		return NewPower(collapsePythagorean(v.base), collapsePythagorean(v.exp))
	case *Call:
		return NewCall(v.name, collapsePythagorean(v.arg))
	case *Sum:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = collapsePythagorean(t)
		}
		return collapseSumPairs(NewSum(terms...))
	}
	return e
}

func collapseSumPairs(e Expr) Expr {
	s, ok := e.(*Sum)
	if !ok {
		return e
	}
	type squaredTrig struct {
		fn    string
		arg   string
		coeff *Number
		idx   int
	}
	var found []squaredTrig
	for idx, t := range s.terms {
		coeff, rest := splitCoefficient(t)
		pw, ok := rest.(*Power)
		if !ok {
			continue
		}
		en := numberOf(pw.exp)
		if en == nil || !en.IsInteger() || en.val.Num().Int64() != 2 {
			continue
		}
		call, ok := pw.base.(*Call)
		if !ok || (call.name != FuncSin && call.name != FuncCos) {
			continue
		}
		found = append(found, squaredTrig{call.name, call.arg.String(), coeff, idx})
	}
	for i := 0; i < len(found); i++ {
		for j := i + 1; j < len(found); j++ {
			a, b := found[i], found[j]
			if a.arg != b.arg || a.fn == b.fn || a.coeff.val.Cmp(b.coeff.val) != 0 {
				continue
			}
			kept := make([]Expr, 0, len(s.terms)-1)
			for idx, t := range s.terms {
				if idx != a.idx && idx != b.idx {
					kept = append(kept, t)
				}
			}
			kept = append(kept, a.coeff)
			return collapseSumPairs(NewSum(kept...))
		}
	}
	return e
}
