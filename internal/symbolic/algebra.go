package symbolic

import (
	"sort"
	"strings"
)

// Sum is an n-ary addition. A simplified Sum has like terms collected
// (coefficients summed per canonical term key), terms in deterministic
// order, at least two terms, and at most one trailing constant.
type Sum struct {
	terms []Expr
}

// NewSum builds and simplifies a sum of terms.
func NewSum(terms ...Expr) Expr { return (&Sum{terms: terms}).Simplify() }

// Terms returns the term slice. Callers must not mutate it.
func (s *Sum) Terms() []Expr { return s.terms }

func (s *Sum) kind() exprKind { return kindSum }

func (s *Sum) Simplify() Expr {
	flat := make([]Expr, 0, len(s.terms))
	for _, t := range s.terms {
		st := t.Simplify()
		if inner, ok := st.(*Sum); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, st)
		}
	}

	constant := Int(0)
	coeffs := map[string]*Number{}
	rests := map[string]Expr{}
	keys := []string{}
	for _, t := range flat {
		if n := numberOf(t); n != nil {
			constant = numAdd(constant, n)
			continue
		}
		coeff, rest := splitCoefficient(t)
		key := rest.String()
		if _, seen := coeffs[key]; !seen {
			coeffs[key] = coeff
			rests[key] = rest
			keys = append(keys, key)
		} else {
			coeffs[key] = numAdd(coeffs[key], coeff)
		}
	}

	sort.Strings(keys)
	result := make([]Expr, 0, len(keys)+1)
	for _, key := range keys {
		c := coeffs[key]
		switch {
		case c.IsZero():
			// cancelled
		case c.IsOne():
			result = append(result, rests[key])
		default:
			result = append(result, attachCoefficient(c, rests[key]))
		}
	}
	if !constant.IsZero() {
		result = append(result, constant)
	}

	if len(result) == 0 {
		return Int(0)
	}
	if len(result) == 1 {
		return result[0]
	}
	return &Sum{terms: result}
}

func (s *Sum) Diff(variable string) Expr {
	d := make([]Expr, len(s.terms))
	for i, t := range s.terms {
		d[i] = t.Diff(variable)
	}
	return NewSum(d...)
}

func (s *Sum) Substitute(variable string, value Expr) Expr {
	next := make([]Expr, len(s.terms))
	for i, t := range s.terms {
		next[i] = t.Substitute(variable, value)
	}
	return NewSum(next...)
}

func (s *Sum) Equal(other Expr) bool {
	o, ok := other.(*Sum)
	if !ok || len(s.terms) != len(o.terms) {
		return false
	}
	for i := range s.terms {
		if !s.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (s *Sum) String() string {
	var b strings.Builder
	for i, t := range s.terms {
		neg, body := signedRender(t, false)
		if i == 0 {
			if neg {
				b.WriteString("-")
			}
		} else if neg {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		b.WriteString(body)
	}
	return b.String()
}

func (s *Sum) LaTeX() string {
	var b strings.Builder
	for i, t := range s.terms {
		neg, body := signedRender(t, true)
		if i == 0 {
			if neg {
				b.WriteString("-")
			}
		} else if neg {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		b.WriteString(body)
	}
	return b.String()
}

// signedRender splits a leading numeric sign off a term for pretty sums.
func signedRender(t Expr, latex bool) (negative bool, body string) {
	render := func(e Expr) string {
		if latex {
			return e.LaTeX()
		}
		return e.String()
	}
	if n := numberOf(t); n != nil && n.IsNegative() {
		return true, render(numNeg(n))
	}
	if p, ok := t.(*Product); ok && len(p.factors) > 0 {
		if c := numberOf(p.factors[0]); c != nil && c.IsNegative() {
			flipped := numNeg(c)
			rest := p.factors[1:]
			if flipped.IsOne() {
				if len(rest) == 1 {
					return true, render(rest[0])
				}
				return true, render(&Product{factors: rest})
			}
			return true, render(&Product{factors: append([]Expr{flipped}, rest...)})
		}
	}
	return false, render(t)
}

// splitCoefficient extracts the numeric coefficient of a simplified term.
func splitCoefficient(t Expr) (*Number, Expr) {
	p, ok := t.(*Product)
	if !ok || len(p.factors) < 2 {
		return Int(1), t
	}
	c := numberOf(p.factors[0])
	if c == nil {
		return Int(1), t
	}
	rest := p.factors[1:]
	if len(rest) == 1 {
		return c, rest[0]
	}
	return c, &Product{factors: rest}
}

// attachCoefficient is the inverse of splitCoefficient. The coefficient
// must be non-zero and not one; rest must be a simplified non-Number.
func attachCoefficient(c *Number, rest Expr) Expr {
	if p, ok := rest.(*Product); ok {
		return &Product{factors: append([]Expr{c}, p.factors...)}
	}
	return &Product{factors: []Expr{c, rest}}
}

// Product is an n-ary multiplication. A simplified Product has equal-base
// factors merged into powers, at most one leading numeric coefficient,
// factors in deterministic order, and no bare coefficient*sum shape (the
// coefficient is pushed into the sum).
type Product struct {
	factors []Expr
}

// NewProduct builds and simplifies a product of factors.
func NewProduct(factors ...Expr) Expr { return (&Product{factors: factors}).Simplify() }

// Factors returns the factor slice. Callers must not mutate it.
func (p *Product) Factors() []Expr { return p.factors }

func (p *Product) kind() exprKind { return kindProduct }

func (p *Product) Simplify() Expr {
	flat := make([]Expr, 0, len(p.factors))
	for _, f := range p.factors {
		sf := f.Simplify()
		if inner, ok := sf.(*Product); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, sf)
		}
	}

	coeff := Int(1)
	type baseGroup struct {
		base Expr
		exps []Expr
	}
	groups := map[string]*baseGroup{}
	keys := []string{}
	for _, f := range flat {
		if n := numberOf(f); n != nil {
			coeff = numMul(coeff, n)
			continue
		}
		base, exp := splitPower(f)
		key := base.String()
		g, seen := groups[key]
		if !seen {
			g = &baseGroup{base: base}
			groups[key] = g
			keys = append(keys, key)
		}
		g.exps = append(g.exps, exp)
	}
	if coeff.IsZero() {
		return Int(0)
	}

	factors := make([]Expr, 0, len(keys))
	for _, key := range keys {
		g := groups[key]
		var merged Expr
		if len(g.exps) == 1 {
			merged = NewPower(g.base, g.exps[0])
		} else {
			merged = NewPower(g.base, NewSum(g.exps...))
		}
		if n := numberOf(merged); n != nil {
			coeff = numMul(coeff, n)
			continue
		}
		factors = append(factors, merged)
	}

	sort.Slice(factors, func(i, j int) bool {
		return factors[i].String() < factors[j].String()
	})

	if len(factors) == 0 {
		return coeff
	}
	// A bare numeric coefficient distributes over a lone sum, so that
	// subtracting one sum from another cancels term by term.
	if len(factors) == 1 && !coeff.IsOne() {
		if s, ok := factors[0].(*Sum); ok {
			terms := make([]Expr, len(s.terms))
			for i, t := range s.terms {
				terms[i] = NewProduct(coeff, t)
			}
			return NewSum(terms...)
		}
	}
	if coeff.IsOne() {
		if len(factors) == 1 {
			return factors[0]
		}
		return &Product{factors: factors}
	}
	return &Product{factors: append([]Expr{coeff}, factors...)}
}

// splitPower views a factor as base^exp.
func splitPower(f Expr) (base, exp Expr) {
	if pw, ok := f.(*Power); ok {
		return pw.base, pw.exp
	}
	return f, Int(1)
}

func (p *Product) Diff(variable string) Expr {
	terms := make([]Expr, len(p.factors))
	for i, fi := range p.factors {
		dfi := fi.Diff(variable)
		rest := make([]Expr, 0, len(p.factors))
		rest = append(rest, dfi)
		for j, fj := range p.factors {
			if j != i {
				rest = append(rest, fj)
			}
		}
		terms[i] = NewProduct(rest...)
	}
	return NewSum(terms...)
}

func (p *Product) Substitute(variable string, value Expr) Expr {
	next := make([]Expr, len(p.factors))
	for i, f := range p.factors {
		next[i] = f.Substitute(variable, value)
	}
	return NewProduct(next...)
}

func (p *Product) Equal(other Expr) bool {
	o, ok := other.(*Product)
	if !ok || len(p.factors) != len(o.factors) {
		return false
	}
	for i := range p.factors {
		if !p.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func (p *Product) String() string {
	if len(p.factors) == 0 {
		return "1"
	}
	start := 0
	prefix := ""
	if c := numberOf(p.factors[0]); c != nil && c.IsNegOne() && len(p.factors) > 1 {
		prefix = "-"
		start = 1
	}
	parts := make([]string, 0, len(p.factors)-start)
	for _, f := range p.factors[start:] {
		fs := f.String()
		if _, isSum := f.(*Sum); isSum {
			fs = "(" + fs + ")"
		}
		parts = append(parts, fs)
	}
	return prefix + strings.Join(parts, "*")
}

func (p *Product) LaTeX() string {
	if len(p.factors) == 0 {
		return "1"
	}
	start := 0
	prefix := ""
	if c := numberOf(p.factors[0]); c != nil && c.IsNegOne() && len(p.factors) > 1 {
		prefix = "-"
		start = 1
	}
	parts := make([]string, 0, len(p.factors)-start)
	for _, f := range p.factors[start:] {
		fs := f.LaTeX()
		if _, isSum := f.(*Sum); isSum {
			fs = "\\left(" + fs + "\\right)"
		}
		parts = append(parts, fs)
	}
	return prefix + strings.Join(parts, " ")
}

// Power is base^exp. A simplified Power has a non-Power base, a non-zero
// non-one exponent, and folds exact numeric cases.
type Power struct {
	base, exp Expr
}

// NewPower builds and simplifies base^exp.
func NewPower(base, exp Expr) Expr { return (&Power{base: base, exp: exp}).Simplify() }

// Base returns the base operand.
func (pw *Power) Base() Expr { return pw.base }

// Exponent returns the exponent operand.
func (pw *Power) Exponent() Expr { return pw.exp }

func (pw *Power) kind() exprKind { return kindPower }

func (pw *Power) Simplify() Expr {
	base := pw.base.Simplify()
	exp := pw.exp.Simplify()

	if en := numberOf(exp); en != nil {
		if en.IsZero() {
			// 0^0 stays unevaluated.
			if bn := numberOf(base); bn != nil && bn.IsZero() {
				return &Power{base: base, exp: exp}
			}
			return Int(1)
		}
		if en.IsOne() {
			return base
		}
	}

	if bn := numberOf(base); bn != nil {
		if bn.IsZero() {
			// 0^negative is undefined; keep the node rather than folding.
			if en := numberOf(exp); en != nil && en.IsNegative() {
				return &Power{base: base, exp: exp}
			}
			return Int(0)
		}
		if bn.IsOne() {
			return Int(1)
		}
		if en := numberOf(exp); en != nil && en.IsInteger() {
			if v, ok := numIntPow(bn, en.val.Num().Int64()); ok {
				return v
			}
		}
	}

	// (b^a)^c = b^(a*c)
	if inner, ok := base.(*Power); ok {
		return NewPower(inner.base, NewProduct(inner.exp, exp))
	}
	// (exp(u))^c = exp(c*u)
	if c, ok := base.(*Call); ok && c.name == FuncExp {
		return NewCall(FuncExp, NewProduct(exp, c.arg))
	}
	// abs(u)^even = u^even
	if c, ok := base.(*Call); ok && c.name == FuncAbs {
		if en := numberOf(exp); en != nil && en.IsInteger() && en.val.Num().Bit(0) == 0 && !en.IsNegative() {
			return NewPower(c.arg, exp)
		}
	}
	return &Power{base: base, exp: exp}
}

func (pw *Power) Diff(variable string) Expr {
	db := pw.base.Diff(variable)
	de := pw.exp.Diff(variable)
	if numberOf(pw.exp) != nil {
		// power rule: n*b^(n-1)*b'
		return NewProduct(pw.exp, NewPower(pw.base, NewSum(pw.exp, Int(-1))), db)
	}
	if numberOf(pw.base) != nil {
		// a^u: a^u * ln(a) * u'
		return NewProduct(pw, Ln(pw.base), de)
	}
	// general: b^e * (e'*ln b + e*b'/b)
	return NewProduct(pw, NewSum(
		NewProduct(de, Ln(pw.base)),
		NewProduct(pw.exp, db, NewPower(pw.base, Int(-1))),
	))
}

func (pw *Power) Substitute(variable string, value Expr) Expr {
	return NewPower(pw.base.Substitute(variable, value), pw.exp.Substitute(variable, value))
}

func (pw *Power) Equal(other Expr) bool {
	o, ok := other.(*Power)
	return ok && pw.base.Equal(o.base) && pw.exp.Equal(o.exp)
}

func (pw *Power) String() string {
	bs := pw.base.String()
	if needsBaseParens(pw.base) {
		bs = "(" + bs + ")"
	}
	es := pw.exp.String()
	if needsExpParens(pw.exp) {
		es = "(" + es + ")"
	}
	return bs + "^" + es
}

func (pw *Power) LaTeX() string {
	// x^(1/2) displays as a root.
	if en := numberOf(pw.exp); en != nil && en.val.Cmp(ratHalf) == 0 {
		return "\\sqrt{" + pw.base.LaTeX() + "}"
	}
	bs := pw.base.LaTeX()
	if needsBaseParens(pw.base) {
		bs = "\\left(" + bs + "\\right)"
	}
	return bs + "^{" + pw.exp.LaTeX() + "}"
}

func needsBaseParens(base Expr) bool {
	switch b := base.(type) {
	case *Sum, *Product, *Power:
		return true
	case *Number:
		return b.IsNegative() || !b.IsInteger()
	}
	return false
}

func needsExpParens(exp Expr) bool {
	switch e := exp.(type) {
	case *Sum, *Product, *Power:
		return true
	case *Number:
		return e.IsNegative() || !e.IsInteger()
	}
	return false
}
