package symbolic

// Function names understood by the kernel. The set is fixed: the grammar
// covers single-variable calculus answers, not arbitrary mathematics.
const (
	FuncSin  = "sin"
	FuncCos  = "cos"
	FuncTan  = "tan"
	FuncSec  = "sec"
	FuncCsc  = "csc"
	FuncCot  = "cot"
	FuncAsin = "asin"
	FuncAcos = "acos"
	FuncAtan = "atan"
	FuncExp  = "exp"
	FuncLn   = "ln"
	FuncAbs  = "abs"
)

var knownFunctions = map[string]bool{
	FuncSin: true, FuncCos: true, FuncTan: true,
	FuncSec: true, FuncCsc: true, FuncCot: true,
	FuncAsin: true, FuncAcos: true, FuncAtan: true,
	FuncExp: true, FuncLn: true, FuncAbs: true,
}

// IsKnownFunction reports whether name is in the supported function set.
func IsKnownFunction(name string) bool { return knownFunctions[name] }

// Call is a named function applied to one argument.
type Call struct {
	name string
	arg  Expr
}

// NewCall builds and simplifies name(arg). The name must come from the
// supported function set; Parse enforces this at the boundary.
func NewCall(name string, arg Expr) Expr { return (&Call{name: name, arg: arg}).Simplify() }

func Sin(arg Expr) Expr  { return NewCall(FuncSin, arg) }
func Cos(arg Expr) Expr  { return NewCall(FuncCos, arg) }
func Tan(arg Expr) Expr  { return NewCall(FuncTan, arg) }
func Sec(arg Expr) Expr  { return NewCall(FuncSec, arg) }
func Csc(arg Expr) Expr  { return NewCall(FuncCsc, arg) }
func Cot(arg Expr) Expr  { return NewCall(FuncCot, arg) }
func Asin(arg Expr) Expr { return NewCall(FuncAsin, arg) }
func Acos(arg Expr) Expr { return NewCall(FuncAcos, arg) }
func Atan(arg Expr) Expr { return NewCall(FuncAtan, arg) }
func Exp(arg Expr) Expr  { return NewCall(FuncExp, arg) }
func Ln(arg Expr) Expr   { return NewCall(FuncLn, arg) }
func Abs(arg Expr) Expr  { return NewCall(FuncAbs, arg) }

// Sqrt is represented as a half power so root and power forms share one
// canonical shape.
func Sqrt(arg Expr) Expr { return NewPower(arg, Frac(1, 2)) }

// FuncName returns the function name.
func (c *Call) FuncName() string { return c.name }

// Arg returns the argument operand.
func (c *Call) Arg() Expr { return c.arg }

func (c *Call) kind() exprKind { return kindCall }

// Simplify folds only identities that are exact in rational arithmetic.
// Transcendental values at non-trivial points stay symbolic so equality
// checks never depend on floating point.
func (c *Call) Simplify() Expr {
	arg := c.arg.Simplify()
	n := numberOf(arg)

	switch c.name {
	case FuncSin, FuncTan, FuncAsin, FuncAtan:
		if n != nil && n.IsZero() {
			return Int(0)
		}
	case FuncCos:
		if n != nil && n.IsZero() {
			return Int(1)
		}
	case FuncSec:
		if n != nil && n.IsZero() {
			return Int(1)
		}
	case FuncExp:
		if n != nil && n.IsZero() {
			return Int(1)
		}
		if inner, ok := arg.(*Call); ok && inner.name == FuncLn {
			return inner.arg
		}
	case FuncLn:
		if n != nil && n.IsOne() {
			return Int(0)
		}
		if inner, ok := arg.(*Call); ok && inner.name == FuncExp {
			return inner.arg
		}
	case FuncAbs:
		if n != nil {
			if n.IsNegative() {
				return numNeg(n)
			}
			return n
		}
		if inner, ok := arg.(*Call); ok && inner.name == FuncAbs {
			return inner
		}
		// abs(-k*u) = abs(k*u)
		if p, ok := arg.(*Product); ok && len(p.factors) > 0 {
			if cf := numberOf(p.factors[0]); cf != nil && cf.IsNegative() {
				flipped := numNeg(cf)
				rest := p.factors[1:]
				if flipped.IsOne() {
					if len(rest) == 1 {
						return NewCall(FuncAbs, rest[0])
					}
					return NewCall(FuncAbs, &Product{factors: rest})
				}
				return NewCall(FuncAbs, &Product{factors: append([]Expr{flipped}, rest...)})
			}
		}
	}
	return &Call{name: c.name, arg: arg}
}

func (c *Call) Diff(variable string) Expr {
	du := c.arg.Diff(variable)
	u := c.arg

	var outer Expr
	switch c.name {
	case FuncSin:
		outer = Cos(u)
	case FuncCos:
		outer = Neg(Sin(u))
	case FuncTan:
		outer = NewPower(Sec(u), Int(2))
	case FuncSec:
		outer = NewProduct(Sec(u), Tan(u))
	case FuncCsc:
		outer = Neg(NewProduct(Csc(u), Cot(u)))
	case FuncCot:
		outer = Neg(NewPower(Csc(u), Int(2)))
	case FuncAsin:
		outer = NewPower(NewSum(Int(1), Neg(NewPower(u, Int(2)))), Frac(-1, 2))
	case FuncAcos:
		outer = Neg(NewPower(NewSum(Int(1), Neg(NewPower(u, Int(2)))), Frac(-1, 2)))
	case FuncAtan:
		outer = NewPower(NewSum(Int(1), NewPower(u, Int(2))), Int(-1))
	case FuncExp:
		outer = Exp(u)
	case FuncLn:
		// ln|u| and ln u share the answer-key derivative u'/u.
		if inner, ok := u.(*Call); ok && inner.name == FuncAbs {
			return NewProduct(inner.arg.Diff(variable), NewPower(inner.arg, Int(-1)))
		}
		outer = NewPower(u, Int(-1))
	case FuncAbs:
		// d/dx |u| = u*u'/|u|, valid away from u = 0
		return NewProduct(u, du, NewPower(Abs(u), Int(-1)))
	default:
		// Unknown names cannot appear via Parse; fail loudly if one does.
		panic("symbolic: derivative of unknown function " + c.name)
	}
	return NewProduct(outer, du)
}

func (c *Call) Substitute(variable string, value Expr) Expr {
	return NewCall(c.name, c.arg.Substitute(variable, value))
}

func (c *Call) Equal(other Expr) bool {
	o, ok := other.(*Call)
	return ok && c.name == o.name && c.arg.Equal(o.arg)
}

func (c *Call) String() string {
	return c.name + "(" + c.arg.String() + ")"
}

func (c *Call) LaTeX() string {
	switch c.name {
	case FuncAbs:
		return "\\left|" + c.arg.LaTeX() + "\\right|"
	case FuncExp:
		return "e^{" + c.arg.LaTeX() + "}"
	case FuncAsin, FuncAcos, FuncAtan:
		return "\\arc" + c.name[1:] + "\\left(" + c.arg.LaTeX() + "\\right)"
	case FuncLn:
		return "\\ln\\left(" + c.arg.LaTeX() + "\\right)"
	}
	return "\\" + c.name + "\\left(" + c.arg.LaTeX() + "\\right)"
}
