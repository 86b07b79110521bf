package symbolic

import (
	"math/big"
)

// Expr is a symbolic expression tree node. Implementations are immutable:
// every operation returns a new tree and never mutates the receiver, so
// expressions can be shared freely across goroutines and cache entries.
type Expr interface {
	// Simplify returns a canonical form: constants folded, like terms
	// collected, equal-base factors merged, deterministic ordering.
	// Simplify(Simplify(e)) must equal Simplify(e).
	Simplify() Expr

	// Diff differentiates with respect to the named variable. Any other
	// symbol (including an integration constant) is treated as independent
	// of it and differentiates to zero.
	Diff(variable string) Expr

	// Substitute replaces every occurrence of the named variable.
	Substitute(variable string, value Expr) Expr

	// String renders the expression in the plain textual grammar accepted
	// by Parse. The rendering of a simplified expression is canonical and
	// usable as a map key.
	String() string

	// LaTeX renders the expression for display.
	LaTeX() string

	// Equal reports structural equality. Call it on simplified operands;
	// it does not attempt algebraic equivalence.
	Equal(other Expr) bool

	kind() exprKind
}

type exprKind int

const (
	kindNumber exprKind = iota
	kindSymbol
	kindSum
	kindProduct
	kindPower
	kindCall
)

// Number is an exact rational constant.
type Number struct {
	val *big.Rat
}

// Int returns the integer constant n.
func Int(n int64) *Number { return &Number{val: new(big.Rat).SetInt64(n)} }

// Frac returns the rational constant p/q. q must be non-zero.
func Frac(p, q int64) *Number {
	if q == 0 {
		panic("symbolic: zero denominator")
	}
	return &Number{val: big.NewRat(p, q)}
}

func ratNum(r *big.Rat) *Number { return &Number{val: new(big.Rat).Set(r)} }

func (n *Number) Simplify() Expr                   { return n }
func (n *Number) Diff(string) Expr                 { return Int(0) }
func (n *Number) Substitute(string, Expr) Expr     { return n }
func (n *Number) kind() exprKind                   { return kindNumber }
func (n *Number) Rat() *big.Rat                    { return new(big.Rat).Set(n.val) }
func (n *Number) IsZero() bool                     { return n.val.Sign() == 0 }
func (n *Number) IsOne() bool                      { return n.val.Cmp(ratOne) == 0 }
func (n *Number) IsNegOne() bool                   { return n.val.Cmp(ratNegOne) == 0 }
func (n *Number) IsInteger() bool                  { return n.val.IsInt() }
func (n *Number) IsNegative() bool                 { return n.val.Sign() < 0 }

func (n *Number) Equal(other Expr) bool {
	o, ok := other.(*Number)
	return ok && n.val.Cmp(o.val) == 0
}

func (n *Number) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.Num().String() + "/" + n.val.Denom().String()
}

func (n *Number) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	num := new(big.Int).Abs(n.val.Num())
	s := "\\frac{" + num.String() + "}{" + n.val.Denom().String() + "}"
	if n.val.Sign() < 0 {
		return "-" + s
	}
	return s
}

var (
	ratOne    = new(big.Rat).SetInt64(1)
	ratNegOne = new(big.Rat).SetInt64(-1)
	ratHalf   = big.NewRat(1, 2)
)

func numAdd(a, b *Number) *Number { return &Number{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Number) *Number { return &Number{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Number) *Number    { return &Number{val: new(big.Rat).Neg(a.val)} }

func numRecip(a *Number) *Number {
	if a.IsZero() {
		panic("symbolic: reciprocal of zero")
	}
	return &Number{val: new(big.Rat).Inv(a.val)}
}

// numIntPow raises a to an integer power with exact arithmetic.
// Exponent magnitude is capped so adversarial input cannot allocate
// unbounded rationals; beyond the cap the caller keeps the Power node.
func numIntPow(a *Number, e int64) (*Number, bool) {
	const maxFold = 64
	if e > maxFold || e < -maxFold {
		return nil, false
	}
	if e < 0 {
		if a.IsZero() {
			return nil, false
		}
		inv, ok := numIntPow(a, -e)
		if !ok {
			return nil, false
		}
		return numRecip(inv), true
	}
	result := Int(1)
	for i := int64(0); i < e; i++ {
		result = numMul(result, a)
	}
	return result, true
}

// Symbol is a free variable or named constant (x, t, pi, C).
type Symbol struct {
	name string
}

// Var returns the symbol with the given name.
func Var(name string) *Symbol { return &Symbol{name: name} }

func (s *Symbol) Simplify() Expr { return s }
func (s *Symbol) Name() string   { return s.name }
func (s *Symbol) String() string { return s.name }
func (s *Symbol) kind() exprKind { return kindSymbol }

func (s *Symbol) LaTeX() string {
	if s.name == "pi" {
		return "\\pi"
	}
	return s.name
}

func (s *Symbol) Diff(variable string) Expr {
	if s.name == variable {
		return Int(1)
	}
	return Int(0)
}

func (s *Symbol) Substitute(variable string, value Expr) Expr {
	if s.name == variable {
		return value
	}
	return s
}

func (s *Symbol) Equal(other Expr) bool {
	o, ok := other.(*Symbol)
	return ok && s.name == o.name
}

// Neg returns -e.
func Neg(e Expr) Expr { return NewProduct(Int(-1), e) }

// Subtract returns a - b.
func Subtract(a, b Expr) Expr { return NewSum(a, Neg(b)) }

// Divide returns a / b as a * b^-1.
func Divide(a, b Expr) Expr { return NewProduct(a, NewPower(b, Int(-1))) }

// IsZero reports whether e simplifies to the constant zero.
func IsZero(e Expr) bool {
	n, ok := e.Simplify().(*Number)
	return ok && n.IsZero()
}

// numberOf extracts a constant, or nil.
func numberOf(e Expr) *Number {
	n, ok := e.(*Number)
	if !ok {
		return nil
	}
	return n
}
