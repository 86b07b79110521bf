package symbolic

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// ParseError reports why an input string could not be parsed, with the
// byte position in the normalized input.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s at position %d", e.Input, e.Msg, e.Pos)
}

// Parse converts the textual math notation produced by the generation
// capabilities into an expression tree. It accepts both the plain grammar
// (x^2/2 + 3*x) and the LaTeX-flavored forms the stem generator tends to
// emit (\frac{x^2}{2}, \sin^{-1}(x), |x|, e^x, a trailing "+ C"), which
// are normalized before tokenizing. The returned tree is unsimplified.
func Parse(input string) (Expr, error) {
	normalized := Normalize(input)
	if strings.TrimSpace(normalized) == "" {
		return nil, &ParseError{Input: input, Pos: 0, Msg: "empty expression"}
	}
	p := &parser{input: normalized}
	p.next()
	expr, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, &ParseError{Input: normalized, Pos: p.tok.pos, Msg: "unexpected " + p.tok.describe()}
	}
	return rewriteEulerPowers(expr), nil
}

// MustParse is a test and seed-data helper; it panics on error.
func MustParse(input string) Expr {
	e, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return e
}

var (
	reFrac       = regexp.MustCompile(`\\frac\s*\{([^{}]*)\}\s*\{([^{}]*)\}`)
	reSqrt       = regexp.MustCompile(`\\sqrt\s*\{([^{}]*)\}`)
	reInverse    = regexp.MustCompile(`\\?(sin|cos|tan)\^(?:\{\s*-\s*1\s*\}|\(\s*-\s*1\s*\)|-1\b)`)
	reArcNames   = regexp.MustCompile(`arc(sin|cos|tan)`)
	reTrailConst = regexp.MustCompile(`(?i)\s*\+\s*C\s*$`)
	reBackslash  = regexp.MustCompile(`\\(sin|cos|tan|sec|csc|cot|ln|log|exp|pi|theta)\b`)
)

// Normalize maps LaTeX-flavored notation onto the plain grammar. It is
// exported because the stem generator uses it to sanity-check notation
// before an item enters the pipeline.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, `\left`, "")
	s = strings.ReplaceAll(s, `\right`, "")
	s = strings.ReplaceAll(s, `\cdot`, "*")
	s = strings.ReplaceAll(s, `\times`, "*")
	s = strings.ReplaceAll(s, `\,`, " ")
	s = strings.ReplaceAll(s, "π", "pi")

	// \frac and \sqrt nest; innermost braces match first, so repeat
	// until stable.
	for i := 0; i < 16; i++ {
		replaced := reFrac.ReplaceAllString(s, "(($1)/($2))")
		replaced = reSqrt.ReplaceAllString(replaced, "sqrt($1)")
		if replaced == s {
			break
		}
		s = replaced
	}

	// sin^{-1} and arcsin forms become asin before the trig names are
	// touched.
	s = reInverse.ReplaceAllString(s, "a$1")
	s = reArcNames.ReplaceAllString(s, "a$1")

	s = reBackslash.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, "log", "ln")

	s = strings.ReplaceAll(s, "{", "(")
	s = strings.ReplaceAll(s, "}", ")")

	s = reTrailConst.ReplaceAllString(s, "")
	return s
}

type tokKind int

const (
	tokEOF tokKind = iota
	tokInvalid
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokPipe
)

type token struct {
	kind tokKind
	text string
	pos  int
}

func (t token) describe() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.text)
}

type parser struct {
	input string
	pos   int
	tok   token
	// insideAbs disambiguates the closing pipe of |...| from a new
	// absolute value opening.
	insideAbs bool
}

func (p *parser) next() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
	if p.pos >= len(p.input) {
		p.tok = token{kind: tokEOF, pos: p.pos}
		return
	}
	start := p.pos
	ch := p.input[p.pos]
	switch {
	case ch >= '0' && ch <= '9' || ch == '.':
		for p.pos < len(p.input) && (p.input[p.pos] >= '0' && p.input[p.pos] <= '9' || p.input[p.pos] == '.') {
			p.pos++
		}
		p.tok = token{kind: tokNumber, text: p.input[start:p.pos], pos: start}
	case isLetter(ch):
		for p.pos < len(p.input) && isLetter(p.input[p.pos]) {
			p.pos++
		}
		p.tok = token{kind: tokIdent, text: p.input[start:p.pos], pos: start}
	default:
		p.pos++
		kinds := map[byte]tokKind{
			'+': tokPlus, '-': tokMinus, '*': tokStar, '/': tokSlash,
			'^': tokCaret, '(': tokLParen, ')': tokRParen, '|': tokPipe,
		}
		kind, ok := kinds[ch]
		if !ok {
			p.tok = token{kind: tokInvalid, text: string(ch), pos: start}
			return
		}
		p.tok = token{kind: kind, text: string(ch), pos: start}
	}
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Input: p.input, Pos: p.tok.pos, Msg: fmt.Sprintf(format, args...)}
}

// parseSum := parseTerm (('+'|'-') parseTerm)*
func (p *parser) parseSum() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []Expr{left}
	for p.tok.kind == tokPlus || p.tok.kind == tokMinus {
		negate := p.tok.kind == tokMinus
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if negate {
			right = Neg(right)
		}
		terms = append(terms, right)
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return &Sum{terms: terms}, nil
}

// parseTerm := parseUnary (('*'|'/') parseUnary | implicit parseUnary)*
func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	factors := []Expr{left}
	for {
		switch {
		case p.tok.kind == tokStar:
			p.next()
			f, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			factors = append(factors, f)
		case p.tok.kind == tokSlash:
			p.next()
			f, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			factors = append(factors, &Power{base: f, exp: Int(-1)})
		case p.startsFactor():
			// implicit multiplication: 3x, 2sin(x), x(x+1)
			f, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			factors = append(factors, f)
		default:
			if len(factors) == 1 {
				return factors[0], nil
			}
			return &Product{factors: factors}, nil
		}
	}
}

// startsFactor reports whether the current token can begin a factor for
// implicit multiplication. A pipe only opens a new absolute value when we
// are not already inside one.
func (p *parser) startsFactor() bool {
	switch p.tok.kind {
	case tokNumber, tokIdent, tokLParen:
		return true
	case tokPipe:
		return !p.insideAbs
	}
	return false
}

// parseUnary := '-' parseUnary | parsePower
func (p *parser) parseUnary() (Expr, error) {
	if p.tok.kind == tokMinus {
		p.next()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Neg(inner), nil
	}
	if p.tok.kind == tokPlus {
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

// parsePower := parseAtom ('^' parseUnary)?   (right associative)
func (p *parser) parsePower() (Expr, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokCaret {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &Power{base: base, exp: exp}, nil
}

func (p *parser) parseAtom() (Expr, error) {
	switch p.tok.kind {
	case tokNumber:
		text := p.tok.text
		r, ok := new(big.Rat).SetString(text)
		if !ok {
			return nil, p.errorf("invalid number %q", text)
		}
		p.next()
		return ratNum(r), nil

	case tokIdent:
		return p.parseIdent()

	case tokLParen:
		p.next()
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, p.errorf("expected ')', found %s", p.tok.describe())
		}
		p.next()
		return inner, nil

	case tokPipe:
		p.next()
		wasInside := p.insideAbs
		p.insideAbs = true
		inner, err := p.parseSum()
		p.insideAbs = wasInside
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokPipe {
			return nil, p.errorf("expected closing '|', found %s", p.tok.describe())
		}
		p.next()
		return &Call{name: FuncAbs, arg: inner}, nil
	}
	return nil, p.errorf("expected expression, found %s", p.tok.describe())
}

func (p *parser) parseIdent() (Expr, error) {
	name := p.tok.text
	p.next()

	fn := strings.ToLower(name)
	if fn == "sqrt" {
		arg, err := p.parseCallArg(fn)
		if err != nil {
			return nil, err
		}
		return &Power{base: arg, exp: Frac(1, 2)}, nil
	}

	if IsKnownFunction(fn) {
		// sin^2(x) means (sin(x))^2; the exponent precedes the argument.
		if p.tok.kind == tokCaret {
			p.next()
			exp, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			arg, err := p.parseCallArg(fn)
			if err != nil {
				return nil, err
			}
			return &Power{base: &Call{name: fn, arg: arg}, exp: exp}, nil
		}
		arg, err := p.parseCallArg(fn)
		if err != nil {
			return nil, err
		}
		return &Call{name: fn, arg: arg}, nil
	}

	// Anything else is a symbol: variables, pi, an integration constant.
	return Var(name), nil
}

func (p *parser) parseCallArg(fn string) (Expr, error) {
	if p.tok.kind != tokLParen {
		return nil, p.errorf("expected '(' after %s", fn)
	}
	p.next()
	arg, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokRParen {
		return nil, p.errorf("expected ')' closing %s(...), found %s", fn, p.tok.describe())
	}
	p.next()
	return arg, nil
}

// rewriteEulerPowers turns e^u into exp(u) throughout a parsed tree, so
// both spellings share one canonical form.
func rewriteEulerPowers(e Expr) Expr {
	switch v := e.(type) {
	case *Sum:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = rewriteEulerPowers(t)
		}
		return &Sum{terms: terms}
	case *Product:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = rewriteEulerPowers(f)
		}
		return &Product{factors: factors}
	case *Power:
		base := rewriteEulerPowers(v.base)
		exp := rewriteEulerPowers(v.exp)
		if sym, ok := base.(*Symbol); ok && sym.name == "e" {
			return &Call{name: FuncExp, arg: exp}
		}
		return &Power{base: base, exp: exp}
	case *Call:
		return &Call{name: v.name, arg: rewriteEulerPowers(v.arg)}
	}
	return e
}
