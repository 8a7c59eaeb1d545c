// Package expr evaluates arithmetic over dimensioned quantities, such as
// "0.5 * 80 kg * (10 m/s)^2" or "sqrt(16 m²)". Unit names are resolved
// through a units.Registry.
//
// Juxtaposition multiplies and binds tighter than * and /, so "10 m / 2 s"
// is a speed of 5 m/s. Exponents are integers or parenthesised fractions:
// "m^-2", "m^(1/2)".
package expr

import (
	"errors"
	"fmt"
	"strconv"

	"dimensional/dimension"
	"dimensional/si"
	"dimensional/units"
)

// ErrSyntax is matched by every *SyntaxError.
var ErrSyntax = errors.New("expr: syntax error")

// SyntaxError locates a malformed expression.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expr: syntax error at column %d: %s", e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Evaluator evaluates expressions against a unit registry.
type Evaluator struct {
	reg *units.Registry
}

// New returns an Evaluator; a nil registry means units.Default().
func New(reg *units.Registry) *Evaluator {
	if reg == nil {
		reg = units.Default()
	}
	return &Evaluator{reg: reg}
}

// Eval evaluates src with the default registry.
func Eval(src string) (si.Quantity, error) { return New(nil).Eval(src) }

// Eval parses and evaluates src. Exponents that outgrow int64 are reported
// as dimension.ErrOverflow.
func (e *Evaluator) Eval(src string) (q si.Quantity, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok && errors.Is(rerr, dimension.ErrOverflow) {
				q, err = si.Quantity{}, fmt.Errorf("expr: %w", rerr)
				return
			}
			panic(r)
		}
	}()
	toks, err := lex(src)
	if err != nil {
		return si.Quantity{}, err
	}
	p := &parser{toks: toks, reg: e.reg}
	if p.peek().kind == tokEOF {
		return si.Quantity{}, &SyntaxError{Pos: 1, Msg: "empty expression"}
	}
	q, err = p.expr()
	if err != nil {
		return si.Quantity{}, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return si.Quantity{}, &SyntaxError{Pos: t.pos, Msg: "unexpected " + strconv.Quote(t.text)}
	}
	return q, nil
}

// Convert evaluates src and target and returns src as a multiple of
// target. Both must share a dimension.
func (e *Evaluator) Convert(src, target string) (float64, error) {
	q, err := e.Eval(src)
	if err != nil {
		return 0, err
	}
	unit, err := e.Eval(target)
	if err != nil {
		return 0, err
	}
	return q.In(unit)
}

var functions = map[string]func(si.Quantity) si.Quantity{
	"sqrt": si.Quantity.Sqrt,
	"abs":  si.Quantity.Abs,
}

type parser struct {
	toks []token
	i    int
	reg  *units.Registry
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) isOp(text string) bool {
	t := p.peek()
	return t.kind == tokOp && t.text == text
}

func (p *parser) expect(text string) error {
	if !p.isOp(text) {
		t := p.peek()
		return &SyntaxError{Pos: t.pos, Msg: "expected " + strconv.Quote(text)}
	}
	p.next()
	return nil
}

// expr := term (('+' | '-') term)*
func (p *parser) expr() (si.Quantity, error) {
	lhs, err := p.term()
	if err != nil {
		return si.Quantity{}, err
	}
	for p.isOp("+") || p.isOp("-") {
		op := p.next()
		rhs, err := p.term()
		if err != nil {
			return si.Quantity{}, err
		}
		if op.text == "+" {
			lhs, err = lhs.Add(rhs)
		} else {
			lhs, err = lhs.Sub(rhs)
		}
		if err != nil {
			return si.Quantity{}, fmt.Errorf("expr: column %d: %w", op.pos, err)
		}
	}
	return lhs, nil
}

// term := factor (('*' | '/') factor)*
func (p *parser) term() (si.Quantity, error) {
	lhs, err := p.factor()
	if err != nil {
		return si.Quantity{}, err
	}
	for p.isOp("*") || p.isOp("/") {
		op := p.next()
		rhs, err := p.factor()
		if err != nil {
			return si.Quantity{}, err
		}
		if op.text == "*" {
			lhs = lhs.Mul(rhs)
		} else {
			lhs = lhs.Div(rhs)
		}
	}
	return lhs, nil
}

// factor := unary power*
func (p *parser) factor() (si.Quantity, error) {
	lhs, err := p.unary()
	if err != nil {
		return si.Quantity{}, err
	}
	for p.startsPrimary() {
		rhs, err := p.power()
		if err != nil {
			return si.Quantity{}, err
		}
		lhs = lhs.Mul(rhs)
	}
	return lhs, nil
}

func (p *parser) startsPrimary() bool {
	t := p.peek()
	return t.kind == tokNumber || t.kind == tokIdent || (t.kind == tokOp && t.text == "(")
}

// unary := ('-' | '+') unary | power
func (p *parser) unary() (si.Quantity, error) {
	if p.isOp("-") {
		p.next()
		q, err := p.unary()
		return q.Neg(), err
	}
	if p.isOp("+") {
		p.next()
		return p.unary()
	}
	return p.power()
}

// power := primary ('^' exponent)*
func (p *parser) power() (si.Quantity, error) {
	base, err := p.primary()
	if err != nil {
		return si.Quantity{}, err
	}
	for p.isOp("^") {
		p.next()
		exp, err := p.exponent()
		if err != nil {
			return si.Quantity{}, err
		}
		base = base.Pow(exp)
	}
	return base, nil
}

// exponent := ['-' | '+'] integer | '(' ['-' | '+'] integer ['/' integer] ')'
func (p *parser) exponent() (dimension.Rational, error) {
	paren := p.isOp("(")
	if paren {
		p.next()
	}
	neg := false
	if p.isOp("-") || p.isOp("+") {
		neg = p.next().text == "-"
	}
	t := p.next()
	if t.kind != tokNumber {
		return dimension.Rational{}, &SyntaxError{Pos: t.pos, Msg: "expected exponent"}
	}
	text := t.text
	if paren && p.isOp("/") {
		p.next()
		d := p.next()
		if d.kind != tokNumber {
			return dimension.Rational{}, &SyntaxError{Pos: d.pos, Msg: "expected exponent denominator"}
		}
		text += "/" + d.text
	}
	r, err := dimension.ParseRational(text)
	if err != nil {
		return dimension.Rational{}, &SyntaxError{Pos: t.pos, Msg: "exponent must be an integer or fraction"}
	}
	if paren {
		if err := p.expect(")"); err != nil {
			return dimension.Rational{}, err
		}
	}
	if neg {
		r = r.Neg()
	}
	return r, nil
}

// primary := number | ident | function '(' expr ')' | '(' expr ')'
func (p *parser) primary() (si.Quantity, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return si.Quantity{}, &SyntaxError{Pos: t.pos, Msg: "invalid number " + strconv.Quote(t.text)}
		}
		return si.Scalar(v), nil

	case tokIdent:
		if fn, ok := functions[t.text]; ok && p.isOp("(") {
			p.next()
			arg, err := p.expr()
			if err != nil {
				return si.Quantity{}, err
			}
			if err := p.expect(")"); err != nil {
				return si.Quantity{}, err
			}
			return fn(arg), nil
		}
		u, err := p.reg.Lookup(t.text)
		if err != nil {
			return si.Quantity{}, fmt.Errorf("expr: column %d: %w", t.pos, err)
		}
		return u.Quantity, nil

	case tokOp:
		if t.text == "(" {
			q, err := p.expr()
			if err != nil {
				return si.Quantity{}, err
			}
			if err := p.expect(")"); err != nil {
				return si.Quantity{}, err
			}
			return q, nil
		}
		return si.Quantity{}, &SyntaxError{Pos: t.pos, Msg: "unexpected " + strconv.Quote(t.text)}

	default:
		return si.Quantity{}, &SyntaxError{Pos: t.pos, Msg: "unexpected end of expression"}
	}
}
