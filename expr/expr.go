// SPDX-License-Identifier: MIT
// Package: lvlalg/expr
//
// expr.go — Expr variant, constructors and structural predicates.

package expr

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/numeric"
	"github.com/katalvlaran/lvlalg/poly"
	"github.com/katalvlaran/lvlalg/ratfunc"
)

// Kind tags an Expr.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNumber
	KindPolynomial
	KindFraction
	KindSum
	KindDifference
	KindProduct
	KindQuotient
	KindPower
	KindNegation
)

var kindNames = [...]string{
	KindInvalid:    "invalid",
	KindNumber:     "number",
	KindPolynomial: "polynomial",
	KindFraction:   "fraction",
	KindSum:        "sum",
	KindDifference: "difference",
	KindProduct:    "product",
	KindQuotient:   "quotient",
	KindPower:      "power",
	KindNegation:   "negation",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Expr is an immutable expression tree node.
type Expr struct {
	kind Kind
	num  numeric.Term
	poly poly.Polynomial
	frac ratfunc.RationalFunction
	args []Expr // 1 (Power, Negation) or 2 (binary) operands
	exp  int    // Power exponent
}

// Num wraps a numeric term.
func Num(t numeric.Term) Expr { return Expr{kind: KindNumber, num: t} }

// Int is Num(numeric.Int(n)).
func Int(n int64) Expr { return Num(numeric.Int(n)) }

// One is the integer 1, the substitute for degenerate operands.
func One() Expr { return Int(1) }

// Poly wraps a polynomial.
func Poly(p poly.Polynomial) Expr { return Expr{kind: KindPolynomial, poly: p} }

// Frac wraps a rational function as given (not reduced).
func Frac(f ratfunc.RationalFunction) Expr { return Expr{kind: KindFraction, frac: f} }

func Add(a, b Expr) Expr { return Expr{kind: KindSum, args: []Expr{a, b}} }
func Sub(a, b Expr) Expr { return Expr{kind: KindDifference, args: []Expr{a, b}} }
func Mul(a, b Expr) Expr { return Expr{kind: KindProduct, args: []Expr{a, b}} }
func Div(a, b Expr) Expr { return Expr{kind: KindQuotient, args: []Expr{a, b}} }
func Neg(a Expr) Expr    { return Expr{kind: KindNegation, args: []Expr{a}} }

// Pow raises a to the integer power k.
func Pow(a Expr, k int) Expr { return Expr{kind: KindPower, args: []Expr{a}, exp: k} }

func (e Expr) Kind() Kind { return e.kind }

// Exponent returns the exponent of a Power node, 0 otherwise.
func (e Expr) Exponent() int { return e.exp }

// Args returns a copy of the operands of a composite node.
func (e Expr) Args() []Expr { return append([]Expr(nil), e.args...) }

func (e Expr) AsTerm() (numeric.Term, bool)                 { return e.num, e.kind == KindNumber }
func (e Expr) AsPolynomial() (poly.Polynomial, bool)        { return e.poly, e.kind == KindPolynomial }
func (e Expr) AsFraction() (ratfunc.RationalFunction, bool) { return e.frac, e.kind == KindFraction }

// IsLeaf reports whether e is a Number, Polynomial or Fraction.
func (e Expr) IsLeaf() bool {
	return e.kind == KindNumber || e.kind == KindPolynomial || e.kind == KindFraction
}

// IsZero reports whether e is exactly zero. Leaves are inspected directly;
// composites are canonicalized, and a failing canonicalization reads as
// non-zero.
func (e Expr) IsZero() bool {
	switch e.kind {
	case KindNumber:
		return e.num.IsZero()
	case KindPolynomial:
		return e.poly.IsZero()
	case KindFraction:
		return e.frac.IsZero()
	}
	c, err := e.Canonical()
	return err == nil && c.IsZero()
}

// IsNegativeAtom reports whether e renders as a single signed factor with a
// leading minus: a negative number, a negative fraction or a negation.
func (e Expr) IsNegativeAtom() bool {
	switch e.kind {
	case KindNumber:
		return e.num.IsNegative()
	case KindFraction:
		return e.frac.IsNegative()
	case KindNegation:
		return true
	}
	return false
}

// IsSum reports whether e renders as an additive chain: a Sum, a Difference
// or a polynomial with two or more terms.
func (e Expr) IsSum() bool {
	switch e.kind {
	case KindSum, KindDifference:
		return true
	case KindPolynomial:
		return e.poly.Terms() > 1
	}
	return false
}

// Negated returns −e. Leaves are negated in place (so −(−5) renders "5");
// a Negation is unwrapped; other composites are wrapped in a Negation.
func (e Expr) Negated() Expr {
	switch e.kind {
	case KindNumber:
		return Num(e.num.Neg())
	case KindPolynomial:
		return Poly(e.poly.Neg())
	case KindFraction:
		return Frac(e.frac.Neg())
	case KindNegation:
		return e.args[0]
	}
	return Neg(e)
}
