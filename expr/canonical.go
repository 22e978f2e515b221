// SPDX-License-Identifier: MIT
// Package: lvlalg/expr
//
// canonical.go — folding a tree into one reduced rational function.
//
// Contract:
//   • Canonical never panics; failures are ErrDivisionByZero, ErrUnsupported
//     or a wrapped poly.ErrPowerTooLarge.
//   • Simplify(e) is a leaf and Simplify(Simplify(e)) has the same kind and
//     value as Simplify(e).

package expr

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlalg/numeric"
	"github.com/katalvlaran/lvlalg/ratfunc"
)

const (
	methodCanonical = "Canonical"
	methodSimplify  = "Simplify"
)

// Canonical evaluates e to a reduced rational function.
func (e Expr) Canonical() (ratfunc.RationalFunction, error) {
	switch e.kind {
	case KindNumber:
		return ratfunc.FromRat(e.num.Rat()), nil
	case KindPolynomial:
		return ratfunc.FromPolynomial(e.poly).Reduced(), nil
	case KindFraction:
		return e.frac.Reduced(), nil
	case KindNegation:
		a, err := e.args[0].Canonical()
		if err != nil {
			return ratfunc.RationalFunction{}, err
		}
		return a.Neg(), nil
	case KindPower:
		a, err := e.args[0].Canonical()
		if err != nil {
			return ratfunc.RationalFunction{}, err
		}
		out, err := a.Pow(e.exp)
		if errors.Is(err, ratfunc.ErrZeroDenominator) {
			return ratfunc.RationalFunction{}, fmt.Errorf("%s: power %d of zero: %w", methodCanonical, e.exp, ErrDivisionByZero)
		}
		if err != nil {
			return ratfunc.RationalFunction{}, fmt.Errorf("%s: %w", methodCanonical, err)
		}
		return out, nil
	case KindSum, KindDifference, KindProduct, KindQuotient:
		return e.binary()
	}
	return ratfunc.RationalFunction{}, fmt.Errorf("%s: kind %s: %w", methodCanonical, e.kind, ErrUnsupported)
}

func (e Expr) binary() (ratfunc.RationalFunction, error) {
	a, err := e.args[0].Canonical()
	if err != nil {
		return ratfunc.RationalFunction{}, err
	}
	b, err := e.args[1].Canonical()
	if err != nil {
		return ratfunc.RationalFunction{}, err
	}
	switch e.kind {
	case KindSum:
		return a.Add(b), nil
	case KindDifference:
		return a.Sub(b), nil
	case KindProduct:
		return a.Mul(b), nil
	}
	out, err := a.Div(b)
	if err != nil {
		return ratfunc.RationalFunction{}, fmt.Errorf("%s: %w", methodCanonical, ErrDivisionByZero)
	}
	return out, nil
}

// Simplify returns the canonical value of e as a single leaf.
func Simplify(e Expr) (Expr, error) {
	c, err := e.Canonical()
	if err != nil {
		return Expr{}, fmt.Errorf("%s: %w", methodSimplify, err)
	}
	return FromCanonical(c), nil
}

// FromCanonical picks the simplest leaf for an already reduced value.
func FromCanonical(c ratfunc.RationalFunction) Expr {
	if v, ok := c.Value(); ok {
		return Num(numeric.FromRat(v))
	}
	if d := c.Den(); d.IsConstant() && d.Coef(0).Cmp(big.NewRat(1, 1)) == 0 {
		return Poly(c.Num())
	}
	return Frac(c)
}

// Equal reports whether a and b denote the same rational function. Trees
// that fail to canonicalize are never equal.
func Equal(a, b Expr) bool {
	ca, err := a.Canonical()
	if err != nil {
		return false
	}
	cb, err := b.Canonical()
	if err != nil {
		return false
	}
	return ca.Equal(cb)
}
