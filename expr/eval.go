// SPDX-License-Identifier: MIT
// Package: lvlalg/expr
//
// eval.go — pointwise evaluation.
//
// Eval walks the tree directly (no canonicalization), so it serves as an
// independent check of Simplify: Eval(e, x) == Eval(Simplify(e), x) wherever
// both are defined.

package expr

import (
	"fmt"
	"math/big"
)

const methodEval = "Eval"

// Eval evaluates e at x.
func (e Expr) Eval(x *big.Rat) (*big.Rat, error) {
	switch e.kind {
	case KindNumber:
		return e.num.Rat(), nil
	case KindPolynomial:
		return e.poly.Eval(x), nil
	case KindFraction:
		v, err := e.frac.Eval(x)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodEval, ErrDivisionByZero)
		}
		return v, nil
	case KindNegation:
		v, err := e.args[0].Eval(x)
		if err != nil {
			return nil, err
		}
		return v.Neg(v), nil
	case KindPower:
		v, err := e.args[0].Eval(x)
		if err != nil {
			return nil, err
		}
		return ratPow(v, e.exp)
	case KindSum, KindDifference, KindProduct, KindQuotient:
		a, err := e.args[0].Eval(x)
		if err != nil {
			return nil, err
		}
		b, err := e.args[1].Eval(x)
		if err != nil {
			return nil, err
		}
		switch e.kind {
		case KindSum:
			return a.Add(a, b), nil
		case KindDifference:
			return a.Sub(a, b), nil
		case KindProduct:
			return a.Mul(a, b), nil
		}
		if b.Sign() == 0 {
			return nil, fmt.Errorf("%s: x=%s: %w", methodEval, x.RatString(), ErrDivisionByZero)
		}
		return a.Quo(a, b), nil
	}
	return nil, fmt.Errorf("%s: kind %s: %w", methodEval, e.kind, ErrUnsupported)
}

// ratPow computes v^k by square-and-multiply; v^0 == 1.
func ratPow(v *big.Rat, k int) (*big.Rat, error) {
	if k < 0 {
		if v.Sign() == 0 {
			return nil, fmt.Errorf("%s: power %d of zero: %w", methodEval, k, ErrDivisionByZero)
		}
		v = new(big.Rat).Inv(v)
		k = -k
	}
	out := big.NewRat(1, 1)
	base := new(big.Rat).Set(v)
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			out.Mul(out, base)
		}
		base.Mul(base, base)
	}
	return out, nil
}
