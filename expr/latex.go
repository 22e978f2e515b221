// SPDX-License-Identifier: MIT
// Package: lvlalg/expr
//
// latex.go — formula text for whole trees.
//
// Leaves use their own notation. Composites follow the exercise conventions:
// "+" and "-" between summands, `\cdot` for products, ":" for quotients and
// `\left( … \right)^{k}` for powers. An operand is parenthesized when it is
// an additive chain in a multiplicative position, or a negative atom anywhere
// but the leftmost position.

package expr

import (
	"math/big"

	"github.com/katalvlaran/lvlalg/internal/texfmt"
	"github.com/katalvlaran/lvlalg/numeric"
)

// LaTeX renders e without math-mode delimiters.
func (e Expr) LaTeX() string {
	switch e.kind {
	case KindNumber:
		return e.num.LaTeX()
	case KindPolynomial:
		return e.poly.LaTeX()
	case KindFraction:
		return e.frac.LaTeX()
	case KindSum:
		return e.args[0].LaTeX() + " " + texfmt.Plus + " " + wrapIf(e.args[1], e.args[1].IsNegativeAtom())
	case KindDifference:
		r := e.args[1]
		return e.args[0].LaTeX() + " " + texfmt.Minus + " " + wrapIf(r, r.IsSum() || r.IsNegativeAtom())
	case KindProduct:
		return factor(e.args[0], true) + " " + texfmt.Cdot + " " + factor(e.args[1], false)
	case KindQuotient:
		return factor(e.args[0], true) + " " + texfmt.Divide + " " + factor(e.args[1], false)
	case KindPower:
		return powerBase(e.args[0]) + texfmt.Sup(e.exp)
	case KindNegation:
		a := e.args[0]
		return texfmt.Minus + " " + wrapIf(a, a.IsSum() || a.IsNegativeAtom())
	}
	return ""
}

func wrapIf(e Expr, cond bool) string {
	if cond {
		return texfmt.Paren(e.LaTeX())
	}
	return e.LaTeX()
}

// factor renders a multiplicative operand.
func factor(e Expr, leftmost bool) string {
	return wrapIf(e, e.IsSum() || (!leftmost && e.IsNegativeAtom()))
}

// powerBase leaves only non-negative integers and the bare variable unwrapped.
func powerBase(e Expr) string {
	if t, ok := e.AsTerm(); ok && !t.IsNegative() && t.Kind() == numeric.Integer {
		return e.LaTeX()
	}
	if p, ok := e.AsPolynomial(); ok && p.Terms() == 1 && p.Degree() == 1 && p.Leading().Cmp(big.NewRat(1, 1)) == 0 {
		return e.LaTeX()
	}
	return texfmt.Paren(e.LaTeX())
}
