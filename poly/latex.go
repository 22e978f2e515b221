// SPDX-License-Identifier: MIT
// Package: lvlalg/poly
//
// latex.go — formula text for polynomials.
//
// Layout: terms in descending degree, unit coefficients elided on non-constant
// terms, a leading negative term rendered as "- ", inner signs as " + " / " - ".
//
//	FromInts(1, -1, 3).LaTeX() == "3 x^{2} - x + 1"
//	FromInts(0, -2).LaTeX()    == "- 2 x"
//	FromInts(-5).LaTeX()       == "-5"

package poly

import (
	"math/big"
	"strings"

	"github.com/katalvlaran/lvlalg/internal/texfmt"
)

// LaTeX renders p in the package variable.
func (p Polynomial) LaTeX() string { return p.LaTeXIn(Variable) }

// LaTeXIn renders p using the given variable name.
func (p Polynomial) LaTeXIn(variable string) string {
	switch {
	case p.IsZero():
		return "0"
	case p.Degree() == 0:
		// Plain numbers keep the "-5" / "- \frac{1}{2}" number notation.
		return texfmt.Rat(p.c[0])
	}

	var b strings.Builder
	first := true
	for d := len(p.c) - 1; d >= 0; d-- {
		c := p.c[d]
		if c.Sign() == 0 {
			continue
		}
		switch {
		case first && c.Sign() < 0:
			b.WriteString(texfmt.Minus + " ")
		case !first && c.Sign() < 0:
			b.WriteString(" " + texfmt.Minus + " ")
		case !first:
			b.WriteString(" " + texfmt.Plus + " ")
		}
		first = false
		b.WriteString(term(c, d, variable))
	}
	return b.String()
}

// term renders |c|·variable^d without a sign.
func term(c *big.Rat, d int, variable string) string {
	abs := new(big.Rat).Abs(c)
	if d == 0 {
		return texfmt.Rat(abs)
	}
	v := texfmt.Power(variable, d)
	if abs.Cmp(big.NewRat(1, 1)) == 0 {
		return v
	}
	return texfmt.Rat(abs) + " " + v
}

// String renders p in a plain ASCII form, e.g. "3*x^2 - x + 1", for logs and errors.
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for d := len(p.c) - 1; d >= 0; d-- {
		c := p.c[d]
		if c.Sign() == 0 {
			continue
		}
		abs := new(big.Rat).Abs(c)
		switch {
		case first && c.Sign() < 0:
			b.WriteString("-")
		case !first && c.Sign() < 0:
			b.WriteString(" - ")
		case !first:
			b.WriteString(" + ")
		}
		first = false
		unit := abs.Cmp(big.NewRat(1, 1)) == 0
		if d == 0 || !unit {
			b.WriteString(abs.RatString())
			if d > 0 {
				b.WriteString("*")
			}
		}
		if d >= 1 {
			b.WriteString(Variable)
		}
		if d >= 2 {
			b.WriteString("^")
			b.WriteString(big.NewInt(int64(d)).String())
		}
	}
	return b.String()
}
