// SPDX-License-Identifier: MIT

// Package texfmt holds the small set of formula-text primitives shared by
// the value types (numbers, polynomials, fractions) and the composer.
//
// Notation follows the usual math-mode LaTeX conventions without any outer
// delimiters: `\frac{1}{2}`, `- \frac{1}{2}`, `3 x^{2} - x + 1`,
// `\left( … \right)`.
package texfmt

import (
	"math/big"
	"strconv"
)

// Operator symbols as they appear in formula text.
const (
	Plus   = "+"
	Minus  = "-"
	Cdot   = `\cdot`
	Divide = ":"
	Equals = "="
)

// Rat renders an exact rational. Integers render as plain digits ("-5");
// proper fractions as `\frac{p}{q}` with the sign pulled in front ("- \frac{1}{2}").
func Rat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	num := new(big.Int).Abs(r.Num())
	body := Frac(num.String(), r.Denom().String())
	if r.Sign() < 0 {
		return Minus + " " + body
	}
	return body
}

// Frac renders a fraction bar over two already-rendered parts.
func Frac(num, den string) string {
	return `\frac{` + num + `}{` + den + `}`
}

// Paren wraps s in sized parentheses.
func Paren(s string) string {
	return `\left( ` + s + ` \right)`
}

// Sup renders a superscript exponent suffix "^{k}".
func Sup(k int) string {
	return "^{" + strconv.Itoa(k) + "}"
}

// Power renders variable^k; k==1 renders the bare variable.
func Power(variable string, k int) string {
	if k == 1 {
		return variable
	}
	return variable + Sup(k)
}
