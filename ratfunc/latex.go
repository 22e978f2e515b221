// SPDX-License-Identifier: MIT
// Package: lvlalg/ratfunc
//
// latex.go — formula text.
//
//	x/(x+1)      → \frac{x}{x + 1}
//	(-x)/(x+1)   → - \frac{x}{x + 1}
//	x/(-x-1)     → - \frac{x}{x + 1}
//	(3x+1)/1     → 3 x + 1
//	(-1)/2       → - \frac{1}{2}

package ratfunc

import (
	"math/big"

	"github.com/katalvlaran/lvlalg/internal/texfmt"
)

// LaTeX renders f as stored; call Reduced first for the canonical text.
func (f RationalFunction) LaTeX() string {
	num, den := f.num, f.Den()
	if num.IsZero() {
		return "0"
	}
	if num.IsConstant() && den.IsConstant() {
		return texfmt.Rat(new(big.Rat).Quo(num.Coef(0), den.Coef(0)))
	}
	if den.Leading().Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	if den.IsConstant() && den.Coef(0).Cmp(big.NewRat(1, 1)) == 0 {
		return num.LaTeX()
	}
	if num.Leading().Sign() < 0 {
		return texfmt.Minus + " " + texfmt.Frac(num.Neg().LaTeX(), den.LaTeX())
	}
	return texfmt.Frac(num.LaTeX(), den.LaTeX())
}
