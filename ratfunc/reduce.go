// SPDX-License-Identifier: MIT
// Package: lvlalg/ratfunc
//
// reduce.go — canonical form.
//
// Steps:
//   1) 0/D ⇒ 0/1.
//   2) g = monic gcd(N, D); N, D ← N/g, D/g (exact).
//   3) N = cN·pN, D = cD·pD with positive rational contents and primitive
//      integer parts; cN/cD = p/q in lowest terms ⇒ N ← p·pN, D ← q·pD.
//   4) lead(D) < 0 ⇒ negate both.
//
// The result has integer coefficients, gcd degree 0 and a positive
// denominator leading coefficient; reducing it again is a no-op.

package ratfunc

import (
	"math/big"

	"github.com/katalvlaran/lvlalg/poly"
)

// Reduced returns the canonical form of f.
func (f RationalFunction) Reduced() RationalFunction {
	num, den := f.num, f.Den()
	if num.IsZero() {
		return Zero()
	}

	// den ≠ 0, so neither GCD nor the exact divisions below can fail.
	if g, err := poly.GCD(num, den); err == nil && g.Degree() > 0 {
		if n, err := poly.DivExact(num, g); err == nil {
			if d, err := poly.DivExact(den, g); err == nil {
				num, den = n, d
			}
		}
	}

	cn, pn := num.Primitive()
	cd, pd := den.Primitive()
	ratio := new(big.Rat).Quo(cn, cd)
	num = pn.Scale(new(big.Rat).SetInt(ratio.Num()))
	den = pd.Scale(new(big.Rat).SetInt(ratio.Denom()))

	if den.Leading().Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	return RationalFunction{num: num, den: den}
}
