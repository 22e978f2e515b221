// SPDX-License-Identifier: MIT
// Package: lvlalg/poly
//
// poly.go — the Polynomial value type and its ring operations.
//
// Representation:
//   • c[i] is the coefficient of x^i; c is trimmed (no trailing zeros).
//   • The zero polynomial is the empty slice (Degree() == -1).
//   • Coefficients are *big.Rat and are never handed out without a copy.
//
// Complexity:
//   • Add/Sub/Neg/Scale: O(n). Mul: O(n·m). Pow: O(k·n²) via square-and-multiply.

package poly

import "math/big"

const (
	methodPow = "Pow"

	// MaxPowDegree bounds the degree of any Pow result.
	MaxPowDegree = 64
	// MaxCoefBits bounds the bit length of any numerator/denominator produced by Pow.
	MaxCoefBits = 1024
)

// Variable is the single indeterminate used when rendering formula text.
const Variable = "x"

// Polynomial is an immutable single-variable polynomial with rational coefficients.
type Polynomial struct {
	c []*big.Rat
}

// Zero returns the zero polynomial.
func Zero() Polynomial { return Polynomial{} }

// One returns the constant polynomial 1.
func One() Polynomial { return FromInts(1) }

// X returns the polynomial x.
func X() Polynomial { return FromInts(0, 1) }

// New builds a polynomial from ascending coefficients (coeffs[i] multiplies x^i).
// Inputs are copied; nil entries count as zero.
func New(coeffs ...*big.Rat) Polynomial {
	c := make([]*big.Rat, len(coeffs))
	for i, v := range coeffs {
		if v == nil {
			c[i] = new(big.Rat)
			continue
		}
		c[i] = new(big.Rat).Set(v)
	}
	return Polynomial{c: trim(c)}
}

// FromInts builds a polynomial from ascending integer coefficients.
//
//	FromInts(1, 0, 3) == 3x² + 1
func FromInts(coeffs ...int64) Polynomial {
	c := make([]*big.Rat, len(coeffs))
	for i, v := range coeffs {
		c[i] = new(big.Rat).SetInt64(v)
	}
	return Polynomial{c: trim(c)}
}

// Constant returns the degree-0 polynomial r (or zero when r == 0).
func Constant(r *big.Rat) Polynomial { return New(r) }

// Monomial returns coef·x^deg. deg < 0 yields the zero polynomial.
func Monomial(coef *big.Rat, deg int) Polynomial {
	if deg < 0 {
		return Zero()
	}
	c := make([]*big.Rat, deg+1)
	for i := range c {
		c[i] = new(big.Rat)
	}
	c[deg].Set(coef)
	return Polynomial{c: trim(c)}
}

// trim drops trailing zero coefficients in place and returns the shortened slice.
func trim(c []*big.Rat) []*big.Rat {
	n := len(c)
	for n > 0 && c[n-1].Sign() == 0 {
		n--
	}
	return c[:n]
}

// zeros allocates n zero coefficients.
func zeros(n int) []*big.Rat {
	c := make([]*big.Rat, n)
	for i := range c {
		c[i] = new(big.Rat)
	}
	return c
}

// Degree returns the exact degree; -1 for the zero polynomial.
func (p Polynomial) Degree() int { return len(p.c) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.c) == 0 }

// IsConstant reports whether p has degree ≤ 0 (zero included).
func (p Polynomial) IsConstant() bool { return len(p.c) <= 1 }

// Coef returns a copy of the coefficient of x^i (zero outside the range).
func (p Polynomial) Coef(i int) *big.Rat {
	if i < 0 || i >= len(p.c) {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.c[i])
}

// Coefficients returns copies of all coefficients, ascending.
func (p Polynomial) Coefficients() []*big.Rat {
	out := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		out[i] = new(big.Rat).Set(v)
	}
	return out
}

// Leading returns a copy of the leading coefficient (zero for the zero polynomial).
func (p Polynomial) Leading() *big.Rat {
	if len(p.c) == 0 {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.c[len(p.c)-1])
}

// Terms counts the non-zero coefficients.
func (p Polynomial) Terms() int {
	n := 0
	for _, v := range p.c {
		if v.Sign() != 0 {
			n++
		}
	}
	return n
}

// IsInteger reports whether every coefficient is an integer.
func (p Polynomial) IsInteger() bool {
	for _, v := range p.c {
		if !v.IsInt() {
			return false
		}
	}
	return true
}

// HasVariableTerm reports whether some coefficient of x^i with i ≥ 1 is non-zero.
func (p Polynomial) HasVariableTerm() bool { return p.Degree() >= 1 }

// Equal reports coefficient-wise equality.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.c) != len(q.c) {
		return false
	}
	for i := range p.c {
		if p.c[i].Cmp(q.c[i]) != 0 {
			return false
		}
	}
	return true
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p.c)
	if len(q.c) > n {
		n = len(q.c)
	}
	out := zeros(n)
	for i := 0; i < n; i++ {
		if i < len(p.c) {
			out[i].Add(out[i], p.c[i])
		}
		if i < len(q.c) {
			out[i].Add(out[i], q.c[i])
		}
	}
	return Polynomial{c: trim(out)}
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial { return p.Add(q.Neg()) }

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	out := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		out[i] = new(big.Rat).Neg(v)
	}
	return Polynomial{c: out}
}

// Scale returns r·p.
func (p Polynomial) Scale(r *big.Rat) Polynomial {
	if r.Sign() == 0 {
		return Zero()
	}
	out := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		out[i] = new(big.Rat).Mul(v, r)
	}
	return Polynomial{c: out}
}

// Mul returns p·q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	out := zeros(len(p.c) + len(q.c) - 1)
	tmp := new(big.Rat)
	for i, a := range p.c {
		if a.Sign() == 0 {
			continue
		}
		for j, b := range q.c {
			if b.Sign() == 0 {
				continue
			}
			out[i+j].Add(out[i+j], tmp.Mul(a, b))
		}
	}
	return Polynomial{c: trim(out)}
}

// Pow returns p^n for n ≥ 0 (p^0 == 1, including 0^0).
//
// Errors:
//   - ErrNegativeExponent when n < 0.
//   - ErrPowerTooLarge when deg(p)·n > MaxPowDegree or a coefficient of the
//     result outgrows MaxCoefBits.
func (p Polynomial) Pow(n int) (Polynomial, error) {
	if n < 0 {
		return Zero(), fmtErr(methodPow, "n=%d", n, ErrNegativeExponent)
	}
	if n == 0 {
		return One(), nil
	}
	if d := p.Degree(); d > 0 && n > MaxPowDegree/d {
		return Zero(), fmtErr(methodPow, "degree %d·%d exceeds %d", d, n, MaxPowDegree, ErrPowerTooLarge)
	}
	// lc^n is a coefficient of p^n and has at least (b−1)·n+1 bits.
	if b := p.leadingBits(); b > 1 && n > MaxCoefBits/(b-1) {
		return Zero(), fmtErr(methodPow, "leading coefficient of %d bits to the %d exceeds %d", b, n, MaxCoefBits, ErrPowerTooLarge)
	}

	out, base := One(), p
	for k := n; k > 0; k >>= 1 {
		if k&1 == 1 {
			out = out.Mul(base)
		}
		if k > 1 {
			base = base.Mul(base)
		}
	}
	if bits := out.maxBits(); bits > MaxCoefBits {
		return Zero(), fmtErr(methodPow, "coefficient of %d bits exceeds %d", bits, MaxCoefBits, ErrPowerTooLarge)
	}
	return out, nil
}

// leadingBits is the larger bit length of the leading coefficient's
// numerator and denominator; 0 for the zero polynomial.
func (p Polynomial) leadingBits() int {
	if p.IsZero() {
		return 0
	}
	lc := p.c[len(p.c)-1]
	return max(lc.Num().BitLen(), lc.Denom().BitLen())
}

// maxBits returns the largest numerator/denominator bit length among coefficients.
func (p Polynomial) maxBits() int {
	m := 0
	for _, v := range p.c {
		if b := v.Num().BitLen(); b > m {
			m = b
		}
		if b := v.Denom().BitLen(); b > m {
			m = b
		}
	}
	return m
}

// Eval returns p(x) by Horner's rule.
func (p Polynomial) Eval(x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	for i := len(p.c) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, p.c[i])
	}
	return acc
}
