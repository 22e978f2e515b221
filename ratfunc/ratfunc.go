// SPDX-License-Identifier: MIT
// Package: lvlalg/ratfunc
//
// ratfunc.go — RationalFunction value type and its field arithmetic.
//
// Contract:
//   • den is never the zero polynomial.
//   • Arithmetic results (Add, Sub, Mul, Div, Pow) are returned Reduced.
//   • Num/Den return the stored polynomials as constructed; factory values
//     are kept unreduced so problems render exactly as drawn.

package ratfunc

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlalg/poly"
)

const (
	methodNew  = "New"
	methodDiv  = "Div"
	methodPow  = "Pow"
	methodEval = "Eval"
)

// RationalFunction is num/den with den ≠ 0.
type RationalFunction struct {
	num, den poly.Polynomial
}

// New builds num/den without reducing it.
func New(num, den poly.Polynomial) (RationalFunction, error) {
	if den.IsZero() {
		return RationalFunction{}, fmt.Errorf("%s: %w", methodNew, ErrZeroDenominator)
	}
	return RationalFunction{num: num, den: den}, nil
}

// FromPolynomial returns p/1.
func FromPolynomial(p poly.Polynomial) RationalFunction {
	return RationalFunction{num: p, den: poly.One()}
}

// FromRat returns the constant function r.
func FromRat(r *big.Rat) RationalFunction {
	return RationalFunction{
		num: poly.Constant(new(big.Rat).SetInt(r.Num())),
		den: poly.Constant(new(big.Rat).SetInt(r.Denom())),
	}
}

// Zero returns 0/1.
func Zero() RationalFunction { return FromPolynomial(poly.Zero()) }

// One returns 1/1.
func One() RationalFunction { return FromPolynomial(poly.One()) }

func (f RationalFunction) Num() poly.Polynomial { return f.num }

// Den returns the denominator; the zero value of RationalFunction reports 1.
func (f RationalFunction) Den() poly.Polynomial {
	if f.den.IsZero() {
		return poly.One()
	}
	return f.den
}

// IsZero reports whether the function is identically zero.
func (f RationalFunction) IsZero() bool { return f.num.IsZero() }

// IsNegative reports whether the function reads with a leading minus sign:
// the leading coefficients of numerator and denominator have opposite signs.
func (f RationalFunction) IsNegative() bool {
	return f.num.Leading().Sign()*f.Den().Leading().Sign() < 0
}

// IsConstant reports whether the function does not depend on the variable.
func (f RationalFunction) IsConstant() bool {
	r := f.Reduced()
	return r.num.IsConstant() && r.den.IsConstant()
}

// Value returns the constant value of f, or false if f depends on the variable.
func (f RationalFunction) Value() (*big.Rat, bool) {
	r := f.Reduced()
	if !r.num.IsConstant() || !r.den.IsConstant() {
		return nil, false
	}
	return new(big.Rat).Quo(r.num.Coef(0), r.den.Coef(0)), true
}

func (f RationalFunction) Neg() RationalFunction {
	return RationalFunction{num: f.num.Neg(), den: f.Den()}
}

func (f RationalFunction) Add(g RationalFunction) RationalFunction {
	fd, gd := f.Den(), g.Den()
	return RationalFunction{
		num: f.num.Mul(gd).Add(g.num.Mul(fd)),
		den: fd.Mul(gd),
	}.Reduced()
}

func (f RationalFunction) Sub(g RationalFunction) RationalFunction { return f.Add(g.Neg()) }

func (f RationalFunction) Mul(g RationalFunction) RationalFunction {
	return RationalFunction{
		num: f.num.Mul(g.num),
		den: f.Den().Mul(g.Den()),
	}.Reduced()
}

// Div returns f/g; g must not be identically zero.
func (f RationalFunction) Div(g RationalFunction) (RationalFunction, error) {
	if g.IsZero() {
		return RationalFunction{}, fmt.Errorf("%s: %w", methodDiv, ErrZeroDenominator)
	}
	return RationalFunction{
		num: f.num.Mul(g.Den()),
		den: f.Den().Mul(g.num),
	}.Reduced(), nil
}

// Pow raises f to an integer power. f^0 == 1 for every f; negative powers
// invert first and fail on the zero function. poly.ErrPowerTooLarge is
// passed through wrapped.
func (f RationalFunction) Pow(n int) (RationalFunction, error) {
	if n == 0 {
		return One(), nil
	}
	base := f.Reduced()
	if n < 0 {
		if base.IsZero() {
			return RationalFunction{}, fmt.Errorf("%s: n=%d: %w", methodPow, n, ErrZeroDenominator)
		}
		base = RationalFunction{num: base.den, den: base.num}
		n = -n
	}
	num, err := base.num.Pow(n)
	if err != nil {
		return RationalFunction{}, fmt.Errorf("%s: %w", methodPow, err)
	}
	den, err := base.den.Pow(n)
	if err != nil {
		return RationalFunction{}, fmt.Errorf("%s: %w", methodPow, err)
	}
	return RationalFunction{num: num, den: den}.Reduced(), nil
}

// Eval evaluates f at x; a root of the denominator yields ErrZeroDenominator.
func (f RationalFunction) Eval(x *big.Rat) (*big.Rat, error) {
	d := f.Den().Eval(x)
	if d.Sign() == 0 {
		return nil, fmt.Errorf("%s: x=%s: %w", methodEval, x.RatString(), ErrZeroDenominator)
	}
	return d.Quo(f.num.Eval(x), d), nil
}

// Equal compares canonical forms, so 2x/(2x+2) equals x/(x+1).
func (f RationalFunction) Equal(g RationalFunction) bool {
	a, b := f.Reduced(), g.Reduced()
	return a.num.Equal(b.num) && a.den.Equal(b.den)
}

func (f RationalFunction) String() string {
	return "(" + f.num.String() + ")/(" + f.Den().String() + ")"
}
