// SPDX-License-Identifier: MIT
// Package: lvlalg/poly
//
// gcd.go — Euclidean division, greatest common divisor and content.
//
// Contract:
//   • DivMod(a, b): a = q·b + r with deg r < deg b; b must be non-zero.
//   • GCD(a, b): monic Euclid over Q; GCD(0, 0) == 0, GCD(a, 0) == monic(a).
//   • Content(p): the positive rational c with p/c a primitive integer polynomial.
//
// Complexity:
//   • DivMod: O(deg a · deg b). GCD: O(deg a · deg b) division steps overall.

package poly

import (
	"fmt"
	"math/big"
)

const (
	methodDivMod   = "DivMod"
	methodDivExact = "DivExact"
	methodGCD      = "GCD"
)

// fmtErr wraps a sentinel with method context: "<method>: <detail>: <sentinel>".
// The sentinel is always the last argument.
func fmtErr(method, format string, args ...interface{}) error {
	sentinel := args[len(args)-1].(error)
	detail := fmt.Sprintf(format, args[:len(args)-1]...)
	return fmt.Errorf("%s: %s: %w", method, detail, sentinel)
}

// DivMod performs polynomial long division a = q·b + r.
func DivMod(a, b Polynomial) (q, r Polynomial, err error) {
	if b.IsZero() {
		return Zero(), Zero(), fmt.Errorf("%s: %w", methodDivMod, ErrZeroDivisor)
	}
	da, db := a.Degree(), b.Degree()
	if da < db {
		return Zero(), a, nil
	}

	rem := a.Coefficients()
	quo := zeros(da - db + 1)
	lead := b.c[db]
	t := new(big.Rat)
	for k := da; k >= db; k-- {
		if rem[k].Sign() == 0 {
			continue
		}
		coef := new(big.Rat).Quo(rem[k], lead)
		quo[k-db] = coef
		for j := 0; j <= db; j++ {
			rem[k-db+j].Sub(rem[k-db+j], t.Mul(coef, b.c[j]))
		}
	}
	return Polynomial{c: trim(quo)}, Polynomial{c: trim(rem)}, nil
}

// DivExact returns a/b when b divides a exactly.
func DivExact(a, b Polynomial) (Polynomial, error) {
	q, r, err := DivMod(a, b)
	if err != nil {
		return Zero(), fmt.Errorf("%s: %w", methodDivExact, err)
	}
	if !r.IsZero() {
		return Zero(), fmt.Errorf("%s: %w", methodDivExact, ErrInexactDivision)
	}
	return q, nil
}

// Monic scales p so that its leading coefficient is 1 (zero stays zero).
func (p Polynomial) Monic() Polynomial {
	if p.IsZero() {
		return p
	}
	return p.Scale(new(big.Rat).Inv(p.c[len(p.c)-1]))
}

// GCD returns the monic greatest common divisor of a and b.
// A result of degree > 0 means a and b share a factor containing the variable.
func GCD(a, b Polynomial) (Polynomial, error) {
	for !b.IsZero() {
		_, r, err := DivMod(a, b)
		if err != nil {
			return Zero(), fmt.Errorf("%s: %w", methodGCD, err)
		}
		a, b = b, r
	}
	return a.Monic(), nil
}

// Content returns the positive rational c such that p/c has coprime integer
// coefficients. The zero polynomial has content 1.
func (p Polynomial) Content() *big.Rat {
	if p.IsZero() {
		return big.NewRat(1, 1)
	}
	g := new(big.Int)
	l := big.NewInt(1)
	tmp := new(big.Int)
	for _, v := range p.c {
		if v.Sign() == 0 {
			continue
		}
		g.GCD(nil, nil, g, tmp.Abs(v.Num()))
		// lcm(l, d) = l·d / gcd(l, d)
		d := v.Denom()
		gd := new(big.Int).GCD(nil, nil, l, d)
		l.Mul(l, new(big.Int).Quo(d, gd))
	}
	return new(big.Rat).SetFrac(g, l)
}

// Primitive splits p into its content and primitive part: p = c·pp, where pp
// has coprime integer coefficients and the same leading sign as p.
func (p Polynomial) Primitive() (*big.Rat, Polynomial) {
	c := p.Content()
	if p.IsZero() {
		return c, p
	}
	return c, p.Scale(new(big.Rat).Inv(c))
}
