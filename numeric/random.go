// SPDX-License-Identifier: MIT
// Package: lvlalg/numeric
//
// random.go — random integer and fraction terms.
//
// Canonical model (M = MaxMagnitude):
//   • AllowInteger ∧ U[0,1) < IntegerProbability ⇒ integer ~ U[−M, M];
//     AvoidZero redraws from [−M, M]\{0}; AvoidUnit redraws from |i| ≥ 2.
//   • otherwise d ~ [−M, M] with |d| ≥ 2, n ~ U[−M·|d|/2, M·|d|/2], n/d reduced;
//     AvoidZero redraws n from [−M, M]\{0}; AvoidUnit on |n/d| = 1 returns an
//     integer with |i| ≥ 2.
// Empty exclusion sets fall back to 1 (non-zero) and 2 (non-unit).

package numeric

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/lvlalg/randx"
)

// Factory defaults.
const (
	DefaultMaxMagnitude       int64   = 15
	DefaultIntegerProbability float64 = 0.3
	// AlgebraicIntegerMagnitude bounds integers mixed into algebraic exercises.
	AlgebraicIntegerMagnitude int64 = 9
)

// TermSpec parameterizes Random. Zero MaxMagnitude and IntegerProbability
// select the defaults.
type TermSpec struct {
	AllowInteger       bool
	MaxMagnitude       int64
	AvoidZero          bool
	AvoidUnit          bool
	IntegerProbability float64
}

// DefaultTermSpec allows integers with magnitude bound 15 and no exclusions.
func DefaultTermSpec() TermSpec {
	return TermSpec{
		AllowInteger:       true,
		MaxMagnitude:       DefaultMaxMagnitude,
		IntegerProbability: DefaultIntegerProbability,
	}
}

// Random draws one term under s.
func Random(rng *rand.Rand, s TermSpec) Term {
	r := randx.OrDefault(rng)
	m := s.MaxMagnitude
	if m <= 0 {
		m = DefaultMaxMagnitude
	}
	p := s.IntegerProbability
	if p <= 0 {
		p = DefaultIntegerProbability
	}

	if s.AllowInteger && r.Float64() < p {
		v := -m + r.Int63n(2*m+1)
		if s.AvoidZero && v == 0 {
			v = nonzeroInt(r, m)
		}
		if s.AvoidUnit && (v == 1 || v == -1) {
			v = nonUnitInt(r, m)
		}
		return Int(v)
	}

	den := nonUnitInt(r, m)
	abs := den
	if abs < 0 {
		abs = -abs
	}
	half := m * abs / 2
	num := -half + r.Int63n(2*half+1)
	if s.AvoidZero && num == 0 {
		num = nonzeroInt(r, m)
	}
	t := Term{v: big.NewRat(num, den)}
	if s.AvoidUnit && t.IsUnit() {
		return Int(nonUnitInt(r, m))
	}
	return t
}

// RandomInteger draws an integer from [−m, m]; avoidZero replaces 0 with a
// non-zero draw.
func RandomInteger(rng *rand.Rand, m int64, avoidZero bool) Term {
	r := randx.OrDefault(rng)
	if m < 0 {
		m = -m
	}
	v := -m + r.Int63n(2*m+1)
	if avoidZero && v == 0 {
		v = nonzeroInt(r, m)
	}
	return Int(v)
}

// nonzeroInt draws from [−m, m]\{0}, or returns 1 when that set is empty.
func nonzeroInt(r *rand.Rand, m int64) int64 {
	if m < 1 {
		return 1
	}
	k := r.Int63n(2 * m)
	if k < m {
		return -m + k
	}
	return 1 + (k - m)
}

// nonUnitInt draws from {i ∈ [−m, m] : |i| ≥ 2}, or returns 2 when that set is empty.
func nonUnitInt(r *rand.Rand, m int64) int64 {
	if m < 2 {
		return 2
	}
	k := r.Int63n(2 * (m - 1))
	if k < m-1 {
		return -m + k
	}
	return 2 + (k - (m - 1))
}
