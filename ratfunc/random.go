// SPDX-License-Identifier: MIT
// Package: lvlalg/ratfunc
//
// random.go — random fractions without trivial cancellation.
//
// Canonical model:
//   for attempt := 1..MaxAttempts:
//     N ~ poly.Random(deg MinNumDegree..MaxNumDegree, variable optional)
//     D ~ poly.Random(deg 1..MaxDenDegree, variable required)
//     reject D zero or constant
//     PreventTrivialCancel ∧ deg gcd(N, D) > 0 ⇒ reject
//     accept N/D
//   exhausted ⇒ fallback: N of degree ≤ 1 over D of degree 1;
//   a zero/constant fallback D is replaced by x + k, k ∈ [1, 5].
//
// A GCD error accepts the candidate (cancellation avoidance is best effort).
// The fallback is not re-checked for cancellation.
//
// Complexity: O(MaxAttempts · deg²) coefficient operations.

package ratfunc

import (
	"math/rand"

	"github.com/katalvlaran/lvlalg/poly"
	"github.com/katalvlaran/lvlalg/randx"
)

// MaxFractionAttempts bounds the retry loop in Random.
const MaxFractionAttempts = 30

// FractionSpec parameterizes Random.
type FractionSpec struct {
	MinNumDegree         int
	MaxNumDegree         int
	MaxDenDegree         int // clamped to ≥ 1
	MinCoef, MaxCoef     int64
	PreventTrivialCancel bool
	MaxAttempts          int // ≤ 0 means MaxFractionAttempts
}

// DefaultFractionSpec bounds both degrees by maxDegree, coefficients in −9..9.
func DefaultFractionSpec(maxDegree int) FractionSpec {
	return FractionSpec{
		MinNumDegree:         0,
		MaxNumDegree:         maxDegree,
		MaxDenDegree:         maxDegree,
		MinCoef:              poly.DefaultMinCoef,
		MaxCoef:              poly.DefaultMaxCoef,
		PreventTrivialCancel: true,
		MaxAttempts:          MaxFractionAttempts,
	}
}

// Outcome reports how Random arrived at its value.
type Outcome struct {
	Attempts int  // candidates drawn by the retry loop
	Fallback bool // retries exhausted; the minimal fallback was returned
}

func (s FractionSpec) normalized() FractionSpec {
	if s.MinNumDegree < 0 {
		s.MinNumDegree = 0
	}
	if s.MaxNumDegree < s.MinNumDegree {
		s.MaxNumDegree = s.MinNumDegree
	}
	if s.MaxDenDegree < 1 {
		s.MaxDenDegree = 1
	}
	if s.MaxAttempts <= 0 {
		s.MaxAttempts = MaxFractionAttempts
	}
	return s
}

// Random draws an algebraic fraction. It never fails.
func Random(rng *rand.Rand, s FractionSpec) (RationalFunction, Outcome) {
	r := randx.OrDefault(rng)
	s = s.normalized()

	f, attempts, ok := tryFraction(r, s)
	if ok {
		return f, Outcome{Attempts: attempts}
	}
	return fallback(r, s), Outcome{Attempts: attempts, Fallback: true}
}

// tryFraction runs the bounded loop; ok is false when every attempt was rejected.
func tryFraction(r *rand.Rand, s FractionSpec) (f RationalFunction, attempts int, ok bool) {
	numSpec := poly.Spec{
		MinDegree:       s.MinNumDegree,
		MaxDegree:       s.MaxNumDegree,
		MinCoef:         s.MinCoef,
		MaxCoef:         s.MaxCoef,
		MinNonzeroTerms: 1,
	}
	denSpec := poly.Spec{
		MinDegree:       1,
		MaxDegree:       s.MaxDenDegree,
		MinCoef:         s.MinCoef,
		MaxCoef:         s.MaxCoef,
		EnsureVariable:  true,
		MinNonzeroTerms: 1,
	}

	for attempts = 1; attempts <= s.MaxAttempts; attempts++ {
		num := poly.Random(r, numSpec)
		den := poly.Random(r, denSpec)
		if den.IsZero() || den.IsConstant() {
			continue
		}
		if s.PreventTrivialCancel {
			g, err := poly.GCD(num, den)
			if err == nil && g.Degree() > 0 {
				continue
			}
		}
		return RationalFunction{num: num, den: den}, attempts, true
	}
	return RationalFunction{}, s.MaxAttempts, false
}

func fallback(r *rand.Rand, s FractionSpec) RationalFunction {
	num := poly.Random(r, poly.Spec{
		MaxDegree:       1,
		MinCoef:         s.MinCoef,
		MaxCoef:         s.MaxCoef,
		MinNonzeroTerms: 1,
	})
	den := poly.Random(r, poly.Spec{
		MinDegree:       1,
		MaxDegree:       1,
		MinCoef:         s.MinCoef,
		MaxCoef:         s.MaxCoef,
		EnsureVariable:  true,
		MinNonzeroTerms: 1,
	})
	if den.IsZero() || den.IsConstant() {
		den = poly.FromInts(int64(1+r.Intn(5)), 1)
	}
	return RationalFunction{num: num, den: den}
}
