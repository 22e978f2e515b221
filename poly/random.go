// SPDX-License-Identifier: MIT
// Package: lvlalg/poly
//
// random.go — constrained random polynomials.
//
// Canonical model:
//   1) degree ~ U[MinDegree, MaxDegree] (MaxDegree clamped up to MinDegree).
//   2) degree > 0 ⇒ leading coefficient drawn from [MinCoef, MaxCoef] \ {0}.
//   3) pick random free slots and force them non-zero until MinNonzeroTerms
//      are non-zero (as many as there are slots).
//   4) fill the remaining slots ~ U[MinCoef, MaxCoef] (zero allowed).
//   5) EnsureVariable ∧ degree > 0 ∧ every coefficient below the leading one
//      is zero ⇒ force one non-constant slot (1..degree-1) non-zero, if any.
//   6) safety net: identically zero with degree > 0 ⇒ force one random slot.
//
// Contract:
//   • Never panics; a nil rng uses the randx.DefaultSeed stream.
//   • An empty non-zero coefficient set ([0,0]) falls back to 1.
//
// Complexity: O(degree) time and space.

package poly

import (
	"math/rand"

	"github.com/katalvlaran/lvlalg/randx"
)

// Default factory knobs (the ranges classroom exercises use).
const (
	DefaultMinDegree       = 0
	DefaultMaxDegree       = 2
	DefaultMinCoef   int64 = -9
	DefaultMaxCoef   int64 = 9
)

// Spec parameterizes Random.
type Spec struct {
	MinDegree       int   // ≥ 0
	MaxDegree       int   // clamped to ≥ MinDegree
	MinCoef         int64 // inclusive
	MaxCoef         int64 // inclusive; swapped with MinCoef if smaller
	EnsureVariable  bool  // require a non-zero non-leading variable term when possible
	MinNonzeroTerms int   // lower bound on non-zero coefficients (as available)
}

// DefaultSpec returns degree 0..2, coefficients -9..9, EnsureVariable, one non-zero term.
func DefaultSpec() Spec {
	return Spec{
		MinDegree:       DefaultMinDegree,
		MaxDegree:       DefaultMaxDegree,
		MinCoef:         DefaultMinCoef,
		MaxCoef:         DefaultMaxCoef,
		EnsureVariable:  true,
		MinNonzeroTerms: 1,
	}
}

// normalized clamps the spec into a drawable domain.
func (s Spec) normalized() Spec {
	if s.MinDegree < 0 {
		s.MinDegree = 0
	}
	if s.MaxDegree < s.MinDegree {
		s.MaxDegree = s.MinDegree
	}
	if s.MaxCoef < s.MinCoef {
		s.MinCoef, s.MaxCoef = s.MaxCoef, s.MinCoef
	}
	return s
}

// Random draws a polynomial under s. See the file header for the algorithm.
func Random(rng *rand.Rand, s Spec) Polynomial {
	r := randx.OrDefault(rng)
	s = s.normalized()

	degree := s.MinDegree + r.Intn(s.MaxDegree-s.MinDegree+1)
	coeffs := make([]int64, degree+1)

	// Free slots; the leading slot is consumed first when degree > 0.
	free := make([]int, 0, degree+1)
	for d := 0; d <= degree; d++ {
		free = append(free, d)
	}
	nonzero := 0
	if degree > 0 {
		coeffs[degree] = nonzeroCoef(r, s)
		nonzero++
		free = free[:degree]
	}

	// Force extra non-zero slots in random order.
	r.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	forced := s.MinNonzeroTerms - nonzero
	if forced < 0 {
		forced = 0
	}
	if forced > len(free) {
		forced = len(free)
	}
	for _, d := range free[:forced] {
		coeffs[d] = nonzeroCoef(r, s)
	}

	// Fill the rest uniformly; zeros allowed.
	for _, d := range free[forced:] {
		coeffs[d] = uniformCoef(r, s)
	}

	if s.EnsureVariable && degree > 1 && allZero(coeffs[:degree]) {
		slot := 1 + r.Intn(degree-1)
		coeffs[slot] = nonzeroCoef(r, s)
	}

	if degree > 0 && allZero(coeffs) {
		coeffs[r.Intn(degree+1)] = nonzeroCoef(r, s)
	}

	return FromInts(coeffs...)
}

// uniformCoef draws from [MinCoef, MaxCoef].
func uniformCoef(r *rand.Rand, s Spec) int64 {
	return s.MinCoef + r.Int63n(s.MaxCoef-s.MinCoef+1)
}

// nonzeroCoef draws from [MinCoef, MaxCoef] \ {0}; an empty set yields 1.
func nonzeroCoef(r *rand.Rand, s Spec) int64 {
	span := s.MaxCoef - s.MinCoef + 1
	hasZero := s.MinCoef <= 0 && s.MaxCoef >= 0
	if hasZero {
		span--
	}
	if span <= 0 {
		return 1
	}
	v := s.MinCoef + r.Int63n(span)
	if hasZero && v >= 0 {
		v++
	}
	return v
}

func allZero(c []int64) bool {
	for _, v := range c {
		if v != 0 {
			return false
		}
	}
	return true
}
