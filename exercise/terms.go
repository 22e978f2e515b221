// SPDX-License-Identifier: MIT
// Package: lvlalg/exercise
//
// terms.go — per-mode term and operator sources.
//
// Algebraic: each term is, with probability intProb when integers are
// included, a non-zero integer in [−9, 9]; otherwise a fraction from the
// ratfunc.Random (exhaustion ⇒ GenerationExhausted notice).
// Numeric: each term comes from numeric.Random; a zero first term is
// redrawn with AvoidZero (and forced to 1 if still zero).

package exercise

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/compose"
	"github.com/katalvlaran/lvlalg/expr"
	"github.com/katalvlaran/lvlalg/numeric"
	"github.com/katalvlaran/lvlalg/ratfunc"
)

func drawTerms(cfg *config, p Params) ([]expr.Expr, []Notice) {
	if p.Mode == ModeNumeric {
		return numericTerms(cfg, p), nil
	}
	return algebraicTerms(cfg, p)
}

func algebraicTerms(cfg *config, p Params) ([]expr.Expr, []Notice) {
	spec := ratfunc.DefaultFractionSpec(p.MaxDegreeOrPower)
	if cfg.fractionSpec != nil {
		spec = *cfg.fractionSpec
	}

	terms := make([]expr.Expr, p.Terms)
	var notices []Notice
	for i := range terms {
		if p.IncludeIntegers && cfg.rng.Float64() < cfg.intProb {
			terms[i] = expr.Num(numeric.RandomInteger(cfg.rng, numeric.AlgebraicIntegerMagnitude, true))
			continue
		}
		f, out := ratfunc.Random(cfg.rng, spec)
		if out.Fallback {
			notices = append(notices, Notice{
				Kind:   GenerationExhausted,
				Step:   i + 1,
				Detail: fmt.Sprintf("fallback fraction after %d attempts", out.Attempts),
			})
		}
		terms[i] = expr.Frac(f)
	}
	return terms, notices
}

func numericTerms(cfg *config, p Params) []expr.Expr {
	spec := cfg.termSpec
	spec.AllowInteger = p.IncludeIntegers

	terms := make([]expr.Expr, p.Terms)
	for i := range terms {
		terms[i] = expr.Num(numeric.Random(cfg.rng, spec))
	}
	if terms[0].IsZero() {
		first := spec
		first.AvoidZero = true
		t := numeric.Random(cfg.rng, first)
		if t.IsZero() {
			t = numeric.Int(1)
		}
		terms[0] = expr.Num(t)
	}
	return terms
}

func drawSpec(p Params) compose.DrawSpec {
	if p.Mode == ModeNumeric {
		return compose.NumericDrawSpec(p.MaxDegreeOrPower)
	}
	return compose.AlgebraicDrawSpec()
}
