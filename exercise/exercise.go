// SPDX-License-Identifier: MIT
// Package: lvlalg/exercise
//
// exercise.go — the generation contract.
//
// Pipeline (one call, one RNG stream, fixed draw order):
//   1) clamp Params;
//   2) draw Terms terms (mode-specific factory);
//   3) draw Terms−1 operators from the mode's pool;
//   4) fold terms and operators into (value, formula);
//   5) simplify the value; on failure keep the unsimplified value.
//
// Generate always returns a well-formed Result.

package exercise

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvlalg/compose"
	"github.com/katalvlaran/lvlalg/expr"
)

// Parameter defaults and bounds.
const (
	MinTerms         = 2
	MinDegreeOrPower = 1
	DefaultTerms     = 3
	DefaultMaxPower  = 3
	DefaultMaxDegree = 2

	// TermsCeiling and DegreeOrPowerCeiling are hard upper bounds applied by
	// Normalized; callers taking untrusted input should enforce tighter limits.
	TermsCeiling         = 64
	DegreeOrPowerCeiling = 16
)

const methodFromTerms = "FromTerms"

// Notice kinds and records are shared with the composer.
type (
	NoticeKind = compose.NoticeKind
	Notice     = compose.Notice
)

const (
	GenerationExhausted   = compose.GenerationExhausted
	DegenerateOperand     = compose.DegenerateOperand
	PowerFallback         = compose.PowerFallback
	SimplificationFailure = compose.SimplificationFailure
)

// Params are the caller-facing generation parameters.
type Params struct {
	Terms            int  `json:"terms" yaml:"terms"`
	MaxDegreeOrPower int  `json:"max_degree_or_power" yaml:"max_degree_or_power"`
	IncludeIntegers  bool `json:"include_integers" yaml:"include_integers"`
	Mode             Mode `json:"mode" yaml:"mode"`
}

// Normalized clamps Terms to [2, TermsCeiling], MaxDegreeOrPower to
// [1, DegreeOrPowerCeiling] and maps unknown modes to ModeAlgebraic.
func (p Params) Normalized() Params {
	p.Terms = min(max(p.Terms, MinTerms), TermsCeiling)
	p.MaxDegreeOrPower = min(max(p.MaxDegreeOrPower, MinDegreeOrPower), DegreeOrPowerCeiling)
	if p.Mode != ModeAlgebraic && p.Mode != ModeNumeric {
		p.Mode = ModeAlgebraic
	}
	return p
}

// Result is one generated exercise. Problem ends with " ="; neither text
// carries math-mode delimiters.
type Result struct {
	Problem       string
	Solution      string
	ProblemValue  expr.Expr
	SolutionValue expr.Expr
	Notices       []Notice
	Params        Params
}

// Simplified reports whether Solution is the canonical reduced value.
func (r Result) Simplified() bool {
	for _, n := range r.Notices {
		if n.Kind == SimplificationFailure {
			return false
		}
	}
	return true
}

// Generate builds one exercise.
func Generate(p Params, opts ...Option) Result {
	cfg := newConfig(opts...)
	p = p.Normalized()

	terms, notices := drawTerms(cfg, p)
	ops := compose.DrawOperators(cfg.rng, p.Terms-1, drawSpec(p))

	s := compose.Start(terms[0])
	for i, op := range ops {
		var ns []Notice
		s, ns = compose.Fold(s, op, terms[i+1], i+1)
		notices = append(notices, ns...)
	}
	return finish(cfg, p, s, notices)
}

// GenerateExercise is Generate in algebraic mode with a fresh random stream.
func GenerateExercise(terms, maxDegreeOrPower int, includeIntegers bool) Result {
	return Generate(Params{
		Terms:            terms,
		MaxDegreeOrPower: maxDegreeOrPower,
		IncludeIntegers:  includeIntegers,
		Mode:             ModeAlgebraic,
	})
}

// FromTerms builds an exercise from explicit terms and operators, bypassing
// every random draw. len(terms) must equal len(ops)+1.
func FromTerms(terms []expr.Expr, ops []compose.Operator, opts ...Option) (Result, error) {
	res, err := compose.Compose(terms, ops)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodFromTerms, err)
	}
	cfg := newConfig(opts...)
	p := Params{Terms: len(terms), MaxDegreeOrPower: MinDegreeOrPower}
	return finish(cfg, p, res.State, res.Notices), nil
}

func finish(cfg *config, p Params, s compose.State, notices []Notice) Result {
	solution, n := solve(s.Value)
	if n != nil {
		notices = append(notices, *n)
	}
	for _, n := range notices {
		level := slog.LevelInfo
		if n.Kind == SimplificationFailure || n.Kind == PowerFallback {
			level = slog.LevelWarn
		}
		cfg.logger.Log(context.Background(), level, "exercise notice",
			"kind", n.Kind.String(), "step", n.Step, "detail", n.Detail)
	}

	res := Result{
		Problem:       s.Formula.Close(),
		Solution:      solution.LaTeX(),
		ProblemValue:  s.Value,
		SolutionValue: solution,
		Notices:       notices,
		Params:        p,
	}
	cfg.logger.Debug("exercise generated",
		"mode", p.Mode.String(), "terms", p.Terms, "problem", res.Problem, "solution", res.Solution)
	return res
}

// solve simplifies v; on failure v itself is the solution.
func solve(v expr.Expr) (expr.Expr, *Notice) {
	s, err := expr.Simplify(v)
	if err != nil {
		return v, &Notice{Kind: SimplificationFailure, Detail: err.Error()}
	}
	return s, nil
}
