// SPDX-License-Identifier: MIT
// Package: lvlalg/exercise
//
// options.go — functional options for Generate and FromTerms.
//
// Contract:
//   • Option constructors panic on meaningless inputs; Generate never panics.
//   • Without WithSeed/WithRand a clock-seeded source is used per call.
//   • Without WithLogger, slog.Default() tagged component=exercise is used.

package exercise

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/lvlalg/numeric"
	"github.com/katalvlaran/lvlalg/randx"
	"github.com/katalvlaran/lvlalg/ratfunc"
)

// DefaultAlgebraicIntegerProbability is the share of integer terms in
// algebraic exercises that include integers.
const DefaultAlgebraicIntegerProbability = 0.2

// Option customizes one generation call.
type Option func(*config)

type config struct {
	rng          *rand.Rand
	logger       *slog.Logger
	fractionSpec *ratfunc.FractionSpec
	intProb      float64 // algebraic mode integer share
	termSpec     numeric.TermSpec
}

func newConfig(opts ...Option) *config {
	c := &config{
		intProb:  DefaultAlgebraicIntegerProbability,
		termSpec: numeric.DefaultTermSpec(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = randx.FromClock()
	}
	if c.logger == nil {
		c.logger = slog.Default().With("component", "exercise")
	}
	return c
}

// WithSeed fixes the random stream (seed 0 maps to randx.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = randx.FromSeed(seed) }
}

// WithRand uses r for every draw. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("exercise: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithLogger routes notices and debug output to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("exercise: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithFractionSpec overrides the algebraic fraction factory parameters,
// which otherwise derive from Params.MaxDegreeOrPower.
func WithFractionSpec(s ratfunc.FractionSpec) Option {
	return func(c *config) { c.fractionSpec = &s }
}

// WithIntegerProbability sets the share of integer terms in algebraic
// exercises with IncludeIntegers. Panics outside [0, 1].
func WithIntegerProbability(p float64) Option {
	if p < 0 || p > 1 {
		panic("exercise: WithIntegerProbability(p∉[0,1])")
	}
	return func(c *config) { c.intProb = p }
}

// WithTermSpec overrides the numeric term factory parameters. AllowInteger
// is still governed by Params.IncludeIntegers.
func WithTermSpec(s numeric.TermSpec) Option {
	return func(c *config) { c.termSpec = s }
}
