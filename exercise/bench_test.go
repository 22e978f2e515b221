// SPDX-License-Identifier: MIT

package exercise_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/lvlalg/exercise"
	"github.com/katalvlaran/lvlalg/randx"
)

func benchmarkGenerate(b *testing.B, p exercise.Params) {
	rng := randx.FromSeed(1)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = exercise.Generate(p, exercise.WithRand(rng), exercise.WithLogger(logger))
	}
}

func BenchmarkGenerate_Algebraic(b *testing.B) {
	benchmarkGenerate(b, exercise.Params{Terms: 4, MaxDegreeOrPower: 2, IncludeIntegers: true, Mode: exercise.ModeAlgebraic})
}

func BenchmarkGenerate_Numeric(b *testing.B) {
	benchmarkGenerate(b, exercise.Params{Terms: 5, MaxDegreeOrPower: 3, IncludeIntegers: true, Mode: exercise.ModeNumeric})
}
