// SPDX-License-Identifier: MIT

package poly_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/poly"
	"github.com/katalvlaran/lvlalg/randx"
)

func BenchmarkRandom(b *testing.B) {
	rng := randx.FromSeed(1)
	spec := poly.DefaultSpec()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = poly.Random(rng, spec)
	}
}

func BenchmarkGCD_Degree4(b *testing.B) {
	// (x+1)^3 and x^4 - 1
	x := poly.FromInts(1, 3, 3, 1)
	y := poly.FromInts(-1, 0, 0, 0, 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = poly.GCD(x, y)
	}
}

func BenchmarkPow(b *testing.B) {
	p := poly.FromInts(-2, 3, 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = p.Pow(6)
	}
}
