// SPDX-License-Identifier: MIT

package ratfunc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/poly"
	"github.com/katalvlaran/lvlalg/randx"
	"github.com/katalvlaran/lvlalg/ratfunc"
)

// TestRandom_Invariants: non-fallback fractions have a non-constant
// denominator and no shared variable factor.
func TestRandom_Invariants(t *testing.T) {
	spec := ratfunc.DefaultFractionSpec(2)
	for seed := int64(1); seed <= 300; seed++ {
		f, out := ratfunc.Random(randx.FromSeed(seed), spec)
		require.False(t, f.Den().IsZero(), "seed %d", seed)
		require.GreaterOrEqual(t, f.Den().Degree(), 1, "seed %d", seed)
		require.LessOrEqual(t, f.Den().Degree(), 2, "seed %d", seed)
		require.LessOrEqual(t, f.Num().Degree(), 2, "seed %d", seed)
		require.False(t, f.IsZero(), "seed %d", seed)
		require.GreaterOrEqual(t, out.Attempts, 1)
		require.LessOrEqual(t, out.Attempts, ratfunc.MaxFractionAttempts)
		if out.Fallback {
			continue
		}
		g, err := poly.GCD(f.Num(), f.Den())
		require.NoError(t, err)
		require.Equal(t, 0, g.Degree(), "seed %d: %s", seed, f)
	}
}

// TestRandom_Exhaustion forces every candidate to be (x+1)/(x+1) so the retry
// loop runs out and the fallback is returned with a valid denominator.
func TestRandom_Exhaustion(t *testing.T) {
	spec := ratfunc.FractionSpec{
		MinNumDegree:         1,
		MaxNumDegree:         1,
		MaxDenDegree:         1,
		MinCoef:              1,
		MaxCoef:              1,
		PreventTrivialCancel: true,
	}
	for seed := int64(1); seed <= 10; seed++ {
		f, out := ratfunc.Random(randx.FromSeed(seed), spec)
		assert.True(t, out.Fallback)
		assert.Equal(t, ratfunc.MaxFractionAttempts, out.Attempts)
		assert.Equal(t, 1, f.Den().Degree())
		assert.False(t, f.Den().IsZero())
	}

	spec.MaxAttempts = 3
	_, out := ratfunc.Random(randx.FromSeed(1), spec)
	assert.Equal(t, ratfunc.Outcome{Attempts: 3, Fallback: true}, out)

	// Without the cancellation check the first candidate is accepted.
	spec.PreventTrivialCancel = false
	f, out := ratfunc.Random(randx.FromSeed(1), spec)
	assert.Equal(t, ratfunc.Outcome{Attempts: 1}, out)
	assert.True(t, f.Num().Equal(poly.FromInts(1, 1)))
	assert.True(t, f.Den().Equal(poly.FromInts(1, 1)))
}

func TestRandom_Deterministic(t *testing.T) {
	spec := ratfunc.DefaultFractionSpec(3)
	a, oa := ratfunc.Random(randx.FromSeed(21), spec)
	b, ob := ratfunc.Random(randx.FromSeed(21), spec)
	assert.Equal(t, oa, ob)
	assert.True(t, a.Num().Equal(b.Num()))
	assert.True(t, a.Den().Equal(b.Den()))
}

func TestRandom_ClampsDenominatorDegree(t *testing.T) {
	spec := ratfunc.FractionSpec{MaxNumDegree: 0, MaxDenDegree: 0, MinCoef: -9, MaxCoef: 9}
	for seed := int64(1); seed <= 20; seed++ {
		f, _ := ratfunc.Random(randx.FromSeed(seed), spec)
		assert.Equal(t, 1, f.Den().Degree())
		assert.Equal(t, 0, f.Num().Degree())
	}
}
