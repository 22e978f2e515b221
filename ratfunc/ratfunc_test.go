// SPDX-License-Identifier: MIT

package ratfunc_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/poly"
	"github.com/katalvlaran/lvlalg/ratfunc"
)

// mustNew builds num/den for tests; den is never zero here.
func mustNew(t *testing.T, num, den poly.Polynomial) ratfunc.RationalFunction {
	t.Helper()
	f, err := ratfunc.New(num, den)
	require.NoError(t, err)
	return f
}

func TestNew_ZeroDenominator(t *testing.T) {
	_, err := ratfunc.New(poly.X(), poly.Zero())
	assert.ErrorIs(t, err, ratfunc.ErrZeroDenominator)
}

func TestReduced(t *testing.T) {
	cases := []struct {
		name     string
		num, den poly.Polynomial
		wantNum  poly.Polynomial
		wantDen  poly.Polynomial
	}{
		{"common factor", poly.FromInts(0, 2), poly.FromInts(2, 2), poly.FromInts(0, 1), poly.FromInts(1, 1)},
		{"content kept apart", poly.FromInts(0, 1), poly.FromInts(2, 2), poly.FromInts(0, 1), poly.FromInts(2, 2)},
		{"polynomial result", poly.FromInts(-1, 0, 1), poly.FromInts(2, 2), poly.FromInts(-1, 1), poly.FromInts(2)},
		{"sign moves up", poly.FromInts(0, 1), poly.FromInts(-1, -1), poly.FromInts(0, -1), poly.FromInts(1, 1)},
		{"zero", poly.Zero(), poly.FromInts(3, 1), poly.Zero(), poly.One()},
		{"rational coefficients", poly.New(nil, big.NewRat(1, 2)), poly.New(big.NewRat(1, 3)),
			poly.FromInts(0, 3), poly.FromInts(2)},
		{"constants", poly.FromInts(6), poly.FromInts(-4), poly.FromInts(-3), poly.FromInts(2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := mustNew(t, tc.num, tc.den).Reduced()
			assert.True(t, r.Num().Equal(tc.wantNum), "num=%s", r.Num())
			assert.True(t, r.Den().Equal(tc.wantDen), "den=%s", r.Den())

			again := r.Reduced()
			assert.True(t, again.Num().Equal(r.Num()) && again.Den().Equal(r.Den()), "idempotent")
		})
	}
}

func TestArithmetic(t *testing.T) {
	x := ratfunc.FromPolynomial(poly.X())
	xp1 := ratfunc.FromPolynomial(poly.FromInts(1, 1))
	invX, err := ratfunc.One().Div(x)
	require.NoError(t, err)
	invXp1, err := ratfunc.One().Div(xp1)
	require.NoError(t, err)

	// 1/x + 1/(x+1) = (2x+1)/(x²+x)
	sum := invX.Add(invXp1)
	assert.True(t, sum.Equal(mustNew(t, poly.FromInts(1, 2), poly.FromInts(0, 1, 1))), sum.String())

	assert.True(t, sum.Sub(sum).IsZero())

	// x/(x+1) · (x+1)/x = 1
	a := mustNew(t, poly.X(), poly.FromInts(1, 1))
	b := mustNew(t, poly.FromInts(1, 1), poly.X())
	v, ok := a.Mul(b).Value()
	require.True(t, ok)
	assert.Equal(t, 0, v.Cmp(big.NewRat(1, 1)))

	_, err = a.Div(ratfunc.Zero())
	assert.ErrorIs(t, err, ratfunc.ErrZeroDenominator)

	assert.True(t, a.Neg().Neg().Equal(a))
}

func TestPow(t *testing.T) {
	a := mustNew(t, poly.X(), poly.FromInts(1, 1))

	sq, err := a.Pow(-2)
	require.NoError(t, err)
	assert.True(t, sq.Equal(mustNew(t, poly.FromInts(1, 2, 1), poly.FromInts(0, 0, 1))))

	one, err := ratfunc.Zero().Pow(0)
	require.NoError(t, err)
	assert.True(t, one.Equal(ratfunc.One()))

	_, err = ratfunc.Zero().Pow(-1)
	assert.ErrorIs(t, err, ratfunc.ErrZeroDenominator)

	_, err = ratfunc.FromPolynomial(poly.X()).Pow(poly.MaxPowDegree + 1)
	assert.ErrorIs(t, err, poly.ErrPowerTooLarge)
}

func TestEval(t *testing.T) {
	a := mustNew(t, poly.X(), poly.FromInts(1, 1))
	v, err := a.Eval(big.NewRat(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, v.Cmp(big.NewRat(1, 2)))

	_, err = a.Eval(big.NewRat(-1, 1))
	assert.ErrorIs(t, err, ratfunc.ErrZeroDenominator)
}

func TestSignAndValue(t *testing.T) {
	assert.True(t, mustNew(t, poly.FromInts(0, -1), poly.FromInts(1, 1)).IsNegative())
	assert.True(t, mustNew(t, poly.X(), poly.FromInts(-1, -1)).IsNegative())
	assert.False(t, mustNew(t, poly.FromInts(0, -1), poly.FromInts(-1, -1)).IsNegative())
	assert.False(t, ratfunc.Zero().IsNegative())

	c := ratfunc.FromRat(big.NewRat(-3, 4))
	assert.True(t, c.IsNegative())
	assert.True(t, c.IsConstant())
	v, ok := c.Value()
	require.True(t, ok)
	assert.Equal(t, 0, v.Cmp(big.NewRat(-3, 4)))

	_, ok = mustNew(t, poly.X(), poly.FromInts(1, 1)).Value()
	assert.False(t, ok)

	// The zero value behaves as 0/1.
	var zero ratfunc.RationalFunction
	assert.True(t, zero.IsZero())
	assert.True(t, zero.Den().Equal(poly.One()))
}
