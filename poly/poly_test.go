// SPDX-License-Identifier: MIT

package poly_test

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/poly"
)

func TestConstructors_Trim(t *testing.T) {
	assert.Equal(t, -1, poly.Zero().Degree())
	assert.True(t, poly.Zero().IsZero())
	assert.Equal(t, 0, poly.One().Degree())
	assert.Equal(t, 1, poly.X().Degree())

	p := poly.FromInts(1, 2, 0, 0)
	assert.Equal(t, 1, p.Degree())
	assert.Equal(t, 2, p.Terms())
	assert.True(t, poly.FromInts(0, 0).IsZero())

	m := poly.Monomial(big.NewRat(-3, 2), 4)
	assert.Equal(t, 4, m.Degree())
	assert.Equal(t, 0, m.Leading().Cmp(big.NewRat(-3, 2)))
	assert.True(t, poly.Monomial(big.NewRat(1, 1), -1).IsZero())

	// New copies its inputs; nil entries read as zero.
	c := big.NewRat(5, 1)
	q := poly.New(nil, c)
	c.SetInt64(9)
	assert.Equal(t, 0, q.Coef(1).Cmp(big.NewRat(5, 1)))
	assert.Equal(t, 0, q.Coef(0).Sign())
	assert.Equal(t, 0, q.Coef(7).Sign(), "out-of-range coefficient is zero")
}

func TestCoefficients_AreCopies(t *testing.T) {
	p := poly.FromInts(1, 2)
	cs := p.Coefficients()
	cs[0].SetInt64(100)
	assert.True(t, p.Equal(poly.FromInts(1, 2)))
}

func TestArithmetic(t *testing.T) {
	xp1 := poly.FromInts(1, 1)
	xm1 := poly.FromInts(-1, 1)

	assert.True(t, xp1.Add(xp1.Neg()).IsZero())
	assert.True(t, xp1.Sub(xm1).Equal(poly.FromInts(2)))
	assert.True(t, xp1.Mul(xm1).Equal(poly.FromInts(-1, 0, 1)))
	assert.True(t, xp1.Mul(poly.Zero()).IsZero())
	assert.True(t, xp1.Scale(big.NewRat(1, 2)).Equal(poly.New(big.NewRat(1, 2), big.NewRat(1, 2))))
	assert.True(t, xp1.Scale(new(big.Rat)).IsZero())

	assert.True(t, poly.FromInts(1, 2).IsInteger())
	assert.False(t, poly.New(big.NewRat(1, 3)).IsInteger())
	assert.True(t, xp1.HasVariableTerm())
	assert.False(t, poly.FromInts(4).HasVariableTerm())
	assert.True(t, poly.FromInts(4).IsConstant())
}

func TestPow(t *testing.T) {
	got, err := poly.FromInts(1, 1).Pow(3)
	require.NoError(t, err)
	assert.True(t, got.Equal(poly.FromInts(1, 3, 3, 1)))

	one, err := poly.FromInts(5, 7).Pow(0)
	require.NoError(t, err)
	assert.True(t, one.Equal(poly.One()))

	_, err = poly.X().Pow(-1)
	assert.ErrorIs(t, err, poly.ErrNegativeExponent)

	_, err = poly.X().Pow(poly.MaxPowDegree + 1)
	assert.ErrorIs(t, err, poly.ErrPowerTooLarge)

	// Degree is fine, coefficient size is not.
	_, err = poly.FromInts(2).Pow(2000)
	assert.ErrorIs(t, err, poly.ErrPowerTooLarge)
}

// TestPow_HugeExponentFailsFast checks that oversized powers are rejected
// before any multiplication is done.
func TestPow_HugeExponentFailsFast(t *testing.T) {
	start := time.Now()
	_, err := poly.FromInts(15).Pow(1 << 24)
	assert.ErrorIs(t, err, poly.ErrPowerTooLarge)

	_, err = poly.New(big.NewRat(2, 3)).Pow(1 << 20)
	assert.ErrorIs(t, err, poly.ErrPowerTooLarge)

	_, err = poly.X().Pow(math.MaxInt)
	assert.ErrorIs(t, err, poly.ErrPowerTooLarge)
	assert.Less(t, time.Since(start), time.Second)

	// Unit constants never grow.
	got, err := poly.FromInts(-1).Pow(1<<24 + 1)
	require.NoError(t, err)
	assert.True(t, got.Equal(poly.FromInts(-1)))
}

func TestEval(t *testing.T) {
	p := poly.FromInts(1, -1, 3) // 3x² - x + 1
	assert.Equal(t, 0, p.Eval(big.NewRat(2, 1)).Cmp(big.NewRat(11, 1)))
	assert.Equal(t, 0, p.Eval(big.NewRat(1, 2)).Cmp(big.NewRat(5, 4)))
	assert.Equal(t, 0, poly.Zero().Eval(big.NewRat(3, 1)).Sign())
}
