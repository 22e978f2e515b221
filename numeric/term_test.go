// SPDX-License-Identifier: MIT

package numeric_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/numeric"
)

func TestTerm_Kinds(t *testing.T) {
	assert.Equal(t, numeric.Integer, numeric.Int(3).Kind())

	f, err := numeric.Frac(6, -4)
	require.NoError(t, err)
	assert.Equal(t, numeric.Fraction, f.Kind())
	assert.Equal(t, 0, f.Rat().Cmp(big.NewRat(-3, 2)))
	assert.True(t, f.IsNegative())

	whole, err := numeric.Frac(8, 4)
	require.NoError(t, err)
	assert.Equal(t, numeric.Integer, whole.Kind(), "reduced to an integer")

	_, err = numeric.Frac(1, 0)
	assert.ErrorIs(t, err, numeric.ErrZeroDenominator)

	var zero numeric.Term
	assert.True(t, zero.IsZero())
	assert.Equal(t, "0", zero.LaTeX())
	assert.Equal(t, "fraction", numeric.Fraction.String())
}

func TestTerm_LaTeX(t *testing.T) {
	cases := []struct {
		t    numeric.Term
		want string
	}{
		{numeric.Int(-5), "-5"},
		{numeric.Int(12), "12"},
		{numeric.FromRat(big.NewRat(3, 4)), `\frac{3}{4}`},
		{numeric.FromRat(big.NewRat(-3, 4)), `- \frac{3}{4}`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.t.LaTeX())
	}
	assert.Equal(t, `\frac{3}{4}`, numeric.FromRat(big.NewRat(-3, 4)).Abs().LaTeX())
	assert.Equal(t, "5", numeric.Int(-5).Neg().LaTeX())
	assert.True(t, numeric.Int(-1).IsUnit())
}

func TestFromRat_Copies(t *testing.T) {
	r := big.NewRat(1, 2)
	term := numeric.FromRat(r)
	r.SetInt64(7)
	assert.Equal(t, "1/2", term.String())
}
