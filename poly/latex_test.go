// SPDX-License-Identifier: MIT

package poly_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlalg/poly"
)

func TestLaTeX(t *testing.T) {
	cases := []struct {
		p    poly.Polynomial
		want string
	}{
		{poly.Zero(), "0"},
		{poly.FromInts(-5), "-5"},
		{poly.FromInts(7), "7"},
		{poly.New(big.NewRat(-1, 2)), `- \frac{1}{2}`},
		{poly.X(), "x"},
		{poly.FromInts(0, -1), "- x"},
		{poly.FromInts(0, -2), "- 2 x"},
		{poly.FromInts(0, 0, 1), "x^{2}"},
		{poly.FromInts(1, -1, 3), "3 x^{2} - x + 1"},
		{poly.FromInts(-9, 0, -4), "- 4 x^{2} - 9"},
		{poly.New(big.NewRat(1, 2), nil, big.NewRat(-1, 1)), `- x^{2} + \frac{1}{2}`},
		{poly.New(nil, big.NewRat(3, 4)), `\frac{3}{4} x`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.p.LaTeX(), tc.p.String())
	}
	assert.Equal(t, "2 y^{3} + y", poly.FromInts(0, 1, 0, 2).LaTeXIn("y"))
}

func TestString(t *testing.T) {
	assert.Equal(t, "3*x^2 - x + 1", poly.FromInts(1, -1, 3).String())
	assert.Equal(t, "-x - 1", poly.FromInts(-1, -1).String())
	assert.Equal(t, "1/2*x", poly.New(nil, big.NewRat(1, 2)).String())
	assert.Equal(t, "0", poly.Zero().String())
}
