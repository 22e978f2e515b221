// SPDX-License-Identifier: MIT
// Package: lvlalg/ratfunc
//
// errors.go — sentinel errors for the ratfunc package.
//
// Callers branch with errors.Is; context is attached with %w at the call site.

package ratfunc

import "errors"

// ErrZeroDenominator indicates a zero polynomial in a denominator position:
// New(num, 0), division by the zero function, a negative power of zero, or an
// evaluation point that is a root of the denominator.
var ErrZeroDenominator = errors.New("ratfunc: zero denominator")
