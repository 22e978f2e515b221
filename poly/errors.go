// SPDX-License-Identifier: MIT
// Package: lvlalg/poly
//
// errors.go — sentinel errors for the poly package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Implementations attach method context with "%s: ...: %w".

package poly

import "errors"

// ErrZeroDivisor indicates a division (DivMod, DivExact) by the zero polynomial.
var ErrZeroDivisor = errors.New("poly: division by zero polynomial")

// ErrNegativeExponent indicates Pow was called with n < 0; polynomials are
// not closed under inversion (see ratfunc for that).
var ErrNegativeExponent = errors.New("poly: negative exponent")

// ErrPowerTooLarge indicates Pow would exceed MaxPowDegree or MaxCoefBits.
// Callers treat it as a degenerate base and fall back.
var ErrPowerTooLarge = errors.New("poly: power result too large")

// ErrInexactDivision indicates DivExact found a non-zero remainder.
var ErrInexactDivision = errors.New("poly: division leaves a remainder")
