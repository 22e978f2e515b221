// SPDX-License-Identifier: MIT

// Package ratfunc implements single-variable rational functions N(x)/D(x)
// over the rationals and a random fraction generator.
//
// A RationalFunction never has a zero denominator. Values produced by the
// factory additionally keep a non-constant denominator and, on the normal
// (non-fallback) path, a numerator and denominator whose polynomial GCD has
// degree 0.
//
// Reduced returns the canonical form used for solutions: the GCD cancelled,
// integer coefficients with the combined content divided out, and a positive
// leading coefficient in the denominator. Two rational functions are Equal
// when their canonical forms coincide.
//
// Random is a bounded retry loop (MaxFractionAttempts) followed by a minimal
// fallback; it never fails and reports what happened in an Outcome.
package ratfunc
