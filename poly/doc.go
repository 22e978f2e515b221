// SPDX-License-Identifier: MIT

// Package poly implements exact single-variable polynomials over the
// rationals and the constrained random draws used to build exercises.
//
// What lives here:
//
//   - Polynomial: an immutable value, coefficients indexed by degree
//     (index 0 = constant term), always trimmed so that Degree() is exact.
//     The zero polynomial has Degree() == -1.
//   - Arithmetic: Add, Sub, Neg, Scale, Mul, Pow (guarded), DivMod, GCD,
//     Content/Primitive, Eval (Horner), Equal.
//   - Formula text: LaTeX renders descending-degree notation such as
//     `3 x^{2} - x + 1`.
//   - Random: the constrained generator (degree range, coefficient range,
//     "must contain the variable", minimum non-zero terms).
//
// Guarantees:
//
//   - Values never share coefficient storage with callers; every method
//     returns a fresh Polynomial.
//   - Arithmetic is exact (math/big); only Pow and DivMod can fail, and they
//     fail with the sentinels declared in errors.go.
//   - Random never panics and always honours the leading-coefficient and
//     non-zero invariants for degree > 0.
//
// Determinism:
//
//	Random draws only from the *rand.Rand it is given, in a fixed order, so
//	a fixed seed reproduces the same polynomial.
package poly
