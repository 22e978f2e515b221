// SPDX-License-Identifier: MIT

// Package expr is the expression tree built while composing an exercise.
//
// An Expr is a tagged value: leaves hold a numeric.Term, a poly.Polynomial or
// a ratfunc.RationalFunction; composites are Sum, Difference, Product,
// Quotient, Power and Negation. The operation set is closed:
//
//	construction   Add, Sub, Mul, Div, Pow, Neg, Negated
//	predicates     IsZero, IsNegativeAtom, IsSum
//	evaluation     Canonical, Eval, Equal
//	output         LaTeX, Simplify
//
// Trees are never mutated after construction; constructors copy nothing but
// also never modify their operands, so subtrees may be shared freely.
//
// Simplify folds a tree into one reduced rational function and returns it as
// the simplest leaf that holds it: a Number for constants, a Polynomial for a
// unit denominator, a Fraction otherwise. Simplify(Simplify(e)) == Simplify(e).
package expr
