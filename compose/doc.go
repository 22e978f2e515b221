// SPDX-License-Identifier: MIT

// Package compose folds a chain of terms and operators into one expression
// while building its formula text in lock-step.
//
// The fold is pure: Fold(state, op, term) returns the next State (value and
// formula) plus any Notices; nothing is mutated. Compose runs the fold over a
// whole chain and checks that len(terms) == len(ops)+1.
//
// Per-operator rules:
//
//	Add        "+"; a negative operand is parenthesized.
//	Subtract   "-"; a negative operand folds to "+" and its negation
//	           (3 - (-5) renders as "3 + 5"); a sum operand is parenthesized.
//	Multiply   `\cdot`; an exactly-zero operand becomes 1 (DegenerateOperand).
//	Divide     ":"; an exactly-zero divisor becomes 1 and renders as `\cdot`.
//	Power(k)   wraps the formula so far in `\left( … \right)` and appends
//	           `^{k}`, then multiplies by the next term with the Multiply
//	           rules. If the power cannot be computed, the value is left as is
//	           and the step renders `\cdot 1` (PowerFallback).
//
// Multiplicative operands are parenthesized when they are sums or negative
// atoms. A negative first term is parenthesized.
//
// The formula always denotes the value that was built, substitutions
// included, and an n-term chain shows exactly n−1 operator symbols outside
// brace groups.
package compose
