// SPDX-License-Identifier: MIT

// Package numeric provides exact numeric exercise terms and their random
// generator.
//
// A Term is a tagged rational: Kind Integer when the reduced denominator is 1,
// Kind Fraction otherwise (reduced, denominator ≥ 2). Random draws terms under
// a magnitude bound with optional "avoid zero" and "avoid unit magnitude"
// exclusions; RandomInteger draws the plain integers mixed into algebraic
// exercises.
package numeric
