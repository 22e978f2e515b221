// SPDX-License-Identifier: MIT

// Package exercise generates complete algebra exercises: a problem formula
// ending in " =" and its canonical solution.
//
// Two modes are available:
//
//   - ModeAlgebraic: algebraic fractions (optionally mixed with integers)
//     chained with +, −, · and :, solved over a common denominator with all
//     common factors cancelled.
//   - ModeNumeric: numeric fractions and integers chained with +, −, ·, :
//     and integer powers.
//
// Generate never fails. Out-of-range parameters are clamped, and every
// recovered event (fraction retries exhausted, zero operands replaced, a
// power that could not be applied, a solution that could not be simplified)
// is reported as a Notice and logged through log/slog.
//
// Randomness is explicit: WithSeed or WithRand fix the stream; without them
// each call draws from a clock-seeded source.
package exercise
