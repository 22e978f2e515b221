// SPDX-License-Identifier: MIT
// Package: lvlalg/compose
//
// formula.go — the append-only formula accumulator.

package compose

import "github.com/katalvlaran/lvlalg/internal/texfmt"

// Formula is formula text under construction. Methods return new values.
type Formula struct {
	text string
}

// NewFormula starts a formula with its first operand.
func NewFormula(first string) Formula { return Formula{text: first} }

// Append adds " <symbol> <operand>".
func (f Formula) Append(symbol, operand string) Formula {
	return Formula{text: f.text + " " + symbol + " " + operand}
}

// Raise wraps everything so far in parentheses and appends ^{k}.
func (f Formula) Raise(k int) Formula {
	return Formula{text: texfmt.Paren(f.text) + texfmt.Sup(k)}
}

// Close returns the problem text with the trailing " =".
func (f Formula) Close() string { return f.text + " " + texfmt.Equals }

func (f Formula) String() string { return f.text }
