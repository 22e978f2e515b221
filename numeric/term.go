// SPDX-License-Identifier: MIT
// Package: lvlalg/numeric
//
// term.go — Term value type.

package numeric

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlalg/internal/texfmt"
)

// ErrZeroDenominator is returned by Frac for a zero denominator.
var ErrZeroDenominator = errors.New("numeric: zero denominator")

// Kind tags a Term.
type Kind uint8

const (
	Integer Kind = iota
	Fraction
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Fraction:
		return "fraction"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Term is an immutable exact rational. The zero value is the integer 0.
type Term struct {
	v *big.Rat
}

func Int(n int64) Term { return Term{v: new(big.Rat).SetInt64(n)} }

// Frac returns num/den reduced.
func Frac(num, den int64) (Term, error) {
	if den == 0 {
		return Term{}, fmt.Errorf("Frac(%d, 0): %w", num, ErrZeroDenominator)
	}
	return Term{v: big.NewRat(num, den)}, nil
}

// FromRat copies r.
func FromRat(r *big.Rat) Term { return Term{v: new(big.Rat).Set(r)} }

func (t Term) rat() *big.Rat {
	if t.v == nil {
		return new(big.Rat)
	}
	return t.v
}

// Rat returns a copy of the value.
func (t Term) Rat() *big.Rat { return new(big.Rat).Set(t.rat()) }

func (t Term) Kind() Kind {
	if t.rat().IsInt() {
		return Integer
	}
	return Fraction
}

func (t Term) IsZero() bool     { return t.rat().Sign() == 0 }
func (t Term) IsNegative() bool { return t.rat().Sign() < 0 }

// IsUnit reports |t| == 1.
func (t Term) IsUnit() bool {
	return new(big.Rat).Abs(t.rat()).Cmp(big.NewRat(1, 1)) == 0
}

func (t Term) Neg() Term { return Term{v: new(big.Rat).Neg(t.rat())} }
func (t Term) Abs() Term { return Term{v: new(big.Rat).Abs(t.rat())} }

// LaTeX renders "-5", "\frac{3}{4}" or "- \frac{3}{4}".
func (t Term) LaTeX() string { return texfmt.Rat(t.rat()) }

func (t Term) String() string { return t.rat().RatString() }
