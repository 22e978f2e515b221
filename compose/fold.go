// SPDX-License-Identifier: MIT
// Package: lvlalg/compose
//
// fold.go — the pure left fold.
//
// Contract:
//   • Fold never mutates its inputs and never panics.
//   • After every step the formula, read strictly left to right (each
//     operator applies to everything before it), denotes State.Value.
//   • Each step appends exactly one operator symbol outside brace groups;
//     Power contributes its symbol through the multiplication that follows.
//
// Complexity: O(1) per step plus one canonicalization for Power.

package compose

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlalg/expr"
	"github.com/katalvlaran/lvlalg/internal/texfmt"
)

// ErrTermCount indicates len(terms) != len(ops)+1 or an empty chain.
var ErrTermCount = errors.New("compose: term count must be operator count + 1")

const methodCompose = "Compose"

// State is the fold accumulator.
type State struct {
	Value   expr.Expr
	Formula Formula
}

// Result is a completed chain.
type Result struct {
	State
	Notices []Notice
}

// Start seeds the fold; a negative first term is parenthesized.
func Start(first expr.Expr) State {
	return State{Value: first, Formula: NewFormula(wrapIf(first, first.IsNegativeAtom()))}
}

// Fold applies one operator. step is the 1-based operator index used in notices.
func Fold(s State, op Operator, term expr.Expr, step int) (State, []Notice) {
	switch op.Kind {
	case OpAdd:
		return State{
			Value:   expr.Add(s.Value, term),
			Formula: s.Formula.Append(texfmt.Plus, wrapIf(term, term.IsNegativeAtom())),
		}, nil

	case OpSubtract:
		if term.IsNegativeAtom() {
			pos := term.Negated()
			return State{
				Value:   expr.Add(s.Value, pos),
				Formula: s.Formula.Append(texfmt.Plus, wrapIf(pos, pos.IsNegativeAtom())),
			}, nil
		}
		return State{
			Value:   expr.Sub(s.Value, term),
			Formula: s.Formula.Append(texfmt.Minus, wrapIf(term, term.IsSum())),
		}, nil

	case OpMultiply:
		return multiply(s, term, step)

	case OpDivide:
		if term.IsZero() {
			n := Notice{Kind: DegenerateOperand, Step: step, Detail: "zero divisor replaced by 1"}
			return State{
				Value:   expr.Mul(s.Value, expr.One()),
				Formula: s.Formula.Append(texfmt.Cdot, expr.One().LaTeX()),
			}, []Notice{n}
		}
		return State{
			Value:   expr.Div(s.Value, term),
			Formula: s.Formula.Append(texfmt.Divide, operand(term)),
		}, nil

	case OpPower:
		raised := expr.Pow(s.Value, op.Exponent)
		if _, err := raised.Canonical(); err != nil {
			n := Notice{Kind: PowerFallback, Step: step, Detail: fmt.Sprintf("power %d not applied: %v", op.Exponent, err)}
			return State{
				Value:   expr.Mul(s.Value, expr.One()),
				Formula: s.Formula.Append(texfmt.Cdot, expr.One().LaTeX()),
			}, []Notice{n}
		}
		return multiply(State{Value: raised, Formula: s.Formula.Raise(op.Exponent)}, term, step)
	}

	// Unknown kinds are treated as multiplication by 1 so the chain stays well formed.
	n := Notice{Kind: DegenerateOperand, Step: step, Detail: fmt.Sprintf("unknown operator %s", op)}
	return State{
		Value:   expr.Mul(s.Value, expr.One()),
		Formula: s.Formula.Append(texfmt.Cdot, expr.One().LaTeX()),
	}, []Notice{n}
}

func multiply(s State, term expr.Expr, step int) (State, []Notice) {
	var notices []Notice
	if term.IsZero() {
		notices = []Notice{{Kind: DegenerateOperand, Step: step, Detail: "zero multiplicand replaced by 1"}}
		term = expr.One()
	}
	return State{
		Value:   expr.Mul(s.Value, term),
		Formula: s.Formula.Append(texfmt.Cdot, operand(term)),
	}, notices
}

// Compose folds terms[0] op[0] terms[1] … left to right.
func Compose(terms []expr.Expr, ops []Operator) (Result, error) {
	if len(terms) == 0 || len(terms) != len(ops)+1 {
		return Result{}, fmt.Errorf("%s: %d terms, %d operators: %w", methodCompose, len(terms), len(ops), ErrTermCount)
	}
	s := Start(terms[0])
	var notices []Notice
	for i, op := range ops {
		var ns []Notice
		s, ns = Fold(s, op, terms[i+1], i+1)
		notices = append(notices, ns...)
	}
	return Result{State: s, Notices: notices}, nil
}

// operand renders a multiplicative operand.
func operand(e expr.Expr) string { return wrapIf(e, e.IsSum() || e.IsNegativeAtom()) }

func wrapIf(e expr.Expr, cond bool) string {
	if cond {
		return texfmt.Paren(e.LaTeX())
	}
	return e.LaTeX()
}
