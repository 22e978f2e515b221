// SPDX-License-Identifier: MIT
// Package: lvlalg/expr
//
// errors.go — sentinel errors for the expr package.

package expr

import "errors"

// ErrDivisionByZero indicates a quotient (or negative power) whose divisor is
// identically zero, or an evaluation point where a divisor vanishes.
var ErrDivisionByZero = errors.New("expr: division by zero")

// ErrUnsupported indicates an Expr of unknown kind (e.g. the zero Expr).
var ErrUnsupported = errors.New("expr: unsupported expression")
