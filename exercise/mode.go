// SPDX-License-Identifier: MIT
// Package: lvlalg/exercise
//
// mode.go — generation modes.

package exercise

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for unrecognized names.
var ErrUnknownMode = errors.New("exercise: unknown mode")

// Mode selects the kind of terms an exercise is built from.
type Mode uint8

const (
	ModeAlgebraic Mode = iota
	ModeNumeric
)

func (m Mode) String() string {
	switch m {
	case ModeAlgebraic:
		return "algebraic"
	case ModeNumeric:
		return "numeric"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode accepts "algebraic" and "numeric", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "algebraic":
		return ModeAlgebraic, nil
	case "numeric":
		return ModeNumeric, nil
	}
	return ModeAlgebraic, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
