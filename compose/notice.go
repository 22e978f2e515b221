// SPDX-License-Identifier: MIT
// Package: lvlalg/compose
//
// notice.go — recovered, non-fatal events reported alongside results.

package compose

import (
	"errors"
	"fmt"
)

// ErrUnknownNoticeKind is returned when decoding an unrecognized kind name.
var ErrUnknownNoticeKind = errors.New("compose: unknown notice kind")

// NoticeKind classifies a recovered event.
type NoticeKind uint8

const (
	// GenerationExhausted: the fraction retry bound was reached and a
	// fallback fraction was used.
	GenerationExhausted NoticeKind = iota + 1
	// DegenerateOperand: a zero multiplicand or divisor was replaced by 1.
	DegenerateOperand
	// PowerFallback: exponentiation failed and was rendered as "· 1".
	PowerFallback
	// SimplificationFailure: the solution is the unsimplified value.
	SimplificationFailure
)

func (k NoticeKind) String() string {
	switch k {
	case GenerationExhausted:
		return "generation_exhausted"
	case DegenerateOperand:
		return "degenerate_operand"
	case PowerFallback:
		return "power_fallback"
	case SimplificationFailure:
		return "simplification_failure"
	default:
		return fmt.Sprintf("NoticeKind(%d)", uint8(k))
	}
}

// MarshalText lets notices serialize by name.
func (k NoticeKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText accepts the names produced by String.
func (k *NoticeKind) UnmarshalText(b []byte) error {
	for c := GenerationExhausted; c <= SimplificationFailure; c++ {
		if c.String() == string(b) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownNoticeKind, b)
}

// Notice records one recovered event. Step is the 1-based operator (or term)
// index it relates to, 0 when it concerns the whole exercise.
type Notice struct {
	Kind   NoticeKind `json:"kind" yaml:"kind"`
	Step   int        `json:"step" yaml:"step"`
	Detail string     `json:"detail" yaml:"detail"`
}
